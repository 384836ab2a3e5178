package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internaldb "github.com/asilingas/fambudg/internal/db"
	"github.com/asilingas/fambudg/internal/domain"
)

func TestSavingGoalRepo_CRUD(t *testing.T) {
	writeDB, _ := internaldb.OpenTestSQLite(t)
	repo := NewSavingGoalRepo(writeDB)
	ctx := context.Background()

	target := "2027-06-01"
	g, err := repo.Create(ctx, &domain.CreateSavingGoalRequest{
		Name: "Holiday", TargetAmount: 200_000, TargetDate: &target, Priority: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.GoalActive, g.Status)
	assert.EqualValues(t, 0, g.CurrentAmount)
	require.NotNil(t, g.TargetDate)
	assert.Equal(t, target, g.TargetDate.Format("2006-01-02"))

	name := "Summer holiday"
	status := domain.GoalCancelled
	updated, err := repo.Update(ctx, g.ID, &domain.UpdateSavingGoalRequest{Name: &name, Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "Summer holiday", updated.Name)
	assert.Equal(t, domain.GoalCancelled, updated.Status)

	require.NoError(t, repo.Delete(ctx, g.ID))
	var nf *domain.NotFoundError
	_, err = repo.GetByID(ctx, g.ID)
	assert.ErrorAs(t, err, &nf)
}

func TestSavingGoalRepo_ContributionCompletesGoal(t *testing.T) {
	writeDB, _ := internaldb.OpenTestSQLite(t)
	repo := NewSavingGoalRepo(writeDB)
	ctx := context.Background()

	g, err := repo.Create(ctx, &domain.CreateSavingGoalRequest{
		Name: "Bike", TargetAmount: 30_000, Priority: 1,
	})
	require.NoError(t, err)

	g, err = repo.AddContribution(ctx, g.ID, 10_000)
	require.NoError(t, err)
	assert.EqualValues(t, 10_000, g.CurrentAmount)
	assert.Equal(t, domain.GoalActive, g.Status)

	g, err = repo.AddContribution(ctx, g.ID, 20_000)
	require.NoError(t, err)
	assert.EqualValues(t, 30_000, g.CurrentAmount)
	assert.Equal(t, domain.GoalCompleted, g.Status)
}

func TestSavingGoalRepo_ListOrderedByPriority(t *testing.T) {
	writeDB, _ := internaldb.OpenTestSQLite(t)
	repo := NewSavingGoalRepo(writeDB)
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.CreateSavingGoalRequest{Name: "Later", TargetAmount: 100, Priority: 5})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.CreateSavingGoalRequest{Name: "First", TargetAmount: 100, Priority: 1})
	require.NoError(t, err)

	goals, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, goals, 2)
	assert.Equal(t, "First", goals[0].Name)
}
