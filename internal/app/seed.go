package app

import (
	"context"
	"fmt"
	"time"

	"github.com/asilingas/fambudg/internal/domain"
	"github.com/asilingas/fambudg/pkg/access"
)

// SeedDemo populates an empty database with a demo family: one admin,
// one member, one child, starter categories, and an account each.
// Idempotent — does nothing when any user already exists.
func (a *App) SeedDemo(ctx context.Context) error {
	count, err := a.Users.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	members := []struct {
		email string
		name  string
		role  access.Role
	}{
		{"admin@demo.family", "Alex", access.RoleAdmin},
		{"member@demo.family", "Sam", access.RoleMember},
		{"child@demo.family", "Robin", access.RoleChild},
	}
	for _, m := range members {
		u, err := a.Services.User.Create(ctx, &domain.CreateUserRequest{
			Email:    m.email,
			Name:     m.name,
			Role:     m.role,
			Password: "demo-password",
		})
		if err != nil {
			return fmt.Errorf("seed user %s: %w", m.email, err)
		}
		_, err = a.Services.Account.Create(ctx, u.Principal(), &domain.CreateAccountRequest{
			Name:    m.name + "'s checking",
			Type:    domain.AccountChecking,
			Balance: 1000_00,
		})
		if err != nil {
			return fmt.Errorf("seed account for %s: %w", m.email, err)
		}
		if m.role == access.RoleChild {
			_, err = a.Services.Allowance.Create(ctx, &domain.CreateAllowanceRequest{
				UserID:      u.ID,
				Amount:      50_00,
				PeriodStart: time.Now().UTC().Format("2006-01-02"),
			})
			if err != nil {
				return fmt.Errorf("seed allowance: %w", err)
			}
		}
	}

	starters := []struct {
		name string
		typ  domain.CategoryType
	}{
		{"Groceries", domain.CategoryExpense},
		{"Utilities", domain.CategoryExpense},
		{"Transport", domain.CategoryExpense},
		{"Entertainment", domain.CategoryExpense},
		{"Salary", domain.CategoryIncome},
	}
	for _, c := range starters {
		if _, err := a.Services.Category.Create(ctx, &domain.CreateCategoryRequest{
			Name: c.name, Type: c.typ,
		}); err != nil {
			return fmt.Errorf("seed category %s: %w", c.name, err)
		}
	}
	return nil
}
