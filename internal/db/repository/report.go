package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/asilingas/fambudg/internal/domain"
)

var _ domain.ReportRepository = (*ReportRepo)(nil)

// ReportRepo implements domain.ReportRepository with aggregate queries
// over the transactions table. An empty userID means family-wide.
type ReportRepo struct {
	db *sql.DB
}

// NewReportRepo creates a new ReportRepo.
func NewReportRepo(db *sql.DB) *ReportRepo {
	return &ReportRepo{db: db}
}

// MonthSummary totals income and expense for one calendar month.
func (r *ReportRepo) MonthSummary(ctx context.Context, month, year int, userID string) (*domain.MonthSummary, error) {
	s := &domain.MonthSummary{Month: month, Year: year}

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN amount > 0 THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN amount < 0 THEN -amount ELSE 0 END), 0)
		FROM transactions
		WHERE strftime('%m', date) = ? AND strftime('%Y', date) = ?`
	args := []any{fmt.Sprintf("%02d", month), fmt.Sprintf("%04d", year)}
	if userID != "" {
		query += ` AND user_id = ?`
		args = append(args, userID)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&s.TotalIncome, &s.TotalExpense); err != nil {
		return nil, err
	}
	s.Net = s.TotalIncome - s.TotalExpense
	return s, nil
}

// CategorySpending breaks down expense totals by category for the date
// range, with each category's share of the total as a percentage.
func (r *ReportRepo) CategorySpending(ctx context.Context, start, end time.Time, userID string) ([]*domain.CategorySpending, error) {
	query := `
		SELECT t.category_id, c.name, COALESCE(SUM(-t.amount), 0)
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		WHERE t.amount < 0 AND t.date >= ? AND t.date <= ?`
	args := []any{start.Format(dateLayout), end.Format(dateLayout)}
	if userID != "" {
		query += ` AND t.user_id = ?`
		args = append(args, userID)
	}
	query += ` GROUP BY t.category_id, c.name ORDER BY 3 DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var results []*domain.CategorySpending
	var grandTotal int64
	for rows.Next() {
		cs := &domain.CategorySpending{}
		if err := rows.Scan(&cs.CategoryID, &cs.CategoryName, &cs.TotalAmount); err != nil {
			return nil, err
		}
		grandTotal += cs.TotalAmount
		results = append(results, cs)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if grandTotal > 0 {
		for _, cs := range results {
			cs.Percentage = float64(cs.TotalAmount) / float64(grandTotal) * 100
		}
	}
	return results, nil
}

// MemberSpending totals each family member's income and expense for the
// date range, biggest spender first.
func (r *ReportRepo) MemberSpending(ctx context.Context, start, end time.Time) ([]*domain.MemberSpending, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT t.user_id, u.name,
			COALESCE(SUM(CASE WHEN t.amount < 0 THEN -t.amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN t.amount > 0 THEN t.amount ELSE 0 END), 0)
		FROM transactions t
		JOIN users u ON u.id = t.user_id
		WHERE t.date >= ? AND t.date <= ?
		GROUP BY t.user_id, u.name
		ORDER BY 3 DESC`,
		start.Format(dateLayout), end.Format(dateLayout))
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var results []*domain.MemberSpending
	for rows.Next() {
		ms := &domain.MemberSpending{}
		if err := rows.Scan(&ms.UserID, &ms.UserName, &ms.TotalExpense, &ms.TotalIncome); err != nil {
			return nil, err
		}
		ms.Net = ms.TotalIncome - ms.TotalExpense
		results = append(results, ms)
	}
	return results, rows.Err()
}

// Trend returns per-month income/expense points for the trailing window.
func (r *ReportRepo) Trend(ctx context.Context, months int, userID string) ([]*domain.TrendPoint, error) {
	if months <= 0 {
		months = 6
	}
	since := time.Now().UTC().AddDate(0, -months, 0)

	query := `
		SELECT CAST(strftime('%m', date) AS INTEGER), CAST(strftime('%Y', date) AS INTEGER),
			COALESCE(SUM(CASE WHEN amount > 0 THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN amount < 0 THEN -amount ELSE 0 END), 0)
		FROM transactions
		WHERE date >= ?`
	args := []any{since.Format(dateLayout)}
	if userID != "" {
		query += ` AND user_id = ?`
		args = append(args, userID)
	}
	query += ` GROUP BY strftime('%Y', date), strftime('%m', date) ORDER BY 2, 1`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var trend []*domain.TrendPoint
	for rows.Next() {
		tp := &domain.TrendPoint{}
		if err := rows.Scan(&tp.Month, &tp.Year, &tp.TotalIncome, &tp.TotalExpense); err != nil {
			return nil, err
		}
		tp.Net = tp.TotalIncome - tp.TotalExpense
		trend = append(trend, tp)
	}
	return trend, rows.Err()
}
