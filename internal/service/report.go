package service

import (
	"context"
	"time"

	"github.com/asilingas/fambudg/internal/domain"
	"github.com/asilingas/fambudg/pkg/access"
)

// ReportService answers aggregate queries over the ledger. Admins see
// family-wide numbers; other roles are scoped to their own
// transactions.
type ReportService struct {
	reports  domain.ReportRepository
	accounts domain.AccountRepository
	txns     domain.TransactionRepository
}

// NewReportService creates a new ReportService.
func NewReportService(reports domain.ReportRepository, accounts domain.AccountRepository, txns domain.TransactionRepository) *ReportService {
	return &ReportService{reports: reports, accounts: accounts, txns: txns}
}

// scope returns the userID to filter by: empty for admins (family-wide),
// the caller's own ID otherwise.
func scope(p access.Principal) string {
	if p.Role == access.RoleAdmin {
		return ""
	}
	return p.ID
}

// Dashboard assembles the landing-page view: visible accounts, the
// current month's summary, and the ten most recent transactions.
func (s *ReportService) Dashboard(ctx context.Context, p access.Principal) (*domain.Dashboard, error) {
	var accounts []*domain.Account
	var err error
	if p.Role == access.RoleAdmin {
		accounts, err = s.accounts.List(ctx)
	} else {
		accounts, err = s.accounts.ListByOwner(ctx, p.ID)
	}
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	summary, err := s.reports.MonthSummary(ctx, int(now.Month()), now.Year(), scope(p))
	if err != nil {
		return nil, err
	}

	recent, err := s.txns.ListRecent(ctx, p.ID, 10)
	if err != nil {
		return nil, err
	}

	return &domain.Dashboard{
		Accounts:           accounts,
		MonthSummary:       summary,
		RecentTransactions: recent,
	}, nil
}

// Monthly totals income and expenses for one calendar month.
func (s *ReportService) Monthly(ctx context.Context, p access.Principal, month, year int) (*domain.MonthSummary, error) {
	if month < 1 || month > 12 {
		return nil, domain.ErrValidation("month must be between 1 and 12")
	}
	return s.reports.MonthSummary(ctx, month, year, scope(p))
}

// ByCategory breaks spending down per category for a period.
func (s *ReportService) ByCategory(ctx context.Context, p access.Principal, filters *domain.ReportFilters) ([]*domain.CategorySpending, error) {
	start, end, err := resolveRange(filters)
	if err != nil {
		return nil, err
	}
	return s.reports.CategorySpending(ctx, start, end, scope(p))
}

// ByMember breaks family spending down per member. Route access limits
// this to admins, so no caller scoping applies.
func (s *ReportService) ByMember(ctx context.Context, filters *domain.ReportFilters) ([]*domain.MemberSpending, error) {
	start, end, err := resolveRange(filters)
	if err != nil {
		return nil, err
	}
	return s.reports.MemberSpending(ctx, start, end)
}

// Trends returns per-month income/expense points for the last n months.
func (s *ReportService) Trends(ctx context.Context, p access.Principal, months int) ([]*domain.TrendPoint, error) {
	if months <= 0 {
		months = 6
	}
	if months > 60 {
		return nil, domain.ErrValidation("months must be 60 or fewer")
	}
	return s.reports.Trend(ctx, months, scope(p))
}

// Search runs the transaction search scoped to the caller.
func (s *ReportService) Search(ctx context.Context, p access.Principal, filters *domain.SearchFilters) (*domain.SearchResult, error) {
	if filters == nil {
		filters = &domain.SearchFilters{}
	}
	if p.Role != access.RoleAdmin {
		filters.UserID = p.ID
	}
	return s.txns.Search(ctx, filters)
}

// resolveRange turns report filters into a concrete [start, end] pair:
// explicit dates win, then Month/Year, then the current month.
func resolveRange(filters *domain.ReportFilters) (time.Time, time.Time, error) {
	if filters == nil {
		filters = &domain.ReportFilters{}
	}
	if filters.StartDate != "" || filters.EndDate != "" {
		start, err := time.Parse("2006-01-02", filters.StartDate)
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrValidation("startDate must be YYYY-MM-DD")
		}
		end, err := time.Parse("2006-01-02", filters.EndDate)
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrValidation("endDate must be YYYY-MM-DD")
		}
		if end.Before(start) {
			return time.Time{}, time.Time{}, domain.ErrValidation("endDate is before startDate")
		}
		return start, end, nil
	}
	if filters.Month != 0 || filters.Year != 0 {
		if filters.Month < 1 || filters.Month > 12 {
			return time.Time{}, time.Time{}, domain.ErrValidation("month must be between 1 and 12")
		}
		start, end := filters.DateRange()
		return start, end, nil
	}
	now := time.Now().UTC()
	f := &domain.ReportFilters{Month: int(now.Month()), Year: now.Year()}
	start, end := f.DateRange()
	return start, end, nil
}
