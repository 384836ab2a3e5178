package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/asilingas/fambudg/internal/domain"
)

// Scheduler runs the recurring-transaction generator on a cron
// schedule, the server-side counterpart of the manual
// generate-recurring endpoint.
type Scheduler struct {
	cron   *cron.Cron
	txns   *TransactionService
	users  domain.UserRepository
	logger *slog.Logger
}

// NewScheduler creates a new recurring-transaction scheduler.
func NewScheduler(txns *TransactionService, users domain.UserRepository, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		txns:   txns,
		users:  users,
		logger: logger,
	}
}

// Start registers the generation job under the given cron spec and
// starts the scheduler.
func (s *Scheduler) Start(spec string) error {
	_, err := s.cron.AddFunc(spec, func() {
		s.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("recurring scheduler started", "spec", spec)
	return nil
}

// Stop gracefully stops the cron scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.logger.Info("recurring scheduler stopped")
}

// RunOnce generates due recurring transactions for every user up to
// today. Per-user failures are logged and do not stop the sweep.
func (s *Scheduler) RunOnce(ctx context.Context) {
	users, err := s.users.List(ctx)
	if err != nil {
		s.logger.Warn("recurring sweep: listing users failed", "error", err)
		return
	}

	today := time.Now().UTC()
	for _, u := range users {
		resp, err := s.txns.GenerateRecurring(ctx, u.ID, today)
		if err != nil {
			s.logger.Warn("recurring sweep failed", "user", u.ID, "error", err)
			continue
		}
		if resp.Generated > 0 || len(resp.Errors) > 0 {
			s.logger.Info("recurring sweep",
				"user", u.ID,
				"generated", resp.Generated,
				"templates", resp.Templates,
				"errors", len(resp.Errors),
			)
		}
	}
}
