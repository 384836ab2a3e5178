package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/sync/errgroup"

	"github.com/asilingas/fambudg/internal/api"
	"github.com/asilingas/fambudg/internal/app"
	"github.com/asilingas/fambudg/internal/config"
	internaldb "github.com/asilingas/fambudg/internal/db"
	"github.com/asilingas/fambudg/internal/middleware"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file (if present).
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)
	for _, w := range cfg.Warnings {
		logger.Warn(w)
	}

	// writeDB: single-connection pool for serialized writes (WAL +
	// txlock=immediate). readDB: 4-connection pool for concurrent reads.
	writeDB, readDB, err := internaldb.OpenSQLitePair(cfg.DBPath, 4)
	if err != nil {
		logger.Error("open database", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer writeDB.Close()
	defer readDB.Close()

	if err := internaldb.RunMigrations(writeDB); err != nil {
		logger.Error("run migrations", "error", err)
		os.Exit(1)
	}

	a := app.New(app.Deps{
		Cfg:     cfg,
		WriteDB: writeDB,
		ReadDB:  readDB,
		Logger:  logger,
	})

	if cfg.SeedDemo {
		if err := a.SeedDemo(ctx); err != nil {
			logger.Error("seed demo family", "error", err)
			os.Exit(1)
		}
	}

	// Local HS256 tokens by default; an external OIDC issuer takes
	// over validation when configured.
	var validator middleware.JWTValidator
	if cfg.Auth.OIDCEnabled() {
		validator, err = middleware.NewOIDCValidator(ctx, cfg.Auth.IssuerURL, cfg.Auth.ClientID)
		if err != nil {
			logger.Error("oidc validator", "issuer", cfg.Auth.IssuerURL, "error", err)
			os.Exit(1)
		}
		logger.Info("using OIDC token validation", "issuer", cfg.Auth.IssuerURL)
	} else {
		validator, err = middleware.NewHS256Validator(cfg.Auth.JWTSecret)
		if err != nil {
			logger.Error("hs256 validator", "error", err)
			os.Exit(1)
		}
	}

	h := api.NewHandler(
		a.Services.Auth,
		a.Services.User,
		a.Services.Account,
		a.Services.Category,
		a.Services.Transaction,
		a.Services.Budget,
		a.Services.SavingGoal,
		a.Services.BillRemind,
		a.Services.Allowance,
		a.Services.Report,
		a.Services.CSV,
	)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           api.NewRouter(cfg, h, validator, a.Users),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		if err := a.Scheduler.Start(cfg.RecurringCronSpec); err != nil {
			return err
		}
		<-gctx.Done()
		a.Scheduler.Stop()
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
	logger.Info("shutdown complete")
}
