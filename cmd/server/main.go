// Command server runs the SAK EMKM bookkeeping API.
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pigeonworks-llc/emkm-ledger/internal/api"
	"github.com/pigeonworks-llc/emkm-ledger/internal/auth"
	"github.com/pigeonworks-llc/emkm-ledger/internal/classify"
	"github.com/pigeonworks-llc/emkm-ledger/internal/config"
	"github.com/pigeonworks-llc/emkm-ledger/internal/ledger"
	"github.com/pigeonworks-llc/emkm-ledger/internal/store/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	st, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "error", err, "db_path", cfg.DBPath)
		os.Exit(1)
	}
	defer func() {
		if err := st.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	slog.Info("database initialized", "db_path", cfg.DBPath)

	tokenManager, err := auth.NewTokenManager(cfg.TokenDBPath)
	if err != nil {
		slog.Error("failed to open token database", "error", err, "token_db_path", cfg.TokenDBPath)
		os.Exit(1)
	}
	defer func() {
		if err := tokenManager.Close(); err != nil {
			slog.Error("failed to close token database", "error", err)
		}
	}()

	chart := classify.DefaultChart()
	if cfg.ChartPath != "" {
		chart, err = classify.LoadChart(cfg.ChartPath)
		if err != nil {
			slog.Error("failed to load chart of accounts", "error", err, "chart_path", cfg.ChartPath)
			os.Exit(1)
		}
		slog.Info("loaded chart of accounts", "chart_path", cfg.ChartPath, "accounts", len(chart))
	}

	authHandler := api.NewAuthHandler(st, tokenManager)
	healthHandler := api.NewHealthHandler(st)
	accountsHandler := api.NewAccountsHandler(st)
	transactionsHandler := api.NewTransactionsHandler(st)
	reportsHandler := api.NewReportsHandler(ledger.NewReporter(st))
	defaultAccountsHandler := api.NewDefaultAccountsHandler(chart)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// Unauthenticated endpoints.
	r.Get("/api/health", healthHandler.Check)
	r.Post("/api/auth/google", authHandler.GoogleSignIn)

	// API endpoints (authentication required).
	r.Route("/api", func(r chi.Router) {
		r.Use(api.AuthMiddleware(tokenManager))

		r.Post("/auth/logout", authHandler.Logout)

		r.Get("/default-accounts", defaultAccountsHandler.List)

		r.Route("/accounts", func(r chi.Router) {
			r.Get("/", accountsHandler.List)
			r.Post("/", accountsHandler.Create)
			r.Get("/{id}", accountsHandler.Get)
			r.Put("/{id}", accountsHandler.Update)
			r.Delete("/{id}", accountsHandler.Delete)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", transactionsHandler.List)
			r.Post("/", transactionsHandler.Create)
			r.Get("/{id}", transactionsHandler.Get)
			r.Put("/{id}", transactionsHandler.Update)
			r.Delete("/{id}", transactionsHandler.Delete)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/general-journal", reportsHandler.GeneralJournal)
			r.Get("/ledger", reportsHandler.Ledger)
			r.Get("/trial-balance", reportsHandler.TrialBalance)
			r.Get("/income-statement", reportsHandler.IncomeStatement)
			r.Get("/balance-sheet", reportsHandler.BalanceSheet)
		})
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	slog.Info("starting bookkeeping server", "addr", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		slog.Info("shutting down server")
		if err := server.Close(); err != nil {
			slog.Error("server shutdown error", "error", err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
