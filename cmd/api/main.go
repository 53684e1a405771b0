package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/nlithgow/vatu/internal/category"
	categoryStore "github.com/nlithgow/vatu/internal/category/store"
	"github.com/nlithgow/vatu/internal/clock"
	"github.com/nlithgow/vatu/internal/config"
	"github.com/nlithgow/vatu/internal/database"
	"github.com/nlithgow/vatu/internal/envelope"
	envelopeStore "github.com/nlithgow/vatu/internal/envelope/store"
	"github.com/nlithgow/vatu/internal/goal"
	goalStore "github.com/nlithgow/vatu/internal/goal/store"
	vatuHttp "github.com/nlithgow/vatu/internal/http"
	categoryHandler "github.com/nlithgow/vatu/internal/http/category"
	envelopeHandler "github.com/nlithgow/vatu/internal/http/envelope"
	goalHandler "github.com/nlithgow/vatu/internal/http/goal"
	recurringHandler "github.com/nlithgow/vatu/internal/http/recurring"
	reportHandler "github.com/nlithgow/vatu/internal/http/report"
	txHandler "github.com/nlithgow/vatu/internal/http/transaction"
	"github.com/nlithgow/vatu/internal/recurring"
	recurringStore "github.com/nlithgow/vatu/internal/recurring/store"
	"github.com/nlithgow/vatu/internal/report"
	"github.com/nlithgow/vatu/internal/transaction"
	txStore "github.com/nlithgow/vatu/internal/transaction/store"
)

func main() {
	// Missing .env is fine; the environment may carry everything.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	clk := clock.System()

	var (
		categoryService    = category.NewService(categoryStore.New(db))
		transactionService = transaction.NewService(txStore.New(db))
		envelopeService    = envelope.NewService(envelopeStore.New(db), transactionService, categoryService)
		goalService        = goal.NewService(goalStore.New(db), clk)
		recurringService   = recurring.NewService(recurringStore.New(db), clk)
		reportService      = report.NewService(transactionService, clk)
	)

	var (
		categoryH    = categoryHandler.NewHandler(categoryService)
		transactionH = txHandler.NewHandler(transactionService)
		envelopeH    = envelopeHandler.NewHandler(envelopeService)
		goalH        = goalHandler.NewHandler(goalService)
		recurringH   = recurringHandler.NewHandler(recurringService, clk)
		reportH      = reportHandler.NewHandler(reportService)
	)

	router := vatuHttp.New(cfg.CORS.AllowedOrigins,
		categoryH, transactionH, envelopeH, goalH, recurringH, reportH)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "app", cfg.App.Name, "addr", server.Addr)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
