package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alexanderramin/intake/internal/catalog"
	"github.com/alexanderramin/intake/internal/cli"
	"github.com/alexanderramin/intake/internal/db"
	"github.com/alexanderramin/intake/internal/engine"
	"github.com/alexanderramin/intake/internal/repository"
	"github.com/alexanderramin/intake/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.intake/intake.db
	dbPath := os.Getenv("INTAKE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".intake", "intake.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	// Wire repositories
	businessRepo := repository.NewSQLiteBusinessRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)
	answerRepo := repository.NewSQLiteAnswerLogRepo(database)

	// Wire unit of work for transactional answer writes
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire the question engine over the full vertical registry
	registry := catalog.Default()
	eng := engine.New(registry, engine.WithWarnFunc(logger.Warn))

	// Optional use-case telemetry to stderr
	var observers []service.UseCaseObserver
	if os.Getenv("INTAKE_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Businesses: service.NewBusinessService(businessRepo, profileRepo),
		Onboarding: service.NewOnboardingService(businessRepo, profileRepo, answerRepo,
			registry, eng, uow, observers...),
	}

	// Detect interactive terminal for the onboarding wizard.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
