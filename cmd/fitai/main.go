package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/fitai/internal/cli"
	"github.com/alexanderramin/fitai/internal/coach"
	"github.com/alexanderramin/fitai/internal/config"
	"github.com/alexanderramin/fitai/internal/db"
	"github.com/alexanderramin/fitai/internal/llm"
	"github.com/alexanderramin/fitai/internal/logging"
	"github.com/alexanderramin/fitai/internal/repository"
	"github.com/alexanderramin/fitai/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func run() error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel, isTerminal(os.Stderr))

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	profileRepo := repository.NewSQLiteProfileRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)
	useCaseObserver := service.NewLogUseCaseObserver(logger)

	var observer llm.Observer = llm.NoopObserver{}
	if cfg.LLM.LogCalls {
		observer = llm.NewLogObserver(logger)
	}
	fitCoach, err := coach.New(
		llm.NewGenerator(cfg.LLM, logger),
		coach.WithObserver(observer),
		coach.WithLogger(logger),
		coach.WithPlanCache(cfg.PlanCacheSize),
	)
	if err != nil {
		return fmt.Errorf("building coach: %w", err)
	}

	app := &cli.App{
		Profiles:    service.NewProfileService(profileRepo, uow, useCaseObserver),
		Coach:       service.NewCoachService(fitCoach, useCaseObserver),
		DefaultUser: cfg.DefaultUser,
		HTTPAddr:    cfg.HTTPAddr,
		Logger:      logger,
		Ping:        database.PingContext,
		IsInteractive: func() bool {
			return isTerminal(os.Stdin)
		},
	}

	return cli.NewRootCmd(app).Execute()
}
