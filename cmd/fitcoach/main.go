package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/aldenmarsh/fitcoach/internal/api"
	"github.com/aldenmarsh/fitcoach/internal/assistant"
	"github.com/aldenmarsh/fitcoach/internal/cli"
	"github.com/aldenmarsh/fitcoach/internal/config"
	"github.com/aldenmarsh/fitcoach/internal/db"
	"github.com/aldenmarsh/fitcoach/internal/llm"
	"github.com/aldenmarsh/fitcoach/internal/logging"
	"github.com/aldenmarsh/fitcoach/internal/repository"
	"github.com/aldenmarsh/fitcoach/internal/service"
	"github.com/aldenmarsh/fitcoach/internal/vector"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logging.New(cfg.LogLevel)
	if cfg.LogLevel == "debug" {
		log = logging.NewDevelopment()
	}
	defer log.Sync()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	profileRepo := repository.NewSQLiteProfileRepo(database)
	noteRepo := repository.NewSQLiteNoteRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	var observer llm.Observer = llm.NoopObserver{}
	if cfg.LLM.LogCalls {
		observer = llm.NewZapObserver(log)
	}
	client := llm.NewClient(cfg.LLM, observer)

	searcher := vector.NewSearcher(client, noteRepo)
	assembler := assistant.NewAssembler(searcher, noteRepo, log)
	coach := assistant.NewCoach(
		assembler,
		assistant.NewRouter(client),
		assistant.NewToolResponder(client, log),
		assistant.NewGeneralResponder(client),
		log,
	)
	macros := assistant.NewMacroGenerator(client, log)

	profileSvc := service.NewProfileService(profileRepo, uow)
	noteSvc := service.NewNoteService(noteRepo, client, log)

	app := &cli.App{
		Profiles: profileSvc,
		Notes:    noteSvc,
		Coach:    coach,
		Macros:   macros,
		Log:      log,
	}
	app.ServeHTTP = func() error {
		server := api.NewServer(profileSvc, noteSvc, coach, macros, log)
		return server.Run(":" + cfg.Server.Port)
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
