package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/assay/internal/catalog"
	"github.com/alexanderramin/assay/internal/cli"
	"github.com/alexanderramin/assay/internal/clipboard"
	"github.com/alexanderramin/assay/internal/config"
	"github.com/alexanderramin/assay/internal/service"
	"github.com/mattn/go-isatty"
)

const version = "0.1.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// Embedded catalog unless a replacement file is configured
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	var observer service.StageObserver = service.NoopStageObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogStageObserver(os.Stderr)
	}

	var copier clipboard.Copier = clipboard.Disabled{}
	if cfg.Clipboard {
		copier = clipboard.System()
	}

	app := &cli.App{
		Questionnaire: service.NewSession(cat, service.WithObserver(observer)),
		Catalog:       cat,
		Clipboard:     copier,
		ExportDir:     cfg.ExportDir,
		Accessible:    cfg.Accessible,
		Version:       version,
	}

	// Full-screen forms need a terminal on stdin.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
