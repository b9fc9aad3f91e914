package cli

import (
	"io"
	"os"

	"github.com/alexanderramin/assay/internal/clipboard"
)

func (a *App) copier() clipboard.Copier {
	if a.Clipboard != nil {
		return a.Clipboard
	}
	return clipboard.Disabled{}
}

func (a *App) input() io.Reader {
	if a.In != nil {
		return a.In
	}
	return os.Stdin
}

func (a *App) interactive() bool {
	if a.IsInteractive == nil {
		return false
	}
	return a.IsInteractive()
}

func (a *App) exportDir() string {
	if a.ExportDir == "" {
		return "."
	}
	return a.ExportDir
}
