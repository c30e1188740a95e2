// Package main provides the entry point for the haven CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/hearthwood/haven/internal/config"
	"github.com/hearthwood/haven/internal/journal"
	"github.com/hearthwood/haven/internal/output"
)

// cmdEnv bundles the pieces every command needs: a printer wired to the
// command's streams, the loaded config, and the journal store.
type cmdEnv struct {
	printer *output.Printer
	cfg     *config.Config
	store   *journal.Store
}

// setupCommand builds the command environment. A non-nil store overrides
// the config-derived one, which lets tests inject a store backed by a
// temp file.
func setupCommand(cmd *cobra.Command, store *journal.Store) (*cmdEnv, error) {
	printer := newPrinter(cmd)

	cfg, err := config.Load()
	if err != nil {
		printer.Error(err)
		return nil, err
	}
	printer = printer.WithTheme(cfg.Theme)

	if store == nil {
		store = journal.NewStore(cfg.DataFile, nil)
	}

	return &cmdEnv{printer: printer, cfg: cfg, store: store}, nil
}

// newPrinter creates a printer bound to the command's output streams.
func newPrinter(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())
}

// warnLoadStats surfaces skipped rows on stderr so a damaged journal is
// noticed without breaking the command's primary output.
func warnLoadStats(printer *output.Printer, stats *journal.LoadStats) {
	if stats == nil || printer.IsJSON() {
		return
	}
	if stats.SkippedRows > 0 {
		printer.Warn("skipped %d malformed rows; run 'haven status --verbose' for details", stats.SkippedRows)
	}
}
