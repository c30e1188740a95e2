// Package main provides the entry point for the haven CLI.
package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/hearthwood/haven/internal/export"
	"github.com/hearthwood/haven/internal/journal"
	"github.com/hearthwood/haven/internal/output"
)

// newExportCmd creates the export command.
func newExportCmd() *cobra.Command {
	return newExportCmdInternal(nil)
}

// newExportCmdInternal creates the export command with an injectable store for testing.
func newExportCmdInternal(store *journal.Store) *cobra.Command {
	var format string
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the journal",
		Long: `Export every entry as JSON or Markdown.

Without --out the export goes to stdout, so it can be piped. With --out
it is written to the given file.

Examples:
  haven export
  haven export --format markdown
  haven export --format json --out moods.json
  haven export --format markdown --out journal.md`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, store, format, out)
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "Export format: json or markdown")
	cmd.Flags().StringVar(&out, "out", "", "Write to a file instead of stdout")

	return cmd
}

func runExport(cmd *cobra.Command, store *journal.Store, formatArg, out string) error {
	env, err := setupCommand(cmd, store)
	if err != nil {
		return err
	}

	format, err := parseExportFormat(formatArg)
	if err != nil {
		env.printer.Error(err)
		return err
	}

	entries, stats, err := env.store.Load()
	if err != nil {
		err = output.NewSystemErrorWithCause("could not read journal", err)
		env.printer.Error(err)
		return err
	}
	warnLoadStats(env.printer, stats)

	if out == "" {
		return exportToStdout(env.printer, entries, format)
	}
	return exportToFile(env.printer, entries, format, out)
}

// parseExportFormat validates the --format flag, accepting "md" as an
// alias for markdown.
func parseExportFormat(format string) (string, error) {
	switch format {
	case "json", "markdown":
		return format, nil
	case "md":
		return "markdown", nil
	default:
		return "", output.NewUserError("--format must be 'json' or 'markdown'")
	}
}

func exportToStdout(printer *output.Printer, entries []*journal.Entry, format string) error {
	if format == "json" {
		return export.FormatJSON(printer, entries)
	}
	printer.Print("%s", export.FormatMarkdown(entries, time.Now()))
	return nil
}

func exportToFile(printer *output.Printer, entries []*journal.Entry, format, path string) error {
	var err error
	if format == "json" {
		err = export.WriteJSONFile(entries, path)
	} else {
		err = export.WriteMarkdownFile(entries, path, time.Now())
	}
	if err != nil {
		err = output.NewSystemErrorWithCause("could not write export", err)
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"exported": len(entries),
			"path":     path,
			"format":   format,
		})
	}
	printer.Print("Exported %d entries to %s\n", len(entries), path)
	return nil
}
