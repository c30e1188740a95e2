// Package main provides the entry point for the haven CLI.
package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hearthwood/haven/internal/config"
	"github.com/hearthwood/haven/internal/journal"
	"github.com/hearthwood/haven/internal/output"
)

// newLogCmd creates the log command.
func newLogCmd() *cobra.Command {
	return newLogCmdInternal(nil)
}

// newLogCmdInternal creates the log command with an injectable store for testing.
func newLogCmdInternal(store *journal.Store) *cobra.Command {
	var note string
	var tags []string

	cmd := &cobra.Command{
		Use:   "log <mood>",
		Short: "Record a mood entry",
		Long: `Record a mood entry on the 1-5 scale.

The mood scale:
  5  great
  4  good
  3  okay
  2  low
  1  rough

Add context with --note and tag the entry with --tag (repeatable).
Common tags: ` + strings.Join(config.DefaultTags, ", ") + `.

Examples:
  haven log 4
  haven log 2 --note "slept badly" --tag sleep
  haven log 5 --note "shipped the release" --tag work --tag friends`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLog(cmd, store, args[0], note, tags)
		},
	}

	cmd.Flags().StringVar(&note, "note", "", "Free-form note for the entry")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "Tag for the entry (repeatable)")

	return cmd
}

func runLog(cmd *cobra.Command, store *journal.Store, moodArg, note string, tags []string) error {
	env, err := setupCommand(cmd, store)
	if err != nil {
		return err
	}

	mood, err := parseMoodArg(moodArg)
	if err != nil {
		env.printer.Error(err)
		return err
	}

	entry, err := env.store.Append(mood, note, tags)
	if err != nil {
		err = classifyStoreError(err)
		env.printer.Error(err)
		return err
	}

	outputLogSuccess(env.printer, entry)
	return nil
}

// parseMoodArg converts the positional argument to a mood value.
func parseMoodArg(arg string) (int, error) {
	mood, err := strconv.Atoi(arg)
	if err != nil {
		return 0, output.NewUserError("mood must be an integer between 1 and 5")
	}
	return mood, nil
}

// classifyStoreError maps store failures onto the exit code taxonomy.
// Validation failures are the caller's mistake; everything else is a
// system problem.
func classifyStoreError(err error) error {
	var validationErr *journal.ValidationError
	if journal.AsValidationError(err, &validationErr) {
		return output.NewUserError(validationErr.Error())
	}
	return output.NewSystemErrorWithCause("could not save entry", err)
}

func outputLogSuccess(printer *output.Printer, entry *journal.Entry) {
	if printer.IsJSON() {
		printer.WriteJSON(entry)
		return
	}

	styles := printer.Styles()
	printer.Print("%s mood %d/5 (%s) at %s\n",
		styles.Success.Render("Logged"),
		entry.Mood,
		entry.Category(),
		entry.Timestamp.Format("15:04"))
	if entry.Note != "" {
		printer.KeyValue("Note", entry.Note)
	}
	if len(entry.Tags) > 0 {
		printer.KeyValue("Tags", strings.Join(entry.Tags, ", "))
	}
}
