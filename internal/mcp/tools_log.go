package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hearthwood/haven/internal/journal"
)

// LogInput is the input for the log tool.
type LogInput struct {
	Mood int      `json:"mood"           jsonschema:"mood rating on the 1-5 scale (required)"`
	Note string   `json:"note,omitempty" jsonschema:"free-form note to attach"`
	Tags []string `json:"tags,omitempty" jsonschema:"tags for categorization"`
}

// LogOutput is the output for the log tool.
type LogOutput struct {
	Entry EntrySummary `json:"entry" jsonschema:"the saved entry"`
}

func handleLog(store *journal.Store) mcp.ToolHandlerFor[LogInput, LogOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input LogInput) (*mcp.CallToolResult, LogOutput, error) {
		entry, err := store.Append(input.Mood, input.Note, input.Tags)
		if err != nil {
			// Validation messages are already phrased for the caller.
			var validationErr *journal.ValidationError
			if journal.AsValidationError(err, &validationErr) {
				return nil, LogOutput{}, err
			}
			return nil, LogOutput{}, fmt.Errorf("saving entry: %w", err)
		}

		return nil, LogOutput{Entry: toEntrySummary(entry)}, nil
	}
}
