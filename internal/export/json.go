package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hearthwood/haven/internal/journal"
	"github.com/hearthwood/haven/internal/output"
)

// FormatJSON outputs the entries as a JSON array to the printer. A nil
// collection prints as an empty array.
func FormatJSON(printer *output.Printer, entries []*journal.Entry) error {
	if entries == nil {
		entries = []*journal.Entry{}
	}
	return printer.WriteJSON(entries)
}

// WriteJSONFile writes the whole collection as one JSON array file.
func WriteJSONFile(entries []*journal.Entry, path string) error {
	if entries == nil {
		entries = []*journal.Entry{}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return output.NewSystemError(fmt.Sprintf("failed to marshal entries: %v", err))
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0600); err != nil {
		return output.NewSystemError(fmt.Sprintf("failed to write file %s: %v", path, err))
	}

	return nil
}
