// Package export provides formatting and file output for journal
// entries.
//
// # Supported Formats
//
// The package supports two output formats:
//
//   - JSON: machine-readable array preserving the full entry schema
//   - Markdown: human-readable journal document with YAML frontmatter
//
// # JSON Export
//
// JSON export writes the whole collection as one array:
//
//	export.FormatJSON(printer, entries)            // Write to printer
//	export.WriteJSONFile(entries, "moods.json")    // Write one file
//
// An empty journal exports as an empty array, never null.
//
// # Markdown Export
//
// Markdown export renders the journal grouped by day, newest day
// first, with entries inside a day listed most recent first:
//
//	---
//	schema: haven.export/v1
//	exported: 2026-08-25
//	entries: 2
//	---
//
//	# Mood journal
//
//	## 2026-08-24 (Monday)
//
//	- 14:30 mood 4/5 (happy) [friends, work]
//	  coffee with sam
//	- 09:05 mood 3/5 (neutral)
//
// Entries whose timestamp could not be parsed are collected in a
// closing Undated section, so the export never drops rows.
package export
