// Package output provides structured output handling for the haven CLI.
//
// This package handles both human-readable and JSON output formats, so every
// command works equally well for people at a terminal and for scripts or
// agents consuming structured output.
//
// # Printer
//
// The Printer is the primary interface for command output. It automatically
// handles format switching based on the --json flag and TTY detection:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//
//	// For success output
//	printer.Success(map[string]any{"message": "Mood logged", "mood": entry.Mood})
//
//	// For error output
//	printer.Error(err)
//
//	// For raw output
//	printer.Println("Some text")
//	printer.Print("Formatted: %s\n", value)
//
// # JSON Mode
//
// When JSON mode is enabled (via --json flag), all output is structured:
//
//	// Success: {"message": "...", "mood": N, ...}
//	// Error: {"error": "message", "code": N}
//
// # Styling
//
// For human-readable output, the package provides lipgloss-based styling
// that automatically disables when output is piped. The palette follows the
// configured theme (dark or light).
//
// # Exit Codes
//
// The package defines standard exit codes and error types:
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: User error (bad args, invalid mood)
//	output.ExitSystemError // 2: System error (store unreadable, I/O error)
//
// # Error Types
//
// Use the error constructors to create properly-coded errors:
//
//	output.NewUserError("mood must be between 1 and 5")
//	output.NewSystemError("cannot open mood store")
//
// These errors carry exit codes that are used for both JSON error output
// and process exit codes.
package output
