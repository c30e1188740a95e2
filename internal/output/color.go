package output

import (
	"io"
	"os"
)

// ResolveColorMode determines whether styled output is enabled, combining
// the --color flag with TTY detection. The colorMode parameter accepts
// "never", "always", or "auto":
//   - "never":  styles off regardless of the terminal
//   - "always": styles on, even when piped or redirected
//   - "auto":   styles follow TTY detection; the NO_COLOR environment
//     variable switches them off
//
// An explicit "always" outranks NO_COLOR, since the user asked for it on
// this exact invocation.
func ResolveColorMode(colorMode string, isTTY bool) bool {
	switch colorMode {
	case "never":
		return false
	case "always":
		return true
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		return isTTY
	}
}

// IsTTY checks if a writer is a terminal.
// Returns true only for os.File that is a terminal.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
