package output

import (
	"bytes"
	"testing"
)

func TestResolveColorMode(t *testing.T) {
	tests := []struct {
		name      string
		colorMode string
		isTTY     bool
		noColor   string
		want      bool
	}{
		{name: "never disables on TTY", colorMode: "never", isTTY: true, want: false},
		{name: "never disables on non-TTY", colorMode: "never", isTTY: false, want: false},
		{name: "always enables on TTY", colorMode: "always", isTTY: true, want: true},
		{name: "always enables on non-TTY", colorMode: "always", isTTY: false, want: true},
		{name: "auto uses TTY true", colorMode: "auto", isTTY: true, want: true},
		{name: "auto uses TTY false", colorMode: "auto", isTTY: false, want: false},
		{name: "empty string defaults to auto", colorMode: "", isTTY: true, want: true},
		{name: "unknown value defaults to auto", colorMode: "bogus", isTTY: false, want: false},
		{name: "NO_COLOR overrides auto", colorMode: "auto", isTTY: true, noColor: "1", want: false},
		{name: "always outranks NO_COLOR", colorMode: "always", isTTY: false, noColor: "1", want: true},
		{name: "never stays off under NO_COLOR", colorMode: "never", isTTY: true, noColor: "1", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.noColor)
			got := ResolveColorMode(tt.colorMode, tt.isTTY)
			if got != tt.want {
				t.Errorf("ResolveColorMode(%q, %v) = %v, want %v", tt.colorMode, tt.isTTY, got, tt.want)
			}
		})
	}
}

func TestIsTTY_Buffer(t *testing.T) {
	var buf bytes.Buffer
	if IsTTY(&buf) {
		t.Error("IsTTY(buffer) should return false")
	}
}

func TestResolveColorMode_NeverProducesNoANSI(t *testing.T) {
	var buf bytes.Buffer
	isTTY := ResolveColorMode("never", true) // force off despite "TTY"
	printer := NewPrinter(&buf, false, isTTY)

	if printer.IsTTY() {
		t.Error("printer should report non-TTY when color=never")
	}

	printer.Error(NewUserError("mood must be between 1 and 5"))

	if containsANSI(buf.String()) {
		t.Errorf("color=never should produce no ANSI codes, got: %q", buf.String())
	}
}

func TestResolveColorMode_AlwaysKeepsStyles(t *testing.T) {
	var buf bytes.Buffer
	isTTY := ResolveColorMode("always", false) // force on despite non-TTY
	printer := NewPrinter(&buf, false, isTTY)

	if !printer.IsTTY() {
		t.Error("printer should report TTY when color=always")
	}

	empty := new(Styles)
	if printer.Styles().Error.GetForeground() == empty.Error.GetForeground() {
		t.Error("Error style should have a foreground color when color=always")
	}
}

// containsANSI checks if a string contains ANSI escape sequences.
func containsANSI(s string) bool {
	for i := range len(s) - 1 {
		if s[i] == '\033' && s[i+1] == '[' {
			return true
		}
	}
	return false
}
