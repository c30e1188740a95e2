package main

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestCalendarCommand(t *testing.T) {
	rows := []string{
		entryRow(time.Date(2026, 2, 10, 9, 0, 0, 0, time.Local), 4, "good day"),
	}

	tests := []struct {
		name         string
		args         []string
		jsonOutput   bool
		wantErr      bool
		wantContains []string
	}{
		{
			name:         "renders the month grid",
			args:         []string{"2026-02"},
			wantContains: []string{"February 2026", "Mon Tue Wed Thu Fri Sat Sun", "10•"},
		},
		{
			name:         "invalid month",
			args:         []string{"2026-13"},
			wantErr:      true,
			wantContains: []string{"invalid month", "YYYY-MM"},
		},
		{
			name:         "json payload",
			args:         []string{"2026-02"},
			jsonOutput:   true,
			wantContains: []string{`"month": "2026-02"`, `"has_entries": true`, `"in_month": false`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)
			store := newTestStore(t, rows...)

			cmd := newCalendarCmdInternal(store)

			if tt.jsonOutput {
				cmd.PersistentFlags().Bool("json", false, "")
				_ = cmd.PersistentFlags().Set("json", "true")
			}

			cmd.SetArgs(tt.args)

			var buf strings.Builder
			cmd.SetOut(&buf)
			cmd.SetErr(&buf)

			err := cmd.Execute()
			if (err != nil) != tt.wantErr {
				t.Errorf("Execute() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			output := buf.String()
			for _, want := range tt.wantContains {
				if !strings.Contains(output, want) {
					t.Errorf("output missing expected content %q\noutput: %s", want, output)
				}
			}
		})
	}
}

// TestCalendarCommand_GridShape decodes the JSON payload and checks the
// Monday-start grid for February 2026, which opens on a Sunday and
// needs five week rows.
func TestCalendarCommand_GridShape(t *testing.T) {
	isolateEnv(t)
	store := newTestStore(t)

	cmd := newCalendarCmdInternal(store)
	cmd.PersistentFlags().Bool("json", false, "")
	_ = cmd.PersistentFlags().Set("json", "true")
	cmd.SetArgs([]string{"2026-02"})

	var buf strings.Builder
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var payload struct {
		Month string `json:"month"`
		Weeks [][]struct {
			Date    string `json:"date"`
			InMonth bool   `json:"in_month"`
		} `json:"weeks"`
	}
	if err := json.Unmarshal([]byte(buf.String()), &payload); err != nil {
		t.Fatalf("output should be valid JSON: %v\noutput: %s", err, buf.String())
	}

	if len(payload.Weeks) != 5 {
		t.Fatalf("February 2026 grid has %d weeks, want 5", len(payload.Weeks))
	}
	for i, week := range payload.Weeks {
		if len(week) != 7 {
			t.Errorf("week %d has %d days, want 7", i, len(week))
		}
	}

	first := payload.Weeks[0][0]
	if first.Date != "2026-01-26" {
		t.Errorf("grid should start on Monday 2026-01-26, got %s", first.Date)
	}
	if first.InMonth {
		t.Error("the leading January days should be marked outside the month")
	}
}

// TestCalendarCommand_DefaultsToCurrentMonth verifies the bare command
// renders the current month.
func TestCalendarCommand_DefaultsToCurrentMonth(t *testing.T) {
	isolateEnv(t)
	store := newTestStore(t)

	cmd := newCalendarCmdInternal(store)

	var buf strings.Builder
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	now := time.Now()
	want := now.Month().String()
	if !strings.Contains(buf.String(), want) {
		t.Errorf("output should mention the current month %s\noutput: %s", want, buf.String())
	}
}
