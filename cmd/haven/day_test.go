package main

import (
	"strings"
	"testing"
	"time"
)

func TestDayCommand(t *testing.T) {
	rows := []string{
		entryRow(time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local), 4, "morning walk"),
		entryRow(time.Date(2026, 3, 10, 21, 30, 0, 0, time.Local), 2, "rough evening"),
		entryRow(time.Date(2026, 3, 11, 8, 0, 0, 0, time.Local), 5, "new day"),
	}

	tests := []struct {
		name           string
		args           []string
		jsonOutput     bool
		wantErr        bool
		wantContains   []string
		wantNotContain []string
	}{
		{
			name:           "filters to the date",
			args:           []string{"2026-03-10"},
			wantContains:   []string{"morning walk", "rough evening"},
			wantNotContain: []string{"new day"},
		},
		{
			name:         "day header names the weekday",
			args:         []string{"2026-03-10"},
			wantContains: []string{"Tuesday, March 10"},
		},
		{
			name:         "empty day",
			args:         []string{"2026-03-12"},
			wantContains: []string{"No entries on 2026-03-12"},
		},
		{
			name:         "invalid date",
			args:         []string{"borked"},
			wantErr:      true,
			wantContains: []string{"invalid date", "YYYY-MM-DD"},
		},
		{
			name:         "json payload",
			args:         []string{"2026-03-10"},
			jsonOutput:   true,
			wantContains: []string{`"date": "2026-03-10"`, `"count": 2`, "rough evening"},
		},
		{
			name:         "json empty day",
			args:         []string{"2026-03-12"},
			jsonOutput:   true,
			wantContains: []string{`"count": 0`, `"entries": []`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)
			store := newTestStore(t, rows...)

			cmd := newDayCmdInternal(store)

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
			for _, notWant := range tt.wantNotContain {
				if strings.Contains(output, notWant) {
					t.Errorf("output contains unexpected content %q\noutput: %s", notWant, output)
				}
			}
		})
	}
}

// TestDayCommand_DefaultsToToday verifies the bare command reports on
// the current day.
func TestDayCommand_DefaultsToToday(t *testing.T) {
	isolateEnv(t)
	store := newTestStore(t)

	cmd := newDayCmdInternal(store)

	var buf strings.Builder
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	today := time.Now().Format("2006-01-02")
	if !strings.Contains(buf.String(), today) {
		t.Errorf("output should mention today's date %s\noutput: %s", today, buf.String())
	}
}
