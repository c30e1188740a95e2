package report

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "valid date",
			value: "2026-08-05",
			want:  time.Date(2026, 8, 5, 0, 0, 0, 0, time.Local),
		},
		{
			name:  "surrounding whitespace",
			value: " 2026-08-05 ",
			want:  time.Date(2026, 8, 5, 0, 0, 0, 0, time.Local),
		},
		{
			name:    "missing zero padding",
			value:   "2026-8-5",
			wantErr: true,
		},
		{
			name:    "empty",
			value:   "",
			wantErr: true,
		},
		{
			name:    "not a date",
			value:   "tuesday",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
				return
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestParseMonth(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		wantYear  int
		wantMonth time.Month
		wantErr   bool
	}{
		{
			name:      "valid month",
			value:     "2026-08",
			wantYear:  2026,
			wantMonth: time.August,
		},
		{
			name:      "december",
			value:     "2026-12",
			wantYear:  2026,
			wantMonth: time.December,
		},
		{
			name:    "full date rejected",
			value:   "2026-08-05",
			wantErr: true,
		},
		{
			name:    "empty",
			value:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, month, err := ParseMonth(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseMonth(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if year != tt.wantYear || month != tt.wantMonth {
				t.Errorf("ParseMonth(%q) = %d, %v, want %d, %v", tt.value, year, month, tt.wantYear, tt.wantMonth)
			}
		})
	}
}
