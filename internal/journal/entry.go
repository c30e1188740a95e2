// Package journal provides the entry schema, validation, and CSV persistence for the haven mood journal.
package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// MoodMin and MoodMax bound the mood rating scale.
const (
	MoodMin = 1
	MoodMax = 5
)

// TimeLayout is the canonical timestamp format written to the store:
// local time at second precision, no zone offset.
const TimeLayout = "2006-01-02T15:04:05"

// Entry represents one mood journal record.
//
// Loaded entries degrade field by field: a row that survives structural
// parsing always yields an Entry, but Timestamp is zero when the cell was
// unreadable and Mood is 0 when the cell was not an integer. Use
// HasTimestamp and HasMood before treating either field as meaningful.
type Entry struct {
	Timestamp time.Time
	Mood      int
	Note      string
	Tags      []string
}

// Category is the mood classification used by aggregation.
type Category int

// Mood categories. CategoryNone marks entries whose mood cannot be
// classified (missing or outside the rating scale).
const (
	CategoryNone Category = iota
	CategoryHappy
	CategoryNeutral
	CategorySad
)

// String returns the lowercase category name, or "" for CategoryNone.
func (c Category) String() string {
	switch c {
	case CategoryHappy:
		return "happy"
	case CategoryNeutral:
		return "neutral"
	case CategorySad:
		return "sad"
	default:
		return ""
	}
}

// HasTimestamp reports whether the entry carries a usable timestamp.
func (e *Entry) HasTimestamp() bool {
	return !e.Timestamp.IsZero()
}

// HasMood reports whether the mood is a valid rating on the scale.
func (e *Entry) HasMood() bool {
	return e.Mood >= MoodMin && e.Mood <= MoodMax
}

// Category classifies the entry's mood: 4-5 happy, 3 neutral, 1-2 sad.
// Entries without a valid mood return CategoryNone.
func (e *Entry) Category() Category {
	switch {
	case !e.HasMood():
		return CategoryNone
	case e.Mood >= 4:
		return CategoryHappy
	case e.Mood == 3:
		return CategoryNeutral
	default:
		return CategorySad
	}
}

// ValidationError is returned when entry validation fails.
type ValidationError struct {
	Fields  []string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Fields, ", "))
}

// AsValidationError checks if err is a ValidationError and extracts it.
func AsValidationError(err error, target **ValidationError) bool {
	return errors.As(err, target)
}

// ValidateMood checks that a mood rating is on the scale.
// Returns a ValidationError naming the mood field if it is not.
func ValidateMood(mood int) error {
	if mood < MoodMin || mood > MoodMax {
		return &ValidationError{
			Fields:  []string{"mood"},
			Message: fmt.Sprintf("mood must be between %d and %d", MoodMin, MoodMax),
		}
	}
	return nil
}

// Validate checks that the entry is fit to be written to the store.
// Loaded entries are never validated; tolerance applies on the way in,
// strictness on the way out.
func (e *Entry) Validate() error {
	var missing []string
	if e.Timestamp.IsZero() {
		missing = append(missing, "timestamp")
	}
	if !e.HasMood() {
		missing = append(missing, "mood")
	}

	if len(missing) > 0 {
		return &ValidationError{
			Fields:  missing,
			Message: "invalid entry fields",
		}
	}

	return nil
}

// timestampLayouts are the accepted input formats, tried in order.
// The store always writes TimeLayout; the rest tolerate hand-edited
// files and data imported from elsewhere.
var timestampLayouts = []string{
	TimeLayout,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses a stored timestamp cell.
// Naive layouts are interpreted in local time.
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.New("empty timestamp")
	}
	for _, layout := range timestampLayouts {
		if layout == time.RFC3339 {
			if t, err := time.Parse(layout, value); err == nil {
				return t, nil
			}
			continue
		}
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp: %s", value)
}

// FormatTimestamp renders a timestamp in the canonical stored form.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimeLayout)
}

// entryJSON mirrors Entry for serialization with a string timestamp.
type entryJSON struct {
	Timestamp string   `json:"timestamp,omitempty"`
	Mood      int      `json:"mood"`
	Category  string   `json:"category,omitempty"`
	Note      string   `json:"note,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

// MarshalJSON serializes the entry with its timestamp in TimeLayout form.
// Entries without a usable timestamp omit the field.
func (e *Entry) MarshalJSON() ([]byte, error) {
	out := entryJSON{
		Mood:     e.Mood,
		Category: e.Category().String(),
		Note:     e.Note,
		Tags:     e.Tags,
	}
	if e.HasTimestamp() {
		out.Timestamp = FormatTimestamp(e.Timestamp)
	}
	return json.Marshal(out)
}
