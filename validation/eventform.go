// Package validation checks and normalizes raw event submissions before
// they touch the image store or the database. Everything here is pure:
// no I/O, no side effects.
package validation

import (
	"encoding/json"
	"strings"

	"github.com/devevent/devevent-api/apperror"
)

// requiredFields is the fixed set a submission must carry. Order matters
// only for the missing-fields message.
var requiredFields = []string{
	"title",
	"description",
	"overview",
	"venue",
	"location",
	"date",
	"time",
	"mode",
	"audience",
	"agenda",
	"organizer",
	"tags",
}

// EventInput is a validated, normalized submission ready for the intake
// pipeline. Tags and Agenda are already decoded from their JSON-array
// form fields.
type EventInput struct {
	Title       string
	Description string
	Overview    string
	Venue       string
	Location    string
	Date        string
	Time        string
	Mode        string
	Audience    string
	Organizer   string
	Tags        []string
	Agenda      []string
}

// ValidateEventForm checks the multipart field values of an event
// submission. values maps field name to submitted values (first value
// wins, as with url.Values); hasImage reports whether the image file
// part was present. It reports every missing required field at once,
// not just the first.
func ValidateEventForm(values map[string][]string, hasImage bool) (*EventInput, *apperror.Error) {
	field := func(name string) string {
		if v, ok := values[name]; ok && len(v) > 0 {
			return v[0]
		}
		return ""
	}

	var missing []string
	for _, name := range requiredFields {
		if field(name) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, apperror.Validation("Missing required fields: %s", strings.Join(missing, ", "))
	}

	if !hasImage {
		return nil, apperror.ImageRequired()
	}

	tags, err := parseStringArray("tags", field("tags"))
	if err != nil {
		return nil, err
	}
	agenda, err := parseStringArray("agenda", field("agenda"))
	if err != nil {
		return nil, err
	}

	return &EventInput{
		Title:       field("title"),
		Description: field("description"),
		Overview:    field("overview"),
		Venue:       field("venue"),
		Location:    field("location"),
		Date:        field("date"),
		Time:        field("time"),
		Mode:        field("mode"),
		Audience:    field("audience"),
		Organizer:   field("organizer"),
		Tags:        tags,
		Agenda:      agenda,
	}, nil
}

// parseStringArray decodes a JSON-array form field, distinguishing an
// empty value, malformed JSON, a non-array, and non-string elements.
func parseStringArray(name, raw string) ([]string, *apperror.Error) {
	if strings.TrimSpace(raw) == "" {
		return nil, apperror.Validation("Invalid %s format: %s must be a valid JSON string", name, name)
	}

	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, apperror.Validation("Invalid %s format: %v", name, err)
	}

	arr, ok := decoded.([]any)
	if !ok {
		return nil, apperror.Validation("Invalid %s format: %s must be an array", name, name)
	}

	out := make([]string, 0, len(arr))
	for _, el := range arr {
		s, ok := el.(string)
		if !ok {
			return nil, apperror.Validation("Invalid %s format: %s must be an array of strings", name, name)
		}
		out = append(out, s)
	}
	return out, nil
}
