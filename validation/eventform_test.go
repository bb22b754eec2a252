package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devevent/devevent-api/apperror"
)

func validValues() map[string][]string {
	return map[string][]string{
		"title":       {"Go Meetup"},
		"description": {"desc"},
		"overview":    {"over"},
		"venue":       {"iHub"},
		"location":    {"Nairobi"},
		"date":        {"2026-10-01"},
		"time":        {"18:00"},
		"mode":        {"offline"},
		"audience":    {"developers"},
		"organizer":   {"Gophers KE"},
		"tags":        {`["a","b"]`},
		"agenda":      {`["1","2","3"]`},
	}
}

func TestValidateEventForm(t *testing.T) {
	t.Run("accepts a complete submission", func(t *testing.T) {
		input, err := ValidateEventForm(validValues(), true)
		require.Nil(t, err)
		assert.Equal(t, "Go Meetup", input.Title)
		assert.Equal(t, []string{"a", "b"}, input.Tags)
		assert.Equal(t, []string{"1", "2", "3"}, input.Agenda)
	})

	t.Run("names every missing field, not just the first", func(t *testing.T) {
		values := validValues()
		delete(values, "title")
		values["date"] = []string{""}
		delete(values, "agenda")

		_, err := ValidateEventForm(values, true)
		require.NotNil(t, err)
		assert.Equal(t, apperror.CodeValidation, err.Code)
		for _, missing := range []string{"title", "date", "agenda"} {
			assert.Contains(t, err.Detail(), missing)
		}
	})

	t.Run("missing image is a distinct code", func(t *testing.T) {
		_, err := ValidateEventForm(validValues(), false)
		require.NotNil(t, err)
		assert.Equal(t, apperror.CodeImageRequired, err.Code)
	})

	t.Run("array field diagnostics name the field and the defect", func(t *testing.T) {
		cases := map[string]struct {
			field string
			value string
			want  string
		}{
			"tags whitespace only":  {"tags", "   ", "valid JSON string"},
			"tags malformed":        {"tags", `["a",`, "tags"},
			"tags not an array":     {"tags", `"a"`, "must be an array"},
			"tags non-strings":      {"tags", `[1]`, "array of strings"},
			"agenda malformed":      {"agenda", `{`, "agenda"},
			"agenda not an array":   {"agenda", `42`, "must be an array"},
			"agenda mixed elements": {"agenda", `["a", null]`, "array of strings"},
		}
		for name, tc := range cases {
			t.Run(name, func(t *testing.T) {
				values := validValues()
				values[tc.field] = []string{tc.value}
				_, err := ValidateEventForm(values, true)
				require.NotNil(t, err)
				assert.Equal(t, apperror.CodeValidation, err.Code)
				assert.Contains(t, err.Detail(), tc.field)
				assert.Contains(t, err.Detail(), tc.want)
			})
		}
	})

	t.Run("empty arrays are still arrays", func(t *testing.T) {
		values := validValues()
		values["tags"] = []string{`[]`}
		input, err := ValidateEventForm(values, true)
		require.Nil(t, err)
		assert.Empty(t, input.Tags)
	})
}

func TestNormalizeEmail(t *testing.T) {
	t.Run("lowercases and trims", func(t *testing.T) {
		email, err := NormalizeEmail("  User@Example.com ")
		require.Nil(t, err)
		assert.Equal(t, "user@example.com", email)
	})

	t.Run("rejects malformed addresses", func(t *testing.T) {
		for _, raw := range []string{"", "not-an-email", "a@b", "a@b.", "@b.c", "a @b.c", "a@ b.c"} {
			_, err := NormalizeEmail(raw)
			require.NotNil(t, err, "email %q", raw)
			assert.Equal(t, apperror.CodeValidation, err.Code)
		}
	})
}
