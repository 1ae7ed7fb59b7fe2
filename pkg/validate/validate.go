package validate

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/unihub/cli/pkg/errors"
)

// Input kinds drive both prompt generation and validation
const (
	KindText   = "text"
	KindSelect = "select"
	KindDate   = "date"
)

// Levels and faculties the server accepts
var (
	Levels    = []string{"Freshman", "Sophomore", "Junior", "Senior"}
	Faculties = []string{"ICE", "CSE", "SBL_B", "SBL_L"}
)

// Field describes one editable form field
type Field struct {
	Name       string
	Label      string
	Kind       string
	MinLen     int
	MaxLen     int
	Required   bool
	SingleWord bool
	StripAt    bool // leading @ removed before validation (telegram)
	Options    []string
}

// Section groups the fields of one profile edit form
type Section struct {
	Name   string
	Fields []Field
}

var sections = map[string]Section{
	"basic": {
		Name: "basic",
		Fields: []Field{
			{Name: "name", Label: "Name", Kind: KindText, MinLen: 2, MaxLen: 20, Required: true, SingleWord: true},
			{Name: "surname", Label: "Surname", Kind: KindText, MinLen: 2, MaxLen: 20, Required: true, SingleWord: true},
			{Name: "birthday", Label: "Birthday", Kind: KindDate, MaxLen: 10},
		},
	},
	"personal": {
		Name: "personal",
		Fields: []Field{
			{Name: "name", Label: "Name", Kind: KindText, MinLen: 2, MaxLen: 20, Required: true, SingleWord: true},
			{Name: "surname", Label: "Surname", Kind: KindText, MinLen: 2, MaxLen: 20, Required: true, SingleWord: true},
			{Name: "relationship", Label: "Relationship", Kind: KindText, MaxLen: 100, Required: true},
			{Name: "hobbies", Label: "Hobbies", Kind: KindText, MaxLen: 30, Required: true},
			{Name: "birthday", Label: "Birthday", Kind: KindDate, MaxLen: 10},
		},
	},
	"academic": {
		Name: "academic",
		Fields: []Field{
			{Name: "level", Label: "Level", Kind: KindSelect, Options: Levels},
			{Name: "faculty", Label: "Faculty", Kind: KindSelect, Options: Faculties},
			{Name: "favorite_subjects", Label: "Favorite subjects", Kind: KindText, MaxLen: 50},
			{Name: "professor", Label: "Favorite professor", Kind: KindText, MaxLen: 30},
		},
	},
	"contact": {
		Name: "contact",
		Fields: []Field{
			{Name: "telegram", Label: "Telegram", Kind: KindText, MaxLen: 50, StripAt: true},
		},
	},
	"about": {
		Name: "about",
		Fields: []Field{
			{Name: "about_me", Label: "About me", Kind: KindText, MaxLen: 70},
		},
	},
}

// SectionNames lists the editable sections in display order
var SectionNames = []string{"basic", "personal", "academic", "contact", "about"}

// GetSection returns the config for a named section
func GetSection(name string) (Section, bool) {
	s, ok := sections[name]
	return s, ok
}

// FieldByName finds a field within a section
func (s Section) FieldByName(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Sanitize trims, collapses internal whitespace runs, and hard-truncates
// at the max length. Lengths count characters, not bytes, so multibyte
// text is never split mid-rune.
func Sanitize(value string, maxLen int) string {
	value = whitespaceRun.ReplaceAllString(strings.TrimSpace(value), " ")
	if maxLen > 0 && utf8.RuneCountInString(value) > maxLen {
		value = string([]rune(value)[:maxLen])
	}
	return value
}

// CharactersLeft supports character counters on text inputs
func (f Field) CharactersLeft(value string) int {
	left := f.MaxLen - utf8.RuneCountInString(strings.TrimSpace(value))
	if left < 0 {
		return 0
	}
	return left
}

// Validate checks a single field value and returns the sanitized form.
// Validation is purely local; no request is issued on failure.
func (f Field) Validate(value string) (string, error) {
	if f.StripAt {
		value = strings.TrimPrefix(strings.TrimSpace(value), "@")
	}

	switch f.Kind {
	case KindSelect:
		value = strings.TrimSpace(value)
		for _, opt := range f.Options {
			if value == opt {
				return value, nil
			}
		}
		return "", errors.ValidationError(f.Name,
			fmt.Sprintf("must be one of: %s", strings.Join(f.Options, ", ")))

	case KindDate:
		return validateBirthday(f.Name, value)

	default:
		value = Sanitize(value, f.MaxLen)

		if f.Required && value == "" {
			return "", errors.ValidationError(f.Name, "is required")
		}
		if value == "" {
			return "", nil
		}
		if f.MinLen > 0 && utf8.RuneCountInString(value) < f.MinLen {
			return "", errors.ValidationError(f.Name,
				fmt.Sprintf("too short (min %d characters)", f.MinLen))
		}
		if f.SingleWord && strings.Contains(value, " ") {
			return "", errors.ValidationError(f.Name, "cannot contain spaces")
		}
		return value, nil
	}
}

// Validate checks the provided values against the section's fields and
// returns the sanitized payload for a partial update. Fields absent from
// values are left out of the payload.
func (s Section) Validate(values map[string]string) (map[string]interface{}, error) {
	payload := make(map[string]interface{}, len(values))
	for name, raw := range values {
		field, ok := s.FieldByName(name)
		if !ok {
			return nil, errors.ValidationError(name, "unknown field for section "+s.Name)
		}
		clean, err := field.Validate(raw)
		if err != nil {
			return nil, err
		}
		payload[name] = clean
	}
	if len(payload) == 0 {
		return nil, errors.ValidationError(s.Name, "no fields to update")
	}
	return payload, nil
}

var birthdayFormat = regexp.MustCompile(`^\d{4}/\d{2}/\d{2}$`)

func validateBirthday(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil // Optional
	}

	if !birthdayFormat.MatchString(value) {
		return "", errors.ValidationError(field, "must be in format YYYY/MM/DD (e.g. 2006/04/21)")
	}

	t, err := time.Parse("2006/01/02", value)
	if err != nil {
		return "", errors.ValidationError(field, "invalid date, check the day and month values")
	}
	if t.Year() < 2000 || t.Year() > 2009 {
		return "", errors.ValidationError(field, "birth year must be between 2000 and 2009")
	}
	if t.After(time.Now()) {
		return "", errors.ValidationError(field, "cannot be in the future")
	}

	return value, nil
}

// MaxVoiceTextLen is the voice board post limit after whitespace collapsing
const MaxVoiceTextLen = 100

// VoiceText sanitizes and validates a voice board post
func VoiceText(text string) (string, error) {
	text = whitespaceRun.ReplaceAllString(strings.TrimSpace(text), " ")
	if text == "" {
		return "", errors.ValidationError("text", "is required")
	}
	if utf8.RuneCountInString(text) > MaxVoiceTextLen {
		return "", errors.ValidationError("text",
			fmt.Sprintf("exceeds %d characters", MaxVoiceTextLen))
	}
	return text, nil
}
