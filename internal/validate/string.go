// Package validate provides input validation and sanitization for the API:
// length and charset constraints, HTML escaping, and a basic SQL-keyword
// screen for fields that end up in log lines or admin views.
package validate

import (
	"errors"
	"fmt"
	"html"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	ErrStringTooShort    = errors.New("string is too short")
	ErrStringTooLong     = errors.New("string is too long")
	ErrInvalidCharacters = errors.New("string contains invalid characters")
	ErrSQLKeyword        = errors.New("string contains SQL keywords")
	ErrEmpty             = errors.New("string is empty")
)

// Heuristic screen only; parameterized queries are the real defense.
var sqlKeywords = []string{
	"SELECT", "INSERT", "UPDATE", "DELETE", "DROP", "CREATE", "ALTER",
	"TRUNCATE", "EXEC", "EXECUTE", "UNION", "JOIN", "WHERE", "FROM",
	"--", "/*", "*/", ";--", "xp_", "sp_",
}

// StringConstraints describes what a string field accepts. Lengths are in
// runes, not bytes; zero means unbounded.
type StringConstraints struct {
	MinLength        int
	MaxLength        int
	AllowedPattern   *regexp.Regexp
	DisallowedWords  []string
	CheckSQLKeywords bool
	AllowEmpty       bool
	TrimSpace        bool
}

// String validates s against the constraints and returns the (optionally
// trimmed) value.
func String(s string, constraints StringConstraints) (string, error) {
	if constraints.TrimSpace {
		s = strings.TrimSpace(s)
	}
	if s == "" {
		if constraints.AllowEmpty {
			return s, nil
		}
		return "", ErrEmpty
	}

	if err := checkLength(s, constraints.MinLength, constraints.MaxLength); err != nil {
		return "", err
	}
	if constraints.AllowedPattern != nil && !constraints.AllowedPattern.MatchString(s) {
		return "", fmt.Errorf("%w: does not match required pattern", ErrInvalidCharacters)
	}
	if constraints.CheckSQLKeywords {
		if err := checkSQLKeywords(s); err != nil {
			return "", err
		}
	}

	upper := strings.ToUpper(s)
	for _, word := range constraints.DisallowedWords {
		if strings.Contains(upper, strings.ToUpper(word)) {
			return "", fmt.Errorf("string contains disallowed word: %q", word)
		}
	}
	return s, nil
}

func checkLength(s string, min, max int) error {
	length := utf8.RuneCountInString(s)
	if min > 0 && length < min {
		return fmt.Errorf("%w: got %d chars, need at least %d", ErrStringTooShort, length, min)
	}
	if max > 0 && length > max {
		return fmt.Errorf("%w: got %d chars, maximum is %d", ErrStringTooLong, length, max)
	}
	return nil
}

func checkSQLKeywords(s string) error {
	upper := strings.ToUpper(s)
	for _, keyword := range sqlKeywords {
		if strings.Contains(upper, keyword) {
			return fmt.Errorf("%w: contains %q", ErrSQLKeyword, keyword)
		}
	}
	return nil
}

// SanitizeHTML escapes HTML special characters in user-generated text.
func SanitizeHTML(s string) string {
	return html.EscapeString(s)
}

// SanitizeString validates then HTML-escapes in one step.
func SanitizeString(s string, constraints StringConstraints) (string, error) {
	validated, err := String(s, constraints)
	if err != nil {
		return "", err
	}
	return SanitizeHTML(validated), nil
}

// TermText validates a slang term or translation text, 1-200 characters.
// No SQL screen: slang is natural language where "drop" and "select" are
// legitimate words.
func TermText(text string) (string, error) {
	return SanitizeString(text, StringConstraints{
		MinLength: 1,
		MaxLength: 200,
		TrimSpace: true,
	})
}

var regionPattern = regexp.MustCompile(`^[A-Za-z0-9 _\-\.]+$`)

// RegionName validates a region or city name: 1-100 characters from a
// conservative charset, no SQL keywords.
func RegionName(name string) (string, error) {
	return SanitizeString(name, StringConstraints{
		MinLength:        1,
		MaxLength:        100,
		AllowedPattern:   regionPattern,
		CheckSQLKeywords: true,
		TrimSpace:        true,
	})
}

// QueryText validates a free-text search query, 1-500 characters.
func QueryText(q string) (string, error) {
	return SanitizeString(q, StringConstraints{
		MinLength: 1,
		MaxLength: 500,
		TrimSpace: true,
	})
}

// UsageExample validates one usage-example sentence, optional, up to 1000
// characters.
func UsageExample(s string) (string, error) {
	return SanitizeString(s, StringConstraints{
		MaxLength:  1000,
		AllowEmpty: true,
		TrimSpace:  true,
	})
}

// Description validates a description field, optional, up to 5000 characters.
func Description(desc string) (string, error) {
	return SanitizeString(desc, StringConstraints{
		MaxLength:  5000,
		AllowEmpty: true,
		TrimSpace:  true,
	})
}
