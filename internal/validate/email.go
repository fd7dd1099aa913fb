package validate

import (
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidEmail reports an address that does not look like an email.
var ErrInvalidEmail = errors.New("invalid email format")

// RFC 5321 length limits.
const (
	maxEmailLen  = 254
	maxLocalLen  = 64
	maxDomainLen = 255
)

// Intentionally loose: the goal is catching typos, not full RFC 5322
// address grammar.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email normalizes (trims, lowercases) and validates an email address.
func Email(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", ErrEmpty
	}
	if len(email) > maxEmailLen {
		return "", ErrStringTooLong
	}
	if !emailPattern.MatchString(email) {
		return "", ErrInvalidEmail
	}

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return "", ErrInvalidEmail
	}
	if len(local) > maxLocalLen || len(domain) > maxDomainLen {
		return "", ErrStringTooLong
	}
	return email, nil
}
