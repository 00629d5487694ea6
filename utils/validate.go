package utils

import (
	"regexp"
	"strings"
	"time"
	"unicode"
)

// FieldError is one field-level validation finding.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors aggregates findings across fields; it is returned as a
// 400 body so a form can show every problem at once.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, fe := range v {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return strings.Join(msgs, "; ")
}

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[0-9]{10}$`)
)

func IsEmail(s string) bool { return emailRe.MatchString(s) }

// IsPhone requires exactly ten digits.
func IsPhone(s string) bool { return phoneRe.MatchString(s) }

// IsStrongPassword requires at least 8 characters with at least one
// lowercase, one uppercase, one digit and one symbol.
func IsStrongPassword(s string) bool {
	if len(s) < 8 {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}

// IsISODate accepts calendar dates in strict YYYY-MM-DD form. Entries are
// stored and range-compared as strings, so the format has to be exact.
func IsISODate(s string) bool {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return false
	}
	return t.Format("2006-01-02") == s
}
