// Package auth gates entry into the teacher role. The check is a single
// shared classroom code, not security-grade authentication; Verifier keeps
// it pluggable so a real mechanism can replace it without touching the
// role state machine.
package auth

import "strings"

// DefaultCode is the out-of-the-box teacher access code
const DefaultCode = "BLINK123"

// Verifier checks a teacher access code
type Verifier interface {
	Verify(input string) bool
}

// StaticCode verifies against one fixed code, case-insensitively
type StaticCode struct {
	Code string
}

// NewStaticCode returns a verifier for the given code, falling back to
// DefaultCode when empty
func NewStaticCode(code string) StaticCode {
	if code == "" {
		code = DefaultCode
	}
	return StaticCode{Code: strings.ToUpper(code)}
}

// Verify compares the trimmed, upper-cased input against the code
func (c StaticCode) Verify(input string) bool {
	return strings.ToUpper(strings.TrimSpace(input)) == c.Code
}
