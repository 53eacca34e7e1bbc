// Package author validates the free-text author field of the manifest,
// which must be empty or of the form "Name <email@domain>".
package author

import (
	"strings"
	"unicode/utf8"
)

// Kind identifies why an author string was rejected.
type Kind int

const (
	// None is the kind of a valid result.
	None Kind = iota

	// MissingEmail means the input has fewer than two whitespace-separated parts.
	MissingEmail

	// MalformedEmailTag means the last part is not wrapped in angle brackets.
	MalformedEmailTag

	// InvalidEmailSyntax means the bracketed text is not a valid email address.
	InvalidEmailSyntax
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case MissingEmail:
		return "missing-email"
	case MalformedEmailTag:
		return "malformed-email-tag"
	case InvalidEmailSyntax:
		return "invalid-email-syntax"
	default:
		return "unknown"
	}
}

// Result is the outcome of validating an author string.
// Cursor is a best-effort rune offset into the trimmed input where the
// problem starts; it is meaningful only when Valid is false.
type Result struct {
	Valid   bool
	Kind    Kind
	Message string
	Cursor  int
}

// Error is the error form of an invalid Result.
type Error struct {
	Kind    Kind
	Message string
	Cursor  int
}

func (e *Error) Error() string {
	return e.Message
}

// Err returns nil for a valid result and an *Error otherwise.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return &Error{Kind: r.Kind, Message: r.Message, Cursor: r.Cursor}
}

// Validate checks input against the "Name <email>" contract.
// An empty or blank input is valid because the author is optional.
func Validate(input string) Result {
	data := strings.TrimSpace(input)
	if data == "" {
		return Result{Valid: true}
	}

	parts := strings.Fields(data)
	if len(parts) < 2 {
		return invalid(MissingEmail, "missing email information", utf8.RuneCountInString(data))
	}

	name := strings.Join(parts[:len(parts)-1], " ")
	email := parts[len(parts)-1]
	cursor := cursorPosition(data, name)

	if !strings.HasPrefix(email, "<") || !strings.HasSuffix(email, ">") {
		return invalid(MalformedEmailTag, "email must be in the form <EMAIL>", cursor)
	}

	if err := validateEmail(email[1 : len(email)-1]); err != nil {
		return invalid(InvalidEmailSyntax, err.Error(), cursor)
	}

	return Result{Valid: true}
}

// ValidateFunc adapts Validate to the func(string) error shape used by prompts.
func ValidateFunc(input string) error {
	return Validate(input).Err()
}

// cursorPosition points at the first "<" when there is one, otherwise just
// past the name and the separating space.
func cursorPosition(data, name string) int {
	if i := strings.IndexRune(data, '<'); i >= 0 {
		return utf8.RuneCountInString(data[:i])
	}
	return utf8.RuneCountInString(name) + 2
}

func invalid(kind Kind, message string, cursor int) Result {
	return Result{Kind: kind, Message: message, Cursor: cursor}
}
