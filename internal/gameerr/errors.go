// Package gameerr defines the error taxonomy shared by the combat and
// narration engines.
//
// None of these errors occur with well-formed content; all of them abort the
// encounter being computed.
package gameerr

// Code classifies a failure.
type Code int

const (
	// CodeParse is a malformed dice expression.
	CodeParse Code = iota + 1
	// CodeInvalidArgument is a caller bug: an empty choice list, negative damage.
	CodeInvalidArgument
	// CodeTemplate is a narration template referencing an unbound placeholder.
	CodeTemplate
	// CodeInvariant is a broken model invariant, such as an unarmed attacker.
	CodeInvariant
)

// String returns the taxonomy name of the code.
func (c Code) String() string {
	switch c {
	case CodeParse:
		return "ParseError"
	case CodeInvalidArgument:
		return "InvalidArgument"
	case CodeTemplate:
		return "TemplateError"
	case CodeInvariant:
		return "InvariantViolation"
	default:
		return "Unknown"
	}
}

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Code.String() + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Code.String() + ": " + e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// Sentinels for errors.Is checks.
var (
	ErrParse           = &Error{Code: CodeParse, Message: "parse error"}
	ErrInvalidArgument = &Error{Code: CodeInvalidArgument, Message: "invalid argument"}
	ErrTemplate        = &Error{Code: CodeTemplate, Message: "template error"}
	ErrInvariant       = &Error{Code: CodeInvariant, Message: "invariant violation"}
)

// New creates a coded error.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates a coded error wrapping cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}
