package errs

import "strings"

// FieldError records a single field-level validation failure.
// It is carried on HTTPError for logging only; the response body stays
// a bare {"error": "..."} object.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the error type for all client-visible failures.
//
// The JSON tags pin the wire contract: only Message is serialized, under
// the "error" key. Status and Code drive the response status line and
// structured logs.
type HTTPError struct {
	Code    string       `json:"-"`
	Message string       `json:"error"`
	Status  int          `json:"-"`
	Fields  []FieldError `json:"-"`
}

// Error satisfies the error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError, so
// errors.Is(err, &HTTPError{}) works as a type check.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy with only Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:    e.Code,
		Message: message,
		Status:  e.Status,
		Fields:  e.Fields,
	}
}

// MakeUpperCaseWithUnderscores turns HTTP status text into a stable
// machine code, e.g. "Bad Request" -> "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
