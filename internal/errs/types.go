package errs

import "net/http"

// Canonical client-error messages fixed by the API contract.
const (
	MsgMissingRequiredFields = "Missing required fields"
	MsgMissingIDParameter    = "Missing id parameter"
	MsgMethodNotAllowed      = "Method not allowed"
	MsgInvalidRequestBody    = "Invalid request body"
)

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// code overrides the default "BAD_REQUEST" machine code when non-nil;
// fields carries per-field validation detail for logging.
func NewBadRequestError(message string, code *string, fields []FieldError) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusBadRequest,
		Fields:  fields,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewMethodNotAllowedError creates the 405 error with the contract's
// fixed body.
func NewMethodNotAllowedError() *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusMethodNotAllowed)),
		Message: MsgMethodNotAllowed,
		Status:  http.StatusMethodNotAllowed,
	}
}

// NewInternalServerError creates a generic 500 error. The message is the
// bare status text so internal detail never reaches clients.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message: http.StatusText(http.StatusInternalServerError),
		Status:  http.StatusInternalServerError,
	}
}
