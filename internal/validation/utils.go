package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/studcouncil/council-api/internal/errs"
)

var validate = validator.New()

// Validatable is implemented by request payload types that know how to
// validate themselves.
//
// Typical pattern: declare `validate:"required"` tags and have
// Validate() call Struct. Types with rules that tags cannot express
// return an *errs.HTTPError directly and it passes through untouched.
type Validatable interface {
	Validate() error
}

// Struct runs tag-based validation on a request payload.
func Struct(v any) error {
	return validate.Struct(v)
}

// CustomValidationError represents a single validation issue that
// cannot be expressed via validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that
// satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// BindAndValidate binds request data into payload and validates it.
//
// Binding covers the JSON body and, for bodyless methods, query
// parameters. A malformed body is a 400; validation failures become the
// contract's fixed "Missing required fields" response unless the
// payload supplied its own *errs.HTTPError.
//
// payload must be a pointer so echo's Bind can populate it.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError(errs.MsgInvalidRequestBody, nil, nil)
	}

	if err := payload.Validate(); err != nil {
		return toHTTPError(err)
	}

	return nil
}

// toHTTPError converts a validation failure into the application error
// shape. Field-level detail is retained for logging only.
func toHTTPError(err error) error {
	switch e := err.(type) {
	case *errs.HTTPError:
		return e

	case validator.ValidationErrors:
		return errs.NewBadRequestError(errs.MsgMissingRequiredFields, nil, extractFieldErrors(e))

	case CustomValidationErrors:
		fields := make([]errs.FieldError, 0, len(e))
		for _, ce := range e {
			fields = append(fields, errs.FieldError{Field: ce.Field, Error: ce.Message})
		}
		return errs.NewBadRequestError(errs.MsgMissingRequiredFields, nil, fields)

	default:
		return errs.NewBadRequestError(errs.MsgMissingRequiredFields, nil, nil)
	}
}

// extractFieldErrors converts validator tag failures into readable
// per-field messages.
func extractFieldErrors(validationErrors validator.ValidationErrors) []errs.FieldError {
	var fieldErrors []errs.FieldError

	for _, err := range validationErrors {
		field := strings.ToLower(err.Field())
		var msg string

		switch err.Tag() {
		case "required":
			msg = "is required"

		case "min":
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", err.Param())
			}

		case "max":
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", err.Param())
			}

		case "email":
			msg = "must be a valid email address"

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", err.Param())

		default:
			if err.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, err.Tag(), err.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, err.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return fieldErrors
}
