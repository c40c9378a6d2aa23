package errs

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPErrorSerializesOnlyMessage(t *testing.T) {
	e := NewBadRequestError(MsgMissingRequiredFields, nil, []FieldError{{Field: "name", Error: "is required"}})

	body, err := json.Marshal(e)

	require.NoError(t, err)
	assert.JSONEq(t, `{"error": "Missing required fields"}`, string(body))
}

func TestHTTPErrorIs(t *testing.T) {
	wrapped := errors.Wrap(NewNotFoundError("Resource not found", nil), "repository")

	assert.True(t, errors.Is(wrapped, &HTTPError{}))
	assert.False(t, errors.Is(errors.New("plain"), &HTTPError{}))
}

func TestWithMessage(t *testing.T) {
	orig := NewMethodNotAllowedError()
	copied := orig.WithMessage("nope")

	assert.Equal(t, "nope", copied.Message)
	assert.Equal(t, orig.Status, copied.Status)
	assert.Equal(t, MsgMethodNotAllowed, orig.Message, "original must be untouched")
}

func TestConstructorDefaults(t *testing.T) {
	br := NewBadRequestError("bad", nil, nil)
	assert.Equal(t, http.StatusBadRequest, br.Status)
	assert.Equal(t, "BAD_REQUEST", br.Code)

	code := "FEEDBACK_REQUIRED"
	assert.Equal(t, "FEEDBACK_REQUIRED", NewBadRequestError("bad", &code, nil).Code)

	assert.Equal(t, http.StatusNotFound, NewNotFoundError("gone", nil).Status)
	assert.Equal(t, http.StatusMethodNotAllowed, NewMethodNotAllowedError().Status)
	assert.Equal(t, http.StatusInternalServerError, NewInternalServerError().Status)
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "METHOD_NOT_ALLOWED", MakeUpperCaseWithUnderscores("Method Not Allowed"))
}
