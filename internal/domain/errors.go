package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ValidationErrorType is the discriminant carried in ValidationError.Type.
// Clients use it to tell field-specific feedback apart from generic failures.
const ValidationErrorType = "validation"

// ValidationError describes a single rejected input field.
// It is created while validating a request and consumed immediately by the
// error-reporting path; it is never stored.
type ValidationError struct {
	Type   string `json:"type"`
	Param  string `json:"param"`
	Reason string `json:"reason"`
}

// NewValidationError returns a ValidationError for param with the given
// user-facing reason.
func NewValidationError(param, reason string) *ValidationError {
	return &ValidationError{Type: ValidationErrorType, Param: param, Reason: reason}
}

// MissingField returns the ValidationError used when a required field is absent.
// The reason reads e.g. "Missing `name`".
func MissingField(param string) *ValidationError {
	return NewValidationError(param, "Missing `"+param+"`")
}

// InvalidField returns the ValidationError used when a field is present but
// has the wrong shape, e.g. a string where a number is expected.
func InvalidField(param string) *ValidationError {
	return NewValidationError(param, "Invalid `"+param+"`")
}

// Error returns the user-facing reason.
func (e *ValidationError) Error() string {
	return e.Reason
}

// Unwrap makes errors.Is(err, ErrValidation) hold for every ValidationError.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// AsValidationError extracts a ValidationError from anywhere in err's chain.
// The boolean is false for nil and for errors that are not field validation
// failures; callers should then treat err as a generic failure.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
