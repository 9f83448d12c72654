package validator

import "errors"

var (
	// ErrValidationFailed is matched by every error produced from a failed Outcome.
	ErrValidationFailed = errors.New("validation failed")

	// ErrValidationPanicked is returned by a Future whose rule configuration or execution panicked.
	ErrValidationPanicked = errors.New("validation panicked")

	// ErrTimeout is returned when a Future does not complete within the awaited duration.
	ErrTimeout = errors.New("validator: timed out waiting for validation result")
)

// ValidationError carries the message of a failed Outcome through error returns.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// ExtractMessage returns the outcome message wrapped in err, if any.
func ExtractMessage(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message, true
	}

	return "", false
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrValidationFailed)
}
