package validator

const (
	// PassedMessage is carried by every successful field validator invocation.
	PassedMessage = "Entity validated successfully."

	// SucceededMessage is returned by a collection run in which no validator failed.
	SucceededMessage = "Entity validation rules succeeded."
)

// Outcome is the pass/fail result of a single field validator or of a whole collection run.
// Type, range and pattern failures all share this shape and differ only by message text.
type Outcome struct {
	Passed  bool
	Message string
}

// succeeded is the single generic success shared by all collection runs.
var succeeded = Outcome{Passed: true, Message: SucceededMessage}

// Pass returns the generic field-level success outcome.
func Pass() Outcome {
	return Outcome{Passed: true, Message: PassedMessage}
}

// Fail returns a failed outcome carrying message verbatim.
func Fail(message string) Outcome {
	return Outcome{Passed: false, Message: message}
}

// Err converts a failed outcome into an error that matches ErrValidationFailed.
// Passed outcomes return nil.
func (o Outcome) Err() error {
	if o.Passed {
		return nil
	}
	return &ValidationError{Message: o.Message}
}
