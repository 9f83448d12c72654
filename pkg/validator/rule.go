package validator

import "time"

// FieldValidator is a single pass/fail check over one extracted field value.
type FieldValidator func(value any) Outcome

// checkFunc reports whether value passed together with the built-in failure message.
type checkFunc func(value any) (bool, string)

// step is one configured validator: a check plus the custom message resolved while the rule was built.
type step struct {
	check     checkFunc
	message   string
	hasCustom bool
}

func (s *step) validate(value any) Outcome {
	ok, msg := s.check(value)
	if ok {
		return Pass()
	}
	if s.hasCustom {
		msg = s.message
	}
	return Fail(msg)
}

// Rule binds one field selector to an ordered chain of field validators.
// Catalog methods append exactly one validator and return the same rule for chaining.
// A rule is configured by one goroutine and then only read.
type Rule[T any] struct {
	selector func(T) any
	steps    []*step
	clock    func() time.Time

	pending    string
	hasPending bool
}

// NewRule creates a standalone rule for the field returned by selector.
// It panics when selector is nil.
func NewRule[T any](selector func(T) any) *Rule[T] {
	if selector == nil {
		panic("validator: nil field selector")
	}
	return &Rule[T]{selector: selector}
}

// FieldValue extracts the value this rule validates from entity.
func (r *Rule[T]) FieldValue(entity T) any {
	return r.selector(entity)
}

// Validators returns the configured validators in evaluation order.
func (r *Rule[T]) Validators() []FieldValidator {
	validators := make([]FieldValidator, len(r.steps))
	for i, s := range r.steps {
		validators[i] = s.validate
	}
	return validators
}

// Len returns the number of configured validators.
func (r *Rule[T]) Len() int {
	return len(r.steps)
}

// WithMessage overrides the failure message of the most recently added validator.
// Validators added later keep their own default messages. Called before any validator
// has been added, the message is held for the next one.
func (r *Rule[T]) WithMessage(message string) *Rule[T] {
	if len(r.steps) == 0 {
		r.pending, r.hasPending = message, true
		return r
	}

	last := r.steps[len(r.steps)-1]
	last.message, last.hasCustom = message, true
	return r
}

// Use appends a caller-supplied field validator. Its success message is replaced
// by the generic one; a custom message set with WithMessage replaces its failure message.
func (r *Rule[T]) Use(fn FieldValidator) *Rule[T] {
	if fn == nil {
		return r
	}
	return r.add(func(value any) (bool, string) {
		out := fn(value)
		return out.Passed, out.Message
	})
}

func (r *Rule[T]) add(check checkFunc) *Rule[T] {
	s := &step{check: check}
	if r.hasPending {
		s.message, s.hasCustom = r.pending, true
		r.pending, r.hasPending = "", false
	}
	r.steps = append(r.steps, s)
	return r
}

// now is read at validation time so date checks compare against the current instant.
func (r *Rule[T]) now() time.Time {
	if r.clock != nil {
		return r.clock()
	}
	return time.Now()
}
