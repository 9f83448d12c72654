package validator

import (
	"context"
	"time"
)

// EntityValidator validates entities of type T.
type EntityValidator[T any] interface {
	Validate(entity T) Outcome
	ValidateAsync(ctx context.Context, entity T) *Future
}

// Configurer populates the rules for one specific entity, which allows rule sets that depend
// on the entity's own data. Implementations must only mutate the collection they are handed;
// that keeps concurrent validations through one Validator safe.
type Configurer[T any] interface {
	ConfigureRules(rules *Collection[T], entity T)
}

// ConfigureFunc adapts an ordinary function to the Configurer interface.
type ConfigureFunc[T any] func(rules *Collection[T], entity T)

func (f ConfigureFunc[T]) ConfigureRules(rules *Collection[T], entity T) {
	f(rules, entity)
}

// Option configures a Validator or a Collection.
type Option func(*options)

type options struct {
	clock func() time.Time
}

// WithClock sets the source of "now" used by the future and past date checks.
// Nil is ignored.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.clock = now
		}
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Validator runs a Configurer's rules against entities. Each call builds a fresh
// Collection, so no rule state survives between calls.
type Validator[T any] struct {
	configurer Configurer[T]
	opts       []Option
}

var _ EntityValidator[struct{}] = (*Validator[struct{}])(nil)

// New creates a Validator around configurer. It panics when configurer is nil.
func New[T any](configurer Configurer[T], opts ...Option) *Validator[T] {
	if configurer == nil {
		panic("validator: nil configurer")
	}
	return &Validator[T]{configurer: configurer, opts: opts}
}

// NewFunc is New for a plain configuration function.
func NewFunc[T any](configure func(rules *Collection[T], entity T), opts ...Option) *Validator[T] {
	if configure == nil {
		panic("validator: nil configure func")
	}
	return New[T](ConfigureFunc[T](configure), opts...)
}

// Rules builds the rule collection that would validate entity.
func (v *Validator[T]) Rules(entity T) *Collection[T] {
	rules := NewCollection[T](v.opts...)
	v.configurer.ConfigureRules(rules, entity)
	return rules
}

// Validate configures the rules for entity and executes them.
func (v *Validator[T]) Validate(entity T) Outcome {
	return v.Rules(entity).Execute(entity)
}

// ValidateAsync runs Validate on a separate goroutine as a single unit of work.
// The outcome is identical to Validate's; only scheduling differs. A context that is
// already done prevents the work from starting.
func (v *Validator[T]) ValidateAsync(ctx context.Context, entity T) *Future {
	return goValidate(ctx, func() Outcome {
		return v.Validate(entity)
	})
}
