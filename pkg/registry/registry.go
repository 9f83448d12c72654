package registry

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrymomot/entityvalidator/pkg/logger"
	"github.com/dmitrymomot/entityvalidator/pkg/validator"
)

// Registry maps entity types to their validators. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[reflect.Type]*entry
	logger  *slog.Logger
}

// entry keeps the typed validator together with type-erased adapters
// so ValidateAny can dispatch on the runtime type of an entity.
type entry struct {
	name          string
	validator     any
	validate      func(entity any) validator.Outcome
	validateAsync func(ctx context.Context, entity any) *validator.Future
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for registration and failure records.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		entries: make(map[reflect.Type]*entry),
		logger:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With(logger.Component("registry"))
	return r
}

// Register binds v to entity type T. Each type accepts a single validator.
func Register[T any](r *Registry, v validator.EntityValidator[T]) error {
	if v == nil || isNilValue(v) {
		return ErrNilValidator
	}

	typ := reflect.TypeFor[T]()
	name := typeName(typ)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[typ]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, name)
	}

	r.entries[typ] = &entry{
		name:      name,
		validator: v,
		validate: func(entity any) validator.Outcome {
			return v.Validate(entity.(T))
		},
		validateAsync: func(ctx context.Context, entity any) *validator.Future {
			return v.ValidateAsync(ctx, entity.(T))
		},
	}

	r.logger.Debug("validator registered", logger.Entity(name))
	return nil
}

// MustRegister works like Register but panics on error.
func MustRegister[T any](r *Registry, v validator.EntityValidator[T]) {
	if err := Register(r, v); err != nil {
		panic(err)
	}
}

// Lookup returns the validator registered for T.
func Lookup[T any](r *Registry) (validator.EntityValidator[T], bool) {
	e, ok := r.lookup(reflect.TypeFor[T]())
	if !ok {
		return nil, false
	}
	v, ok := e.validator.(validator.EntityValidator[T])
	return v, ok
}

// Validate validates entity with the validator registered for T.
func Validate[T any](ctx context.Context, r *Registry, entity T) (validator.Outcome, error) {
	e, ok := r.lookup(reflect.TypeFor[T]())
	if !ok {
		return validator.Outcome{}, fmt.Errorf("%w: %s", ErrNotRegistered, typeName(reflect.TypeFor[T]()))
	}
	out := e.validate(entity)
	r.logOutcome(ctx, e.name, out)
	return out, nil
}

// ValidateAsync starts validating entity with the validator registered for T.
// Unlike Validate it does not log failed outcomes; the registry never sees the
// result, so callers that await the future log it themselves.
func ValidateAsync[T any](ctx context.Context, r *Registry, entity T) (*validator.Future, error) {
	e, ok := r.lookup(reflect.TypeFor[T]())
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, typeName(reflect.TypeFor[T]()))
	}
	return e.validateAsync(ctx, entity), nil
}

// ValidateAny validates entity with the validator registered for its dynamic type.
// Pointers are not dereferenced: *Customer and Customer are different types.
func (r *Registry) ValidateAny(ctx context.Context, entity any) (validator.Outcome, error) {
	e, err := r.lookupAny(entity)
	if err != nil {
		return validator.Outcome{}, err
	}
	out := e.validate(entity)
	r.logOutcome(ctx, e.name, out)
	return out, nil
}

// ValidateAnyAsync is the asynchronous form of ValidateAny. Like ValidateAsync it
// leaves logging of the outcome to the caller.
func (r *Registry) ValidateAnyAsync(ctx context.Context, entity any) (*validator.Future, error) {
	e, err := r.lookupAny(entity)
	if err != nil {
		return nil, err
	}
	return e.validateAsync(ctx, entity), nil
}

// Has reports whether a validator is registered for the dynamic type of entity.
func (r *Registry) Has(entity any) bool {
	_, err := r.lookupAny(entity)
	return err == nil
}

// Types returns the names of all registered entity types in alphabetical order.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		names = append(names, e.name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of registered validators.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

func (r *Registry) lookup(typ reflect.Type) (*entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[typ]
	return e, ok
}

func (r *Registry) lookupAny(entity any) (*entry, error) {
	if entity == nil {
		return nil, fmt.Errorf("%w: <nil>", ErrNotRegistered)
	}
	typ := reflect.TypeOf(entity)
	e, ok := r.lookup(typ)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, typeName(typ))
	}
	return e, nil
}

func (r *Registry) logOutcome(ctx context.Context, name string, out validator.Outcome) {
	if out.Passed {
		return
	}
	r.logger.DebugContext(ctx, "entity validation failed",
		logger.Entity(name),
		logger.Outcome(out),
	)
}

// typeName renders typ like %T without the pointer markers, e.g. "customer.Customer".
func typeName(typ reflect.Type) string {
	return strings.TrimLeft(typ.String(), "*")
}

func isNilValue(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
