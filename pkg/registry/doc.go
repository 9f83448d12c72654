// Package registry keeps the validator for each entity type in one explicit,
// concurrency-safe table.
//
// Validators are registered by entity type and looked up either statically
// through the generic helpers or dynamically through ValidateAny, which
// dispatches on the runtime type of its argument:
//
//	r := registry.New(registry.WithLogger(log))
//	registry.MustRegister(r, customer.NewValidator())
//
//	out, err := r.ValidateAny(ctx, record)
//	if errors.Is(err, registry.ErrNotRegistered) {
//	    // unknown entity type
//	}
//
// Failed synchronous validations are logged at debug level. Asynchronous
// validations are not logged, since their outcome is only known to whoever
// awaits the future. The outcome itself is always returned to the caller.
package registry
