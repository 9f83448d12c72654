// Package logger builds *slog.Logger values for the entitycheck tooling and
// provides attribute constructors that keep key names consistent.
//
// New creates a logger from Option functions. The options select the output
// format (text or json), the minimum level, static attributes attached to
// every record, and ContextExtractor callbacks that add attributes pulled from
// the context passed to the *Context logging methods.
//
// # Architecture
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the
// configured Format and wraps it with a context handler that runs the
// registered extractors before delegating. Without extractors the concrete
// handler is used directly.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "entitycheck"),
//	    logger.WithContextValue("run_id", runIDKey{}),
//	)
//
//	log.DebugContext(ctx, "record validated",
//	    logger.Entity("customer.Customer"),
//	    logger.Record(3),
//	    logger.Outcome(out),
//	)
//
// # Configuration
//
//   - WithEnvironment: per-environment defaults plus service and env attributes.
//   - WithFormat and WithLevel: override the output format and level.
//   - WithAttr: attach static attributes.
//   - WithContextExtractors and WithContextValue: inject attributes from context.
//
// ParseLevel and ParseEnv turn configuration strings into option arguments.
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally:
//
//	log.Info("done", logger.Error(err))
package logger
