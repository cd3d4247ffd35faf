// Package logger builds *slog.Logger values from functional options and injects
// request-scoped attributes taken from context.Context.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// result in LogHandlerDecorator, which runs every registered ContextExtractor
// when a record is handled. Attribute helpers in attr.go keep key names
// consistent across packages.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "regcheck"),
//	    logger.WithLevel(level),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "record validated", logger.Outcome("valid"))
//
// Records go to stderr unless WithOutput says otherwise. Error returns an empty
// attribute for a nil error, so it can be passed unconditionally.
package logger
