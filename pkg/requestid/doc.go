// Package requestid attaches correlation identifiers to a context.Context so
// that every log record produced while handling one input can be grouped.
//
// IDs are UUIDv4 strings generated with github.com/google/uuid. Caller-supplied
// IDs are accepted when they are at most 128 characters of [a-zA-Z0-9_-].
//
//	ctx, id := requestid.Ensure(ctx)
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	log.InfoContext(ctx, "validated") // carries request_id=<id>
package requestid
