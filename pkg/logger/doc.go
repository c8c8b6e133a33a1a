// Package logger builds the slog.Logger used across the Smart Kitchen
// module.
//
// Loggers are JSON by default. Development mode switches to text output at
// debug level. Request-scoped values (request id, language, session user)
// are pulled from the context on every record through ContextExtractor
// functions, so handlers only need to log with the request context:
//
//	log := logger.New(
//		logger.WithEnvironment("development", "food"),
//		logger.WithContextExtractors(logger.RequestIDExtractor(requestid.FromContext)),
//	)
//	log.InfoContext(ctx, "page rendered", logger.Page("login.html"))
package logger
