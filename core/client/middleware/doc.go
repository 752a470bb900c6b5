// Package middleware provides ready-made [client.Middleware] values.
//
// [NewLoggingMiddleware] emits a structured slog record before and after
// every provider call, at one of three verbosity levels:
//
//	c, err := client.New(provider,
//	    client.WithMiddleware(
//	        middleware.NewLoggingMiddleware(slog.Default(), middleware.LogLevelStandard),
//	    ),
//	)
//
// Middlewares execute outermost-first: the first entry in WithMiddleware runs
// first on the way in and last on the way out.
package middleware
