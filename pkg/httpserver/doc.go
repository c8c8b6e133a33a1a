// Package httpserver runs the web surface with graceful shutdown.
//
//	srv := httpserver.New(cfg, logger)
//	if err := srv.Run(ctx, router); err != nil {
//	    return err
//	}
//
// Run returns when ctx is cancelled or the process receives SIGINT or
// SIGTERM; in-flight requests get Config.ShutdownTimeout to finish.
package httpserver
