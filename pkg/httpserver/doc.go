// Package httpserver runs the notification feed's HTTP surface with
// graceful shutdown.
//
// The server stops on context cancellation or SIGINT/SIGTERM, draining
// in-flight requests within the configured shutdown timeout. WriteTimeout
// defaults to zero so long-lived SSE feed connections are not severed.
//
//	srv := httpserver.New(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server exited", "error", err)
//	}
package httpserver
