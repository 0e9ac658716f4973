package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/lixenwraith/logbridge"
	"github.com/lixenwraith/logbridge/compat"
	"github.com/lixenwraith/logbridge/schedule"
	"github.com/valyala/fasthttp"
)

func main() {
	// Buffered bridge, batches are flushed to stdout every 2 seconds
	logger, err := logbridge.NewBuilder().
		Host(logbridge.NewWriterHost(os.Stdout)).
		LevelString("info").
		ShowLogsInstant(false).
		FlushSchedule("@every 2s").
		Build()
	if err != nil {
		panic(err)
	}
	defer logger.Shutdown()

	flusher, err := schedule.FromLogger(logger, schedule.WithLogger(compat.NewCronAdapter(logger)))
	if err != nil {
		panic(err)
	}
	flusher.Start()
	defer flusher.Stop(context.Background())

	// Create fasthttp adapter with custom level detection
	fasthttpAdapter := compat.NewFastHTTPAdapter(
		logger,
		compat.WithDefaultLevel(logbridge.LevelInfo),
		compat.WithLevelDetector(customLevelDetector),
	)

	// Configure fasthttp server
	server := &fasthttp.Server{
		Handler: func(ctx *fasthttp.RequestCtx) {
			requestHandler(logger, ctx)
		},
		Logger: fasthttpAdapter,

		// Other server settings
		Name:              "BridgeServer",
		Concurrency:       fasthttp.DefaultConcurrency,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		TCPKeepalive:      true,
		ReduceMemoryUsage: true,
	}

	// Start server
	fmt.Fprintln(os.Stderr, "Starting server on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		panic(err)
	}
}

func requestHandler(logger *logbridge.Logger, ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("text/plain")
	fmt.Fprintf(ctx, "Hello, world! Path: %s\n", ctx.Path())
	logger.Info("served", string(ctx.Method()), string(ctx.Path()))
}

func customLevelDetector(msg string) logbridge.Severity {
	// Specific fasthttp message patterns first
	if strings.Contains(msg, "connection cannot be served") {
		return logbridge.LevelWarn
	}
	if strings.Contains(msg, "error when serving connection") {
		return logbridge.LevelError
	}

	// Use default detection
	return compat.DetectLogLevel(msg)
}
