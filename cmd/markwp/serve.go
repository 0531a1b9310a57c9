package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/rgonek/markwp/converter"
	"github.com/rgonek/markwp/internal/config"
	"github.com/rgonek/markwp/mcpserver"
)

func serveStdio(conv *converter.Converter, logger *slog.Logger) error {
	undo := setMaxProcs(logger)
	defer undo()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("MCP server running on stdio")
	return mcpserver.ServeStdio(ctx, mcpserver.New(conv, logger))
}

func serveHTTP(conv *converter.Converter, cfg *config.Config, addr string, logger *slog.Logger) error {
	undo := setMaxProcs(logger)
	defer undo()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if addr == "" {
		addr = cfg.Addr()
	}
	if cfg.Server.APIToken == "" {
		logger.Warn("API_TOKEN is not set, /mcp accepts unauthenticated requests")
	}

	handler := mcpserver.NewHTTPHandler(mcpserver.New(conv, logger), mcpserver.HTTPOptions{
		APIToken: cfg.Server.APIToken,
		Logger:   logger,
	})
	return mcpserver.ListenAndServe(ctx, addr, handler, logger)
}

// setMaxProcs matches GOMAXPROCS to the container CPU quota.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply.
func setMaxProcs(logger *slog.Logger) func() {
	undo, _ := maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		logger.Debug(fmt.Sprintf(format, args...))
	}))
	return undo
}
