package mcpserver

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// JSON-RPC error bodies written outside the MCP handler.
const (
	unauthorizedBody  = `{"jsonrpc":"2.0","error":{"code":-32000,"message":"Unauthorized"},"id":null}`
	internalErrorBody = `{"jsonrpc":"2.0","error":{"code":-32603,"message":"Internal error"},"id":null}`
)

// protocolVersionHeader carries the MCP revision a client negotiated.
const protocolVersionHeader = "Mcp-Protocol-Version"

// Logger logs one line per request keyed by the chi route pattern, so every
// tool call shows up under route=/mcp with the client's protocol revision.
func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			attrs := []any{
				"request_id", middleware.GetReqID(r.Context()),
				"method", r.Method,
				"route", routePattern(r),
				"status", status,
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start).String(),
			}
			if version := r.Header.Get(protocolVersionHeader); version != "" {
				attrs = append(attrs, "mcp_protocol", version)
			}
			logger.Info("http request", attrs...)
		})
	}
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}

// Recoverer turns a panic in a downstream handler into a JSON-RPC internal
// error so MCP clients get a protocol-level response.
func Recoverer(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.Error("panic recovered",
					"request_id", middleware.GetReqID(r.Context()),
					"error", rec,
					"route", routePattern(r),
					"stack", string(debug.Stack()),
				)
				writeJSONRPCError(w, http.StatusInternalServerError, internalErrorBody)
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// BearerAuth rejects requests that do not carry "Authorization: Bearer
// <token>" with a JSON-RPC error. An empty token disables the check.
func BearerAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if token == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				writeJSONRPCError(w, http.StatusUnauthorized, unauthorizedBody)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeJSONRPCError(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
