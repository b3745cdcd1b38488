// Package logging configures slog for the Lambda handlers.
package logging

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/lmittmann/tint"
	"github.com/oklog/ulid/v2"
)

// Setup installs the default slog logger. Production writes JSON for
// CloudWatch; everything else gets tint's colored output.
func Setup(env, level string) {
	slog.SetDefault(slog.New(NewHandler(os.Stdout, env, level)))

	log.SetFlags(0)
	log.SetOutput(slog.NewLogLogger(slog.Default().Handler(), slog.LevelInfo).Writer())
}

// NewHandler builds the handler used by Setup.
func NewHandler(w io.Writer, env, level string) slog.Handler {
	lvl := ParseLevel(level)
	if env == "prod" || env == "production" {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: lvl,
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.String("ts", a.Value.Time().UTC().Format(time.RFC3339Nano))
				}
				return a
			},
		})
	}
	return tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		AddSource:  true,
		TimeFormat: "15:04:05.000",
	})
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ForRequest returns a logger tagged with the gateway request id. Direct
// invocations fall back to the Lambda request id, and local runs with
// neither get a fresh ULID.
func ForRequest(ctx context.Context, req events.APIGatewayV2HTTPRequest) *slog.Logger {
	id := req.RequestContext.RequestID
	if id == "" {
		if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
			id = lc.AwsRequestID
		}
	}
	if id == "" {
		id = ulid.Make().String()
	}
	return slog.Default().With("request_id", id, "route", req.RouteKey)
}
