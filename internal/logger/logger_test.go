package logger

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"none", LevelNone},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLogLevel(tt.input); got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevelNoneDisablesLogging(t *testing.T) {
	logger := InitLogger(ParseLogLevel("none"), "test")
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("logger at level none is enabled for errors")
	}
}

func TestContextRequestLogger(t *testing.T) {
	// without a request logger the default is returned
	if got := ContextRequestLogger(context.Background()); got != slog.Default() {
		t.Error("ContextRequestLogger() did not return the default logger")
	}

	reqLogger := slog.Default().With(slog.String("request_id", "abc"))
	ctx := WithRequestLogger(context.Background(), reqLogger)

	if got := ContextRequestLogger(ctx); got != reqLogger {
		t.Error("ContextRequestLogger() did not return the request logger")
	}
}

func TestContextWithLogAttrs(t *testing.T) {
	// no-op without a request context
	ContextWithLogAttrs(context.Background(), slog.String("ignored", "x"))
	if attrs := ContextLogAttrs(context.Background()); attrs != nil {
		t.Errorf("ContextLogAttrs() = %v, want nil", attrs)
	}

	ctx := WithRequestLogger(context.Background(), slog.Default())
	ContextWithLogAttrs(ctx, slog.String("operation", "sign"))
	ContextWithLogAttrs(ctx, slog.Int("members", 3), slog.Bool("valid", true))

	attrs := ContextLogAttrs(ctx)
	if len(attrs) != 3 {
		t.Fatalf("ContextLogAttrs() returned %d attrs, want 3", len(attrs))
	}
	if attrs[0].Key != "operation" || attrs[0].Value.String() != "sign" {
		t.Errorf("first attr = %v, want operation=sign", attrs[0])
	}
}

func TestInitLoggerWithWriter(t *testing.T) {
	tests := []struct {
		environment string
		wantJSON    bool
	}{
		{"dev", false},
		{"test", false},
		{"staging", true},
		{"prod", true},
	}

	for _, tt := range tests {
		t.Run(tt.environment, func(t *testing.T) {
			var buf bytes.Buffer
			l := InitLoggerWithWriter(&buf, slog.LevelInfo, tt.environment)
			l.Info("hello", slog.String("k", "v"))

			out := buf.String()
			if !strings.Contains(out, "hello") {
				t.Fatalf("log output %q does not contain the message", out)
			}
			if isJSON := strings.HasPrefix(out, "{"); isJSON != tt.wantJSON {
				t.Errorf("JSON output = %v, want %v (%q)", isJSON, tt.wantJSON, out)
			}
		})
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
