package logging_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"reelsort/internal/logging"
	"reelsort/internal/services"
)

func TestConsoleFormatIncludesComponentAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logging.NewComponentLogger(logger, "scanner").Info("scan complete",
		logging.Int("records", 3),
		logging.String("root", "/tmp/movies"),
	)
	line := buf.String()
	for _, want := range []string{"INFO", "scanner: scan complete", "records=3", "root=/tmp/movies"} {
		if !strings.Contains(line, want) {
			t.Fatalf("output %q missing %q", line, want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatal("info record leaked through warn level")
	}
	if !strings.Contains(out, "shown") {
		t.Fatal("warn record missing")
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("organized", logging.String("genre", "Horror"))
	out := buf.String()
	if !strings.Contains(out, `"msg":"organized"`) || !strings.Contains(out, `"genre":"Horror"`) {
		t.Fatalf("unexpected json output: %q", out)
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWithContext(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := services.WithRunID(context.Background(), "run-1")
	ctx = services.WithStage(ctx, "fetching")
	logging.WithContext(ctx, logger).Info("attempt failed")
	line := buf.String()
	if !strings.Contains(line, "run_id=run-1") || !strings.Contains(line, "stage=fetching") {
		t.Fatalf("context fields missing: %q", line)
	}
}
