package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, err := execute(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init returned error: %v", err)
	}
	if !strings.Contains(out, target) {
		t.Fatalf("output %q does not mention %q", out, target)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample config: %v", err)
	}
	if !strings.Contains(string(data), "api_key") {
		t.Fatal("sample config missing api_key field")
	}
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(target, []byte("# existing\n"), 0o644); err != nil {
		t.Fatalf("seed config: %v", err)
	}

	if _, err := execute(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error when config already exists")
	}

	out, err := execute(t, "config", "init", "--path", target, "--overwrite")
	if err != nil {
		t.Fatalf("config init --overwrite returned error: %v", err)
	}
	if !strings.Contains(out, "Wrote sample configuration") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestCatalogListsGenres(t *testing.T) {
	writeTestConfig(t)

	out, err := execute(t, "catalog")
	if err != nil {
		t.Fatalf("catalog returned error: %v", err)
	}
	for _, want := range []string{"Horror", "Comedy", "genres"} {
		if !strings.Contains(out, want) {
			t.Fatalf("catalog output missing %q:\n%s", want, out)
		}
	}
}

func TestHistoryEmptyLedger(t *testing.T) {
	writeTestConfig(t)

	out, err := execute(t, "history")
	if err != nil {
		t.Fatalf("history returned error: %v", err)
	}
	if !strings.Contains(out, "No organizing runs recorded yet") {
		t.Fatalf("unexpected history output %q", out)
	}
}

// writeTestConfig points the default config path resolution at a temp file
// with valid settings so commands that load configuration can run.
func writeTestConfig(t *testing.T) {
	t.Helper()

	base := t.TempDir()
	cfgPath := filepath.Join(base, "reelsort.toml")
	content := strings.Join([]string{
		"[paths]",
		"library_dir = " + tomlString(filepath.Join(base, "library")),
		"log_dir = " + tomlString(filepath.Join(base, "logs")),
		"ledger_path = " + tomlString(filepath.Join(base, "ledger.db")),
		"",
		"[omdb]",
		`api_key = "test"`,
		"",
	}, "\n")
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(base, "library"), 0o755); err != nil {
		t.Fatalf("mkdir library: %v", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(base); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func tomlString(value string) string {
	return `"` + strings.ReplaceAll(value, `\`, `\\`) + `"`
}
