package rename_test

import (
	"os"
	"path/filepath"
	"testing"

	"reelsort/internal/catalog"
	"reelsort/internal/logging"
	"reelsort/internal/progress"
	"reelsort/internal/rename"
	"reelsort/internal/titleinfo"
)

func newRenamer() *rename.Renamer {
	return rename.NewRenamer(catalog.New([]string{"Horror"}), logging.NewNop())
}

func TestCanonicalName(t *testing.T) {
	cases := []struct {
		info titleinfo.Info
		want string
	}{
		{titleinfo.Info{Title: "Inception", Quality: titleinfo.Tier1080p}, "Inception (1080p)"},
		{titleinfo.Info{Title: "Inception"}, "Inception"},
		{titleinfo.Info{Title: "What's Up?", Quality: titleinfo.Tier720p}, "Whats Up (720p)"},
	}
	for _, tc := range cases {
		if got := rename.CanonicalName(tc.info); got != tc.want {
			t.Errorf("CanonicalName(%+v) = %q, want %q", tc.info, got, tc.want)
		}
	}
}

func TestRenameToCanonicalForm(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "Inception.2010.1080p.BluRay.x264")
	if err := os.Mkdir(src, 0o755); err != nil {
		t.Fatal(err)
	}

	got := newRenamer().Rename(src)
	want := filepath.Join(root, "Inception (1080p)")
	if got != want {
		t.Fatalf("Rename = %q, want %q", got, want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("renamed folder missing: %v", err)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Fatal("original folder should be gone")
	}
}

func TestRenameSkipsReservedFolders(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"Horror", "Manual Checking", "movies info"} {
		path := filepath.Join(root, name)
		if err := os.Mkdir(path, 0o755); err != nil {
			t.Fatal(err)
		}
		if got := newRenamer().Rename(path); got != path {
			t.Fatalf("reserved folder %q was renamed to %q", name, got)
		}
	}
}

func TestRenameAlreadyCanonicalIsNoop(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "Inception (1080p)")
	if err := os.Mkdir(src, 0o755); err != nil {
		t.Fatal(err)
	}
	if got := newRenamer().Rename(src); got != src {
		t.Fatalf("canonical folder moved to %q", got)
	}
}

func TestRenameUntitledFolderLeftInPlace(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "---")
	if err := os.Mkdir(src, 0o755); err != nil {
		t.Fatal(err)
	}
	if got := newRenamer().Rename(src); got != src {
		t.Fatalf("untitled folder moved to %q", got)
	}
}

func TestRenameAllEmitsProgress(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"alpha.720p", "beta.1080p"} {
		if err := os.Mkdir(filepath.Join(root, name), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	var last float64
	err := newRenamer().RenameAll(root, progress.Func(func(stage progress.Stage, pct float64) {
		if stage != progress.StageRenaming {
			t.Fatalf("unexpected stage %q", stage)
		}
		if pct < last {
			t.Fatal("progress regressed")
		}
		last = pct
	}))
	if err != nil {
		t.Fatalf("RenameAll: %v", err)
	}
	if last != 100 {
		t.Fatalf("final progress = %v, want 100", last)
	}
	if _, err := os.Stat(filepath.Join(root, "Alpha (720p)")); err != nil {
		t.Fatalf("alpha not renamed: %v", err)
	}
}
