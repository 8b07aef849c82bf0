package termpick

import (
	"os"
	"path/filepath"
	"testing"

	"termpick/key"
	"termpick/render"
)

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(name), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func fileConfig(path string) FileConfig {
	return FileConfig{
		Config: Config{
			Renderer: render.NewCapture(80, 24),
		},
		InitialPath: path,
	}
}

func TestFileChooserSelectsFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt")
	writeFile(t, dir, "b.txt")

	// Rows: ./ , ../ , a.txt, b.txt — the cursor starts on the first
	// real entry, so a lone Enter picks it.
	cfg := fileConfig(dir)
	cfg.Reader = key.NewScript(key.Enter)
	got := NewFile(cfg).Run()
	if want := filepath.Join(dir, "a.txt"); got != want {
		t.Fatalf("Run = %q, want %q", got, want)
	}

	cfg = fileConfig(dir)
	cfg.Reader = key.NewScript(key.Down, key.Enter)
	got = NewFile(cfg).Run()
	if want := filepath.Join(dir, "b.txt"); got != want {
		t.Fatalf("Run = %q, want %q", got, want)
	}
}

func TestFileChooserDescendsIntoDirectory(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, sub, "inner.txt")

	// The cursor lands on sub/ (the only real entry), then on
	// inner.txt after descending.
	cfg := fileConfig(dir)
	cfg.Reader = key.NewScript(key.Enter, key.Enter)
	got := NewFile(cfg).Run()
	if want := filepath.Join(sub, "inner.txt"); got != want {
		t.Fatalf("Run = %q, want %q", got, want)
	}
}

func TestFileChooserParentEntryAscends(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, dir, "up.txt")

	cfg := fileConfig(sub)
	cfg.Reader = key.NewScript(
		key.Down, key.Enter, // ../ up to dir
		key.End, key.Enter, // last row: up.txt
	)
	f := NewFile(cfg)
	got := f.Run()
	if want := filepath.Join(dir, "up.txt"); got != want {
		t.Fatalf("Run = %q, want %q", got, want)
	}
	if f.Path() != dir {
		t.Fatalf("Path = %q, want %q", f.Path(), dir)
	}
}

func TestFileChooserChooseDirs(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, dir, "noise.txt")

	// Confirming SELECT on the starting directory.
	cfg := fileConfig(dir)
	cfg.ChooseDirs = true
	cfg.Reader = key.NewScript(key.Enter)
	if got := NewFile(cfg).Run(); got != dir {
		t.Fatalf("Run = %q, want %q", got, dir)
	}

	// Descending first, then SELECT.
	cfg = fileConfig(dir)
	cfg.ChooseDirs = true
	cfg.Reader = key.NewScript(key.End, key.Enter, key.Enter)
	if got := NewFile(cfg).Run(); got != sub {
		t.Fatalf("Run = %q, want %q", got, sub)
	}
}

func TestFileChooserNavigationRowsStayReachable(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, dir, "up.txt")

	// Starting in sub/ (no real entries), Home then Down reaches ../
	// and ascends; the cursor then sits on dir's first real entry.
	cfg := fileConfig(sub)
	cfg.Reader = key.NewScript(key.Home, key.Down, key.Enter, key.End, key.Enter)
	got := NewFile(cfg).Run()
	if want := filepath.Join(dir, "up.txt"); got != want {
		t.Fatalf("Run = %q, want %q", got, want)
	}
}

func TestFileChooserCancelReturnsEmpty(t *testing.T) {
	cfg := fileConfig(t.TempDir())
	cfg.Reader = key.NewScript(key.Esc)
	if got := NewFile(cfg).Run(); got != "" {
		t.Fatalf("Run = %q, want empty", got)
	}
}

func TestFileChooserInitialFileIsHighlighted(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt")
	target := writeFile(t, dir, "b.txt")

	cfg := fileConfig(target)
	cfg.Reader = key.NewScript(key.Enter)
	if got := NewFile(cfg).Run(); got != target {
		t.Fatalf("Run = %q, want %q", got, target)
	}
}

func TestFileChooserMissingPathFallsBackToCwd(t *testing.T) {
	f := NewFile(fileConfig(filepath.Join(t.TempDir(), "nope")))
	wd, _ := os.Getwd()
	if f.Path() != wd {
		t.Fatalf("Path = %q, want %q", f.Path(), wd)
	}
}

func TestFileChooserGlobsFilterFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "keep.go")
	writeFile(t, dir, "drop.txt")
	sub := filepath.Join(dir, "always")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	cfg := fileConfig(dir)
	cfg.Globs = []string{"*.go"}
	f := NewFile(cfg)
	entries := f.listDir()
	var names []string
	for _, e := range entries {
		names = append(names, e.name)
	}
	if len(names) != 2 || names[0] != "always" || names[1] != "keep.go" {
		t.Fatalf("listDir = %v, want [always keep.go]", names)
	}
}

func TestFileChooserExcludesHiddenAndDunder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".hidden")
	writeFile(t, dir, "__cache__")
	writeFile(t, dir, "plain")

	cfg := fileConfig(dir)
	cfg.ExcludeHidden = true
	cfg.ExcludeDunder = true
	f := NewFile(cfg)
	entries := f.listDir()
	if len(entries) != 1 || entries[0].name != "plain" {
		t.Fatalf("listDir = %+v, want just plain", entries)
	}
}

func TestFileChooserSortTogetherInterleaves(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "aaa.txt")
	writeFile(t, dir, "zzz.txt")
	if err := os.Mkdir(filepath.Join(dir, "mmm"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	cfg := fileConfig(dir)
	cfg.SortTogether = true
	f := NewFile(cfg)
	entries := f.listDir()
	var names []string
	for _, e := range entries {
		names = append(names, e.name)
	}
	if len(names) != 3 || names[0] != "aaa.txt" || names[1] != "mmm" || names[2] != "zzz.txt" {
		t.Fatalf("listDir = %v, want [aaa.txt mmm zzz.txt]", names)
	}

	// Without it, directories come first.
	cfg = fileConfig(dir)
	f = NewFile(cfg)
	entries = f.listDir()
	if entries[0].name != "mmm" {
		t.Fatalf("listDir dirs-first = %+v", entries)
	}

	// FilesFirst flips the groups.
	cfg = fileConfig(dir)
	cfg.FilesFirst = true
	f = NewFile(cfg)
	entries = f.listDir()
	if entries[0].name != "aaa.txt" || entries[2].name != "mmm" {
		t.Fatalf("listDir files-first = %+v", entries)
	}
}
