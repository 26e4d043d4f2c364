package chartdir

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	cfg := &Config{
		Dir:          filepath.Join(dir, "chart"),
		SettingsFile: filepath.Join(dir, "kr.config.json"),
	}
	return New(cfg, discardLogger())
}

func TestBootstrap_CreatesDirAndSettings(t *testing.T) {
	store := newTestStore(t)

	if err := store.Bootstrap(); err != nil {
		t.Fatalf("Bootstrap() error = %v", err)
	}

	info, err := os.Stat(store.cfg.Dir)
	if err != nil {
		t.Fatalf("chart directory was not created: %v", err)
	}
	if !info.IsDir() {
		t.Fatalf("chart path %s is not a directory", store.cfg.Dir)
	}

	data, err := os.ReadFile(store.cfg.SettingsFile)
	if err != nil {
		t.Fatalf("settings file was not created: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("settings payload = %q, want %q", data, "{}")
	}
}

func TestBootstrap_KeepsExistingSettings(t *testing.T) {
	store := newTestStore(t)

	existing := `{"theme":"dark"}`
	if err := os.WriteFile(store.cfg.SettingsFile, []byte(existing), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	if err := store.Bootstrap(); err != nil {
		t.Fatalf("Bootstrap() error = %v", err)
	}

	data, err := os.ReadFile(store.cfg.SettingsFile)
	if err != nil {
		t.Fatalf("read settings: %v", err)
	}
	if string(data) != existing {
		t.Errorf("settings payload = %q, want untouched %q", data, existing)
	}
}

func TestBootstrap_FailsWhenDirPathIsFile(t *testing.T) {
	dir := t.TempDir()
	blocked := filepath.Join(dir, "chart")
	if err := os.WriteFile(blocked, []byte("not a dir"), 0o644); err != nil {
		t.Fatalf("write blocker file: %v", err)
	}

	store := New(&Config{Dir: blocked, SettingsFile: filepath.Join(dir, "kr.config.json")}, discardLogger())

	if err := store.Bootstrap(); err == nil {
		t.Fatal("Bootstrap() expected error when dir path is a regular file, got nil")
	}
}

func TestFilePath_Naming(t *testing.T) {
	store := newTestStore(t)

	got := store.FilePath("Ada")
	want := filepath.Join(store.cfg.Dir, "Ada_NatalChart.svg")
	if got != want {
		t.Errorf("FilePath(Ada) = %q, want %q", got, want)
	}
}

func TestWrite_OverwritesSameName(t *testing.T) {
	store := newTestStore(t)
	if err := store.Bootstrap(); err != nil {
		t.Fatalf("Bootstrap() error = %v", err)
	}

	first := "<svg>first</svg>"
	second := "<svg>second</svg>"

	path1, err := store.Write("John", []byte(first))
	if err != nil {
		t.Fatalf("first Write() error = %v", err)
	}
	path2, err := store.Write("John", []byte(second))
	if err != nil {
		t.Fatalf("second Write() error = %v", err)
	}
	if path1 != path2 {
		t.Errorf("same name produced different paths: %q vs %q", path1, path2)
	}

	content, err := store.Read(path2)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if content != second {
		t.Errorf("Read() after overwrite = %q, want %q", content, second)
	}
	if strings.Contains(content, "first") {
		t.Error("first chart content survived the overwrite")
	}
}

func TestWrite_FailsWithoutDirectory(t *testing.T) {
	store := newTestStore(t)
	// Bootstrap намеренно не вызывается

	if _, err := store.Write("Ada", []byte("<svg/>")); err == nil {
		t.Fatal("Write() expected error when chart directory is missing, got nil")
	}
}

func TestRead_MissingFile(t *testing.T) {
	store := newTestStore(t)
	if err := store.Bootstrap(); err != nil {
		t.Fatalf("Bootstrap() error = %v", err)
	}

	if _, err := store.Read(store.FilePath("nobody")); err == nil {
		t.Fatal("Read() expected error for missing file, got nil")
	}
}

func TestSettings_ReturnsRawPayload(t *testing.T) {
	store := newTestStore(t)
	if err := store.Bootstrap(); err != nil {
		t.Fatalf("Bootstrap() error = %v", err)
	}

	raw, err := store.Settings()
	if err != nil {
		t.Fatalf("Settings() error = %v", err)
	}
	if string(raw) != "{}" {
		t.Errorf("Settings() = %q, want %q", raw, "{}")
	}
}

func TestCheckWritable(t *testing.T) {
	store := newTestStore(t)
	if err := store.Bootstrap(); err != nil {
		t.Fatalf("Bootstrap() error = %v", err)
	}

	if err := store.CheckWritable(); err != nil {
		t.Errorf("CheckWritable() error = %v, want nil", err)
	}

	missing := New(&Config{Dir: filepath.Join(t.TempDir(), "nope"), SettingsFile: "kr.config.json"}, discardLogger())
	if err := missing.CheckWritable(); err == nil {
		t.Error("CheckWritable() expected error for missing directory, got nil")
	}
}
