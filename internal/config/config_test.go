package config

import (
	"os"
	"path/filepath"
	"testing"
)

func withTempConfigPath(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	orig := SetConfigPathFunc(func() (string, error) {
		return path, nil
	})
	t.Cleanup(func() { SetConfigPathFunc(orig) })
	return path
}

func TestLoadMissingFileReturnsEmptyConfig(t *testing.T) {
	withTempConfigPath(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CSVPath != "" || cfg.GroupBy != "" {
		t.Errorf("expected zero-value config, got %+v", cfg)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	withTempConfigPath(t)

	cfg := &Config{
		CSVPath:     "data/zoo.csv",
		MetaPath:    "data/models_meta.csv",
		OutPath:     "out/zoo.html",
		Delimiter:   ";",
		GroupBy:     "Category",
		Title:       "NPU Model Zoo",
		LinkColumns: []string{"Source", "onnx"},
		HideColumns: []string{"License"},
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.CSVPath != cfg.CSVPath {
		t.Errorf("CSVPath = %q, want %q", loaded.CSVPath, cfg.CSVPath)
	}
	if loaded.GroupBy != "Category" {
		t.Errorf("GroupBy = %q, want Category", loaded.GroupBy)
	}
	if len(loaded.LinkColumns) != 2 || loaded.LinkColumns[1] != "onnx" {
		t.Errorf("LinkColumns = %v", loaded.LinkColumns)
	}
	if len(loaded.HideColumns) != 1 || loaded.HideColumns[0] != "License" {
		t.Errorf("HideColumns = %v", loaded.HideColumns)
	}
}

func TestLoadFromPathInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("a: [1,\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFromPath(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}

	if got := cfg.GetDelimiter(); got != "," {
		t.Errorf("GetDelimiter = %q, want ,", got)
	}
	if got := cfg.GetGroupBy(); got != "Task" {
		t.Errorf("GetGroupBy = %q, want Task", got)
	}
	if got := cfg.GetJoinColumn(); got != "Name" {
		t.Errorf("GetJoinColumn = %q, want Name", got)
	}
	if got := cfg.GetTitle(); got != "Model Zoo" {
		t.Errorf("GetTitle = %q, want Model Zoo", got)
	}
	if got := cfg.GetOutPath(); got != "report.html" {
		t.Errorf("GetOutPath = %q, want report.html", got)
	}
	if got := cfg.GetLinkColumns(); len(got) != 4 || got[0] != "Source" {
		t.Errorf("GetLinkColumns = %v", got)
	}
}

func TestEnvOverridePath(t *testing.T) {
	orig := SetConfigPathFunc(defaultConfigPath)
	t.Cleanup(func() { SetConfigPathFunc(orig) })

	path := filepath.Join(t.TempDir(), "alt.yaml")
	t.Setenv("C2H_CONFIG", path)

	got, err := DefaultConfigPath()
	if err != nil {
		t.Fatalf("DefaultConfigPath: %v", err)
	}
	if got != path {
		t.Errorf("DefaultConfigPath = %q, want %q", got, path)
	}
}
