package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vango-dev/headless/internal/errors"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Gallery.Port != DefaultPort {
		t.Errorf("Gallery.Port = %d, want %d", cfg.Gallery.Port, DefaultPort)
	}
	if cfg.Gallery.Host != DefaultHost {
		t.Errorf("Gallery.Host = %q, want %q", cfg.Gallery.Host, DefaultHost)
	}
	if cfg.Gallery.ReadLimit != DefaultReadLimit {
		t.Errorf("Gallery.ReadLimit = %d, want %d", cfg.Gallery.ReadLimit, DefaultReadLimit)
	}
	if cfg.Build.Output != DefaultOutput {
		t.Errorf("Build.Output = %q, want %q", cfg.Build.Output, DefaultOutput)
	}
	if cfg.Scenarios.Glob != DefaultScenarioGlob {
		t.Errorf("Scenarios.Glob = %q, want %q", cfg.Scenarios.Glob, DefaultScenarioGlob)
	}
	if !cfg.MetricsEnabled() {
		t.Error("metrics should be enabled by default")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Gallery.Port != DefaultPort {
		t.Errorf("Gallery.Port = %d, want %d", cfg.Gallery.Port, DefaultPort)
	}
	if cfg.Dir() != dir {
		t.Errorf("Dir() = %q, want %q", cfg.Dir(), dir)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{
  "gallery": {"host": "0.0.0.0", "port": 8080, "metricsPath": "-"},
  "scenarios": {"dir": "plays"},
  "build": {"output": "site", "pretty": true},
  "publish": {"bucket": "stories", "prefix": "v1/"}
}
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if got := cfg.GalleryAddress(); got != "0.0.0.0:8080" {
		t.Errorf("GalleryAddress() = %q, want %q", got, "0.0.0.0:8080")
	}
	if cfg.MetricsEnabled() {
		t.Error("metricsPath \"-\" should disable metrics")
	}
	if got, want := cfg.ScenariosPath(), filepath.Join(dir, "plays"); got != want {
		t.Errorf("ScenariosPath() = %q, want %q", got, want)
	}
	if got, want := cfg.OutputPath(), filepath.Join(dir, "site"); got != want {
		t.Errorf("OutputPath() = %q, want %q", got, want)
	}
	if !cfg.Build.Pretty {
		t.Error("Build.Pretty should be true")
	}
	if cfg.Publish.Bucket != "stories" || cfg.Publish.Prefix != "v1/" {
		t.Errorf("Publish = %+v", cfg.Publish)
	}
	// Defaults still fill the gaps.
	if cfg.Publish.Region != DefaultRegion {
		t.Errorf("Publish.Region = %q, want %q", cfg.Publish.Region, DefaultRegion)
	}
	if cfg.Gallery.ReadLimit != DefaultReadLimit {
		t.Errorf("Gallery.ReadLimit = %d, want %d", cfg.Gallery.ReadLimit, DefaultReadLimit)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"gallery": `)

	_, err := Load(dir)
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
	if !errors.Is(err, errors.New("E101")) {
		t.Errorf("error = %v, want E101", err)
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "plays"), 0755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		modify func(*Config)
		code   string
	}{
		{"defaults", func(*Config) {}, ""},
		{"port zero", func(c *Config) { c.Gallery.Port = 0 }, "E102"},
		{"port too large", func(c *Config) { c.Gallery.Port = 70000 }, "E102"},
		{"existing scenario dir", func(c *Config) { c.Scenarios.Dir = "plays" }, ""},
		{"missing scenario dir", func(c *Config) { c.Scenarios.Dir = "nope" }, "E103"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(dir)
			if err != nil {
				t.Fatal(err)
			}
			tt.modify(cfg)

			err = cfg.Validate()
			if tt.code == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, errors.New(tt.code)) {
				t.Errorf("Validate() = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestValidatePublish(t *testing.T) {
	cfg := New()
	if err := cfg.ValidatePublish(); !errors.Is(err, errors.New("E104")) {
		t.Errorf("ValidatePublish() = %v, want E104", err)
	}
	cfg.Publish.Bucket = "stories"
	if err := cfg.ValidatePublish(); err != nil {
		t.Errorf("ValidatePublish() = %v, want nil", err)
	}
}

func TestSaveTo(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)

	cfg := New()
	cfg.Gallery.Port = 9090
	cfg.Publish.Bucket = "stories"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo error: %v", err)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if loaded.Gallery.Port != 9090 {
		t.Errorf("Gallery.Port = %d, want 9090", loaded.Gallery.Port)
	}
	if loaded.Publish.Bucket != "stories" {
		t.Errorf("Publish.Bucket = %q, want %q", loaded.Publish.Bucket, "stories")
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{}`)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	got, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatal(err)
	}
	if got != root {
		t.Errorf("FindProjectRoot() = %q, want %q", got, root)
	}

	// Without a config file the start directory is the root.
	bare := t.TempDir()
	got, err = FindProjectRoot(bare)
	if err != nil {
		t.Fatal(err)
	}
	if got != bare {
		t.Errorf("FindProjectRoot() = %q, want %q", got, bare)
	}
}
