package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("root", "", "")
	fs.String("output", "", "")
	fs.StringSlice("exclude", nil, "")
	fs.Bool("check", false, "")
	fs.String("log-level", "info", "")
	fs.String("log-format", "console", "")
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}
	return fs
}

func load(t *testing.T, configFile string, args ...string) *Config {
	t.Helper()
	v := New()
	if err := BindFlags(v, newFlags(t, args...)); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	cfg, err := Load(v, configFile)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return cfg
}

func TestLoad_Defaults(t *testing.T) {
	root := t.TempDir()
	chdir(t, root)

	cfg := load(t, "")

	wantRoot, _ := filepath.Abs(root)
	if cfg.Root != wantRoot {
		t.Errorf("Root = %q, want %q", cfg.Root, wantRoot)
	}
	if cfg.Output != filepath.Join(wantRoot, "registry.json") {
		t.Errorf("Output = %q, want registry.json in root", cfg.Output)
	}
	if cfg.Check {
		t.Error("Check should default to false")
	}
	if len(cfg.Exclude) != 0 {
		t.Errorf("Exclude = %v, want empty", cfg.Exclude)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "console" {
		t.Errorf("log = %q/%q, want info/console", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.File != "" {
		t.Errorf("File = %q, want none", cfg.File)
	}
}

func TestLoad_Flags(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(t.TempDir(), "out.json")

	cfg := load(t, "", "--root", root, "--output", out, "--exclude", "wip-*,tmp-*", "--check", "--log-level", "debug")

	if cfg.Output != out {
		t.Errorf("Output = %q, want %q", cfg.Output, out)
	}
	if len(cfg.Exclude) != 2 || cfg.Exclude[0] != "wip-*" {
		t.Errorf("Exclude = %v", cfg.Exclude)
	}
	if !cfg.Check {
		t.Error("Check = false, want true")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoad_ConfigFileInRoot(t *testing.T) {
	root := t.TempDir()
	contents := "output: dist/index.json\nexclude:\n  - template\nlog:\n  format: json\n"
	if err := os.WriteFile(FilePath(root), []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := load(t, "", "--root", root)

	if cfg.File != FilePath(root) {
		t.Errorf("File = %q, want %q", cfg.File, FilePath(root))
	}
	if cfg.Output != filepath.Join(root, "dist", "index.json") {
		t.Errorf("Output = %q, want relative to root", cfg.Output)
	}
	if len(cfg.Exclude) != 1 || cfg.Exclude[0] != "template" {
		t.Errorf("Exclude = %v, want [template]", cfg.Exclude)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want json", cfg.LogFormat)
	}
}

func TestLoad_FlagsOverrideConfigFile(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(FilePath(root), []byte("log:\n  level: warn\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := load(t, "", "--root", root, "--log-level", "error")
	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel = %q, want flag value", cfg.LogLevel)
	}
}

func TestLoad_ExplicitConfigFile(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(file, []byte("output: custom.json\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := load(t, file, "--root", root)
	if cfg.Output != filepath.Join(root, "custom.json") {
		t.Errorf("Output = %q", cfg.Output)
	}
}

func TestLoad_MissingExplicitConfigFile(t *testing.T) {
	v := New()
	v.Set(KeyRoot, t.TempDir())
	if _, err := Load(v, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestLoad_BadConfigFile(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(FilePath(root), []byte("output: [unclosed\n"), 0644); err != nil {
		t.Fatal(err)
	}
	v := New()
	v.Set(KeyRoot, root)
	if _, err := Load(v, ""); err == nil {
		t.Error("expected error for malformed config file")
	}
}

func TestLoad_IgnoresEnvironment(t *testing.T) {
	root := t.TempDir()
	t.Setenv("OUTPUT", "/tmp/from-env.json")
	t.Setenv("ROOT", "/tmp")

	cfg := load(t, "", "--root", root)
	if cfg.Output != filepath.Join(root, "registry.json") {
		t.Errorf("Output = %q, environment must not be consulted", cfg.Output)
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (stand-in for testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
