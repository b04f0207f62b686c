//go:build integration

package integration_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/noctalia-dev/plugin-registry/internal/cli"
)

// setupPluginRepo creates a synthetic plugin repository that mirrors the
// layout of the real one: plugin directories next to tooling directories.
// Returns the repository root.
func setupPluginRepo(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "weather", "manifest.json"), `{
  "id": "weather",
  "name": "Weather",
  "version": "1.4.0",
  "author": "Noctalia",
  "description": "Shows the forecast",
  "repository": "https://github.com/noctalia-dev/noctalia-plugins",
  "minNoctaliaVersion": "2.1.0",
  "license": "MIT",
  "entryPoints": {"main": "Main.qml", "settings": "Settings.qml"},
  "dependencies": {"plugins": []}
}
`)
	writeFile(t, filepath.Join(root, "weather", "Main.qml"), "Item {}\n")

	writeFile(t, filepath.Join(root, "clipboard", "manifest.json"), `{
  "id": "clipboard",
  "name": "Clipboard History",
  "version": "0.9.0",
  "author": "Someone Else",
  "license": "GPL-3.0"
}
`)

	writeFile(t, filepath.Join(root, "hello-world", "manifest.json"), `{"id":"hello-world","name":"Hello World","version":"1.0.0"}`)

	// Tooling and hidden directories that must never show up.
	writeFile(t, filepath.Join(root, ".github", "manifest.json"), `{"id":"github"}`)
	writeFile(t, filepath.Join(root, "scripts", "manifest.json"), `{"id":"scripts"}`)
	writeFile(t, filepath.Join(root, "node_modules", "manifest.json"), `{"id":"node-modules"}`)

	// A directory without a manifest and a loose file.
	writeFile(t, filepath.Join(root, "docs", "README.md"), "# Docs\n")
	writeFile(t, filepath.Join(root, "README.md"), "# Plugins\n")

	return root
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// run executes the CLI with the given arguments and returns its output.
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err = cli.ExecuteArgs(args, &out, &errOut, "test", "none", "today")
	return out.String(), errOut.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
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
