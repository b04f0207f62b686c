package registry

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// writePlugin creates root/dir/<file> with the given contents.
func writePlugin(t *testing.T, root, dir, file, contents string) {
	t.Helper()
	pluginDir := filepath.Join(root, dir)
	require.NoError(t, os.MkdirAll(pluginDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(pluginDir, file), []byte(contents), 0644))
}

// writeManifest creates root/dir/manifest.json.
func writeManifest(t *testing.T, root, dir, contents string) {
	t.Helper()
	writePlugin(t, root, dir, "manifest.json", contents)
}

// observedLogger returns a logger that records entries at debug and above.
func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

// entryWithID builds an entry whose id is a JSON string.
func entryWithID(id, name string) Entry {
	idRaw, _ := json.Marshal(id)
	nameRaw, _ := json.Marshal(name)
	return Entry{ID: idRaw, Name: nameRaw}
}

func ids(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.IDString()
	}
	return out
}
