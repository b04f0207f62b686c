package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"

	"github.com/noctalia-dev/plugin-registry/internal/manifest"
)

// reservedDirs are tooling directories that never hold plugins.
var reservedDirs = map[string]bool{
	"node_modules": true,
	"scripts":      true,
}

// Scanner finds plugin manifests in the immediate subdirectories of Root.
type Scanner struct {
	Root    string
	Exclude []string // extra glob patterns matched against directory names
	Logger  *zap.Logger
}

// Dirs returns the candidate plugin directories under Root: every
// immediate subdirectory that is not hidden, reserved, or excluded.
// Whether a candidate holds a manifest is not checked here.
func (s *Scanner) Dirs() ([]string, error) {
	items, err := os.ReadDir(s.Root)
	if err != nil {
		return nil, fmt.Errorf("reading plugin root %s: %w", s.Root, err)
	}

	var dirs []string
	for _, item := range items {
		if !item.IsDir() || s.excluded(item.Name()) {
			continue
		}
		dirs = append(dirs, filepath.Join(s.Root, item.Name()))
	}
	return dirs, nil
}

// Scan extracts one entry per candidate directory that has a manifest. A
// directory whose manifest cannot be read or parsed is recorded as a
// Failure and the scan moves on. The error return is reserved for Root
// itself being unreadable.
func (s *Scanner) Scan() (*ScanResult, error) {
	log := s.Logger
	if log == nil {
		log = zap.NewNop()
	}

	dirs, err := s.Dirs()
	if err != nil {
		return nil, err
	}

	result := &ScanResult{}
	for _, dir := range dirs {
		path, ok := manifest.Find(dir)
		if !ok {
			continue
		}

		m, err := manifest.Parse(path)
		if err != nil {
			log.Error("Error reading manifest", zap.String("dir", dir), zap.Error(err))
			result.Failures = append(result.Failures, Failure{Dir: dir, Err: err})
			continue
		}
		// A null document declares nothing.
		if m == nil {
			continue
		}

		result.Entries = append(result.Entries, EntryFromManifest(m))
		log.Info("Found plugin", zap.String("name", m.NameString()), zap.String("id", m.IDString()))
	}

	return result, nil
}

// excluded reports whether a directory name is hidden, reserved, or matches
// one of the configured exclusion patterns.
func (s *Scanner) excluded(name string) bool {
	if strings.HasPrefix(name, ".") || reservedDirs[name] {
		return true
	}
	for _, pattern := range s.Exclude {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

// ValidatePatterns checks that every exclusion pattern is a valid glob.
func ValidatePatterns(patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid exclude pattern %q", p)
		}
	}
	return nil
}
