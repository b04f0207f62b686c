package manifest

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}

// versionIssues reports the version-like fields of a decoded manifest that
// are strings but not semantic versions. Non-string values are left to the
// schema check.
func versionIssues(doc map[string]interface{}) []ValidationIssue {
	var issues []ValidationIssue
	for _, key := range []string{KeyVersion, KeyMinNoctaliaVersion} {
		s, ok := doc[key].(string)
		if !ok || s == "" {
			continue
		}
		if _, err := parseSemver(s); err != nil {
			issues = append(issues, ValidationIssue{
				Path:    "/" + key,
				Message: printer.Sprintf("%q is not a semantic version: %v", s, err),
				Keyword: "semver",
			})
		}
	}
	return issues
}
