package manifest

import "testing"

func TestParseSemver(t *testing.T) {
	tests := []struct {
		version string
		wantErr bool
	}{
		{"1.0.0", false},
		{"v2.3.4", false},
		{"1.0.0-beta.1", false},
		{"1.2", false},
		{"latest", true},
		{"dev", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			_, err := parseSemver(tt.version)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseSemver(%q) err = %v, wantErr %v", tt.version, err, tt.wantErr)
			}
		})
	}
}

func TestVersionIssues_SkipsNonStrings(t *testing.T) {
	doc := map[string]interface{}{
		KeyVersion:            float64(3),
		KeyMinNoctaliaVersion: "",
	}
	if issues := versionIssues(doc); len(issues) != 0 {
		t.Errorf("expected no issues, got %+v", issues)
	}
}
