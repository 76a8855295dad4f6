package cli

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestVersionCommand(t *testing.T) {
	origVersion, origCommit, origDate := buildVersion, buildCommit, buildDate
	buildVersion, buildCommit, buildDate = "1.2.3", "abc1234", "2026-01-02"
	t.Cleanup(func() {
		buildVersion, buildCommit, buildDate = origVersion, origCommit, origDate
	})

	t.Run("full output", func(t *testing.T) {
		versionShort, versionJSON = false, false
		out, err := execute(t, "", "version")
		if err != nil {
			t.Fatalf("version: %v", err)
		}
		for _, want := range []string{"asforge version 1.2.3", "commit: abc1234", "built: 2026-01-02", "go: ", "home: https://github.com/asforge-labs/asforge"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("short output", func(t *testing.T) {
		versionShort, versionJSON = false, false
		out, err := execute(t, "", "version", "--short")
		if err != nil {
			t.Fatalf("version --short: %v", err)
		}
		if strings.TrimSpace(out) != "1.2.3" {
			t.Errorf("output = %q, want just the version", out)
		}
	})

	t.Run("json output", func(t *testing.T) {
		versionShort, versionJSON = false, false
		out, err := execute(t, "", "version", "--json")
		if err != nil {
			t.Fatalf("version --json: %v", err)
		}
		var info map[string]string
		if err := json.Unmarshal([]byte(out), &info); err != nil {
			t.Fatalf("output is not JSON: %v\n%s", err, out)
		}
		if info["version"] != "1.2.3" || info["commit"] != "abc1234" {
			t.Errorf("info = %v", info)
		}
		if info["platform"] == "" || info["go"] == "" {
			t.Errorf("missing build environment fields: %v", info)
		}
	})
}
