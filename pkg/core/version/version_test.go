package version

import (
	"regexp"
	"runtime"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionConstants(t *testing.T) {
	if !semverRegex.MatchString(App) {
		t.Errorf("App version %q does not match semver format (x.y.z)", App)
	}
	if Protocol == "" {
		t.Error("Protocol version is empty")
	}
}

func TestString(t *testing.T) {
	got := String()

	for _, want := range []string{"soarcli " + App, "commit " + Commit, runtime.GOOS, "protocol " + Protocol} {
		if !strings.Contains(got, want) {
			t.Errorf("String() = %q, missing %q", got, want)
		}
	}
}
