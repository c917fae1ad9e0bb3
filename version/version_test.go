package version

import (
	"strings"
	"testing"
)

func TestGet_Defaults(t *testing.T) {
	info := Get()
	if info.Version != "dev" {
		t.Errorf("Version = %q, want dev", info.Version)
	}
	if info.IsRelease {
		t.Error("dev build should not be a release")
	}
	if len(info.GitCommit) > 7 {
		t.Errorf("GitCommit should be truncated to 7 chars, got %q", info.GitCommit)
	}
}

func TestShort(t *testing.T) {
	s := Short()
	if !strings.HasPrefix(s, "dev") {
		t.Errorf("Short() = %q, want dev prefix", s)
	}
}

func TestFull(t *testing.T) {
	s := Full()
	if !strings.HasPrefix(s, "dev") {
		t.Errorf("Full() = %q, want dev prefix", s)
	}
}
