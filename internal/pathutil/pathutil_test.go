package pathutil

import (
	"path/filepath"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/.minigrep/cfg.yaml", filepath.Join(home, ".minigrep", "cfg.yaml")},
		{"relative/cfg.yaml", "relative/cfg.yaml"},
		{"/etc/minigrep.yaml", "/etc/minigrep.yaml"},
		{"~other/cfg.yaml", "~other/cfg.yaml"},
		{"", ""},
	}

	for _, tt := range tests {
		got, err := ExpandHome(tt.in)
		if err != nil {
			t.Fatalf("ExpandHome(%q) returned error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ExpandHome(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
