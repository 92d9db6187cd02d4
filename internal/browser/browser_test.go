package browser

import "testing"

func TestOpenRejectsUnsafeSchemes(t *testing.T) {
	tests := []string{
		"file:///etc/passwd",
		"javascript:alert(1)",
		"ftp://example.com",
		"",
	}
	for _, raw := range tests {
		if err := Open(raw); err == nil {
			t.Errorf("Open(%q): expected error", raw)
		}
	}
}

func TestOpenerPerPlatform(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"darwin", "open"},
		{"windows", "rundll32"},
		{"linux", "xdg-open"},
		{"freebsd", "xdg-open"},
	}
	for _, tt := range tests {
		if name, _ := opener(tt.goos, "https://example.com"); name != tt.want {
			t.Errorf("opener(%q) = %q, want %q", tt.goos, name, tt.want)
		}
	}
}
