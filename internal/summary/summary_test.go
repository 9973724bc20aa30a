package summary

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{"short text untouched", "hello", 10, "hello"},
		{"exact length untouched", "hello", 5, "hello"},
		{"ascii cut", "hello world", 5, "hello"},
		{"rune boundary kept", "héllo", 2, "h"}, // é is two bytes; never split
		{"multibyte run", strings.Repeat("é", 10), 5, "éé"},
		{"zero max", "hello", 0, ""},
	}

	for _, tt := range tests {
		got := truncate(tt.input, tt.max)
		if got != tt.want {
			t.Errorf("%s: truncate = %q, want %q", tt.name, got, tt.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("%s: truncate produced invalid UTF-8: %q", tt.name, got)
		}
		if len(got) > tt.max {
			t.Errorf("%s: truncate kept %d bytes, max %d", tt.name, len(got), tt.max)
		}
	}
}
