package commands

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeLogFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadLastLines(t *testing.T) {
	dir := t.TempDir()
	// Newest first, matching logging.LogFiles ordering.
	newer := writeLogFile(t, dir, "moodtask-2026-08-23.log", "c\nd\ne\n")
	older := writeLogFile(t, dir, "moodtask-2026-08-22.log", "a\nb\n")
	files := []string{newer, older}

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{"fewer than one file", 2, []string{"d", "e"}},
		{"spans files", 4, []string{"b", "c", "d", "e"}},
		{"more than available", 10, []string{"a", "b", "c", "d", "e"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := readLastLines(files, tt.n)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("readLastLines(n=%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestFormatLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  string
	}{
		{"debug", "DBG"},
		{"info", "INF"},
		{"warn", "WRN"},
		{"error", "ERR"},
		{"fatal", "FAT"},
		{"x", "X"},
	}

	for _, tt := range tests {
		if got := formatLogLevel(tt.level); got != tt.want {
			t.Errorf("formatLogLevel(%q) = %q, want %q", tt.level, got, tt.want)
		}
	}
}
