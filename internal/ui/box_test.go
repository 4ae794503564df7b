package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short unchanged", "Math", 40, "Math"},
		{"exact unchanged", "abcde", 5, "abcde"},
		{"long cut with ellipsis", "abcdefghij", 8, "abcde..."},
		{"thai text cut by display width", "วิชาคณิตศาสตร์พื้นฐานสำหรับวิศวกร", 10, runewidth.Truncate("วิชาคณิตศาสตร์พื้นฐานสำหรับวิศวกร", 10, "...")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in, tt.max); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestRenderList(t *testing.T) {
	var buf bytes.Buffer
	RenderList(&buf, "Courses", []string{"1. Math", "2. Physics and Astronomy"})

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// top border, title, separator, two rows, bottom border
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[1], "Courses") {
		t.Errorf("title missing from header line: %q", lines[1])
	}
	if !strings.Contains(lines[3], "1. Math") {
		t.Errorf("first row missing: %q", lines[3])
	}
}

func TestRenderListLinesHaveEqualWidth(t *testing.T) {
	var buf bytes.Buffer
	RenderList(&buf, "📚 รายวิชา", []string{"1. Math", "2. ฟิสิกส์เบื้องต้น"})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) < 4 {
		t.Fatalf("box too short: %d lines", len(lines))
	}
	width := runewidth.StringWidth(lines[0])
	for i, line := range lines {
		if w := runewidth.StringWidth(line); w != width {
			t.Errorf("line %d width = %d, want %d (%q)", i, w, width, line)
		}
	}
	if !strings.HasPrefix(lines[0], "┌") || !strings.HasPrefix(lines[len(lines)-1], "└") {
		t.Errorf("missing box borders:\n%s", buf.String())
	}
}
