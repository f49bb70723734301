package message

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{
			name:  "word lands exactly on the boundary",
			text:  "ab cd efgh",
			width: 5,
			want:  []string{"ab cd", "efgh "},
		},
		{
			name:  "full-width words",
			text:  "hello world",
			width: 5,
			want:  []string{"hello", "world"},
		},
		{
			name:  "word fills the last row exactly",
			text:  "ab abc",
			width: 3,
			want:  []string{"ab ", "abc"},
		},
		{
			name:  "last word ends on the boundary",
			text:  "a bc",
			width: 4,
			want:  []string{"a bc"},
		},
		{
			name:  "overflow pads the row",
			text:  "ab abc",
			width: 5,
			want:  []string{"ab   ", "abc  "},
		},
		{
			name:  "long word is cut with an ellipsis",
			text:  "abcdefghij",
			width: 6,
			want:  []string{"abc..."},
		},
		{
			name:  "long word in the middle of a row",
			text:  "a verylongword b",
			width: 8,
			want:  []string{"a       ", "veryl...", "b       "},
		},
		{
			name:  "collapses whitespace",
			text:  "  a \t b  ",
			width: 4,
			want:  []string{"a b "},
		},
		{
			name:  "empty notice is one blank row",
			text:  "",
			width: 3,
			want:  []string{"   "},
		},
		{
			name:  "multibyte runes count once",
			text:  "Гравець X зробив хід",
			width: 9,
			want:  []string{"Гравець X", "зробив   ", "хід      "},
		},
		{
			name:  "width smaller than the ellipsis",
			text:  "abcdef",
			width: 2,
			want:  []string{".."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.text, tt.width)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Wrap(%q, %d) mismatch (-want +got):\n%s", tt.text, tt.width, diff)
			}
		})
	}
}

func TestWrapNeverSplitsShortWords(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog again and again"
	for width := 5; width <= 20; width++ {
		rows := Wrap(text, width)
		joined := strings.Fields(strings.Join(rows, " "))
		if diff := cmp.Diff(strings.Fields(text), joined); diff != "" {
			t.Errorf("width %d split a word (-want +got):\n%s", width, diff)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name      string
		texts     []string
		width     int
		height    int
		want      string
		wantShown int
	}{
		{
			name:      "single notice",
			texts:     []string{"ab cd efgh"},
			width:     5,
			height:    10,
			want:      "ab cdefgh ",
			wantShown: 1,
		},
		{
			name:      "blank row between notices",
			texts:     []string{"hi", "yo"},
			width:     4,
			height:    10,
			want:      "hi      yo  ",
			wantShown: 2,
		},
		{
			name:      "one blank row after a full-width notice",
			texts:     []string{"hello", "hi"},
			width:     5,
			height:    10,
			want:      "hello" + "     " + "hi   ",
			wantShown: 2,
		},
		{
			name:      "exactly fills the pane",
			texts:     []string{"hi", "yo"},
			width:     4,
			height:    3,
			want:      "hi      yo  ",
			wantShown: 2,
		},
		{
			name:      "overflow inside one notice",
			texts:     []string{"one two three four"},
			width:     5,
			height:    2,
			want:      "one  tw...",
			wantShown: 1,
		},
		{
			name:      "overflow drops later notices",
			texts:     []string{"a", "b", "c"},
			width:     3,
			height:    3,
			want:      "a     ...",
			wantShown: 1,
		},
		{
			name:      "ellipsis row cuts a notice short",
			texts:     []string{"a", "bb cc"},
			width:     3,
			height:    3,
			want:      "a     ...",
			wantShown: 1,
		},
		{
			name:      "notice taller than the pane still counts",
			texts:     []string{"one two three four", "x"},
			width:     5,
			height:    2,
			want:      "one  tw...",
			wantShown: 1,
		},
		{
			name:      "nothing pending",
			texts:     nil,
			width:     5,
			height:    3,
			want:      "",
			wantShown: 0,
		},
		{
			name:      "degenerate pane",
			texts:     []string{"a"},
			width:     0,
			height:    3,
			want:      "",
			wantShown: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, shown := Format(tt.texts, tt.width, tt.height)
			if got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
			if shown != tt.wantShown {
				t.Errorf("Format() shown = %d, want %d", shown, tt.wantShown)
			}
		})
	}
}

func TestFormatIsRowAligned(t *testing.T) {
	texts := []string{
		"Hello!",
		"Player Crosses moved",
		"Player Noughts is next",
		"This cell is occupied. Try again",
		"supercalifragilisticexpialidocious",
	}
	for width := 4; width <= 24; width++ {
		for height := 1; height <= 12; height++ {
			out, _ := Format(texts, width, height)
			n := utf8.RuneCountInString(out)
			if n%width != 0 {
				t.Fatalf("Format(width=%d, height=%d) length %d is not a multiple of width", width, height, n)
			}
			if n > width*height {
				t.Fatalf("Format(width=%d, height=%d) length %d exceeds the pane", width, height, n)
			}
		}
	}
}
