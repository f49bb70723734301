package canvas

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-nrow/internal/core"
)

var testFrame = FrameGlyphs{
	TopLeft: '┏', Horizontal: '━', TeeDown: '┳', TopRight: '┓',
	Vertical: '┃', TeeRight: '┣', TeeLeft: '┫', TeeUp: '┻',
	BottomRight: '┛', BottomLeft: '┗', Cross: '╋',
}

var testBox = BoxGlyphs{
	TopLeft: '╔', TopRight: '╗', BottomLeft: '╚', BottomRight: '╝',
	Horizontal: '═', Vertical: '║',
}

func render(s *Stack, w, h int) []string {
	screen := core.NewScreen(w, h)
	s.Draw(screen)
	rows := make([]string, h)
	for y := range rows {
		rows[y] = screen.Row(y)
	}
	return rows
}

func TestStackResolvePriority(t *testing.T) {
	top := NewLayer()
	bottom := NewLayer()
	top.Set(core.At(0, 0), 'a', core.ColorRed)
	bottom.Set(core.At(0, 0), 'b', core.ColorBlue)
	bottom.Set(core.At(0, 1), 'c', core.ColorBlue)

	s := NewStack(core.Cell{Rune: '.'}, top, nil, bottom)

	assert.Equal(t, core.Cell{Rune: 'a', Color: core.ColorRed}, s.Resolve(core.At(0, 0)))
	assert.Equal(t, core.Cell{Rune: 'c', Color: core.ColorBlue}, s.Resolve(core.At(0, 1)))
	assert.Equal(t, core.Cell{Rune: '.'}, s.Resolve(core.At(5, 5)))
}

func TestStackDrawClips(t *testing.T) {
	l := NewLayer()
	l.Set(core.At(0, 2), 'x', core.ColorDefault)
	l.Set(core.At(9, 9), 'y', core.ColorDefault)

	got := render(NewStack(core.Cell{Rune: ' '}, l), 3, 2)
	assert.Equal(t, []string{"  x", "   "}, got)
}

func TestGrid(t *testing.T) {
	l := NewLayer()
	// 2x2 cells of 1x1 glyphs: lines at 0, 2, 4.
	Grid(l, []int{0, 2, 4}, []int{0, 2, 4}, testFrame, '·', core.ColorGray)

	got := render(NewStack(core.Cell{Rune: ' '}, l), 5, 5)
	want := []string{
		"┏━┳━┓",
		"┃·┃·┃",
		"┣━╋━┫",
		"┃·┃·┃",
		"┗━┻━┛",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}
}

func TestGridOffsetAndWideCells(t *testing.T) {
	l := NewLayer()
	// One row of two 1x3 cells anchored at (1, 1).
	Grid(l, []int{1, 3}, []int{1, 5, 9}, testFrame, ' ', core.ColorGray)

	got := render(NewStack(core.Cell{Rune: '.'}, l), 11, 4)
	want := []string{
		"...........",
		".┏━━━┳━━━┓.",
		".┃   ┃   ┃.",
		".┗━━━┻━━━┛.",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}
}

func TestBox(t *testing.T) {
	l := NewLayer()
	Box(l, core.NewRect(0, 1, 3, 4), testBox, core.ColorYellow)

	got := render(NewStack(core.Cell{Rune: '.'}, l), 6, 3)
	want := []string{
		".╔══╗.",
		".║..║.",
		".╚══╝.",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("box mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, core.ColorYellow, l[core.At(0, 1)].Color)
}

func TestBlitCopiesSpaces(t *testing.T) {
	l := NewLayer()
	Blit(l, core.At(1, 1), []string{"\\ /", " X", "/ \\"}, core.ColorRed)

	got := render(NewStack(core.Cell{Rune: '.'}, l), 5, 4)
	want := []string{
		".....",
		".\\ /.",
		". X..",
		"./ \\.",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("blit mismatch (-want +got):\n%s", diff)
	}
}

func TestFill(t *testing.T) {
	l := NewLayer()
	Fill(l, core.NewRect(1, 1, 2, 3), "abcd", core.ColorDefault)

	got := render(NewStack(core.Cell{Rune: '.'}, l), 5, 4)
	want := []string{
		".....",
		".abc.",
		".d...",
		".....",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("fill mismatch (-want +got):\n%s", diff)
	}

	l = NewLayer()
	Fill(l, core.NewRect(0, 0, 1, 2), "overflow", core.ColorDefault)
	assert.Len(t, l, 2)
}

func TestLayersOverride(t *testing.T) {
	frame := NewLayer()
	Grid(frame, []int{0, 2}, []int{0, 2}, testFrame, ' ', core.ColorGray)
	marks := NewLayer()
	marks.Set(core.At(1, 1), 'X', core.ColorRed)
	cursor := NewLayer()
	Box(cursor, core.NewRect(0, 0, 3, 3), testBox, core.ColorYellow)

	got := render(NewStack(core.Cell{Rune: ' '}, cursor, marks, frame), 3, 3)
	want := []string{
		"╔═╗",
		"║X║",
		"╚═╝",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("stack mismatch (-want +got):\n%s", diff)
	}
}
