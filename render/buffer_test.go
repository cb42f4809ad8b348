package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestBufferSetGet(t *testing.T) {
	buf := NewBuffer(4, 3)

	buf.SetContent(1, 2, 'a', nil, StyleHighlight)
	cell := buf.Get(1, 2)
	if cell.Rune != 'a' {
		t.Errorf("Expected rune 'a', got %q", cell.Rune)
	}
	if cell.Style != StyleHighlight {
		t.Error("Expected highlight style to be stored")
	}

	// Out-of-bounds writes are dropped
	buf.SetContent(-1, 0, 'x', nil, tcell.StyleDefault)
	buf.SetContent(4, 0, 'x', nil, tcell.StyleDefault)
	buf.SetContent(0, 3, 'x', nil, tcell.StyleDefault)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if x == 1 && y == 2 {
				continue
			}
			if r := buf.Get(x, y).Rune; r != ' ' {
				t.Errorf("Expected blank at (%d, %d), got %q", x, y, r)
			}
		}
	}

	if (buf.Get(10, 10) != Cell{}) {
		t.Error("Expected zero cell when reading out of bounds")
	}
}

func TestBufferClearAndResize(t *testing.T) {
	buf := NewBuffer(3, 3)
	buf.SetContent(0, 0, 'z', nil, tcell.StyleDefault)
	buf.Clear()
	if r := buf.Get(0, 0).Rune; r != ' ' {
		t.Errorf("Expected blank after Clear, got %q", r)
	}

	buf.Resize(5, 2)
	w, h := buf.Size()
	if w != 5 || h != 2 {
		t.Errorf("Expected size 5x2, got %dx%d", w, h)
	}
	if got := buf.Row(1); got != "     " {
		t.Errorf("Expected blank row, got %q", got)
	}

	buf.Resize(-1, 4)
	w, h = buf.Size()
	if w != 0 || h != 4 {
		t.Errorf("Expected negative width to clamp to 0, got %dx%d", w, h)
	}
}

func TestBufferFrames(t *testing.T) {
	buf := NewBuffer(1, 1)
	buf.Show()
	buf.Show()
	if buf.Frames() != 2 {
		t.Errorf("Expected 2 frames, got %d", buf.Frames())
	}
}

func TestDrawText(t *testing.T) {
	buf := NewBuffer(10, 1)
	n := DrawText(buf, 2, 0, "hey", StyleText)
	if n != 3 {
		t.Errorf("Expected 3 columns, got %d", n)
	}
	if got := buf.Row(0); got != "  hey     " {
		t.Errorf("Expected row %q, got %q", "  hey     ", got)
	}

	// Text running past the edge is clipped
	DrawText(buf, 8, 0, "abc", StyleText)
	if got := buf.Row(0); got != "  hey   ab" {
		t.Errorf("Expected clipped row, got %q", got)
	}
}

func TestDrawCentered(t *testing.T) {
	buf := NewBuffer(9, 1)
	DrawCentered(buf, 0, "abc", StyleText)
	if got := buf.Row(0); got != "   abc   " {
		t.Errorf("Expected centered row, got %q", got)
	}

	// Text wider than the surface starts at column 0
	narrow := NewBuffer(2, 1)
	DrawCentered(narrow, 0, "abcd", StyleText)
	if got := narrow.Row(0); got != "ab" {
		t.Errorf("Expected %q, got %q", "ab", got)
	}
}

func TestFillAndSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(4, 2)

	// tcell.Screen satisfies Screen
	var s Screen = screen
	Fill(s, StyleHighlight)
	DrawText(s, 0, 0, "ok", StyleText)
	s.Show()

	r, _, style, _ := screen.GetContent(1, 0)
	if r != 'k' {
		t.Errorf("Expected 'k', got %q", r)
	}
	if style != StyleText {
		t.Error("Expected text style at (1, 0)")
	}
	r, _, style, _ = screen.GetContent(3, 1)
	if r != ' ' || style != StyleHighlight {
		t.Errorf("Expected filled blank at (3, 1), got %q", r)
	}
}
