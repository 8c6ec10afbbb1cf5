package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetColored(5, 5, '@', ColorRed)

	if c := s.GetCell(5, 5); c.Rune != '@' || c.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red '@'", c)
	}

	// out of bounds writes are ignored, reads are blank
	s.SetColored(-1, 0, 'A', ColorRed)
	s.SetColored(0, 100, 'A', ColorRed)
	if s.Get(-1, 0) != ' ' || s.GetCell(100, 0) != blank {
		t.Error("out of bounds reads should be blank")
	}

	s.Clear()
	if s.GetCell(5, 5) != blank {
		t.Error("Clear should blank every cell")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColored(2, 1, "Bomb", ColorYellow)

	if got := s.Row(1)[2:6]; got != "Bomb" {
		t.Errorf("row 1 = %q, expected Bomb at column 2", got)
	}
	if s.GetCell(3, 1).Color != ColorYellow {
		t.Error("text should keep its color")
	}

	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at the right edge")
	}
}

func TestScreenDrawTextCenteredMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "█▒█", ColorDefault)

	if got := s.Row(0); got != "   █▒█    " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	corners := map[[2]int]rune{{1, 1}: '┌', {5, 1}: '┐', {1, 4}: '└', {5, 4}: '┘'}
	for p, r := range corners {
		if s.Get(p[0], p[1]) != r {
			t.Errorf("corner (%d, %d) = %q, expected %q", p[0], p[1], s.Get(p[0], p[1]), r)
		}
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("edges are missing")
	}
	if s.Get(3, 2) != ' ' {
		t.Error("box interior should stay blank")
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content lost, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") || len(s.Row(7)) != 15 {
		t.Error("content lost after enlarging")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "de")

	if got := s.String(); got != "abc\nde " {
		t.Errorf("String() = %q", got)
	}
	if s.Row(-1) != "   " {
		t.Error("out of range row should be spaces")
	}
}

func TestColorBright(t *testing.T) {
	tests := []struct {
		in, want Color
	}{
		{ColorRed, ColorBrightRed},
		{ColorBlue, ColorBrightBlue},
		{ColorWhite, ColorBrightWhite},
		{ColorBrightGreen, ColorBrightGreen},
		{ColorBrown, ColorBrown},
		{ColorDefault, ColorDefault},
	}
	for _, tc := range tests {
		if got := tc.in.Bright(); got != tc.want {
			t.Errorf("%d.Bright() = %d, expected %d", tc.in, got, tc.want)
		}
	}
}
