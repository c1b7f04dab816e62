package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'A', ColorRed)
	if c := s.GetCell(5, 5); c.Rune != 'A' || c.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red 'A'", c)
	}

	s.Set(-1, 0, 'X')
	s.Set(100, 0, 'X')
	s.Set(0, -1, 'X')
	s.Set(0, 100, 'X')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(0, 100) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.DrawRect(NewRect(0, 0, 4, 4), '#', ColorYellow)
	s.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColored(2, 1, "Score", ColorCyan)

	for i, ch := range "Score" {
		c := s.GetCell(2+i, 1)
		if c.Rune != ch || c.Color != ColorCyan {
			t.Errorf("DrawTextColored: expected cyan %q at (%d, 1), got %+v", ch, 2+i, c)
		}
	}

	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCenteredMultibyte(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "♥♥", ColorRed)

	x := (20 - 2) / 2
	if s.Get(x, 1) != '♥' || s.Get(x+1, 1) != '♥' {
		t.Errorf("DrawTextCentered placed text at wrong column, row = %q", s.Row(1))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorWhite)

	corners := []struct {
		x, y int
		r    rune
	}{
		{1, 1, '┌'},
		{5, 1, '┐'},
		{1, 4, '└'},
		{5, 4, '┘'},
	}
	for _, c := range corners {
		if got := s.Get(c.x, c.y); got != c.r {
			t.Errorf("corner at (%d, %d) = %q, expected %q", c.x, c.y, got, c.r)
		}
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
}

func TestScreenStringAndRow(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
	if got := s.Row(1); got != "BBBBB" {
		t.Errorf("Row(1) = %q, expected BBBBB", got)
	}
	if got := s.Row(-1); got != "     " {
		t.Errorf("Row(-1) = %q, expected spaces", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if strings.TrimSpace(s.String()) != "" {
		t.Error("Resize should leave a blank buffer")
	}
}
