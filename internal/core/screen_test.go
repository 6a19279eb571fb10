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
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestNewScreenNegativeSize(t *testing.T) {
	s := NewScreen(-5, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("negative size should clamp to 0x0, got %dx%d", s.Width(), s.Height())
	}
	if s.String() != "" {
		t.Errorf("empty screen String() = %q", s.String())
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, 'X', ColorRed)
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red X", c)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenClearResetsBackground(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetCell(1, 1, 'X', ColorOrange)
	s.SetBackground(ColorRed)

	s.Clear()

	if s.Background() != ColorDefault {
		t.Errorf("Clear() left background %v", s.Background())
	}
	if c := s.GetCell(1, 1); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("Clear() left cell %+v", c)
	}
}

func TestScreenDrawTextUnicode(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawTextColor(1, 0, "ᓚᘏᗢ!", ColorYellow)

	expected := []rune("ᓚᘏᗢ!")
	for i, r := range expected {
		if c := s.GetCell(1+i, 0); c.Rune != r || c.Color != ColorYellow {
			t.Errorf("cell %d = %+v, expected %q yellow", 1+i, c, r)
		}
	}

	// Clipped at the right edge
	s.DrawText(8, 1, "Hello")
	if s.Get(8, 1) != 'H' || s.Get(9, 1) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorGreen)

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("centered text not at expected position: %q", s.Row(2))
	}
	if s.GetCell(x, 2).Color != ColorGreen {
		t.Error("centered text lost its colour")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

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
		if s.Get(c.x, c.y) != c.r {
			t.Errorf("corner at (%d, %d) = %q, expected %q", c.x, c.y, s.Get(c.x, c.y), c.r)
		}
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("box edges not drawn")
	}
	if s.Get(3, 2) != ' ' {
		t.Error("box interior should stay blank")
	}

	// Degenerate boxes are ignored
	s2 := NewScreen(4, 4)
	s2.DrawBox(NewRect(0, 0, 1, 3), ColorGray)
	if strings.TrimSpace(s2.String()) != "" {
		t.Error("1-wide box should draw nothing")
	}
}

func TestScreenDrawRectAndHLine(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawRect(NewRect(1, 0, 2, 2), '#')
	s.DrawHLine(0, 2, 6, '=', ColorWhite)

	if s.Row(0) != " ##   " || s.Row(1) != " ##   " {
		t.Errorf("DrawRect rows = %q, %q", s.Row(0), s.Row(1))
	}
	if s.Row(2) != "======" {
		t.Errorf("DrawHLine row = %q", s.Row(2))
	}
}

func TestScreenStringAndResize(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "de")

	if s.String() != "abc\nde " {
		t.Errorf("String() = %q", s.String())
	}

	s.Resize(5, 1)
	if s.Width() != 5 || s.Height() != 1 {
		t.Errorf("Resize: size = %dx%d", s.Width(), s.Height())
	}
	if s.Row(0) != "     " {
		t.Errorf("Resize should clear content, got %q", s.Row(0))
	}
	if s.Row(7) != "     " {
		t.Errorf("out of range Row() = %q", s.Row(7))
	}
}
