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

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, 'X', ColorYellow)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' {
		t.Errorf("GetCell(5, 5).Rune = %q, expected 'X'", cell.Rune)
	}
	if cell.Color != ColorYellow {
		t.Errorf("GetCell(5, 5).Color = %v, expected ColorYellow", cell.Color)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return a default space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if got := s.GetCell(100, 0); got.Rune != ' ' || got.Color != ColorDefault {
		t.Error("Out of bounds GetCell should return a default cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetCell(x, y, 'X', ColorRed)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Errorf("After Clear, expected default space at (%d, %d), got %+v", x, y, cell)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawText(2, 1, "hello")
	if got := strings.TrimRight(s.Row(1), " "); got != "  hello" {
		t.Errorf("Row(1) = %q, expected %q", got, "  hello")
	}

	// Clipped at the right edge, no panic
	s.DrawText(17, 2, "long text")
	if got := s.Row(2)[17:]; got != "lon" {
		t.Errorf("clipped text = %q, expected %q", got, "lon")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "abc")

	if got := strings.TrimSpace(s.Row(1)); got != "abc" {
		t.Errorf("centered text = %q", got)
	}
	if s.Get(4, 1) != 'a' {
		t.Errorf("expected 'a' at x=4, got %q", s.Get(4, 1))
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(2, 2, 'X')

	s.Resize(20, 5)
	if s.Width() != 20 || s.Height() != 5 {
		t.Errorf("after Resize: %dx%d, expected 20x5", s.Width(), s.Height())
	}
	if s.Get(2, 2) != 'X' {
		t.Error("Resize should preserve content that still fits")
	}

	s.Resize(3, 3)
	if s.Get(2, 2) != 'X' {
		t.Error("content inside the new bounds should survive shrinking")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorDefault)

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' {
		t.Error("top corners wrong")
	}
	if s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Error("bottom corners wrong")
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("edges wrong")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}
