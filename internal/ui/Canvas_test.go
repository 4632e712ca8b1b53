package ui

import (
	"image/color"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

var (
	black = color.RGBA{A: 255}
	red   = color.RGBA{R: 255, A: 255}
)

func TestCanvasDrawBlock(t *testing.T) {
	c := NewCanvas(3, 2, black)

	c.DrawBlock(red, 1, 1)

	if got := c.At(1, 1).Hex(); got != "#ff0000" {
		t.Errorf("At(1,1) = %s, want #ff0000", got)
	}
	if got := c.At(0, 0).Hex(); got != "#000000" {
		t.Errorf("At(0,0) = %s, want background", got)
	}
}

func TestCanvasDrawRectangleClips(t *testing.T) {
	c := NewCanvas(4, 4, black)

	c.DrawRectangle(red, -2, -2, 4, 10)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := "#000000"
			if x < 2 {
				want = "#ff0000"
			}
			if got := c.At(x, y).Hex(); got != want {
				t.Errorf("At(%d,%d) = %s, want %s", x, y, got, want)
			}
		}
	}
}

func TestCanvasBlendsTranslucentColors(t *testing.T) {
	c := NewCanvas(2, 1, black)

	c.DrawRectangle(color.RGBA{R: 255, A: 128}, 0, 0, 1, 1)

	if got := c.At(0, 0).Hex(); got != "#800000" {
		t.Errorf("blended = %s, want #800000", got)
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(2, 2, black)
	c.DrawRectangle(red, 0, 0, 2, 2)

	c.Clear()

	if got := c.At(1, 1).Hex(); got != "#000000" {
		t.Errorf("At(1,1) = %s after Clear, want background", got)
	}
}

func TestCanvasRenderSize(t *testing.T) {
	c := NewCanvas(5, 3, black)

	lines := strings.Split(c.Render(), "\n")

	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 5*len(cellRune) {
			t.Errorf("line %d width = %d, want %d", i, w, 5*len(cellRune))
		}
	}
}
