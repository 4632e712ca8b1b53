package ui

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// cellRune is printed twice per cell so cells come out roughly square.
const cellRune = "  "

// Canvas is a terminal game.Surface. Every grid cell is one background
// color; translucent draws are blended over what is already there.
type Canvas struct {
	width      int
	height     int
	background colorful.Color
	cells      []colorful.Color
}

func NewCanvas(width, height int, background color.RGBA) *Canvas {
	c := &Canvas{
		width:      width,
		height:     height,
		background: toColorful(background),
		cells:      make([]colorful.Color, width*height),
	}
	c.Clear()
	return c
}

func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = c.background
	}
}

func (c *Canvas) DrawBlock(col color.RGBA, x, y int) {
	c.DrawRectangle(col, x, y, 1, 1)
}

// DrawRectangle fills the cells it covers, clipped to the canvas. Colors use
// straight (not premultiplied) alpha, the same way raylib reads them.
func (c *Canvas) DrawRectangle(col color.RGBA, x, y, width, height int) {
	src := toColorful(col)
	alpha := float64(col.A) / 255

	for row := max(0, y); row < min(c.height, y+height); row++ {
		for column := max(0, x); column < min(c.width, x+width); column++ {
			i := row*c.width + column
			if col.A == 255 {
				c.cells[i] = src
				continue
			}
			c.cells[i] = c.cells[i].BlendRgb(src, alpha).Clamped()
		}
	}
}

// At returns the cell color at x, y.
func (c *Canvas) At(x, y int) colorful.Color {
	return c.cells[y*c.width+x]
}

func (c *Canvas) Render() string {
	var sb strings.Builder
	styles := make(map[string]lipgloss.Style)

	for row := 0; row < c.height; row++ {
		for column := 0; column < c.width; column++ {
			hex := c.cells[row*c.width+column].Hex()
			style, ok := styles[hex]
			if !ok {
				style = lipgloss.NewStyle().Background(lipgloss.Color(hex))
				styles[hex] = style
			}
			sb.WriteString(style.Render(cellRune))
		}
		if row < c.height-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func toColorful(col color.RGBA) colorful.Color {
	return colorful.Color{
		R: float64(col.R) / 255,
		G: float64(col.G) / 255,
		B: float64(col.B) / 255,
	}
}
