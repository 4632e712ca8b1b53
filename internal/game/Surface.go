package game

import "image/color"

// Surface is the drawing backend a host hands to Render. Coordinates are
// grid cells.
type Surface interface {
	DrawBlock(c color.RGBA, x, y int)
	DrawRectangle(c color.RGBA, x, y, width, height int)
}
