package desktop

import (
	"image/color"

	"github.com/Mshel/sshnake/internal/game"
	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var backColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}

var keyBindings = []struct {
	rlKey   int32
	gameKey game.Key
}{
	{rl.KeyUp, game.KeyUp},
	{rl.KeyW, game.KeyUp},
	{rl.KeyDown, game.KeyDown},
	{rl.KeyS, game.KeyDown},
	{rl.KeyLeft, game.KeyLeft},
	{rl.KeyA, game.KeyLeft},
	{rl.KeyRight, game.KeyRight},
	{rl.KeyD, game.KeyRight},
}

// Surface draws grid cells as cellSize x cellSize pixel squares.
type Surface struct {
	cellSize int32
}

func (s Surface) DrawBlock(c color.RGBA, x, y int) {
	s.DrawRectangle(c, x, y, 1, 1)
}

func (s Surface) DrawRectangle(c color.RGBA, x, y, width, height int) {
	rl.DrawRectangle(int32(x)*s.cellSize, int32(y)*s.cellSize, int32(width)*s.cellSize, int32(height)*s.cellSize, c)
}

// Run opens a window sized to the board and drives the game until the window
// is closed.
func Run(cfg game.Config, cellSize int32) error {
	state, err := game.NewGameState(cfg)
	if err != nil {
		return err
	}

	rl.InitWindow(int32(cfg.Width)*cellSize, int32(cfg.Height)*cellSize, "Snake")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	surface := Surface{cellSize: cellSize}
	paused := false
	log.Info("Window opened", "width", cfg.Width, "height", cfg.Height, "cell_size", cellSize)

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyP) {
			paused = !paused
		}

		if !paused {
			for _, binding := range keyBindings {
				if rl.IsKeyPressed(binding.rlKey) {
					state.HandleInput(binding.gameKey)
				}
			}
			if err := state.Advance(float64(rl.GetFrameTime())); err != nil {
				log.Warn("Advance failed", "error", err)
			}
		}

		rl.BeginDrawing()
		rl.ClearBackground(backColor)
		state.Render(surface)
		rl.EndDrawing()
	}

	log.Info("Window closed")
	return nil
}
