package game

import (
	"errors"
	"fmt"
	"image/color"
)

const (
	MinBoardSize           = 5
	DefaultMovementPeriod  = 0.1
	DefaultRestartDelay    = 1.0
	DefaultMaxFoodAttempts = 1000
)

var (
	ErrBoardTooSmall = errors.New("board too small")
	ErrInvalidConfig = errors.New("invalid config")
	ErrNoFreeCell    = errors.New("no free cell for food")
)

type Config struct {
	Width  int
	Height int

	// MovementPeriod is the number of seconds between automatic steps.
	MovementPeriod float64
	// RestartDelay is how long the game over overlay stays up, in seconds.
	RestartDelay float64

	Spawn       Position
	InitialFood Position

	MaxFoodAttempts int
	// Seed for food placement. Zero picks a time based seed.
	Seed uint64

	FoodColor     color.RGBA
	BorderColor   color.RGBA
	GameOverColor color.RGBA
	SnakeColor    color.RGBA
}

func DefaultConfig() Config {
	return Config{
		Width:           20,
		Height:          15,
		MovementPeriod:  DefaultMovementPeriod,
		RestartDelay:    DefaultRestartDelay,
		Spawn:           Position{X: 2, Y: 2},
		InitialFood:     Position{X: 6, Y: 4},
		MaxFoodAttempts: DefaultMaxFoodAttempts,
		FoodColor:       color.RGBA{R: 204, G: 0, B: 0, A: 255},
		BorderColor:     color.RGBA{R: 0, G: 0, B: 0, A: 255},
		GameOverColor:   color.RGBA{R: 230, G: 0, B: 0, A: 128},
		SnakeColor:      color.RGBA{R: 0, G: 204, B: 0, A: 255},
	}
}

func (c Config) Validate() error {
	if c.Width < MinBoardSize || c.Height < MinBoardSize {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrBoardTooSmall,
			c.Width, c.Height, MinBoardSize, MinBoardSize)
	}
	if c.MovementPeriod <= 0 {
		return fmt.Errorf("%w: movement period must be positive, got %v", ErrInvalidConfig, c.MovementPeriod)
	}
	if c.RestartDelay <= 0 {
		return fmt.Errorf("%w: restart delay must be positive, got %v", ErrInvalidConfig, c.RestartDelay)
	}
	if c.MaxFoodAttempts < 1 {
		return fmt.Errorf("%w: max food attempts must be at least 1, got %d", ErrInvalidConfig, c.MaxFoodAttempts)
	}

	snake := NewSnake(c.Spawn)
	for _, p := range snake.body {
		if !isInterior(p, c.Width, c.Height) {
			return fmt.Errorf("%w: spawn %v puts the snake outside the border", ErrInvalidConfig, c.Spawn)
		}
	}
	if !isInterior(c.InitialFood, c.Width, c.Height) {
		return fmt.Errorf("%w: initial food %v is outside the border", ErrInvalidConfig, c.InitialFood)
	}
	if snake.OverlapsBody(c.InitialFood) {
		return fmt.Errorf("%w: initial food %v is on the snake", ErrInvalidConfig, c.InitialFood)
	}
	return nil
}
