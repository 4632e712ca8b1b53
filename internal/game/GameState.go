package game

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/rand"
)

type Phase int

const (
	PhasePlaying Phase = iota
	// PhaseFoodPending means the food was eaten and the next Advance places
	// a new one.
	PhaseFoodPending
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseFoodPending:
		return "food-pending"
	case PhaseGameOver:
		return "game-over"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// GameState is the authoritative state of one snake session. It is not safe
// for concurrent use; the host loop owns it.
type GameState struct {
	config Config
	width  int
	height int

	snake SnakeBody
	food  *Position // nil when there is no food on the board

	phase       Phase
	waitingTime float64

	rng *rand.Rand
}

// New creates a game on a width x height board with the default config.
func New(width, height int) (*GameState, error) {
	cfg := DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	return NewGameState(cfg)
}

func NewGameState(cfg Config) (*GameState, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	gs := &GameState{
		config: cfg,
		width:  cfg.Width,
		height: cfg.Height,
		rng:    rand.New(rand.NewSource(seed)),
	}
	gs.restart()
	return gs, nil
}

func (gs *GameState) Config() Config {
	return gs.config
}

func (gs *GameState) Phase() Phase {
	return gs.phase
}

func (gs *GameState) IsGameOver() bool {
	return gs.phase == PhaseGameOver
}

// Food returns the food position and whether food is on the board.
func (gs *GameState) Food() (Position, bool) {
	if gs.food == nil {
		return Position{}, false
	}
	return *gs.food, true
}

// HandleInput applies a key press. Movement happens immediately, so the
// movement timer restarts exactly as it does after a timed step.
func (gs *GameState) HandleInput(key Key) {
	if gs.phase == PhaseGameOver {
		return
	}

	dir, ok := key.Direction()
	if !ok {
		return
	}

	if dir == gs.snake.HeadDirection().Opposite() {
		return
	}

	gs.step(dir)
}

// Advance feeds elapsed seconds into the state machine. At most one of
// restart, food placement or movement happens per call.
func (gs *GameState) Advance(elapsedSeconds float64) error {
	gs.waitingTime += elapsedSeconds

	switch gs.phase {
	case PhaseGameOver:
		if gs.waitingTime > gs.config.RestartDelay {
			gs.restart()
			log.Debug("Game restarted", "head", gs.snake.HeadPosition())
		}
	case PhaseFoodPending:
		if err := gs.addFood(); err != nil {
			return err
		}
	case PhasePlaying:
		if gs.waitingTime > gs.config.MovementPeriod {
			gs.step(Direction{})
		}
	}
	return nil
}

// step is the only path that moves the snake. A zero dir keeps the heading.
func (gs *GameState) step(dir Direction) {
	next := gs.snake.NextHead(dir)

	if cause := gs.deathCause(next); cause != "" {
		gs.phase = PhaseGameOver
		log.Info("Snake died", "cause", cause, "head", gs.snake.HeadPosition(), "next", next, "length", gs.snake.Len())
	} else {
		gs.snake.MoveForward(dir)
		gs.checkEating()
	}

	gs.waitingTime = 0
}

func (gs *GameState) deathCause(next Position) string {
	if gs.snake.OverlapsBody(next) {
		return "self"
	}
	if !isInterior(next, gs.width, gs.height) {
		return "wall"
	}
	return ""
}

func (gs *GameState) checkEating() {
	if gs.food == nil || *gs.food != gs.snake.HeadPosition() {
		return
	}
	gs.food = nil
	gs.phase = PhaseFoodPending
	gs.snake.RestoreTail()
}

// addFood samples interior cells until one is off the snake. After
// MaxFoodAttempts misses it falls back to the first free cell in row order.
func (gs *GameState) addFood() error {
	for range gs.config.MaxFoodAttempts {
		candidate := Position{
			X: 1 + gs.rng.Intn(gs.width-2),
			Y: 1 + gs.rng.Intn(gs.height-2),
		}
		if !gs.snake.OverlapsBody(candidate) {
			gs.placeFood(candidate)
			return nil
		}
	}

	for y := 1; y <= gs.height-2; y++ {
		for x := 1; x <= gs.width-2; x++ {
			candidate := Position{X: x, Y: y}
			if !gs.snake.OverlapsBody(candidate) {
				gs.placeFood(candidate)
				return nil
			}
		}
	}

	log.Warn("Could not place food", "length", gs.snake.Len(), "width", gs.width, "height", gs.height)
	return ErrNoFreeCell
}

func (gs *GameState) placeFood(p Position) {
	gs.food = &p
	gs.phase = PhasePlaying
}

func (gs *GameState) restart() {
	gs.snake = NewSnake(gs.config.Spawn)
	gs.phase = PhasePlaying
	gs.waitingTime = 0
	food := gs.config.InitialFood
	gs.food = &food
}

// Render draws the board onto s without touching the state.
func (gs *GameState) Render(s Surface) {
	gs.snake.Render(s, gs.config.SnakeColor)

	if gs.food != nil {
		s.DrawBlock(gs.config.FoodColor, gs.food.X, gs.food.Y)
	}

	border := gs.config.BorderColor
	s.DrawRectangle(border, 0, 0, gs.width, 1)
	s.DrawRectangle(border, 0, gs.height-1, gs.width, 1)
	s.DrawRectangle(border, 0, 0, 1, gs.height)
	s.DrawRectangle(border, gs.width-1, 0, 1, gs.height)

	if gs.phase == PhaseGameOver {
		s.DrawRectangle(gs.config.GameOverColor, 0, 0, gs.width, gs.height)
	}
}

type Snapshot struct {
	Width       int
	Height      int
	Head        Position
	Direction   Direction
	Body        []Position
	Food        *Position
	Phase       Phase
	WaitingTime float64
}

func (gs *GameState) Snapshot() Snapshot {
	snap := Snapshot{
		Width:       gs.width,
		Height:      gs.height,
		Head:        gs.snake.HeadPosition(),
		Direction:   gs.snake.HeadDirection(),
		Body:        gs.snake.Body(),
		Phase:       gs.phase,
		WaitingTime: gs.waitingTime,
	}
	if gs.food != nil {
		food := *gs.food
		snap.Food = &food
	}
	return snap
}
