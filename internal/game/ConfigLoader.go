package game

import (
	"fmt"
	"image/color"
	"os"

	lua "github.com/yuin/gopher-lua"
)

// ConfigEnvVar names the Lua config file hosts read at startup.
const ConfigEnvVar = "SNAKE_CONFIG"

// ConfigFromEnv loads the file named by SNAKE_CONFIG, or returns the
// defaults when it is unset.
func ConfigFromEnv() (Config, error) {
	path := os.Getenv(ConfigEnvVar)
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}

// LoadConfig evaluates a Lua config script and overlays the globals it sets
// on DefaultConfig. Example:
//
//	width = 30
//	height = 20
//	movement_period = 0.08
//	food_color = { r = 255, g = 128, b = 0 }
func LoadConfig(path string) (Config, error) {
	cfg, err := loadConfig(func(luaState *lua.LState) error {
		return luaState.DoFile(path)
	})
	if err != nil {
		return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadConfigString is LoadConfig for an in-memory script.
func LoadConfigString(script string) (Config, error) {
	return loadConfig(func(luaState *lua.LState) error {
		return luaState.DoString(script)
	})
}

func loadConfig(run func(*lua.LState) error) (Config, error) {
	luaState := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer luaState.Close()

	// base library only, no io or os
	luaState.Push(luaState.NewFunction(lua.OpenBase))
	luaState.Push(lua.LString(lua.BaseLibName))
	luaState.Call(1, 0)

	if err := run(luaState); err != nil {
		return Config{}, fmt.Errorf("could not execute lua config: %w", err)
	}

	cfg := DefaultConfig()
	ints := map[string]*int{
		"width":             &cfg.Width,
		"height":            &cfg.Height,
		"spawn_x":           &cfg.Spawn.X,
		"spawn_y":           &cfg.Spawn.Y,
		"food_x":            &cfg.InitialFood.X,
		"food_y":            &cfg.InitialFood.Y,
		"max_food_attempts": &cfg.MaxFoodAttempts,
	}
	for name, dst := range ints {
		if err := readNumber(luaState, name, func(n float64) { *dst = int(n) }); err != nil {
			return Config{}, err
		}
	}

	floats := map[string]*float64{
		"movement_period": &cfg.MovementPeriod,
		"restart_delay":   &cfg.RestartDelay,
	}
	for name, dst := range floats {
		if err := readNumber(luaState, name, func(n float64) { *dst = n }); err != nil {
			return Config{}, err
		}
	}

	if err := readNumber(luaState, "seed", func(n float64) { cfg.Seed = uint64(n) }); err != nil {
		return Config{}, err
	}

	colors := map[string]*color.RGBA{
		"food_color":      &cfg.FoodColor,
		"border_color":    &cfg.BorderColor,
		"game_over_color": &cfg.GameOverColor,
		"snake_color":     &cfg.SnakeColor,
	}
	for name, dst := range colors {
		if err := readColor(luaState, name, dst); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readNumber(luaState *lua.LState, name string, set func(float64)) error {
	value := luaState.GetGlobal(name)
	switch value.Type() {
	case lua.LTNil:
		return nil
	case lua.LTNumber:
		set(float64(lua.LVAsNumber(value)))
		return nil
	}
	return fmt.Errorf("%w: %s must be a number, got %s", ErrInvalidConfig, name, value.Type().String())
}

// readColor converts a {r=, g=, b=, a=} table. Missing channels keep the
// current value.
func readColor(luaState *lua.LState, name string, dst *color.RGBA) error {
	value := luaState.GetGlobal(name)
	if value.Type() == lua.LTNil {
		return nil
	}
	luaTbl, ok := value.(*lua.LTable)
	if !ok {
		return fmt.Errorf("%w: %s must be a table, got %s", ErrInvalidConfig, name, value.Type().String())
	}

	var convErr error
	luaTbl.ForEach(func(key, channel lua.LValue) {
		if convErr != nil || key.Type() != lua.LTString {
			return
		}
		if channel.Type() != lua.LTNumber {
			convErr = fmt.Errorf("%w: %s.%s must be a number", ErrInvalidConfig, name, lua.LVAsString(key))
			return
		}
		n := int(lua.LVAsNumber(channel))
		if n < 0 || n > 255 {
			convErr = fmt.Errorf("%w: %s.%s out of range: %d", ErrInvalidConfig, name, lua.LVAsString(key), n)
			return
		}

		switch lua.LVAsString(key) {
		case "r":
			dst.R = uint8(n)
		case "g":
			dst.G = uint8(n)
		case "b":
			dst.B = uint8(n)
		case "a":
			dst.A = uint8(n)
		}
	})
	return convErr
}
