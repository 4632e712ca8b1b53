package game

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigStringOverlaysDefaults(t *testing.T) {
	cfg, err := LoadConfigString(`
		width = 30
		height = 12
		movement_period = 0.05
		seed = 7
		food_color = { r = 255, g = 128 }
	`)
	if err != nil {
		t.Fatalf("LoadConfigString: %v", err)
	}

	def := DefaultConfig()
	if cfg.Width != 30 || cfg.Height != 12 {
		t.Errorf("board = %dx%d, want 30x12", cfg.Width, cfg.Height)
	}
	if cfg.MovementPeriod != 0.05 {
		t.Errorf("movement period = %v, want 0.05", cfg.MovementPeriod)
	}
	if cfg.RestartDelay != def.RestartDelay {
		t.Errorf("restart delay = %v, want default %v", cfg.RestartDelay, def.RestartDelay)
	}
	if cfg.Seed != 7 {
		t.Errorf("seed = %d, want 7", cfg.Seed)
	}
	want := color.RGBA{R: 255, G: 128, B: def.FoodColor.B, A: def.FoodColor.A}
	if cfg.FoodColor != want {
		t.Errorf("food color = %v, want %v", cfg.FoodColor, want)
	}
}

func TestLoadConfigStringErrors(t *testing.T) {
	cases := map[string]struct {
		script string
		want   error
	}{
		"wrong type":      {`width = "wide"`, ErrInvalidConfig},
		"color channel":   {`snake_color = { r = 300 }`, ErrInvalidConfig},
		"color not table": {`border_color = 12`, ErrInvalidConfig},
		"small board":     {`width = 4`, ErrBoardTooSmall},
		"zero period":     {`movement_period = 0`, ErrInvalidConfig},
		"food on snake":   {`food_x = 1 food_y = 2`, ErrInvalidConfig},
		"spawn on wall":   {`spawn_x = 1`, ErrInvalidConfig},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfigString(c.script)
			if !errors.Is(err, c.want) {
				t.Fatalf("error = %v, want %v", err, c.want)
			}
		})
	}
}

func TestLoadConfigStringSyntaxError(t *testing.T) {
	if _, err := LoadConfigString(`width = `); err == nil {
		t.Fatal("expected a syntax error")
	}
}

func TestLoadConfigStringHasNoIO(t *testing.T) {
	if _, err := LoadConfigString(`io.open("x")`); err == nil {
		t.Fatal("io library should not be available")
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.lua")
	if err := os.WriteFile(path, []byte("height = 25\nrestart_delay = 2.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Height != 25 || cfg.RestartDelay != 2.5 {
		t.Errorf("cfg = %+v", cfg)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.lua")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(ConfigEnvVar, "")
	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}

	path := filepath.Join(t.TempDir(), "snake.lua")
	if err := os.WriteFile(path, []byte("width = 40\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigEnvVar, path)
	cfg, err = ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	if cfg.Width != 40 {
		t.Errorf("width = %d, want 40", cfg.Width)
	}
}
