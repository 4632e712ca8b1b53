package main

import (
	"os"
	"strconv"

	"github.com/Mshel/sshnake/internal/desktop"
	"github.com/Mshel/sshnake/internal/game"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const defaultCellSize = 25

func main() {
	_ = godotenv.Load()

	if level, err := log.ParseLevel(os.Getenv("SNAKE_LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	}

	cfg, err := game.ConfigFromEnv()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	cellSize := int32(defaultCellSize)
	if raw := os.Getenv("SNAKE_CELL_SIZE"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			log.Fatal("Invalid SNAKE_CELL_SIZE", "value", raw)
		}
		cellSize = int32(n)
	}

	if err := desktop.Run(cfg, cellSize); err != nil {
		log.Fatal("Game failed", "error", err)
	}
}
