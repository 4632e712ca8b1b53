package main

import (
	"os"

	"github.com/Mshel/sshnake/internal/game"
	"github.com/Mshel/sshnake/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

func main() {
	// a missing .env is fine, the environment may already be set
	_ = godotenv.Load()

	if level, err := log.ParseLevel(os.Getenv("SNAKE_LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	}

	cfg, err := game.ConfigFromEnv()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	controllerModel, err := ui.NewControllerModel(cfg, 0, 0)
	if err != nil {
		log.Fatal("Failed to create game", "error", err)
	}

	p := tea.NewProgram(controllerModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error("Program exited with error", "error", err)
		os.Exit(1)
	}
}
