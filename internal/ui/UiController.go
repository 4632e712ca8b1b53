package ui

import (
	"github.com/Mshel/sshnake/internal/game"
	tea "github.com/charmbracelet/bubbletea"
)

type Screen int

const (
	IntroScreen Screen = iota
	GameScreen
)

// IntroSubmitMsg carries the chosen intro button: 0 for Play, 1 for Quit.
type IntroSubmitMsg int

type ControllerModel struct {
	CurrentScreen Screen

	IntroModel tea.Model
	GameModel  tea.Model

	ScreenWidth  int
	ScreenHeight int
}

// NewControllerModel builds the intro screen and a fresh game for cfg.
func NewControllerModel(cfg game.Config, screenWidth int, screenHeight int) (ControllerModel, error) {
	state, err := game.NewGameState(cfg)
	if err != nil {
		return ControllerModel{}, err
	}

	return ControllerModel{
		CurrentScreen: IntroScreen,

		IntroModel: NewIntroModel(screenWidth, screenHeight),
		GameModel:  NewGameModel(state, screenWidth, screenHeight),

		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}, nil
}

func (m ControllerModel) Init() tea.Cmd {
	return m.IntroModel.Init()
}

func (m ControllerModel) View() string {
	switch m.CurrentScreen {
	case IntroScreen:
		return m.IntroModel.View()
	case GameScreen:
		return m.GameModel.View()
	default:
		return "Unknown Screen"
	}
}

func (m ControllerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	switch msg := msg.(type) {
	case IntroSubmitMsg:
		if msg == 1 {
			return m, tea.Quit
		}
		m.CurrentScreen = GameScreen
		return m, m.GameModel.Init()

	case tea.WindowSizeMsg:
		// both screens keep their layout in sync
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		var introCmd, gameCmd tea.Cmd
		m.IntroModel, introCmd = m.IntroModel.Update(msg)
		m.GameModel, gameCmd = m.GameModel.Update(msg)
		return m, tea.Batch(introCmd, gameCmd)
	}

	switch m.CurrentScreen {
	case IntroScreen:
		if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "q" {
			return m, tea.Quit
		}
		m.IntroModel, cmd = m.IntroModel.Update(msg)
	case GameScreen:
		m.GameModel, cmd = m.GameModel.Update(msg)
	}

	return m, cmd
}
