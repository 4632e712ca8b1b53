package ui

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/Mshel/sshnake/internal/game"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// FrameInterval is how often the view feeds elapsed time into the engine.
const FrameInterval = time.Second / 60

var (
	voidColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}

	mapViewStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("240"))

	statusPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("8")).
				Padding(1, 2)

	gameOverStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	pausedStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))

	headRunes = map[game.Direction]rune{
		game.Up:    '▲',
		game.Down:  '▼',
		game.Left:  '◀',
		game.Right: '▶',
	}
)

type FrameMsg time.Time

func nextFrame() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// GameViewModel hosts one GameState: key presses go to HandleInput, frames
// go to Advance, and View renders the board through a Canvas.
type GameViewModel struct {
	state  *game.GameState
	canvas *Canvas
	keys   KeyMap
	help   help.Model

	lastFrame    time.Time
	paused       bool
	TickCount    int
	ScreenWidth  int
	ScreenHeight int
}

func NewGameModel(state *game.GameState, screenWidth int, screenHeight int) GameViewModel {
	cfg := state.Config()
	return GameViewModel{
		state:        state,
		canvas:       NewCanvas(cfg.Width, cfg.Height, voidColor),
		keys:         DefaultKeyMap(),
		help:         help.New(),
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

func (m GameViewModel) Init() tea.Cmd {
	return nextFrame()
}

func (m GameViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		default:
			if !m.paused {
				m.state.HandleInput(m.keys.Translate(msg))
			}
		}
		return m, nil

	case FrameMsg:
		now := time.Time(msg)
		if !m.lastFrame.IsZero() && !m.paused {
			if err := m.state.Advance(now.Sub(m.lastFrame).Seconds()); err != nil {
				log.Warn("Advance failed", "error", err)
			}
			m.TickCount++
		}
		m.lastFrame = now
		return m, nextFrame()

	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

func (m GameViewModel) View() string {
	m.canvas.Clear()
	m.state.Render(m.canvas)

	board := mapViewStyle.Render(m.canvas.Render())
	content := lipgloss.JoinHorizontal(lipgloss.Top, board, statusPanelStyle.Render(m.renderStatusPanel()))
	content = lipgloss.JoinVertical(lipgloss.Left, content, m.help.View(m.keys))

	if m.ScreenWidth == 0 || m.ScreenHeight == 0 {
		return content
	}
	return lipgloss.Place(m.ScreenWidth, m.ScreenHeight, lipgloss.Center, lipgloss.Center, content)
}

func (m GameViewModel) renderStatusPanel() string {
	snap := m.state.Snapshot()
	var statusContent strings.Builder

	statusContent.WriteString(lipgloss.NewStyle().Bold(true).Render("--- Snake ---") + "\n")
	statusContent.WriteString(fmt.Sprintf("Length: %d\n", len(snap.Body)))
	statusContent.WriteString(fmt.Sprintf("Head: (%d, %d)\n", snap.Head.X, snap.Head.Y))
	statusContent.WriteString(fmt.Sprintf("Direction: %c\n", headRunes[snap.Direction]))
	if snap.Food != nil {
		statusContent.WriteString(fmt.Sprintf("Food: (%d, %d)\n", snap.Food.X, snap.Food.Y))
	} else {
		statusContent.WriteString("Food: -\n")
	}
	statusContent.WriteString(fmt.Sprintf("Ticks: %d\n", m.TickCount))

	switch {
	case snap.Phase == game.PhaseGameOver:
		statusContent.WriteString("\n" + gameOverStyle.Render("GAME OVER"))
	case m.paused:
		statusContent.WriteString("\n" + pausedStyle.Render("PAUSED"))
	}

	return statusContent.String()
}
