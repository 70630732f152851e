package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invader/internal/config"
	"github.com/vovakirdan/tui-invader/internal/core"
	"github.com/vovakirdan/tui-invader/internal/game"
	"github.com/vovakirdan/tui-invader/internal/panel"
)

// statusLines is the number of terminal rows reserved below the playfield.
const statusLines = 1

var (
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	enemyUpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	enemyDnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// Model is the Bubble Tea model for one invader session.
type Model struct {
	game     *game.Game
	deck     *panel.Deck
	runtime  core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	pending  core.Action
	state    core.GameState
	logger   *log.Logger
	quitting bool
}

// NewModel creates a model whose playfield fills the terminal above the
// status line.
func NewModel(cfg config.InvaderConfig, rc core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	deck := panel.NewDeck(playfieldLines(rc.ScreenH), rc.ScreenW)
	h := help.New()
	h.Width = rc.ScreenW

	return Model{
		game:    game.New(deck, cfg, game.WithLogger(logger)),
		deck:    deck,
		runtime: rc,
		keys:    DefaultKeyMap(),
		help:    h,
		state:   core.GameState{Capacity: cfg.Projectiles.Capacity},
		logger:  logger,
	}
}

func playfieldLines(height int) int {
	return max(height-statusLines, 0)
}

// Init starts the first round and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.runtime)
	m.logger.Info("round started", "lines", playfieldLines(m.runtime.ScreenH), "cols", m.runtime.ScreenW, "seed", m.runtime.Seed)
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the key for the next tick. Only the latest key between
// two ticks is kept.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.game.Close()
		m.logger.Info("quit")
		return m, tea.Quit
	case core.ActionNone:
		return m, nil
	}

	m.pending = action
	return m, nil
}

// handleResize resizes the deck in place and starts a new round. Surfaces
// are deck-local, so the deck itself must survive the resize.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.help.Width = msg.Width

	m.deck.Resize(playfieldLines(msg.Height), msg.Width)
	m.game.Reset(m.runtime)
	m.state = m.game.State()
	m.pending = core.ActionNone
	m.logger.Debug("resized", "width", msg.Width, "height", msg.Height)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.pending == core.ActionRestart && m.state.GameOver {
		m.runtime.Seed = now.UnixNano()
		m.game.Reset(m.runtime)
		m.state = m.game.State()
		m.pending = core.ActionNone
		m.logger.Info("round restarted", "seed", m.runtime.Seed)
		return m, tickCmd(m.runtime.TickRate)
	}

	result := m.game.Step(m.pending, now)
	if result.State.GameOver && !m.state.GameOver {
		m.logger.Info("game over")
	}
	m.state = result.State
	m.pending = core.ActionNone

	return m, tickCmd(m.runtime.TickRate)
}

// View renders the committed frame, any overlay, and the status line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	frame := m.deck.Frame().Clone()
	m.drawOverlay(frame)

	return RenderScreen(frame) + "\n" + m.statusLine()
}

func (m Model) drawOverlay(s *core.Screen) {
	switch {
	case m.state.TooSmall:
		drawMessage(s, "TERMINAL TOO SMALL", "resize or press q")
	case m.state.GameOver:
		drawMessage(s, "GAME OVER", "press R to restart")
	case m.state.Paused:
		drawMessage(s, "PAUSED", "press P to resume")
	case m.help.ShowAll:
		drawMessage(s, controlLines(m.keys)...)
	}
}

// controlLines lists every binding of the full help, one per line.
func controlLines(k KeyMap) []string {
	lines := []string{"CONTROLS"}
	for _, group := range k.FullHelp() {
		for _, b := range group {
			lines = append(lines, fmt.Sprintf("%-7s %-8s", b.Help().Key, b.Help().Desc))
		}
	}
	return lines
}

// drawMessage draws a bordered box with the given lines centered on s.
func drawMessage(s *core.Screen, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, lipgloss.Width(l))
	}
	box := core.NewRect((s.Width()-width-4)/2, (s.Height()-len(lines)-2)/2, width+4, len(lines)+2)

	s.DrawRect(box, ' ')
	s.DrawBox(box)
	for i, l := range lines {
		x := box.X + (box.W-lipgloss.Width(l))/2
		attr := core.AttrNone
		if i == 0 {
			attr = core.AttrBold
		}
		s.DrawStyledText(x, box.Y+1+i, l, core.ColorDefault, attr)
	}
}

func (m Model) statusLine() string {
	enemy := enemyDnStyle.Render("enemy down")
	if m.state.EnemyAlive {
		enemy = enemyUpStyle.Render("enemy up")
	}
	status := statusStyle.Render(fmt.Sprintf("shots %d/%d ", m.state.Projectiles, m.state.Capacity)) + enemy

	h := m.help
	h.ShowAll = false // the full help is drawn as an overlay
	h.Width = max(m.runtime.ScreenW-lipgloss.Width(status)-2, 0)
	return status + "  " + h.View(m.keys)
}

// Run starts the Bubble Tea program on the local terminal.
func Run(cfg config.InvaderConfig, rc core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(cfg, rc, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
