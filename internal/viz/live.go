package viz

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortsim/internal/config"
	"github.com/san-kum/sortsim/internal/logger"
	"github.com/san-kum/sortsim/internal/playback"
)

const (
	canvasRows    = 20
	speedBarWidth = 20
)

type TickMsg time.Time

// ConfigMsg carries a reloaded configuration into the running view.
type ConfigMsg struct{ Config *config.Config }

// ErrMsg surfaces a background error in the status line.
type ErrMsg struct{ Err error }

// Model is the bubbletea side of a playback.Player.
type Model struct {
	player *playback.Player
	keys   keyMap
	help   help.Model
	canvas *Canvas
	limit  int
	frame  time.Duration
	theme  Theme
	styles styles
	snap   playback.Snapshot
	status string
	err    error
	log    *logger.Logger
}

// NewModel builds the view. limit is the exclusive upper bound of the values
// and fps the redraw rate.
func NewModel(p *playback.Player, limit, fps int, theme string, log *logger.Logger) Model {
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	if log == nil {
		log = logger.Discard()
	}
	snap := p.Bridge().Snapshot()
	t := GetTheme(theme)
	h := help.New()
	h.ShowAll = false

	return Model{
		player: p,
		keys:   newKeyMap(p.Algorithms()),
		help:   h,
		canvas: NewCanvas(CellsFor(len(snap.Values)), canvasRows),
		limit:  limit,
		frame:  time.Second / time.Duration(fps),
		theme:  t,
		styles: newStyles(t),
		snap:   snap,
		log:    log.WithComponent("viz"),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update maps keys onto the player and refreshes the frame on every tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		m.snap = m.player.Bridge().Snapshot()
		return m, m.tick()
	case ConfigMsg:
		m.applyConfig(msg.Config)
	case ErrMsg:
		m.err = msg.Err
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	g := m.player.Gate()

	for i, b := range m.keys.Algorithms {
		if key.Matches(msg, b) {
			m.start(i)
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.player.Stop()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Pause):
		if g.Toggle() {
			m.status = "paused"
		} else {
			m.status = "resumed"
		}
	case key.Matches(msg, m.keys.Faster):
		g.AdjustSpeed(5)
	case key.Matches(msg, m.keys.Slower):
		g.AdjustSpeed(-5)
	case key.Matches(msg, m.keys.FineUp):
		g.AdjustSpeed(1)
	case key.Matches(msg, m.keys.FineDown):
		g.AdjustSpeed(-1)
	case key.Matches(msg, m.keys.NewSeed):
		m.player.Randomize()
		m.status = "new seed"
	case key.Matches(msg, m.keys.Theme):
		m.setTheme(NextTheme(m.theme))
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	m.snap = m.player.Bridge().Snapshot()
	return m, nil
}

func (m *Model) start(i int) {
	alg, ok := m.player.Registry().At(i)
	if !ok {
		return
	}
	if err := m.player.Start(alg.Name); err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.status = ""
	m.snap = m.player.Bridge().Snapshot()
}

func (m *Model) setTheme(t Theme) {
	m.theme = t
	m.styles = newStyles(t)
}

func (m *Model) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	m.player.Gate().SetSpeed(cfg.Speed)
	if cfg.Theme != "" && cfg.Theme != m.theme.Name {
		m.setTheme(GetTheme(cfg.Theme))
	}
	m.status = "config reloaded"
	m.log.Info("config applied", logger.F("speed", cfg.Speed), logger.F("theme", cfg.Theme))
}

func (m Model) barStyle(col int) lipgloss.Style {
	switch {
	case m.snap.Complete:
		return m.styles.done
	case cellHighlighted(col, m.snap.Highlight):
		return m.styles.highlight
	default:
		return m.styles.bar
	}
}

// View renders the bars, the status panel and the key help.
func (m Model) View() string {
	DrawBars(m.canvas, m.snap.Values, m.limit)
	bars := m.canvas.Render(m.barStyle)

	g := m.player.Gate()
	title := m.snap.Algorithm
	if title == "" {
		title = "press 1-6 to sort"
	}

	state := m.styles.label.Render("IDLE")
	switch {
	case m.snap.Complete:
		state = m.styles.running.Render("DONE")
	case g.Paused():
		state = m.styles.paused.Render("PAUSED")
	case m.player.Bridge().Running():
		state = m.styles.running.Render("RUNNING")
	}

	var s strings.Builder
	s.WriteString(m.styles.title.Render("SORT TYPE ") + m.styles.value.Render(title) + "  " + state + "\n")
	s.WriteString(m.styles.label.Render("Speed ") + m.styles.value.Render(fmt.Sprintf("%3d ", g.Speed())) +
		m.styles.bar.Render(SpeedBar(g.Speed(), speedBarWidth)) + "   ")
	s.WriteString(m.styles.label.Render("Time ") + m.styles.value.Render(fmt.Sprintf("%.2fs", m.player.Bridge().ElapsedSeconds())) + "   ")
	s.WriteString(m.styles.label.Render("Steps ") + m.styles.value.Render(fmt.Sprint(m.snap.Steps)))
	if m.status != "" {
		s.WriteString("   " + m.styles.label.Render(m.status))
	}
	if m.err != nil {
		s.WriteString("\n" + m.styles.err.Render(m.err.Error()))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.panel.Render(strings.TrimSuffix(bars, "\n")),
		s.String(),
		m.help.View(m.keys),
	)
}
