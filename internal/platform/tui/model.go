package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/frytris/internal/config"
	"github.com/vovakirdan/frytris/internal/core"
	"github.com/vovakirdan/frytris/internal/engine"
	"github.com/vovakirdan/frytris/internal/storage"
)

// maxFrameStep caps how much time one tick may feed the scheduler, so a
// suspended terminal does not fast-forward the game on wake.
const maxFrameStep = 250 * time.Millisecond

// bannerTTL is how long a feedback banner stays on screen.
const bannerTTL = 2 * time.Second

// bellHold keeps a rung bell in the view long enough for one render. The
// renderer skips unchanged lines, so the bell sounds once.
const bellHold = 100 * time.Millisecond

// Options configure a game Model.
type Options struct {
	Config     config.Config
	Difficulty string // empty selects the configured default
	Store      *storage.Store
	Runtime    core.RuntimeConfig
	Logger     *log.Logger
	Feedback   Feedback
	Player     string // shown in logs only
}

// Model is the Bubble Tea model hosting one frytris session.
type Model struct {
	session    *engine.Session
	scheduler  *engine.Scheduler
	cfg        config.Config
	difficulty string
	store      *storage.Store
	logger     *log.Logger
	feedback   Feedback
	player     string

	runtime core.RuntimeConfig
	screen  *core.Screen
	keys    KeyMap
	help    help.Model
	width   int
	height  int

	highScore  int
	runID      string
	scoreSaved bool
	lastTick   time.Time
	banner     string
	bannerLeft time.Duration
	bellLeft   time.Duration
	muted      bool
	quitting   bool
}

// NewModel builds the session described by opts and wraps it for Bubble Tea.
func NewModel(opts Options) (Model, error) {
	rt := opts.Runtime
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	difficulty := opts.Difficulty
	if difficulty == "" {
		difficulty = opts.Config.DefaultDifficulty
	}
	sessOpts, err := opts.Config.SessionOptions(difficulty, rand.New(rand.NewSource(rt.Seed)))
	if err != nil {
		return Model{}, err
	}
	session, err := engine.NewSession(sessOpts)
	if err != nil {
		return Model{}, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	fb := opts.Feedback
	if fb == nil {
		fb = Silent{}
	}

	m := Model{
		session:    session,
		scheduler:  engine.NewScheduler(session),
		cfg:        opts.Config,
		difficulty: sessOpts.Difficulty.Name,
		store:      opts.Store,
		logger:     logger,
		feedback:   fb,
		player:     opts.Player,
		runtime:    rt,
		screen:     core.NewScreen(gameScreenW, gameScreenH),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		width:      rt.ScreenW,
		height:     rt.ScreenH,
	}
	m.highScore = m.loadHighScore()
	return m, nil
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case bellMsg:
		if !m.muted {
			m.bellLeft = bellHold
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Mute):
		m.muted = !m.muted
		return m, nil
	case key.Matches(msg, m.keys.Restart):
		m.session.Reset()
		m.start()
		return m, m.drainEvents()
	}

	switch m.session.State() {
	case engine.StateIdle, engine.StateGameOver:
		switch {
		case key.Matches(msg, m.keys.Start):
			m.start()
		case key.Matches(msg, m.keys.Left):
			m.pickDifficulty(-1)
		case key.Matches(msg, m.keys.Right):
			m.pickDifficulty(1)
		}
		return m, nil
	}

	if cmd, ok := m.keys.Command(msg); ok {
		m.session.OnInput(cmd)
		return m, m.drainEvents()
	}
	return m, nil
}

// handleTick advances the game clock by the wall time since the last frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := time.Second / time.Duration(m.runtime.TickRate)
	if !m.lastTick.IsZero() {
		dt = min(now.Sub(m.lastTick), maxFrameStep)
	}
	m.lastTick = now

	var cues tea.Cmd
	if dt > 0 {
		m.scheduler.Advance(dt)
		cues = m.drainEvents()
		if m.bannerLeft > 0 {
			m.bannerLeft -= dt
			if m.bannerLeft <= 0 {
				m.banner = ""
			}
		}
		m.bellLeft = max(m.bellLeft-dt, 0)
	}

	return m, tea.Batch(cues, tickCmd(m.runtime.TickRate))
}

// start begins a new game at the picked difficulty.
func (m *Model) start() {
	if !m.session.Start() {
		return
	}
	m.runID = uuid.NewString()
	m.scoreSaved = false
	m.banner = ""
	m.logger.Info("game started",
		"run", m.runID,
		"difficulty", m.difficulty,
		"rules", m.session.Rule().Name(),
		"player", m.player,
	)
}

// pickDifficulty moves the difficulty picker. Only valid between games.
func (m *Model) pickDifficulty(step int) {
	name := m.cfg.NextDifficulty(m.difficulty, step)
	d, err := m.cfg.Difficulty(name)
	if err != nil {
		m.logger.Warn("difficulty lookup failed", "difficulty", name, "error", err)
		return
	}
	if !m.session.SetDifficulty(d) {
		return
	}
	m.difficulty = d.Name
	m.highScore = m.loadHighScore()
}

// drainEvents reacts to everything the session reported since the last call
// and returns the feedback commands it produced.
func (m *Model) drainEvents() tea.Cmd {
	var cmds []tea.Cmd
	for _, e := range m.session.Events() {
		m.logger.Debug("event",
			"type", e.Type,
			"lines", e.Lines,
			"combos", e.Combos,
			"points", e.Points,
			"level", e.Level,
		)
		if !m.muted {
			cmds = append(cmds, m.feedback.Play(cueFor(e)))
		}

		switch e.Type {
		case engine.EventCleared:
			text := fmt.Sprintf("+%d  %d line", e.Points, e.Lines)
			if e.Lines != 1 {
				text += "s"
			}
			if e.Combos > 0 {
				text += "  COMBO!"
			}
			m.showBanner(text)
		case engine.EventLevelUp:
			m.showBanner(fmt.Sprintf("Level %d!", e.Level))
		case engine.EventGameOver:
			m.showBanner("Game over")
			m.saveScore(e.Score)
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) showBanner(text string) {
	m.banner = text
	m.bannerLeft = bannerTTL
}

// saveScore records the finished game once.
func (m *Model) saveScore(score int) {
	stats := m.session.Stats()
	m.logger.Info("game over",
		"run", m.runID,
		"score", score,
		"level", m.session.Level(),
		"lines", stats.Lines,
		"player", m.player,
	)
	m.highScore = max(m.highScore, score)

	if m.scoreSaved || score <= 0 || m.store == nil {
		return
	}
	m.scoreSaved = true
	_, err := m.store.SaveScore(storage.ScoreEntry{
		RunID:      m.runID,
		Difficulty: m.difficulty,
		Rules:      m.session.Rule().Name(),
		Score:      score,
		Level:      m.session.Level(),
		Lines:      stats.Lines,
		Pieces:     stats.Pieces,
		Combos:     stats.Combos,
	})
	if err != nil {
		m.logger.Warn("could not save score", "run", m.runID, "error", err)
	}
}

func (m Model) loadHighScore() int {
	if m.store == nil {
		return 0
	}
	high, err := m.store.HighScore(m.difficulty)
	if err != nil {
		m.logger.Warn("could not load high score", "difficulty", m.difficulty, "error", err)
		return 0
	}
	return high
}

func (m Model) frame() frame {
	return frame{
		snap:   m.session.Snapshot(m.highScore),
		banner: m.banner,
		muted:  m.muted,
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	drawGame(m.screen, m.frame())

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot: no home directory", "error", err)
		return
	}
	dir := filepath.Join(home, ".frytris", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot: cannot create directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("frytris_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot: cannot write", "path", path, "error", err)
		return
	}
	m.showBanner("screenshot saved")
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawGame(m.screen, m.frame())
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	content := lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		helpStyle.Render(m.help.View(m.keys)),
	)

	if m.width > 0 && m.height > 0 {
		content = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	if m.bellLeft > 0 {
		content += "\a"
	}
	return content
}

// Run starts the Bubble Tea program hosting a local game.
func Run(opts Options) error {
	if opts.Feedback == nil {
		opts.Feedback = Bell{}
	}
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
