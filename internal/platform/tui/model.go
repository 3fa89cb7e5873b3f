package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze-heist/internal/core"
	"github.com/vovakirdan/maze-heist/internal/games/heist"
	"github.com/vovakirdan/maze-heist/internal/games/heist/assets"
	"github.com/vovakirdan/maze-heist/internal/games/heist/sim"
	"github.com/vovakirdan/maze-heist/internal/storage"
)

// DefaultHoldWindow is how long a key press keeps a direction held when the
// caller does not configure one.
const DefaultHoldWindow = 150 * time.Millisecond

// Options configures a Model.
type Options struct {
	Game   *heist.Game
	Store  *storage.Store // nil disables run history
	Logger *log.Logger    // nil discards logs
	Config core.RuntimeConfig

	// HoldWindow is the held-key emulation window.
	HoldWindow time.Duration

	// Session tags saved runs; "local" when empty.
	Session string

	// BankUpdates delivers hot-reloaded question banks.
	BankUpdates <-chan assets.BankUpdate

	// ScreenshotDir overrides ~/.heist/screenshots.
	ScreenshotDir string
}

// bankMsg carries one reloaded question bank into the update loop.
type bankMsg assets.BankUpdate

// Model is the Bubble Tea model for a heist session.
type Model struct {
	game   *heist.Game
	screen *core.Screen
	store  *storage.Store
	logger *log.Logger
	config core.RuntimeConfig

	mapper  *KeyMapper
	help    help.Model
	input   *heldInput
	session string

	bankUpdates   <-chan assets.BankUpdate
	screenshotDir string

	lastTick time.Time
	inRun    bool // a level instance is live and not yet recorded
	quitting bool
}

// NewModel creates a new Bubble Tea model and resets the game from cfg.
func NewModel(opts Options) (Model, error) {
	if opts.Game == nil {
		return Model{}, errors.New("tui: nil game")
	}
	cfg := opts.Config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if err := opts.Game.Reset(cfg); err != nil {
		return Model{}, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	window := opts.HoldWindow
	if window <= 0 {
		window = DefaultHoldWindow
	}
	session := opts.Session
	if session == "" {
		session = "local"
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:          opts.Game,
		screen:        core.NewScreen(cfg.ScreenW, footerless(cfg.ScreenH)),
		store:         opts.Store,
		logger:        logger,
		config:        cfg,
		mapper:        NewKeyMapper(),
		help:          h,
		input:         newHeldInput(window),
		session:       session,
		bankUpdates:   opts.BankUpdates,
		screenshotDir: opts.ScreenshotDir,
	}, nil
}

// footerless reserves the last terminal row for the key help.
func footerless(h int) int {
	if h > 1 {
		return h - 1
	}
	return h
}

// Init starts the tick loop and the bank listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.config.TickRate), waitForBank(m.bankUpdates))
}

func waitForBank(ch <-chan assets.BankUpdate) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		u, ok := <-ch
		if !ok {
			return nil
		}
		return bankMsg(u)
	}
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

	case bankMsg:
		return m.handleBank(assets.BankUpdate(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.mapper.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action, sprint, isQuit := m.mapper.MapKey(msg)
	if isQuit {
		if m.inRun {
			m.recordRun(storage.OutcomeAbandoned)
		}
		m.quitting = true
		return m, tea.Quit
	}

	now := time.Now()
	m.input.Press(action, now)
	switch action {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		if sprint {
			m.input.Press(core.ActionSprint, now)
		} else {
			m.input.Drop(core.ActionSprint)
		}
	}
	return m, nil
}

// handleResize processes window resize events. The run keeps going; the
// renderer falls back to a notice when the terminal is too small.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, footerless(msg.Height))
	m.game.Resize(msg.Width, footerless(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by the measured frame time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	m.handleStep(m.game.Step(dt, m.input.Frame(now)))
	return m, tickCmd(m.config.TickRate)
}

// handleStep applies one step's events, then records the run if the tick
// ended it. The outcome follows the final mode, since a catch can override
// an escape reached earlier in the same tick.
func (m *Model) handleStep(res sim.StepResult) {
	if res.Err != nil {
		m.logger.Error("step failed", "error", res.Err)
	}
	for _, ev := range res.Events {
		m.handleEvent(ev)
	}

	switch res.Mode {
	case sim.ModeGameOver:
		m.recordRun(storage.OutcomeCaught)
	case sim.ModeVictory:
		m.recordRun(storage.OutcomeEscaped)
	}
}

// handleEvent logs simulation events and tracks whether a run is live.
func (m *Model) handleEvent(ev sim.Event) {
	switch e := ev.(type) {
	case sim.ModeChangedEvent:
		m.logger.Debug("mode changed", "from", e.From, "to", e.To)
		if e.To == sim.ModePlaying && !e.From.InRun() {
			m.inRun = true
		}
		if e.To == sim.ModeQuiz {
			m.input.Release()
		}
	case sim.CollectibleTakenEvent:
		m.logger.Debug("collectible taken", "cell", e.Cell, "remaining", e.Remaining)
	case sim.TriggerTakenEvent:
		m.logger.Debug("bonus question", "cell", e.Cell, "question", e.QuestionIndex)
	case sim.AnsweredEvent:
		m.logger.Info("question answered", "question", e.QuestionIndex, "choice", e.Choice, "correct", e.Correct)
	case sim.CaughtEvent:
		m.logger.Info("caught", "pursuer", e.Pursuer, "cell", e.Cell)
	case sim.EscapedEvent:
		m.logger.Info("escaped", "cell", e.Cell)
	case sim.BankSwappedEvent:
		m.logger.Info("question bank swapped", "questions", e.Size)
	}
}

// recordRun saves the current run once.
func (m *Model) recordRun(outcome string) {
	if !m.inRun {
		return
	}
	m.inRun = false

	stats := m.game.Snapshot().Stats
	m.logger.Info("run finished", "outcome", outcome, "duration", stats.Elapsed)
	if m.store == nil {
		return
	}

	_, err := m.store.SaveRun(storage.Run{
		Session:     m.session,
		Outcome:     outcome,
		Duration:    stats.Elapsed,
		Collected:   stats.Collected,
		QuizCorrect: stats.QuizCorrect,
		QuizWrong:   stats.QuizWrong,
		Seed:        m.game.Seed(),
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

// handleBank stages a reloaded bank. Broken edits are logged and the
// current bank stays in use.
func (m Model) handleBank(u assets.BankUpdate) (tea.Model, tea.Cmd) {
	next := waitForBank(m.bankUpdates)
	if u.Err != nil {
		m.logger.Warn("question bank reload failed", "path", u.Path, "error", u.Err)
		return m, next
	}
	if err := m.game.SetBank(u.Bank); err != nil {
		m.logger.Warn("question bank rejected", "path", u.Path, "error", err)
		return m, next
	}
	m.logger.Info("question bank staged for next level", "path", u.Path, "questions", len(u.Bank))
	return m, next
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot skipped", "error", err)
			return
		}
		dir = filepath.Join(home, ".heist", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	footer := m.help.ShortHelpView(m.mapper.Keys().ForMode(m.game.Mode()))
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(footer)
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
