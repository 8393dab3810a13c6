package tui

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-stickman/internal/config"
	"github.com/vovakirdan/tui-stickman/internal/core"
	"github.com/vovakirdan/tui-stickman/internal/scene"
	"github.com/vovakirdan/tui-stickman/internal/storage"
)

// Options are the optional collaborators of a Model.
type Options struct {
	Store   *storage.Store // Nil disables run history
	Watcher *ConfigWatcher // Nil disables hot reload
	Source  string         // Recorded with each run
	Runtime core.RuntimeConfig
}

// Model is the Bubble Tea model that drives one scene.
type Model struct {
	cfg        config.Config
	scene      *scene.Scene
	screen     *core.Screen
	opts       Options
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	status     string
	started    time.Time
	runSaved   bool
	quitting   bool
}

// NewModel creates a model for a scene built from cfg and assets.
func NewModel(cfg config.Config, assets scene.Assets, opts Options) Model {
	if opts.Source == "" {
		opts.Source = "local"
	}
	opts.Runtime.TickRate = cfg.Stickman.FPS

	sc := scene.New(cfg, assets)
	return Model{
		cfg:        cfg,
		scene:      sc,
		screen:     core.NewScreen(sc.Width(), sc.Height()),
		opts:       opts,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		started:    time.Now(),
	}
}

// Init starts the frame timer and, if enabled, the config watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.opts.Runtime.TickRate), m.opts.Watcher.Wait())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()

	case ConfigChangedMsg:
		return m.handleConfigChanged(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.saveRun()
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.scene.Step(m.inputFrame)
	m.inputFrame.Clear()
	return m, tickCmd(m.opts.Runtime.TickRate)
}

// handleConfigChanged rebuilds the scene from a freshly parsed config file.
// A file that fails to load leaves the running scene untouched.
func (m Model) handleConfigChanged(msg ConfigChangedMsg) (tea.Model, tea.Cmd) {
	next := m.opts.Watcher.Wait()

	cfg, err := config.Load(msg.Path)
	if err != nil {
		m.status = fmt.Sprintf("reload failed: %v", err)
		return m, next
	}

	var warnings bytes.Buffer
	assets := scene.LoadAssets(cfg, log.New(&warnings))

	// The finished scene counts as its own run.
	m.saveRun()
	m.cfg = cfg
	m.scene = scene.New(cfg, assets)
	m.screen = core.NewScreen(m.scene.Width(), m.scene.Height())
	m.opts.Runtime.TickRate = cfg.Stickman.FPS
	m.started = time.Now()
	m.runSaved = false

	m.status = "config reloaded"
	if n := strings.Count(warnings.String(), "\n"); n > 0 {
		m.status = fmt.Sprintf("config reloaded with %d warning(s)", n)
	}
	return m, next
}

// saveRun records the current run once, if it went anywhere.
func (m *Model) saveRun() {
	if m.runSaved || m.opts.Store == nil {
		return
	}
	m.runSaved = true

	distance := m.scene.State().Distance
	if distance <= 0 {
		return
	}
	//nolint:errcheck // Best-effort save, the session ends regardless
	m.opts.Store.SaveRun(storage.RunEntry{
		Distance: distance,
		Duration: time.Since(m.started),
		Size:     m.cfg.Player.DefaultSize,
		Source:   m.opts.Source,
	})
}

// Scene returns the scene being driven.
func (m Model) Scene() *scene.Scene {
	return m.scene
}

// Status returns the current status line message.
func (m Model) Status() string {
	return m.status
}

// View renders the scene with the help line beneath it.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.scene.Render(m.screen)

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer += "  " + statusStyle.Render(m.status)
	}
	content := lipgloss.JoinVertical(lipgloss.Left, RenderScreen(m.screen), footer)

	w, h := m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH
	if w > lipgloss.Width(content) && h > lipgloss.Height(content) {
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// Run starts a full-screen Bubble Tea program for the scene.
func Run(cfg config.Config, assets scene.Assets, opts Options) error {
	p := tea.NewProgram(
		NewModel(cfg, assets, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
