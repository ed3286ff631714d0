// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/typesprint/internal/generator"
	"github.com/verte-zerg/typesprint/internal/model"
	"github.com/verte-zerg/typesprint/internal/session"
)

// tickMsg drives the countdown. The epoch ties it to the session that
// scheduled it; ticks from a replaced session are dropped.
type tickMsg struct {
	epoch int
}

// Model implements the Bubble Tea typing UI.
type Model struct {
	config model.Config
	gen    *generator.Generator
	pool   []string
	now    func() time.Time

	keys keyMap
	help help.Model

	width  int
	height int

	epoch   int
	session session.Session

	last    model.Result
	hasLast bool
}

// NewModel constructs a typing TUI model with a fresh idle session.
func NewModel(cfg model.Config, gen *generator.Generator, pool []string) *Model {
	m := &Model{
		config: cfg,
		gen:    gen,
		pool:   pool,
		now:    time.Now,
		keys:   newKeyMap(),
		help:   help.New(),
	}
	m.restart()
	return m
}

// Session returns the current session value.
func (m *Model) Session() session.Session {
	return m.session
}

// LastResult returns the result of the most recently finished session.
func (m *Model) LastResult() (model.Result, bool) {
	return m.last, m.hasLast
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tickMsg:
		return m, m.handleTick(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Restart), key.Matches(msg, m.keys.Retest):
		m.restart()
		return m, nil
	}
	if m.session.State() == session.Finished {
		return m, nil
	}

	typed := []rune(m.session.Typed)
	switch {
	case key.Matches(msg, m.keys.Backspace):
		if len(typed) == 0 {
			return m, nil
		}
		return m, m.setTyped(typed[:len(typed)-1])
	case key.Matches(msg, m.keys.DeleteWord):
		if len(typed) == 0 {
			return m, nil
		}
		return m, m.setTyped(deleteWord(typed))
	}
	switch msg.Type {
	case tea.KeySpace:
		return m, m.setTyped(append(typed, ' '))
	case tea.KeyRunes:
		return m, m.setTyped(append(typed, msg.Runes...))
	default:
		return m, nil
	}
}

// setTyped feeds new input to the session and starts the tick chain on the
// Idle to Running transition.
func (m *Model) setTyped(typed []rune) tea.Cmd {
	before := m.session.State()
	m.session = m.session.Input(string(typed), m.now())
	switch after := m.session.State(); {
	case after == session.Finished:
		m.finish()
	case before == session.Idle && after == session.Running:
		return m.scheduleTick()
	}
	return nil
}

func (m *Model) handleTick(msg tickMsg) tea.Cmd {
	if msg.epoch != m.epoch || m.session.State() != session.Running {
		return nil
	}
	m.session = m.session.Tick(m.now())
	if m.session.State() == session.Finished {
		m.finish()
		return nil
	}
	return m.scheduleTick()
}

func (m *Model) scheduleTick() tea.Cmd {
	epoch := m.epoch
	return tea.Tick(m.config.TickInterval, func(time.Time) tea.Msg {
		return tickMsg{epoch: epoch}
	})
}

func (m *Model) finish() {
	m.last = m.session.Result()
	m.hasLast = true
	m.keys.Retest.SetEnabled(true)
}

// restart replaces the session wholesale. Bumping the epoch orphans any tick
// still in flight for the old session.
func (m *Model) restart() {
	m.epoch++
	m.session = session.New(m.gen.Generate(m.pool, m.config.Sentences), m.config.Duration)
	m.keys.Retest.SetEnabled(false)
}

// deleteWord removes trailing spaces and then the word before them.
func deleteWord(typed []rune) []rune {
	end := len(typed)
	for end > 0 && typed[end-1] == ' ' {
		end--
	}
	for end > 0 && typed[end-1] != ' ' {
		end--
	}
	return typed[:end]
}
