// internal/tui/model.go
//
// Bubble Tea front end for the round engine.
// Responsibilities:
//   - Translate key presses into AppendLetter / RemoveLastLetter / SubmitGuess.
//   - Listen to engine notifications: shake the row on an invalid word,
//     schedule the end screen after the reveal delay once the round is over.
//   - Start fresh rounds on request.
//
// The engine decides everything about the round; this package only renders
// and times.

package tui

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/go-tui/internal/game"
	"github.com/robalobadob/wordle/apps/go-tui/internal/words"
)

const (
	shakeFrames   = 6
	shakeInterval = 50 * time.Millisecond
)

// Options configures the program.
type Options struct {
	Dict *words.Dictionary
	// Game applies to the first round. Later rounds keep MaxAttempts and
	// Alphabet but draw a random target.
	Game        game.Options
	RevealDelay time.Duration
	Logger      zerolog.Logger
}

type shakeMsg struct{ round string }
type revealMsg struct{ round string }

// board collects engine notifications between Update calls.
type board struct {
	invalid      bool
	invalidInput string
	ended        *game.Outcome
}

func (b *board) InvalidSubmission(input string) {
	b.invalid, b.invalidInput = true, input
}

// GuessEvaluated is a no-op: rows are re-read from Engine.Guesses on render.
func (b *board) GuessEvaluated(int, string, []game.Mark) {}

func (b *board) RoundEnded(o game.Outcome) { b.ended = &o }

// Model is the tea.Model for one game session.
type Model struct {
	opts   Options
	keys   keyMap
	engine *game.Engine
	board  *board
	subs   []game.Subscription

	status   string
	shake    int
	revealed bool
	rounds   int
	width    int
}

// New starts the first round. Setup errors come straight from game.New.
func New(opts Options) (Model, error) {
	m := Model{opts: opts, keys: newKeyMap()}
	if err := m.startRound(opts.Game); err != nil {
		return Model{}, err
	}
	return m, nil
}

func (m *Model) startRound(o game.Options) error {
	e, err := game.New(m.opts.Dict, o)
	if err != nil {
		return err
	}
	if m.engine != nil {
		for _, s := range m.subs {
			m.engine.Unsubscribe(s)
		}
	}
	m.engine = e
	m.board = &board{}
	m.subs = []game.Subscription{
		e.Subscribe(m.board),
		e.Subscribe(game.NewLogListener(e, m.opts.Logger)),
	}
	m.status, m.shake, m.revealed = "", 0, false
	m.rounds++
	m.opts.Logger.Info().Str("round", e.ID()).Int("attempts", e.MaxAttempts()).Msg("round started")
	return nil
}

// Engine exposes the active round.
func (m Model) Engine() *game.Engine { return m.engine }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case shakeMsg:
		if msg.round != m.engine.ID() || m.shake == 0 {
			return m, nil
		}
		m.shake--
		if m.shake == 0 {
			return m, nil
		}
		return m, m.shakeTick()

	case revealMsg:
		if msg.round == m.engine.ID() {
			m.revealed = true
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.revealed {
		switch {
		case key.Matches(msg, m.keys.Leave):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NewRound):
			next := game.Options{MaxAttempts: m.opts.Game.MaxAttempts, Alphabet: m.opts.Game.Alphabet}
			if err := m.startRound(next); err != nil {
				m.status = err.Error()
			}
		}
		return m, nil
	}

	// Outcome known, end screen pending.
	if m.engine.Finished() {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.Delete):
		m.engine.RemoveLastLetter()
		m.status = ""
	case msg.Type == tea.KeyRunes:
		for _, r := range msg.Runes {
			r = unicode.ToLower(r)
			if strings.ContainsRune(m.engine.Alphabet(), r) {
				m.engine.AppendLetter(r)
			}
		}
		m.status = ""
	}
	return m, nil
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	m.engine.SubmitGuess()

	if m.board.invalid {
		input := m.board.invalidInput
		m.board.invalid = false
		m.status = m.rejectReason(input)
		m.shake = shakeFrames
		return m, m.shakeTick()
	}
	m.status = ""

	if m.board.ended != nil {
		round := m.engine.ID()
		if m.opts.RevealDelay <= 0 {
			return m, func() tea.Msg { return revealMsg{round: round} }
		}
		return m, tea.Tick(m.opts.RevealDelay, func(time.Time) tea.Msg { return revealMsg{round: round} })
	}
	return m, nil
}

func (m Model) rejectReason(input string) string {
	if len([]rune(input)) < m.engine.WordLength() {
		return "Not enough letters"
	}
	if s := m.opts.Dict.Suggest(input); s != "" {
		return fmt.Sprintf("Not in word list (did you mean %s?)", strings.ToUpper(s))
	}
	return "Not in word list"
}

func (m Model) shakeTick() tea.Cmd {
	round := m.engine.ID()
	return tea.Tick(shakeInterval, func(time.Time) tea.Msg { return shakeMsg{round: round} })
}
