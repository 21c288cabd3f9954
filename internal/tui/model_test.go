package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/go-tui/internal/game"
	"github.com/robalobadob/wordle/apps/go-tui/internal/words"
)

func newTestModel(t *testing.T, delay time.Duration) Model {
	t.Helper()
	dict, err := words.New([]string{"apple", "crane"}, []string{"apply", "house"})
	if err != nil {
		t.Fatalf("words.New: %v", err)
	}
	m, err := New(Options{
		Dict:        dict,
		Game:        game.Options{Target: "apple"},
		RevealDelay: delay,
		Logger:      zerolog.Nop(),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter     = tea.KeyMsg{Type: tea.KeyEnter}
	backspace = tea.KeyMsg{Type: tea.KeyBackspace}
	ctrlC     = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestNew_RejectsBadTarget(t *testing.T) {
	dict, err := words.New([]string{"apple"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := New(Options{Dict: dict, Game: game.Options{Target: "zzzzz"}, Logger: zerolog.Nop()}); err == nil {
		t.Fatal("unknown target accepted")
	}
}

func TestTyping(t *testing.T) {
	m := newTestModel(t, 0)

	m, _ = send(t, m, runes("CR4n"))
	if got := m.Engine().Input(); got != "crn" {
		t.Fatalf("input = %q, want %q", got, "crn")
	}
	m, _ = send(t, m, backspace)
	if got := m.Engine().Input(); got != "cr" {
		t.Fatalf("input after backspace = %q", got)
	}
	if !strings.Contains(m.View(), "C") {
		t.Fatal("typed letters not rendered")
	}
}

func TestSubmit_TooShort(t *testing.T) {
	m := newTestModel(t, 0)
	m, _ = send(t, m, runes("app"))
	m, cmd := send(t, m, enter)

	if m.status != "Not enough letters" {
		t.Fatalf("status = %q", m.status)
	}
	if m.shake != shakeFrames || cmd == nil {
		t.Fatalf("shake=%d cmd=%v, want a running shake", m.shake, cmd)
	}
	if m.Engine().Input() != "app" {
		t.Fatalf("input = %q, want it kept", m.Engine().Input())
	}

	// typing clears the message
	m, _ = send(t, m, runes("l"))
	if m.status != "" {
		t.Fatalf("status not cleared: %q", m.status)
	}
}

func TestSubmit_NotAWord(t *testing.T) {
	m := newTestModel(t, 0)
	m, _ = send(t, m, runes("applz"))
	m, _ = send(t, m, enter)
	if want := "Not in word list (did you mean APPLE?)"; m.status != want {
		t.Fatalf("status = %q, want %q", m.status, want)
	}

	m = newTestModel(t, 0)
	m, _ = send(t, m, runes("zzzzz"))
	m, _ = send(t, m, enter)
	if m.status != "Not in word list" {
		t.Fatalf("status = %q", m.status)
	}
}

func TestShake_RunsOut(t *testing.T) {
	m := newTestModel(t, 0)
	m, _ = send(t, m, runes("ab"))
	m, _ = send(t, m, enter)

	tick := shakeMsg{round: m.Engine().ID()}
	var cmd tea.Cmd
	for i := 0; i < shakeFrames; i++ {
		m, cmd = send(t, m, tick)
	}
	if m.shake != 0 || cmd != nil {
		t.Fatalf("shake=%d cmd=%v after %d ticks", m.shake, cmd, shakeFrames)
	}

	// stale ticks from another round are dropped
	m.shake = 3
	m, _ = send(t, m, shakeMsg{round: "other"})
	if m.shake != 3 {
		t.Fatalf("stale tick changed shake to %d", m.shake)
	}
}

func TestWin_RevealThenNewRound(t *testing.T) {
	m := newTestModel(t, 0)
	m, _ = send(t, m, runes("crane"))
	m, cmd := send(t, m, enter)
	if cmd != nil || m.revealed {
		t.Fatal("round ended after a wrong guess")
	}

	m, _ = send(t, m, runes("apple"))
	m, cmd = send(t, m, enter)
	if !m.Engine().Finished() {
		t.Fatal("round not finished after the winning guess")
	}
	if cmd == nil {
		t.Fatal("no reveal scheduled")
	}
	m, _ = send(t, m, cmd())
	if !m.revealed {
		t.Fatal("end screen not shown")
	}
	view := m.View()
	if !strings.Contains(view, "You won!") || !strings.Contains(view, "APPLE") {
		t.Fatalf("end screen = %q", view)
	}

	prev := m.Engine()
	m, _ = send(t, m, runes("n"))
	if m.Engine() == prev || m.revealed || m.rounds != 2 {
		t.Fatalf("new round not started: revealed=%v rounds=%d", m.revealed, m.rounds)
	}
	if len(m.Engine().Guesses()) != 0 || m.Engine().Finished() {
		t.Fatal("new round carries old state")
	}
}

func TestLoss_EndScreen(t *testing.T) {
	m := newTestModel(t, 0)
	var cmd tea.Cmd
	for i := 0; i < 5; i++ {
		m, _ = send(t, m, runes("crane"))
		m, cmd = send(t, m, enter)
	}
	if cmd == nil {
		t.Fatal("no reveal scheduled after the last guess")
	}
	m, _ = send(t, m, cmd())
	view := m.View()
	if !strings.Contains(view, "You lost") || !strings.Contains(view, "APPLE") {
		t.Fatalf("end screen = %q", view)
	}

	_, cmd = send(t, m, runes("q"))
	if cmd == nil {
		t.Fatal("q did not quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q did not quit")
	}
}

func TestDelayedReveal_IgnoresKeys(t *testing.T) {
	m := newTestModel(t, time.Hour)
	m, _ = send(t, m, runes("apple"))
	m, cmd := send(t, m, enter)
	if cmd == nil || m.revealed {
		t.Fatalf("cmd=%v revealed=%v, want a pending reveal", cmd, m.revealed)
	}

	m, _ = send(t, m, runes("crane"))
	m, _ = send(t, m, runes("n"))
	if m.revealed || m.rounds != 1 || m.Engine().Input() != "" {
		t.Fatal("keys handled while the reveal was pending")
	}

	// a reveal for a different round is ignored
	m, _ = send(t, m, revealMsg{round: "other"})
	if m.revealed {
		t.Fatal("stale reveal accepted")
	}
	m, _ = send(t, m, revealMsg{round: m.Engine().ID()})
	if !m.revealed {
		t.Fatal("reveal not applied")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, 0)
	_, cmd := send(t, m, ctrlC)
	if cmd == nil {
		t.Fatal("ctrl+c returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("ctrl+c did not quit")
	}
}

func TestKeyRows(t *testing.T) {
	rows := keyRows(words.DefaultAlphabet)
	if len(rows) != 3 || len(rows[0]) != 10 || len(rows[1]) != 9 || len(rows[2]) != 7 {
		t.Fatalf("rows = %q", rows)
	}
	if string(rows[0]) != "qwertyuiop" {
		t.Fatalf("first row = %q", string(rows[0]))
	}
	if rows := keyRows("abc"); len(rows) != 1 || string(rows[0]) != "abc" {
		t.Fatalf("short alphabet rows = %q", rows)
	}
}
