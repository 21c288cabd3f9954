package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle/apps/go-tui/internal/game"
)

func (m Model) View() string {
	var body string
	if m.revealed {
		body = m.endView()
	} else {
		body = m.playView()
	}
	if m.width > 0 {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body)
	}
	return body
}

func (m Model) playView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("WORDLE · round %d", m.rounds)))
	b.WriteString("\n")
	b.WriteString(m.gridView())
	b.WriteString("\n\n")
	b.WriteString(m.keyboardView())
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString(helpStyle.Render(helpLine(m.keys.playHelp())))
	return b.String()
}

func (m Model) gridView() string {
	e := m.engine
	guesses := e.Guesses()
	n := e.WordLength()
	rows := make([]string, 0, e.MaxAttempts())

	for i := 0; i < e.MaxAttempts(); i++ {
		switch {
		case i < len(guesses):
			rows = append(rows, renderRow(guesses[i].Word, guesses[i].Marks, n))
		case i == e.Attempt() && !e.Finished():
			row := renderRow(e.Input(), nil, n)
			rows = append(rows, shakeOffset(m.shake)+row)
		default:
			rows = append(rows, renderRow("", nil, n))
		}
	}
	return strings.Join(rows, "\n")
}

// shakeOffset nudges the active row left/right while a rejection animates.
func shakeOffset(frame int) string {
	if frame > 0 && frame%2 == 0 {
		return " "
	}
	return ""
}

func renderRow(word string, marks []game.Mark, n int) string {
	letters := []rune(strings.ToUpper(word))
	tiles := make([]string, n)
	for i := 0; i < n; i++ {
		ch := " "
		if i < len(letters) {
			ch = string(letters[i])
		}
		mark := game.MarkUnknown
		if i < len(marks) {
			mark = marks[i]
		}
		tiles[i] = tileStyle(mark).Render(ch)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

func (m Model) keyboardView() string {
	states := m.engine.KeyStates()
	var lines []string
	for _, row := range keyRows(m.engine.Alphabet()) {
		keys := make([]string, len(row))
		for i, r := range row {
			keys[i] = keyStyle(states[r]).Render(strings.ToUpper(string(r)))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, keys...))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

// keyRows splits the alphabet like a QWERTY board: 10, 9, then the rest.
func keyRows(alphabet string) [][]rune {
	letters := []rune(alphabet)
	var rows [][]rune
	for _, size := range []int{10, 9} {
		if len(letters) <= size {
			break
		}
		rows = append(rows, letters[:size])
		letters = letters[size:]
	}
	if len(letters) > 0 {
		rows = append(rows, letters)
	}
	return rows
}

func (m Model) endView() string {
	o, _ := m.engine.Outcome()
	headline := lostStyle.Render("You lost")
	if o.Won() {
		headline = wonStyle.Render("You won!")
	}
	content := lipgloss.JoinVertical(lipgloss.Center,
		headline,
		"",
		"The word was:",
		wordStyle.Render(strings.ToUpper(o.Target)),
	)
	out := panelStyle.Render(content)
	if m.status != "" {
		out += "\n" + statusStyle.Render(m.status)
	}
	return out + helpStyle.Render(helpLine(m.keys.endHelp()))
}

func helpLine(bindings []key.Binding) string {
	parts := make([]string, len(bindings))
	for i, b := range bindings {
		h := b.Help()
		parts[i] = h.Key + " " + h.Desc
	}
	return "\n" + strings.Join(parts, " • ")
}
