package tui

import "github.com/charmbracelet/bubbles/key"

// Letters are not bindings: any rune in the round's alphabet is typed.
type keyMap struct {
	Submit   key.Binding
	Delete   key.Binding
	Quit     key.Binding
	NewRound key.Binding
	Leave    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Delete:   key.NewBinding(key.WithKeys("backspace", "delete"), key.WithHelp("⌫", "delete")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
		NewRound: key.NewBinding(key.WithKeys("n", "enter"), key.WithHelp("n", "new round")),
		Leave:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) playHelp() []key.Binding { return []key.Binding{k.Submit, k.Delete, k.Quit} }
func (k keyMap) endHelp() []key.Binding  { return []key.Binding{k.NewRound, k.Leave} }
