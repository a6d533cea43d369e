package viz

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/san-kum/sortsim/internal/sorting"
)

type keyMap struct {
	Algorithms []key.Binding
	Pause      key.Binding
	Faster     key.Binding
	Slower     key.Binding
	FineUp     key.Binding
	FineDown   key.Binding
	NewSeed    key.Binding
	Theme      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func newKeyMap(algs []sorting.Algorithm) keyMap {
	k := keyMap{
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "pause/resume"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "speed +5"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "speed -5"),
		),
		FineUp: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "speed +1"),
		),
		FineDown: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "speed -1"),
		),
		NewSeed: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new seed"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
	for i, a := range algs {
		if i >= 9 {
			break
		}
		n := fmt.Sprint(i + 1)
		k.Algorithms = append(k.Algorithms, key.NewBinding(
			key.WithKeys(n),
			key.WithHelp(n, a.Name),
		))
	}
	return k
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Faster, k.Slower, k.NewSeed, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.Algorithms,
		{k.Pause, k.Faster, k.Slower, k.FineUp, k.FineDown},
		{k.NewSeed, k.Theme, k.Help, k.Quit},
	}
}
