package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/profdoc/profdoc/internal/profile"
)

type Model struct {
	// Data
	report *profile.Report

	// UI State
	currentTab TabType
	width      int
	height     int

	scrollPositions map[TabType]int
	selectedHotspot int
	expandedIssues  map[int]bool

	// Key bindings
	keys KeyMap
	help help.Model
}

type TabType int

const (
	DashboardTab TabType = iota
	HotspotsTab
	RecommendationsTab
)

const lastTab = RecommendationsTab

var tabNames = map[TabType]string{
	DashboardTab:       "Dashboard",
	HotspotsTab:        "Hotspots",
	RecommendationsTab: "Recommendations",
}

type KeyMap struct {
	Tab1  key.Binding
	Tab2  key.Binding
	Tab3  key.Binding
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Enter, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab1, k.Tab2, k.Tab3},
		{k.Up, k.Down, k.Left, k.Right},
		{k.Enter, k.Help, k.Quit},
	}
}

func k(keys []string, help, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(help, desc),
	)
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab1:  k([]string{"1"}, "1", "dashboard"),
		Tab2:  k([]string{"2"}, "2", "hotspots"),
		Tab3:  k([]string{"3"}, "3", "recommendations"),
		Left:  k([]string{"left", "h"}, "←/h", "prev tab"),
		Right: k([]string{"right", "l"}, "→/l", "next tab"),
		Up:    k([]string{"up", "k"}, "↑/k", "up"),
		Down:  k([]string{"down", "j"}, "↓/j", "down"),
		Enter: k([]string{"enter"}, "enter", "expand"),
		Help:  k([]string{"?"}, "?", "help"),
		Quit:  k([]string{"q", "ctrl+c"}, "q", "quit"),
	}
}
