package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/profdoc/profdoc/internal/profile"
	"github.com/profdoc/profdoc/utils"
)

func initialModel(report *profile.Report) *Model {
	return &Model{
		report:          report,
		currentTab:      DashboardTab,
		keys:            DefaultKeyMap(),
		help:            help.New(),
		scrollPositions: make(map[TabType]int),
		expandedIssues:  make(map[int]bool),
	}
}

// Start runs the interactive findings browser until the user quits.
func Start(report *profile.Report) error {
	p := tea.NewProgram(initialModel(report), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Tab1):
			m.currentTab = DashboardTab
		case key.Matches(msg, m.keys.Tab2):
			m.currentTab = HotspotsTab
		case key.Matches(msg, m.keys.Tab3):
			m.currentTab = RecommendationsTab

		case key.Matches(msg, m.keys.Left):
			m.currentTab = utils.GetPrevEnum(m.currentTab, lastTab)
		case key.Matches(msg, m.keys.Right):
			m.currentTab = utils.GetNextEnum(m.currentTab, lastTab)

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		default:
			return m.handleTabSpecificKeys(msg)
		}
	}

	return m, nil
}

func (m *Model) handleTabSpecificKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.currentTab {
	case HotspotsTab:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.selectedHotspot > 0 {
				m.selectedHotspot--
			}
		case key.Matches(msg, m.keys.Down):
			if m.selectedHotspot < len(m.report.Hotspots)-1 {
				m.selectedHotspot++
			}
		case key.Matches(msg, m.keys.Enter):
			m.expandedIssues[m.selectedHotspot] = !m.expandedIssues[m.selectedHotspot]
		}
	case RecommendationsTab:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.scrollBy(-1)
		case key.Matches(msg, m.keys.Down):
			m.scrollBy(1)
		}
	}
	return m, nil
}

func (m *Model) scrollBy(lines int) {
	pos := m.scrollPositions[m.currentTab] + lines
	if pos < 0 {
		pos = 0
	}
	m.scrollPositions[m.currentTab] = pos
}

func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	header := m.renderTabBar()

	var content string
	switch m.currentTab {
	case DashboardTab:
		content = m.RenderDashboard()
	case HotspotsTab:
		content = m.RenderHotspots()
	case RecommendationsTab:
		content = m.RenderRecommendations()
	}

	helpBar := utils.HelpBarStyle.Width(m.width).Render(m.help.View(m.keys))

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(helpBar) - 1
	content = fitToHeight(content, contentHeight, m.scrollPositions[m.currentTab])

	return lipgloss.JoinVertical(lipgloss.Left, header, content, helpBar)
}

func (m *Model) renderTabBar() string {
	var tabs []string
	for tab := DashboardTab; tab <= lastTab; tab++ {
		style := utils.TabInactiveStyle
		if tab == m.currentTab {
			style = utils.TabActiveStyle
		}
		tabs = append(tabs, style.Render(fmt.Sprintf("%d %s", int(tab)+1, tabNames[tab])))
	}

	title := utils.TitleStyle.Render("profdoc — " + m.report.ProfileName)
	return lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(tabs, " "))
}

// fitToHeight clamps content to the visible window, honoring scroll offset.
func fitToHeight(content string, height, scroll int) string {
	if height <= 0 {
		return ""
	}

	lines := strings.Split(content, "\n")
	if scroll > len(lines)-height {
		scroll = len(lines) - height
	}
	if scroll < 0 {
		scroll = 0
	}

	end := scroll + height
	if end > len(lines) {
		end = len(lines)
	}

	return strings.Join(lines[scroll:end], "\n")
}
