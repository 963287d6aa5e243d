package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/profdoc/profdoc/internal/profile"
	"github.com/profdoc/profdoc/utils"
)

func (m *Model) RenderHotspots() string {
	if len(m.report.Hotspots) == 0 {
		return utils.GoodStyle.Render("✅ No hotspots detected.")
	}

	header := utils.MutedStyle.Render(
		fmt.Sprintf("%d hotspots, source-table order  |  enter: expand issues", len(m.report.Hotspots)))

	var lines []string
	for i, h := range m.report.Hotspots {
		lines = append(lines, m.renderHotspotItem(i, h)...)
		lines = append(lines, "") // spacing between items
	}

	content := strings.Join(lines, "\n")
	content = m.scrollToSelection(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, "", content)
}

func (m *Model) renderHotspotItem(index int, h profile.HotspotFinding) []string {
	isSelected := index == m.selectedHotspot
	isExpanded := m.expandedIssues[index]

	selector := " "
	if isSelected {
		selector = "▶"
	}

	expandIcon := "[+]"
	if isExpanded {
		expandIcon = "[-]"
	}

	title := fmt.Sprintf("%s %s %s %s", selector,
		utils.GetPriorityIcon(h.Priority.String()),
		expandIcon,
		utils.TruncateString(h.Function, m.width-12))

	if isSelected {
		title = lipgloss.NewStyle().
			Background(utils.InfoColor).
			Foreground(lipgloss.Color("#FFFFFF")).
			Render(title)
	} else {
		title = utils.GetPriorityStyle(h.Priority.String()).Render(title)
	}

	lines := []string{
		title,
		utils.MutedStyle.Render(
			fmt.Sprintf("    direct %.1f%%  |  with callees %.1f%%", h.FlatPct, h.CumPct)),
	}

	if isExpanded {
		for _, issue := range h.Issues {
			lines = append(lines, utils.TextStyle.Render("    • "+issue.Text))
		}
	}

	return lines
}

// scrollToSelection keeps the selected hotspot visible. Each collapsed item
// renders as 3 lines; expanded items add one line per issue.
func (m *Model) scrollToSelection(content string) string {
	lines := strings.Split(content, "\n")
	availableHeight := m.height - 6
	if availableHeight <= 0 || len(lines) <= availableHeight {
		return content
	}

	selectedLine := 0
	for i := 0; i < m.selectedHotspot && i < len(m.report.Hotspots); i++ {
		selectedLine += 3
		if m.expandedIssues[i] {
			selectedLine += len(m.report.Hotspots[i].Issues)
		}
	}

	scrollY := 0
	if selectedLine >= availableHeight {
		scrollY = selectedLine - availableHeight/2
	}
	if scrollY+availableHeight > len(lines) {
		scrollY = len(lines) - availableHeight
	}
	if scrollY < 0 {
		scrollY = 0
	}

	return strings.Join(lines[scrollY:scrollY+availableHeight], "\n")
}
