package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/profdoc/profdoc/utils"
)

func (m *Model) RenderRecommendations() string {
	recs := m.report.Recommendations
	if len(recs) == 0 {
		return utils.GoodStyle.Render("✅ No specific recommendations.\n\nProfile looks healthy.")
	}

	var sections []string
	for _, rec := range recs {
		style := utils.GetPriorityStyle(rec.Priority.String())

		header := fmt.Sprintf("%s %s  %s",
			utils.GetPriorityIcon(rec.Priority.String()),
			style.Render(rec.Category.String()),
			utils.MutedStyle.Render(rec.Priority.String()))

		lines := []string{header, utils.TextStyle.Render("  " + rec.IssueSummary)}
		for _, s := range rec.Suggestions {
			for i, wrapped := range utils.WrapText(s, m.width-6) {
				prefix := "  • "
				if i > 0 {
					prefix = "    "
				}
				lines = append(lines, utils.MutedStyle.Render(prefix+wrapped))
			}
		}

		sections = append(sections, strings.Join(lines, "\n"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, strings.Join(sections, "\n\n"))
}
