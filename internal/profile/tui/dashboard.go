package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/profdoc/profdoc/internal/profile"
	"github.com/profdoc/profdoc/utils"
)

const (
	chartHeight  = 12
	chartMaxBars = 8
)

func (m *Model) RenderDashboard() string {
	if len(m.report.Hotspots) == 0 {
		return utils.GoodStyle.Render("✅ No significant hotspots detected.\n\nPerformance appears optimal.")
	}

	leftWidth := m.width/2 - 2
	rightWidth := m.width - leftWidth - 6

	left := m.renderSummaryPanel(leftWidth)
	right := m.renderHotspotChart(rightWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)
}

func (m *Model) renderSummaryPanel(width int) string {
	title := utils.TitleStyle.Render("Analysis Summary")

	top := m.report.Hotspots[0]
	rows := []string{
		fmt.Sprintf("%-16s %d", "Functions", len(m.report.Stats)),
		fmt.Sprintf("%-16s %d", "Hotspots", len(m.report.Hotspots)),
		fmt.Sprintf("%-16s %s", "High priority",
			utils.HighStyle.Render(fmt.Sprintf("%d", m.report.HighPriorityCount()))),
		"",
		utils.MutedStyle.Render("Top hotspot:"),
		utils.TextStyle.Render(utils.TruncateString(top.Function, width-4)),
		fmt.Sprintf("%.1f%% direct CPU  %s %s", top.FlatPct,
			utils.GetPriorityIcon(top.Priority.String()),
			utils.GetPriorityStyle(top.Priority.String()).Render(top.Priority.String())),
	}

	if len(m.report.Recommendations) > 0 {
		rows = append(rows, "", utils.MutedStyle.Render("Recommended focus areas:"))
		for _, rec := range m.report.Recommendations {
			rows = append(rows, fmt.Sprintf("%s %s",
				utils.GetPriorityIcon(rec.Priority.String()), rec.Category))
		}
	}

	content := strings.Join(rows, "\n")
	return lipgloss.JoinVertical(lipgloss.Left, title, "", utils.BoxStyle.Width(width).Render(content))
}

func (m *Model) renderHotspotChart(width int) string {
	title := utils.TitleStyle.Render("Direct CPU % by hotspot")

	bars := buildBars(m.report.Hotspots)
	bc := barchart.New(width, chartHeight)
	bc.PushAll(bars)
	bc.Draw()

	legend := utils.MutedStyle.Render("Labels are hotspot ranks in table order")
	return lipgloss.JoinVertical(lipgloss.Left, title, "", bc.View(), legend)
}

func buildBars(hotspots []profile.HotspotFinding) []barchart.BarData {
	count := len(hotspots)
	if count > chartMaxBars {
		count = chartMaxBars
	}

	bars := make([]barchart.BarData, 0, count)
	for i := 0; i < count; i++ {
		h := hotspots[i]
		bars = append(bars, barchart.BarData{
			Label: fmt.Sprintf("#%d", i+1),
			Values: []barchart.BarValue{{
				Name:  h.Function,
				Value: h.FlatPct,
				Style: barStyle(h.Priority),
			}},
		})
	}
	return bars
}

func barStyle(p profile.Priority) lipgloss.Style {
	switch p {
	case profile.PriorityHigh:
		return lipgloss.NewStyle().Foreground(utils.HighColor)
	case profile.PriorityMedium:
		return lipgloss.NewStyle().Foreground(utils.MediumColor)
	default:
		return lipgloss.NewStyle().Foreground(utils.LowColor)
	}
}
