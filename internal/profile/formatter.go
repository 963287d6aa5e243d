package profile

import (
	"fmt"
	"strings"

	"github.com/profdoc/profdoc/utils"
)

// PrintReport writes the styled terminal rendition of the analysis.
func PrintReport(report *Report) {
	printHeader(report)
	printHotspots(report.Hotspots)
	printRecommendations(report.Recommendations)
}

func printHeader(report *Report) {
	fmt.Printf("🔍 CPU Profile Analysis: %s\n", report.ProfileName)
	fmt.Printf("Functions: %d  |  Hotspots: %d  |  High priority: %d\n",
		len(report.Stats), len(report.Hotspots), report.HighPriorityCount())
	fmt.Println(strings.Repeat("═", 65))
}

func printHotspots(hotspots []HotspotFinding) {
	fmt.Println("\n🔥 TOP PERFORMANCE HOTSPOTS")
	fmt.Println(strings.Repeat("─", 35))

	if len(hotspots) == 0 {
		fmt.Println(utils.GoodStyle.Render("✅ No significant hotspots detected."))
		fmt.Println("   Performance appears optimal.")
		return
	}

	shown := hotspots
	if len(shown) > maxRenderedHotspots {
		shown = shown[:maxRenderedHotspots]
	}

	for i, h := range shown {
		style := utils.GetPriorityStyle(h.Priority.String())
		fmt.Printf("\n%d. %s %s  %s\n", i+1,
			utils.GetPriorityIcon(h.Priority.String()),
			style.Render(h.Priority.String()),
			utils.TruncateString(h.Function, 60))
		fmt.Printf("   Direct CPU: %.1f%%  |  With callees: %.1f%%\n", h.FlatPct, h.CumPct)
		for _, issue := range h.Issues {
			fmt.Printf("   • %s\n", issue.Text)
		}
	}

	if len(hotspots) > maxRenderedHotspots {
		fmt.Printf("\n%s\n", utils.MutedStyle.Render(
			fmt.Sprintf("… and %d more hotspots (see the markdown report)", len(hotspots)-maxRenderedHotspots)))
	}
}

func printRecommendations(recs []RecommendationEntry) {
	fmt.Println("\n💡 OPTIMIZATION RECOMMENDATIONS")
	fmt.Println(strings.Repeat("─", 35))

	if len(recs) == 0 {
		fmt.Println(utils.GoodStyle.Render("✅ No specific recommendations."))
		fmt.Println("   Profile looks healthy. Continue monitoring for changes.")
		return
	}

	for _, rec := range recs {
		style := utils.GetPriorityStyle(rec.Priority.String())
		fmt.Printf("\n%s %s (%s)\n",
			utils.GetPriorityIcon(rec.Priority.String()),
			rec.Category,
			style.Render(rec.Priority.String()))
		fmt.Printf("   Issue: %s\n", rec.IssueSummary)
		fmt.Println("   Suggested actions:")
		for _, s := range rec.Suggestions {
			fmt.Printf("   • %s\n", s)
		}
	}
}
