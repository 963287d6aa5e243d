package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const maxRenderedHotspots = 10

func priorityMarker(p Priority) string {
	switch p {
	case PriorityHigh:
		return "🔴"
	case PriorityMedium:
		return "🟡"
	default:
		return "🟢"
	}
}

// RenderMarkdown formats the report as a markdown document. Rendering is
// pure: the same report value always produces byte-identical output.
func RenderMarkdown(report *Report) string {
	var b strings.Builder

	b.WriteString("# Profile Analysis Report\n\n")
	b.WriteString(fmt.Sprintf("**Profile:** `%s`\n", report.ProfileName))
	b.WriteString(fmt.Sprintf("**Generated:** %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05")))
	if report.ProfilePath != "" {
		b.WriteString(fmt.Sprintf("**Profile Path:** `%s`\n", report.ProfilePath))
	}
	b.WriteString("\n---\n\n")

	renderSummary(&b, report)
	renderHotspots(&b, report.Hotspots)
	renderRecommendations(&b, report.Recommendations)
	renderNextSteps(&b)

	b.WriteString("---\n\n")
	b.WriteString("*Generated by profdoc*\n")

	return b.String()
}

func renderSummary(b *strings.Builder, report *Report) {
	b.WriteString("## 🎯 Executive Summary\n\n")

	if len(report.Hotspots) == 0 {
		b.WriteString("No significant hotspots detected. Performance appears optimal.\n\n")
		return
	}

	top := report.Hotspots[0]
	b.WriteString(fmt.Sprintf("**Top Hotspot:** `%s`\n", top.Function))
	b.WriteString(fmt.Sprintf("- **CPU Usage:** %.1f%% (direct)\n", top.FlatPct))
	b.WriteString(fmt.Sprintf("- **Priority:** %s\n\n", top.Priority))
	b.WriteString(fmt.Sprintf("**Critical Issues:** %d high-priority hotspots found\n\n", report.HighPriorityCount()))
}

func renderHotspots(b *strings.Builder, hotspots []HotspotFinding) {
	b.WriteString("## 🔥 Top Performance Hotspots\n\n")

	if len(hotspots) == 0 {
		b.WriteString("No hotspots detected.\n\n")
		return
	}

	shown := hotspots
	if len(shown) > maxRenderedHotspots {
		shown = shown[:maxRenderedHotspots]
	}

	for i, h := range shown {
		b.WriteString(fmt.Sprintf("### %d. %s %s Priority\n\n", i+1, priorityMarker(h.Priority), h.Priority))
		b.WriteString(fmt.Sprintf("**Function:** `%s`\n\n", h.Function))
		b.WriteString("**Metrics:**\n")
		b.WriteString(fmt.Sprintf("- Direct CPU: %.1f%%\n", h.FlatPct))
		b.WriteString(fmt.Sprintf("- Total CPU (with callees): %.1f%%\n\n", h.CumPct))

		b.WriteString("**Issues Identified:**\n")
		for _, issue := range h.Issues {
			b.WriteString(fmt.Sprintf("- %s\n", issue.Text))
		}
		b.WriteString("\n")
	}
}

func renderRecommendations(b *strings.Builder, recs []RecommendationEntry) {
	b.WriteString("## 💡 Optimization Recommendations\n\n")

	if len(recs) == 0 {
		b.WriteString("No specific recommendations. Profile looks healthy!\n\n")
		return
	}

	for i, rec := range recs {
		b.WriteString(fmt.Sprintf("### %d. %s %s\n\n", i+1, priorityMarker(rec.Priority), rec.Category))
		b.WriteString(fmt.Sprintf("**Priority:** %s\n", rec.Priority))
		b.WriteString(fmt.Sprintf("**Issue:** %s\n\n", rec.IssueSummary))
		b.WriteString("**Suggested Actions:**\n")
		for _, s := range rec.Suggestions {
			b.WriteString(fmt.Sprintf("- %s\n", s))
		}
		b.WriteString("\n")
	}
}

func renderNextSteps(b *strings.Builder) {
	b.WriteString("## 🚀 Next Steps\n\n")
	b.WriteString("1. **Inspect the hottest functions:**\n")
	b.WriteString("   ```bash\n")
	b.WriteString("   go tool pprof <profile>\n")
	b.WriteString("   # Commands: top, list <function>, web\n")
	b.WriteString("   ```\n\n")
	b.WriteString("2. **Generate additional profiles:**\n")
	b.WriteString("   ```bash\n")
	b.WriteString("   go test -memprofile mem.pb.gz   # Memory allocation profile\n")
	b.WriteString("   go test -blockprofile block.pb.gz # Blocking operations\n")
	b.WriteString("   go test -mutexprofile mutex.pb.gz # Lock contention\n")
	b.WriteString("   ```\n\n")
	b.WriteString("3. **Re-profile after each change** to confirm the hotspot moved.\n\n")
}

// WriteMarkdown renders the report and writes it next to the profile as
// <name>_analysis.md, or to outputPath when one is given. It returns the
// absolute path of the written file.
func WriteMarkdown(report *Report, outputPath string) (string, error) {
	if outputPath == "" {
		dir := filepath.Dir(report.ProfilePath)
		outputPath = filepath.Join(dir, report.ProfileName+"_analysis.md")
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return "", fmt.Errorf("resolving report path: %w", err)
	}

	if err := os.WriteFile(absPath, []byte(RenderMarkdown(report)), 0644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	return absPath, nil
}
