package profile

import "time"

// Priority levels for hotspot findings and recommendations.
// Ordinal: comparisons and escalation rely on LOW < MEDIUM < HIGH.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "HIGH"
	case PriorityMedium:
		return "MEDIUM"
	default:
		return "LOW"
	}
}

// Escalate raises p to at least floor. It never lowers a priority.
func (p *Priority) Escalate(floor Priority) {
	if *p < floor {
		*p = floor
	}
}

// IssueCategory tags every issue at creation time so the synthesizer can
// aggregate by tag instead of re-matching issue text.
type IssueCategory int

const (
	CategoryDirectCPU IssueCategory = iota
	CategoryCallPath
	CategoryMemoryManagement
	CategoryConcurrency
	CategorySerialization
	CategoryDataAccess
	CategoryCodeGeneration
	CategoryRegexp
	CategorySyscall
)

func (c IssueCategory) String() string {
	switch c {
	case CategoryDirectCPU:
		return "Direct CPU"
	case CategoryCallPath:
		return "Call Path"
	case CategoryMemoryManagement:
		return "Memory Management"
	case CategoryConcurrency:
		return "Concurrency"
	case CategorySerialization:
		return "Serialization"
	case CategoryDataAccess:
		return "Data Access"
	case CategoryCodeGeneration:
		return "Code Generation"
	case CategoryRegexp:
		return "Regular Expressions"
	case CategorySyscall:
		return "System Calls"
	default:
		return "Unknown"
	}
}

// FunctionStat is one row of the pprof top table.
type FunctionStat struct {
	FlatTime string  // self-time display string, kept verbatim ("50ms", "1.2s")
	FlatPct  float64 // self-time as % of total
	CumTime  string  // cumulative-time display string, kept for fidelity
	CumPct   float64 // cumulative % of total
	Name     string  // function identifier, opaque text, may contain spaces
}

// Issue is one classified problem on a single function.
type Issue struct {
	Category IssueCategory
	Text     string
}

// HotspotFinding is a function flagged by at least one classification rule.
type HotspotFinding struct {
	Function string
	FlatPct  float64
	CumPct   float64
	Priority Priority
	Issues   []Issue // insertion order = rule evaluation order, never empty
}

// HasCategory reports whether any issue on the finding carries the tag.
func (h *HotspotFinding) HasCategory(c IssueCategory) bool {
	for _, issue := range h.Issues {
		if issue.Category == c {
			return true
		}
	}
	return false
}

// RecommendationEntry is an aggregated, per-category remediation advice.
type RecommendationEntry struct {
	Category     IssueCategory
	Priority     Priority
	IssueSummary string
	TotalFlatPct float64
	Suggestions  []string
}

// Report holds the full result of one analysis run. All slices preserve
// source-table order; nothing is re-sorted.
type Report struct {
	ProfileName string
	ProfilePath string
	GeneratedAt time.Time

	Stats           []FunctionStat
	Hotspots        []HotspotFinding
	Recommendations []RecommendationEntry
}

// HighPriorityCount returns the number of HIGH-priority hotspots.
func (r *Report) HighPriorityCount() int {
	count := 0
	for _, h := range r.Hotspots {
		if h.Priority == PriorityHigh {
			count++
		}
	}
	return count
}

// Analyze runs the full pipeline on the raw text output of `pprof -top`.
// Malformed input never fails: unparseable lines are dropped and an empty
// table yields an empty (healthy) report.
func Analyze(raw string) *Report {
	stats := ParseTopTable(raw)
	hotspots := ClassifyHotspots(stats)

	return &Report{
		GeneratedAt:     time.Now(),
		Stats:           stats,
		Hotspots:        hotspots,
		Recommendations: Synthesize(hotspots),
	}
}
