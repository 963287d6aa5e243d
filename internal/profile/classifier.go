package profile

import (
	"fmt"
	"strings"
)

// Classification thresholds, in percent of total CPU.
const (
	FlatPctHigh   = 10.0 // direct consumption that dominates the profile
	FlatPctMedium = 5.0
	CumPctHot     = 20.0 // call tree worth investigating

	GCEscalationPct      = 5.0
	LockEscalationPct    = 3.0
	JSONEscalationPct    = 5.0
	SQLEscalationPct     = 5.0
	ReflectEscalationPct = 3.0
)

// keywordRule flags a function by case-insensitive substring match against
// its name. Rules run in table order; escalation is max-only, so a later
// rule can raise the priority but never lower it.
type keywordRule struct {
	keywords   []string
	category   IssueCategory
	text       string
	threshold  float64  // flatPct above which the rule escalates; < 0 disables
	escalateTo Priority // floor applied when the threshold is exceeded
}

var keywordRules = []keywordRule{
	{
		keywords:   []string{"gc", "garbage", "sweep"},
		category:   CategoryMemoryManagement,
		text:       "garbage collection overhead",
		threshold:  GCEscalationPct,
		escalateTo: PriorityHigh,
	},
	{
		keywords:   []string{"lock", "mutex", "sync"},
		category:   CategoryConcurrency,
		text:       "synchronization/locking",
		threshold:  LockEscalationPct,
		escalateTo: PriorityHigh,
	},
	{
		keywords:   []string{"json", "marshal", "unmarshal"},
		category:   CategorySerialization,
		text:       "serialization overhead",
		threshold:  JSONEscalationPct,
		escalateTo: PriorityMedium,
	},
	{
		keywords:   []string{"sql", "query", "exec"},
		category:   CategoryDataAccess,
		text:       "data-access overhead",
		threshold:  SQLEscalationPct,
		escalateTo: PriorityHigh,
	},
	{
		keywords:   []string{"reflect"},
		category:   CategoryCodeGeneration,
		text:       "reflection usage",
		threshold:  ReflectEscalationPct,
		escalateTo: PriorityMedium,
	},
	{
		keywords: []string{"regex", "regexp"},
		category: CategoryRegexp,
		text:     "regular-expression overhead",
		threshold: -1,
	},
	{
		keywords: []string{"syscall"},
		category: CategorySyscall,
		text:     "system-call overhead",
		threshold: -1,
	},
}

// ClassifyHotspots applies the rule set to every record, in input order.
// Records that trigger no rule produce no finding.
func ClassifyHotspots(stats []FunctionStat) []HotspotFinding {
	var hotspots []HotspotFinding

	for _, stat := range stats {
		if finding, ok := classify(stat); ok {
			hotspots = append(hotspots, finding)
		}
	}

	return hotspots
}

func classify(stat FunctionStat) (HotspotFinding, bool) {
	priority := PriorityLow
	var issues []Issue

	// High flat percentage = direct CPU consumption
	if stat.FlatPct > FlatPctHigh {
		priority.Escalate(PriorityHigh)
		issues = append(issues, Issue{
			Category: CategoryDirectCPU,
			Text:     fmt.Sprintf("direct CPU consumption (%.1f%%)", stat.FlatPct),
		})
	} else if stat.FlatPct > FlatPctMedium {
		priority.Escalate(PriorityMedium)
		issues = append(issues, Issue{
			Category: CategoryDirectCPU,
			Text:     fmt.Sprintf("direct CPU consumption (%.1f%%)", stat.FlatPct),
		})
	}

	// High cumulative percentage = hot call path
	if stat.CumPct > CumPctHot {
		priority.Escalate(PriorityMedium)
		issues = append(issues, Issue{
			Category: CategoryCallPath,
			Text:     fmt.Sprintf("hot call path (%.1f%%)", stat.CumPct),
		})
	}

	name := strings.ToLower(stat.Name)
	for _, rule := range keywordRules {
		if !containsAny(name, rule.keywords) {
			continue
		}

		issues = append(issues, Issue{Category: rule.category, Text: rule.text})

		if rule.threshold >= 0 && stat.FlatPct > rule.threshold {
			priority.Escalate(rule.escalateTo)
		}
	}

	if len(issues) == 0 {
		return HotspotFinding{}, false
	}

	return HotspotFinding{
		Function: stat.Name,
		FlatPct:  stat.FlatPct,
		CumPct:   stat.CumPct,
		Priority: priority,
		Issues:   issues,
	}, true
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
