package profile

import "fmt"

// Aggregate thresholds, in summed percent of total CPU per category.
const (
	GCTotalHigh   = 10.0
	LockTotalHigh = 5.0
	JSONTotalMed  = 5.0
	SQLTotalHigh  = 10.0
)

// categorySpec drives the synthesizer: which tag to collect, how to derive
// the aggregate priority, and the fixed advisory text for the category.
// Specs run in table order, which fixes the order of the output entries.
type categorySpec struct {
	category    IssueCategory
	priorityFor func(totalFlatPct float64) Priority
	summaryFor  func(totalFlatPct float64) string
	suggestions []string
}

var categorySpecs = []categorySpec{
	{
		category: CategoryMemoryManagement,
		priorityFor: func(total float64) Priority {
			if total > GCTotalHigh {
				return PriorityHigh
			}
			return PriorityMedium
		},
		summaryFor: func(total float64) string {
			return fmt.Sprintf("GC overhead: %.1f%% CPU", total)
		},
		suggestions: []string{
			"Reduce allocations using object pooling (sync.Pool)",
			"Pre-allocate slices and maps with known capacity",
			"Use value types instead of pointers where possible",
			"Consider increasing GOGC value if memory permits",
		},
	},
	{
		category: CategoryConcurrency,
		priorityFor: func(total float64) Priority {
			if total > LockTotalHigh {
				return PriorityHigh
			}
			return PriorityMedium
		},
		summaryFor: func(total float64) string {
			return fmt.Sprintf("Lock contention: %.1f%% CPU", total)
		},
		suggestions: []string{
			"Reduce lock granularity (use more fine-grained locks)",
			"Replace mutexes with channels where appropriate",
			"Use sync.RWMutex for read-heavy workloads",
			"Consider lock-free data structures",
			"Capture a blocking profile to locate contention points",
		},
	},
	{
		category: CategorySerialization,
		priorityFor: func(total float64) Priority {
			if total > JSONTotalMed {
				return PriorityMedium
			}
			return PriorityLow
		},
		summaryFor: func(total float64) string {
			return fmt.Sprintf("Serialization overhead: %.1f%% CPU", total)
		},
		suggestions: []string{
			"Use json.RawMessage for delayed parsing",
			"Consider faster alternatives (easyjson, jsoniter)",
			"Batch JSON operations",
			"Use streaming for large payloads",
		},
	},
	{
		category: CategoryDataAccess,
		priorityFor: func(total float64) Priority {
			if total > SQLTotalHigh {
				return PriorityHigh
			}
			return PriorityMedium
		},
		summaryFor: func(total float64) string {
			return fmt.Sprintf("Data-access overhead: %.1f%% CPU", total)
		},
		suggestions: []string{
			"Add indexes for slow queries",
			"Use prepared statements",
			"Implement a caching layer (Redis)",
			"Batch database operations",
			"Review connection pool sizing",
		},
	},
	{
		category: CategoryCodeGeneration,
		priorityFor: func(total float64) Priority {
			return PriorityMedium
		},
		summaryFor: func(total float64) string {
			return fmt.Sprintf("Reflection overhead: %.1f%% CPU", total)
		},
		suggestions: []string{
			"Replace reflection with code generation",
			"Cache reflection results",
			"Use concrete types instead of interface{}",
			"Consider compile-time alternatives",
		},
	},
}

// Synthesize groups hotspot findings by issue category and emits one
// recommendation per non-empty category, in fixed category order.
// Regexp- and syscall-tagged issues stay advisory on the finding itself
// and never produce an entry.
func Synthesize(hotspots []HotspotFinding) []RecommendationEntry {
	var entries []RecommendationEntry

	for _, spec := range categorySpecs {
		total, count := 0.0, 0
		for i := range hotspots {
			if hotspots[i].HasCategory(spec.category) {
				total += hotspots[i].FlatPct
				count++
			}
		}
		if count == 0 {
			continue
		}

		entries = append(entries, RecommendationEntry{
			Category:     spec.category,
			Priority:     spec.priorityFor(total),
			IssueSummary: spec.summaryFor(total),
			TotalFlatPct: total,
			Suggestions:  spec.suggestions,
		})
	}

	return entries
}
