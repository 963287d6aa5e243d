package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func finding(fn string, flatPct float64, categories ...IssueCategory) HotspotFinding {
	f := HotspotFinding{Function: fn, FlatPct: flatPct, CumPct: flatPct, Priority: PriorityLow}
	for _, c := range categories {
		f.Issues = append(f.Issues, Issue{Category: c, Text: c.String()})
	}
	return f
}

func TestSynthesize_Empty(t *testing.T) {
	assert.Empty(t, Synthesize(nil))
}

func TestSynthesize_MemoryManagementThresholds(t *testing.T) {
	recs := Synthesize([]HotspotFinding{finding("runtime.gcBgMarkWorker", 15.0, CategoryMemoryManagement)})
	require.Len(t, recs, 1)
	assert.Equal(t, CategoryMemoryManagement, recs[0].Category)
	assert.Equal(t, PriorityHigh, recs[0].Priority)
	assert.Equal(t, "GC overhead: 15.0% CPU", recs[0].IssueSummary)
	assert.Len(t, recs[0].Suggestions, 4)

	recs = Synthesize([]HotspotFinding{finding("runtime.sweepone", 4.0, CategoryMemoryManagement)})
	require.Len(t, recs, 1)
	assert.Equal(t, PriorityMedium, recs[0].Priority)
}

func TestSynthesize_AggregatesFlatPctPerCategory(t *testing.T) {
	recs := Synthesize([]HotspotFinding{
		finding("runtime.gcBgMarkWorker", 6.0, CategoryMemoryManagement),
		finding("runtime.sweepone", 5.0, CategoryMemoryManagement),
	})
	require.Len(t, recs, 1)
	assert.Equal(t, 11.0, recs[0].TotalFlatPct)
	assert.Equal(t, PriorityHigh, recs[0].Priority) // 11.0 > 10
}

func TestSynthesize_ConcurrencyThresholds(t *testing.T) {
	recs := Synthesize([]HotspotFinding{finding("sync.(*Mutex).Lock", 6.0, CategoryConcurrency)})
	require.Len(t, recs, 1)
	assert.Equal(t, PriorityHigh, recs[0].Priority)

	recs = Synthesize([]HotspotFinding{finding("sync.(*Mutex).Lock", 4.0, CategoryConcurrency)})
	require.Len(t, recs, 1)
	assert.Equal(t, PriorityMedium, recs[0].Priority)
}

func TestSynthesize_SerializationThresholds(t *testing.T) {
	recs := Synthesize([]HotspotFinding{finding("encoding/json.Marshal", 6.0, CategorySerialization)})
	require.Len(t, recs, 1)
	assert.Equal(t, PriorityMedium, recs[0].Priority)

	recs = Synthesize([]HotspotFinding{finding("encoding/json.Marshal", 2.0, CategorySerialization)})
	require.Len(t, recs, 1)
	assert.Equal(t, PriorityLow, recs[0].Priority)
}

func TestSynthesize_CodeGenerationAlwaysMedium(t *testing.T) {
	recs := Synthesize([]HotspotFinding{finding("reflect.Value.Call", 40.0, CategoryCodeGeneration)})
	require.Len(t, recs, 1)
	assert.Equal(t, PriorityMedium, recs[0].Priority)
}

func TestSynthesize_RegexpAndSyscallProduceNoEntry(t *testing.T) {
	recs := Synthesize([]HotspotFinding{
		finding("regexp.MatchString", 8.0, CategoryRegexp),
		finding("syscall.Syscall", 8.0, CategorySyscall),
	})
	assert.Empty(t, recs)
}

func TestSynthesize_FixedCategoryOrder(t *testing.T) {
	recs := Synthesize([]HotspotFinding{
		finding("reflect.Value.Call", 1.0, CategoryCodeGeneration),
		finding("db.Query", 1.0, CategoryDataAccess),
		finding("json.Marshal", 1.0, CategorySerialization),
		finding("mutex.Lock", 1.0, CategoryConcurrency),
		finding("runtime.gc", 1.0, CategoryMemoryManagement),
	})
	require.Len(t, recs, 5)

	got := make([]IssueCategory, len(recs))
	for i, rec := range recs {
		got[i] = rec.Category
	}
	assert.Equal(t, []IssueCategory{
		CategoryMemoryManagement,
		CategoryConcurrency,
		CategorySerialization,
		CategoryDataAccess,
		CategoryCodeGeneration,
	}, got)
}

func TestSynthesize_CountsFindingOncePerCategory(t *testing.T) {
	// A finding tagged with two categories contributes to both aggregates.
	f := finding("encoding/json.execQuery", 7.0, CategorySerialization, CategoryDataAccess)
	recs := Synthesize([]HotspotFinding{f})
	require.Len(t, recs, 2)
	assert.Equal(t, 7.0, recs[0].TotalFlatPct)
	assert.Equal(t, 7.0, recs[1].TotalFlatPct)
}
