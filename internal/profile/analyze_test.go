package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// End-to-end pipeline: raw text -> records -> hotspots -> recommendations.
func TestAnalyze_SingleGCLine(t *testing.T) {
	raw := "      flat  flat%   sum%        cum   cum%\n" +
		"50ms 15.0% 15.0% 80ms 25.0% runtime.gcBgMarkWorker\n"

	report := Analyze(raw)

	require.Len(t, report.Stats, 1)
	assert.Equal(t, 15.0, report.Stats[0].FlatPct)
	assert.Equal(t, 25.0, report.Stats[0].CumPct)

	require.Len(t, report.Hotspots, 1)
	h := report.Hotspots[0]
	assert.Equal(t, PriorityHigh, h.Priority)
	require.Len(t, h.Issues, 3)
	assert.Equal(t, "direct CPU consumption (15.0%)", h.Issues[0].Text)
	assert.Equal(t, "hot call path (25.0%)", h.Issues[1].Text)
	assert.Equal(t, "garbage collection overhead", h.Issues[2].Text)

	require.Len(t, report.Recommendations, 1)
	rec := report.Recommendations[0]
	assert.Equal(t, CategoryMemoryManagement, rec.Category)
	assert.Equal(t, PriorityHigh, rec.Priority) // 15.0 > 10
	assert.Equal(t, 15.0, rec.TotalFlatPct)
}

func TestAnalyze_EmptyInput(t *testing.T) {
	report := Analyze("")

	assert.Empty(t, report.Stats)
	assert.Empty(t, report.Hotspots)
	assert.Empty(t, report.Recommendations)
	assert.Equal(t, 0, report.HighPriorityCount())
}

func TestAnalyze_HighPriorityCount(t *testing.T) {
	raw := "      flat  flat%   sum%        cum   cum%\n" +
		"500ms 20.0% 20.0% 500ms 20.0% main.hotLoop\n" +
		"100ms 4.0% 24.0% 100ms 4.0% syscall.Read\n"

	report := Analyze(raw)
	require.Len(t, report.Hotspots, 2)
	assert.Equal(t, 1, report.HighPriorityCount())
}
