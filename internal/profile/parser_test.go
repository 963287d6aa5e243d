package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTopOutput = `File: trading-api
Type: cpu
Duration: 30s, Total samples = 2.5s ( 8.33%)
Showing nodes accounting for 2.3s, 92% of 2.5s total
      flat  flat%   sum%        cum   cum%
     500ms 20.00% 20.00%      800ms 32.00%  runtime.gcBgMarkWorker
     300ms 12.00% 32.00%      300ms 12.00%  encoding/json.Marshal
      50ms  2.00% 34.00%      600ms 24.00%  main.processOrders
`

func TestParseTopTable(t *testing.T) {
	stats := ParseTopTable(sampleTopOutput)
	require.Len(t, stats, 3)

	assert.Equal(t, "500ms", stats[0].FlatTime)
	assert.Equal(t, 20.0, stats[0].FlatPct)
	assert.Equal(t, "800ms", stats[0].CumTime)
	assert.Equal(t, 32.0, stats[0].CumPct)
	assert.Equal(t, "runtime.gcBgMarkWorker", stats[0].Name)

	// Output order equals input order
	assert.Equal(t, "encoding/json.Marshal", stats[1].Name)
	assert.Equal(t, "main.processOrders", stats[2].Name)
}

func TestParseTopTable_EmptyInput(t *testing.T) {
	assert.Empty(t, ParseTopTable(""))
}

func TestParseTopTable_MissingHeader(t *testing.T) {
	raw := "500ms 20.00% 20.00% 800ms 32.00% runtime.gcBgMarkWorker\n"
	assert.Empty(t, ParseTopTable(raw))
}

func TestParseTopTable_RowsBeforeHeaderIgnored(t *testing.T) {
	raw := `100ms 4.00% 4.00% 100ms 4.00% early.row
      flat  flat%   sum%        cum   cum%
     200ms  8.00%  8.00%      200ms  8.00%  real.row
`
	stats := ParseTopTable(raw)
	require.Len(t, stats, 1)
	assert.Equal(t, "real.row", stats[0].Name)
}

func TestParseTopTable_ShortLineDiscarded(t *testing.T) {
	raw := `      flat  flat%   sum%        cum   cum%
     500ms 20.00% 20.00%      800ms 32.00%  runtime.gcBgMarkWorker
     stray footer line here
     300ms 12.00% 32.00%      300ms 12.00%  encoding/json.Marshal
`
	stats := ParseTopTable(raw)
	require.Len(t, stats, 2)
	assert.Equal(t, "runtime.gcBgMarkWorker", stats[0].Name)
	assert.Equal(t, "encoding/json.Marshal", stats[1].Name)
}

func TestParseTopTable_BadPercentDiscardsLine(t *testing.T) {
	raw := `      flat  flat%   sum%        cum   cum%
     500ms   bad% 20.00%      800ms 32.00%  broken.flat
     500ms 20.00% 20.00%      800ms   bad%  broken.cum
     300ms 12.00% 32.00%      300ms 12.00%  good.row
`
	stats := ParseTopTable(raw)
	require.Len(t, stats, 1)
	assert.Equal(t, "good.row", stats[0].Name)
}

func TestParseTopTable_BlankLinesSkipped(t *testing.T) {
	raw := "      flat  flat%   sum%        cum   cum%\n\n   \n     300ms 12.00% 32.00%      300ms 12.00%  one.row\n\n"
	stats := ParseTopTable(raw)
	assert.Len(t, stats, 1)
}

func TestParseTopTable_NameKeepsInternalSpaces(t *testing.T) {
	raw := `      flat  flat%   sum%        cum   cum%
     300ms 12.00% 32.00%      300ms 12.00%  type..eq.main.order (inline)
`
	stats := ParseTopTable(raw)
	require.Len(t, stats, 1)
	assert.Equal(t, "type..eq.main.order (inline)", stats[0].Name)
}

func TestParseTopTable_FlatAboveCumAccepted(t *testing.T) {
	// Upstream tool output is not guaranteed clean; flat > cum is kept.
	raw := `      flat  flat%   sum%        cum   cum%
     300ms 12.00% 12.00%      100ms  4.00%  odd.row
`
	stats := ParseTopTable(raw)
	require.Len(t, stats, 1)
	assert.Equal(t, 12.0, stats[0].FlatPct)
	assert.Equal(t, 4.0, stats[0].CumPct)
}
