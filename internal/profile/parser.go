package profile

import (
	"strconv"
	"strings"
)

// ParseTopTable turns the raw text of `go tool pprof -top` into ordered
// FunctionStat records.
//
// Everything before the header line (the first line containing both "flat"
// and "cum") is ignored. Data lines have the shape
//
//	flat  flat%   sum%        cum   cum%  name...
//
// The sum% column is positional filler and never used. Lines with fewer
// than 6 fields or with an unparseable percentage are dropped silently;
// footer noise and truncated rows are expected in real pprof output.
func ParseTopTable(raw string) []FunctionStat {
	var stats []FunctionStat

	headerSeen := false
	for _, line := range strings.Split(raw, "\n") {
		if !headerSeen {
			if strings.Contains(line, "flat") && strings.Contains(line, "cum") {
				headerSeen = true
			}
			continue
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 6 {
			continue
		}

		flatPct, err := strconv.ParseFloat(strings.TrimSuffix(fields[1], "%"), 64)
		if err != nil {
			continue
		}
		cumPct, err := strconv.ParseFloat(strings.TrimSuffix(fields[4], "%"), 64)
		if err != nil {
			continue
		}

		stats = append(stats, FunctionStat{
			FlatTime: fields[0],
			FlatPct:  flatPct,
			CumTime:  fields[3],
			CumPct:   cumPct,
			Name:     strings.Join(fields[5:], " "),
		})
	}

	return stats
}
