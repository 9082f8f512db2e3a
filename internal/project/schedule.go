// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package project

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// spanPattern finds the first "<count> <unit>" in a timeframe, e.g.
// "16-week sprint program" or "6 months".
var spanPattern = regexp.MustCompile(`(?i)(\d+)\s*-?\s*(day|week|sprint|month|quarter|year)s?\b`)

// weeksPer converts coarse units to weeks.
var weeksPer = map[string]int{
	"sprint":  2,
	"month":   4,
	"quarter": 13,
	"year":    52,
}

// maxSpanCount bounds the parsed count so checkpoint arithmetic cannot
// overflow.
const maxSpanCount = 10000

// span is a parsed timeframe. A zero count means the timeframe had no
// recognizable duration, or one too short to name a distinct checkpoint per
// phase.
type span struct {
	count int
	unit  string
}

// parseSpan reads the first duration in timeframe. Counts smaller than the
// phase count are restated in a finer unit (months to weeks, weeks to days).
func parseSpan(timeframe string) span {
	m := spanPattern.FindStringSubmatch(timeframe)
	if m == nil {
		return span{}
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 || n > maxSpanCount {
		return span{}
	}
	unit := strings.ToLower(m[2])
	for n < len(phases) {
		if w, ok := weeksPer[unit]; ok {
			n, unit = n*w, "week"
			continue
		}
		if unit == "week" {
			n, unit = n*7, "day"
			continue
		}
		return span{}
	}
	return span{count: n, unit: unit}
}

// end returns the last unit of part i (zero-based) out of parts.
func (s span) end(i, parts int) int {
	return (s.count*(i+1) + parts - 1) / parts
}

func (s span) label(n int) string {
	return strings.ToUpper(s.unit[:1]) + s.unit[1:] + " " + strconv.Itoa(n)
}

// marker names the checkpoint closing part i, e.g. "Week 8".
func (s span) marker(i, parts int, timeframe string) string {
	if s.count == 0 {
		return fmt.Sprintf("Checkpoint %d (%d%% of the %s)", i+1, 100*(i+1)/parts, timeframe)
	}
	return s.label(s.end(i, parts))
}

// period names the window covered by part i, e.g. "Weeks 5–8".
func (s span) period(i, parts int, timeframe string) string {
	if s.count == 0 {
		return fmt.Sprintf("Period %d of the %s", i+1, timeframe)
	}
	start, end := 1, s.end(i, parts)
	if i > 0 {
		start = s.end(i-1, parts) + 1
	}
	if start >= end {
		return s.label(end)
	}
	unit := strings.ToUpper(s.unit[:1]) + s.unit[1:] + "s"
	return fmt.Sprintf("%s %d–%d", unit, start, end)
}
