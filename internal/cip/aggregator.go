package cip

import "github.com/wonny/fxcip/internal/contracts"

// Aggregate collects per-row results into an ordered result set and derives
// summary statistics. Input order is preserved; no deduplication and no
// sorting. An empty sequence yields count 0 with absent ranges.
func Aggregate(records []contracts.ResultRecord) ([]contracts.ResultRecord, contracts.SummaryStats) {
	out := make([]contracts.ResultRecord, len(records))
	copy(out, records)
	return out, Summarize(out)
}

// Summarize computes summary statistics over a full result sequence.
func Summarize(records []contracts.ResultRecord) contracts.SummaryStats {
	stats := contracts.SummaryStats{Count: len(records)}
	if len(records) == 0 {
		return stats
	}

	implied := newStatRange(records[0].ImpliedQuoteRate)
	diff := newStatRange(records[0].RateDiffBps)

	for _, rec := range records[1:] {
		implied.observe(rec.ImpliedQuoteRate)
		diff.observe(rec.RateDiffBps)
	}

	implied.finish(len(records))
	diff.finish(len(records))

	stats.ImpliedRate = (*contracts.StatRange)(implied)
	stats.RateDiffBps = (*contracts.StatRange)(diff)
	return stats
}

// statRange accumulates a sum in Mean until finish divides it out.
type statRange contracts.StatRange

func newStatRange(v float64) *statRange {
	return &statRange{Mean: v, Min: v, Max: v}
}

func (s *statRange) observe(v float64) {
	s.Mean += v
	if v < s.Min {
		s.Min = v
	}
	if v > s.Max {
		s.Max = v
	}
}

func (s *statRange) finish(n int) {
	s.Mean /= float64(n)
}
