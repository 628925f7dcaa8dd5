package loader

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/fxcip/internal/contracts"
)

func TestWriteResults(t *testing.T) {
	records := []contracts.ResultRecord{
		{
			TradeDate:        date(2026, time.January, 30),
			SpotDate:         date(2026, time.February, 3),
			ForwardDate:      date(2026, time.March, 3),
			ActualDays:       28,
			BaseRatePct:      3.66877,
			SpotRate:         1.2669,
			ForwardPoints:    -24.68,
			ForwardRate:      1.264432,
			ImpliedQuoteRate: 1.173,
			RateDiffBps:      -249.577,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteResults(&buf, records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// The header is the downstream contract; order matters.
	assert.Equal(t, contracts.ResultColumns, rows[0])

	row := rows[1]
	assert.Equal(t, "2026-01-30", row[0])
	assert.Equal(t, "2026-02-03", row[1])
	assert.Equal(t, "2026-03-03", row[2])
	assert.Equal(t, "28", row[3])
	assert.Equal(t, "3.66877", row[4])
	assert.Equal(t, "1.2669", row[5])
	assert.Equal(t, "-24.68", row[6])
	assert.Equal(t, "1.264432", row[7])
}

func TestWriteResults_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteResults(&buf, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1, "empty batch still writes the header")
	assert.Equal(t, contracts.ResultColumns, rows[0])
}

func TestWriteSummary(t *testing.T) {
	stats := contracts.SummaryStats{
		Count:       5,
		ImpliedRate: &contracts.StatRange{Mean: 1.18, Min: 1.17, Max: 1.19},
		RateDiffBps: &contracts.StatRange{Mean: -249.5, Min: -250.1, Max: -248.9},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, "1M", stats))

	out := buf.String()
	assert.Contains(t, out, "Tenor,1M")
	assert.Contains(t, out, "Rows_Processed,5")
	assert.Contains(t, out, "Implied_Quote_Rate_Pct_Mean,1.18")
	assert.Contains(t, out, "Rate_Diff_bps_Min,-250.1")
}

func TestWriteSummary_EmptyBatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, "1M", contracts.SummaryStats{Count: 0}))

	out := buf.String()
	assert.Contains(t, out, "Rows_Processed,0")
	assert.NotContains(t, out, "Implied_Quote_Rate_Pct_Mean",
		"absent ranges must emit no rows")
}

func TestWriteSample_RoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSample(&buf))

	batch, err := testReader().Read(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.Len(t, batch.Observations, len(sampleRows))

	last := batch.Observations[len(batch.Observations)-1]
	assert.Equal(t, date(2026, time.January, 30), last.TradeDate)
	assert.Equal(t, 3.66877, last.BaseRatePct)
	assert.Equal(t, 1.2669, last.SpotRate)
	assert.Equal(t, -24.68, last.ForwardPoints)
}
