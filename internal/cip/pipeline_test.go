package cip

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/fxcip/internal/calendar"
	"github.com/wonny/fxcip/internal/contracts"
	"github.com/wonny/fxcip/internal/holidays"
	"github.com/wonny/fxcip/internal/tenor"
	"github.com/wonny/fxcip/pkg/config"
	"github.com/wonny/fxcip/pkg/logger"
)

func testPipeline() *Pipeline {
	cfg := &config.Config{Env: "development", LogLevel: "error", LogFormat: "json"}
	return NewPipeline(tenor.Default(), calendar.New(holidays.Builtin()), logger.New(cfg))
}

func validObservations() []contracts.Observation {
	return []contracts.Observation{
		{TradeDate: tradeDate(2026, 1, 29), BaseRatePct: 3.66902, SpotRate: 1.2674, ForwardPoints: -24.73},
		{TradeDate: tradeDate(2026, 1, 30), BaseRatePct: 3.66877, SpotRate: 1.2669, ForwardPoints: -24.68},
	}
}

func TestPipeline_Run(t *testing.T) {
	p := testPipeline()

	result, err := p.Run(BatchRequest{
		TenorID:      "1M",
		Observations: validObservations(),
	})
	require.NoError(t, err)

	assert.Equal(t, "1M", result.Tenor.ID)
	assert.Len(t, result.Records, 2)
	assert.Empty(t, result.Errors)
	assert.Equal(t, 2, result.Summary.Count)

	// Input order survives the batch.
	assert.Equal(t, tradeDate(2026, 1, 29), result.Records[0].TradeDate)
	assert.Equal(t, tradeDate(2026, 1, 30), result.Records[1].TradeDate)
}

func TestPipeline_Run_AutoDetect(t *testing.T) {
	p := testPipeline()

	result, err := p.Run(BatchRequest{
		Columns:      []string{"Date", "1mSOFR", "USDSGD_FX", "Forward Points"},
		Observations: validObservations(),
	})
	require.NoError(t, err)
	assert.Equal(t, "1M", result.Tenor.ID)
}

func TestPipeline_Run_DetectFailsWithoutToken(t *testing.T) {
	p := testPipeline()

	_, err := p.Run(BatchRequest{
		Columns:      []string{"Date", "SOFR", "Spot", "Fwd Pts"},
		Observations: validObservations(),
	})
	require.Error(t, err)

	var cfgErr *contracts.ConfigError
	assert.True(t, errors.As(err, &cfgErr), "error = %T, want *contracts.ConfigError", err)
}

func TestPipeline_Run_FailFast(t *testing.T) {
	p := testPipeline()

	obs := validObservations()
	obs[0].SpotRate = 0 // poison the first row

	_, err := p.Run(BatchRequest{TenorID: "1M", Observations: obs})
	require.Error(t, err)

	var rowErr *contracts.RowError
	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, 0, rowErr.Index)

	var dataErr *contracts.DataError
	assert.True(t, errors.As(err, &dataErr), "RowError must unwrap to the cause")
}

func TestPipeline_RunCollect(t *testing.T) {
	p := testPipeline()

	obs := validObservations()
	obs = append(obs, contracts.Observation{
		TradeDate: tradeDate(2026, 2, 2), BaseRatePct: 3.66851, SpotRate: 0, ForwardPoints: -24.60,
	})

	result, err := p.RunCollect(BatchRequest{TenorID: "1M", Observations: obs})
	require.NoError(t, err)

	assert.Len(t, result.Records, 2)
	assert.Equal(t, 2, result.Summary.Count)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 2, result.Errors[0].Index)
	assert.Equal(t, tradeDate(2026, 2, 2), result.Errors[0].Date)
}

func TestPipeline_Run_EmptyBatch(t *testing.T) {
	p := testPipeline()

	result, err := p.Run(BatchRequest{TenorID: "1M"})
	require.NoError(t, err)

	assert.Empty(t, result.Records)
	assert.Equal(t, 0, result.Summary.Count)
	assert.Nil(t, result.Summary.ImpliedRate)
}
