package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/wonny/fxcip/internal/cip"
	"github.com/wonny/fxcip/internal/contracts"
	"github.com/wonny/fxcip/internal/tenor"
	"github.com/wonny/fxcip/pkg/logger"
)

// CalcHandler exposes the CIP pipeline over HTTP.
type CalcHandler struct {
	pipeline *cip.Pipeline
	catalog  *tenor.Catalog
	logger   *logger.Logger
}

// NewCalcHandler creates a new calculation handler
func NewCalcHandler(pipeline *cip.Pipeline, catalog *tenor.Catalog, log *logger.Logger) *CalcHandler {
	return &CalcHandler{
		pipeline: pipeline,
		catalog:  catalog,
		logger:   log,
	}
}

type observationRequest struct {
	TradeDate     string  `json:"trade_date"`
	BaseRatePct   float64 `json:"base_rate_pct"`
	SpotRate      float64 `json:"spot_rate"`
	ForwardPoints float64 `json:"forward_points_pips"`
}

type calculateRequest struct {
	Tenor        string               `json:"tenor"`
	Columns      []string             `json:"columns"`
	SkipErrors   bool                 `json:"skip_errors"`
	Observations []observationRequest `json:"observations"`
}

type resultResponse struct {
	TradeDate        string  `json:"Trade_Date"`
	SpotDate         string  `json:"Spot_Date"`
	ForwardDate      string  `json:"Forward_Date"`
	ActualDays       int     `json:"Actual_Days"`
	BaseRatePct      float64 `json:"Base_Rate_Pct"`
	SpotRate         float64 `json:"Spot_Rate"`
	ForwardPoints    float64 `json:"Forward_Points_pips"`
	ForwardRate      float64 `json:"Forward_Rate"`
	ImpliedQuoteRate float64 `json:"Implied_Quote_Rate_Pct"`
	RateDiffBps      float64 `json:"Rate_Diff_bps"`
}

type calculateResponse struct {
	Tenor   string                 `json:"tenor"`
	Results []resultResponse       `json:"results"`
	Summary contracts.SummaryStats `json:"summary"`
	Errors  []string               `json:"errors,omitempty"`
}

// Calculate handles POST /api/v1/calculate
func (h *CalcHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	observations := make([]contracts.Observation, 0, len(req.Observations))
	for _, o := range req.Observations {
		tradeDate, err := time.Parse("2006-01-02", o.TradeDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid trade_date "+o.TradeDate+", expected YYYY-MM-DD")
			return
		}
		observations = append(observations, contracts.Observation{
			TradeDate:     tradeDate,
			BaseRatePct:   o.BaseRatePct,
			SpotRate:      o.SpotRate,
			ForwardPoints: o.ForwardPoints,
		})
	}

	batch := cip.BatchRequest{
		TenorID:      req.Tenor,
		Columns:      req.Columns,
		Observations: observations,
	}

	var (
		result *cip.BatchResult
		err    error
	)
	if req.SkipErrors {
		result, err = h.pipeline.RunCollect(batch)
	} else {
		result, err = h.pipeline.Run(batch)
	}
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	resp := calculateResponse{
		Tenor:   result.Tenor.ID,
		Results: make([]resultResponse, 0, len(result.Records)),
		Summary: result.Summary,
	}
	for _, rec := range result.Records {
		resp.Results = append(resp.Results, resultResponse{
			TradeDate:        rec.TradeDate.Format("2006-01-02"),
			SpotDate:         rec.SpotDate.Format("2006-01-02"),
			ForwardDate:      rec.ForwardDate.Format("2006-01-02"),
			ActualDays:       rec.ActualDays,
			BaseRatePct:      rec.BaseRatePct,
			SpotRate:         rec.SpotRate,
			ForwardPoints:    rec.ForwardPoints,
			ForwardRate:      rec.ForwardRate,
			ImpliedQuoteRate: rec.ImpliedQuoteRate,
			RateDiffBps:      rec.RateDiffBps,
		})
	}
	for _, rowErr := range result.Errors {
		resp.Errors = append(resp.Errors, rowErr.Error())
	}

	writeJSON(w, http.StatusOK, resp)
}

// Tenors handles GET /api/v1/tenors
func (h *CalcHandler) Tenors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"tenors": h.catalog.IDs(),
	})
}

// statusFor maps the error taxonomy onto HTTP statuses: bad requests for
// configuration and data problems, unprocessable for calendar/computation
// failures.
func statusFor(err error) int {
	var (
		configErr   *contracts.ConfigError
		dataErr     *contracts.DataError
		calendarErr *contracts.CalendarError
		computeErr  *contracts.ComputationError
	)
	switch {
	case errors.As(err, &configErr), errors.As(err, &dataErr):
		return http.StatusBadRequest
	case errors.As(err, &calendarErr), errors.As(err, &computeErr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
