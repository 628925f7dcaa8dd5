package cip

import (
	"github.com/wonny/fxcip/internal/calendar"
	"github.com/wonny/fxcip/internal/contracts"
	"github.com/wonny/fxcip/internal/tenor"
	"github.com/wonny/fxcip/pkg/logger"
)

// BatchRequest is one ordered batch of observations plus the tenor
// selection. An empty TenorID requests auto-detection from Columns (the
// raw header of the source the observations came from).
type BatchRequest struct {
	TenorID      string
	Columns      []string
	Observations []contracts.Observation
}

// BatchResult carries the ordered result sequence, its summary statistics
// and, in collect mode, the per-row failures.
type BatchResult struct {
	Tenor   tenor.Tenor
	Records []contracts.ResultRecord
	Summary contracts.SummaryStats
	Errors  []*contracts.RowError
}

// Pipeline wires tenor resolution, business-day rolling and the CIP engine
// for one batch. It holds no mutable state across batches; the calendar is
// the only shared structure and it is immutable after load.
type Pipeline struct {
	catalog *tenor.Catalog
	roller  *calendar.Roller
	logger  *logger.Logger
}

// NewPipeline creates a Pipeline over the given catalog and calendar.
func NewPipeline(catalog *tenor.Catalog, cal *calendar.Calendar, log *logger.Logger) *Pipeline {
	return &Pipeline{
		catalog: catalog,
		roller:  calendar.NewRoller(cal),
		logger:  log,
	}
}

// Run processes the batch fail-fast: the first failing observation aborts
// the batch and its error is returned.
func (p *Pipeline) Run(req BatchRequest) (*BatchResult, error) {
	engine, err := p.engineFor(req)
	if err != nil {
		return nil, err
	}

	records := make([]contracts.ResultRecord, 0, len(req.Observations))
	for i, obs := range req.Observations {
		rec, err := engine.Compute(obs)
		if err != nil {
			return nil, &contracts.RowError{Index: i, Date: obs.TradeDate, Err: err}
		}
		records = append(records, rec)
	}

	return p.finish(engine, records, nil), nil
}

// RunCollect processes the batch collecting per-row failures. Successful
// rows keep their input order; each failed observation yields no record
// and one structured row error.
func (p *Pipeline) RunCollect(req BatchRequest) (*BatchResult, error) {
	engine, err := p.engineFor(req)
	if err != nil {
		return nil, err
	}

	records := make([]contracts.ResultRecord, 0, len(req.Observations))
	var rowErrors []*contracts.RowError
	for i, obs := range req.Observations {
		rec, err := engine.Compute(obs)
		if err != nil {
			rowErrors = append(rowErrors, &contracts.RowError{Index: i, Date: obs.TradeDate, Err: err})
			continue
		}
		records = append(records, rec)
	}

	return p.finish(engine, records, rowErrors), nil
}

func (p *Pipeline) engineFor(req BatchRequest) (*Engine, error) {
	var (
		t   tenor.Tenor
		err error
	)
	if req.TenorID != "" {
		t, err = p.catalog.Resolve(req.TenorID)
	} else {
		t, err = p.catalog.Detect(req.Columns)
		if err == nil {
			p.logger.WithField("tenor", t.ID).Debug("Auto-detected tenor")
		}
	}
	if err != nil {
		return nil, err
	}

	return NewEngine(t, p.roller), nil
}

func (p *Pipeline) finish(engine *Engine, records []contracts.ResultRecord, rowErrors []*contracts.RowError) *BatchResult {
	ordered, summary := Aggregate(records)

	p.logger.WithFields(map[string]interface{}{
		"tenor":  engine.Tenor().ID,
		"rows":   summary.Count,
		"errors": len(rowErrors),
	}).Debug("Batch computed")

	return &BatchResult{
		Tenor:   engine.Tenor(),
		Records: ordered,
		Summary: summary,
		Errors:  rowErrors,
	}
}
