package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/wonny/fxcip/internal/contracts"
	"github.com/wonny/fxcip/internal/tenor"
)

// Canonical column roles of the input schema.
const (
	roleDate   = "trade_date"
	roleRate   = "base_rate_pct"
	roleSpot   = "spot_rate"
	rolePoints = "forward_points_pips"
)

// columnAliases enumerates accepted header spellings per role. Headers are
// normalized (uppercased, spaces/underscores/slashes stripped) before the
// exact-match lookup; there is deliberately no fuzzy probing. The rate
// role is handled separately because its name embeds the tenor token.
var columnAliases = map[string][]string{
	roleDate: {
		"DATE", "TRADEDATE",
	},
	roleSpot: {
		"USDSGDFX", "USDSGD", "FXSPOT", "SPOTRATE", "SPOT", "FX",
	},
	rolePoints: {
		"FORWARDPOINTS", "FORWARDPOINTSPIPS", "FWDPOINTS", "FWDPTS",
	},
}

// acceptedDateLayouts are tried in order when parsing the date column.
var acceptedDateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
}

// Batch is one loaded input file: the raw header (kept for tenor
// auto-detection) and the observations in file order.
type Batch struct {
	Columns      []string
	Observations []contracts.Observation
}

// Reader loads observation batches from CSV files. The catalog supplies
// the tenor identifiers used to build the rate-column alias set.
type Reader struct {
	catalog *tenor.Catalog
}

// NewReader creates a Reader over the given tenor catalog.
func NewReader(catalog *tenor.Catalog) *Reader {
	return &Reader{catalog: catalog}
}

// ReadFile loads a batch from a CSV file on disk.
func (r *Reader) ReadFile(path string) (*Batch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()

	batch, err := r.Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return batch, nil
}

// Read loads a batch from CSV data: a header row naming the four canonical
// roles (in any accepted spelling), then one observation per row.
func (r *Reader) Read(src io.Reader) (*Batch, error) {
	cr := csv.NewReader(src)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header row: %w", err)
	}

	mapping, err := r.mapColumns(header)
	if err != nil {
		return nil, err
	}

	batch := &Batch{Columns: header}
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row at line %d: %w", line, err)
		}

		obs, err := parseObservation(row, mapping, line)
		if err != nil {
			return nil, err
		}
		batch.Observations = append(batch.Observations, obs)
	}

	return batch, nil
}

// mapColumns resolves the header to column indexes per role. Every role
// must be matched exactly once.
func (r *Reader) mapColumns(header []string) (map[string]int, error) {
	rateAliases := r.rateAliases()
	mapping := make(map[string]int, 4)

	for i, col := range header {
		normalized := normalizeHeader(col)

		role := ""
		for candidate, aliases := range columnAliases {
			if containsAlias(aliases, normalized) {
				role = candidate
				break
			}
		}
		if role == "" && containsAlias(rateAliases, normalized) {
			role = roleRate
		}
		if role == "" {
			continue
		}

		if prev, dup := mapping[role]; dup {
			return nil, &contracts.ConfigError{
				Field: role,
				Reason: fmt.Sprintf("columns %q and %q both map to this role",
					header[prev], col),
			}
		}
		mapping[role] = i
	}

	for _, role := range []string{roleDate, roleRate, roleSpot, rolePoints} {
		if _, ok := mapping[role]; !ok {
			return nil, &contracts.ConfigError{
				Field:  role,
				Reason: fmt.Sprintf("no column maps to this role (header: %s)", strings.Join(header, ", ")),
			}
		}
	}

	return mapping, nil
}

// rateAliases builds the accepted spellings of the base-rate column from
// the configured tenors: 1MSOFR, SOFR1M, ... plus the bare SOFR fallback.
func (r *Reader) rateAliases() []string {
	var aliases []string
	for _, id := range r.catalog.IDs() {
		aliases = append(aliases, id+"SOFR", "SOFR"+id, "USDSOFR"+id, "USDSOFR"+id+"PCT")
	}
	return append(aliases, "SOFR")
}

func normalizeHeader(col string) string {
	normalized := strings.ToUpper(strings.TrimSpace(col))
	for _, cut := range []string{" ", "_", "/", "-"} {
		normalized = strings.ReplaceAll(normalized, cut, "")
	}
	return normalized
}

func containsAlias(aliases []string, normalized string) bool {
	for _, a := range aliases {
		if a == normalized {
			return true
		}
	}
	return false
}

func parseObservation(row []string, mapping map[string]int, line int) (contracts.Observation, error) {
	var obs contracts.Observation

	for role, idx := range mapping {
		if idx >= len(row) {
			return obs, &contracts.DataError{
				Field:  role,
				Reason: fmt.Sprintf("line %d: row has %d columns, field missing", line, len(row)),
			}
		}
	}

	dateStr := strings.TrimSpace(row[mapping[roleDate]])
	date, err := parseDate(dateStr)
	if err != nil {
		return obs, &contracts.DataError{
			Field:  roleDate,
			Value:  dateStr,
			Reason: fmt.Sprintf("line %d: unrecognized date format", line),
		}
	}
	obs.TradeDate = date

	for role, dest := range map[string]*float64{
		roleRate:   &obs.BaseRatePct,
		roleSpot:   &obs.SpotRate,
		rolePoints: &obs.ForwardPoints,
	} {
		raw := strings.TrimSpace(row[mapping[role]])
		value, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
		if err != nil {
			return obs, &contracts.DataError{
				Date:   date,
				Field:  role,
				Value:  raw,
				Reason: fmt.Sprintf("line %d: not a number", line),
			}
		}
		*dest = value
	}

	return obs, nil
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range acceptedDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}
