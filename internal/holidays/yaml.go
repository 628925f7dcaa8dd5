package holidays

import (
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/wonny/fxcip/internal/calendar"
	"github.com/wonny/fxcip/pkg/config"
)

// fileFormat is the YAML holiday file layout:
//
//	markets:
//	  US:
//	    2026: ["2026-01-01", "2026-01-19", ...]
//	  SG:
//	    2026: ["2026-01-01", ...]
type fileFormat struct {
	Markets map[string]map[int][]string `yaml:"markets"`
}

// LoadFile reads per-market, per-year holiday dates from a YAML file.
// A listed year with an empty date list still marks that year as covered.
func LoadFile(path string) ([]calendar.Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read holiday file: %w", err)
	}

	var parsed fileFormat
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse holiday file %s: %w", path, err)
	}
	if len(parsed.Markets) == 0 {
		return nil, fmt.Errorf("holiday file %s defines no markets", path)
	}

	var sets []calendar.Set
	for market, years := range parsed.Markets {
		for year, dates := range years {
			set := calendar.Set{Market: calendar.Market(market), Year: year}
			for _, d := range dates {
				t, err := time.Parse("2006-01-02", d)
				if err != nil {
					return nil, fmt.Errorf("holiday file %s: market %s year %d: invalid date %q: %w",
						path, market, year, d, err)
				}
				if t.Year() != year {
					return nil, fmt.Errorf("holiday file %s: market %s: date %s listed under year %d",
						path, market, d, year)
				}
				set.Dates = append(set.Dates, t)
			}
			sets = append(sets, set)
		}
	}

	// Deterministic order for logging and tests.
	sort.Slice(sets, func(i, j int) bool {
		if sets[i].Market != sets[j].Market {
			return sets[i].Market < sets[j].Market
		}
		return sets[i].Year < sets[j].Year
	})

	return sets, nil
}

// Load returns holiday sets from the configured source: the YAML file when
// one is configured, otherwise the built-in data set.
func Load(cfg *config.Config) ([]calendar.Set, error) {
	if cfg.Holidays.File != "" {
		return LoadFile(cfg.Holidays.File)
	}
	return Builtin(), nil
}
