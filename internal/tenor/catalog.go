package tenor

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/wonny/fxcip/internal/contracts"
)

// Tenor describes one configured forward tenor. The day-count denominators
// are fixed conventions of the two currencies, not properties of the tenor
// length: ACT/360 accrual on the base (USD) leg, ACT/365 annualization on
// the quote (SGD) leg.
type Tenor struct {
	ID            string
	Months        int
	BaseDayCount  int
	QuoteDayCount int
}

// Catalog is the closed set of tenors the system computes. Unknown
// identifiers are rejected with a ConfigError, never guessed.
type Catalog struct {
	byID     map[string]Tenor
	byMonths map[int]Tenor
	order    []string
}

// NewCatalog builds a catalog from explicit tenor definitions.
func NewCatalog(tenors ...Tenor) *Catalog {
	c := &Catalog{
		byID:     make(map[string]Tenor, len(tenors)),
		byMonths: make(map[int]Tenor, len(tenors)),
	}
	for _, t := range tenors {
		id := strings.ToUpper(t.ID)
		t.ID = id
		c.byID[id] = t
		c.byMonths[t.Months] = t
		c.order = append(c.order, id)
	}
	return c
}

// Default returns the catalog for the USD/SGD pair: 1M, 3M and 6M with
// ACT/360 on the USD leg and ACT/365 on the SGD leg. New tenors are added
// here, not by string matching in the formula code.
func Default() *Catalog {
	return NewCatalog(
		Tenor{ID: "1M", Months: 1, BaseDayCount: 360, QuoteDayCount: 365},
		Tenor{ID: "3M", Months: 3, BaseDayCount: 360, QuoteDayCount: 365},
		Tenor{ID: "6M", Months: 6, BaseDayCount: 360, QuoteDayCount: 365},
	)
}

// IDs returns the configured tenor identifiers in definition order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.order))
	copy(ids, c.order)
	return ids
}

// Resolve validates an explicit tenor identifier against the catalog.
func (c *Catalog) Resolve(id string) (Tenor, error) {
	normalized := strings.ToUpper(strings.TrimSpace(id))
	t, ok := c.byID[normalized]
	if !ok {
		return Tenor{}, &contracts.ConfigError{
			Field:  "tenor",
			Reason: fmt.Sprintf("unknown tenor %q, must be one of: %s", id, strings.Join(c.order, ", ")),
		}
	}
	return t, nil
}

// tenorToken matches a full digit run followed by "M"/"month(s)". The
// digit run is matched greedily, so a "12M" label can never yield a "2M"
// (or "1M") token.
var tenorToken = regexp.MustCompile(`(?i)(\d+)\s*m(?:onths?)?`)

// Detect inspects column names for tenor tokens and returns the single
// configured tenor they name. Detection fails with a ConfigError when no
// token or more than one distinct configured tenor is found; the caller
// must then specify the tenor explicitly.
func (c *Catalog) Detect(columns []string) (Tenor, error) {
	found := make(map[int]struct{})

	for _, col := range columns {
		for _, m := range tenorToken.FindAllStringSubmatch(col, -1) {
			months, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			if _, ok := c.byMonths[months]; ok {
				found[months] = struct{}{}
			}
		}
	}

	if len(found) == 0 {
		return Tenor{}, &contracts.ConfigError{
			Field:  "tenor",
			Reason: "no tenor token detected in column names, specify the tenor explicitly",
		}
	}
	if len(found) > 1 {
		var tokens []string
		for months := range found {
			tokens = append(tokens, c.byMonths[months].ID)
		}
		sort.Strings(tokens)
		return Tenor{}, &contracts.ConfigError{
			Field:  "tenor",
			Reason: fmt.Sprintf("ambiguous tenor tokens in column names (%s), specify the tenor explicitly", strings.Join(tokens, ", ")),
		}
	}

	for months := range found {
		return c.byMonths[months], nil
	}
	return Tenor{}, nil // unreachable
}
