package holidays

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wonny/fxcip/internal/calendar"
)

// Repository stores versioned holiday data per market/year in PostgreSQL.
// ⭐ SSOT: 휴일 데이터 저장소는 여기서만
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new holiday repository
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// EnsureSchema creates the holidays table if it does not exist
func (r *Repository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS holidays (
			market       TEXT NOT NULL,
			holiday_date DATE NOT NULL,
			label        TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (market, holiday_date)
		)
	`

	if _, err := r.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("create holidays table: %w", err)
	}
	return nil
}

// LoadYear retrieves the holiday set for one market/year. A year with no
// stored rows is an error: every real calendar year has at least one
// holiday, so an empty result means the year was never loaded and must not
// be treated as covered.
func (r *Repository) LoadYear(ctx context.Context, market calendar.Market, year int) (calendar.Set, error) {
	query := `
		SELECT holiday_date
		FROM holidays
		WHERE market = $1 AND holiday_date >= $2 AND holiday_date < $3
		ORDER BY holiday_date ASC
	`

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	rows, err := r.pool.Query(ctx, query, string(market), from, to)
	if err != nil {
		return calendar.Set{}, fmt.Errorf("query holidays: %w", err)
	}
	defer rows.Close()

	set := calendar.Set{Market: market, Year: year}
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return calendar.Set{}, fmt.Errorf("scan holiday row: %w", err)
		}
		set.Dates = append(set.Dates, d)
	}
	if err := rows.Err(); err != nil {
		return calendar.Set{}, fmt.Errorf("iterate holiday rows: %w", err)
	}

	if len(set.Dates) == 0 {
		return calendar.Set{}, fmt.Errorf("no holiday data stored for market %s year %d", market, year)
	}

	return set, nil
}

// LoadYears retrieves holiday sets for every market/year combination.
func (r *Repository) LoadYears(ctx context.Context, markets []calendar.Market, years []int) ([]calendar.Set, error) {
	var sets []calendar.Set
	for _, market := range markets {
		for _, year := range years {
			set, err := r.LoadYear(ctx, market, year)
			if err != nil {
				return nil, err
			}
			sets = append(sets, set)
		}
	}
	return sets, nil
}

// Save upserts one holiday set
func (r *Repository) Save(ctx context.Context, set calendar.Set) error {
	query := `
		INSERT INTO holidays (market, holiday_date)
		VALUES ($1, $2)
		ON CONFLICT (market, holiday_date) DO NOTHING
	`

	for _, d := range set.Dates {
		if _, err := r.pool.Exec(ctx, query, string(set.Market), d); err != nil {
			return fmt.Errorf("save holiday %s %s: %w", set.Market, d.Format("2006-01-02"), err)
		}
	}
	return nil
}
