package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/fxcip/internal/calendar"
	"github.com/wonny/fxcip/internal/external/mom"
	"github.com/wonny/fxcip/internal/holidays"
	"github.com/wonny/fxcip/pkg/database"
	"github.com/wonny/fxcip/pkg/httputil"
	"github.com/wonny/fxcip/pkg/redis"
)

// holidaysCmd groups holiday data maintenance commands
var holidaysCmd = &cobra.Command{
	Use:   "holidays",
	Short: "Maintain and inspect the holiday calendars",
}

var holidaysFetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch Singapore public holidays from the MOM website",
	Long: `Fetches the official Singapore public-holiday calendar from the
Ministry of Manpower website for one year.

With --save-db the fetched set is upserted into the holidays table
(DATABASE_URL required).

Example:
  go run ./cmd/fxcip holidays fetch --year 2026
  go run ./cmd/fxcip holidays fetch --year 2027 --save-db`,
	RunE: runHolidaysFetch,
}

var holidaysCheckCmd = &cobra.Command{
	Use:   "check <date>",
	Short: "Check whether a date is a good settlement day",
	Long: `Checks a YYYY-MM-DD date against the loaded US and SG calendars and
reports per-market business-day status plus settlement eligibility.

Example:
  go run ./cmd/fxcip holidays check 2026-02-17`,
	Args: cobra.ExactArgs(1),
	RunE: runHolidaysCheck,
}

var holidaysListCmd = &cobra.Command{
	Use:   "list",
	Short: "List holiday sets stored in PostgreSQL",
	Long: `Lists the stored US and SG holiday sets for one year
(DATABASE_URL required).

Example:
  go run ./cmd/fxcip holidays list --year 2026`,
	RunE: runHolidaysList,
}

var (
	holidaysYear   int
	holidaysSaveDB bool
	holidaysDBYear int
)

func init() {
	rootCmd.AddCommand(holidaysCmd)
	holidaysCmd.AddCommand(holidaysFetchCmd)
	holidaysCmd.AddCommand(holidaysCheckCmd)
	holidaysCmd.AddCommand(holidaysListCmd)

	holidaysFetchCmd.Flags().IntVar(&holidaysYear, "year", time.Now().Year(), "calendar year to fetch")
	holidaysFetchCmd.Flags().BoolVar(&holidaysSaveDB, "save-db", false, "store the fetched set in PostgreSQL")
	holidaysListCmd.Flags().IntVar(&holidaysDBYear, "year", time.Now().Year(), "calendar year to list")
}

func runHolidaysFetch(cmd *cobra.Command, args []string) error {
	cfg, log, err := initRuntime()
	if err != nil {
		return err
	}

	redisClient, err := redis.New(cfg)
	if err != nil {
		return fmt.Errorf("init redis: %w", err)
	}
	defer redisClient.Close()
	cache := redis.NewCache(redisClient, "fxcip")

	httpClient := httputil.New(log).WithRateLimit(30)
	client := mom.NewClient(httpClient, log, cache, cfg.MOM.BaseURL)

	set, err := client.FetchYear(cmd.Context(), holidaysYear)
	if err != nil {
		return fmt.Errorf("fetch SG holidays: %w", err)
	}

	fmt.Printf("SG public holidays %d (%d dates):\n", holidaysYear, len(set.Dates))
	for _, d := range set.Dates {
		fmt.Printf("  %s (%s)\n", d.Format("2006-01-02"), d.Weekday())
	}

	if !holidaysSaveDB {
		return nil
	}

	if err := cfg.RequireDatabase(); err != nil {
		return err
	}
	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	repo := holidays.NewRepository(db.Pool)
	if err := repo.EnsureSchema(cmd.Context()); err != nil {
		return err
	}
	if err := repo.Save(cmd.Context(), set); err != nil {
		return fmt.Errorf("save holidays: %w", err)
	}

	log.WithFields(map[string]interface{}{
		"market": set.Market,
		"year":   set.Year,
		"count":  len(set.Dates),
	}).Info("Holiday set stored")
	return nil
}

func runHolidaysList(cmd *cobra.Command, args []string) error {
	cfg, _, err := initRuntime()
	if err != nil {
		return err
	}
	if err := cfg.RequireDatabase(); err != nil {
		return err
	}

	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	repo := holidays.NewRepository(db.Pool)
	sets, err := repo.LoadYears(cmd.Context(), calendar.Markets, []int{holidaysDBYear})
	if err != nil {
		return fmt.Errorf("load stored holidays: %w", err)
	}

	for _, set := range sets {
		fmt.Printf("%s %d (%d dates):\n", set.Market, set.Year, len(set.Dates))
		for _, d := range set.Dates {
			fmt.Printf("  %s (%s)\n", d.Format("2006-01-02"), d.Weekday())
		}
	}
	return nil
}

func runHolidaysCheck(cmd *cobra.Command, args []string) error {
	date, err := time.Parse("2006-01-02", args[0])
	if err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", args[0])
	}

	cfg, _, err := initRuntime()
	if err != nil {
		return err
	}

	sets, err := holidays.Load(cfg)
	if err != nil {
		return fmt.Errorf("load holiday data: %w", err)
	}
	cal := calendar.New(sets)

	for _, market := range calendar.Markets {
		ok, err := cal.IsBusinessDay(market, date)
		if err != nil {
			return err
		}
		fmt.Printf("%s: business day = %v\n", market, ok)
	}

	settlement, err := cal.IsSettlementDay(date)
	if err != nil {
		return err
	}
	fmt.Printf("Settlement day (both markets open): %v\n", settlement)
	return nil
}
