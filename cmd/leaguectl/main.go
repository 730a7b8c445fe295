// Command leaguectl is the League Simulator operations CLI.
//
// Usage:
//
//	leaguectl migrate
//	leaguectl seed demo
//	leaguectl templates list
//	leaguectl templates leagues ligas --type League --search liga
//	leaguectl templates upload ./ligas.json --name ligas
//	leaguectl templates create-league ligas "LaLiga Española" --manager-id u1
//	leaguectl leagues simulate 7 --jornadas 10 --results --schedule
//	leaguectl calendar generate 7 --start 2025-03-01 --days 5,6
//	leaguectl matches process --max 200 --workers 4
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/albapepper/leaguesim/internal/cache"
	"github.com/albapepper/leaguesim/internal/config"
	"github.com/albapepper/leaguesim/internal/db"
	"github.com/albapepper/leaguesim/internal/fixture"
	"github.com/albapepper/leaguesim/internal/maintenance"
	"github.com/albapepper/leaguesim/internal/model"
	"github.com/albapepper/leaguesim/internal/seed"
	"github.com/albapepper/leaguesim/internal/simulation"
	"github.com/albapepper/leaguesim/internal/store"
	"github.com/albapepper/leaguesim/internal/template"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:          "leaguectl",
		Short:        "League Simulator operations CLI",
		SilenceUsage: true,
	}

	root.AddCommand(migrateCmd())
	root.AddCommand(seedCmd())
	root.AddCommand(templatesCmd())
	root.AddCommand(leaguesCmd())
	root.AddCommand(calendarCmd())
	root.AddCommand(matchesCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// migrate command
// --------------------------------------------------------------------------

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			applied, err := db.Migrate(ctx, cfg.DatabaseURL, logger)
			if err != nil {
				return err
			}
			logger.Info("Migrations finished", "applied", applied)
			return nil
		},
	}
}

// --------------------------------------------------------------------------
// seed command
// --------------------------------------------------------------------------

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load sample data",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "demo",
		Short: "Create four demo teams, a tactical league and one played match",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, e *env) error {
				start := time.Now()
				result := seed.Demo(ctx, e.store, logger)
				logger.Info("Demo seed finished", "duration", time.Since(start).Round(time.Millisecond), "summary", result.Summary())
				for _, msg := range result.Errors {
					logger.Error("seed error", "error", msg)
				}
				if len(result.Errors) > 0 {
					return fmt.Errorf("demo seed finished with %d errors", len(result.Errors))
				}
				return nil
			})
		},
	})
	return cmd
}

// --------------------------------------------------------------------------
// templates command
// --------------------------------------------------------------------------

func templatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Inspect league templates and create leagues from them",
	}
	cmd.AddCommand(templatesListCmd())
	cmd.AddCommand(templatesLeaguesCmd())
	cmd.AddCommand(templatesUploadCmd())
	cmd.AddCommand(templatesCreateLeagueCmd())
	return cmd
}

func loader() (*template.Loader, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return template.NewLoader(cfg.TemplatesDir, logger)
}

func templatesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := loader()
			if err != nil {
				return err
			}
			names, err := l.List()
			if err != nil {
				return err
			}
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
}

func templatesLeaguesCmd() *cobra.Command {
	var f template.Filter
	cmd := &cobra.Command{
		Use:   "leagues <template>",
		Short: "List the leagues of a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := loader()
			if err != nil {
				return err
			}
			leagues, err := l.Leagues(args[0], f)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, s := range leagues {
				fmt.Fprintf(out, "%-40s %-10s teams=%-3d total=%s\n", s.Name, s.Type, s.TeamCount, s.TotalValue)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&f.Type, "type", "", "League or Tournament")
	cmd.Flags().StringVar(&f.Search, "search", "", "Case-insensitive name search")
	return cmd
}

func templatesUploadCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Validate a template file and store it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			if name == "" {
				base := filepath.Base(args[0])
				name = strings.TrimSuffix(base, filepath.Ext(base))
			}
			l, err := loader()
			if err != nil {
				return err
			}
			n, err := l.Save(name, data)
			if err != nil {
				return err
			}
			logger.Info("Template stored", "name", name, "leagues", n)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Template name; defaults to the file name")
	return cmd
}

func templatesCreateLeagueCmd() *cobra.Command {
	var (
		tipo        string
		managerID   string
		managerName string
	)
	cmd := &cobra.Command{
		Use:   "create-league <template> <league>",
		Short: "Create a league with all teams of a template league",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel := model.LeagueTemplateSelect{
				LeagueName:  args[1],
				TipoLiga:    model.TipoLiga(tipo),
				ManagerID:   managerID,
				ManagerName: managerName,
			}
			if err := sel.Validate(); err != nil {
				return err
			}
			l, err := loader()
			if err != nil {
				return err
			}
			tl, err := l.League(args[0], args[1])
			if err != nil {
				return err
			}
			return run(func(ctx context.Context, e *env) error {
				plan := template.Build(tl, sel)
				league, err := e.store.CreateLeagueFromTemplate(ctx, plan)
				if err != nil {
					return err
				}
				logger.Info("League created from template",
					"league_id", league.ID, "name", league.Name, "teams", len(plan.Teams))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&tipo, "tipo", string(model.LigaTactica), "League kind")
	cmd.Flags().StringVar(&managerID, "manager-id", "", "Manager id")
	cmd.Flags().StringVar(&managerName, "manager-name", "", "Manager name")
	return cmd
}

// --------------------------------------------------------------------------
// leagues command
// --------------------------------------------------------------------------

func leaguesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leagues",
		Short: "League operations",
	}
	cmd.AddCommand(leaguesSimulateCmd())
	return cmd
}

func leaguesSimulateCmd() *cobra.Command {
	var (
		teams    []int
		jornadas int
		results  bool
		schedule bool
	)
	cmd := &cobra.Command{
		Use:   "simulate <league-id>",
		Short: "Generate fixtures for a tactical league",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := leagueArg(args[0])
			if err != nil {
				return err
			}
			req := model.SimulationRequest{Teams: teams, AutoSchedule: schedule, SimulateResults: results}
			if jornadas > 0 {
				req.Jornadas = &jornadas
			}
			if err := req.Validate(); err != nil {
				return err
			}
			return run(func(ctx context.Context, e *env) error {
				start := time.Now()
				n, err := e.runner.SimulateLeague(ctx, id, req)
				if err != nil {
					return err
				}
				logger.Info("League simulated", "league_id", id, "matches", n,
					"duration", time.Since(start).Round(time.Millisecond))
				return nil
			})
		},
	}
	cmd.Flags().IntSliceVar(&teams, "teams", nil, "Team ids to use; defaults to every registered team")
	cmd.Flags().IntVar(&jornadas, "jornadas", 0, "Jornadas to generate; defaults to the league's")
	cmd.Flags().BoolVar(&results, "results", false, "Play the generated matches")
	cmd.Flags().BoolVar(&schedule, "schedule", false, "Generate the calendar afterwards")
	return cmd
}

// --------------------------------------------------------------------------
// calendar command
// --------------------------------------------------------------------------

func calendarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Calendar operations",
	}
	cmd.AddCommand(calendarGenerateCmd())
	return cmd
}

func calendarGenerateCmd() *cobra.Command {
	var (
		startDate string
		endDate   string
		noDates   bool
		days      []int
	)
	cmd := &cobra.Command{
		Use:   "generate <league-id>",
		Short: "Schedule a league's unscheduled matches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := leagueArg(args[0])
			if err != nil {
				return err
			}
			req := model.GenerateCalendarRequest{AutoSchedule: !noDates, MatchDays: days}
			if req.StartDate, err = dateFlag("start", startDate); err != nil {
				return err
			}
			if req.EndDate, err = dateFlag("end", endDate); err != nil {
				return err
			}
			if err := req.Validate(); err != nil {
				return err
			}
			return run(func(ctx context.Context, e *env) error {
				n, err := e.runner.GenerateCalendar(ctx, id, req)
				if err != nil {
					return err
				}
				logger.Info("Calendar generated", "league_id", id, "entries", n)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&startDate, "start", "", "First day (YYYY-MM-DD); defaults to the league's start date")
	cmd.Flags().StringVar(&endDate, "end", "", "Last day (YYYY-MM-DD); defaults to the league's end date")
	cmd.Flags().BoolVar(&noDates, "no-dates", false, "Create entries without dates")
	cmd.Flags().IntSliceVar(&days, "days", nil, "Match weekdays, 0=Monday (default 5,6)")
	return cmd
}

// --------------------------------------------------------------------------
// matches command
// --------------------------------------------------------------------------

func matchesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matches",
		Short: "Match operations",
	}
	cmd.AddCommand(matchesProcessCmd())
	return cmd
}

func matchesProcessCmd() *cobra.Command {
	var (
		maxMatches int
		workers    int
		before     string
	)
	cmd := &cobra.Command{
		Use:   "process",
		Short: "Play every scheduled match that is due",
		RunE: func(cmd *cobra.Command, args []string) error {
			cutoff := model.NewDate(time.Now())
			if before != "" {
				d, err := model.ParseDate(before)
				if err != nil {
					return fmt.Errorf("--before: %w", err)
				}
				cutoff = d
			}
			return run(func(ctx context.Context, e *env) error {
				result := e.runner.ProcessDue(ctx, cutoff, maxMatches, workers)
				logger.Info("Match process finished", "summary", result.Summary())
				if leagues := playedLeagues(result); len(leagues) > 0 {
					maintenance.New(e.store, e.runner, cache.New(false), logger).AfterSimulation(ctx, leagues)
				}
				for _, msg := range result.Errors {
					logger.Error("match error", "error", msg)
				}
				if result.MatchesFailed > 0 {
					return fmt.Errorf("%d matches failed", result.MatchesFailed)
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&maxMatches, "max", fixture.DefaultMaxMatches, "Maximum matches to play")
	cmd.Flags().IntVar(&workers, "workers", fixture.DefaultWorkers, "Concurrent worker count")
	cmd.Flags().StringVar(&before, "before", "", "Play matches scheduled on or before this day (YYYY-MM-DD); defaults to today")
	return cmd
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

type env struct {
	store  *store.Store
	runner *fixture.Runner
}

// run handles config loading, DB connection, and context cancellation.
func run(fn func(ctx context.Context, e *env) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	pool, err := db.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	sim, err := simulation.New()
	if err != nil {
		return fmt.Errorf("seed simulator: %w", err)
	}
	st := store.New(pool.Pool)
	return fn(ctx, &env{store: st, runner: fixture.NewRunner(st, sim, logger)})
}

// playedLeagues lists the leagues with at least one successful match, in
// first-seen order.
func playedLeagues(r fixture.RunResult) []int {
	seen := make(map[int]bool)
	var ids []int
	for _, res := range r.Results {
		if res.Success && !seen[res.LeagueID] {
			seen[res.LeagueID] = true
			ids = append(ids, res.LeagueID)
		}
	}
	return ids
}

func leagueArg(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("league id must be a positive integer, got %q", s)
	}
	return id, nil
}

func dateFlag(name, s string) (*model.Date, error) {
	if s == "" {
		return nil, nil
	}
	d, err := model.ParseDate(s)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", name, err)
	}
	return &d, nil
}
