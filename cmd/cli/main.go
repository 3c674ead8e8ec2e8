package main

import (
	"context"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"effectif-engine/internal/config"
	"effectif-engine/pkg/core/model"
	"effectif-engine/pkg/core/referential"
	"effectif-engine/pkg/core/scoring"
	"effectif-engine/pkg/core/services"
	"effectif-engine/pkg/filestore"
	"effectif-engine/pkg/httpserver"
	"effectif-engine/pkg/postgres"
	"effectif-engine/pkg/scoringclient"
	"effectif-engine/pkg/utils/logging"
)

// App holds the application dependencies
type App struct {
	cfg      *config.Config
	store    services.SimulationStore
	database *postgres.DB
	scorer   *scoring.Scorer
	client   services.AuthoritativeScorer
	logger   *zap.Logger
	ctx      context.Context
}

var (
	env string
	app *App
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "effectif",
		Short: "Effectif engine CLI - Size workforce requirements from operational volumes",
		Long:  `A CLI tool for running workforce sizing simulations, centre scoring campaigns, and serving both over HTTP.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.logger != nil {
				app.logger.Sync()
			}
		},
	}

	// Add persistent environment flag
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (test, prod, etc.)")

	rootCmd.AddCommand(simulateCmd())
	rootCmd.AddCommand(scoreCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(referentialCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, store, and scorer
func initApp() error {
	var err error
	app = &App{
		ctx: context.Background(),
	}

	// Initialize logger
	app.logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.logger.Info("Starting application", zap.String("environment", env))

	// Load configuration
	app.logger.Info("Loading configuration")
	app.cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.logger.Debug("Configuration loaded successfully")

	// Build the scoring engine
	app.scorer, err = app.cfg.BuildScorer()
	if err != nil {
		return fmt.Errorf("failed to build scorer: %w", err)
	}

	// Initialize the simulation store: PostgreSQL when configured,
	// otherwise YAML files
	if app.cfg.PostgresDSN != "" {
		app.logger.Info("Connecting to database")
		app.database, err = postgres.NewDB(app.ctx, app.cfg.PostgresDSN)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := app.database.RunMigrations(app.ctx); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		app.store = app.database
		app.logger.Info("Database initialized successfully")
	} else {
		app.logger.Info("Loading scenario files",
			zap.String("referential", app.cfg.ReferentialPath),
			zap.String("scenario", app.cfg.ScenarioPath))
		store, err := filestore.New(app.cfg.ReferentialPath, app.cfg.ScenarioPath)
		if err != nil {
			return fmt.Errorf("failed to load scenario files: %w", err)
		}
		app.store = store
	}

	// Optional remote scoring backend
	if app.cfg.ScoringBackendURL != "" {
		app.client = scoringclient.NewClient(app.cfg.ScoringBackendURL)
		app.logger.Info("Using authoritative scoring backend", zap.String("url", app.cfg.ScoringBackendURL))
	}

	return nil
}

// Command definitions

func simulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate <scope> [scope_id]",
		Short: "Run a sizing simulation over the given scope",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope := model.Scope(args[0])
			var scopeID string
			if len(args) > 1 {
				scopeID = args[1]
			}

			productivity, _ := cmd.Flags().GetFloat64("productivity")
			idleMinutes, _ := cmd.Flags().GetFloat64("idle-minutes")

			params := model.DefaultParameters()
			params.ProductivityPct = productivity
			params.IdleMinutesPerDay = idleMinutes
			if app.cfg.WorkingDaysPerYear > 0 {
				params.WorkingDaysPerYear = app.cfg.WorkingDaysPerYear
			}
			if app.cfg.BaseShiftHours > 0 {
				params.BaseShiftHours = app.cfg.BaseShiftHours
			}

			resp, err := services.Simulate(app.ctx, app.store, app.logger, model.SimulationRequest{
				Scope:      scope,
				ScopeID:    scopeID,
				Parameters: params,
			})
			if err != nil {
				return err
			}

			printSimulation(resp)

			// Parse-time findings from scenario files
			if fs, ok := app.store.(*filestore.Store); ok && len(fs.DataWarnings()) > 0 {
				fmt.Printf("⚠ %d scenario file warnings:\n", len(fs.DataWarnings()))
				for _, warning := range fs.DataWarnings() {
					fmt.Printf("  [%s] %s\n", warning.Code, warning.Detail)
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().Float64("productivity", 100, "Productivity percentage applied to the base shift")
	cmd.Flags().Float64("idle-minutes", 0, "Unproductive minutes per day")

	return cmd
}

func scoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <metrics_file>",
		Short: "Run a scoring campaign from a JSON metrics file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read metrics file: %w", err)
			}

			var req model.ScoringRequest
			if err := json.Unmarshal(data, &req); err != nil {
				return fmt.Errorf("failed to parse metrics file: %w", err)
			}

			resp, err := services.ScoreCampaign(app.ctx, app.client, app.scorer, app.logger, req)
			if err != nil {
				return err
			}

			printScoring(resp)
			return nil
		},
	}
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the simulation and scoring API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			if addr == "" {
				addr = app.cfg.ServerAddr
			}
			if addr == "" {
				addr = ":8080"
			}

			server := httpserver.NewServer(app.store, app.scorer, app.logger)
			return server.ListenAndServe(addr)
		},
	}

	cmd.Flags().String("addr", "", "Listen address (defaults to serverAddr from config, then :8080)")

	return cmd
}

func referentialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "referential",
		Short: "Manage the task-time referential",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the referential tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.store.GetTasks(app.ctx)
			if err != nil {
				return fmt.Errorf("failed to list tasks: %w", err)
			}

			fmt.Printf("\nFound %d tasks:\n\n", len(tasks))
			for _, task := range tasks {
				fmt.Printf("- %-12s %-30s %6.2f min/%s [%s]\n",
					task.Code, task.Name, task.UnitTimeMinutes, task.Unit, task.Family)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "load <referential_file>",
		Short: "Load a YAML referential into the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.database == nil {
				return fmt.Errorf("referential load requires a configured postgresDSN")
			}

			ref, err := referential.LoadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to load referential file: %w", err)
			}

			if err := app.database.ReplaceTasks(app.ctx, ref.Tasks()); err != nil {
				return fmt.Errorf("failed to store referential: %w", err)
			}

			fmt.Printf("\n✓ Loaded %d tasks into the referential\n", ref.Len())
			return nil
		},
	})

	return cmd
}

func printSimulation(resp *model.SimulationResponse) {
	fmt.Printf("\n✓ Simulation %s completed in %dms\n\n", resp.Metadata.SimulationID, resp.Metadata.DurationMs)

	fmt.Printf("%-10s %-30s %10s %8s %8s %6s %-10s\n",
		"SCOPE", "LABEL", "ETP CALC", "ARRONDI", "EFFECTIF", "ECART", "DECISION")
	for _, row := range resp.Rows {
		etp := fmt.Sprintf("%.2f", row.EtpCalcule)
		if row.Undefined {
			etp = "n/a"
		}
		fmt.Printf("%-10s %-30s %10s %8d %8d %+6d %-10s\n",
			row.Scope, row.Label, etp, row.EtpArrondi, row.EffectifActuel, row.Ecart, row.Decision)
	}

	fmt.Printf("\nKPIs: etp_actuel=%d etp_calcule=%.2f ecart_global=%+d centres=%d\n",
		resp.KPIs.EtpActuel, resp.KPIs.EtpCalcule, resp.KPIs.EcartGlobal, resp.KPIs.NbCentres)

	if len(resp.Warnings) > 0 {
		fmt.Printf("\n⚠ %d data-quality warnings:\n", len(resp.Warnings))
		for _, warning := range resp.Warnings {
			fmt.Printf("  [%s] %s\n", warning.Code, warning.Detail)
		}
	}
	fmt.Println()
}

func printScoring(resp *model.ScoringResponse) {
	fmt.Printf("\n✓ Campaign %s scored %d centres\n\n", resp.CampaignID, resp.Summary.Total)

	fmt.Printf("%-12s %8s %8s %10s %-14s %-15s\n",
		"CENTRE", "SCORE", "CURRENT", "SIMULATED", "IMPACT", "PROVENANCE")
	for _, result := range resp.Results {
		fmt.Printf("%-12s %8.3f %8s %10s %-14s %-15s\n",
			result.CentreID, result.GlobalScore, result.CurrentClasse,
			result.SimulatedClasse, result.Impact, result.Provenance)
	}

	fmt.Printf("\nSummary: %d impacted (%d promotions, %d downgrades)\n\n",
		resp.Summary.Impacted, resp.Summary.Promotions, resp.Summary.Downgrades)
}
