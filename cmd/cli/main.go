package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/iho/revsync/internal/adapter/http/dto"
	"github.com/iho/revsync/internal/app"
	"github.com/iho/revsync/internal/domain"
	"github.com/iho/revsync/internal/infrastructure/auth"
	"github.com/iho/revsync/internal/infrastructure/config"
	"github.com/iho/revsync/internal/infrastructure/logger"
	"github.com/iho/revsync/internal/infrastructure/postgres"
	"github.com/iho/revsync/internal/usecase"
)

var timeout time.Duration

// Replaced in tests.
var (
	loadConfig = config.Load
	openApp    = func(ctx context.Context, cfg *config.Config) (*app.App, error) {
		log := logger.NewWithWriter(logger.Config{Level: cfg.LogLevel, Format: "console", Process: "cli"}, os.Stderr)
		return app.New(ctx, cfg, log, prometheus.NewRegistry())
	}
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "revsync",
		Short:         "Revenue sync operator CLI",
		Long:          `Runs syncs, inspects and repairs account revenue totals, and manages the schema.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Minute, "Overall command timeout")

	rootCmd.AddCommand(
		syncCmd(),
		diagnoseCmd(),
		repairCmd(),
		reactivateCmd(),
		migrateCmd(),
		tokenCmd(),
	)
	return rootCmd
}

// withApp loads configuration, builds the engine and runs fn under the command timeout.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	a, err := openApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(ctx, a)
}

func syncCmd() *cobra.Command {
	var (
		accountIDs []string
		fullResync bool
	)

	cmd := &cobra.Command{
		Use:       "sync [heartbeat|comprehensive|manual]",
		Short:     "Run one sync pass",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(domain.CadenceHeartbeat), string(domain.CadenceComprehensive), string(domain.CadenceManual)},
		RunE: func(cmd *cobra.Command, args []string) error {
			cadence := domain.CadenceManual
			if len(args) == 1 {
				parsed, err := domain.ParseCadence(args[0])
				if err != nil {
					return err
				}
				cadence = parsed
			}

			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				run, err := a.Sync.Run(ctx, usecase.RunOptions{
					Cadence:    cadence,
					AccountIDs: accountIDs,
					FullResync: fullResync,
				})
				if err != nil {
					return err
				}
				printJSON(cmd.OutOrStdout(), dto.RunFromDomain(run))
				return nil
			})
		},
	}

	cmd.Flags().StringSliceVar(&accountIDs, "account", nil, "Restrict the run to these account IDs")
	cmd.Flags().BoolVar(&fullResync, "full-resync", false, "Fetch from the beginning of history")
	return cmd
}

func diagnoseCmd() *cobra.Command {
	var (
		name     string
		upstream bool
	)

	cmd := &cobra.Command{
		Use:   "diagnose [account-id]",
		Short: "Compare cached totals with the ledger",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (len(args) == 0) == (name == "") {
				return fmt.Errorf("pass either an account id or --name")
			}

			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				if name != "" {
					diagnoses, err := a.Diagnostics.DiagnoseByName(ctx, name, upstream)
					if err != nil {
						return err
					}
					out := make([]*dto.DiagnosisResponse, 0, len(diagnoses))
					for _, d := range diagnoses {
						out = append(out, dto.DiagnosisFromDomain(d))
					}
					printJSON(cmd.OutOrStdout(), out)
					return nil
				}

				d, err := a.Diagnostics.Diagnose(ctx, args[0], upstream)
				if err != nil {
					return err
				}
				printJSON(cmd.OutOrStdout(), dto.DiagnosisFromDomain(d))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Search accounts by name instead of id")
	cmd.Flags().BoolVar(&upstream, "upstream", false, "Also fetch the platform's own earnings total")
	return cmd
}

func repairCmd() *cobra.Command {
	var actor string

	cmd := &cobra.Command{
		Use:   "repair <account-id>",
		Short: "Force the cached total to the ledger sum, even if it decreases",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				result, err := a.Diagnostics.Repair(ctx, args[0], actor)
				if err != nil {
					return err
				}
				printJSON(cmd.OutOrStdout(), dto.ReconcileFromDomain(result))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&actor, "actor", defaultActor(), "Who is requesting the repair")
	return cmd
}

func reactivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reactivate <account-id>",
		Short: "Return a failed account to the sync rotation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				account, err := a.AccountUC.Reactivate(ctx, args[0])
				if err != nil {
					return err
				}
				printJSON(cmd.OutOrStdout(), dto.AccountFromDomain(account))
				return nil
			})
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database schema migrations",
	}

	run := func(fn func(cfg *config.Config, w io.Writer) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			if cfg.StorageDriver != config.StorageDriverPostgres {
				return fmt.Errorf("migrations require STORAGE_DRIVER=%s", config.StorageDriverPostgres)
			}
			return fn(cfg, cmd.OutOrStdout())
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: run(func(cfg *config.Config, w io.Writer) error {
				if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
					return err
				}
				fmt.Fprintln(w, "migrations applied")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the last migration",
			Args:  cobra.NoArgs,
			RunE: run(func(cfg *config.Config, w io.Writer) error {
				if err := postgres.RunMigrationsDown(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
					return err
				}
				fmt.Fprintln(w, "rolled back one migration")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show the current schema version",
			Args:  cobra.NoArgs,
			RunE: run(func(cfg *config.Config, w io.Writer) error {
				status, err := postgres.Status(cfg.DatabaseURL, cfg.MigrationsPath)
				if err != nil {
					return err
				}
				printJSON(w, status)
				return nil
			}),
		},
	)
	return cmd
}

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Operator API tokens",
	}

	var (
		id    string
		email string
		role  string
		ttl   time.Duration
	)

	issue := &cobra.Command{
		Use:   "issue",
		Short: "Issue a signed operator token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			if cfg.JWTSecret == "" {
				return fmt.Errorf("JWT_SECRET is not set")
			}
			if ttl <= 0 {
				ttl = cfg.JWTExpiration
			}

			parsed, err := domain.ParseRole(role)
			if err != nil {
				return err
			}

			manager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)
			token, err := manager.GenerateWithTTL(&domain.Operator{ID: id, Email: email, Role: parsed}, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	issue.Flags().StringVar(&id, "id", "", "Operator ID")
	issue.Flags().StringVar(&email, "email", "", "Operator email")
	issue.Flags().StringVar(&role, "role", string(domain.RoleViewer), "Role: viewer, operator or admin")
	issue.Flags().DurationVar(&ttl, "ttl", 0, "Token lifetime (defaults to JWT_EXPIRATION)")
	_ = issue.MarkFlagRequired("id")

	cmd.AddCommand(issue)
	return cmd
}

func defaultActor() string {
	if u := os.Getenv("USER"); u != "" {
		return "cli:" + u
	}
	return "cli"
}

func printJSON(w io.Writer, v any) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode output: %v\n", err)
	}
}
