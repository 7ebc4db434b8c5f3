// Package cli is the command-line entry point: it serves the HTTP API and
// offers one-shot commands that drive the same services.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"multi-ai/backend/internal/app"
	"multi-ai/backend/internal/config"
)

// state is shared by the commands of one root command tree.
type state struct {
	cfg *config.Config
}

// withApp builds the application, runs fn and closes it.
func (s *state) withApp(fn func(a *app.App) error) error {
	a, err := app.NewApp(s.cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			slog.Error("Failed to close storage", "error", err)
		}
	}()
	return fn(a)
}

// NewRootCmd assembles the command tree.
func NewRootCmd() *cobra.Command {
	s := &state{}

	root := &cobra.Command{
		Use:   "multiai",
		Short: "Ask several AI providers at once",
		Long: `multiai sends one prompt to several AI providers in parallel and keeps
the answers side by side in local conversations.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			app.SetupLogger(cfg.LogLevel)
			app.LogConfigSource()
			s.cfg = cfg
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default: ./.env)")
	flags.String("log-level", "INFO", "log level (DEBUG/INFO/WARN/ERROR)")
	flags.String("storage", config.DriverSQLite, "storage driver (sqlite/redis)")
	flags.String("database", "", "SQLite database path")
	flags.String("redis-addr", "", "Redis address")

	_ = viper.BindPFlag(config.ConfigFileKey, flags.Lookup("config"))
	_ = viper.BindPFlag("LOG_LEVEL", flags.Lookup("log-level"))
	_ = viper.BindPFlag("STORAGE_DRIVER", flags.Lookup("storage"))
	_ = viper.BindPFlag("DATABASE_PATH", flags.Lookup("database"))
	_ = viper.BindPFlag("REDIS_ADDR", flags.Lookup("redis-addr"))

	root.AddCommand(
		newServeCmd(s),
		newAskCmd(s),
		newProvidersCmd(s),
		newSetKeyCmd(s),
		newExportCmd(s),
		newImportCmd(s),
	)
	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
