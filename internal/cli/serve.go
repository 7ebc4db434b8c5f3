package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"multi-ai/backend/internal/app"
)

func newServeCmd(s *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the local HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.withApp(func(a *app.App) error {
				ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
				defer stop()
				return a.Serve(ctx)
			})
		},
	}

	flags := cmd.Flags()
	flags.StringP("host", "H", "127.0.0.1", "address to listen on")
	flags.IntP("port", "p", 8000, "port to listen on")

	_ = viper.BindPFlag("APP_HOST", flags.Lookup("host"))
	_ = viper.BindPFlag("APP_PORT", flags.Lookup("port"))
	return cmd
}
