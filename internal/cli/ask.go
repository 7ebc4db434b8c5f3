package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"multi-ai/backend/internal/app"
	"multi-ai/backend/internal/service"
)

func newAskCmd(s *state) *cobra.Command {
	var (
		providers      []string
		conversationID string
	)

	cmd := &cobra.Command{
		Use:   "ask <prompt>",
		Short: "Send a prompt to several providers and print the answers as they arrive",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.withApp(func(a *app.App) error {
				if len(providers) == 0 {
					settings, err := a.Settings.Get(cmd.Context())
					if err != nil {
						return err
					}
					providers = settings.DefaultProviders
				}

				out := cmd.OutOrStdout()
				req := &service.SendRequest{
					ConversationID: conversationID,
					Content:        strings.Join(args, " "),
					Providers:      providers,
				}
				conv, err := a.Chat.Send(cmd.Context(), req, func(e service.TurnEvent) {
					printTurnEvent(out, e)
				})
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(out, "conversation: %s\n", conv.ID)
				return err
			})
		},
	}

	cmd.Flags().StringSliceVarP(&providers, "providers", "P", nil, "providers to ask (default: the saved default providers)")
	cmd.Flags().StringVar(&conversationID, "conversation", "", "continue an existing conversation")
	return cmd
}

func printTurnEvent(w io.Writer, e service.TurnEvent) {
	m := e.Message
	header := m.Provider
	if m.LatencyMs != nil {
		header = fmt.Sprintf("%s (%d ms)", m.Provider, *m.LatencyMs)
	}
	if m.IsError {
		header += " [" + e.ErrorCode + "]"
	}
	_, _ = fmt.Fprintf(w, "== %s ==\n%s\n\n", header, m.Content)
}
