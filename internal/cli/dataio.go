package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"multi-ai/backend/internal/app"
	"multi-ai/backend/internal/model"
)

func newExportCmd(s *state) *cobra.Command {
	var (
		out string
		ids []string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write conversations, folders and templates to a JSON bundle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.withApp(func(a *app.App) error {
				var (
					bundle *model.Bundle
					err    error
				)
				if len(ids) > 0 {
					bundle, err = a.Data.ExportSelected(cmd.Context(), ids)
				} else {
					bundle, err = a.Data.ExportAll(cmd.Context())
				}
				if err != nil {
					return err
				}

				w := cmd.OutOrStdout()
				if out != "" && out != "-" {
					f, err := os.Create(out)
					if err != nil {
						return fmt.Errorf("could not create %s: %w", out, err)
					}
					defer f.Close()
					w = f
				}
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(bundle)
			})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: stdout)")
	cmd.Flags().StringSliceVar(&ids, "ids", nil, "export only these conversation ids")
	return cmd
}

func newImportCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Merge a JSON bundle into the workspace; use - for stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			return s.withApp(func(a *app.App) error {
				summary, err := a.Data.Import(cmd.Context(), raw)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %d conversations, %d folders, %d templates\n",
					summary.Conversations, summary.Folders, summary.Templates)
				return err
			})
		},
	}
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}
	return raw, nil
}
