package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/intake/internal/cli/formatter"
	"github.com/alexanderramin/intake/internal/contract"
	"github.com/alexanderramin/intake/internal/domain"
	"github.com/spf13/cobra"
)

func newScoreCmd(app *App) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "score BUSINESS",
		Short: "Show the precision score and its breakdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveBusinessID(ctx, app, args[0])
			if err != nil {
				return err
			}

			req := contract.ScoreRequest{BusinessID: id}
			if mode != "" {
				req.Mode = domain.Mode(mode)
			}
			resp, err := app.Onboarding.Score(ctx, req)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatScore(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "Override the preferred mode (quick|full)")

	return cmd
}
