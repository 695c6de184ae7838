package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/intake/internal/cli/formatter"
	"github.com/alexanderramin/intake/internal/contract"
	"github.com/alexanderramin/intake/internal/domain"
	"github.com/spf13/cobra"
)

func newQuestionsCmd(app *App) *cobra.Command {
	var mode, lang, show string

	cmd := &cobra.Command{
		Use:   "questions BUSINESS",
		Short: "Show the questions currently worth asking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveBusinessID(ctx, app, args[0])
			if err != nil {
				return err
			}

			req := contract.NewActiveQuestionsRequest(id)
			if mode != "" {
				req.Mode = domain.Mode(mode)
			}
			if lang != "" {
				req.Lang = lang
			}

			resp, err := app.Onboarding.ActiveQuestions(ctx, req)
			if err != nil {
				return err
			}

			if show != "" {
				for _, q := range resp.Questions {
					if q.ID == show {
						fmt.Printf("%s\n", formatter.FormatQuestionDetail(q))
						return nil
					}
				}
				return fmt.Errorf("question %q is not currently active", show)
			}

			fmt.Printf("%s\n", formatter.FormatQuestionList(resp))
			return nil
		},
	}

	addOnboardingFlags(cmd.Flags(), &mode, &lang)
	cmd.Flags().StringVar(&show, "show", "", "Show one active question in detail by id")

	return cmd
}
