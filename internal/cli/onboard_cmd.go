package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/intake/internal/cli/formatter"
	"github.com/alexanderramin/intake/internal/contract"
	"github.com/alexanderramin/intake/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newOnboardCmd(app *App) *cobra.Command {
	var mode, lang string

	cmd := &cobra.Command{
		Use:   "onboard BUSINESS",
		Short: "Interactive onboarding wizard",
		Long: `Walk through the open questions one at a time. Answers are saved
immediately, so quitting mid-way loses nothing; newly unlocked questions
join the queue as you go.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("onboarding wizard needs an interactive terminal; use `intake answer` instead")
			}

			ctx := context.Background()
			id, err := resolveBusinessID(ctx, app, args[0])
			if err != nil {
				return err
			}
			return runOnboardingWizard(ctx, app, id, domain.Mode(mode), lang)
		},
	}

	addOnboardingFlags(cmd.Flags(), &mode, &lang)

	return cmd
}

// runOnboardingWizard loops: fetch active questions, ask the first open
// one, record the answer, repeat. The active list is re-fetched after
// every answer because answers unlock and retire questions.
func runOnboardingWizard(ctx context.Context, app *App, businessID string, mode domain.Mode, lang string) error {
	for {
		req := contract.NewActiveQuestionsRequest(businessID)
		req.Mode = mode
		if lang != "" {
			req.Lang = lang
		}
		resp, err := app.Onboarding.ActiveQuestions(ctx, req)
		if err != nil {
			return err
		}

		next := firstOpenQuestion(resp.Questions)
		if next == nil {
			fmt.Printf("All %d questions answered. Precision score: %d\n", resp.Total, resp.Score)
			return nil
		}

		fmt.Printf("%s %s\n",
			formatter.RenderProgress(answeredFraction(resp), 20),
			formatter.Dim(fmt.Sprintf("%d of %d", resp.Answered, resp.Total)))

		form, answerValue := questionForm(*next)
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Printf("Stopped. Precision score so far: %d\n", resp.Score)
				return nil
			}
			return err
		}

		answer := contract.NewRecordAnswerRequest(businessID, next.ID, answerValue())
		answer.Mode = mode
		if lang != "" {
			answer.Lang = lang
		}
		recorded, err := app.Onboarding.RecordAnswer(ctx, answer)
		if err != nil {
			return err
		}
		if out := formatter.FormatUnlocked(recorded.Unlocked); out != "" {
			fmt.Print(out)
		}
	}
}

func firstOpenQuestion(questions []contract.QuestionView) *contract.QuestionView {
	for i := range questions {
		if !questions[i].Answered {
			return &questions[i]
		}
	}
	return nil
}

func answeredFraction(resp *contract.ActiveQuestionsResponse) float64 {
	if resp.Total == 0 {
		return 0
	}
	return float64(resp.Answered) / float64(resp.Total)
}
