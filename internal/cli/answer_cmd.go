package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/intake/internal/cli/formatter"
	"github.com/alexanderramin/intake/internal/contract"
	"github.com/alexanderramin/intake/internal/domain"
	"github.com/spf13/cobra"
)

func newAnswerCmd(app *App) *cobra.Command {
	var mode, lang string

	cmd := &cobra.Command{
		Use:   "answer BUSINESS QUESTION VALUE",
		Short: "Record an answer to an active question",
		Long: `Record an answer. The value format depends on the question's input:
option id for choices, comma-separated ids for multi-choice, a number,
yes/no, or free text.`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveBusinessID(ctx, app, args[0])
			if err != nil {
				return err
			}
			questionID := args[1]
			raw := strings.Join(args[2:], " ")

			activeReq := contract.NewActiveQuestionsRequest(id)
			if mode != "" {
				activeReq.Mode = domain.Mode(mode)
			}
			active, err := app.Onboarding.ActiveQuestions(ctx, activeReq)
			if err != nil {
				return err
			}

			var view *contract.QuestionView
			for i := range active.Questions {
				if active.Questions[i].ID == questionID {
					view = &active.Questions[i]
					break
				}
			}
			if view == nil {
				return fmt.Errorf("question %q is not currently active for this business", questionID)
			}

			value, err := parseAnswerValue(view.Input.Kind, raw)
			if err != nil {
				return err
			}

			req := contract.NewRecordAnswerRequest(id, questionID, value)
			req.Mode = activeReq.Mode
			if lang != "" {
				req.Lang = lang
			}
			resp, err := app.Onboarding.RecordAnswer(ctx, req)
			if err != nil {
				return err
			}

			fmt.Printf("Recorded %s. Precision score: %d\n", questionID, resp.Score)
			if out := formatter.FormatUnlocked(resp.Unlocked); out != "" {
				fmt.Print(out)
			}
			return nil
		},
	}

	addOnboardingFlags(cmd.Flags(), &mode, &lang)

	return cmd
}

// parseAnswerValue converts the raw CLI string into the typed value the
// question's input kind expects.
func parseAnswerValue(kind domain.InputKind, raw string) (any, error) {
	raw = strings.TrimSpace(raw)
	switch kind {
	case domain.InputMultiChoice:
		parts := strings.Split(raw, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out, nil
	case domain.InputNumber, domain.InputScale:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("expected a number, got %q", raw)
		}
		return n, nil
	case domain.InputYesNo:
		switch strings.ToLower(raw) {
		case "yes", "y", "true":
			return true, nil
		case "no", "n", "false":
			return false, nil
		}
		return nil, fmt.Errorf("expected yes or no, got %q", raw)
	default:
		return raw, nil
	}
}
