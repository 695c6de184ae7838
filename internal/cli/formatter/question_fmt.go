package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/intake/internal/contract"
)

// FormatQuestionList renders the active question list inside a bordered
// box, headed by the mode badge and the running score bar.
func FormatQuestionList(resp *contract.ActiveQuestionsResponse) string {
	headers := []string{"#", "ID", "QUESTION", "INPUT", "AREA", "STATUS"}
	rows := make([][]string, 0, len(resp.Questions))

	for i, q := range resp.Questions {
		rows = append(rows, []string{
			Dim(fmt.Sprintf("%d", i+1)),
			StyleFg.Render(q.ID),
			Bold(q.Title),
			InputBadge(q.Input.Kind),
			Dim(q.ScoreArea),
			AnsweredPill(q.Answered),
		})
	}

	var b strings.Builder
	b.WriteString(ModeBadge(resp.Mode) + "\n")
	pct := 0.0
	if resp.Total > 0 {
		pct = float64(resp.Answered) / float64(resp.Total)
	}
	b.WriteString(fmt.Sprintf("%s %s\n\n",
		RenderProgress(pct, 20),
		Dim(fmt.Sprintf("%d of %d answered", resp.Answered, resp.Total))))
	b.WriteString(RenderTable(headers, rows))

	return RenderBox(resp.Business.Name, b.String())
}

// FormatQuestionDetail renders one question with its options and help.
func FormatQuestionDetail(q contract.QuestionView) string {
	var b strings.Builder

	b.WriteString(Bold(q.Title) + "\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("ID   "), StyleFg.Render(q.ID)))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("INPUT"), InputBadge(q.Input.Kind)))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("AREA "), StyleFg.Render(q.ScoreArea)))
	if q.Help != "" {
		b.WriteString("\n" + Dim(q.Help) + "\n")
	}
	if len(q.Input.Options) > 0 {
		b.WriteString("\n")
		for _, opt := range q.Input.Options {
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				StyleBlue.Render("•"), StyleFg.Render(opt.Label), Dim("("+opt.ID+")")))
		}
	}
	if q.Input.Unit != "" {
		b.WriteString("\n" + Dim(fmt.Sprintf("%d–%d %s", q.Input.Min, q.Input.Max, q.Input.Unit)) + "\n")
	}

	return RenderBox("", b.String())
}

// FormatUnlocked renders the questions an answer just revealed.
func FormatUnlocked(unlocked []contract.QuestionView) string {
	if len(unlocked) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(StyleGreen.Render("Unlocked:") + "\n")
	for _, q := range unlocked {
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			StyleGreen.Render("+"), Bold(q.Title), Dim("("+q.ID+")")))
	}
	return b.String()
}
