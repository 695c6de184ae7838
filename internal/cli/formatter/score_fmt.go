package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/intake/internal/contract"
)

// FormatScore renders the precision score with its per-area breakdown.
func FormatScore(resp *contract.ScoreResponse) string {
	var b strings.Builder

	score := ScoreStyle(resp.Score).Render(fmt.Sprintf("%d", resp.Score))
	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Precision score:"), score))
	b.WriteString(ModeBadge(resp.Mode) + "\n\n")

	pct := 0.0
	if resp.Total > 0 {
		pct = float64(resp.Answered) / float64(resp.Total)
	}
	b.WriteString(fmt.Sprintf("%s %s\n",
		RenderProgress(pct, 24),
		Dim(fmt.Sprintf("%d of %d answered", resp.Answered, resp.Total))))

	if len(resp.Areas) > 0 {
		b.WriteString("\n" + Header("By area") + "\n")
		for _, area := range resp.Areas {
			areaPct := 0.0
			if area.Total > 0 {
				areaPct = float64(area.Answered) / float64(area.Total)
			}
			b.WriteString(fmt.Sprintf("%-12s %s %s\n",
				area.Area,
				RenderProgress(areaPct, 14),
				Dim(fmt.Sprintf("%d/%d", area.Answered, area.Total))))
		}
	}

	return RenderBox(resp.Business.Name, b.String())
}
