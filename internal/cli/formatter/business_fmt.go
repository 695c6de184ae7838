package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/intake/internal/domain"
)

// FormatBusinessList renders a styled business list inside a bordered box.
func FormatBusinessList(businesses []*domain.Business) string {
	headers := []string{"ID", "NAME", "CATEGORY", "MODE", "SCORE"}
	rows := make([][]string, 0, len(businesses))

	for _, b := range businesses {
		rows = append(rows, []string{
			TruncID(b.ID),
			Bold(b.Name),
			CategoryBadge(b.Category),
			StyleFg.Render(string(b.PreferredMode)),
			ScoreStyle(b.PrecisionScore).Render(fmt.Sprintf("%d", b.PrecisionScore)),
		})
	}

	return RenderBox("Businesses", RenderTable(headers, rows))
}

// FormatBusinessInspect renders a single business card.
func FormatBusinessInspect(b *domain.Business, profile domain.ProfileMap) string {
	var sb strings.Builder

	sb.WriteString(StyleBold.Render(b.Name) + "\n")
	sb.WriteString(CategoryBadge(b.Category) + "\n\n")

	sb.WriteString(fmt.Sprintf("%s  %s\n", Dim("UUID "), TruncID(b.ID)))
	sb.WriteString(fmt.Sprintf("%s  %s\n", Dim("MODE "), ModeBadge(b.PreferredMode)))
	sb.WriteString(fmt.Sprintf("%s  %s\n", Dim("SCORE"),
		ScoreStyle(b.PrecisionScore).Render(fmt.Sprintf("%d", b.PrecisionScore))))

	if len(profile) > 0 {
		sb.WriteString("\n" + Header("Profile") + "\n")
		for _, path := range sortedPaths(profile) {
			sb.WriteString(fmt.Sprintf("%s %s\n", Dim(path+":"), StyleFg.Render(fmt.Sprintf("%v", profile[path]))))
		}
	}

	return RenderBox("", sb.String())
}

func sortedPaths(profile domain.ProfileMap) []string {
	paths := make([]string, 0, len(profile))
	for p := range profile {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
