package formatter

import (
	"strings"

	"github.com/alexanderramin/intake/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// ModeBadge returns a styled onboarding-mode indicator.
func ModeBadge(mode domain.Mode) string {
	switch mode {
	case domain.ModeQuick:
		return StyleBlue.Render("◆ QUICK") + Dim(" — essentials only")
	case domain.ModeFull:
		return StylePurple.Render("◆ FULL") + Dim(" — complete profile")
	default:
		return StyleDim.Render("◆ " + strings.ToUpper(string(mode)))
	}
}

// AnsweredPill returns a colored answered/open indicator.
func AnsweredPill(answered bool) string {
	if answered {
		return StyleGreen.Render("✔ answered")
	}
	return StyleDim.Render("○ open")
}

// InputBadge returns a short label for an input kind.
func InputBadge(kind domain.InputKind) string {
	switch kind {
	case domain.InputSingleChoice:
		return StyleBlue.Render("choice")
	case domain.InputMultiChoice:
		return StyleBlue.Render("multi")
	case domain.InputNumber:
		return StylePurple.Render("number")
	case domain.InputScale:
		return StylePurple.Render("scale")
	case domain.InputYesNo:
		return StyleYellow.Render("yes/no")
	case domain.InputText:
		return StyleFg.Render("text")
	default:
		return StyleDim.Render(string(kind))
	}
}

// CategoryBadge returns a capitalized, purple-styled category label.
func CategoryBadge(c string) string {
	if c == "" {
		return StyleDim.Render("--")
	}
	label := strings.ToUpper(c[:1]) + strings.ReplaceAll(c[1:], "_", " ")
	return StylePurple.Render(label)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}
