package cli

import (
	"github.com/alexanderramin/intake/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Businesses service.BusinessService
	Onboarding service.OnboardingService

	// IsInteractive reports whether stdin is a terminal; the onboarding
	// wizard refuses to start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "intake" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "intake",
		Short: "Adaptive business onboarding",
	}

	root.AddCommand(
		newBusinessCmd(app),
		newQuestionsCmd(app),
		newAnswerCmd(app),
		newScoreCmd(app),
		newOnboardCmd(app),
		newBrowseCmd(app),
	)

	return root
}
