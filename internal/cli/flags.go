package cli

import "github.com/spf13/pflag"

// addOnboardingFlags registers the mode and language flags shared by every
// question-facing command.
func addOnboardingFlags(fs *pflag.FlagSet, mode, lang *string) {
	fs.StringVar(mode, "mode", "", "Override the preferred mode (quick|full)")
	fs.StringVar(lang, "lang", "", "Language for question text (e.g. en, hu)")
}
