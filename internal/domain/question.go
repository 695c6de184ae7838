package domain

// UIText is the localized display content of a question.
type UIText struct {
	Title string
	Help  string
}

// Option is one selectable answer for choice inputs. Labels are keyed by
// language code and fall back to DefaultLang at render time.
type Option struct {
	ID     string
	Labels map[string]string
}

// InputSpec is the tagged input description a question carries: the kind
// plus exactly the parameters that kind needs. Options is set for choice
// kinds; Min/Max/Step/Unit for numeric kinds. SourceKey, when non-empty,
// asks the composer to resolve options through the injected OptionResolver
// (per-country packs) instead of the static Options list.
type InputSpec struct {
	Kind      InputKind
	Options   []Option
	Min       int
	Max       int
	Step      int
	Unit      string
	SourceKey string
}

// FollowUp is a sub-question spliced in immediately after its parent once
// the parent's recorded answer matches one of WhenOptionIDs. Only
// declaration-order verticals use it.
type FollowUp struct {
	WhenOptionIDs []string
	Question      Question
}

// Question is a single prompt definition. Text is keyed by language code;
// Localize applies the fallback. StorePath is the dot path in the profile
// where the answer is written. BusinessTypes, when non-empty, is an
// allow-list of business-type ids the question is shown for.
type Question struct {
	ID            string
	Step          string
	Mode          Mode
	ScoreArea     string
	Condition     Condition
	StorePath     string
	Text          map[string]UIText
	Input         InputSpec
	ImpactScore   int
	BusinessTypes []string
	FollowUp      *FollowUp
}

// Localize returns the question's display text for lang, falling back to
// DefaultLang and then to any available language. Never panics on missing
// content; a zero UIText is returned for a question with no text at all.
func (q Question) Localize(lang string) UIText {
	if t, ok := q.Text[lang]; ok {
		return t
	}
	if t, ok := q.Text[DefaultLang]; ok {
		return t
	}
	for _, t := range q.Text {
		return t
	}
	return UIText{}
}

// LocalizeOption returns the option label for lang with the same fallback
// chain as Localize. The option id is the last resort.
func LocalizeOption(o Option, lang string) string {
	if l, ok := o.Labels[lang]; ok {
		return l
	}
	if l, ok := o.Labels[DefaultLang]; ok {
		return l
	}
	for _, l := range o.Labels {
		return l
	}
	return o.ID
}
