package domain

// Mode controls how exhaustive an onboarding run is. Questions declare the
// mode(s) they belong to; callers request either quick or full.
type Mode string

const (
	ModeQuick Mode = "quick"
	ModeFull  Mode = "full"
	ModeBoth  Mode = "both"
	// ModeComplete is a legacy alias for ModeBoth kept because older
	// catalogs still declare it. Treated identically to "both".
	ModeComplete Mode = "complete"
)

// ValidRequestModes is the canonical set of modes a caller may request.
var ValidRequestModes = map[Mode]bool{
	ModeQuick: true,
	ModeFull:  true,
}

// Matches reports whether a question declared with mode m is available
// when the caller requested the given mode. "both"/"complete" match either
// request; "quick"/"full" must match exactly.
func (m Mode) Matches(requested Mode) bool {
	switch m {
	case ModeBoth, ModeComplete, "":
		return true
	default:
		return m == requested
	}
}

// InputKind tags the input specification a question carries. The engine
// only emits the tag and its parameters; rendering is the host's concern.
type InputKind string

const (
	InputSingleChoice InputKind = "single_choice"
	InputMultiChoice  InputKind = "multi_choice"
	InputNumber       InputKind = "number"
	InputText         InputKind = "text"
	InputYesNo        InputKind = "yes_no"
	InputScale        InputKind = "scale"
)

// FlowKind selects how a vertical orders its questions.
type FlowKind string

const (
	// FlowOrdered uses curated id lists (quick order plus full-mode
	// additions). Used by the gastro vertical.
	FlowOrdered FlowKind = "ordered"
	// FlowCatalogOrder walks the catalog in declaration order.
	FlowCatalogOrder FlowKind = "catalog_order"
)

// Well-known profile paths the condition evaluator reads directly.
const (
	PathChannels     = "business.channels"
	PathBusinessType = "business.type"
)

// DefaultLang is the fallback language for localized question content.
const DefaultLang = "en"
