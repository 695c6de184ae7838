package domain

import "time"

// Business is the persisted onboarding document header. The flat profile
// map and the answer history are stored alongside it; PrecisionScore is a
// cached view recomputed on every answer, never the source of truth.
type Business struct {
	ID             string
	Name           string
	Category       string
	PreferredMode  Mode
	PrecisionScore int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AnswerRecord is one append-only answer-log entry. Value holds the raw
// answer as it was written to the profile.
type AnswerRecord struct {
	ID         string
	BusinessID string
	QuestionID string
	StorePath  string
	Value      any
	CreatedAt  time.Time
}
