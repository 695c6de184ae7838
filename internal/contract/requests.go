package contract

import (
	"fmt"

	"github.com/alexanderramin/intake/internal/domain"
)

// ActiveQuestionsRequest asks for the currently applicable questions of
// a business, resolved for one language.
type ActiveQuestionsRequest struct {
	BusinessID string
	Mode       domain.Mode
	Lang       string
}

// NewActiveQuestionsRequest builds a request with defaults: the
// business's preferred mode (signalled by the empty mode) and English.
func NewActiveQuestionsRequest(businessID string) ActiveQuestionsRequest {
	return ActiveQuestionsRequest{
		BusinessID: businessID,
		Lang:       domain.DefaultLang,
	}
}

// ActiveQuestionsResponse carries the composed list plus the score
// snapshot the same question set implies.
type ActiveQuestionsResponse struct {
	Business  BusinessView
	Mode      domain.Mode
	Questions []QuestionView
	Answered  int
	Total     int
	Score     int
}

// RecordAnswerRequest stores one answer. Value is the already-typed
// answer (string, []string, number or bool depending on input kind).
type RecordAnswerRequest struct {
	BusinessID string
	QuestionID string
	Value      any
	Mode       domain.Mode
	Lang       string
}

func NewRecordAnswerRequest(businessID, questionID string, value any) RecordAnswerRequest {
	return RecordAnswerRequest{
		BusinessID: businessID,
		QuestionID: questionID,
		Value:      value,
		Lang:       domain.DefaultLang,
	}
}

// RecordAnswerResponse reports the recalculated score and any
// newly-unlocked questions the answer revealed.
type RecordAnswerResponse struct {
	Business BusinessView
	Score    int
	Unlocked []QuestionView
}

// ScoreRequest asks for the precision score of one business.
type ScoreRequest struct {
	BusinessID string
	Mode       domain.Mode
}

// ScoreBreakdownArea is the per-area slice of a score response.
type ScoreBreakdownArea struct {
	Area     string
	Answered int
	Total    int
}

// ScoreResponse is the score snapshot with its per-area breakdown.
type ScoreResponse struct {
	Business BusinessView
	Mode     domain.Mode
	Answered int
	Total    int
	Score    int
	Areas    []ScoreBreakdownArea
}

// ErrorCode classifies service failures for presentation.
type ErrorCode string

const (
	ErrNotFound        ErrorCode = "NOT_FOUND"
	ErrInvalidMode     ErrorCode = "INVALID_MODE"
	ErrUnknownQuestion ErrorCode = "UNKNOWN_QUESTION"
	ErrInvalidAnswer   ErrorCode = "INVALID_ANSWER"
	ErrInternal        ErrorCode = "INTERNAL"
)

// ServiceError is the typed error returned across the service boundary.
type ServiceError struct {
	Code    ErrorCode
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewServiceError(code ErrorCode, format string, args ...any) *ServiceError {
	return &ServiceError{Code: code, Message: fmt.Sprintf(format, args...)}
}
