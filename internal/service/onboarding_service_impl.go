package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/intake/internal/catalog"
	"github.com/alexanderramin/intake/internal/contract"
	"github.com/alexanderramin/intake/internal/db"
	"github.com/alexanderramin/intake/internal/domain"
	"github.com/alexanderramin/intake/internal/engine"
	"github.com/alexanderramin/intake/internal/repository"
	"github.com/google/uuid"
)

type onboardingService struct {
	businesses repository.BusinessRepo
	profiles   repository.ProfileRepo
	answers    repository.AnswerLogRepo
	registry   *catalog.Registry
	engine     *engine.Engine
	uow        db.UnitOfWork
	observer   UseCaseObserver
}

func NewOnboardingService(
	businesses repository.BusinessRepo,
	profiles repository.ProfileRepo,
	answers repository.AnswerLogRepo,
	registry *catalog.Registry,
	eng *engine.Engine,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) OnboardingService {
	return &onboardingService{
		businesses: businesses,
		profiles:   profiles,
		answers:    answers,
		registry:   registry,
		engine:     eng,
		uow:        uow,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *onboardingService) ActiveQuestions(ctx context.Context, req contract.ActiveQuestionsRequest) (resp *contract.ActiveQuestionsResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "active-questions",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"business_id": req.BusinessID},
		})
	}()

	biz, profile, mode, err := s.loadContext(ctx, req.BusinessID, req.Mode)
	if err != nil {
		return nil, err
	}

	active, err := s.engine.ActiveQuestions(mode, profile, biz.Category)
	if err != nil {
		return nil, mapEngineError(err)
	}

	lang := langOrDefault(req.Lang)
	views := make([]contract.QuestionView, 0, len(active))
	answered := 0
	for _, q := range active {
		view := contract.NewQuestionView(&q, lang, profile)
		if view.Answered {
			answered++
		}
		views = append(views, view)
	}

	return &contract.ActiveQuestionsResponse{
		Business:  contract.NewBusinessView(biz),
		Mode:      mode,
		Questions: views,
		Answered:  answered,
		Total:     len(active),
		Score:     engine.Score(len(active), answered),
	}, nil
}

func (s *onboardingService) RecordAnswer(ctx context.Context, req contract.RecordAnswerRequest) (resp *contract.RecordAnswerResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "record-answer",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields: map[string]any{
				"business_id": req.BusinessID,
				"question_id": req.QuestionID,
			},
		})
	}()

	biz, profile, mode, err := s.loadContext(ctx, req.BusinessID, req.Mode)
	if err != nil {
		return nil, err
	}

	cat, _ := s.registry.Resolve(biz.Category)
	if cat == nil {
		return nil, contract.NewServiceError(contract.ErrInternal,
			"no catalog for category %q", biz.Category)
	}
	question, ok := findQuestion(cat, req.QuestionID)
	if !ok {
		return nil, contract.NewServiceError(contract.ErrUnknownQuestion,
			"question %q not in the %s catalog", req.QuestionID, cat.Vertical)
	}
	if verr := validateAnswer(question, req.Value); verr != nil {
		return nil, verr
	}

	before, err := s.engine.ActiveQuestions(mode, profile, biz.Category)
	if err != nil {
		return nil, mapEngineError(err)
	}

	next, err := domain.RecordAnswer(profile, question, req.Value)
	if err != nil {
		return nil, contract.NewServiceError(contract.ErrInvalidAnswer, "%v", err)
	}

	after, err := s.engine.ActiveQuestions(mode, next, biz.Category)
	if err != nil {
		return nil, mapEngineError(err)
	}
	answered := 0
	for _, q := range after {
		if domain.HasMeaningfulValue(next[q.StorePath]) {
			answered++
		}
	}
	score := engine.Score(len(after), answered)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProfiles := repository.NewSQLiteProfileRepo(tx)
		txAnswers := repository.NewSQLiteAnswerLogRepo(tx)
		txBusinesses := repository.NewSQLiteBusinessRepo(tx)

		if err := txProfiles.UpsertEntry(ctx, biz.ID, question.StorePath, req.Value); err != nil {
			return err
		}
		if err := txAnswers.Append(ctx, &domain.AnswerRecord{
			ID:         uuid.New().String(),
			BusinessID: biz.ID,
			QuestionID: question.ID,
			StorePath:  question.StorePath,
			Value:      req.Value,
			CreatedAt:  time.Now().UTC(),
		}); err != nil {
			return err
		}
		return txBusinesses.UpdateScore(ctx, biz.ID, score)
	})
	if err != nil {
		return nil, mapRepoError(err)
	}
	biz.PrecisionScore = score

	lang := langOrDefault(req.Lang)
	beforeIDs := make(map[string]bool, len(before))
	for _, q := range before {
		beforeIDs[q.ID] = true
	}
	var unlocked []contract.QuestionView
	for _, q := range after {
		if !beforeIDs[q.ID] {
			unlocked = append(unlocked, contract.NewQuestionView(&q, lang, next))
		}
	}

	return &contract.RecordAnswerResponse{
		Business: contract.NewBusinessView(biz),
		Score:    score,
		Unlocked: unlocked,
	}, nil
}

func (s *onboardingService) Score(ctx context.Context, req contract.ScoreRequest) (resp *contract.ScoreResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "precision-score",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"business_id": req.BusinessID},
		})
	}()

	biz, profile, mode, err := s.loadContext(ctx, req.BusinessID, req.Mode)
	if err != nil {
		return nil, err
	}

	active, err := s.engine.ActiveQuestions(mode, profile, biz.Category)
	if err != nil {
		return nil, mapEngineError(err)
	}

	answered := 0
	areaOrder := []string{}
	areas := map[string]*contract.ScoreBreakdownArea{}
	for _, q := range active {
		area, ok := areas[q.ScoreArea]
		if !ok {
			area = &contract.ScoreBreakdownArea{Area: q.ScoreArea}
			areas[q.ScoreArea] = area
			areaOrder = append(areaOrder, q.ScoreArea)
		}
		area.Total++
		if domain.HasMeaningfulValue(profile[q.StorePath]) {
			area.Answered++
			answered++
		}
	}

	breakdown := make([]contract.ScoreBreakdownArea, 0, len(areaOrder))
	for _, name := range areaOrder {
		breakdown = append(breakdown, *areas[name])
	}

	return &contract.ScoreResponse{
		Business: contract.NewBusinessView(biz),
		Mode:     mode,
		Answered: answered,
		Total:    len(active),
		Score:    engine.Score(len(active), answered),
		Areas:    breakdown,
	}, nil
}

// loadContext fetches the business and profile and resolves the effective
// mode (request override or the business's preference).
func (s *onboardingService) loadContext(ctx context.Context, businessID string, override domain.Mode) (*domain.Business, domain.ProfileMap, domain.Mode, error) {
	biz, err := s.businesses.GetByID(ctx, businessID)
	if err != nil {
		return nil, nil, "", mapRepoError(err)
	}
	mode := override
	if mode == "" {
		mode = biz.PreferredMode
	}
	if !domain.ValidRequestModes[mode] {
		return nil, nil, "", contract.NewServiceError(contract.ErrInvalidMode,
			"mode %q is not requestable", mode)
	}
	profile, err := s.profiles.Get(ctx, businessID)
	if err != nil {
		return nil, nil, "", mapRepoError(err)
	}
	return biz, profile, mode, nil
}

// findQuestion looks up a question by id, including follow-up questions
// nested under their parents.
func findQuestion(cat *catalog.Catalog, id string) (domain.Question, bool) {
	if q, ok := cat.Get(id); ok {
		return q, true
	}
	for _, q := range cat.Questions() {
		if q.FollowUp != nil && q.FollowUp.Question.ID == id {
			return q.FollowUp.Question, true
		}
	}
	return domain.Question{}, false
}

// validateAnswer checks the value shape against the question's input kind.
// Choice answers are checked against the static option list; dynamically
// sourced options vary by country and are not validated here.
func validateAnswer(q domain.Question, value any) *contract.ServiceError {
	switch q.Input.Kind {
	case domain.InputSingleChoice:
		s, ok := value.(string)
		if !ok || s == "" {
			return contract.NewServiceError(contract.ErrInvalidAnswer,
				"%s expects a single option id", q.ID)
		}
		if !optionAllowed(q, s) {
			return contract.NewServiceError(contract.ErrInvalidAnswer,
				"%q is not an option of %s", s, q.ID)
		}
	case domain.InputMultiChoice:
		items, ok := value.([]string)
		if !ok {
			return contract.NewServiceError(contract.ErrInvalidAnswer,
				"%s expects a list of option ids", q.ID)
		}
		for _, item := range items {
			if !optionAllowed(q, item) {
				return contract.NewServiceError(contract.ErrInvalidAnswer,
					"%q is not an option of %s", item, q.ID)
			}
		}
	case domain.InputYesNo:
		if _, ok := value.(bool); !ok {
			return contract.NewServiceError(contract.ErrInvalidAnswer,
				"%s expects a yes/no answer", q.ID)
		}
	case domain.InputNumber, domain.InputScale:
		n, ok := asNumber(value)
		if !ok {
			return contract.NewServiceError(contract.ErrInvalidAnswer,
				"%s expects a number", q.ID)
		}
		if q.Input.Max > q.Input.Min && (n < float64(q.Input.Min) || n > float64(q.Input.Max)) {
			return contract.NewServiceError(contract.ErrInvalidAnswer,
				"%s expects a value between %d and %d", q.ID, q.Input.Min, q.Input.Max)
		}
	case domain.InputText:
		if _, ok := value.(string); !ok {
			return contract.NewServiceError(contract.ErrInvalidAnswer,
				"%s expects text", q.ID)
		}
	}
	return nil
}

// optionAllowed reports whether id is a declared static option. Questions
// with dynamic option sources accept any id.
func optionAllowed(q domain.Question, id string) bool {
	if q.Input.SourceKey != "" || len(q.Input.Options) == 0 {
		return true
	}
	for _, opt := range q.Input.Options {
		if opt.ID == id {
			return true
		}
	}
	return false
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func langOrDefault(lang string) string {
	if lang == "" {
		return domain.DefaultLang
	}
	return lang
}

func mapRepoError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return contract.NewServiceError(contract.ErrNotFound, "%v", err)
	}
	var svcErr *contract.ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return contract.NewServiceError(contract.ErrInternal, "%v", err)
}

func mapEngineError(err error) error {
	if errors.Is(err, engine.ErrInvalidArgument) {
		return contract.NewServiceError(contract.ErrInvalidMode, "%v", err)
	}
	return contract.NewServiceError(contract.ErrInternal, "%v", err)
}
