package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/noah-isme/interview-practice-api/internal/dto"
	"github.com/noah-isme/interview-practice-api/internal/models"
	"github.com/noah-isme/interview-practice-api/internal/observability"
	"github.com/noah-isme/interview-practice-api/pkg/ai"
)

// ErrServiceNotConfigured indicates no upstream credential was supplied at startup.
var ErrServiceNotConfigured = errors.New("AI service is not configured")

// Evaluation is the outcome of scoring an answer. Fallback is set when the
// upstream output was unusable and the fixed feedback was substituted.
type Evaluation struct {
	Feedback dto.Feedback
	Fallback bool
}

// InterviewService relays interview requests to the upstream language model.
type InterviewService interface {
	GenerateQuestion(ctx context.Context, role string) (dto.QuestionResponse, error)
	Evaluate(ctx context.Context, role, question, answer string) (Evaluation, error)
	Roles() []dto.RoleResponse
}

type interviewService struct {
	completer ai.ChatCompleter
	logger    zerolog.Logger
}

// NewInterviewService constructs the relay. A nil completer leaves the service
// unconfigured: every call fails with ErrServiceNotConfigured.
func NewInterviewService(completer ai.ChatCompleter, logger zerolog.Logger) InterviewService {
	return &interviewService{
		completer: completer,
		logger:    logger.With().Str("component", "interview_service").Logger(),
	}
}

func (s *interviewService) GenerateQuestion(ctx context.Context, role string) (dto.QuestionResponse, error) {
	if s.completer == nil {
		s.logger.Error().Msg("ai api key is not configured")
		return dto.QuestionResponse{}, ErrServiceNotConfigured
	}

	label := models.RoleLabel(role)
	s.logger.Info().Str("kind", dto.KindQuestion).Str("role", label).Msg("processing interview request")

	content, err := s.completer.Complete(ctx, questionPrompt(label))
	if err != nil {
		return dto.QuestionResponse{}, err
	}

	question := strings.TrimSpace(content)
	if question == "" {
		return dto.QuestionResponse{}, fmt.Errorf("generate question: %w", ai.ErrEmptyCompletion)
	}

	return dto.QuestionResponse{Question: question}, nil
}

func (s *interviewService) Evaluate(ctx context.Context, role, question, answer string) (Evaluation, error) {
	if s.completer == nil {
		s.logger.Error().Msg("ai api key is not configured")
		return Evaluation{}, ErrServiceNotConfigured
	}

	label := models.RoleLabel(role)
	s.logger.Info().Str("kind", dto.KindEvaluate).Str("role", label).Msg("processing interview request")

	content, err := s.completer.Complete(ctx, evaluationPrompt(label, question, answer))
	if err != nil && !errors.Is(err, ai.ErrEmptyCompletion) {
		return Evaluation{}, err
	}

	feedback, parseErr := parseFeedback(content)
	if parseErr != nil {
		s.logger.Warn().Err(parseErr).Str("content", content).Msg("failed to parse ai response as feedback, using fallback")
		observability.FeedbackFallbacks().Inc()
		return Evaluation{Feedback: dto.FallbackFeedback(), Fallback: true}, nil
	}

	return Evaluation{Feedback: feedback}, nil
}

func (s *interviewService) Roles() []dto.RoleResponse {
	catalogue := models.Roles()
	out := make([]dto.RoleResponse, 0, len(catalogue))
	for _, role := range catalogue {
		out = append(out, dto.RoleResponse{Value: role.Value, Label: role.Label})
	}
	return out
}
