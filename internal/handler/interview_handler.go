package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/interview-practice-api/internal/dto"
	"github.com/noah-isme/interview-practice-api/internal/service"
	"github.com/noah-isme/interview-practice-api/internal/utils"
	"github.com/noah-isme/interview-practice-api/pkg/ai"
)

const (
	// FallbackHeader marks evaluate responses that carry the fixed fallback feedback.
	FallbackHeader = "X-Feedback-Fallback"

	msgRateLimited     = "Rate limit exceeded. Please wait a moment and try again."
	msgQuotaExceeded   = "Service temporarily unavailable. Please try again later."
	msgUpstreamFailure = "Failed to get AI response"
	msgInvalidBody     = "invalid request body"
)

// InterviewHandler exposes the interview relay endpoint.
type InterviewHandler struct {
	service   service.InterviewService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewInterviewHandler constructs an interview handler.
func NewInterviewHandler(service service.InterviewService, validate *validator.Validate, logger zerolog.Logger) *InterviewHandler {
	return &InterviewHandler{
		service:   service,
		validator: validate,
		logger:    logger.With().Str("component", "interview_handler").Logger(),
	}
}

// Register wires interview routes.
func (h *InterviewHandler) Register(router fiber.Router) {
	router.Post("/interview", h.relay)
	router.Get("/roles", h.roles)
}

func (h *InterviewHandler) relay(c *fiber.Ctx) error {
	logger := requestLogger(h.logger, c)

	var payload dto.InterviewRequest
	if err := c.App().Config().JSONDecoder(c.Body(), &payload); err != nil {
		logger.Error().Err(err).Msg("failed to decode interview request")
		return utils.SendError(c, fiber.StatusInternalServerError, msgInvalidBody)
	}
	payload.Normalize()

	if err := h.validator.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, validationMessage(err))
	}

	ctx := c.UserContext()
	switch payload.Kind {
	case dto.KindQuestion:
		response, err := h.service.GenerateQuestion(ctx, payload.Role)
		if err != nil {
			return h.sendServiceError(c, logger, err)
		}
		return utils.SendJSON(c, response)
	default:
		evaluation, err := h.service.Evaluate(ctx, payload.Role, payload.Question, payload.Answer)
		if err != nil {
			return h.sendServiceError(c, logger, err)
		}
		if evaluation.Fallback {
			c.Set(FallbackHeader, "true")
		}
		return utils.SendJSON(c, evaluation.Feedback)
	}
}

func (h *InterviewHandler) roles(c *fiber.Ctx) error {
	return utils.SendJSON(c, h.service.Roles())
}

func (h *InterviewHandler) sendServiceError(c *fiber.Ctx, logger *zerolog.Logger, err error) error {
	switch {
	case errors.Is(err, ai.ErrRateLimited):
		logger.Warn().Err(err).Msg("upstream rate limit")
		return utils.SendError(c, fiber.StatusTooManyRequests, msgRateLimited)
	case errors.Is(err, ai.ErrQuotaExceeded):
		logger.Warn().Err(err).Msg("upstream quota exhausted")
		return utils.SendError(c, fiber.StatusPaymentRequired, msgQuotaExceeded)
	case errors.Is(err, service.ErrServiceNotConfigured):
		logger.Error().Err(err).Msg("relay is not configured")
		return utils.SendError(c, fiber.StatusInternalServerError, service.ErrServiceNotConfigured.Error())
	case errors.Is(err, ai.ErrUpstreamFailure), errors.Is(err, ai.ErrEmptyCompletion):
		logger.Error().Err(err).Msg("failed to get ai response")
		return utils.SendError(c, fiber.StatusInternalServerError, msgUpstreamFailure)
	default:
		logger.Error().Err(err).Msg("error in interview relay")
		return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
	}
}
