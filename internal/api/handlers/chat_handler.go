package handlers

import (
	"elimuhub-agent/internal/dto"
	"elimuhub-agent/internal/models"
	"elimuhub-agent/internal/repository"
	"elimuhub-agent/internal/service"
	"elimuhub-agent/pkg/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ChatHandler struct {
	responses  *service.ResponseService
	escalation *service.EscalationService
	sessions   *session.Manager
	// nil when the interaction database is unavailable; chat still works.
	interactions *repository.InteractionRepository
	logger       *zap.Logger
}

func NewChatHandler(
	responses *service.ResponseService,
	escalation *service.EscalationService,
	sessions *session.Manager,
	interactions *repository.InteractionRepository,
	logger *zap.Logger,
) *ChatHandler {
	return &ChatHandler{
		responses:    responses,
		escalation:   escalation,
		sessions:     sessions,
		interactions: interactions,
		logger:       logger,
	}
}

// Chat godoc
// @Summary Send a chat message
// @Description Routes the message through intent classification and knowledge lookup and returns a reply
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Chat request"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	conversationID, _ := c.Locals("conversationID").(string)
	state := h.sessions.NextTurn(conversationID)

	resp := h.responses.GenerateResponse(req.Message, conversationID)

	escalated := state.Escalated
	if !escalated && h.escalation.ShouldEscalate(resp.Confidence, state.TurnCount) {
		escalated = true
		h.sessions.MarkEscalated(conversationID)
	}
	text := resp.Text
	if escalated {
		text = text + "\n\n" + h.escalation.Directive(req.Message, resp.Intent, resp.Confidence)
	}

	if h.interactions != nil {
		err := h.interactions.LogInteraction(c.Context(), &models.Interaction{
			ConversationID: conversationID,
			UserMessage:    req.Message,
			Response:       text,
			Intent:         resp.Intent,
			Confidence:     resp.Confidence,
			Escalated:      escalated,
		})
		if err != nil {
			h.logger.Warn("Failed to log interaction", zap.Error(err))
		}
	}

	return c.JSON(dto.ChatResponse{
		Success:        true,
		Response:       text,
		Intent:         string(resp.Intent),
		Confidence:     resp.Confidence,
		ConversationID: conversationID,
		Escalated:      escalated,
	})
}

// ClassifyIntent godoc
// @Summary Classify a message's intent
// @Description Returns the predicted intent and its confidence without generating a reply
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ClassifyRequest true "Classify request"
// @Success 200 {object} dto.ClassifyResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/intent [post]
func (h *ChatHandler) ClassifyIntent(c *fiber.Ctx) error {
	var req dto.ClassifyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	result := h.responses.ClassifyIntent(req.Text)
	return c.JSON(dto.ClassifyResponse{
		Intent:     string(result.Intent),
		Confidence: result.Confidence,
	})
}

// Feedback godoc
// @Summary Submit conversation feedback
// @Description Stores a user rating and optional comments for a conversation
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.FeedbackRequest true "Feedback request"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Router /api/v1/feedback [post]
func (h *ChatHandler) Feedback(c *fiber.Ctx) error {
	var req dto.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.ConversationID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "conversation_id is required",
		})
	}

	if h.interactions != nil {
		err := h.interactions.SaveFeedback(c.Context(), &models.Feedback{
			ConversationID: req.ConversationID,
			Rating:         req.Rating,
			Comments:       req.Comments,
		})
		if err != nil {
			h.logger.Error("Failed to save feedback", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to save feedback",
			})
		}
	}

	return c.JSON(fiber.Map{"success": true})
}
