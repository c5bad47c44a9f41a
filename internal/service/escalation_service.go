package service

import (
	"fmt"

	"go.uber.org/zap"

	"elimuhub-agent/internal/models"
	"elimuhub-agent/pkg/config"
)

// EscalationService decides when a conversation is handed off to a human
// operator. It is stateless: the caller owns the per-conversation turn count
// and passes it in on every invocation.
type EscalationService struct {
	cfg    *config.EscalationConfig
	logger *zap.Logger
}

func NewEscalationService(cfg *config.EscalationConfig, logger *zap.Logger) *EscalationService {
	return &EscalationService{
		cfg:    cfg,
		logger: logger,
	}
}

// ShouldEscalate fires only when the classifier's confidence is strictly
// below the threshold and the conversation has already burned through the
// configured number of turns.
func (s *EscalationService) ShouldEscalate(confidence float64, turnCount int) bool {
	return confidence < s.cfg.ConfidenceThreshold && turnCount >= s.cfg.TurnThreshold
}

// Directive formats the hand-off notice appended to the reply once a
// conversation escalates. It carries everything a human operator needs to
// pick the conversation up.
func (s *EscalationService) Directive(lastMessage string, intent models.Intent, confidence float64) string {
	s.logger.Info("Conversation escalated",
		zap.String("intent", string(intent)),
		zap.Float64("confidence", confidence),
	)
	return fmt.Sprintf(
		"This conversation has been escalated to our support team.\n"+
			"Last message: %s\n"+
			"Detected intent: %s\n"+
			"Confidence: %.2f\n"+
			"A human advisor will follow up shortly. You can also reach us at %s or %s.",
		lastMessage, intent, confidence, s.cfg.SupportEmail, s.cfg.SupportPhone)
}
