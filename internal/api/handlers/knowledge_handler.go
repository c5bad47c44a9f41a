package handlers

import (
	"strconv"

	"elimuhub-agent/internal/models"
	"elimuhub-agent/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type KnowledgeHandler struct {
	responses *service.ResponseService
	logger    *zap.Logger
}

func NewKnowledgeHandler(responses *service.ResponseService, logger *zap.Logger) *KnowledgeHandler {
	return &KnowledgeHandler{
		responses: responses,
		logger:    logger,
	}
}

// Search godoc
// @Summary Search the knowledge base
// @Description Case-insensitive substring search over the serialized records, optionally within one category
// @Tags knowledge
// @Produce json
// @Param q query string true "Search query"
// @Param category query string false "Category name"
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/knowledge-base/search [get]
func (h *KnowledgeHandler) Search(c *fiber.Ctx) error {
	query := c.Query("q")
	category := models.Category(c.Query("category"))

	results := h.responses.Search(query, category)
	if results == nil {
		results = []models.SearchResult{}
	}
	return c.JSON(fiber.Map{"results": results})
}

// Similar godoc
// @Summary Find similar FAQ entries
// @Description Ranks FAQ questions by cosine similarity to the query
// @Tags knowledge
// @Produce json
// @Param q query string true "Query text"
// @Param k query int false "Maximum results"
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/knowledge-base/similar [get]
func (h *KnowledgeHandler) Similar(c *fiber.Ctx) error {
	query := c.Query("q")
	k, _ := strconv.Atoi(c.Query("k", "0"))

	results := h.responses.SimilarQuestions(query, k)
	if results == nil {
		results = []models.FAQRecord{}
	}
	return c.JSON(fiber.Map{"results": results})
}
