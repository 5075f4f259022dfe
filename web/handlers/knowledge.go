package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "hackmate/errors"
	"hackmate/knowledge"
	"hackmate/routing"
)

// KnowledgeHandler serves the read-only knowledge base endpoints.
type KnowledgeHandler struct {
	store  *knowledge.Store
	tags   *routing.TagDetector
	logger *zap.Logger
}

func NewKnowledgeHandler(store *knowledge.Store, tags *routing.TagDetector, logger *zap.Logger) *KnowledgeHandler {
	return &KnowledgeHandler{store: store, tags: tags, logger: logger}
}

// Snippets handles GET /snippets.
func (h *KnowledgeHandler) Snippets(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snippets())
}

// SnippetByID handles GET /snippet/:id.
func (h *KnowledgeHandler) SnippetByID(c *gin.Context) {
	sn, err := h.store.Snippet(c.Param("id"))
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Snippet not found"})
			return
		}
		h.logger.Error("Snippet lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sn)
}

// Resources handles GET /resources.
func (h *KnowledgeHandler) Resources(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Resources())
}

// FAQs handles GET /faqs.
func (h *KnowledgeHandler) FAQs(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.FAQs())
}

// QuickActions handles GET /quick-actions.
func (h *KnowledgeHandler) QuickActions(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.QuickActions())
}

// RoutingConfig handles GET /routing-config.
func (h *KnowledgeHandler) RoutingConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"llmTags":     h.tags.LLMTags(),
		"snippetTags": h.tags.SnippetTags(),
	})
}
