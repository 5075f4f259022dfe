package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hackmate/assistant"
	"hackmate/routing"
	"hackmate/web/format"
)

type ChatHandler struct {
	assistant *assistant.Assistant
	logger    *zap.Logger
}

type ChatRequest struct {
	Message string `json:"message"`
	Mode    string `json:"mode"`
}

type ChatResponse struct {
	Reply     string `json:"reply"`
	ReplyHTML string `json:"replyHtml"`
	Mode      string `json:"mode"`
	Source    string `json:"source"`
	SnippetID string `json:"snippetId,omitempty"`
}

func NewChatHandler(assistant *assistant.Assistant, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{assistant: assistant, logger: logger}
}

// SendMessage handles POST /chat.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind chat request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message cannot be empty"})
		return
	}

	h.logger.Info("Processing chat message",
		zap.String("mode", req.Mode),
		zap.Int("length", len(req.Message)))

	reply, err := h.assistant.Respond(c.Request.Context(), req.Message, routing.Mode(req.Mode))
	if err != nil {
		h.logger.Error("Chat failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ChatResponse{
		Reply:     reply.Text,
		ReplyHTML: format.RenderHTML(reply.Text),
		Mode:      string(reply.Mode),
		Source:    string(reply.Source),
		SnippetID: reply.SnippetID,
	})
}
