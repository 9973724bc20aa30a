package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pneuforte/recruitment-portal/internal/auth"
	"github.com/pneuforte/recruitment-portal/internal/llm"
)

type chatRequest struct {
	Messages []llm.Message `json:"messages" binding:"required"`
}

// AssistantChat runs one assistant exchange. The caller's identity decides
// the tool menu; anonymous visitors are allowed.
func (h *Handler) AssistantChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Messages) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "messages are required"})
		return
	}

	identity := auth.FromContext(c)
	reply, err := h.Orchestrator.Chat(c.Request.Context(), req.Messages, identity)
	if err != nil {
		log.WithError(err).Error("assistant request failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "assistant is unavailable right now"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": reply})
}
