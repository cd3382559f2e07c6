package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sgkim-dev/contract-desk/internal/chat"
)

type chatRequest struct {
	Messages []chat.Message `json:"messages" binding:"required"`
}

// postChat streams the assistant's reply as server-sent events: "delta"
// carries text chunks, "tool" announces a tool execution, "done" or "error"
// closes the stream.
func (h *Handler) postChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if len(req.Messages) == 0 {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "메시지가 비어 있습니다")
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	flush := func() {
		c.Writer.Flush()
	}

	events := chat.Events{
		OnDelta: func(text string) {
			c.SSEvent("delta", gin.H{"content": text})
			flush()
		},
		OnTool: func(name string) {
			c.SSEvent("tool", gin.H{"name": name})
			flush()
		},
	}

	if err := h.chat.Stream(c.Request.Context(), req.Messages, events); err != nil {
		h.log.Error().Err(err).Msg("chat stream failed")
		c.SSEvent("error", gin.H{"message": "응답 생성 중 오류가 발생했습니다"})
		flush()
		return
	}

	c.SSEvent("done", gin.H{})
	flush()
}
