package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sgkim-dev/contract-desk/internal/model"
)

func (h *Handler) getConfig(c *gin.Context) {
	if key := c.Query("key"); key != "" {
		value, err := h.configs.Get(c.Request.Context(), key)
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"key": key, "value": value})
		return
	}

	values, err := h.configs.All(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	// Counter keys are internal bookkeeping.
	for key := range values {
		if strings.HasPrefix(key, model.ConfigKeyIDCounterPrefix) {
			delete(values, key)
		}
	}
	c.JSON(http.StatusOK, values)
}

type setConfigRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value" binding:"required"`
}

func (h *Handler) setConfig(c *gin.Context) {
	var req setConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if strings.HasPrefix(req.Key, model.ConfigKeyIDCounterPrefix) {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "예약된 설정 키입니다: "+req.Key)
		return
	}

	if err := h.configs.Set(c.Request.Context(), req.Key, req.Value); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
