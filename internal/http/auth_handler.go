package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sgkim-dev/contract-desk/internal/http/middleware"
)

type pinRequest struct {
	PIN string `json:"pin" binding:"required"`
}

func (h *Handler) authSetupStatus(c *gin.Context) {
	setup, err := h.auth.IsSetup(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isSetup": setup})
}

func (h *Handler) authSetup(c *gin.Context) {
	var req pinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.auth.Setup(c.Request.Context(), req.PIN); err != nil {
		h.handleError(c, err)
		return
	}

	if err := middleware.SetToken(c, uuid.NewString()); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true})
}

func (h *Handler) authVerify(c *gin.Context) {
	var req pinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.auth.Verify(c.Request.Context(), c.ClientIP(), req.PIN); err != nil {
		h.handleError(c, err)
		return
	}

	if err := middleware.SetToken(c, uuid.NewString()); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) authLogout(c *gin.Context) {
	if err := middleware.ClearToken(c); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
