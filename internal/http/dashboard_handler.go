package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func (h *Handler) getDashboard(c *gin.Context) {
	snapshot, err := h.dashboard.Snapshot(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// runSweep is the manual/cron trigger for the overdue sweep, protected by a
// bearer secret instead of the session.
func (h *Handler) runSweep(c *gin.Context) {
	if h.cronSecret == "" {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "cron trigger is disabled")
		return
	}

	header := c.GetHeader("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if header == token || token != h.cronSecret {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid cron secret")
		return
	}

	flagged, err := h.sweep.MarkOverdue(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"delayed": flagged, "count": len(flagged)})
}
