package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sgkim-dev/contract-desk/internal/chat"
	"github.com/sgkim-dev/contract-desk/internal/service"
)

type Handler struct {
	contracts  *service.ContractService
	dashboard  *service.DashboardService
	configs    *service.ConfigService
	auth       *service.AuthService
	sweep      *service.SweepService
	export     *service.ExportService
	chat       *chat.Service
	cronSecret string
	log        zerolog.Logger
}

func NewHandler(
	contracts *service.ContractService,
	dashboard *service.DashboardService,
	configs *service.ConfigService,
	auth *service.AuthService,
	sweep *service.SweepService,
	export *service.ExportService,
	chatService *chat.Service,
	cronSecret string,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		contracts:  contracts,
		dashboard:  dashboard,
		configs:    configs,
		auth:       auth,
		sweep:      sweep,
		export:     export,
		chat:       chatService,
		cronSecret: cronSecret,
		log:        log,
	}
}

// respondError writes the uniform {"error": {"code", "message"}} payload.
func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{"error": gin.H{"code": code, "message": message}})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	var mismatch *service.PINMismatchError
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, service.ErrNotFound):
		respondError(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, service.ErrConflict):
		respondError(c, http.StatusConflict, "CONFLICT", err.Error())
	case errors.Is(err, service.ErrTooManyAttempts):
		respondError(c, http.StatusTooManyRequests, "TOO_MANY_ATTEMPTS", err.Error())
	case errors.Is(err, service.ErrUnauthorized):
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
	case errors.As(err, &mismatch):
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		respondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
	}
}

func parseDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	layouts := []string{
		"2006-01-02",
		time.RFC3339,
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return &parsed, nil
		}
	}
	return nil, service.ErrInvalidInput
}
