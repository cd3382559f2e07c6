package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/sgkim-dev/contract-desk/internal/config"
	"github.com/sgkim-dev/contract-desk/internal/http/middleware"
)

const sessionMaxAge = 7 * 24 * 60 * 60

// NewRouter wires the middleware stack and every route. Auth endpoints and
// the cron trigger are open; everything else requires a verified session.
func NewRouter(h *Handler, cfg *config.Config) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.HTTP.CORSOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.HTTP.CORSOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowCredentials = !corsConfig.AllowAllOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	store := cookie.NewStore([]byte(cfg.Auth.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   cfg.Environment == "production",
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions("session", store))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	api.GET("/auth/setup", h.authSetupStatus)
	api.POST("/auth/setup", h.authSetup)
	api.POST("/auth/verify", h.authVerify)
	api.POST("/auth/logout", h.authLogout)
	api.POST("/cron/check-deadlines", h.runSweep)

	protected := api.Group("/")
	protected.Use(middleware.RequireSession())

	protected.GET("/contracts", h.listContracts)
	protected.POST("/contracts", h.createContract)
	protected.GET("/contracts/export", h.exportExcel)
	protected.GET("/contracts/export/pdf", h.exportPDF)
	protected.GET("/contracts/:id", h.getContract)
	protected.PATCH("/contracts/:id", h.updateContract)
	protected.DELETE("/contracts/:id", h.deleteContract)
	protected.GET("/contracts/:id/notes", h.listNotes)
	protected.POST("/contracts/:id/notes", h.addNote)

	protected.GET("/dashboard", h.getDashboard)

	protected.GET("/config", h.getConfig)
	protected.PUT("/config", h.setConfig)

	protected.POST("/chat", h.postChat)

	return router
}
