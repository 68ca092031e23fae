// Package httpapi exposes the signup/login operations over HTTP/JSON.
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mpetrashin/tokengate/internal/logging"
	"github.com/mpetrashin/tokengate/internal/server/config"
	"github.com/mpetrashin/tokengate/internal/server/services"
)

// NewRouter builds the gin engine with recovery, request logging, and CORS,
// and mounts the public auth endpoints.
func NewRouter(cfg *config.Config, users *services.UserService, logger logging.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))

	h := NewHandler(users, logger)

	r.POST("/signup", h.SignUp)
	r.POST("/login", h.Login)
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	return r
}
