// Package httpapi implements routing paths. Each services in own file.
package httpapi

import (
	"net/http"
	"regexp"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	ginprometheus "github.com/zsais/go-gin-prometheus"

	"github.com/ocf/api/config"
	v1 "github.com/ocf/api/internal/controller/httpapi/v1"
	"github.com/ocf/api/internal/usecase"
	"github.com/ocf/api/internal/usecase/auth"
	"github.com/ocf/api/pkg/logger"
)

// NewRouter -.
func NewRouter(handler *gin.Engine, l logger.Interface, t usecase.Usecases, gate *v1.Gate, bridge *auth.Bridge, cas *auth.CASClient, cfg *config.Config) {
	// Options
	handler.Use(gin.Logger())
	handler.Use(gin.Recovery())

	// Prometheus middleware for automatic HTTP metrics; /metrics is
	// registered separately below
	p := ginprometheus.NewPrometheus("gin")
	p.MetricsPath = ""
	handler.Use(p.HandlerFunc())

	if cfg.HTTP.AllowOriginRegex != "" {
		originRe := regexp.MustCompile(cfg.HTTP.AllowOriginRegex)
		handler.Use(cors.New(cors.Config{
			AllowOriginFunc:  originRe.MatchString,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// K8s probe
	handler.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	// Prometheus metrics
	handler.GET("/metrics", gin.WrapH(promhttp.Handler()))

	externalURL := cfg.Scheme() + "://" + cfg.HTTP.ExternalHost
	tokenMaxAge := int(cfg.Auth.BridgeExpiry.Seconds())

	// Routers
	h := handler.Group("")
	{
		v1.NewRootRoutes(h, cfg)
		v1.NewCalnetRoutes(h, bridge, cas, externalURL, !cfg.App.Debug, tokenMaxAge, l)
		v1.NewAccountRoutes(h, gate, t.Accounts, l)
		v1.NewLabRoutes(h, t.Tracker, t.Stats, l)
		v1.NewHoursRoutes(h, t.Hours)
		v1.NewShorturlRoutes(h, t.Shorturls, l)
	}
}
