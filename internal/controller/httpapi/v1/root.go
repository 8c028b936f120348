package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ocf/api/config"
)

type rootRoutes struct {
	cfg *config.Config
}

// NewRootRoutes registers the index and version endpoints.
func NewRootRoutes(handler *gin.RouterGroup, cfg *config.Config) {
	r := &rootRoutes{cfg: cfg}

	handler.GET("/", r.index)
	handler.GET("/version", r.version)
}

func (r *rootRoutes) index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the OCF API",
		"docs":    "https://www.ocf.berkeley.edu/docs/",
	})
}

func (r *rootRoutes) version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    r.cfg.App.Name,
		"version": r.cfg.App.Version,
	})
}
