package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ocf/api/internal/usecase/shorturls"
	"github.com/ocf/api/pkg/logger"
)

type shorturlRoutes struct {
	s   *shorturls.UseCase
	log logger.Interface
}

// NewShorturlRoutes registers the shorturl redirector.
func NewShorturlRoutes(handler *gin.RouterGroup, s *shorturls.UseCase, l logger.Interface) {
	r := &shorturlRoutes{s: s, log: l}

	handler.GET("/shorturl/:slug", r.bounce)
}

func (r *shorturlRoutes) bounce(c *gin.Context) {
	target, err := r.s.Bounce(c.Request.Context(), c.Param("slug"))
	if err != nil {
		r.log.Info("http - v1 - shorturl: %s", err)
		ErrorResponse(c, err)

		return
	}

	c.Redirect(http.StatusMovedPermanently, target)
}
