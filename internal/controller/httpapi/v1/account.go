package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ocf/api/internal/entity/dto/v1"
	"github.com/ocf/api/internal/usecase/accounts"
	"github.com/ocf/api/pkg/logger"
)

type accountRoutes struct {
	a   *accounts.UseCase
	log logger.Interface
}

// NewAccountRoutes registers account profile, quota, and registration
// endpoints.
func NewAccountRoutes(handler *gin.RouterGroup, gate *Gate, a *accounts.UseCase, l logger.Interface) {
	r := &accountRoutes{a: a, log: l}

	handler.GET("/account/me", gate.RequireUser(), r.me)
	handler.GET("/quotas/paper", gate.RequireUser(), r.paperQuota)
	handler.POST("/account/register", gate.RequireUID(), r.register)
	handler.GET("/account/register/status", r.registerStatus)
}

func (r *accountRoutes) me(c *gin.Context) {
	token, ok := UserFromContext(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)

		return
	}

	info, err := r.a.Me(c.Request.Context(), token)
	if err != nil {
		r.log.Error(err, "http - v1 - me")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, info)
}

func (r *accountRoutes) paperQuota(c *gin.Context) {
	token, ok := UserFromContext(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)

		return
	}

	quota, err := r.a.PaperQuota(c.Request.Context(), token.Username)
	if err != nil {
		r.log.Error(err, "http - v1 - paperQuota")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, quota)
}

func (r *accountRoutes) register(c *gin.Context) {
	uid, ok := UIDFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "malformed jwt"})

		return
	}

	var input dto.RegisterAccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		ErrorResponse(c, err)

		return
	}

	out, err := r.a.Register(c.Request.Context(), uid, input)
	if err != nil {
		r.log.Error(err, "http - v1 - register")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, out)
}

func (r *accountRoutes) registerStatus(c *gin.Context) {
	taskID := c.Query("task_id")
	if taskID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "task_id is required"})

		return
	}

	out, err := r.a.RegisterStatus(c.Request.Context(), taskID)
	if err != nil {
		r.log.Error(err, "http - v1 - registerStatus")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, out)
}
