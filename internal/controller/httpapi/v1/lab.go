package v1

import (
	"net/http"
	"net/netip"

	"github.com/gin-gonic/gin"

	"github.com/ocf/api/internal/entity/dto/v1"
	"github.com/ocf/api/internal/usecase/labstats"
	"github.com/ocf/api/pkg/logger"
)

type labRoutes struct {
	tracker *labstats.Tracker
	stats   *labstats.Stats
	log     logger.Interface
}

// NewLabRoutes registers lab presence endpoints: the workstation heartbeat
// and the usage queries built on it.
func NewLabRoutes(handler *gin.RouterGroup, tracker *labstats.Tracker, stats *labstats.Stats, l logger.Interface) {
	r := &labRoutes{tracker: tracker, stats: stats, log: l}

	handler.POST("/session/log", r.logSession)
	handler.GET("/lab/desktops", r.desktops)
	handler.GET("/lab/num_users", r.numUsers)
}

func (r *labRoutes) logSession(c *gin.Context) {
	var input dto.LogSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		ErrorResponse(c, err)

		return
	}

	// the socket peer, not ClientIP: forwarding headers are client-supplied
	// and must not move an address into the lab networks
	peer, err := netip.ParseAddrPort(c.Request.RemoteAddr)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "could not determine source address"})

		return
	}

	remote := peer.Addr()

	err = r.tracker.LogSession(c.Request.Context(), remote, labstats.SessionState(input.State), input.User)
	if err != nil {
		r.log.Info("http - v1 - logSession: %s", err)
		ErrorResponse(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (r *labRoutes) desktops(c *gin.Context) {
	usage, err := r.stats.DesktopUsage(c.Request.Context())
	if err != nil {
		r.log.Error(err, "http - v1 - desktops")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, dto.DesktopUsage{
		DesktopsInUse: usage.InUse,
		DesktopsNum:   usage.Total,
	})
}

func (r *labRoutes) numUsers(c *gin.Context) {
	count, err := r.stats.UsersInLab(c.Request.Context())
	if err != nil {
		r.log.Error(err, "http - v1 - numUsers")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, dto.LabNumUsers{Count: count})
}
