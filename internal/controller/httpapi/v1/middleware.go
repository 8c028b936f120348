// Package v1 implements the API's route handlers. Each concern in its own
// file.
package v1

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ocf/api/internal/entity"
	"github.com/ocf/api/pkg/logger"
)

type (
	// BrokerVerifier validates broker bearer tokens.
	BrokerVerifier interface {
		Verify(ctx context.Context, bearer string) (*entity.UserToken, error)
	}

	// BridgeVerifier validates self-issued bridge tokens.
	BridgeVerifier interface {
		Verify(token string) (int, error)
	}
)

// Group names an account group a route may require. Routes pick their group
// at registration time so a typo is caught in review, not at request time.
type Group string

const (
	GroupStaff    Group = "ocfstaff"
	GroupOfficers Group = "officers"
	GroupRoot     Group = "ocfroot"
	GroupOpstaff  Group = "opstaff"
)

const (
	_userContextKey = "ocfapi.user"
	_uidContextKey  = "ocfapi.calnet_uid"

	// BridgeTokenCookie carries a bridge token back on requests after the
	// CAS callback set it.
	BridgeTokenCookie = "ocfapi_calnet_token"

	// BridgeTokenHeader is the non-cookie way to present a bridge token.
	BridgeTokenHeader = "X-Calnet-Token"
)

// Gate authenticates requests and attaches the proven identity to the
// request context. Failure responses never include the underlying cause.
type Gate struct {
	broker BrokerVerifier
	bridge BridgeVerifier
	log    logger.Interface
}

// NewGate -.
func NewGate(broker BrokerVerifier, bridge BridgeVerifier, log logger.Interface) *Gate {
	return &Gate{broker: broker, bridge: bridge, log: log}
}

// RequireUser verifies the broker bearer token and stores the resulting
// identity for the handler. 401 with a bearer challenge otherwise.
func (g *Gate) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := g.authenticate(c)
		if !ok {
			return
		}

		c.Set(_userContextKey, token)
		c.Next()
	}
}

// RequireUserInGroup is RequireUser plus group membership. Non-members get
// 403.
func (g *Gate) RequireUserInGroup(group Group) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := g.authenticate(c)
		if !ok {
			return
		}

		if !token.InGroup(string(group)) {
			g.log.Info("http - v1 - gate: user %s is not in group %s", token.Username, group)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"detail": "user is not in group " + string(group),
			})

			return
		}

		c.Set(_userContextKey, token)
		c.Next()
	}
}

// RequireUID verifies a bridge token (cookie or header) and stores the
// CalNet UID it proves. Every failure mode gets the same response.
func (g *Gate) RequireUID() gin.HandlerFunc {
	return func(c *gin.Context) {
		credential := bridgeCredential(c)

		uid, err := g.bridge.Verify(credential)
		if err != nil {
			g.log.Info("http - v1 - gate: bridge token rejected: %s", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "malformed jwt"})

			return
		}

		c.Set(_uidContextKey, uid)
		c.Next()
	}
}

func (g *Gate) authenticate(c *gin.Context) (*entity.UserToken, bool) {
	bearer, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if !ok {
		g.challenge(c)

		return nil, false
	}

	token, err := g.broker.Verify(c.Request.Context(), bearer)
	if err != nil {
		g.challenge(c)

		return nil, false
	}

	return token, true
}

func (g *Gate) challenge(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "invalid or missing bearer token"})
}

func bridgeCredential(c *gin.Context) string {
	if cookie, err := c.Cookie(BridgeTokenCookie); err == nil && cookie != "" {
		return cookie
	}

	return c.GetHeader(BridgeTokenHeader)
}

// UserFromContext returns the identity RequireUser attached.
func UserFromContext(c *gin.Context) (*entity.UserToken, bool) {
	v, ok := c.Get(_userContextKey)
	if !ok {
		return nil, false
	}

	token, ok := v.(*entity.UserToken)

	return token, ok
}

// UIDFromContext returns the CalNet UID RequireUID attached.
func UIDFromContext(c *gin.Context) (int, bool) {
	v, ok := c.Get(_uidContextKey)
	if !ok {
		return 0, false
	}

	uid, ok := v.(int)

	return uid, ok
}
