package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ocf/api/internal/entity/dto/v1"
	"github.com/ocf/api/internal/usecase/auth"
	"github.com/ocf/api/pkg/logger"
)

const (
	_redirectCookie = "ocfapi_redirect"
	_loginPath      = "/auth/calnet"
	_callbackPath   = "/auth/calnet/callback"
)

type calnetRoutes struct {
	bridge       *auth.Bridge
	cas          *auth.CASClient
	externalURL  string
	secureCookie bool
	tokenMaxAge  int
	log          logger.Interface
}

// NewCalnetRoutes registers the CAS bridging login flow: a redirect out to
// CAS and the callback that exchanges the returned ticket for a bridge
// token.
func NewCalnetRoutes(handler *gin.RouterGroup, bridge *auth.Bridge, cas *auth.CASClient, externalURL string, secureCookie bool, tokenMaxAge int, l logger.Interface) {
	r := &calnetRoutes{
		bridge:       bridge,
		cas:          cas,
		externalURL:  externalURL,
		secureCookie: secureCookie,
		tokenMaxAge:  tokenMaxAge,
		log:          l,
	}

	handler.GET(_loginPath, r.login)
	handler.GET(_callbackPath, r.callback)
}

// login stashes the caller's post-login destination and bounces to CAS.
func (r *calnetRoutes) login(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)

	if next := c.Query("next"); next != "" {
		c.SetCookie(_redirectCookie, next, r.tokenMaxAge, "/", "", r.secureCookie, true)
	}

	c.Redirect(http.StatusFound, r.cas.LoginURL(r.serviceURL()))
}

// callback exchanges the one-time CAS ticket for a bridge token. The token
// goes back as a cookie when a redirect target was stored, as JSON
// otherwise.
func (r *calnetRoutes) callback(c *gin.Context) {
	uid, err := r.cas.ValidateTicket(c.Request.Context(), c.Query("ticket"), r.serviceURL())
	if err != nil {
		r.log.Info("http - v1 - calnet callback: %s", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "got bad ticket"})

		return
	}

	token, err := r.bridge.Issue(uid)
	if err != nil {
		r.log.Error(err, "http - v1 - calnet callback")
		ErrorResponse(c, err)

		return
	}

	c.SetSameSite(http.SameSiteStrictMode)

	if next, cookieErr := c.Cookie(_redirectCookie); cookieErr == nil && next != "" {
		c.SetCookie(BridgeTokenCookie, token, r.tokenMaxAge, "/", "", r.secureCookie, true)
		c.SetCookie(_redirectCookie, "", -1, "/", "", r.secureCookie, true)
		c.Redirect(http.StatusFound, next)

		return
	}

	c.JSON(http.StatusOK, dto.CalnetToken{Token: token})
}

func (r *calnetRoutes) serviceURL() string {
	return r.externalURL + _callbackPath
}
