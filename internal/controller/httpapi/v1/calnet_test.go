package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/ocf/api/internal/usecase/auth"
	"github.com/ocf/api/pkg/logger"
)

const _casSuccessEnvelope = `<cas:serviceResponse xmlns:cas="http://www.yale.edu/tp/cas">
  <cas:authenticationSuccess>
    <cas:user>%d</cas:user>
  </cas:authenticationSuccess>
</cas:serviceResponse>`

const _casFailureEnvelope = `<cas:serviceResponse xmlns:cas="http://www.yale.edu/tp/cas">
  <cas:authenticationFailure code="INVALID_TICKET">ticket not recognized</cas:authenticationFailure>
</cas:serviceResponse>`

func calnetEngine(t *testing.T, casUID int) (*gin.Engine, *auth.Bridge) {
	t.Helper()

	casServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("ticket") == "good-ticket" {
			fmt.Fprintf(w, _casSuccessEnvelope, casUID)

			return
		}

		fmt.Fprint(w, _casFailureEnvelope)
	}))
	t.Cleanup(casServer.Close)

	bridge := auth.NewBridge(auth.NewCodec("test-secret"), 30*time.Minute)

	gin.SetMode(gin.TestMode)

	engine := gin.New()
	NewCalnetRoutes(engine.Group(""), bridge, auth.NewCASClient(casServer.URL), "https://api.ocf.berkeley.edu", true, 1800, logger.New("error"))

	return engine, bridge
}

func TestCalnetLoginRedirectsToCAS(t *testing.T) {
	t.Parallel()

	engine, _ := calnetEngine(t, 1234567)

	req := httptest.NewRequest(http.MethodGet, "/auth/calnet?next=https://www.ocf.berkeley.edu/", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	require.Contains(t, w.Header().Get("Location"), "/login?service=")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, _redirectCookie, cookies[0].Name)
}

func TestCalnetCallbackReturnsJSONToken(t *testing.T) {
	t.Parallel()

	engine, bridge := calnetEngine(t, 1234567)

	req := httptest.NewRequest(http.MethodGet, "/auth/calnet/callback?ticket=good-ticket", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Token string `json:"token"`
	}

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	uid, err := bridge.Verify(body.Token)
	require.NoError(t, err)
	require.Equal(t, 1234567, uid)
}

func TestCalnetCallbackRedirectsWithCookie(t *testing.T) {
	t.Parallel()

	engine, bridge := calnetEngine(t, 1234567)

	req := httptest.NewRequest(http.MethodGet, "/auth/calnet/callback?ticket=good-ticket", nil)
	req.AddCookie(&http.Cookie{Name: _redirectCookie, Value: "https://www.ocf.berkeley.edu/"})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "https://www.ocf.berkeley.edu/", w.Header().Get("Location"))

	var tokenCookie *http.Cookie

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == BridgeTokenCookie {
			tokenCookie = cookie
		}
	}

	require.NotNil(t, tokenCookie)
	require.True(t, tokenCookie.Secure)
	require.Equal(t, http.SameSiteStrictMode, tokenCookie.SameSite)
	require.Equal(t, 1800, tokenCookie.MaxAge)

	uid, err := bridge.Verify(tokenCookie.Value)
	require.NoError(t, err)
	require.Equal(t, 1234567, uid)
}

func TestCalnetCallbackBadTicket(t *testing.T) {
	t.Parallel()

	engine, _ := calnetEngine(t, 1234567)

	req := httptest.NewRequest(http.MethodGet, "/auth/calnet/callback?ticket=stale-ticket", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"detail":"got bad ticket"}`, w.Body.String())
}
