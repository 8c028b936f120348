package v1

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/ocf/api/internal/entity"
	"github.com/ocf/api/internal/usecase/auth"
	"github.com/ocf/api/pkg/logger"
)

type fakeBroker struct {
	token *entity.UserToken
}

func (f *fakeBroker) Verify(_ context.Context, bearer string) (*entity.UserToken, error) {
	if f.token == nil || bearer != "good-token" {
		return nil, auth.ErrTokenRejected
	}

	return f.token, nil
}

type fakeBridge struct {
	uid int
}

func (f *fakeBridge) Verify(token string) (int, error) {
	if f.uid == 0 || token != "good-bridge-token" {
		return 0, auth.InvalidTokenError{Reason: auth.ReasonMalformed}
	}

	return f.uid, nil
}

func gateEngine(token *entity.UserToken, uid int) (*gin.Engine, *Gate) {
	gin.SetMode(gin.TestMode)

	gate := NewGate(&fakeBroker{token: token}, &fakeBridge{uid: uid}, logger.New("error"))
	engine := gin.New()

	return engine, gate
}

func staffToken() *entity.UserToken {
	return &entity.UserToken{
		Username: "gstaff",
		Email:    "gstaff@ocf.berkeley.edu",
		Name:     "Guardian Staff",
		Groups:   []string{"ocfstaff"},
	}
}

func TestRequireUser(t *testing.T) {
	t.Parallel()

	engine, gate := gateEngine(staffToken(), 0)
	engine.GET("/whoami", gate.RequireUser(), func(c *gin.Context) {
		token, ok := UserFromContext(c)
		require.True(t, ok)
		c.String(http.StatusOK, token.Username)
	})

	tests := []struct {
		name       string
		authHeader string
		wantCode   int
	}{
		{name: "no credential", authHeader: "", wantCode: http.StatusUnauthorized},
		{name: "not a bearer header", authHeader: "Basic Zm9v", wantCode: http.StatusUnauthorized},
		{name: "rejected token", authHeader: "Bearer bad-token", wantCode: http.StatusUnauthorized},
		{name: "valid token", authHeader: "Bearer good-token", wantCode: http.StatusOK},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}

			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			require.Equal(t, tc.wantCode, w.Code)

			if tc.wantCode == http.StatusUnauthorized {
				require.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
			} else {
				require.Equal(t, "gstaff", w.Body.String())
			}
		})
	}
}

func TestRequireUserInGroup(t *testing.T) {
	t.Parallel()

	engine, gate := gateEngine(staffToken(), 0)
	engine.GET("/staff", gate.RequireUserInGroup(GroupStaff), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	engine.GET("/root", gate.RequireUserInGroup(GroupRoot), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name     string
		path     string
		wantCode int
	}{
		{name: "member", path: "/staff", wantCode: http.StatusOK},
		{name: "not a member", path: "/root", wantCode: http.StatusForbidden},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			req.Header.Set("Authorization", "Bearer good-token")

			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			require.Equal(t, tc.wantCode, w.Code)
		})
	}
}

func TestRequireUID(t *testing.T) {
	t.Parallel()

	engine, gate := gateEngine(nil, 1234567)
	engine.GET("/uid", gate.RequireUID(), func(c *gin.Context) {
		uid, ok := UIDFromContext(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"uid": uid})
	})

	tests := []struct {
		name     string
		cookie   string
		header   string
		wantCode int
	}{
		{name: "valid cookie", cookie: "good-bridge-token", wantCode: http.StatusOK},
		{name: "valid header", header: "good-bridge-token", wantCode: http.StatusOK},
		{name: "cookie wins over header", cookie: "good-bridge-token", header: "garbage", wantCode: http.StatusOK},
		{name: "bad token", cookie: "garbage", wantCode: http.StatusUnauthorized},
		{name: "no credential", wantCode: http.StatusUnauthorized},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/uid", nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: BridgeTokenCookie, Value: tc.cookie})
			}

			if tc.header != "" {
				req.Header.Set(BridgeTokenHeader, tc.header)
			}

			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			require.Equal(t, tc.wantCode, w.Code)

			if tc.wantCode == http.StatusUnauthorized {
				require.JSONEq(t, `{"detail":"malformed jwt"}`, w.Body.String())
			}
		})
	}
}

var errBoom = errors.New("boom")
