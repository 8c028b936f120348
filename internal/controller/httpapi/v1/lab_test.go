package v1

import (
	"net/http"
	"net/http/httptest"
	"net/netip"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/ocf/api/internal/cache"
	"github.com/ocf/api/internal/entity"
	"github.com/ocf/api/internal/mocks"
	"github.com/ocf/api/internal/usecase/labstats"
	"github.com/ocf/api/pkg/logger"
)

const _domainSuffix = "ocf.berkeley.edu"

var (
	_v4Net = netip.MustParsePrefix("169.229.226.0/24")
	_v6Net = netip.MustParsePrefix("2607:f140:8801::/48")
)

func labEngine(t *testing.T) (*gin.Engine, *mocks.MockSessionRepository, *mocks.MockDesktopDirectory) {
	t.Helper()

	mockCtl := gomock.NewController(t)
	repo := mocks.NewMockSessionRepository(mockCtl)
	dir := mocks.NewMockDesktopDirectory(mockCtl)

	registry := labstats.NewDesktopRegistry(dir, cache.New(), _domainSuffix, _v4Net, _v6Net)
	tracker := labstats.NewTracker(repo, registry, []netip.Prefix{_v4Net, _v6Net}, logger.New("error"))
	stats := labstats.NewStats(repo, dir, cache.New(), _domainSuffix)

	gin.SetMode(gin.TestMode)

	engine := gin.New()
	NewLabRoutes(engine.Group(""), tracker, stats, logger.New("error"))

	return engine, repo, dir
}

func postSessionLog(engine *gin.Engine, remoteAddr, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/session/log", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = remoteAddr

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	return w
}

func TestLogSessionHandler(t *testing.T) {
	t.Parallel()

	t.Run("active ping from registered desktop", func(t *testing.T) {
		t.Parallel()

		engine, repo, dir := labEngine(t)
		dir.EXPECT().Desktops(gomock.Any()).Return([]entity.Desktop{
			{Hostname: "eruption", IPv4: netip.MustParseAddr("169.229.226.12")},
		}, nil)
		repo.EXPECT().SessionExists(gomock.Any(), "eruption."+_domainSuffix, "alice").Return(true, nil)
		repo.EXPECT().RefreshSession(gomock.Any(), "eruption."+_domainSuffix, "alice").Return(nil)

		w := postSessionLog(engine, "169.229.226.12:40000", `{"state":"active","user":"alice"}`)
		require.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("address outside the lab", func(t *testing.T) {
		t.Parallel()

		engine, _, _ := labEngine(t)

		w := postSessionLog(engine, "8.8.8.8:40000", `{"state":"active","user":"alice"}`)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("forged forwarding header does not move the peer into the lab", func(t *testing.T) {
		t.Parallel()

		// no repository or directory expectations: the gate must judge the
		// socket peer, not client-supplied headers
		engine, _, _ := labEngine(t)

		req := httptest.NewRequest(http.MethodPost, "/session/log", strings.NewReader(`{"state":"active","user":"alice"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Forwarded-For", "169.229.226.12")
		req.Header.Set("X-Real-IP", "169.229.226.12")
		req.RemoteAddr = "203.0.113.9:40000"

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("in-range address with no desktop", func(t *testing.T) {
		t.Parallel()

		engine, _, dir := labEngine(t)
		dir.EXPECT().Desktops(gomock.Any()).Return([]entity.Desktop{}, nil)

		w := postSessionLog(engine, "169.229.226.250:40000", `{"state":"active","user":"alice"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), "169.229.226.250")
	})

	t.Run("invalid state", func(t *testing.T) {
		t.Parallel()

		engine, _, _ := labEngine(t)

		w := postSessionLog(engine, "169.229.226.12:40000", `{"state":"rebooting","user":"alice"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDesktopsHandler(t *testing.T) {
	t.Parallel()

	engine, repo, dir := labEngine(t)
	repo.EXPECT().HostsInUse(gomock.Any()).Return([]string{"eruption." + _domainSuffix}, nil)
	dir.EXPECT().Desktops(gomock.Any()).Return([]entity.Desktop{
		{Hostname: "eruption"}, {Hostname: "heartbleed"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/lab/desktops", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"desktops_in_use":["eruption"],"desktops_num":2}`, w.Body.String())
}

func TestNumUsersHandler(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		engine, repo, _ := labEngine(t)
		repo.EXPECT().UsersInLab(gomock.Any()).Return(9, nil)

		req := httptest.NewRequest(http.MethodGet, "/lab/num_users", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"num_users":9}`, w.Body.String())
	})

	t.Run("datastore error", func(t *testing.T) {
		t.Parallel()

		engine, repo, _ := labEngine(t)
		repo.EXPECT().UsersInLab(gomock.Any()).Return(0, errBoom)

		req := httptest.NewRequest(http.MethodGet, "/lab/num_users", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
