package labstats_test

import (
	"context"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ocf/api/internal/cache"
	"github.com/ocf/api/internal/entity"
	"github.com/ocf/api/internal/mocks"
	"github.com/ocf/api/internal/usecase/labstats"
)

func registryTest(t *testing.T) (*labstats.DesktopRegistry, *mocks.MockDesktopDirectory) {
	t.Helper()

	mockCtl := gomock.NewController(t)
	dir := mocks.NewMockDesktopDirectory(mockCtl)

	return labstats.NewDesktopRegistry(dir, cache.New(), _domainSuffix, _v4Net, _v6Net), dir
}

func TestResolve(t *testing.T) {
	t.Parallel()

	registry, dir := registryTest(t)
	dir.EXPECT().Desktops(gomock.Any()).Return([]entity.Desktop{
		{Hostname: "eruption", IPv4: _eruption},
	}, nil)

	// populate the cache before the parallel lookups
	_, err := registry.Resolve(context.Background(), _eruption)
	require.NoError(t, err)

	tests := []struct {
		name string
		addr netip.Addr
		want string
	}{
		{name: "ipv4", addr: _eruption, want: _eruptionFQDN},
		{name: "synthesized ipv6", addr: netip.MustParseAddr("2607:f140:8801::1:c"), want: _eruptionFQDN},
		{name: "v4-mapped v6", addr: netip.MustParseAddr("::ffff:169.229.226.12"), want: _eruptionFQDN},
		{name: "unregistered", addr: netip.MustParseAddr("169.229.226.99"), want: ""},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			host, err := registry.Resolve(context.Background(), tc.addr)
			require.NoError(t, err)
			require.Equal(t, tc.want, host)
		})
	}
}

func TestResolveCachesDirectory(t *testing.T) {
	t.Parallel()

	registry, dir := registryTest(t)

	// one directory round trip serves every lookup inside the TTL
	dir.EXPECT().Desktops(gomock.Any()).Return([]entity.Desktop{
		{Hostname: "eruption", IPv4: _eruption},
	}, nil).Times(1)

	for range 3 {
		host, err := registry.Resolve(context.Background(), _eruption)
		require.NoError(t, err)
		require.Equal(t, _eruptionFQDN, host)
	}
}

func TestResolveDirectoryError(t *testing.T) {
	t.Parallel()

	registry, dir := registryTest(t)
	dir.EXPECT().Desktops(gomock.Any()).Return(nil, context.DeadlineExceeded)

	_, err := registry.Resolve(context.Background(), _eruption)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
