package httpserver_test

import (
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ocf/api/pkg/httpserver"
)

func TestServeAndShutdown(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.HandleFunc("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	srv := httpserver.New(mux, httpserver.Listener(ln), httpserver.ShutdownTimeout(time.Second))

	resp, err := http.Get(fmt.Sprintf("http://%s/ping", ln.Addr()))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	require.NoError(t, srv.Shutdown())

	select {
	case err := <-srv.Notify():
		require.ErrorIs(t, err, http.ErrServerClosed)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestTLSRequiresCertAndKey(t *testing.T) {
	t.Parallel()

	srv := httpserver.New(http.NewServeMux(), httpserver.TLS(true, "cert.pem", ""))

	select {
	case err := <-srv.Notify():
		require.ErrorIs(t, err, httpserver.ErrTLSCertKeyMismatch)
	case <-time.After(2 * time.Second):
		t.Fatal("expected startup error")
	}
}
