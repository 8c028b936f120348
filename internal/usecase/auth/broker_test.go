package auth_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ocf/api/internal/usecase/auth"
	"github.com/ocf/api/pkg/logger"
)

type brokerFixture struct {
	verifier *auth.BrokerVerifier
	key      *rsa.PrivateKey
}

// newBrokerFixture spins up a fake realm metadata endpoint backed by a fresh
// RSA key and builds a verifier against it.
func newBrokerFixture(t *testing.T) *brokerFixture {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	pub, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/realms/ocf", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"public_key": base64.StdEncoding.EncodeToString(pub),
		})
	}))
	t.Cleanup(srv.Close)

	verifier, err := auth.NewBrokerVerifier(context.Background(), srv.URL, "ocf", "", logger.New("error"))
	require.NoError(t, err)

	return &brokerFixture{verifier: verifier, key: key}
}

func (f *brokerFixture) sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(f.key)
	require.NoError(t, err)

	return token
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"preferred_username": "waddles",
		"email":              "waddles@ocf.berkeley.edu",
		"name":               "Waddles the Penguin",
		"scope":              "openid profile email",
		"groups":             []interface{}{"ocfstaff", "opstaff"},
		"exp":                time.Now().Add(time.Hour).Unix(),
	}
}

func TestBrokerVerify(t *testing.T) {
	t.Parallel()

	f := newBrokerFixture(t)

	token, err := f.verifier.Verify(context.Background(), f.sign(t, validClaims()))
	require.NoError(t, err)

	assert.Equal(t, "waddles", token.Username)
	assert.Equal(t, "waddles@ocf.berkeley.edu", token.Email)
	assert.Equal(t, "Waddles the Penguin", token.Name)
	assert.Equal(t, []string{"ocfstaff", "opstaff"}, token.Groups)
	assert.True(t, token.InGroup("ocfstaff"))
	assert.False(t, token.InGroup("ocfroot"))
	assert.NotEmpty(t, token.Raw)
}

func TestBrokerVerifyIgnoresAudience(t *testing.T) {
	t.Parallel()

	f := newBrokerFixture(t)

	claims := validClaims()
	claims["aud"] = "someone-else-entirely"

	_, err := f.verifier.Verify(context.Background(), f.sign(t, claims))
	assert.NoError(t, err)
}

func TestBrokerVerifyExpired(t *testing.T) {
	t.Parallel()

	f := newBrokerFixture(t)

	claims := validClaims()
	claims["exp"] = time.Now().Add(-time.Minute).Unix()

	_, err := f.verifier.Verify(context.Background(), f.sign(t, claims))
	assert.ErrorIs(t, err, auth.ErrTokenRejected)
}

func TestBrokerVerifyMissingClaim(t *testing.T) {
	t.Parallel()

	f := newBrokerFixture(t)

	for _, missing := range []string{"preferred_username", "email", "name", "scope", "groups"} {
		claims := validClaims()
		delete(claims, missing)

		_, err := f.verifier.Verify(context.Background(), f.sign(t, claims))
		assert.ErrorIs(t, err, auth.ErrTokenRejected, "missing %s", missing)
	}
}

func TestBrokerVerifyForeignKey(t *testing.T) {
	t.Parallel()

	f := newBrokerFixture(t)

	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, validClaims()).SignedString(otherKey)
	require.NoError(t, err)

	_, err = f.verifier.Verify(context.Background(), token)
	assert.ErrorIs(t, err, auth.ErrTokenRejected)
}

func TestNewBrokerVerifierFetchFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	_, err := auth.NewBrokerVerifier(context.Background(), srv.URL, "ocf", "", logger.New("error"))
	require.Error(t, err)
	assert.Contains(t, fmt.Sprint(err), "realm metadata")
}
