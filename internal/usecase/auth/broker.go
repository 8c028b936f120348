package auth

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"

	"github.com/ocf/api/internal/entity"
	"github.com/ocf/api/pkg/logger"
)

const _realmFetchTimeout = 10 * time.Second

// BrokerVerifier verifies bearer tokens issued by the identity broker. The
// broker's signing key is fetched once at construction and held for process
// lifetime; if the broker rotates its key the service must be restarted.
//
// When an OIDC issuer is configured, verification instead goes through the
// discovery-based verifier with the client-ID check skipped: the broker issues
// tokens for multiple client audiences and this service accepts any of them.
type BrokerVerifier struct {
	publicKey    *rsa.PublicKey
	oidcVerifier *oidc.IDTokenVerifier
	log          logger.Interface
}

// realmMetadata is the broker-published realm document. The public_key field
// is a PEM body without header/footer lines; we wrap it ourselves.
type realmMetadata struct {
	PublicKey string `json:"public_key"`
}

// NewBrokerVerifier fetches the broker's current signing key from its realm
// metadata endpoint. An error here is process-fatal for the caller: the
// service cannot authenticate anyone without the key.
func NewBrokerVerifier(ctx context.Context, keycloakURL, realm, oidcIssuer string, log logger.Interface) (*BrokerVerifier, error) {
	if oidcIssuer != "" {
		provider, err := oidc.NewProvider(ctx, oidcIssuer)
		if err != nil {
			return nil, fmt.Errorf("auth - NewBrokerVerifier - oidc.NewProvider: %w", err)
		}

		return &BrokerVerifier{
			oidcVerifier: provider.Verifier(&oidc.Config{SkipClientIDCheck: true}),
			log:          log,
		}, nil
	}

	key, err := fetchRealmPublicKey(ctx, keycloakURL, realm)
	if err != nil {
		return nil, err
	}

	return &BrokerVerifier{publicKey: key, log: log}, nil
}

func fetchRealmPublicKey(ctx context.Context, keycloakURL, realm string) (*rsa.PublicKey, error) {
	ctx, cancel := context.WithTimeout(ctx, _realmFetchTimeout)
	defer cancel()

	url := fmt.Sprintf("%s/realms/%s", keycloakURL, realm)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth - fetchRealmPublicKey: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("auth - fetchRealmPublicKey: realm metadata returned %d", resp.StatusCode)
	}

	var meta realmMetadata
	if err := json.NewDecoder(resp.Body).Decode(&meta); err != nil {
		return nil, fmt.Errorf("auth - fetchRealmPublicKey: %w", err)
	}

	if meta.PublicKey == "" {
		return nil, fmt.Errorf("auth - fetchRealmPublicKey: realm metadata has no public_key")
	}

	pemKey := "-----BEGIN PUBLIC KEY-----\n" + meta.PublicKey + "\n-----END PUBLIC KEY-----"

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pemKey))
	if err != nil {
		return nil, fmt.Errorf("auth - fetchRealmPublicKey: %w", err)
	}

	return key, nil
}

// Verify checks the bearer token's signature and expiry against the broker key
// and builds a UserToken. Audience is intentionally not enforced. Every
// failure collapses to ErrTokenRejected; the cause is logged, never returned.
func (v *BrokerVerifier) Verify(ctx context.Context, bearer string) (*entity.UserToken, error) {
	claims, err := v.decode(ctx, bearer)
	if err != nil {
		v.log.Info("auth - BrokerVerifier.Verify: %s", err)

		return nil, ErrTokenRejected
	}

	token, err := userTokenFromClaims(claims)
	if err != nil {
		v.log.Info("auth - BrokerVerifier.Verify: %s", err)

		return nil, ErrTokenRejected
	}

	return token, nil
}

func (v *BrokerVerifier) decode(ctx context.Context, bearer string) (map[string]interface{}, error) {
	if v.oidcVerifier != nil {
		idToken, err := v.oidcVerifier.Verify(ctx, bearer)
		if err != nil {
			return nil, err
		}

		claims := map[string]interface{}{}
		if err := idToken.Claims(&claims); err != nil {
			return nil, err
		}

		return claims, nil
	}

	claims := jwt.MapClaims{}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
	)

	token, err := parser.ParseWithClaims(bearer, claims, func(_ *jwt.Token) (interface{}, error) {
		return v.publicKey, nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, ErrTokenRejected
	}

	return claims, nil
}

// userTokenFromClaims resolves the required identity fields at decode time.
// A missing field fails construction immediately rather than surfacing later
// as an ad hoc map lookup error.
func userTokenFromClaims(claims map[string]interface{}) (*entity.UserToken, error) {
	username, ok := claims["preferred_username"].(string)
	if !ok || username == "" {
		return nil, fmt.Errorf("%w: preferred_username", ErrIncompleteClaims)
	}

	email, ok := claims["email"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: email", ErrIncompleteClaims)
	}

	name, ok := claims["name"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: name", ErrIncompleteClaims)
	}

	scope, ok := claims["scope"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: scope", ErrIncompleteClaims)
	}

	rawGroups, ok := claims["groups"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: groups", ErrIncompleteClaims)
	}

	groups := make([]string, 0, len(rawGroups))

	for _, g := range rawGroups {
		group, ok := g.(string)
		if !ok {
			return nil, fmt.Errorf("%w: groups", ErrIncompleteClaims)
		}

		groups = append(groups, group)
	}

	return &entity.UserToken{
		Username: username,
		Email:    email,
		Name:     name,
		Scope:    scope,
		Groups:   groups,
		Raw:      claims,
	}, nil
}
