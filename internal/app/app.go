// Package app configures and runs application.
package app

import (
	"context"
	"fmt"
	"net/netip"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/ocf/api/config"
	"github.com/ocf/api/internal/cache"
	"github.com/ocf/api/internal/controller/httpapi"
	v1 "github.com/ocf/api/internal/controller/httpapi/v1"
	"github.com/ocf/api/internal/repository/ldapdir"
	"github.com/ocf/api/internal/tasks"
	"github.com/ocf/api/internal/usecase"
	"github.com/ocf/api/internal/usecase/accounts"
	"github.com/ocf/api/internal/usecase/auth"
	"github.com/ocf/api/internal/usecase/hours"
	"github.com/ocf/api/internal/usecase/labstats"
	"github.com/ocf/api/internal/usecase/shorturls"
	"github.com/ocf/api/internal/usecase/sqldb"
	"github.com/ocf/api/pkg/db"
	"github.com/ocf/api/pkg/httpserver"
	"github.com/ocf/api/pkg/logger"
)

var Version = "DEVELOPMENT"

// Run creates objects via constructors.
func Run(cfg *config.Config) {
	log := logger.New(cfg.Log.Level)
	cfg.App.Version = Version
	log.Info("app - Run - version: %s", cfg.App.Version)
	// route standard and Gin logs through our JSON logger
	logger.SetupStdLog(log)
	logger.SetupGin(log)

	ctx := context.Background()

	// Repository
	database, err := db.New(cfg.DB.URL, db.MaxPoolSize(cfg.DB.PoolMax))
	if err != nil {
		log.Fatal(fmt.Errorf("app - Run - db.New: %w", err))
	}

	defer database.Close()

	if err := db.Migrate(cfg.DB.URL); err != nil {
		log.Fatal(fmt.Errorf("app - Run - db.Migrate: %w", err))
	}

	// Authentication. The broker key fetch is one-shot: without it nobody
	// can be authenticated, so failure is fatal.
	broker, err := auth.NewBrokerVerifier(ctx, cfg.Auth.KeycloakURL, cfg.Auth.Realm, cfg.Auth.OIDCIssuer, log)
	if err != nil {
		log.Fatal(fmt.Errorf("app - Run - auth.NewBrokerVerifier: %w", err))
	}

	secret := cfg.EffectiveBridgeSecret()
	if secret == "" {
		log.Fatal("app - Run - bridge secret is not configured")
	}

	bridge := auth.NewBridge(auth.NewCodec(secret), cfg.Auth.BridgeExpiry)
	cas := auth.NewCASClient(cfg.Auth.CASURL)
	gate := v1.NewGate(broker, bridge, log)

	// Task queue
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
	})
	queue := tasks.New(redisClient, log)

	// Use case
	usecases, err := buildUsecases(cfg, database, queue, log)
	if err != nil {
		log.Fatal(fmt.Errorf("app - Run - buildUsecases: %w", err))
	}

	handler := setupHTTPHandler(cfg, log, usecases, gate, bridge, cas)

	httpServer := httpserver.New(
		handler,
		httpserver.Port(cfg.HTTP.Host, cfg.HTTP.Port),
		httpserver.TLS(cfg.HTTP.TLS.Enabled, cfg.HTTP.TLS.CertFile, cfg.HTTP.TLS.KeyFile),
	)

	waitForShutdown(log, httpServer)
}

func buildUsecases(cfg *config.Config, database *db.SQL, queue *tasks.Queue, log logger.Interface) (*usecase.Usecases, error) {
	networks := make([]netip.Prefix, 0, len(cfg.Lab.Networks))

	for _, raw := range cfg.Lab.Networks {
		prefix, err := netip.ParsePrefix(raw)
		if err != nil {
			return nil, fmt.Errorf("bad lab network %q: %w", raw, err)
		}

		networks = append(networks, prefix)
	}

	var v4Net, v6Net netip.Prefix

	for _, n := range networks {
		if n.Addr().Is4() {
			v4Net = n
		} else {
			v6Net = n
		}
	}

	directory := ldapdir.New(cfg.LDAP.Addr, cfg.LDAP.BaseDN, log)
	store := cache.New()

	sessions := sqldb.NewSessionRepo(database, log)
	registry := labstats.NewDesktopRegistry(directory, store, cfg.Lab.DomainSuffix, v4Net, v6Net)

	return &usecase.Usecases{
		Accounts:  accounts.New(directory, sqldb.NewQuotaRepo(database, log), queue, log),
		Tracker:   labstats.NewTracker(sessions, registry, networks, log),
		Stats:     labstats.NewStats(sessions, directory, store, cfg.Lab.DomainSuffix),
		Shorturls: shorturls.New(sqldb.NewShorturlRepo(database, log), log),
		Hours:     hours.DefaultSchedule(),
	}, nil
}

func setupHTTPHandler(cfg *config.Config, log logger.Interface, usecases *usecase.Usecases, gate *v1.Gate, bridge *auth.Bridge, cas *auth.CASClient) *gin.Engine {
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	handler := gin.New()

	// nothing sits in front of us that we trust; ClientIP must never come
	// from forwarding headers
	if err := handler.SetTrustedProxies(nil); err != nil {
		log.Fatal(fmt.Errorf("app - setupHTTPHandler - SetTrustedProxies: %w", err))
	}

	httpapi.NewRouter(handler, log, *usecases, gate, bridge, cas, cfg)

	return handler
}

func waitForShutdown(log logger.Interface, httpServer *httpserver.Server) {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app - Run - signal: %s", s.String())
	case err := <-httpServer.Notify():
		log.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	}

	if err := httpServer.Shutdown(); err != nil {
		log.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", err))
	}
}
