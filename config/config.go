// Package config loads and validates the API configuration.
package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v2"
)

// DebugBridgeSecret signs bridge tokens when debug mode is on. It is a fixed,
// well-known value and therefore insecure; production deployments must set
// auth.bridge_secret (AUTH_BRIDGE_SECRET) instead.
const DebugBridgeSecret = "ocf-debug-bridge-secret-do-not-use"

type (
	// Config -.
	Config struct {
		App   `yaml:"app"`
		HTTP  `yaml:"http"`
		Log   `yaml:"logger"`
		Auth  `yaml:"auth"`
		DB    `yaml:"postgres"`
		Redis `yaml:"redis"`
		LDAP  `yaml:"ldap"`
		Lab   `yaml:"lab"`
	}

	// App -.
	App struct {
		Name    string `env-required:"true" yaml:"name" env:"APP_NAME"`
		Version string `yaml:"version" env:"APP_VERSION"`
		Debug   bool   `yaml:"debug" env:"APP_DEBUG"`
	}

	// HTTP -.
	HTTP struct {
		Host             string `env-required:"true" yaml:"host" env:"HTTP_HOST"`
		Port             string `env-required:"true" yaml:"port" env:"HTTP_PORT"`
		ExternalHost     string `yaml:"external_host" env:"HTTP_EXTERNAL_HOST"`
		AllowOriginRegex string `yaml:"allow_origin_regex" env:"HTTP_ALLOW_ORIGIN_REGEX"`
		TLS              TLS    `yaml:"tls"`
	}

	// TLS -.
	TLS struct {
		Enabled  bool   `yaml:"enabled" env:"HTTP_TLS_ENABLED"`
		CertFile string `yaml:"certFile" env:"HTTP_TLS_CERT_FILE"`
		KeyFile  string `yaml:"keyFile" env:"HTTP_TLS_KEY_FILE"`
	}

	// Log -.
	Log struct {
		Level string `env-required:"true" yaml:"log_level" env:"LOG_LEVEL"`
	}

	// Auth holds the identity broker, CAS, and bridge token settings.
	Auth struct {
		KeycloakURL  string        `env-required:"true" yaml:"keycloak_url" env:"AUTH_KEYCLOAK_URL"`
		Realm        string        `env-required:"true" yaml:"realm" env:"AUTH_REALM"`
		OIDCIssuer   string        `yaml:"oidc_issuer" env:"AUTH_OIDC_ISSUER"`
		CASURL       string        `env-required:"true" yaml:"cas_url" env:"AUTH_CAS_URL"`
		BridgeSecret string        `yaml:"bridge_secret" env:"AUTH_BRIDGE_SECRET"`
		BridgeExpiry time.Duration `yaml:"bridge_expiry" env:"AUTH_BRIDGE_EXPIRY"`
	}

	// DB -.
	DB struct {
		PoolMax int    `env-required:"true" yaml:"pool_max" env:"DB_POOL_MAX"`
		URL     string `env:"DB_URL"`
	}

	// Redis holds the task queue broker settings.
	Redis struct {
		Addr     string `yaml:"addr" env:"REDIS_ADDR"`
		Password string `yaml:"password" env:"REDIS_PASSWORD"`
	}

	// LDAP -.
	LDAP struct {
		Addr   string `yaml:"addr" env:"LDAP_ADDR"`
		BaseDN string `yaml:"base_dn" env:"LDAP_BASE_DN"`
	}

	// Lab -.
	Lab struct {
		Networks     []string `yaml:"networks" env:"LAB_NETWORKS"`
		DomainSuffix string   `yaml:"domain_suffix" env:"LAB_DOMAIN_SUFFIX"`
	}
)

// Scheme returns the URL scheme for self-referencing URLs. Debug deployments
// run behind plain HTTP.
func (c *Config) Scheme() string {
	if c.Debug {
		return "http"
	}

	return "https"
}

// EffectiveBridgeSecret returns the configured bridge signing secret, falling
// back to the fixed debug value only when debug mode is on.
func (c *Config) EffectiveBridgeSecret() string {
	if c.Auth.BridgeSecret != "" {
		return c.Auth.BridgeSecret
	}

	if c.Debug {
		return DebugBridgeSecret
	}

	return ""
}

// defaultConfig constructs the in-memory default configuration.
func defaultConfig() *Config {
	return &Config{
		App: App{
			Name:    "ocfapi",
			Version: "DEVELOPMENT",
			Debug:   false,
		},
		HTTP: HTTP{
			Host:             "localhost",
			Port:             "8000",
			ExternalHost:     "api.ocf.berkeley.edu",
			AllowOriginRegex: `https://([^.]+\.)?new\.ocf\.berkeley\.edu`,
			TLS: TLS{
				Enabled:  false,
				CertFile: "",
				KeyFile:  "",
			},
		},
		Log: Log{
			Level: "info",
		},
		Auth: Auth{
			KeycloakURL:  "https://auth.ocf.berkeley.edu/auth",
			Realm:        "ocf",
			OIDCIssuer:   "",
			CASURL:       "https://auth.berkeley.edu/cas",
			BridgeSecret: "",
			BridgeExpiry: 30 * time.Minute,
		},
		DB: DB{
			PoolMax: 2,
			URL:     "",
		},
		Redis: Redis{
			Addr:     "127.0.0.1:6379",
			Password: "",
		},
		LDAP: LDAP{
			Addr:   "ldaps://ldap.ocf.berkeley.edu",
			BaseDN: "dc=OCF,dc=Berkeley,dc=EDU",
		},
		Lab: Lab{
			Networks:     []string{"169.229.226.0/24", "2607:f140:8801::/48"},
			DomainSuffix: "ocf.berkeley.edu",
		},
	}
}

// resolveConfigPath determines the effective config file path based on a flag value or default location.
func resolveConfigPath(configPathFlag string) (string, error) {
	if configPathFlag != "" {
		return configPathFlag, nil
	}

	ex, err := os.Executable()
	if err != nil {
		return "", err
	}

	exPath := filepath.Dir(ex)

	return filepath.Join(exPath, "config", "config.yml"), nil
}

// readOrInitConfig attempts to read the config file; if it doesn't exist, writes the provided cfg to disk.
func readOrInitConfig(configPath string, cfg *Config) error {
	err := cleanenv.ReadConfig(configPath, cfg)
	if err == nil {
		return nil
	}

	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		configDir := filepath.Dir(configPath)
		if mkErr := os.MkdirAll(configDir, os.ModePerm); mkErr != nil {
			return mkErr
		}

		file, cErr := os.Create(configPath)
		if cErr != nil {
			return cErr
		}
		defer file.Close()

		encoder := yaml.NewEncoder(file)
		defer encoder.Close()

		if encErr := encoder.Encode(cfg); encErr != nil {
			return encErr
		}

		return nil
	}

	return err
}

// NewConfig returns app config.
func NewConfig() (*Config, error) {
	cfg := defaultConfig()

	// Define a command line flag for the config path
	var configPathFlag string
	if flag.Lookup("config") == nil {
		flag.StringVar(&configPathFlag, "config", "", "path to config file")
	}

	if !flag.Parsed() {
		flag.Parse()
	}

	configPath, err := resolveConfigPath(configPathFlag)
	if err != nil {
		return nil, err
	}

	if err := readOrInitConfig(configPath, cfg); err != nil {
		return nil, err
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
