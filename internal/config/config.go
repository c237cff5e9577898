package config

import (
	"fmt"
	"net"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		return nil, fmt.Errorf("config file path is required (use -config or -c)")
	}

	// Read and parse YAML
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnvironmentOverrides(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

var (
	EnvBackendURL            = "ORACLE_BACKEND_URL"
	EnvOIDCClientID          = "ORACLE_OIDC_CLIENT_ID"
	EnvOIDCClientSecret      = "ORACLE_OIDC_CLIENT_SECRET"
	EnvOIDCIssuerURL         = "ORACLE_OIDC_ISSUER_URL"
	EnvOIDCRedirectURL       = "ORACLE_OIDC_REDIRECT_URL"
	EnvRedisPassword         = "ORACLE_REDIS_PASSWORD"
	EnvRedisUsername         = "ORACLE_REDIS_USERNAME"
	EnvRedisSentinelUsername = "ORACLE_REDIS_SENTINEL_USERNAME"
	EnvRedisSentinelPassword = "ORACLE_REDIS_SENTINEL_PASSWORD"
)

func applyEnvironmentOverrides(config *Config) {
	if backendURL := os.Getenv(EnvBackendURL); backendURL != "" {
		config.Backend.URL = backendURL
	}

	if clientID := os.Getenv(EnvOIDCClientID); clientID != "" {
		if config.OIDC == nil {
			config.OIDC = &OIDCConfig{}
		}
		config.OIDC.ClientID = clientID
	}

	if clientSecret := os.Getenv(EnvOIDCClientSecret); clientSecret != "" {
		if config.OIDC == nil {
			config.OIDC = &OIDCConfig{}
		}
		config.OIDC.ClientSecret = clientSecret
	}

	if issuerURL := os.Getenv(EnvOIDCIssuerURL); issuerURL != "" {
		if config.OIDC == nil {
			config.OIDC = &OIDCConfig{}
		}
		config.OIDC.IssuerURL = issuerURL
	}

	if redirectURL := os.Getenv(EnvOIDCRedirectURL); redirectURL != "" {
		if config.OIDC == nil {
			config.OIDC = &OIDCConfig{}
		}
		config.OIDC.RedirectURI = redirectURL
	}

	if redisPassword := os.Getenv(EnvRedisPassword); redisPassword != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		config.Redis.Password = redisPassword
	}

	if redisUsername := os.Getenv(EnvRedisUsername); redisUsername != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		config.Redis.Username = redisUsername
	}

	if sentinelUsername := os.Getenv(EnvRedisSentinelUsername); sentinelUsername != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		if config.Redis.Sentinel == nil {
			config.Redis.Sentinel = &RedisSentinelConfig{}
		}
		config.Redis.Sentinel.SentinelUsername = sentinelUsername
	}

	if sentinelPassword := os.Getenv(EnvRedisSentinelPassword); sentinelPassword != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		if config.Redis.Sentinel == nil {
			config.Redis.Sentinel = &RedisSentinelConfig{}
		}
		config.Redis.Sentinel.SentinelPassword = sentinelPassword
	}
}

func validateConfig(config *Config) error {

	err := config.validateServerConfig()
	if err != nil {
		return err
	}

	err = config.validateLogConfig()
	if err != nil {
		return err
	}

	err = config.validateCORSConfig()
	if err != nil {
		return err
	}

	err = config.validateSessionConfig()
	if err != nil {
		return err
	}

	err = config.validateRoutesConfig()
	if err != nil {
		return err
	}

	err = config.validateBackendConfig()
	if err != nil {
		return err
	}

	err = config.validateCacheConfig()
	if err != nil {
		return err
	}

	err = config.validateOIDCConfig()
	if err != nil {
		return err
	}

	if config.Cache.Type == "redis" || config.Sessions.Store == "redis" {
		err = config.validateRedisConfig()
		if err != nil {
			return err
		}
	}

	return nil
}

func (c *Config) validateServerConfig() error {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultServerConfig.Port
	}

	if c.Server.ExternalURL != "" {
		if err := validateURL(c.Server.ExternalURL, "server.external_url"); err != nil {
			return err
		}
	} else if c.OIDC != nil {
		return fmt.Errorf("server.external_url is required when oidc is configured")
	}

	if c.Server.Debug != nil && c.Server.Debug.Enabled {
		if c.Server.Debug.Host == "" {
			c.Server.Debug.Host = DefaultDebugConfig.Host
		}
		if c.Server.Debug.Port <= 0 || c.Server.Debug.Port >= 65535 {
			c.Server.Debug.Port = DefaultDebugConfig.Port
		}
	}

	return nil
}

func (c *Config) validateLogConfig() error {
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogConfig.Format
	} else {
		switch c.Log.Format {
		case "text", "json":
		default:
			return fmt.Errorf("invalid log format: %s, options are text or json", c.Log.Format)
		}
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLogConfig.Level
	} else {
		switch c.Log.Level {
		case "debug", "info", "warn", "error":
		default:
			return fmt.Errorf("invalid log level: %s, options are debug, info, warn, error", c.Log.Level)
		}
	}

	return nil
}

func (c *Config) validateCORSConfig() error {
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = DefaultCORSConfig.AllowedOrigins
	}
	if len(c.CORS.AllowedMethods) == 0 {
		c.CORS.AllowedMethods = DefaultCORSConfig.AllowedMethods
	}
	if len(c.CORS.AllowedHeaders) == 0 {
		c.CORS.AllowedHeaders = DefaultCORSConfig.AllowedHeaders
	}
	if c.CORS.MaxAgeSeconds == 0 {
		c.CORS.MaxAgeSeconds = DefaultCORSConfig.MaxAgeSeconds
	}

	return nil
}

func (c *Config) validateSessionConfig() error {
	if c.Sessions.Store == "" {
		c.Sessions.Store = DefaultSessionConfig.Store
	} else {
		switch c.Sessions.Store {
		case "memory", "redis":
		default:
			return fmt.Errorf("invalid session store: %s, options are 'memory' or 'redis'", c.Sessions.Store)
		}
	}

	if c.Sessions.Name == "" {
		c.Sessions.Name = DefaultSessionConfig.Name
	}

	if c.Sessions.TokenCookie == "" {
		c.Sessions.TokenCookie = DefaultSessionConfig.TokenCookie
	}

	if c.Sessions.FixedTimeout == 0 {
		c.Sessions.FixedTimeout = DefaultSessionConfig.FixedTimeout
	}

	return nil
}

func (c *Config) validateRoutesConfig() error {
	if len(c.Routes.Protected) == 0 {
		c.Routes.Protected = DefaultRoutesConfig.Protected
	}

	if len(c.Routes.PublicAuth) == 0 {
		c.Routes.PublicAuth = DefaultRoutesConfig.PublicAuth
	}

	if c.Routes.LoginPath == "" {
		c.Routes.LoginPath = DefaultRoutesConfig.LoginPath
	}

	if c.Routes.Landing == "" {
		c.Routes.Landing = DefaultRoutesConfig.Landing
	}

	if c.Routes.RedirectParam == "" {
		c.Routes.RedirectParam = DefaultRoutesConfig.RedirectParam
	}

	for i, route := range c.Routes.Protected {
		if !strings.HasPrefix(route, "/") {
			return fmt.Errorf("routes.protected[%d] must start with '/', got %q", i, route)
		}
	}

	for i, route := range c.Routes.PublicAuth {
		if !strings.HasPrefix(route, "/") {
			return fmt.Errorf("routes.public_auth[%d] must start with '/', got %q", i, route)
		}

		if slices.Contains(c.Routes.Protected, route) {
			return fmt.Errorf("route %q cannot be both protected and public_auth", route)
		}
	}

	if !strings.HasPrefix(c.Routes.LoginPath, "/") {
		return fmt.Errorf("routes.login_path must start with '/', got %q", c.Routes.LoginPath)
	}

	if !strings.HasPrefix(c.Routes.Landing, "/") {
		return fmt.Errorf("routes.landing must start with '/', got %q", c.Routes.Landing)
	}

	return nil
}

func (c *Config) validateBackendConfig() error {
	if err := validateURL(c.Backend.URL, "backend.url"); err != nil {
		return err
	}

	if c.Backend.Timeout < 0 {
		return fmt.Errorf("backend.timeout must be non-negative, got %s", c.Backend.Timeout)
	}

	if c.Backend.Timeout == 0 {
		c.Backend.Timeout = DefaultBackendConfig.Timeout
	}

	return nil
}

func (c *Config) validateCacheConfig() error {
	if c.Cache.Type == "" {
		c.Cache.Type = DefaultCacheConfig.Type
	}

	switch c.Cache.Type {
	case "memory":
		break
	case "redis":
		if c.Redis == nil {
			return fmt.Errorf("redis configuration must be enabled to use redis for the profile cache")
		}
	default:
		return fmt.Errorf("invalid cache type: %s, must be 'memory' or 'redis'", c.Cache.Type)
	}

	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must be non-negative, got %s", c.Cache.TTL)
	}

	if c.Cache.TTL == 0 {
		c.Cache.TTL = DefaultCacheConfig.TTL
	}

	return nil
}

func (c *Config) validateOIDCConfig() error {
	if c.OIDC == nil {
		return nil
	}

	if c.OIDC.ClientID == "" {
		return fmt.Errorf("oidc client id is required")
	}

	if c.OIDC.ClientSecret == "" {
		return fmt.Errorf("oidc client secret is required")
	}

	if err := validateURL(c.OIDC.IssuerURL, "oidc.issuer_url"); err != nil {
		return err
	}

	if err := validateURL(c.OIDC.RedirectURI, "oidc.redirect_url"); err != nil {
		return err
	}

	if len(c.OIDC.Scopes) == 0 {
		c.OIDC.Scopes = DefaultOIDCConfig.Scopes
	}

	return nil
}

func (c *Config) validateRedisConfig() error {
	if c.Redis == nil {
		return fmt.Errorf("redis config is nil")
	}

	if c.Redis.Address == "" {
		return fmt.Errorf("redis address is required")
	}

	if _, _, err := net.SplitHostPort(c.Redis.Address); err != nil {
		return fmt.Errorf("invalid redis address format (expected host:port): %w", err)
	}

	// Apply default indices if not set
	if c.Redis.SessionIndex == 0 && c.Redis.CacheIndex == 0 {
		c.Redis.SessionIndex = DefaultRedisConfig.SessionIndex
		c.Redis.CacheIndex = DefaultRedisConfig.CacheIndex
	}

	if c.Redis.SessionIndex < 0 {
		return fmt.Errorf("redis session_index must be non-negative, got %d", c.Redis.SessionIndex)
	}

	if c.Redis.CacheIndex < 0 {
		return fmt.Errorf("redis cache_index must be non-negative, got %d", c.Redis.CacheIndex)
	}

	if c.Redis.SessionIndex == c.Redis.CacheIndex {
		return fmt.Errorf("redis session_index and cache_index should be different to avoid data collision (both are %d)", c.Redis.SessionIndex)
	}

	const maxRedisDB = 15
	if c.Redis.SessionIndex > maxRedisDB {
		return fmt.Errorf("redis session_index %d exceeds typical maximum of %d", c.Redis.SessionIndex, maxRedisDB)
	}

	if c.Redis.CacheIndex > maxRedisDB {
		return fmt.Errorf("redis cache_index %d exceeds typical maximum of %d", c.Redis.CacheIndex, maxRedisDB)
	}

	if c.Redis.Sentinel != nil {
		if c.Redis.Sentinel.MasterName == "" {
			return fmt.Errorf("sentinel master_name is required")
		}
		if len(c.Redis.Sentinel.SentinelAddresses) == 0 {
			return fmt.Errorf("at least one sentinel address is required")
		}
	}

	return nil
}
