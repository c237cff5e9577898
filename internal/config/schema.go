package config

import (
	"time"
)

type Config struct {
	Server   ServerConfig  `yaml:"server"`
	Log      LogConfig     `yaml:"log"`
	CORS     CORSConfig    `yaml:"cors"`
	Sessions SessionConfig `yaml:"sessions"`
	Routes   RoutesConfig  `yaml:"routes"`
	Backend  BackendConfig `yaml:"backend"`
	Cache    CacheConfig   `yaml:"cache"`
	OIDC     *OIDCConfig   `yaml:"oidc"`
	Redis    *RedisConfig  `yaml:"redis"`
}

type ServerConfig struct {
	Port        int                `yaml:"port"`
	ExternalURL string             `yaml:"external_url"`
	Debug       *ServerDebugConfig `yaml:"debug"`
}

var DefaultServerConfig = ServerConfig{
	Port: 8080,
}

type ServerDebugConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
}

var DefaultDebugConfig = ServerDebugConfig{
	Enabled: false,
	Host:    "localhost",
	Port:    5123,
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

var DefaultLogConfig = LogConfig{
	Level:  "info",
	Format: "text",
}

type CORSConfig struct {
	AllowedOrigins   []string `yaml:"allowed_origins"`
	AllowedMethods   []string `yaml:"allowed_methods"`
	AllowedHeaders   []string `yaml:"allowed_headers"`
	ExposedHeaders   []string `yaml:"exposed_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAgeSeconds    int      `yaml:"max_age_seconds"`
}

var DefaultCORSConfig = CORSConfig{
	AllowedOrigins: []string{"http://localhost:5173"},
	AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	AllowedHeaders: []string{"*"},
	MaxAgeSeconds:  300,
}

type SessionConfig struct {
	Store        string        `yaml:"store"`
	FixedTimeout time.Duration `yaml:"fixed_timeout"`
	Name         string        `yaml:"name"`
	TokenCookie  string        `yaml:"token_cookie"`
	Secure       bool          `yaml:"secure"`
}

var DefaultSessionConfig = SessionConfig{
	Store:        "memory",
	FixedTimeout: 24 * time.Hour,
	Name:         "session_id",
	TokenCookie:  "auth_token",
	Secure:       true,
}

// RoutesConfig drives the route guard. Protected paths require a login,
// public auth paths bounce logged-in visitors back into the app. Matching is
// exact, no prefixes or wildcards.
type RoutesConfig struct {
	Protected     []string `yaml:"protected"`
	PublicAuth    []string `yaml:"public_auth"`
	LoginPath     string   `yaml:"login_path"`
	Landing       string   `yaml:"landing"`
	RedirectParam string   `yaml:"redirect_param"`
}

var DefaultRoutesConfig = RoutesConfig{
	Protected:     []string{"/try-now", "/profile", "/readings", "/settings"},
	PublicAuth:    []string{"/login", "/register", "/forgot-password", "/reset-password"},
	LoginPath:     "/login",
	Landing:       "/try-now",
	RedirectParam: "redirectedFrom",
}

type BackendConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

var DefaultBackendConfig = BackendConfig{
	Timeout: 10 * time.Second,
}

type OIDCConfig struct {
	ClientID     string   `yaml:"client_id"`
	ClientSecret string   `yaml:"client_secret"`
	IssuerURL    string   `yaml:"issuer_url"`
	RedirectURI  string   `yaml:"redirect_url"`
	Scopes       []string `yaml:"scopes"`
}

var DefaultOIDCConfig = OIDCConfig{
	Scopes: []string{"openid", "profile", "email", "groups"},
}

type CacheConfig struct {
	Type string        `yaml:"type"` //  "memory" or "redis"
	TTL  time.Duration `yaml:"ttl"`
}

var DefaultCacheConfig = CacheConfig{
	Type: "memory",
	TTL:  time.Minute,
}

type RedisConfig struct {
	Address      string               `yaml:"address"`
	Username     string               `yaml:"username"`
	Password     string               `yaml:"password"`
	Sentinel     *RedisSentinelConfig `yaml:"sentinel"`
	SessionIndex int                  `yaml:"session_index"`
	CacheIndex   int                  `yaml:"cache_index"`
}

var DefaultRedisConfig = RedisConfig{
	SessionIndex: 0,
	CacheIndex:   1,
}

type RedisSentinelConfig struct {
	MasterName        string   `yaml:"master_name"`
	SentinelAddresses []string `yaml:"addresses"`
	SentinelPassword  string   `yaml:"password"`
	SentinelUsername  string   `yaml:"username"`
}
