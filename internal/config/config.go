package config

import (
	"slices"
	"time"
)

// Storage driver names accepted in storage.driver.
const (
	DriverEmbedded  = "embedded"
	DriverNetworked = "networked"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	CORS     CORSConfig     `yaml:"cors"`
	Storage  StorageConfig  `yaml:"storage"`
	Database DatabaseConfig `yaml:"database"`
	Resolver ResolverConfig `yaml:"resolver"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host              string        `yaml:"host"                 env:"SERVER_HOST"                 env-default:"0.0.0.0"`
	Port              int           `yaml:"port"                 env:"SERVER_PORT"                 env-default:"8080"`
	ReadTimeout       time.Duration `yaml:"read_timeout"         env:"SERVER_READ_TIMEOUT"         env-default:"10s"`
	WriteTimeout      time.Duration `yaml:"write_timeout"        env:"SERVER_WRITE_TIMEOUT"        env-default:"30s"`
	IdleTimeout       time.Duration `yaml:"idle_timeout"         env:"SERVER_IDLE_TIMEOUT"         env-default:"60s"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"     env:"SERVER_SHUTDOWN_TIMEOUT"     env-default:"10s"`
	AddTopicPerMinute int           `yaml:"add_topic_per_minute" env:"SERVER_ADD_TOPIC_PER_MINUTE" env-default:"30"`
}

// StorageConfig selects and tunes the storage backend.
type StorageConfig struct {
	Driver     string        `yaml:"driver"      env:"STORAGE_DRIVER"      env-default:"embedded"`
	SQLitePath string        `yaml:"sqlite_path" env:"STORAGE_SQLITE_PATH" env-default:"./topiclog.db"`
	OpTimeout  time.Duration `yaml:"op_timeout"  env:"STORAGE_OP_TIMEOUT"  env-default:"5s"`
}

// DatabaseConfig holds PostgreSQL connection settings for the networked driver.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// ResolverConfig holds settings for the knowledge source lookups.
type ResolverConfig struct {
	SummaryURL   string        `yaml:"summary_url"   env:"RESOLVER_SUMMARY_URL"   env-default:"https://en.wikipedia.org/api/rest_v1/page/summary"`
	SearchURL    string        `yaml:"search_url"    env:"RESOLVER_SEARCH_URL"    env-default:"https://en.wikipedia.org/w/api.php"`
	UserAgent    string        `yaml:"user_agent"    env:"RESOLVER_USER_AGENT"    env-default:"topiclog/1.0 (https://github.com/heartmarshall/topiclog)"`
	StageTimeout time.Duration `yaml:"stage_timeout" env:"RESOLVER_STAGE_TIMEOUT" env-default:"3s"`
}

// AuthConfig holds token and credential settings.
type AuthConfig struct {
	JWTSecret          string        `yaml:"jwt_secret"           env:"AUTH_JWT_SECRET"           env-required:"true"`
	JWTIssuer          string        `yaml:"jwt_issuer"           env:"AUTH_JWT_ISSUER"           env-default:"topiclog"`
	AccessTokenTTL     time.Duration `yaml:"access_token_ttl"     env:"AUTH_ACCESS_TOKEN_TTL"     env-default:"24h"`
	PasswordHashCost   int           `yaml:"password_hash_cost"   env:"AUTH_PASSWORD_HASH_COST"   env-default:"10"`
	GoogleClientID     string        `yaml:"google_client_id"     env:"AUTH_GOOGLE_CLIENT_ID"`
	GoogleClientSecret string        `yaml:"google_client_secret" env:"AUTH_GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURI  string        `yaml:"google_redirect_uri"  env:"AUTH_GOOGLE_REDIRECT_URI"`
	GoogleTokenURL     string        `yaml:"google_token_url"     env:"AUTH_GOOGLE_TOKEN_URL"     env-default:"https://oauth2.googleapis.com/token"`
	GoogleUserinfoURL  string        `yaml:"google_userinfo_url"  env:"AUTH_GOOGLE_USERINFO_URL"  env-default:"https://www.googleapis.com/oauth2/v2/userinfo"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// AllowedProviders returns the federated sign-in providers with complete credentials.
func (c AuthConfig) AllowedProviders() []string {
	var providers []string
	if c.GoogleClientID != "" && c.GoogleClientSecret != "" {
		providers = append(providers, "google")
	}
	return providers
}

// IsProviderAllowed checks if the given provider string is configured.
func (c AuthConfig) IsProviderAllowed(provider string) bool {
	return slices.Contains(c.AllowedProviders(), provider)
}
