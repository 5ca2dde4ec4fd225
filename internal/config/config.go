package config

import "time"

// Oracle provider names accepted by OracleConfig.Provider.
const (
	ProviderGemini = "gemini"
	ProviderClaude = "claude"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Oracle    OracleConfig    `yaml:"oracle"`
	Redis     RedisConfig     `yaml:"redis"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ConnectRetries  uint64        `yaml:"connect_retries"    env:"DATABASE_CONNECT_RETRIES"    env-default:"5"`
}

// AuthConfig holds access-token verification settings. Tokens are issued by
// the identity provider and share the HMAC secret with this service.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"factfinder"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// OracleConfig selects and configures the fact-generation backend.
type OracleConfig struct {
	Provider        string        `yaml:"provider"          env:"ORACLE_PROVIDER"          env-default:"gemini"`
	Timeout         time.Duration `yaml:"timeout"           env:"ORACLE_TIMEOUT"           env-default:"15s"`
	MaxOutputTokens int64         `yaml:"max_output_tokens" env:"ORACLE_MAX_OUTPUT_TOKENS" env-default:"256"`

	GeminiAPIKey  string `yaml:"gemini_api_key"  env:"GEMINI_API_KEY"`
	GeminiModel   string `yaml:"gemini_model"    env:"GEMINI_MODEL"    env-default:"gemini-1.5-flash"`
	GeminiBaseURL string `yaml:"gemini_base_url" env:"GEMINI_BASE_URL" env-default:"https://generativelanguage.googleapis.com/v1beta"`

	AnthropicAPIKey  string `yaml:"anthropic_api_key"  env:"ANTHROPIC_API_KEY"`
	AnthropicModel   string `yaml:"anthropic_model"    env:"ANTHROPIC_MODEL"    env-default:"claude-3-5-haiku-latest"`
	AnthropicBaseURL string `yaml:"anthropic_base_url" env:"ANTHROPIC_BASE_URL"`
}

// RedisConfig holds the connection for the per-user submit quota.
// An empty Addr disables the quota.
type RedisConfig struct {
	Addr             string `yaml:"addr"               env:"REDIS_ADDR"`
	Password         string `yaml:"password"           env:"REDIS_PASSWORD"`
	DB               int    `yaml:"db"                 env:"REDIS_DB"                 env-default:"0"`
	DailySubmitQuota int    `yaml:"daily_submit_quota" env:"REDIS_DAILY_SUBMIT_QUOTA" env-default:"200"`
}

// RateLimitConfig holds the per-IP token bucket settings. Zero disables a limit.
type RateLimitConfig struct {
	SubmitPerMinute  int           `yaml:"submit_per_minute"  env:"RATE_LIMIT_SUBMIT_PER_MINUTE"  env-default:"10"`
	HistoryPerMinute int           `yaml:"history_per_minute" env:"RATE_LIMIT_HISTORY_PER_MINUTE" env-default:"60"`
	CleanupInterval  time.Duration `yaml:"cleanup_interval"   env:"RATE_LIMIT_CLEANUP_INTERVAL"   env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Enabled reports whether a Redis address is configured.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

// APIKey returns the API key of the selected provider.
func (c OracleConfig) APIKey() string {
	switch c.Provider {
	case ProviderGemini:
		return c.GeminiAPIKey
	case ProviderClaude:
		return c.AnthropicAPIKey
	default:
		return ""
	}
}

// Model returns the model name of the selected provider.
func (c OracleConfig) Model() string {
	switch c.Provider {
	case ProviderGemini:
		return c.GeminiModel
	case ProviderClaude:
		return c.AnthropicModel
	default:
		return ""
	}
}
