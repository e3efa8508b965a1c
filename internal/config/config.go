package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Storage   StorageConfig   `yaml:"storage"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	CORS      CORSConfig      `yaml:"cors"`
	Log       LogConfig       `yaml:"log"`
	Analytics AnalyticsConfig `yaml:"analytics"`
	Comment   CommentConfig   `yaml:"comment"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host               string        `yaml:"host"                  env:"SERVER_HOST"                  env-default:"0.0.0.0"`
	Port               int           `yaml:"port"                  env:"SERVER_PORT"                  env-default:"8080"`
	ReadTimeout        time.Duration `yaml:"read_timeout"          env:"SERVER_READ_TIMEOUT"          env-default:"10s"`
	WriteTimeout       time.Duration `yaml:"write_timeout"         env:"SERVER_WRITE_TIMEOUT"         env-default:"30s"`
	IdleTimeout        time.Duration `yaml:"idle_timeout"          env:"SERVER_IDLE_TIMEOUT"          env-default:"60s"`
	ShutdownTimeout    time.Duration `yaml:"shutdown_timeout"      env:"SERVER_SHUTDOWN_TIMEOUT"      env-default:"10s"`
	WriteRatePerMinute int           `yaml:"write_rate_per_minute" env:"SERVER_WRITE_RATE_PER_MINUTE" env-default:"60"`
}

// StorageConfig selects the diary repository backend.
type StorageConfig struct {
	// Driver is "memory" (in-process, lost on restart) or "postgres".
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN               string        `yaml:"dsn"                 env:"DATABASE_DSN"`
	MaxConns          int32         `yaml:"max_conns"           env:"DATABASE_MAX_CONNS"           env-default:"25"`
	MinConns          int32         `yaml:"min_conns"           env:"DATABASE_MIN_CONNS"           env-default:"2"`
	MaxConnLifetime   time.Duration `yaml:"max_conn_lifetime"   env:"DATABASE_MAX_CONN_LIFETIME"   env-default:"1h"`
	MaxConnIdleTime   time.Duration `yaml:"max_conn_idle_time"  env:"DATABASE_MAX_CONN_IDLE_TIME"  env-default:"30m"`
	HealthCheckPeriod time.Duration `yaml:"health_check_period" env:"DATABASE_HEALTH_CHECK_PERIOD"` // zero keeps the pgxpool default
	AutoMigrate       bool          `yaml:"auto_migrate"        env:"DATABASE_AUTO_MIGRATE"        env-default:"true"`
}

// AuthConfig holds access-token validation settings. Tokens are issued by
// an external identity service; this service only verifies them.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"moodbook"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// AnalyticsConfig holds search and risk-analysis parameters.
type AnalyticsConfig struct {
	RiskWindowDays     int  `yaml:"risk_window_days"     env:"ANALYTICS_RISK_WINDOW_DAYS"     env-default:"14"`
	SearchDefaultLimit int  `yaml:"search_default_limit" env:"ANALYTICS_SEARCH_DEFAULT_LIMIT" env-default:"10"`
	SearchMaxLimit     int  `yaml:"search_max_limit"     env:"ANALYTICS_SEARCH_MAX_LIMIT"     env-default:"100"`
	RiskLogEnabled     bool `yaml:"risk_log_enabled"     env:"ANALYTICS_RISK_LOG_ENABLED"     env-default:"true"`
}

// CommentConfig selects the AI comment provider attached to new entries.
type CommentConfig struct {
	// Provider is "stub" (canned comments), "openai" or "none".
	Provider        string        `yaml:"provider"          env:"COMMENT_PROVIDER"          env-default:"stub"`
	OpenAIAPIKey    string        `yaml:"openai_api_key"    env:"COMMENT_OPENAI_API_KEY"`
	Model           string        `yaml:"model"             env:"COMMENT_MODEL"             env-default:"gpt-4o-mini"`
	Timeout         time.Duration `yaml:"timeout"           env:"COMMENT_TIMEOUT"           env-default:"8s"`
	MaxOutputTokens int64         `yaml:"max_output_tokens" env:"COMMENT_MAX_OUTPUT_TOKENS" env-default:"300"`
}
