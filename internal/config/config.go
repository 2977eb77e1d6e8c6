package config

import (
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"gate-access"`

	Server    ServerConfig
	DB        DBConfig
	Redis     RedisConfig
	S3        S3Config
	Email     EmailConfig
	Auth      AuthConfig
	Jaeger    *JaegerConfig
	Scan      ScanConfig
	RateLimit RateLimitConfig
	Admin     AdminConfig
}

type ServerConfig struct {
	Mode   string `env:"SERVER_MODE" envDefault:"dev"`
	Port   int    `env:"SERVER_PORT" envDefault:"8080"`
	Scheme string `env:"SERVER_SCHEME" envDefault:"http"`
	Domain string `env:"SERVER_DOMAIN" envDefault:"localhost"`
}

type DBConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     int    `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD" envDefault:"postgres"`
	Database string `env:"DB_DATABASE" envDefault:"gate_access"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Pass string `env:"REDIS_PASS" envDefault:""`
}

type S3Config struct {
	Endpoint  string `env:"S3_ENDPOINT" envDefault:"localhost:9000"`
	AccessKey string `env:"S3_ACCESS_KEY"`
	SecretKey string `env:"S3_SECRET_KEY"`
	Bucket    string `env:"S3_BUCKET" envDefault:"scan-archives"`
	UseSSL    bool   `env:"S3_USE_SSL" envDefault:"false"`
}

type EmailConfig struct {
	Server string `env:"EMAIL_SERVER"`
	Port   int    `env:"EMAIL_PORT" envDefault:"587"`
	User   string `env:"EMAIL_USER"`
	Pass   string `env:"EMAIL_PASS"`
	Admin  string `env:"EMAIL_ADMIN"`
}

type AuthConfig struct {
	JWT JWTConfig
}

type JWTConfig struct {
	Secret string `env:"JWT_SECRET,required"`
	Issuer string `env:"JWT_ISSUER" envDefault:"gate-access"`
}

type JaegerConfig struct {
	Sampler struct {
		Type  string `env:"JAEGER_SAMPLER_TYPE" envDefault:"const"`
		Param int    `env:"JAEGER_SAMPLER_PARAM" envDefault:"1"`
	}
	Reporter struct {
		LogSpans           bool   `env:"JAEGER_REPORTER_LOG_SPANS" envDefault:"false"`
		LocalAgentHostPort string `env:"JAEGER_AGENT_HOST_PORT" envDefault:"localhost:6831"`
	}
}

type ScanConfig struct {
	IdempotencyWindow time.Duration `env:"SCAN_IDEMPOTENCY_WINDOW" envDefault:"60s"`
	// FailClosed rejects scans when the idempotency lookup itself fails.
	// Default preserves the fail-open behavior: a store error during the
	// duplicate check lets the scan proceed and risks a double log.
	FailClosed bool `env:"SCAN_FAIL_CLOSED" envDefault:"false"`
}

type RateLimitConfig struct {
	LoginWindow time.Duration `env:"RATE_LOGIN_WINDOW" envDefault:"60s"`
	LoginMax    int           `env:"RATE_LOGIN_MAX" envDefault:"5"`
	ScanWindow  time.Duration `env:"RATE_SCAN_WINDOW" envDefault:"60s"`
	ScanMax     int           `env:"RATE_SCAN_MAX" envDefault:"60"`
	AuthWindow  time.Duration `env:"RATE_AUTH_WINDOW" envDefault:"60s"`
	AuthMax     int           `env:"RATE_AUTH_MAX" envDefault:"10"`
}

type AdminConfig struct {
	APIKey string `env:"ADMIN_API_KEY,required"`
}

func MustLoad(path string) Config {
	if err := godotenv.Load(path); err != nil {
		zap.L().Info("No env file found, relying on environment", zap.String("path", path))
	}

	conf := Config{}
	if err := env.Parse(&conf); err != nil {
		zap.L().Fatal("failed to parse config", zap.Error(err))
	}

	return conf
}
