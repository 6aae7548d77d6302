package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, timeouts, fees)
// -----------------------------------------------------------------------------

type Config struct {
	AppEnv           string `envconfig:"APP_ENV" default:"development"`
	Server           ServerConfig
	DB               DBConfig
	CORS             CORSConfig
	Log              LogConfig
	JWT              JWTConfig
	Redis            RedisConfig
	Session          SessionConfig
	Checkout         CheckoutConfig
	IdentityProvider IdentityProviderConfig
	PostalCode       PostalCodeConfig
	Mailer           MailerConfig
	Kafka            KafkaConfig
	Telemetry        TelemetryConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host          string `envconfig:"DB_HOST" default:"localhost"`
	Port          string `envconfig:"DB_PORT" default:"5432"`
	User          string `envconfig:"DB_USER" required:"true"`
	Password      string `envconfig:"DB_PASSWORD" required:"true"`
	DBName        string `envconfig:"DB_NAME" required:"true"`
	SSLMode       string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone      string `envconfig:"DB_TIMEZONE" default:"America/Sao_Paulo"`
	MaxConns      int32  `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns      int32  `envconfig:"DB_MIN_CONNS" default:"2"`
	EnableTracing bool   `envconfig:"DB_ENABLE_TRACING" default:"false"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Accept-Language,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Sao_Paulo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type RedisConfig struct {
	Addr         string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string        `envconfig:"REDIS_PASSWORD" default:""`
	DB           int           `envconfig:"REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"REDIS_POOL_SIZE" default:"20"`
	DialTimeout  time.Duration `envconfig:"REDIS_DIAL_TIMEOUT" default:"5s"`
	MaxRetries   int           `envconfig:"REDIS_CONNECT_RETRIES" default:"3"`
	RetryBackoff time.Duration `envconfig:"REDIS_CONNECT_BACKOFF" default:"1s"`
}

type SessionConfig struct {
	TTL       time.Duration `envconfig:"SESSION_TTL" default:"2h"`
	KeyPrefix string        `envconfig:"SESSION_KEY_PREFIX" default:"checkout:session:"`
}

type CheckoutConfig struct {
	FeeCents         int64         `envconfig:"CHECKOUT_FEE_CENTS" default:"500"`
	PrimaryCountry   string        `envconfig:"CHECKOUT_PRIMARY_COUNTRY" default:"BR"`
	SecondaryCountry string        `envconfig:"CHECKOUT_SECONDARY_COUNTRY" default:"AR"`
	ConfirmationPath string        `envconfig:"CHECKOUT_CONFIRMATION_PATH" default:"/checkout/confirmation"`
	NotifyTimeout    time.Duration `envconfig:"CHECKOUT_NOTIFY_TIMEOUT" default:"30s"`
}

type IdentityProviderConfig struct {
	BaseURL string        `envconfig:"IDENTITY_PROVIDER_URL" default:"http://localhost:9999"`
	APIKey  string        `envconfig:"IDENTITY_PROVIDER_API_KEY" default:""`
	Timeout time.Duration `envconfig:"IDENTITY_PROVIDER_TIMEOUT" default:"10s"`
}

type PostalCodeConfig struct {
	BaseURL string        `envconfig:"POSTAL_CODE_URL" default:"https://viacep.com.br/ws"`
	Timeout time.Duration `envconfig:"POSTAL_CODE_TIMEOUT" default:"5s"`
}

type MailerConfig struct {
	Provider           string `envconfig:"MAILER_PROVIDER" default:"noop"`
	FromAddress        string `envconfig:"MAILER_FROM_ADDRESS" default:"no-reply@example.com"`
	FromName           string `envconfig:"MAILER_FROM_NAME" default:"Inscrições"`
	SESRegion          string `envconfig:"SES_REGION" default:"us-east-1"`
	SESAccessKeyID     string `envconfig:"SES_ACCESS_KEY_ID" default:""`
	SESSecretAccessKey string `envconfig:"SES_SECRET_ACCESS_KEY" default:""`
}

type KafkaConfig struct {
	Brokers []string `envconfig:"KAFKA_BROKERS" default:""`
	Topic   string   `envconfig:"KAFKA_CHECKOUT_TOPIC" default:"checkout.confirmed"`
}

type TelemetryConfig struct {
	Enabled        bool   `envconfig:"OTEL_ENABLED" default:"false"`
	ServiceName    string `envconfig:"OTEL_SERVICE_NAME" default:"event-checkout"`
	ServiceVersion string `envconfig:"OTEL_SERVICE_VERSION" default:"1.0.0"`
	CollectorAddr  string `envconfig:"OTEL_COLLECTOR_ADDR" default:"localhost:4317"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func LoadConfig() (Config, error) {
	// .env is a local convenience only; real deployments inject the environment
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			slog.Warn("failed to load .env file", "error", err.Error())
		}
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		AppEnv: "test",
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "America/Sao_Paulo",
			MaxConns: 10,
			MinConns: 1,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Sao_Paulo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -10800,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Redis: RedisConfig{
			Addr:         "localhost:16379",
			PoolSize:     5,
			DialTimeout:  2 * time.Second,
			MaxRetries:   3,
			RetryBackoff: 500 * time.Millisecond,
		},
		Session: SessionConfig{
			TTL:       10 * time.Minute,
			KeyPrefix: "test:checkout:session:",
		},
		Checkout: CheckoutConfig{
			FeeCents:         500,
			PrimaryCountry:   "BR",
			SecondaryCountry: "AR",
			ConfirmationPath: "/checkout/confirmation",
			NotifyTimeout:    5 * time.Second,
		},
		IdentityProvider: IdentityProviderConfig{
			BaseURL: "http://localhost:9999",
			Timeout: 2 * time.Second,
		},
		PostalCode: PostalCodeConfig{
			BaseURL: "http://localhost:9998",
			Timeout: 2 * time.Second,
		},
		Mailer: MailerConfig{
			Provider:    "noop",
			FromAddress: "no-reply@example.com",
		},
		Kafka: KafkaConfig{
			Topic: "checkout.confirmed",
		},
		Telemetry: TelemetryConfig{
			ServiceName: "event-checkout-test",
		},
	}
}
