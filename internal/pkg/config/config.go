package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, backend endpoint,
//   secrets), security settings
// - default: Values common across all environments (timeouts, thresholds),
//   standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Verify  VerifyConfig
	Mail    MailConfig
	Phone   PhoneConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// BackendConfig points at the transactional reservation backend. The backend
// owns seat allocation and uniqueness; this gateway only forwards canonical
// requests and interprets outcome codes.
type BackendConfig struct {
	BaseURL string `envconfig:"BACKEND_BASE_URL" required:"true"`
	APIKey  string `envconfig:"BACKEND_API_KEY" default:""`
}

// VerifyConfig drives the risk verifier. An empty Secret means the system
// cannot verify at all; whether that blocks requests is decided by the
// orchestrator, not here.
type VerifyConfig struct {
	Secret           string        `envconfig:"VERIFY_SECRET" default:""`
	EndpointURL      string        `envconfig:"VERIFY_ENDPOINT_URL" default:"https://www.google.com/recaptcha/api/siteverify"`
	MinScore         float64       `envconfig:"VERIFY_MIN_SCORE" default:"0.5"`
	ExpectedAction   string        `envconfig:"VERIFY_EXPECTED_ACTION" default:""`
	AllowedHostnames []string      `envconfig:"VERIFY_ALLOWED_HOSTNAMES" default:""`
	Timeout          time.Duration `envconfig:"VERIFY_TIMEOUT" default:"10s"`
	RequireToken     bool          `envconfig:"VERIFY_REQUIRE_TOKEN" default:"false"`
}

type MailConfig struct {
	SMTPHost string `envconfig:"MAIL_SMTP_HOST" default:"localhost"`
	SMTPPort int    `envconfig:"MAIL_SMTP_PORT" default:"587"`
	Username string `envconfig:"MAIL_USERNAME" default:""`
	Password string `envconfig:"MAIL_PASSWORD" default:""`
	From     string `envconfig:"MAIL_FROM" required:"true"`
}

type PhoneConfig struct {
	DefaultRegion string `envconfig:"PHONE_DEFAULT_REGION" default:"GR"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Athens"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"10800"` // 3*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

func (c *BackendConfig) ReserveURL() string {
	return fmt.Sprintf("%s/reservations", c.BaseURL)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Backend: BackendConfig{
			BaseURL: "http://localhost:18080",
		},
		Verify: VerifyConfig{
			Secret:      "test-secret",
			EndpointURL: "http://localhost:18081/siteverify",
			MinScore:    0.5,
			Timeout:     10 * time.Second,
		},
		Mail: MailConfig{
			SMTPHost: "localhost",
			SMTPPort: 1025,
			From:     "box-office@example.com",
		},
		Phone: PhoneConfig{
			DefaultRegion: "GR",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Athens",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 10800,
		},
		JWT: JWTConfig{
			Secret:   "test-jwt-secret",
			Duration: "24h",
		},
	}
}
