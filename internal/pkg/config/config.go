package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DRS endpoint and
//   credentials), security settings
// - default: Values common across all environments (search knobs, timezone,
//   log settings), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server       ServerConfig
	CORS         CORSConfig
	Log          LogConfig
	Drs          DrsConfig
	Appointments AppointmentsConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
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
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/London"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// DrsConfig addresses the DRS scheduling backend. OrderMode selects how a
// booking reference is resolved to a DRS order: "create" builds a new order,
// "select" looks up an existing work order by its numeric id.
type DrsConfig struct {
	URL                string        `envconfig:"DRS_URL" required:"true"`
	Login              string        `envconfig:"DRS_LOGIN" required:"true"`
	Password           string        `envconfig:"DRS_PASSWORD" required:"true"`
	Timeout            time.Duration `envconfig:"DRS_TIMEOUT" default:"20s"`
	OrderMode          string        `envconfig:"DRS_ORDER_MODE" default:"create"`
	OrderRetentionDays int           `envconfig:"ORDER_RETENTION_DAYS" default:"90"`
}

type AppointmentsConfig struct {
	GatewayMode      string `envconfig:"GATEWAY_MODE" default:"drs"`
	RequiredDays     int    `envconfig:"REQUIRED_APPOINTMENT_DAYS" default:"5"`
	SearchSpanDays   int    `envconfig:"SEARCH_TIME_SPAN_DAYS" default:"14"`
	LeadTimeDays     int    `envconfig:"APPOINTMENT_LEAD_TIME_DAYS" default:"7"`
	MaxSearchFetches int    `envconfig:"MAX_SEARCH_REQUESTS" default:"10"`
}

func (c AppointmentsConfig) Validate() error {
	if c.RequiredDays <= 0 {
		return fmt.Errorf("REQUIRED_APPOINTMENT_DAYS must be positive, got %d", c.RequiredDays)
	}
	if c.SearchSpanDays <= 0 {
		return fmt.Errorf("SEARCH_TIME_SPAN_DAYS must be positive, got %d", c.SearchSpanDays)
	}
	if c.LeadTimeDays < 0 {
		return fmt.Errorf("APPOINTMENT_LEAD_TIME_DAYS must not be negative, got %d", c.LeadTimeDays)
	}
	if c.MaxSearchFetches <= 0 {
		return fmt.Errorf("MAX_SEARCH_REQUESTS must be positive, got %d", c.MaxSearchFetches)
	}
	return nil
}

func (c DrsConfig) Validate() error {
	switch c.OrderMode {
	case "create", "select":
	default:
		return fmt.Errorf("DRS_ORDER_MODE must be create or select, got %q", c.OrderMode)
	}
	if c.OrderRetentionDays <= 0 {
		return fmt.Errorf("ORDER_RETENTION_DAYS must be positive, got %d", c.OrderRetentionDays)
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Appointments.Validate(); err != nil {
		return Config{}, err
	}
	if err := cfg.Drs.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/London",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Drs: DrsConfig{
			URL:                "http://localhost:18080/drs",
			Login:              "test",
			Password:           "test",
			Timeout:            5 * time.Second,
			OrderMode:          "create",
			OrderRetentionDays: 90,
		},
		Appointments: AppointmentsConfig{
			GatewayMode:      "drs",
			RequiredDays:     5,
			SearchSpanDays:   14,
			LeadTimeDays:     7,
			MaxSearchFetches: 10,
		},
	}
}
