package cmd

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"eda/internal/pkg/telemetry"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

//go:embed base.yaml
var baseConfig []byte

type AppConfig struct {
	Name    string `mapstructure:"name" validate:"required"`
	Version string `mapstructure:"version" validate:"required"`
	Env     string `mapstructure:"env"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
}

type CORSConfig struct {
	Origins []string `mapstructure:"origins" validate:"min=1"`
}

type HTTPConfig struct {
	IP              string        `mapstructure:"ip" validate:"required,ip"`
	Port            string        `mapstructure:"port" validate:"required,numeric"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
	Pprof           bool          `mapstructure:"pprof"`
	CORS            CORSConfig    `mapstructure:"cors"`
}

type DBConfig struct {
	Driver   string `mapstructure:"driver" validate:"required,oneof=postgres sqlite"`
	Host     string `mapstructure:"host" validate:"required_if=Driver postgres"`
	Port     string `mapstructure:"port" validate:"required_if=Driver postgres"`
	User     string `mapstructure:"user" validate:"required_if=Driver postgres"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name" validate:"required_if=Driver postgres"`
	SSLMode  string `mapstructure:"sslmode"`
	Path     string `mapstructure:"path" validate:"required_if=Driver sqlite"`
}

type AuthConfig struct {
	// SuperAdminIDs is a comma separated list of messenger user ids.
	SuperAdminIDs string `mapstructure:"super_admin_ids"`
}

type WatchdogConfig struct {
	Interval           time.Duration `mapstructure:"interval" validate:"gte=1s"`
	UTCOffsetMinutes   int           `mapstructure:"utc_offset_minutes" validate:"gte=-840,lte=840"`
	MinDeliveryMinutes int           `mapstructure:"min_delivery_minutes" validate:"gte=1"`
	ShutdownTimeout    time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

type NATSConfig struct {
	URL     string `mapstructure:"url"`
	Subject string `mapstructure:"subject"`
}

type AMQPConfig struct {
	URL        string `mapstructure:"url"`
	Exchange   string `mapstructure:"exchange"`
	RoutingKey string `mapstructure:"routing_key"`
}

type EventsConfig struct {
	Driver string     `mapstructure:"driver" validate:"required,oneof=log nats amqp"`
	NATS   NATSConfig `mapstructure:"nats"`
	AMQP   AMQPConfig `mapstructure:"amqp"`
}

type TelemetryConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint" validate:"required_if=Enabled true"`
}

type Config struct {
	App       AppConfig       `mapstructure:"app" validate:"required"`
	Log       LogConfig       `mapstructure:"log"`
	HTTP      HTTPConfig      `mapstructure:"http" validate:"required"`
	DB        DBConfig        `mapstructure:"db" validate:"required"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Watchdog  WatchdogConfig  `mapstructure:"watchdog" validate:"required"`
	Events    EventsConfig    `mapstructure:"events" validate:"required"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// LoadConfig reads the embedded defaults, then an optional .env file, then the
// environment: DB_HOST overrides db.host, WATCHDOG_INTERVAL overrides watchdog.interval.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(baseConfig)); err != nil {
		return Config{}, fmt.Errorf("read base config: %w", err)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validateConfig(cfg Config) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	switch cfg.Events.Driver {
	case "nats":
		if cfg.Events.NATS.URL == "" || cfg.Events.NATS.Subject == "" {
			return errors.New("invalid config: events.nats.url and events.nats.subject are required")
		}
	case "amqp":
		if cfg.Events.AMQP.URL == "" || cfg.Events.AMQP.Exchange == "" {
			return errors.New("invalid config: events.amqp.url and events.amqp.exchange are required")
		}
	}
	return nil
}

func (c WatchdogConfig) MinDeliveryWindow() time.Duration {
	return time.Duration(c.MinDeliveryMinutes) * time.Minute
}

func (c Config) TelemetryConfig() telemetry.Config {
	return telemetry.Config{
		Enabled:     c.Telemetry.Enabled,
		Endpoint:    c.Telemetry.Endpoint,
		ServiceName: c.App.Name,
		Version:     c.App.Version,
		Environment: c.App.Env,
	}
}
