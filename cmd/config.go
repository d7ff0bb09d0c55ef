package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"dronedelivery/internal/adapters/out/storage"
	"dronedelivery/internal/core/domain/services"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

type Config struct {
	HTTPPort               string
	GRPCPort               string
	DBDriver               string
	DBURL                  string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	DBPath                 string
	JWTSecret              string
	MissionVisibility      string
	VesselTrackingSchedule string
	GatewayReject          bool
	LogLevel               string
	AppEnv                 string
}

// LoadConfig reads envFile into the environment, keeping variables that are
// already set, and builds a Config from it. A missing envFile is not an error.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	gatewayReject, err := envBool("GATEWAY_REJECT")
	if err != nil {
		return Config{}, err
	}

	return Config{
		HTTPPort:               envOr("HTTP_PORT", "8080"),
		GRPCPort:               os.Getenv("GRPC_PORT"),
		DBDriver:               envOr("DB_DRIVER", storage.DriverPostgres),
		DBURL:                  os.Getenv("DATABASE_URL"),
		DBHost:                 envOr("DB_HOST", "localhost"),
		DBPort:                 envOr("DB_PORT", "5432"),
		DBUser:                 os.Getenv("DB_USER"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 os.Getenv("DB_NAME"),
		DBSslMode:              envOr("DB_SSLMODE", "disable"),
		DBPath:                 os.Getenv("DB_PATH"),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		MissionVisibility:      envOr("MISSION_VISIBILITY", string(services.VisibilityLegacy)),
		VesselTrackingSchedule: os.Getenv("VESSEL_TRACKING_SCHEDULE"),
		GatewayReject:          gatewayReject,
		LogLevel:               envOr("LOG_LEVEL", "info"),
		AppEnv:                 envOr("APP_ENV", "development"),
	}, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error

	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if err := validPort("HTTP_PORT", c.HTTPPort); err != nil {
		errs = append(errs, err)
	}
	if c.GRPCPort != "" {
		if err := validPort("GRPC_PORT", c.GRPCPort); err != nil {
			errs = append(errs, err)
		}
	}

	switch c.DBDriver {
	case storage.DriverPostgres:
		if c.DBURL == "" && c.DBName == "" {
			errs = append(errs, errors.New("DB_NAME or DATABASE_URL is required for postgres"))
		}
	case storage.DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER %q is not one of postgres, sqlite", c.DBDriver))
	}

	if _, err := services.ParseVisibilityPolicy(c.MissionVisibility); err != nil {
		errs = append(errs, fmt.Errorf("MISSION_VISIBILITY: %w", err))
	}
	if c.VesselTrackingSchedule != "" {
		parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
		if _, err := parser.Parse(c.VesselTrackingSchedule); err != nil {
			errs = append(errs, fmt.Errorf("VESSEL_TRACKING_SCHEDULE: %w", err))
		}
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (c Config) StorageOptions() storage.Options {
	level, _ := c.SlogLevel()
	return storage.Options{
		Driver:   c.DBDriver,
		URL:      c.DBURL,
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
		SSLMode:  c.DBSslMode,
		Path:     c.DBPath,
		LogLevel: level,
	}
}

func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envBool(key string) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func validPort(key, port string) error {
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("%s %q is not a valid port", key, port)
	}
	return nil
}
