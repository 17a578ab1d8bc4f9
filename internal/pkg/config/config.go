package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"room-booking/internal/pkg/errs"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Store     StoreConfig
	Admission AdmissionConfig
	Notify    NotifyConfig
	CORS      CORSConfig
	Log       LogConfig
	Tracing   TracingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            string        `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER"`
	Password        string        `envconfig:"DB_PASSWORD"`
	DBName          string        `envconfig:"DB_NAME"`
	SSLMode         string        `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone        string        `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns        int32         `envconfig:"DB_MAX_CONNS" default:"20"`
	MinConns        int32         `envconfig:"DB_MIN_CONNS" default:"2"`
	MaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
	AutoMigrate     bool          `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

type StoreConfig struct {
	// postgres | memory
	Driver string `envconfig:"STORE_DRIVER" default:"postgres"`
	// Rooms created at startup when missing, formatted as "name:capacity[:location]"
	SeedRooms []string `envconfig:"SEED_ROOMS"`
}

type AdmissionConfig struct {
	Timeout  time.Duration `envconfig:"ADMISSION_TIMEOUT" default:"5s"`
	TimeZone string        `envconfig:"BOOKING_TIMEZONE" default:"UTC"`
}

type NotifyConfig struct {
	// log | outbox | pgnotify
	Driver         string        `envconfig:"NOTIFY_DRIVER" default:"log"`
	Channel        string        `envconfig:"NOTIFY_CHANNEL" default:"reservation_admitted"`
	Workers        int           `envconfig:"NOTIFY_WORKERS" default:"2"`
	QueueSize      int           `envconfig:"NOTIFY_QUEUE_SIZE" default:"256"`
	PublishTimeout time.Duration `envconfig:"NOTIFY_PUBLISH_TIMEOUT" default:"3s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location,Retry-After"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type TracingConfig struct {
	// Tracing stays disabled while the endpoint is empty
	Endpoint    string `envconfig:"OTEL_ENDPOINT"`
	ServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"room-booking"`
}

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"

	NotifyDriverLog      = "log"
	NotifyDriverOutbox   = "outbox"
	NotifyDriverPgNotify = "pgnotify"
)

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Location resolves BOOKING_TIMEZONE, the zone reservation dates and times are written in.
func (c AdmissionConfig) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, errs.Wrapf(err, "invalid BOOKING_TIMEZONE %q", c.TimeZone)
	}
	return loc, nil
}

func (c Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverPostgres:
		if c.DB.User == "" || c.DB.DBName == "" {
			return errs.Newf("DB_USER and DB_NAME are required when STORE_DRIVER=%s", StoreDriverPostgres)
		}
	case StoreDriverMemory:
		if c.Notify.Driver != NotifyDriverLog {
			return errs.Newf("NOTIFY_DRIVER=%s requires STORE_DRIVER=%s", c.Notify.Driver, StoreDriverPostgres)
		}
	default:
		return errs.Newf("unknown STORE_DRIVER %q", c.Store.Driver)
	}

	switch c.Notify.Driver {
	case NotifyDriverLog, NotifyDriverOutbox, NotifyDriverPgNotify:
	default:
		return errs.Newf("unknown NOTIFY_DRIVER %q", c.Notify.Driver)
	}

	if _, err := c.Store.ParseSeedRooms(); err != nil {
		return err
	}
	if c.Admission.Timeout <= 0 {
		return errs.New("ADMISSION_TIMEOUT must be positive")
	}
	if _, err := c.Admission.Location(); err != nil {
		return err
	}
	return nil
}

type RoomSeed struct {
	Name     string
	Capacity int
	Location *string
}

func (c StoreConfig) ParseSeedRooms() ([]RoomSeed, error) {
	seeds := make([]RoomSeed, 0, len(c.SeedRooms))
	for _, entry := range c.SeedRooms {
		parts := strings.SplitN(strings.TrimSpace(entry), ":", 3)
		if len(parts) < 2 || strings.TrimSpace(parts[0]) == "" {
			return nil, errs.Newf("invalid SEED_ROOMS entry %q: want name:capacity[:location]", entry)
		}
		capacity, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || capacity <= 0 {
			return nil, errs.Newf("invalid SEED_ROOMS entry %q: capacity must be a positive integer", entry)
		}
		seed := RoomSeed{Name: strings.TrimSpace(parts[0]), Capacity: capacity}
		if len(parts) == 3 && strings.TrimSpace(parts[2]) != "" {
			loc := strings.TrimSpace(parts[2])
			seed.Location = &loc
		}
		seeds = append(seeds, seed)
	}
	return seeds, nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, errs.Wrap(err, "failed to process env config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:            "localhost",
			Port:            "15433", // Test DB port
			User:            "test",
			Password:        "test",
			DBName:          "test_db",
			SSLMode:         "disable",
			TimeZone:        "UTC",
			MaxConns:        20,
			MinConns:        1,
			MaxConnLifetime: time.Hour,
		},
		Store: StoreConfig{
			Driver: StoreDriverPostgres,
		},
		Admission: AdmissionConfig{
			Timeout:  5 * time.Second,
			TimeZone: "UTC",
		},
		Notify: NotifyConfig{
			Driver:         NotifyDriverLog,
			Channel:        "reservation_admitted",
			Workers:        1,
			QueueSize:      16,
			PublishTimeout: time.Second,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Tracing: TracingConfig{
			ServiceName: "room-booking-test",
		},
	}
}
