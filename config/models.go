package config

import (
	"errors"
	"fmt"
	"time"
)

// Tutorial apps served by the binary.
const (
	AppBlueprints = "blueprints"
	AppFirst      = "firstapp"
	AppSessions   = "sessions"
	AppAuth       = "auth"
	AppContacts   = "contacts"
)

// Storage drivers.
const (
	// DriverSQLite stores records through gorm in a local sqlite file.
	DriverSQLite = "sqlite"
	// DriverPostgres stores records through gorm in PostgreSQL.
	DriverPostgres = "postgres"
	// DriverPgx stores records through a pgx pool with goose migrations.
	DriverPgx = "pgx"
)

// Config holds application configuration.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Database DatabaseConfig `mapstructure:"database"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	Session  SessionConfig  `mapstructure:"session"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Upload   UploadConfig   `mapstructure:"upload"`
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if _, ok := defaultsByApp[c.App.Name]; !ok {
		return fmt.Errorf("unknown app.name %q", c.App.Name)
	}
	if c.Server.Port == 0 {
		return errors.New("server.port is required")
	}
	if c.NeedsStore() {
		switch c.Database.Driver {
		case DriverSQLite:
			if c.Database.Path == "" {
				return errors.New("database.path is required")
			}
		case DriverPostgres, DriverPgx:
			if c.Postgres.User == "" || c.Postgres.Password == "" || c.Postgres.DBName == "" {
				return errors.New("postgres credentials are required")
			}
			if c.Postgres.Host == "" {
				return errors.New("postgres.host is required")
			}
		default:
			return fmt.Errorf("unknown database.driver %q", c.Database.Driver)
		}
	}
	if c.NeedsSession() && c.Session.Secret == "" {
		return errors.New("session.secret is required")
	}
	return nil
}

// NeedsStore reports whether the selected app persists records.
func (c Config) NeedsStore() bool {
	switch c.App.Name {
	case AppBlueprints, AppAuth, AppContacts:
		return true
	}
	return false
}

// NeedsSession reports whether the selected app uses the signed session.
func (c Config) NeedsSession() bool {
	return c.App.Name == AppSessions || c.App.Name == AppAuth
}

// ServerAddr returns host:port for HTTP server binding.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// AppConfig selects which tutorial app to serve.
type AppConfig struct {
	Name string `mapstructure:"name"`
}

// ServerConfig contains HTTP server options.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// HTTPConfig contains transport settings.
type HTTPConfig struct {
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	BodyLimit      int           `mapstructure:"body_limit"`
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// DatabaseConfig selects the storage backend.
type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"`
}

// PostgresConfig describes database connection parameters.
type PostgresConfig struct {
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	User           string        `mapstructure:"user"`
	Password       string        `mapstructure:"password"`
	DBName         string        `mapstructure:"db_name"`
	SSLMode        string        `mapstructure:"ssl_mode"`
	MigrationsDir  string        `mapstructure:"migrations_dir"`
	MigrateTimeout time.Duration `mapstructure:"migrate_timeout"`
	QueryTimeout   time.Duration `mapstructure:"query_timeout"`
	MaxConns       int32         `mapstructure:"max_conns"`
	MinConns       int32         `mapstructure:"min_conns"`
}

// DSN returns a Postgres connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DBName, p.SSLMode,
	)
}

// SessionConfig configures the signed cookie session.
type SessionConfig struct {
	Secret     string        `mapstructure:"secret"`
	CookieName string        `mapstructure:"cookie_name"`
	MaxAge     time.Duration `mapstructure:"max_age"`
	Secure     bool          `mapstructure:"secure"`
}

// AuthConfig configures the login manager and password hasher.
type AuthConfig struct {
	BcryptCost    int    `mapstructure:"bcrypt_cost"`
	LoginRedirect string `mapstructure:"login_redirect"`
}

// UploadConfig configures where uploaded files are kept.
type UploadConfig struct {
	Dir string `mapstructure:"dir"`
}
