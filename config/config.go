// Package config loads application configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = "config/.env"

// NewConfig loads configuration from environment using viper with typed defaults and validation.
// Defaults depend on the selected app (APP_NAME): each app has its own port and store.
func NewConfig() (*Config, error) {
	v := viper.New()
	if envMap, err := godotenv.Read(envFile); err == nil {
		for k, v := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, v)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app.name", AppBlueprints)
	_ = v.BindEnv("app.name")

	setDefaults(v, v.GetString("app.name"))
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

type appDefaults struct {
	port   int
	dbPath string
}

var defaultsByApp = map[string]appDefaults{
	AppBlueprints: {port: 5571, dbPath: "blueprints.db"},
	AppFirst:      {port: 5576},
	AppSessions:   {port: 5577},
	AppAuth:       {port: 5000, dbPath: "test.db"},
	AppContacts:   {port: 5001, dbPath: "mydatabase.db"},
}

func setDefaults(v *viper.Viper, app string) {
	d := defaultsByApp[app]

	v.SetDefault("logging.level", "debug")

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", d.port)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("http.request_timeout", 3*time.Second)
	v.SetDefault("http.body_limit", 4*1024*1024)

	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.path", d.dbPath)

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.password", "postgres")
	v.SetDefault("postgres.db_name", "crud_tutorials_"+app)
	v.SetDefault("postgres.ssl_mode", "disable")
	v.SetDefault("postgres.migrations_dir", "db/migrations")
	v.SetDefault("postgres.migrate_timeout", 10*time.Second)
	v.SetDefault("postgres.query_timeout", 2*time.Second)
	v.SetDefault("postgres.max_conns", 10)
	v.SetDefault("postgres.min_conns", 2)

	v.SetDefault("session.secret", "some_random_key")
	v.SetDefault("session.cookie_name", "session")
	v.SetDefault("session.max_age", 31*24*time.Hour)
	v.SetDefault("session.secure", false)

	v.SetDefault("auth.bcrypt_cost", 10)
	v.SetDefault("auth.login_redirect", "/")

	v.SetDefault("upload.dir", "uploads")
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		"logging.level",
		"server.host",
		"server.port",
		"server.shutdown_timeout",
		"http.request_timeout",
		"http.body_limit",
		"database.driver",
		"database.path",
		"postgres.host",
		"postgres.port",
		"postgres.user",
		"postgres.password",
		"postgres.db_name",
		"postgres.ssl_mode",
		"postgres.migrations_dir",
		"postgres.migrate_timeout",
		"postgres.query_timeout",
		"postgres.max_conns",
		"postgres.min_conns",
		"session.secret",
		"session.cookie_name",
		"session.max_age",
		"session.secure",
		"auth.bcrypt_cost",
		"auth.login_redirect",
		"upload.dir",
	}

	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}
