// Package orm implements the repository with gorm over sqlite or PostgreSQL.
package orm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"crud-tutorials/config"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ORM wraps a gorm handle and configuration.
type ORM struct {
	baseCtx context.Context
	log     *zap.SugaredLogger
	db      *gorm.DB
	driver  string
	path    string
	pg      config.PostgresConfig
}

// New creates a gorm repository instance.
func New(ctx context.Context, log *zap.SugaredLogger, cfg *config.Config) *ORM {
	return &ORM{
		baseCtx: ctx,
		log:     log.Named("repo.orm"),
		driver:  cfg.Database.Driver,
		path:    cfg.Database.Path,
		pg:      cfg.Postgres,
	}
}

// OnStart opens the database and creates missing tables.
func (o *ORM) OnStart(_ context.Context) error {
	dialector, err := o.dialector()
	if err != nil {
		return err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: logger.New(gormWriter{log: o.log}, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return fmt.Errorf("open %s: %w", o.driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("sql handle: %w", err)
	}
	if o.driver == config.DriverSQLite {
		// sqlite serialises writers; one connection avoids "database is locked".
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(int(o.pg.MaxConns))
		sqlDB.SetMaxIdleConns(int(o.pg.MinConns))
	}

	if err := db.WithContext(o.baseCtx).AutoMigrate(&todoModel{}, &personModel{}, &contactModel{}, &userModel{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	o.db = db
	o.log.Infow("orm ready", "driver", o.driver, "path", o.path)
	return nil
}

// OnStop closes the underlying connections.
func (o *ORM) OnStop(_ context.Context) error {
	if o.db == nil {
		return nil
	}
	sqlDB, err := o.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (o *ORM) dialector() (gorm.Dialector, error) {
	switch o.driver {
	case config.DriverSQLite:
		return sqlite.Open(o.path), nil
	case config.DriverPostgres:
		return postgres.Open(o.pg.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported orm driver: %s", o.driver)
	}
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "SQLSTATE 23505")
}

type gormWriter struct {
	log *zap.SugaredLogger
}

func (w gormWriter) Printf(format string, args ...any) {
	w.log.Warnf(format, args...)
}
