// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"crud-tutorials/config"
	"crud-tutorials/internal/repository/orm"
	"crud-tutorials/internal/repository/postgres"

	"go.uber.org/zap"
)

// Repository aggregates all persistence interfaces.
type Repository interface {
	LifecycleInterface
	TodoInterface
	PersonInterface
	ContactInterface
	UserInterface
}

// New constructs repository backend by driver name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case config.DriverSQLite, config.DriverPostgres:
		return orm.New(ctx, log, cfg), nil
	case config.DriverPgx:
		return postgres.New(ctx, log, cfg), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
