// Package domain contains application services orchestrating domain logic.
package domain

import (
	"context"
	"time"

	"crud-tutorials/internal/repository"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx      context.Context
	log      *zap.SugaredLogger
	repo     repository.Repository
	timeout  time.Duration
	hasher   PasswordHasher
	validate *validator.Validate
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	timeout time.Duration,
	hasher PasswordHasher,
) *Usecase {
	return &Usecase{
		ctx:      ctx,
		log:      log.Named("usecase"),
		repo:     repo,
		timeout:  timeout,
		hasher:   hasher,
		validate: validator.New(),
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
