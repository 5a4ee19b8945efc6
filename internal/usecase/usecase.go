package usecase

import (
	"context"
	"time"

	"crud-tutorials/internal/repository"
	"crud-tutorials/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	TodoUsecaseInterface
	PersonUsecaseInterface
	ContactUsecaseInterface
	AuthUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	timeout time.Duration,
	hasher domain.PasswordHasher,
) InterfaceUsecase {
	return domain.New(log, ctx, repo, timeout, hasher)
}
