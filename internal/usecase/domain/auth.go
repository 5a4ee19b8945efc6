// Package domain contains application services orchestrating domain logic by account.
package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"crud-tutorials/internal/entities"
)

// SignUp hashes the password and stores a new account.
func (u *Usecase) SignUp(ctx context.Context, user entities.User, password string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	user.Username = strings.TrimSpace(user.Username)
	if user.Username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", entities.ErrInvalidArgument)
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		u.log.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("%w: password cannot be hashed", entities.ErrInvalidArgument)
	}
	user.PasswordHash = hash

	res, err := u.repo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	u.log.Infow("signup", "uid", res.ID)
	return res, nil
}

// Login returns the account matching username and password.
// Unknown usernames and wrong passwords both yield ErrInvalidCredentials.
func (u *Usecase) Login(ctx context.Context, username, password string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", entities.ErrInvalidArgument)
	}

	user, err := u.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, entities.ErrInvalidCredentials
		}
		return nil, err
	}
	if !u.hasher.Compare(user.PasswordHash, password) {
		u.log.Infow("login rejected", "uid", user.ID)
		return nil, entities.ErrInvalidCredentials
	}

	u.log.Infow("login", "uid", user.ID)
	return user, nil
}

// LoadUser restores the account stored in a session.
func (u *Usecase) LoadUser(ctx context.Context, id int64) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return nil, fmt.Errorf("%w: uid must be positive", entities.ErrInvalidArgument)
	}
	return u.repo.GetUserByID(ctx, id)
}
