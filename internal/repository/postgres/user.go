package postgres

import (
	"context"
	"errors"
	"fmt"

	"crud-tutorials/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	insertUserQuery         = `INSERT INTO users(username, password, role, description) VALUES ($1,$2,$3,$4) RETURNING uid`
	selectUserByIDQuery     = `SELECT uid, username, password, role, description FROM users WHERE uid=$1`
	selectUserByUsernameSQL = `SELECT uid, username, password, role, description FROM users WHERE username=$1`
)

// CreateUser inserts an account; a taken username yields ErrUserExists.
func (p *Postgres) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	err := p.db.QueryRow(ctx, insertUserQuery, user.Username, user.PasswordHash, user.Role, user.Description).Scan(&user.ID)
	if err != nil {
		p.log.Errorw("failed to insert user", "error", err, "username", user.Username)
		if isUniqueViolation(err) {
			return nil, entities.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	p.log.Infow("user created", "uid", user.ID)
	return &user, nil
}

// GetUserByID loads a user for session restoration.
func (p *Postgres) GetUserByID(ctx context.Context, id int64) (*entities.User, error) {
	return scanUser(p.db.QueryRow(ctx, selectUserByIDQuery, id))
}

// GetUserByUsername loads a user for login.
func (p *Postgres) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	return scanUser(p.db.QueryRow(ctx, selectUserByUsernameSQL, username))
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.Description); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
