package orm

import (
	"context"
	"errors"
	"fmt"

	"crud-tutorials/internal/entities"

	"gorm.io/gorm"
)

// CreateUser inserts an account; a taken username yields ErrUserExists.
func (o *ORM) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	m := userModel{Username: user.Username, Password: user.PasswordHash, Role: user.Role, Description: user.Description}
	if err := o.db.WithContext(ctx).Create(&m).Error; err != nil {
		o.log.Errorw("failed to insert user", "error", err, "username", user.Username)
		if isDuplicate(err) {
			return nil, entities.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	o.log.Infow("user created", "uid", m.UID)
	res := m.entity()
	return &res, nil
}

// GetUserByID loads a user for session restoration.
func (o *ORM) GetUserByID(ctx context.Context, id int64) (*entities.User, error) {
	return o.findUser(ctx, "uid = ?", id)
}

// GetUserByUsername loads a user for login.
func (o *ORM) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	return o.findUser(ctx, "username = ?", username)
}

func (o *ORM) findUser(ctx context.Context, cond string, arg any) (*entities.User, error) {
	var m userModel
	if err := o.db.WithContext(ctx).First(&m, cond, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	res := m.entity()
	return &res, nil
}
