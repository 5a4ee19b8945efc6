package middleware

import (
	"context"
	"errors"
	"strconv"

	"crud-tutorials/internal/entities"
	"crud-tutorials/internal/transport/http/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	// SessionUserKey is the session key holding the logged-in user id.
	SessionUserKey = "_user_id"
	userLocalsKey  = "user"
)

// UserLoader restores an account from the id stored in the session.
type UserLoader interface {
	LoadUser(ctx context.Context, id int64) (*entities.User, error)
}

// LoadUser attaches the logged-in user, if any, to the request.
// A session pointing at a removed account is logged out.
func LoadUser(log *zap.SugaredLogger, loader UserLoader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := session.FromCtx(c)
		raw, ok := s.Get(SessionUserKey)
		if !ok {
			return c.Next()
		}

		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			s.Delete(SessionUserKey)
			return c.Next()
		}

		user, err := loader.LoadUser(c.Context(), id)
		switch {
		case err == nil:
			c.Locals(userLocalsKey, user)
		case errors.Is(err, entities.ErrUserNotFound):
			s.Delete(SessionUserKey)
		default:
			log.Errorw("failed to load session user", "id", id, "error", err)
		}
		return c.Next()
	}
}

// RequireLogin redirects anonymous requests to redirect.
func RequireLogin(redirect string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentUser(c) == nil {
			return c.Redirect(redirect, fiber.StatusFound)
		}
		return c.Next()
	}
}

// CurrentUser returns the logged-in user or nil.
func CurrentUser(c *fiber.Ctx) *entities.User {
	u, _ := c.Locals(userLocalsKey).(*entities.User)
	return u
}

// Login remembers user in the session and on the current request.
func Login(c *fiber.Ctx, user *entities.User) {
	session.FromCtx(c).Set(SessionUserKey, strconv.FormatInt(user.ID, 10))
	c.Locals(userLocalsKey, user)
}

// Logout forgets the logged-in user.
func Logout(c *fiber.Ctx) {
	session.FromCtx(c).Delete(SessionUserKey)
	c.Locals(userLocalsKey, nil)
}
