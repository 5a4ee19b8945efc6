package handlers_fiber

import (
	"net/http"
	"time"

	"crud-tutorials/internal/transport/http/session"

	"github.com/gofiber/fiber/v2"
)

const (
	demoCookieName  = "cookie_name"
	demoCookieValue = "cookie_value"
)

// SessionIndex returns the sessions app greeting.
func (h *Handler) SessionIndex(c *fiber.Ctx) error {
	return c.SendString("Hello World")
}

// SetData stores every query parameter in the session, or a fixed pair when there are none.
func (h *Handler) SetData(c *fiber.Ctx) error {
	s := session.FromCtx(c)
	args := c.Context().QueryArgs()
	if args.Len() == 0 {
		s.Set("name", "Mike")
		s.Set("other", "Hello World")
	} else {
		args.VisitAll(func(key, value []byte) {
			s.Set(string(key), string(value))
		})
	}
	return c.SendString("Session data set.")
}

// GetData returns the whole session as JSON.
func (h *Handler) GetData(c *fiber.Ctx) error {
	s := session.FromCtx(c)
	if s.Len() == 0 {
		return c.SendString("No session found.")
	}
	return c.JSON(s.Values())
}

// GetDataKey returns one session value.
func (h *Handler) GetDataKey(c *fiber.Ctx) error {
	v, ok := session.FromCtx(c).Get(c.Params("key"))
	if !ok {
		return c.SendString("No data")
	}
	return c.SendString(v)
}

// ClearSession drops all session data.
func (h *Handler) ClearSession(c *fiber.Ctx) error {
	session.FromCtx(c).Clear()
	return c.SendString("Session cleared.")
}

// SetCookie sets the demo cookie.
func (h *Handler) SetCookie(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{Name: demoCookieName, Value: demoCookieValue, Path: "/"})
	return c.SendString("Cookie set.")
}

// GetCookie reads the demo cookie.
func (h *Handler) GetCookie(c *fiber.Ctx) error {
	v := c.Cookies(demoCookieName)
	if v == "" {
		return c.SendString("No cookie found.")
	}
	return c.SendString(v)
}

// RemoveCookie expires the demo cookie.
func (h *Handler) RemoveCookie(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{Name: demoCookieName, Path: "/", Expires: time.Unix(0, 0)})
	return c.Status(http.StatusOK).SendString("Cookie removed.")
}
