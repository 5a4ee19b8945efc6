package handlers_fiber

import (
	"errors"
	"net/http"
	"strings"

	"crud-tutorials/internal/entities"
	"crud-tutorials/internal/transport/http/dto"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// writeError maps domain errors to the JSON replies of the contact-list API.
func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		msg = reason(err)
	case errors.Is(err, entities.ErrContactNotFound):
		status = http.StatusNotFound
		msg = "User not found"
	case errors.Is(err, entities.ErrContactExists):
		status = http.StatusBadRequest
		msg = "A contact with this email already exists"
	}

	return c.Status(status).JSON(dto.Message{Message: msg})
}

// renderError maps domain errors to an HTML error page.
func (h *Handler) renderError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	msg := "Internal Server Error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		msg = reason(err)
	case errors.Is(err, entities.ErrTodoNotFound), errors.Is(err, entities.ErrPersonNotFound):
		status = http.StatusNotFound
		msg = "Not Found"
	case errors.Is(err, entities.ErrUserExists):
		status = http.StatusConflict
		msg = "Username already taken"
	case errors.Is(err, entities.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		msg = "Invalid credentials"
	default:
		h.log.Errorw("request failed", "path", c.Path(), "error", err)
	}

	return h.views.Render(c, status, "error", map[string]any{"status": status, "message": msg})
}

// reason strips the sentinel prefix from a wrapped validation error.
func reason(err error) string {
	msg := err.Error()
	if cut, ok := strings.CutPrefix(msg, entities.ErrInvalidArgument.Error()+": "); ok {
		return cut
	}
	return msg
}

// idParam reads a positive integer path parameter.
func idParam(c *fiber.Ctx, name string) (int64, bool) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int64(id), true
}

// withError adds the form error to page data. Liquid treats "" as true, so empty messages are left out.
func withError(data map[string]any, msg string) map[string]any {
	if msg != "" {
		data["error"] = msg
	}
	return data
}
