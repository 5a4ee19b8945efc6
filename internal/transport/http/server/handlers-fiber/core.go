package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// nav selects the navigation bar rendered by the layout.
const (
	navBlueprints = "blueprints"
	navAuth       = "auth"
)

// Index renders the landing page of the blueprints app.
func (h *Handler) Index(c *fiber.Ctx) error {
	return h.views.Render(c, http.StatusOK, "core/index", map[string]any{
		"title": "Home",
		"nav":   navBlueprints,
	})
}
