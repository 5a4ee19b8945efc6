package handlers_fiber

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Home returns the static home heading.
func (h *Handler) Home(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString("<h2>We are on Home Page...</h2>")
}

// Hello shows a custom status, content type and body.
func (h *Handler) Hello(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlain)
	return c.Status(http.StatusAccepted).SendString("Hello World\n")
}

// Greet echoes the name path segment.
func (h *Handler) Greet(c *fiber.Ctx) error {
	return c.SendString("Hello " + c.Params("name"))
}

// Add sums two integer path segments. The route only matches integers.
func (h *Handler) Add(c *fiber.Ctx) error {
	a, errA := c.ParamsInt("number1")
	b, errB := c.ParamsInt("number2")
	if errA != nil || errB != nil {
		return fiber.ErrNotFound
	}
	return c.SendString(fmt.Sprintf("%d + %d = %d", a, b, a+b))
}

// HandleURLParams greets using the greeting and name query parameters.
// A parameter counts as present even when empty.
func (h *Handler) HandleURLParams(c *fiber.Ctx) error {
	args := c.Context().QueryArgs()
	if !args.Has("greeting") || !args.Has("name") {
		return c.SendString("Some parameters are missing...")
	}
	return c.SendString(fmt.Sprintf("%s, %s", c.Query("greeting"), c.Query("name")))
}
