package handlers_fiber

import (
	"errors"
	"net/http"

	"crud-tutorials/internal/entities"
	"crud-tutorials/internal/mapper"
	"crud-tutorials/internal/transport/http/dto"
	"crud-tutorials/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

const authHome = "/"

// AuthIndex shows the current user, if any.
func (h *Handler) AuthIndex(c *fiber.Ctx) error {
	return h.renderAuth(c, http.StatusOK, "auth/index", map[string]any{"title": "Home"})
}

// SignupForm shows the registration form.
func (h *Handler) SignupForm(c *fiber.Ctx) error {
	return h.renderSignup(c, http.StatusOK, dto.SignupForm{}, "")
}

// Signup creates an account and returns to the index.
func (h *Handler) Signup(c *fiber.Ctx) error {
	var form dto.SignupForm
	if err := c.BodyParser(&form); err != nil {
		return h.renderSignup(c, http.StatusBadRequest, form, "invalid form")
	}
	if err := validate.Struct(form); err != nil {
		return h.renderSignup(c, http.StatusBadRequest, form, "username and password are required")
	}

	_, err := h.uc.SignUp(c.Context(), mapper.FromSignupForm(form), form.Password)
	switch {
	case err == nil:
		return c.Redirect(authHome, fiber.StatusFound)
	case errors.Is(err, entities.ErrInvalidArgument):
		return h.renderSignup(c, http.StatusBadRequest, form, reason(err))
	case errors.Is(err, entities.ErrUserExists):
		return h.renderSignup(c, http.StatusConflict, form, "Username already taken")
	default:
		return h.renderError(c, err)
	}
}

// LoginForm shows the login form.
func (h *Handler) LoginForm(c *fiber.Ctx) error {
	return h.renderLogin(c, http.StatusOK, dto.LoginForm{}, "")
}

// Login checks credentials and remembers the user in the session.
func (h *Handler) Login(c *fiber.Ctx) error {
	var form dto.LoginForm
	if err := c.BodyParser(&form); err != nil {
		return h.renderLogin(c, http.StatusBadRequest, form, "invalid form")
	}
	if err := validate.Struct(form); err != nil {
		return h.renderLogin(c, http.StatusUnauthorized, form, "Invalid credentials")
	}

	user, err := h.uc.Login(c.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, entities.ErrInvalidCredentials) || errors.Is(err, entities.ErrInvalidArgument) {
			return h.renderLogin(c, http.StatusUnauthorized, form, "Invalid credentials")
		}
		return h.renderError(c, err)
	}

	middleware.Login(c, user)
	h.log.Infow("user logged in", "id", user.ID)
	return c.Redirect(authHome, fiber.StatusFound)
}

// Logout forgets the logged-in user.
func (h *Handler) Logout(c *fiber.Ctx) error {
	middleware.Logout(c)
	return c.Redirect(authHome, fiber.StatusFound)
}

// Secret is only reachable by logged-in users.
func (h *Handler) Secret(c *fiber.Ctx) error {
	return h.renderAuth(c, http.StatusOK, "auth/secret", map[string]any{"title": "Secret"})
}

func (h *Handler) renderSignup(c *fiber.Ctx, status int, form dto.SignupForm, errMsg string) error {
	return h.renderAuth(c, status, "auth/signup", withError(map[string]any{
		"title": "Sign up",
		"form": map[string]any{
			"username":    form.Username,
			"role":        form.Role,
			"description": form.Description,
		},
	}, errMsg))
}

func (h *Handler) renderLogin(c *fiber.Ctx, status int, form dto.LoginForm, errMsg string) error {
	return h.renderAuth(c, status, "auth/login", withError(map[string]any{
		"title": "Login",
		"form":  map[string]any{"username": form.Username},
	}, errMsg))
}

// renderAuth adds the auth navigation and the current user to page data.
func (h *Handler) renderAuth(c *fiber.Ctx, status int, name string, data map[string]any) error {
	data["nav"] = navAuth
	if u := middleware.CurrentUser(c); u != nil {
		data["user"] = mapper.ToUserView(u)
	}
	return h.views.Render(c, status, name, data)
}
