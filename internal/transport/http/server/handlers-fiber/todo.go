package handlers_fiber

import (
	"errors"
	"net/http"

	"crud-tutorials/internal/entities"
	"crud-tutorials/internal/mapper"
	"crud-tutorials/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

const todosPath = "/todos/"

// TodoIndex lists every todo.
func (h *Handler) TodoIndex(c *fiber.Ctx) error {
	todos, err := h.uc.Todos(c.Context())
	if err != nil {
		return h.renderError(c, err)
	}
	return h.views.Render(c, http.StatusOK, "todos/index", map[string]any{
		"title": "Todos",
		"nav":   navBlueprints,
		"todos": mapper.ToTodoViews(todos),
	})
}

// TodoCreateForm shows the empty create form.
func (h *Handler) TodoCreateForm(c *fiber.Ctx) error {
	return h.renderTodoForm(c, http.StatusOK, dto.TodoForm{}, "")
}

// TodoCreate stores a new todo and returns to the list.
func (h *Handler) TodoCreate(c *fiber.Ctx) error {
	var form dto.TodoForm
	if err := c.BodyParser(&form); err != nil {
		return h.renderTodoForm(c, http.StatusBadRequest, form, "invalid form")
	}

	if _, err := h.uc.CreateTodo(c.Context(), mapper.FromTodoForm(form)); err != nil {
		if errors.Is(err, entities.ErrInvalidArgument) {
			return h.renderTodoForm(c, http.StatusBadRequest, form, reason(err))
		}
		return h.renderError(c, err)
	}
	return c.Redirect(todosPath, fiber.StatusFound)
}

// TodoDetail shows one todo.
func (h *Handler) TodoDetail(c *fiber.Ctx) error {
	id, ok := idParam(c, "tid")
	if !ok {
		return h.renderError(c, entities.ErrTodoNotFound)
	}
	todo, err := h.uc.Todo(c.Context(), id)
	if err != nil {
		return h.renderError(c, err)
	}
	return h.views.Render(c, http.StatusOK, "todos/detail", map[string]any{
		"title": todo.Title,
		"nav":   navBlueprints,
		"todo":  mapper.ToTodoView(*todo),
	})
}

// TodoDone marks a todo done.
func (h *Handler) TodoDone(c *fiber.Ctx) error {
	id, ok := idParam(c, "tid")
	if !ok {
		return h.renderError(c, entities.ErrTodoNotFound)
	}
	if _, err := h.uc.CompleteTodo(c.Context(), id); err != nil {
		return h.renderError(c, err)
	}
	return c.Redirect(todosPath, fiber.StatusFound)
}

// TodoDelete removes a todo.
func (h *Handler) TodoDelete(c *fiber.Ctx) error {
	id, ok := idParam(c, "tid")
	if !ok {
		return h.renderError(c, entities.ErrTodoNotFound)
	}
	if err := h.uc.DeleteTodo(c.Context(), id); err != nil {
		return h.renderError(c, err)
	}
	return c.Redirect(todosPath, fiber.StatusFound)
}

func (h *Handler) renderTodoForm(c *fiber.Ctx, status int, form dto.TodoForm, errMsg string) error {
	return h.views.Render(c, status, "todos/create", withError(map[string]any{
		"title": "Create todo",
		"nav":   navBlueprints,
		"form": map[string]any{
			"title":       form.Title,
			"description": form.Description,
		},
	}, errMsg))
}
