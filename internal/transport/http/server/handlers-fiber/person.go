package handlers_fiber

import (
	"errors"
	"net/http"

	"crud-tutorials/internal/entities"
	"crud-tutorials/internal/mapper"
	"crud-tutorials/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

const peoplePath = "/people/"

// PersonIndex lists every person.
func (h *Handler) PersonIndex(c *fiber.Ctx) error {
	people, err := h.uc.People(c.Context())
	if err != nil {
		return h.renderError(c, err)
	}
	return h.views.Render(c, http.StatusOK, "people/index", map[string]any{
		"title":  "People",
		"nav":    navBlueprints,
		"people": mapper.ToPersonViews(people),
	})
}

// PersonCreateForm shows the empty create form.
func (h *Handler) PersonCreateForm(c *fiber.Ctx) error {
	return h.renderPersonForm(c, http.StatusOK, dto.PersonForm{}, "")
}

// PersonCreate stores a new person and returns to the list.
func (h *Handler) PersonCreate(c *fiber.Ctx) error {
	var form dto.PersonForm
	if err := c.BodyParser(&form); err != nil {
		return h.renderPersonForm(c, http.StatusBadRequest, form, "invalid form")
	}
	if err := validate.Struct(form); err != nil {
		return h.renderPersonForm(c, http.StatusBadRequest, form, "age must be an integer")
	}

	person, err := mapper.FromPersonForm(0, form)
	if err == nil {
		_, err = h.uc.CreatePerson(c.Context(), person)
	}
	if err != nil {
		if errors.Is(err, entities.ErrInvalidArgument) {
			return h.renderPersonForm(c, http.StatusBadRequest, form, reason(err))
		}
		return h.renderError(c, err)
	}
	return c.Redirect(peoplePath, fiber.StatusFound)
}

// PersonDetail shows one person with the edit form.
func (h *Handler) PersonDetail(c *fiber.Ctx) error {
	id, ok := idParam(c, "pid")
	if !ok {
		return h.renderError(c, entities.ErrPersonNotFound)
	}
	person, err := h.uc.Person(c.Context(), id)
	if err != nil {
		return h.renderError(c, err)
	}
	return h.renderPersonDetail(c, http.StatusOK, *person, "")
}

// PersonUpdate replaces the fields of a person.
func (h *Handler) PersonUpdate(c *fiber.Ctx) error {
	id, ok := idParam(c, "pid")
	if !ok {
		return h.renderError(c, entities.ErrPersonNotFound)
	}
	var form dto.PersonForm
	if err := c.BodyParser(&form); err != nil {
		return h.renderError(c, entities.ErrInvalidArgument)
	}

	person, err := mapper.FromPersonForm(id, form)
	if err == nil {
		_, err = h.uc.UpdatePerson(c.Context(), person)
	}
	if err != nil {
		if !errors.Is(err, entities.ErrInvalidArgument) {
			return h.renderError(c, err)
		}
		current, getErr := h.uc.Person(c.Context(), id)
		if getErr != nil {
			return h.renderError(c, getErr)
		}
		return h.renderPersonDetail(c, http.StatusBadRequest, *current, reason(err))
	}
	return c.Redirect(peoplePath, fiber.StatusFound)
}

// PersonDelete removes a person.
func (h *Handler) PersonDelete(c *fiber.Ctx) error {
	id, ok := idParam(c, "pid")
	if !ok {
		return h.renderError(c, entities.ErrPersonNotFound)
	}
	if err := h.uc.DeletePerson(c.Context(), id); err != nil {
		return h.renderError(c, err)
	}
	return c.Redirect(peoplePath, fiber.StatusFound)
}

func (h *Handler) renderPersonForm(c *fiber.Ctx, status int, form dto.PersonForm, errMsg string) error {
	return h.views.Render(c, status, "people/create", withError(map[string]any{
		"title": "Add person",
		"nav":   navBlueprints,
		"form": map[string]any{
			"name": form.Name,
			"age":  form.Age,
			"job":  form.Job,
		},
	}, errMsg))
}

func (h *Handler) renderPersonDetail(c *fiber.Ctx, status int, person entities.Person, errMsg string) error {
	return h.views.Render(c, status, "people/detail", withError(map[string]any{
		"title":  person.Name,
		"nav":    navBlueprints,
		"person": mapper.ToPersonView(person),
	}, errMsg))
}
