package handlers_fiber

import (
	"net/http"
	"strings"

	"crud-tutorials/internal/entities"
	"crud-tutorials/internal/mapper"
	"crud-tutorials/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

const missingContactFields = "You must include a first name, last name and email"

// GetContacts lists every contact.
func (h *Handler) GetContacts(c *fiber.Ctx) error {
	contacts, err := h.uc.Contacts(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToContactList(contacts))
}

// CreateContact stores a contact. Every field is required and the email must be unique.
func (h *Handler) CreateContact(c *fiber.Ctx) error {
	var body dto.CreateContactRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.Message{Message: "invalid body"})
	}
	if err := validate.Struct(body); err != nil || blank(body.FirstName) || blank(body.LastName) || blank(body.Email) {
		return c.Status(http.StatusBadRequest).JSON(dto.Message{Message: missingContactFields})
	}

	if _, err := h.uc.CreateContact(c.Context(), mapper.FromCreateContact(body)); err != nil {
		h.log.Infow("create contact rejected", "error", err)
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(dto.Message{Message: "User created!"})
}

// UpdateContact applies the fields present in the body.
func (h *Handler) UpdateContact(c *fiber.Ctx) error {
	id, ok := idParam(c, "user_id")
	if !ok {
		return writeError(c, entities.ErrContactNotFound)
	}
	var body dto.UpdateContactRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return c.Status(http.StatusBadRequest).JSON(dto.Message{Message: "invalid body"})
		}
	}

	if _, err := h.uc.UpdateContact(c.Context(), id, mapper.ToContactPatch(body)); err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.Message{Message: "User updated."})
}

// blank treats empty and whitespace-only values as missing.
func blank(s *string) bool {
	return s != nil && strings.TrimSpace(*s) == ""
}

// DeleteContact removes a contact.
func (h *Handler) DeleteContact(c *fiber.Ctx) error {
	id, ok := idParam(c, "user_id")
	if !ok {
		return writeError(c, entities.ErrContactNotFound)
	}
	if err := h.uc.DeleteContact(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.Message{Message: "User deleted!"})
}
