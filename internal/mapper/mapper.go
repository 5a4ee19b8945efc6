// Package mapper converts between domain models and transport DTOs or view bindings.
package mapper

import (
	"fmt"
	"strconv"
	"strings"

	"crud-tutorials/internal/entities"
	"crud-tutorials/internal/transport/http/dto"
)

// ToContactDTO maps entities.Contact to its JSON form.
func ToContactDTO(c entities.Contact) dto.Contact {
	return dto.Contact{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
	}
}

// ToContactList maps a slice of contacts to the list reply.
func ToContactList(list []entities.Contact) dto.ContactList {
	res := make([]dto.Contact, 0, len(list))
	for _, c := range list {
		res = append(res, ToContactDTO(c))
	}
	return dto.ContactList{Contacts: res}
}

// FromCreateContact builds an entities.Contact from a validated request.
func FromCreateContact(src dto.CreateContactRequest) entities.Contact {
	return entities.Contact{
		FirstName: deref(src.FirstName),
		LastName:  deref(src.LastName),
		Email:     deref(src.Email),
	}
}

// ToContactPatch maps the PATCH body to a partial update.
func ToContactPatch(src dto.UpdateContactRequest) entities.ContactPatch {
	return entities.ContactPatch{
		FirstName: src.FirstName,
		LastName:  src.LastName,
		Email:     src.Email,
	}
}

// FromTodoForm builds a todo from the create form. A blank description is stored as NULL.
func FromTodoForm(src dto.TodoForm) entities.Todo {
	return entities.Todo{
		Title:       src.Title,
		Description: optional(src.Description),
	}
}

// FromPersonForm builds a person from the form; age must be an integer when given.
func FromPersonForm(id int64, src dto.PersonForm) (entities.Person, error) {
	p := entities.Person{ID: id, Name: src.Name, Job: src.Job}
	if age := strings.TrimSpace(src.Age); age != "" {
		v, err := strconv.Atoi(age)
		if err != nil {
			return p, fmt.Errorf("%w: age must be an integer", entities.ErrInvalidArgument)
		}
		p.Age = &v
	}
	return p, nil
}

// FromSignupForm builds the account to create; the password stays separate for hashing.
func FromSignupForm(src dto.SignupForm) entities.User {
	return entities.User{
		Username:    src.Username,
		Role:        optional(src.Role),
		Description: optional(src.Description),
	}
}

// ToTodoView maps a todo to template bindings.
func ToTodoView(t entities.Todo) map[string]any {
	return map[string]any{
		"tid":         t.ID,
		"title":       t.Title,
		"description": deref(t.Description),
		"done":        t.Done,
		"repr":        t.String(),
	}
}

// ToTodoViews maps todos to template bindings.
func ToTodoViews(list []entities.Todo) []map[string]any {
	res := make([]map[string]any, 0, len(list))
	for _, t := range list {
		res = append(res, ToTodoView(t))
	}
	return res
}

// ToPersonView maps a person to template bindings.
func ToPersonView(p entities.Person) map[string]any {
	age := ""
	if p.Age != nil {
		age = strconv.Itoa(*p.Age)
	}
	return map[string]any{
		"pid":  p.ID,
		"name": p.Name,
		"age":  age,
		"job":  p.Job,
		"repr": p.String(),
	}
}

// ToPersonViews maps people to template bindings.
func ToPersonViews(list []entities.Person) []map[string]any {
	res := make([]map[string]any, 0, len(list))
	for _, p := range list {
		res = append(res, ToPersonView(p))
	}
	return res
}

// ToUserView maps the current user to template bindings; nil means anonymous.
func ToUserView(u *entities.User) map[string]any {
	if u == nil {
		return nil
	}
	return map[string]any{
		"uid":         u.ID,
		"username":    u.Username,
		"role":        deref(u.Role),
		"description": deref(u.Description),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
