// Package domain contains application services orchestrating domain logic by contact.
package domain

import (
	"context"
	"fmt"
	"strings"

	"crud-tutorials/internal/entities"
)

// CreateContact validates and stores a contact. Email must be unique.
func (u *Usecase) CreateContact(ctx context.Context, contact entities.Contact) (*entities.Contact, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	contact, err := u.normalizeContact(contact)
	if err != nil {
		return nil, err
	}
	res, err := u.repo.CreateContact(ctx, contact)
	if err != nil {
		return nil, err
	}
	u.log.Infow("contact create", "id", res.ID)
	return res, nil
}

// Contacts lists every contact.
func (u *Usecase) Contacts(ctx context.Context) ([]entities.Contact, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListContacts(ctx)
}

// UpdateContact applies a partial update; absent fields keep their value.
func (u *Usecase) UpdateContact(ctx context.Context, id int64, patch entities.ContactPatch) (*entities.Contact, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", entities.ErrInvalidArgument)
	}

	current, err := u.repo.GetContact(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.FirstName != nil {
		current.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		current.LastName = *patch.LastName
	}
	if patch.Email != nil {
		current.Email = *patch.Email
	}

	updated, err := u.normalizeContact(*current)
	if err != nil {
		return nil, err
	}
	return u.repo.UpdateContact(ctx, updated)
}

// DeleteContact deletes a contact by id.
func (u *Usecase) DeleteContact(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteContact(ctx, id)
}

func (u *Usecase) normalizeContact(c entities.Contact) (entities.Contact, error) {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.Email = strings.TrimSpace(c.Email)
	if c.FirstName == "" || c.LastName == "" || c.Email == "" {
		return c, fmt.Errorf("%w: first name, last name and email are required", entities.ErrInvalidArgument)
	}
	if err := u.validate.Var(c.Email, "email,max=121"); err != nil {
		return c, fmt.Errorf("%w: malformed email", entities.ErrInvalidArgument)
	}
	if len(c.FirstName) > 85 || len(c.LastName) > 85 {
		return c, fmt.Errorf("%w: names are limited to 85 characters", entities.ErrInvalidArgument)
	}
	return c, nil
}
