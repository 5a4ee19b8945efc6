package postgres

import (
	"context"
	"errors"
	"fmt"

	"crud-tutorials/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	insertContactQuery  = `INSERT INTO contacts(first_name, last_name, email) VALUES ($1,$2,$3) RETURNING id`
	selectContactsQuery = `SELECT id, first_name, last_name, email FROM contacts ORDER BY id`
	selectContactQuery  = `SELECT id, first_name, last_name, email FROM contacts WHERE id=$1`
	updateContactQuery  = `
UPDATE contacts SET first_name=$2, last_name=$3, email=$4
WHERE id=$1
RETURNING id, first_name, last_name, email`
	deleteContactQuery = `DELETE FROM contacts WHERE id=$1`
)

// CreateContact inserts a contact; a taken email yields ErrContactExists.
func (p *Postgres) CreateContact(ctx context.Context, contact entities.Contact) (*entities.Contact, error) {
	err := p.db.QueryRow(ctx, insertContactQuery, contact.FirstName, contact.LastName, contact.Email).Scan(&contact.ID)
	if err != nil {
		p.log.Errorw("failed to insert contact", "error", err, "email", contact.Email)
		if isUniqueViolation(err) {
			return nil, entities.ErrContactExists
		}
		return nil, fmt.Errorf("insert contact: %w", err)
	}
	return &contact, nil
}

// ListContacts returns all contacts ordered by id.
func (p *Postgres) ListContacts(ctx context.Context) ([]entities.Contact, error) {
	rows, err := p.db.Query(ctx, selectContactsQuery)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	contacts := make([]entities.Contact, 0)
	for rows.Next() {
		var c entities.Contact
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contacts: %w", err)
	}
	return contacts, nil
}

// GetContact fetches a contact by id.
func (p *Postgres) GetContact(ctx context.Context, id int64) (*entities.Contact, error) {
	var c entities.Contact
	if err := p.db.QueryRow(ctx, selectContactQuery, id).Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrContactNotFound
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return &c, nil
}

// UpdateContact overwrites every column of an existing contact.
func (p *Postgres) UpdateContact(ctx context.Context, contact entities.Contact) (*entities.Contact, error) {
	var c entities.Contact
	err := p.db.QueryRow(ctx, updateContactQuery, contact.ID, contact.FirstName, contact.LastName, contact.Email).
		Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email)
	if err != nil {
		p.log.Errorw("failed to update contact", "error", err, "id", contact.ID)
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, entities.ErrContactNotFound
		case isUniqueViolation(err):
			return nil, entities.ErrContactExists
		}
		return nil, fmt.Errorf("update contact: %w", err)
	}
	return &c, nil
}

// DeleteContact removes a contact by id.
func (p *Postgres) DeleteContact(ctx context.Context, id int64) error {
	tag, err := p.db.Exec(ctx, deleteContactQuery, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrContactNotFound
	}
	return nil
}
