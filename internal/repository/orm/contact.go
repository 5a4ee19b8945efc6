package orm

import (
	"context"
	"errors"
	"fmt"

	"crud-tutorials/internal/entities"

	"gorm.io/gorm"
)

// CreateContact inserts a contact; a taken email yields ErrContactExists.
func (o *ORM) CreateContact(ctx context.Context, contact entities.Contact) (*entities.Contact, error) {
	m := contactModel{FirstName: contact.FirstName, LastName: contact.LastName, Email: contact.Email}
	if err := o.db.WithContext(ctx).Create(&m).Error; err != nil {
		o.log.Errorw("failed to insert contact", "error", err, "email", contact.Email)
		if isDuplicate(err) {
			return nil, entities.ErrContactExists
		}
		return nil, fmt.Errorf("insert contact: %w", err)
	}
	res := m.entity()
	return &res, nil
}

// ListContacts returns all contacts ordered by id.
func (o *ORM) ListContacts(ctx context.Context) ([]entities.Contact, error) {
	var ms []contactModel
	if err := o.db.WithContext(ctx).Order("id").Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	res := make([]entities.Contact, 0, len(ms))
	for _, m := range ms {
		res = append(res, m.entity())
	}
	return res, nil
}

// GetContact fetches a contact by id.
func (o *ORM) GetContact(ctx context.Context, id int64) (*entities.Contact, error) {
	var m contactModel
	if err := o.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrContactNotFound
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}
	res := m.entity()
	return &res, nil
}

// UpdateContact overwrites every column of an existing contact.
func (o *ORM) UpdateContact(ctx context.Context, contact entities.Contact) (*entities.Contact, error) {
	tx := o.db.WithContext(ctx).Model(&contactModel{}).Where("id = ?", contact.ID).Updates(map[string]any{
		"first_name": contact.FirstName,
		"last_name":  contact.LastName,
		"email":      contact.Email,
	})
	if tx.Error != nil {
		o.log.Errorw("failed to update contact", "error", tx.Error, "id", contact.ID)
		if isDuplicate(tx.Error) {
			return nil, entities.ErrContactExists
		}
		return nil, fmt.Errorf("update contact: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return nil, entities.ErrContactNotFound
	}
	return o.GetContact(ctx, contact.ID)
}

// DeleteContact removes a contact by id.
func (o *ORM) DeleteContact(ctx context.Context, id int64) error {
	tx := o.db.WithContext(ctx).Where("id = ?", id).Delete(&contactModel{})
	if tx.Error != nil {
		return fmt.Errorf("delete contact: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return entities.ErrContactNotFound
	}
	return nil
}
