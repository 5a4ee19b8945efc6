package orm

import (
	"context"
	"errors"
	"fmt"

	"crud-tutorials/internal/entities"

	"gorm.io/gorm"
)

// CreatePerson inserts a person.
func (o *ORM) CreatePerson(ctx context.Context, person entities.Person) (*entities.Person, error) {
	m := personModel{Name: person.Name, Age: person.Age, Job: person.Job}
	if err := o.db.WithContext(ctx).Create(&m).Error; err != nil {
		o.log.Errorw("failed to insert person", "error", err)
		return nil, fmt.Errorf("insert person: %w", err)
	}
	res := m.entity()
	return &res, nil
}

// ListPeople returns all people ordered by id.
func (o *ORM) ListPeople(ctx context.Context) ([]entities.Person, error) {
	var ms []personModel
	if err := o.db.WithContext(ctx).Order("pid").Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}
	res := make([]entities.Person, 0, len(ms))
	for _, m := range ms {
		res = append(res, m.entity())
	}
	return res, nil
}

// GetPerson fetches a person by id.
func (o *ORM) GetPerson(ctx context.Context, id int64) (*entities.Person, error) {
	var m personModel
	if err := o.db.WithContext(ctx).First(&m, "pid = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrPersonNotFound
		}
		return nil, fmt.Errorf("get person: %w", err)
	}
	res := m.entity()
	return &res, nil
}

// UpdatePerson overwrites name, age and job of an existing person.
func (o *ORM) UpdatePerson(ctx context.Context, person entities.Person) (*entities.Person, error) {
	tx := o.db.WithContext(ctx).Model(&personModel{}).Where("pid = ?", person.ID).Updates(map[string]any{
		"name": person.Name,
		"age":  person.Age,
		"job":  person.Job,
	})
	if tx.Error != nil {
		return nil, fmt.Errorf("update person: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return nil, entities.ErrPersonNotFound
	}
	return o.GetPerson(ctx, person.ID)
}

// DeletePerson removes a person by id.
func (o *ORM) DeletePerson(ctx context.Context, id int64) error {
	tx := o.db.WithContext(ctx).Where("pid = ?", id).Delete(&personModel{})
	if tx.Error != nil {
		return fmt.Errorf("delete person: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return entities.ErrPersonNotFound
	}
	return nil
}
