// Package domain contains application services orchestrating domain logic by person.
package domain

import (
	"context"
	"fmt"
	"strings"

	"crud-tutorials/internal/entities"
)

// CreatePerson validates and stores a person.
func (u *Usecase) CreatePerson(ctx context.Context, person entities.Person) (*entities.Person, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	person, err := normalizePerson(person)
	if err != nil {
		return nil, err
	}
	res, err := u.repo.CreatePerson(ctx, person)
	if err != nil {
		return nil, err
	}
	u.log.Infow("person create", "pid", res.ID)
	return res, nil
}

// People lists every person.
func (u *Usecase) People(ctx context.Context) ([]entities.Person, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListPeople(ctx)
}

// Person returns a person by id.
func (u *Usecase) Person(ctx context.Context, id int64) (*entities.Person, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return nil, fmt.Errorf("%w: pid must be positive", entities.ErrInvalidArgument)
	}
	return u.repo.GetPerson(ctx, id)
}

// UpdatePerson replaces the fields of an existing person.
func (u *Usecase) UpdatePerson(ctx context.Context, person entities.Person) (*entities.Person, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if person.ID <= 0 {
		return nil, fmt.Errorf("%w: pid must be positive", entities.ErrInvalidArgument)
	}
	person, err := normalizePerson(person)
	if err != nil {
		return nil, err
	}
	return u.repo.UpdatePerson(ctx, person)
}

// DeletePerson deletes a person by id.
func (u *Usecase) DeletePerson(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return fmt.Errorf("%w: pid must be positive", entities.ErrInvalidArgument)
	}
	return u.repo.DeletePerson(ctx, id)
}

func normalizePerson(p entities.Person) (entities.Person, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Job = strings.TrimSpace(p.Job)
	if p.Name == "" || p.Job == "" {
		return p, fmt.Errorf("%w: name and job are required", entities.ErrInvalidArgument)
	}
	if p.Age != nil && *p.Age < 0 {
		return p, fmt.Errorf("%w: age must not be negative", entities.ErrInvalidArgument)
	}
	return p, nil
}
