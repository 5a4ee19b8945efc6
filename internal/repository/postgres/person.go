package postgres

import (
	"context"
	"errors"
	"fmt"

	"crud-tutorials/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	insertPersonQuery = `INSERT INTO people(name, age, job) VALUES ($1,$2,$3) RETURNING pid`
	selectPeopleQuery = `SELECT pid, name, age, job FROM people ORDER BY pid`
	selectPersonQuery = `SELECT pid, name, age, job FROM people WHERE pid=$1`
	updatePersonQuery = `UPDATE people SET name=$2, age=$3, job=$4 WHERE pid=$1 RETURNING pid, name, age, job`
	deletePersonQuery = `DELETE FROM people WHERE pid=$1`
)

// CreatePerson inserts a person.
func (p *Postgres) CreatePerson(ctx context.Context, person entities.Person) (*entities.Person, error) {
	if err := p.db.QueryRow(ctx, insertPersonQuery, person.Name, person.Age, person.Job).Scan(&person.ID); err != nil {
		p.log.Errorw("failed to insert person", "error", err)
		return nil, fmt.Errorf("insert person: %w", err)
	}
	return &person, nil
}

// ListPeople returns all people ordered by id.
func (p *Postgres) ListPeople(ctx context.Context) ([]entities.Person, error) {
	rows, err := p.db.Query(ctx, selectPeopleQuery)
	if err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}
	defer rows.Close()

	people := make([]entities.Person, 0)
	for rows.Next() {
		var pr entities.Person
		if err := rows.Scan(&pr.ID, &pr.Name, &pr.Age, &pr.Job); err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		people = append(people, pr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate people: %w", err)
	}
	return people, nil
}

// GetPerson fetches a person by id.
func (p *Postgres) GetPerson(ctx context.Context, id int64) (*entities.Person, error) {
	return scanPerson(p.db.QueryRow(ctx, selectPersonQuery, id), "get person")
}

// UpdatePerson overwrites name, age and job of an existing person.
func (p *Postgres) UpdatePerson(ctx context.Context, person entities.Person) (*entities.Person, error) {
	return scanPerson(p.db.QueryRow(ctx, updatePersonQuery, person.ID, person.Name, person.Age, person.Job), "update person")
}

// DeletePerson removes a person by id.
func (p *Postgres) DeletePerson(ctx context.Context, id int64) error {
	tag, err := p.db.Exec(ctx, deletePersonQuery, id)
	if err != nil {
		return fmt.Errorf("delete person: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrPersonNotFound
	}
	return nil
}

func scanPerson(row pgx.Row, op string) (*entities.Person, error) {
	var pr entities.Person
	if err := row.Scan(&pr.ID, &pr.Name, &pr.Age, &pr.Job); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrPersonNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &pr, nil
}
