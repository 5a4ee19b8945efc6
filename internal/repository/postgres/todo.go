package postgres

import (
	"context"
	"errors"
	"fmt"

	"crud-tutorials/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	insertTodoQuery   = `INSERT INTO todos(title, description, done) VALUES ($1,$2,$3) RETURNING tid`
	selectTodosQuery  = `SELECT tid, title, description, done FROM todos ORDER BY tid`
	selectTodoQuery   = `SELECT tid, title, description, done FROM todos WHERE tid=$1`
	markTodoDoneQuery = `UPDATE todos SET done=true WHERE tid=$1 RETURNING tid, title, description, done`
	deleteTodoQuery   = `DELETE FROM todos WHERE tid=$1`
)

// CreateTodo inserts a todo.
func (p *Postgres) CreateTodo(ctx context.Context, todo entities.Todo) (*entities.Todo, error) {
	if err := p.db.QueryRow(ctx, insertTodoQuery, todo.Title, todo.Description, todo.Done).Scan(&todo.ID); err != nil {
		p.log.Errorw("failed to insert todo", "error", err)
		return nil, fmt.Errorf("insert todo: %w", err)
	}
	return &todo, nil
}

// ListTodos returns all todos ordered by id.
func (p *Postgres) ListTodos(ctx context.Context) ([]entities.Todo, error) {
	rows, err := p.db.Query(ctx, selectTodosQuery)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer rows.Close()

	todos := make([]entities.Todo, 0)
	for rows.Next() {
		var t entities.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Done); err != nil {
			p.log.Errorw("failed to scan todo", "error", err)
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate todos: %w", err)
	}
	return todos, nil
}

// GetTodo fetches a todo by id.
func (p *Postgres) GetTodo(ctx context.Context, id int64) (*entities.Todo, error) {
	return p.scanTodo(p.db.QueryRow(ctx, selectTodoQuery, id), "get todo")
}

// MarkTodoDone sets done=true in place.
func (p *Postgres) MarkTodoDone(ctx context.Context, id int64) (*entities.Todo, error) {
	t, err := p.scanTodo(p.db.QueryRow(ctx, markTodoDoneQuery, id), "mark todo done")
	if err != nil {
		return nil, err
	}
	p.log.Infow("todo done", "tid", id)
	return t, nil
}

// DeleteTodo removes a todo by id.
func (p *Postgres) DeleteTodo(ctx context.Context, id int64) error {
	tag, err := p.db.Exec(ctx, deleteTodoQuery, id)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrTodoNotFound
	}
	return nil
}

func (p *Postgres) scanTodo(row pgx.Row, op string) (*entities.Todo, error) {
	var t entities.Todo
	if err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Done); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTodoNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &t, nil
}
