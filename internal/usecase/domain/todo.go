// Package domain contains application services orchestrating domain logic by todo.
package domain

import (
	"context"
	"fmt"
	"strings"

	"crud-tutorials/internal/entities"
)

// CreateTodo validates and stores a new, not yet done todo.
func (u *Usecase) CreateTodo(ctx context.Context, todo entities.Todo) (*entities.Todo, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	todo.Title = strings.TrimSpace(todo.Title)
	if todo.Title == "" {
		return nil, fmt.Errorf("%w: title is required", entities.ErrInvalidArgument)
	}
	if todo.Description != nil && strings.TrimSpace(*todo.Description) == "" {
		todo.Description = nil
	}
	todo.Done = false

	res, err := u.repo.CreateTodo(ctx, todo)
	if err != nil {
		return nil, err
	}
	u.log.Infow("todo create", "tid", res.ID)
	return res, nil
}

// Todos lists every todo.
func (u *Usecase) Todos(ctx context.Context) ([]entities.Todo, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListTodos(ctx)
}

// Todo returns a todo by id.
func (u *Usecase) Todo(ctx context.Context, id int64) (*entities.Todo, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return nil, fmt.Errorf("%w: tid must be positive", entities.ErrInvalidArgument)
	}
	return u.repo.GetTodo(ctx, id)
}

// CompleteTodo marks a todo done.
func (u *Usecase) CompleteTodo(ctx context.Context, id int64) (*entities.Todo, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return nil, fmt.Errorf("%w: tid must be positive", entities.ErrInvalidArgument)
	}
	return u.repo.MarkTodoDone(ctx, id)
}

// DeleteTodo deletes a todo by id.
func (u *Usecase) DeleteTodo(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return fmt.Errorf("%w: tid must be positive", entities.ErrInvalidArgument)
	}
	if err := u.repo.DeleteTodo(ctx, id); err != nil {
		return err
	}
	u.log.Infow("todo delete", "tid", id)
	return nil
}
