package orm

import (
	"context"
	"errors"
	"fmt"

	"crud-tutorials/internal/entities"

	"gorm.io/gorm"
)

// CreateTodo inserts a todo.
func (o *ORM) CreateTodo(ctx context.Context, todo entities.Todo) (*entities.Todo, error) {
	m := todoModel{Title: todo.Title, Description: todo.Description, Done: todo.Done}
	if err := o.db.WithContext(ctx).Create(&m).Error; err != nil {
		o.log.Errorw("failed to insert todo", "error", err)
		return nil, fmt.Errorf("insert todo: %w", err)
	}
	res := m.entity()
	return &res, nil
}

// ListTodos returns all todos ordered by id.
func (o *ORM) ListTodos(ctx context.Context) ([]entities.Todo, error) {
	var ms []todoModel
	if err := o.db.WithContext(ctx).Order("tid").Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	res := make([]entities.Todo, 0, len(ms))
	for _, m := range ms {
		res = append(res, m.entity())
	}
	return res, nil
}

// GetTodo fetches a todo by id.
func (o *ORM) GetTodo(ctx context.Context, id int64) (*entities.Todo, error) {
	var m todoModel
	if err := o.db.WithContext(ctx).First(&m, "tid = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrTodoNotFound
		}
		return nil, fmt.Errorf("get todo: %w", err)
	}
	res := m.entity()
	return &res, nil
}

// MarkTodoDone sets done=true in place.
func (o *ORM) MarkTodoDone(ctx context.Context, id int64) (*entities.Todo, error) {
	tx := o.db.WithContext(ctx).Model(&todoModel{}).Where("tid = ?", id).Update("done", true)
	if tx.Error != nil {
		return nil, fmt.Errorf("mark todo done: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return nil, entities.ErrTodoNotFound
	}
	o.log.Infow("todo done", "tid", id)
	return o.GetTodo(ctx, id)
}

// DeleteTodo removes a todo by id.
func (o *ORM) DeleteTodo(ctx context.Context, id int64) error {
	tx := o.db.WithContext(ctx).Where("tid = ?", id).Delete(&todoModel{})
	if tx.Error != nil {
		return fmt.Errorf("delete todo: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return entities.ErrTodoNotFound
	}
	return nil
}
