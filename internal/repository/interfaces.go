// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"crud-tutorials/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// TodoInterface exposes todo operations.
type TodoInterface interface {
	CreateTodo(ctx context.Context, todo entities.Todo) (*entities.Todo, error)
	ListTodos(ctx context.Context) ([]entities.Todo, error)
	GetTodo(ctx context.Context, id int64) (*entities.Todo, error)
	MarkTodoDone(ctx context.Context, id int64) (*entities.Todo, error)
	DeleteTodo(ctx context.Context, id int64) error
}

// PersonInterface exposes people operations.
type PersonInterface interface {
	CreatePerson(ctx context.Context, person entities.Person) (*entities.Person, error)
	ListPeople(ctx context.Context) ([]entities.Person, error)
	GetPerson(ctx context.Context, id int64) (*entities.Person, error)
	UpdatePerson(ctx context.Context, person entities.Person) (*entities.Person, error)
	DeletePerson(ctx context.Context, id int64) error
}

// ContactInterface exposes contact-list operations.
type ContactInterface interface {
	CreateContact(ctx context.Context, contact entities.Contact) (*entities.Contact, error)
	ListContacts(ctx context.Context) ([]entities.Contact, error)
	GetContact(ctx context.Context, id int64) (*entities.Contact, error)
	UpdateContact(ctx context.Context, contact entities.Contact) (*entities.Contact, error)
	DeleteContact(ctx context.Context, id int64) error
}

// UserInterface exposes account lookups for the login manager.
type UserInterface interface {
	CreateUser(ctx context.Context, user entities.User) (*entities.User, error)
	GetUserByID(ctx context.Context, id int64) (*entities.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
}
