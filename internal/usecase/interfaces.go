package usecase

import (
	"context"

	"crud-tutorials/internal/entities"
)

// TodoUsecaseInterface abstracts todo operations for the delivery layer.
type TodoUsecaseInterface interface {
	CreateTodo(ctx context.Context, todo entities.Todo) (*entities.Todo, error)
	Todos(ctx context.Context) ([]entities.Todo, error)
	Todo(ctx context.Context, id int64) (*entities.Todo, error)
	CompleteTodo(ctx context.Context, id int64) (*entities.Todo, error)
	DeleteTodo(ctx context.Context, id int64) error
}

// PersonUsecaseInterface abstracts people operations.
type PersonUsecaseInterface interface {
	CreatePerson(ctx context.Context, person entities.Person) (*entities.Person, error)
	People(ctx context.Context) ([]entities.Person, error)
	Person(ctx context.Context, id int64) (*entities.Person, error)
	UpdatePerson(ctx context.Context, person entities.Person) (*entities.Person, error)
	DeletePerson(ctx context.Context, id int64) error
}

// ContactUsecaseInterface abstracts contact-list operations.
type ContactUsecaseInterface interface {
	CreateContact(ctx context.Context, contact entities.Contact) (*entities.Contact, error)
	Contacts(ctx context.Context) ([]entities.Contact, error)
	UpdateContact(ctx context.Context, id int64, patch entities.ContactPatch) (*entities.Contact, error)
	DeleteContact(ctx context.Context, id int64) error
}

// AuthUsecaseInterface abstracts signup, login and session restoration.
type AuthUsecaseInterface interface {
	SignUp(ctx context.Context, user entities.User, password string) (*entities.User, error)
	Login(ctx context.Context, username, password string) (*entities.User, error)
	LoadUser(ctx context.Context, id int64) (*entities.User, error)
}
