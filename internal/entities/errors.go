// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrTodoNotFound signals missing todo.
	ErrTodoNotFound = errors.New("todo not found")
	// ErrPersonNotFound signals missing person.
	ErrPersonNotFound = errors.New("person not found")
	// ErrContactNotFound signals missing contact.
	ErrContactNotFound = errors.New("contact not found")
	// ErrContactExists signals email conflict.
	ErrContactExists = errors.New("contact email exists")
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists signals username conflict.
	ErrUserExists = errors.New("user exists")
	// ErrInvalidCredentials signals a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
