// Package entities contains core business entities.
package entities

import "fmt"

// User is an account of the auth app.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         *string
	Description  *string
}

func (u User) String() string {
	role := "None"
	if u.Role != nil {
		role = *u.Role
	}
	return fmt.Sprintf("<User: %s, Role: %s>", u.Username, role)
}
