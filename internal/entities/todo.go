// Package entities contains core business entities.
package entities

import "fmt"

// Todo is a to-do item of the blueprints app.
type Todo struct {
	ID          int64
	Title       string
	Description *string
	Done        bool
}

// String renders the done flag capitalised, the same way Person renders a missing age as None.
func (t Todo) String() string {
	done := "False"
	if t.Done {
		done = "True"
	}
	return fmt.Sprintf("<TODO %s Done: %s>", t.Title, done)
}
