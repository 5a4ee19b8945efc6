// Package entities contains core business entities.
package entities

import (
	"fmt"
	"strconv"
)

// Person is a people record of the blueprints app.
type Person struct {
	ID   int64
	Name string
	Age  *int
	Job  string
}

func (p Person) String() string {
	age := "None"
	if p.Age != nil {
		age = strconv.Itoa(*p.Age)
	}
	return fmt.Sprintf("<PERSON %s Age: %s>", p.Name, age)
}
