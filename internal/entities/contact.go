// Package entities contains core business entities.
package entities

// Contact is an entry of the contact list. Email is unique across contacts.
type Contact struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
}

// ContactPatch carries a partial contact update; nil fields keep their value.
type ContactPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
}
