// Package dto holds HTTP request and response bodies.
package dto

// Message is the generic JSON reply of the contact-list API.
type Message struct {
	Message string `json:"message"`
}

// Contact is the JSON form of a contact.
type Contact struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// ContactList wraps the list reply.
type ContactList struct {
	Contacts []Contact `json:"contacts"`
}

// CreateContactRequest is the body of POST /create_contact.
type CreateContactRequest struct {
	FirstName *string `json:"firstName" validate:"required"`
	LastName  *string `json:"lastName" validate:"required"`
	Email     *string `json:"email" validate:"required"`
}

// UpdateContactRequest is the body of PATCH /update_contact/:id. Absent fields are left unchanged.
type UpdateContactRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
}

// TodoForm is the create form of a todo.
type TodoForm struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

// PersonForm is the create/update form of a person. Age is optional.
type PersonForm struct {
	Name string `form:"name"`
	Age  string `form:"age" validate:"omitempty,numeric"`
	Job  string `form:"job"`
}

// SignupForm is the account registration form.
type SignupForm struct {
	Username    string `form:"username" validate:"required"`
	Password    string `form:"password" validate:"required"`
	Role        string `form:"role"`
	Description string `form:"description"`
}

// LoginForm carries login credentials.
type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}
