package orm

import "crud-tutorials/internal/entities"

type todoModel struct {
	TID         int64   `gorm:"column:tid;primaryKey;autoIncrement"`
	Title       string  `gorm:"column:title;not null"`
	Description *string `gorm:"column:description"`
	Done        bool    `gorm:"column:done;not null"`
}

func (todoModel) TableName() string { return "todos" }

func (m todoModel) entity() entities.Todo {
	return entities.Todo{ID: m.TID, Title: m.Title, Description: m.Description, Done: m.Done}
}

type personModel struct {
	PID  int64  `gorm:"column:pid;primaryKey;autoIncrement"`
	Name string `gorm:"column:name;not null"`
	Age  *int   `gorm:"column:age"`
	Job  string `gorm:"column:job;not null"`
}

func (personModel) TableName() string { return "people" }

func (m personModel) entity() entities.Person {
	return entities.Person{ID: m.PID, Name: m.Name, Age: m.Age, Job: m.Job}
}

type contactModel struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement"`
	FirstName string `gorm:"column:first_name;size:85;not null"`
	LastName  string `gorm:"column:last_name;size:85;not null"`
	Email     string `gorm:"column:email;size:121;not null;uniqueIndex"`
}

func (contactModel) TableName() string { return "contacts" }

func (m contactModel) entity() entities.Contact {
	return entities.Contact{ID: m.ID, FirstName: m.FirstName, LastName: m.LastName, Email: m.Email}
}

type userModel struct {
	UID         int64   `gorm:"column:uid;primaryKey;autoIncrement"`
	Username    string  `gorm:"column:username;not null;uniqueIndex"`
	Password    string  `gorm:"column:password;not null"`
	Role        *string `gorm:"column:role"`
	Description *string `gorm:"column:description"`
}

func (userModel) TableName() string { return "users" }

func (m userModel) entity() entities.User {
	return entities.User{ID: m.UID, Username: m.Username, PasswordHash: m.Password, Role: m.Role, Description: m.Description}
}
