package user

import "time"

// User is a seller account.
type User struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Password  string `json:"-"`
	CreatedAt time.Time
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}
