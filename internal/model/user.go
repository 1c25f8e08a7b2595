package model

import "errors"

// User is the signed-in identity.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Validate checks that u identifies someone.
func (u User) Validate() error {
	if u.ID == "" || u.Email == "" {
		return errors.New("user has no id or email")
	}
	return nil
}
