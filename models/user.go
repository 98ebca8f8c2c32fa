package models

import "time"

// User represents a registered account used for authentication and
// authorization. The email address is the unique account identifier.
// PasswordHash must never leave trusted boundaries.
type User struct {
	// Email is the unique user identifier, used as the JWT subject.
	Email string `json:"email"`

	// FirstName is the user's given name, shown on bid activity.
	FirstName string `json:"first_name"`

	// LastName is the user's family name.
	LastName string `json:"last_name"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// Never exposed via JSON.
	PasswordHash string `json:"-"`

	// Enabled reports whether the account may authenticate.
	Enabled bool `json:"enabled"`

	// Admin grants access to item management and the bidding toggle.
	Admin bool `json:"admin"`

	// CreatedAt is the registration timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Profile is the public projection of a User returned by the profile
// endpoint. It omits credential material.
type Profile struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Admin     bool   `json:"admin"`
}

// Profile derives the public projection of the user.
func (u User) Profile() Profile {
	return Profile{
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Admin:     u.Admin,
	}
}
