package model

// User is the profile the user service returns for an authenticated session.
type User struct {
	Username string `json:"username"`
	ID       int    `json:"id"`
}

// Credentials carry a username and password for login or registration.
type Credentials struct {
	Username string
	Password string
}
