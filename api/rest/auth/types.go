package auth

import "github.com/jsb2092/fashion-coordinator-sub000/internal/people"

// returned after a successful OAuth callback
type AuthResponse struct {
	Person *people.Person `json:"person"`
	Token  string         `json:"token"`
}

// wraps a person for profile endpoints
type PersonResponse struct {
	Person *people.Person `json:"person"`
}
