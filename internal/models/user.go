package models

import "time"

type User struct {
	ID           string    `json:"id"`
	Sub          string    `json:"sub,omitempty"`
	Iss          string    `json:"iss,omitempty"`
	Username     string    `json:"name"`
	DisplayName  string    `json:"display_name"`
	Email        string    `json:"email"`
	Plan         string    `json:"plan,omitempty"`
	Groups       []string  `json:"groups,omitempty"`
	LastLoggedIn time.Time `json:"last_logged_in"`
	CreatedAt    time.Time `json:"created_at"`
}
