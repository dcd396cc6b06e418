package model

import "time"

// Hobby is an entry of the sports/activities catalog.
type Hobby struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

// HobbyInput is the payload for adding a catalog entry.
type HobbyInput struct {
	Name     string `json:"name" validate:"required,min=2,max=60"`
	Category string `json:"category" validate:"max=40"`
}
