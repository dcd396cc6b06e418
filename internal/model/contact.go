package model

import "time"

// Contact is a directed "saved contact" edge from one user to another.
type Contact struct {
	UserID      string    `json:"userId"`
	ContactID   string    `json:"contactId"`
	DisplayName string    `json:"displayName"`
	City        string    `json:"city"`
	CreatedAt   time.Time `json:"createdAt"`
}
