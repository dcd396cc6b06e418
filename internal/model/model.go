// Package model contains domain models shared across the HTTP, service and
// repository layers. Models carry JSON tags only; persistence mapping lives in
// the repository implementations.
package model

import "time"

// Page is a generic paginated listing returned by services.
type Page[T any] struct {
	Items []T `json:"data"`
	Total int `json:"total"`
}

// Identity is the decoded bearer token attached to authenticated requests.
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Admin bool   `json:"admin"`
}

func nowUTC() time.Time { return time.Now().UTC() }
