// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.
package repository

import (
	"context"
	"database/sql"
	"errors"
)

var (
	// ErrDuplicate is returned when an insert violates a uniqueness constraint.
	ErrDuplicate = errors.New("duplicate record")
	// ErrReference is returned when a referenced row does not exist.
	ErrReference = errors.New("referenced record does not exist")
)

// DBTX is the subset of database/sql shared by *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Transactor runs read-modify-write sequences atomically.
// Repository calls made with the ctx passed to fn join the transaction.
// Implementations retry fn on contention, so fn must be safe to run more than once.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
