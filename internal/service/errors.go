package service

import (
	"database/sql"
	"errors"
	"fmt"
)

// Error kinds. Handlers map these to HTTP statuses.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// Error is a domain failure carrying a stable machine-readable code.
// errors.Is matches both the Error value itself and its Kind.
type Error struct {
	Kind    error
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, code, msg string) *Error {
	return &Error{Kind: kind, Code: code, Message: msg}
}

var (
	ErrEmailExists        = newError(ErrConflict, "EMAIL_EXISTS", "email already registered")
	ErrInvalidCredentials = newError(ErrUnauthorized, "INVALID_CREDENTIALS", "invalid email or password")

	ErrUserNotFound    = newError(ErrNotFound, "USER_NOT_FOUND", "user not found")
	ErrGroupNotFound   = newError(ErrNotFound, "GROUP_NOT_FOUND", "group not found")
	ErrPostNotFound    = newError(ErrNotFound, "POST_NOT_FOUND", "post not found")
	ErrRequestNotFound = newError(ErrNotFound, "REQUEST_NOT_FOUND", "group request not found")
	ErrHobbyNotFound   = newError(ErrNotFound, "HOBBY_NOT_FOUND", "hobby not found")
	ErrContactNotFound = newError(ErrNotFound, "CONTACT_NOT_FOUND", "contact not found")
	ErrCenterNotFound  = newError(ErrNotFound, "CENTER_NOT_FOUND", "center not found")
	ErrBookingNotFound = newError(ErrNotFound, "BOOKING_NOT_FOUND", "booking not found")
	ErrNotMember       = newError(ErrNotFound, "NOT_MEMBER", "not a member of this group")

	ErrNotOwner        = newError(ErrForbidden, "NOT_OWNER", "only the group owner can do this")
	ErrMembersOnly     = newError(ErrForbidden, "MEMBERS_ONLY", "only group members can do this")
	ErrRequestRequired = newError(ErrForbidden, "REQUEST_REQUIRED", "group is private, send a join request")
	ErrNotAllowed      = newError(ErrForbidden, "FORBIDDEN", "not allowed")

	ErrAlreadyMember    = newError(ErrConflict, "ALREADY_MEMBER", "already a member of this group")
	ErrGroupFull        = newError(ErrConflict, "GROUP_FULL", "group is full")
	ErrRequestPending   = newError(ErrConflict, "REQUEST_PENDING", "a pending request already exists")
	ErrRequestClosed    = newError(ErrConflict, "REQUEST_CLOSED", "request is no longer pending")
	ErrContactExists    = newError(ErrConflict, "CONTACT_EXISTS", "contact already added")
	ErrHobbyExists      = newError(ErrConflict, "HOBBY_EXISTS", "hobby already exists")
	ErrSlotUnavailable  = newError(ErrConflict, "SLOT_UNAVAILABLE", "no court available for this slot")
	ErrBookingOverlap   = newError(ErrConflict, "BOOKING_OVERLAP", "you already have a booking in this slot")
	ErrBookingFinalized = newError(ErrConflict, "BOOKING_NOT_CANCELLABLE", "booking can no longer be cancelled")
)

// invalid builds a validation error with a specific message.
func invalid(format string, args ...any) *Error {
	return newError(ErrInvalidInput, "VALIDATION_ERROR", fmt.Sprintf(format, args...))
}

// notFound translates sql.ErrNoRows into the given domain error.
func notFound(err error, domain *Error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain
	}
	return err
}
