package service

import (
	"context"
	"errors"

	"startconnect/internal/model"
	"startconnect/internal/repository"
)

// ContactService manages a user's saved contacts.
type ContactService interface {
	List(ctx context.Context, uid string) ([]model.Contact, error)
	Add(ctx context.Context, uid, contactID string) (*model.Contact, error)
	Remove(ctx context.Context, uid, contactID string) error
}

type contactService struct {
	contacts repository.ContactRepository
}

func NewContactService(contacts repository.ContactRepository) ContactService {
	return &contactService{contacts: contacts}
}

func (s *contactService) List(ctx context.Context, uid string) ([]model.Contact, error) {
	return s.contacts.List(ctx, uid)
}

func (s *contactService) Add(ctx context.Context, uid, contactID string) (*model.Contact, error) {
	if contactID == uid {
		return nil, invalid("you cannot add yourself as a contact")
	}
	c, err := s.contacts.Add(ctx, uid, contactID)
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		return nil, ErrContactExists
	case errors.Is(err, repository.ErrReference):
		return nil, ErrUserNotFound
	case err != nil:
		return nil, notFound(err, ErrUserNotFound)
	}
	return c, nil
}

func (s *contactService) Remove(ctx context.Context, uid, contactID string) error {
	return notFound(s.contacts.Remove(ctx, uid, contactID), ErrContactNotFound)
}
