package service

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"startconnect/internal/model"
	"startconnect/internal/repository"
)

// HobbyService exposes the hobby catalog and per-user hobby lists.
type HobbyService interface {
	Catalog(ctx context.Context) ([]model.Hobby, error)
	ListMine(ctx context.Context, uid string) ([]model.Hobby, error)
	// ReplaceMine sets the caller's hobbies to exactly ids.
	ReplaceMine(ctx context.Context, uid string, ids []string) ([]model.Hobby, error)
	Create(ctx context.Context, in model.HobbyInput) (*model.Hobby, error)
	Delete(ctx context.Context, id string) error
}

type hobbyService struct {
	tx      repository.Transactor
	hobbies repository.HobbyRepository
}

func NewHobbyService(tx repository.Transactor, hobbies repository.HobbyRepository) HobbyService {
	return &hobbyService{tx: tx, hobbies: hobbies}
}

func (s *hobbyService) Catalog(ctx context.Context) ([]model.Hobby, error) {
	return s.hobbies.List(ctx)
}

func (s *hobbyService) ListMine(ctx context.Context, uid string) ([]model.Hobby, error) {
	return s.hobbies.ListByUser(ctx, uid)
}

func (s *hobbyService) ReplaceMine(ctx context.Context, uid string, ids []string) ([]model.Hobby, error) {
	canon := make([]string, 0, len(ids))
	for _, id := range ids {
		u, err := uuid.Parse(id)
		if err != nil {
			return nil, invalid("invalid hobby id %q", id)
		}
		canon = append(canon, u.String())
	}
	slices.Sort(canon)
	ids = slices.Compact(canon)

	var out []model.Hobby
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if len(ids) > 0 {
			n, err := s.hobbies.CountExisting(ctx, ids)
			if err != nil {
				return err
			}
			if n != len(ids) {
				return invalid("unknown hobby id in list")
			}
		}
		if err := s.hobbies.ReplaceForUser(ctx, uid, ids); err != nil {
			return err
		}
		var err error
		out, err = s.hobbies.ListByUser(ctx, uid)
		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrReference) {
			return nil, invalid("unknown hobby id in list")
		}
		return nil, err
	}
	return out, nil
}

func (s *hobbyService) Create(ctx context.Context, in model.HobbyInput) (*model.Hobby, error) {
	h, err := s.hobbies.Create(ctx, &model.Hobby{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Category:  strings.TrimSpace(in.Category),
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrHobbyExists
		}
		return nil, err
	}
	return h, nil
}

func (s *hobbyService) Delete(ctx context.Context, id string) error {
	return notFound(s.hobbies.Delete(ctx, id), ErrHobbyNotFound)
}
