package postgres

import (
	"context"
	"database/sql"

	"startconnect/internal/model"
	"startconnect/internal/repository"
)

// ContactPostgres is a PostgreSQL implementation of repository.ContactRepository.
type ContactPostgres struct {
	db *sql.DB
}

// NewContactPostgres creates a new ContactPostgres repository.
func NewContactPostgres(db *sql.DB) *ContactPostgres {
	return &ContactPostgres{db: db}
}

var _ repository.ContactRepository = (*ContactPostgres)(nil)

func (r *ContactPostgres) List(ctx context.Context, userID string) ([]model.Contact, error) {
	const q = `
		SELECT c.user_id, c.contact_id, u.display_name, u.city, c.created_at
		FROM contacts c
		JOIN users u ON u.id = c.contact_id
		WHERE c.user_id = $1
		ORDER BY lower(u.display_name)
	`
	rows, err := executor(ctx, r.db).QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Contact, 0)
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.UserID, &c.ContactID, &c.DisplayName, &c.City, &c.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ContactPostgres) Add(ctx context.Context, userID, contactID string) (*model.Contact, error) {
	const q = `
		WITH ins AS (
			INSERT INTO contacts (user_id, contact_id) VALUES ($1, $2)
			RETURNING user_id, contact_id, created_at
		)
		SELECT ins.user_id, ins.contact_id, u.display_name, u.city, ins.created_at
		FROM ins JOIN users u ON u.id = ins.contact_id
	`
	var c model.Contact
	err := executor(ctx, r.db).QueryRowContext(ctx, q, userID, contactID).
		Scan(&c.UserID, &c.ContactID, &c.DisplayName, &c.City, &c.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &c, nil
}

func (r *ContactPostgres) Remove(ctx context.Context, userID, contactID string) error {
	res, err := executor(ctx, r.db).ExecContext(ctx,
		`DELETE FROM contacts WHERE user_id = $1 AND contact_id = $2`, userID, contactID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
