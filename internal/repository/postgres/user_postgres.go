package postgres

import (
	"context"
	"database/sql"

	"startconnect/internal/model"
	"startconnect/internal/repository"
)

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
type UserPostgres struct {
	db *sql.DB
}

// NewUserPostgres creates a new UserPostgres repository.
func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

const userColumns = `id, email, display_name, first_name, last_name, bio, phone, city, avatar_path, is_admin, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (*model.User, error) {
	var u model.User
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.DisplayName,
		&u.FirstName,
		&u.LastName,
		&u.Bio,
		&u.Phone,
		&u.City,
		&u.AvatarPath,
		&u.IsAdmin,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new profile row and returns the stored record.
func (r *UserPostgres) Create(ctx context.Context, u *model.User) (*model.User, error) {
	const q = `
		INSERT INTO users (id, email, display_name, first_name, last_name, bio, phone, city, avatar_path, is_admin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + userColumns
	row := executor(ctx, r.db).QueryRowContext(ctx, q,
		u.ID, u.Email, u.DisplayName, u.FirstName, u.LastName, u.Bio,
		u.Phone, u.City, u.AvatarPath, u.IsAdmin, u.CreatedAt, u.UpdatedAt,
	)
	out, err := scanUser(row)
	if err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

// FindByID fetches a single profile by its UID.
func (r *UserPostgres) FindByID(ctx context.Context, id string) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(executor(ctx, r.db).QueryRowContext(ctx, q, id))
}

// Update overwrites the editable profile fields.
func (r *UserPostgres) Update(ctx context.Context, u *model.User) (*model.User, error) {
	const q = `
		UPDATE users
		SET display_name = $2, first_name = $3, last_name = $4, bio = $5, phone = $6, city = $7,
		    avatar_path = $8, updated_at = $9
		WHERE id = $1
		RETURNING ` + userColumns
	row := executor(ctx, r.db).QueryRowContext(ctx, q,
		u.ID, u.DisplayName, u.FirstName, u.LastName, u.Bio, u.Phone, u.City, u.AvatarPath, u.UpdatedAt,
	)
	return scanUser(row)
}

// Delete removes a profile; memberships, contacts and bookings cascade.
func (r *UserPostgres) Delete(ctx context.Context, id string) error {
	res, err := executor(ctx, r.db).ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// Search lists profiles whose display name contains term.
func (r *UserPostgres) Search(ctx context.Context, term string, pq repository.PageQuery) (*repository.PageResult[model.User], error) {
	q := executor(ctx, r.db)
	pattern := "%" + term + "%"

	total, err := countRows(ctx, q, `SELECT COUNT(*) FROM users WHERE display_name ILIKE $1`, pattern)
	if err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + userColumns + `
		FROM users
		WHERE display_name ILIKE $1
		ORDER BY lower(display_name), id
		LIMIT $2 OFFSET $3
	`
	rows, err := q.QueryContext(ctx, qList, pattern, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.User]{Items: items, Total: total}, nil
}

// SetAdmin toggles the admin flag mirrored from the identity provider claim.
func (r *UserPostgres) SetAdmin(ctx context.Context, id string, admin bool) error {
	res, err := executor(ctx, r.db).ExecContext(ctx,
		`UPDATE users SET is_admin = $2, updated_at = now() WHERE id = $1`, id, admin)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// Count returns the number of registered profiles.
func (r *UserPostgres) Count(ctx context.Context) (int, error) {
	return countRows(ctx, executor(ctx, r.db), `SELECT COUNT(*) FROM users`)
}
