package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"startconnect/internal/model"
	"startconnect/internal/repository"
)

// HobbyPostgres is a PostgreSQL implementation of repository.HobbyRepository.
type HobbyPostgres struct {
	db *sql.DB
}

// NewHobbyPostgres creates a new HobbyPostgres repository.
func NewHobbyPostgres(db *sql.DB) *HobbyPostgres {
	return &HobbyPostgres{db: db}
}

var _ repository.HobbyRepository = (*HobbyPostgres)(nil)

func scanHobbies(rows *sql.Rows) ([]model.Hobby, error) {
	defer rows.Close()
	items := make([]model.Hobby, 0)
	for rows.Next() {
		var h model.Hobby
		if err := rows.Scan(&h.ID, &h.Name, &h.Category, &h.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *HobbyPostgres) List(ctx context.Context) ([]model.Hobby, error) {
	rows, err := executor(ctx, r.db).QueryContext(ctx,
		`SELECT id, name, category, created_at FROM hobbies ORDER BY category, name`)
	if err != nil {
		return nil, err
	}
	return scanHobbies(rows)
}

func (r *HobbyPostgres) Create(ctx context.Context, h *model.Hobby) (*model.Hobby, error) {
	const q = `
		INSERT INTO hobbies (id, name, category, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, category, created_at
	`
	var out model.Hobby
	err := executor(ctx, r.db).QueryRowContext(ctx, q, h.ID, h.Name, h.Category, h.CreatedAt).
		Scan(&out.ID, &out.Name, &out.Category, &out.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &out, nil
}

func (r *HobbyPostgres) Delete(ctx context.Context, id string) error {
	res, err := executor(ctx, r.db).ExecContext(ctx, `DELETE FROM hobbies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// placeholders renders "$start, $start+1, ..." for n arguments.
func placeholders(start, n int) string {
	ph := make([]string, n)
	for i := range ph {
		ph[i] = fmt.Sprintf("$%d", start+i)
	}
	return strings.Join(ph, ", ")
}

func (r *HobbyPostgres) CountExisting(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	q := `SELECT COUNT(*) FROM hobbies WHERE id IN (` + placeholders(1, len(ids)) + `)`
	return countRows(ctx, executor(ctx, r.db), q, args...)
}

func (r *HobbyPostgres) ListByUser(ctx context.Context, userID string) ([]model.Hobby, error) {
	const q = `
		SELECT h.id, h.name, h.category, h.created_at
		FROM hobbies h
		JOIN user_hobbies uh ON uh.hobby_id = h.id
		WHERE uh.user_id = $1
		ORDER BY h.name
	`
	rows, err := executor(ctx, r.db).QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	return scanHobbies(rows)
}

// ReplaceForUser swaps the user's hobby list. Callers should run it inside a transaction.
func (r *HobbyPostgres) ReplaceForUser(ctx context.Context, userID string, ids []string) error {
	q := executor(ctx, r.db)
	if _, err := q.ExecContext(ctx, `DELETE FROM user_hobbies WHERE user_id = $1`, userID); err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	values := make([]string, len(ids))
	args := []any{userID}
	for i, id := range ids {
		args = append(args, id)
		values[i] = fmt.Sprintf("($1, $%d)", i+2)
	}
	_, err := q.ExecContext(ctx,
		`INSERT INTO user_hobbies (user_id, hobby_id) VALUES `+strings.Join(values, ", "), args...)
	return mapError(err)
}
