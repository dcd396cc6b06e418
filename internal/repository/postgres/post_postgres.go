package postgres

import (
	"context"
	"database/sql"

	"startconnect/internal/model"
	"startconnect/internal/repository"
)

// PostPostgres is a PostgreSQL implementation of repository.PostRepository.
type PostPostgres struct {
	db *sql.DB
}

// NewPostPostgres creates a new PostPostgres repository.
func NewPostPostgres(db *sql.DB) *PostPostgres {
	return &PostPostgres{db: db}
}

var _ repository.PostRepository = (*PostPostgres)(nil)

func scanPost(row interface{ Scan(...any) error }) (*model.GroupPost, error) {
	var p model.GroupPost
	if err := row.Scan(&p.ID, &p.GroupID, &p.AuthorID, &p.Content, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostPostgres) Create(ctx context.Context, p *model.GroupPost) (*model.GroupPost, error) {
	const q = `
		INSERT INTO group_posts (id, group_id, author_id, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, group_id, author_id, content, created_at
	`
	out, err := scanPost(executor(ctx, r.db).QueryRowContext(ctx, q, p.ID, p.GroupID, p.AuthorID, p.Content, p.CreatedAt))
	if err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

func (r *PostPostgres) FindByID(ctx context.Context, id string) (*model.GroupPost, error) {
	const q = `SELECT id, group_id, author_id, content, created_at FROM group_posts WHERE id = $1`
	return scanPost(executor(ctx, r.db).QueryRowContext(ctx, q, id))
}

func (r *PostPostgres) ListByGroup(ctx context.Context, groupID string, pq repository.PageQuery) (*repository.PageResult[model.GroupPost], error) {
	q := executor(ctx, r.db)
	total, err := countRows(ctx, q, `SELECT COUNT(*) FROM group_posts WHERE group_id = $1`, groupID)
	if err != nil {
		return nil, err
	}

	const qList = `
		SELECT id, group_id, author_id, content, created_at
		FROM group_posts
		WHERE group_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := q.QueryContext(ctx, qList, groupID, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.GroupPost, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &repository.PageResult[model.GroupPost]{Items: items, Total: total}, nil
}

func (r *PostPostgres) Delete(ctx context.Context, id string) error {
	res, err := executor(ctx, r.db).ExecContext(ctx, `DELETE FROM group_posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
