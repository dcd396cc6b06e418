package postgres

import (
	"context"
	"database/sql"
	"time"

	"startconnect/internal/model"
	"startconnect/internal/repository"
)

// GroupRequestPostgres is a PostgreSQL implementation of repository.GroupRequestRepository.
type GroupRequestPostgres struct {
	db *sql.DB
}

// NewGroupRequestPostgres creates a new GroupRequestPostgres repository.
func NewGroupRequestPostgres(db *sql.DB) *GroupRequestPostgres {
	return &GroupRequestPostgres{db: db}
}

var _ repository.GroupRequestRepository = (*GroupRequestPostgres)(nil)

const requestColumns = `id, group_id, user_id, message, status, created_at, decided_at`

func scanRequest(row interface{ Scan(...any) error }) (*model.GroupRequest, error) {
	var (
		gr      model.GroupRequest
		decided sql.NullTime
	)
	if err := row.Scan(&gr.ID, &gr.GroupID, &gr.UserID, &gr.Message, &gr.Status, &gr.CreatedAt, &decided); err != nil {
		return nil, err
	}
	if decided.Valid {
		t := decided.Time
		gr.DecidedAt = &t
	}
	return &gr, nil
}

func scanRequests(rows *sql.Rows) ([]model.GroupRequest, error) {
	defer rows.Close()
	items := make([]model.GroupRequest, 0)
	for rows.Next() {
		gr, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *gr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GroupRequestPostgres) Create(ctx context.Context, gr *model.GroupRequest) (*model.GroupRequest, error) {
	const q = `
		INSERT INTO group_requests (id, group_id, user_id, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + requestColumns
	out, err := scanRequest(executor(ctx, r.db).QueryRowContext(ctx, q,
		gr.ID, gr.GroupID, gr.UserID, gr.Message, gr.Status, gr.CreatedAt))
	if err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

func (r *GroupRequestPostgres) FindByID(ctx context.Context, id string) (*model.GroupRequest, error) {
	const q = `SELECT ` + requestColumns + ` FROM group_requests WHERE id = $1`
	return scanRequest(executor(ctx, r.db).QueryRowContext(ctx, q, id))
}

func (r *GroupRequestPostgres) FindByIDForUpdate(ctx context.Context, id string) (*model.GroupRequest, error) {
	const q = `SELECT ` + requestColumns + ` FROM group_requests WHERE id = $1 FOR UPDATE`
	return scanRequest(executor(ctx, r.db).QueryRowContext(ctx, q, id))
}

func (r *GroupRequestPostgres) FindPending(ctx context.Context, groupID, userID string) (*model.GroupRequest, error) {
	const q = `SELECT ` + requestColumns + ` FROM group_requests WHERE group_id = $1 AND user_id = $2 AND status = 'pending'`
	return scanRequest(executor(ctx, r.db).QueryRowContext(ctx, q, groupID, userID))
}

func (r *GroupRequestPostgres) ListByUser(ctx context.Context, userID string) ([]model.GroupRequest, error) {
	const q = `SELECT ` + requestColumns + ` FROM group_requests WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := executor(ctx, r.db).QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	return scanRequests(rows)
}

func (r *GroupRequestPostgres) ListPendingByGroup(ctx context.Context, groupID string) ([]model.GroupRequest, error) {
	const q = `SELECT ` + requestColumns + ` FROM group_requests WHERE group_id = $1 AND status = 'pending' ORDER BY created_at ASC`
	rows, err := executor(ctx, r.db).QueryContext(ctx, q, groupID)
	if err != nil {
		return nil, err
	}
	return scanRequests(rows)
}

func (r *GroupRequestPostgres) UpdateStatus(ctx context.Context, id, status string, decidedAt time.Time) error {
	res, err := executor(ctx, r.db).ExecContext(ctx,
		`UPDATE group_requests SET status = $2, decided_at = $3 WHERE id = $1`, id, status, decidedAt)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *GroupRequestPostgres) ExpirePendingBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	const q = `
		UPDATE group_requests
		SET status = 'expired', decided_at = now()
		WHERE status = 'pending' AND created_at < $1
	`
	res, err := executor(ctx, r.db).ExecContext(ctx, q, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
