package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"startconnect/internal/model"
	"startconnect/internal/repository"
)

// GroupPostgres is a PostgreSQL implementation of repository.GroupRepository.
type GroupPostgres struct {
	db *sql.DB
}

// NewGroupPostgres creates a new GroupPostgres repository.
func NewGroupPostgres(db *sql.DB) *GroupPostgres {
	return &GroupPostgres{db: db}
}

var _ repository.GroupRepository = (*GroupPostgres)(nil)

const groupColumns = `id, name, description, hobby_id, city, owner_id, is_private, max_members, member_count, post_count, image_path, created_at, updated_at`

func scanGroup(row interface{ Scan(...any) error }) (*model.Group, error) {
	var (
		g       model.Group
		hobbyID sql.NullString
	)
	if err := row.Scan(
		&g.ID,
		&g.Name,
		&g.Description,
		&hobbyID,
		&g.City,
		&g.OwnerID,
		&g.IsPrivate,
		&g.MaxMembers,
		&g.MemberCount,
		&g.PostCount,
		&g.ImagePath,
		&g.CreatedAt,
		&g.UpdatedAt,
	); err != nil {
		return nil, err
	}
	g.HobbyID = hobbyID.String
	return &g, nil
}

func scanGroups(rows *sql.Rows) ([]model.Group, error) {
	defer rows.Close()
	items := make([]model.Group, 0)
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts a group row.
func (r *GroupPostgres) Create(ctx context.Context, g *model.Group) (*model.Group, error) {
	const q = `
		INSERT INTO groups (id, name, description, hobby_id, city, owner_id, is_private, max_members, member_count, post_count, image_path, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + groupColumns
	row := executor(ctx, r.db).QueryRowContext(ctx, q,
		g.ID, g.Name, g.Description, nullable(g.HobbyID), g.City, g.OwnerID, g.IsPrivate,
		g.MaxMembers, g.MemberCount, g.PostCount, g.ImagePath, g.CreatedAt, g.UpdatedAt,
	)
	out, err := scanGroup(row)
	if err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

// FindByID fetches a group by ID.
func (r *GroupPostgres) FindByID(ctx context.Context, id string) (*model.Group, error) {
	const q = `SELECT ` + groupColumns + ` FROM groups WHERE id = $1`
	return scanGroup(executor(ctx, r.db).QueryRowContext(ctx, q, id))
}

// FindByIDForUpdate fetches a group by ID and row-locks it.
func (r *GroupPostgres) FindByIDForUpdate(ctx context.Context, id string) (*model.Group, error) {
	const q = `SELECT ` + groupColumns + ` FROM groups WHERE id = $1 FOR UPDATE`
	return scanGroup(executor(ctx, r.db).QueryRowContext(ctx, q, id))
}

// List returns groups matching the filter, newest first, with a total count.
func (r *GroupPostgres) List(ctx context.Context, f model.GroupFilter) (*repository.PageResult[model.Group], error) {
	var (
		where []string
		args  []any
	)
	if f.HobbyID != "" {
		args = append(args, f.HobbyID)
		where = append(where, fmt.Sprintf("hobby_id = $%d", len(args)))
	}
	if f.City != "" {
		args = append(args, f.City)
		where = append(where, fmt.Sprintf("lower(city) = lower($%d)", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		where = append(where, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}
	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	q := executor(ctx, r.db)
	total, err := countRows(ctx, q, `SELECT COUNT(*) FROM groups`+clause, args...)
	if err != nil {
		return nil, err
	}

	listArgs := append(args, f.Limit, f.Offset)
	qList := `SELECT ` + groupColumns + ` FROM groups` + clause +
		fmt.Sprintf(` ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	rows, err := q.QueryContext(ctx, qList, listArgs...)
	if err != nil {
		return nil, err
	}
	items, err := scanGroups(rows)
	if err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Group]{Items: items, Total: total}, nil
}

// ListByMember returns the groups a user belongs to, most recently joined first.
func (r *GroupPostgres) ListByMember(ctx context.Context, userID string) ([]model.Group, error) {
	const q = `
		SELECT g.id, g.name, g.description, g.hobby_id, g.city, g.owner_id, g.is_private, g.max_members,
		       g.member_count, g.post_count, g.image_path, g.created_at, g.updated_at
		FROM groups g
		JOIN group_members m ON m.group_id = g.id
		WHERE m.user_id = $1
		ORDER BY m.joined_at DESC
	`
	rows, err := executor(ctx, r.db).QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	return scanGroups(rows)
}

// Update overwrites the editable group fields and the owner.
func (r *GroupPostgres) Update(ctx context.Context, g *model.Group) (*model.Group, error) {
	const q = `
		UPDATE groups
		SET name = $2, description = $3, hobby_id = $4, city = $5, owner_id = $6, is_private = $7,
		    max_members = $8, image_path = $9, updated_at = $10
		WHERE id = $1
		RETURNING ` + groupColumns
	row := executor(ctx, r.db).QueryRowContext(ctx, q,
		g.ID, g.Name, g.Description, nullable(g.HobbyID), g.City, g.OwnerID, g.IsPrivate,
		g.MaxMembers, g.ImagePath, g.UpdatedAt,
	)
	out, err := scanGroup(row)
	if err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

// Delete removes a group; members, posts and requests cascade.
func (r *GroupPostgres) Delete(ctx context.Context, id string) error {
	res, err := executor(ctx, r.db).ExecContext(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// AdjustCounters applies deltas to the denormalized counters.
func (r *GroupPostgres) AdjustCounters(ctx context.Context, id string, memberDelta, postDelta int) error {
	const q = `
		UPDATE groups
		SET member_count = member_count + $2, post_count = post_count + $3, updated_at = now()
		WHERE id = $1
	`
	res, err := executor(ctx, r.db).ExecContext(ctx, q, id, memberDelta, postDelta)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// Count returns the number of groups.
func (r *GroupPostgres) Count(ctx context.Context) (int, error) {
	return countRows(ctx, executor(ctx, r.db), `SELECT COUNT(*) FROM groups`)
}

// AddMember inserts a membership row.
func (r *GroupPostgres) AddMember(ctx context.Context, m model.GroupMember) error {
	const q = `INSERT INTO group_members (group_id, user_id, role, joined_at) VALUES ($1, $2, $3, $4)`
	_, err := executor(ctx, r.db).ExecContext(ctx, q, m.GroupID, m.UserID, m.Role, m.JoinedAt)
	return mapError(err)
}

// RemoveMember deletes a membership row.
func (r *GroupPostgres) RemoveMember(ctx context.Context, groupID, userID string) error {
	res, err := executor(ctx, r.db).ExecContext(ctx,
		`DELETE FROM group_members WHERE group_id = $1 AND user_id = $2`, groupID, userID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

const memberColumns = `m.group_id, m.user_id, u.display_name, m.role, m.joined_at`

func scanMember(row interface{ Scan(...any) error }) (*model.GroupMember, error) {
	var m model.GroupMember
	if err := row.Scan(&m.GroupID, &m.UserID, &m.DisplayName, &m.Role, &m.JoinedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

// FindMember fetches one membership row.
func (r *GroupPostgres) FindMember(ctx context.Context, groupID, userID string) (*model.GroupMember, error) {
	const q = `
		SELECT ` + memberColumns + `
		FROM group_members m
		JOIN users u ON u.id = m.user_id
		WHERE m.group_id = $1 AND m.user_id = $2
	`
	return scanMember(executor(ctx, r.db).QueryRowContext(ctx, q, groupID, userID))
}

// ListMembers returns a group's members, oldest membership first.
func (r *GroupPostgres) ListMembers(ctx context.Context, groupID string) ([]model.GroupMember, error) {
	const q = `
		SELECT ` + memberColumns + `
		FROM group_members m
		JOIN users u ON u.id = m.user_id
		WHERE m.group_id = $1
		ORDER BY m.joined_at ASC, m.user_id ASC
	`
	rows, err := executor(ctx, r.db).QueryContext(ctx, q, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.GroupMember, 0)
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// SetMemberRole changes a member's role.
func (r *GroupPostgres) SetMemberRole(ctx context.Context, groupID, userID, role string) error {
	res, err := executor(ctx, r.db).ExecContext(ctx,
		`UPDATE group_members SET role = $3 WHERE group_id = $1 AND user_id = $2`, groupID, userID, role)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
