package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"startconnect/internal/model"
	"startconnect/internal/repository"
)

// CenterPostgres is a PostgreSQL implementation of repository.CenterRepository.
// Sports are stored as a comma-joined lower-case list.
type CenterPostgres struct {
	db *sql.DB
}

// NewCenterPostgres creates a new CenterPostgres repository.
func NewCenterPostgres(db *sql.DB) *CenterPostgres {
	return &CenterPostgres{db: db}
}

var _ repository.CenterRepository = (*CenterPostgres)(nil)

const centerColumns = `id, name, address, city, sports, latitude, longitude, courts, open_time, close_time, phone, created_at`

func joinSports(sports []string) string {
	out := make([]string, 0, len(sports))
	for _, s := range sports {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return strings.Join(out, ",")
}

func splitSports(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}

func scanCenter(row interface{ Scan(...any) error }) (*model.Center, error) {
	var (
		c      model.Center
		sports string
	)
	if err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Address,
		&c.City,
		&sports,
		&c.Latitude,
		&c.Longitude,
		&c.Courts,
		&c.OpenTime,
		&c.CloseTime,
		&c.Phone,
		&c.CreatedAt,
	); err != nil {
		return nil, err
	}
	c.Sports = splitSports(sports)
	return &c, nil
}

func scanCenters(rows *sql.Rows) ([]model.Center, error) {
	defer rows.Close()
	items := make([]model.Center, 0)
	for rows.Next() {
		c, err := scanCenter(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CenterPostgres) Create(ctx context.Context, c *model.Center) (*model.Center, error) {
	const q = `
		INSERT INTO centers (id, name, address, city, sports, latitude, longitude, courts, open_time, close_time, phone, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + centerColumns
	out, err := scanCenter(executor(ctx, r.db).QueryRowContext(ctx, q,
		c.ID, c.Name, c.Address, c.City, joinSports(c.Sports), c.Latitude, c.Longitude,
		c.Courts, c.OpenTime, c.CloseTime, c.Phone, c.CreatedAt,
	))
	if err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

func (r *CenterPostgres) FindByID(ctx context.Context, id string) (*model.Center, error) {
	const q = `SELECT ` + centerColumns + ` FROM centers WHERE id = $1`
	return scanCenter(executor(ctx, r.db).QueryRowContext(ctx, q, id))
}

func (r *CenterPostgres) FindByIDForUpdate(ctx context.Context, id string) (*model.Center, error) {
	const q = `SELECT ` + centerColumns + ` FROM centers WHERE id = $1 FOR UPDATE`
	return scanCenter(executor(ctx, r.db).QueryRowContext(ctx, q, id))
}

func (r *CenterPostgres) Update(ctx context.Context, c *model.Center) (*model.Center, error) {
	const q = `
		UPDATE centers
		SET name = $2, address = $3, city = $4, sports = $5, latitude = $6, longitude = $7,
		    courts = $8, open_time = $9, close_time = $10, phone = $11
		WHERE id = $1
		RETURNING ` + centerColumns
	return scanCenter(executor(ctx, r.db).QueryRowContext(ctx, q,
		c.ID, c.Name, c.Address, c.City, joinSports(c.Sports), c.Latitude, c.Longitude,
		c.Courts, c.OpenTime, c.CloseTime, c.Phone,
	))
}

func (r *CenterPostgres) Delete(ctx context.Context, id string) error {
	res, err := executor(ctx, r.db).ExecContext(ctx, `DELETE FROM centers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// sportClause matches one entry of the comma-joined sports column.
func sportClause(n int) string {
	return fmt.Sprintf("($%d = ANY(string_to_array(sports, ',')))", n)
}

func (r *CenterPostgres) List(ctx context.Context, f model.CenterFilter) (*repository.PageResult[model.Center], error) {
	var (
		where []string
		args  []any
	)
	if f.City != "" {
		args = append(args, f.City)
		where = append(where, fmt.Sprintf("lower(city) = lower($%d)", len(args)))
	}
	if f.Sport != "" {
		args = append(args, strings.ToLower(f.Sport))
		where = append(where, sportClause(len(args)))
	}
	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	q := executor(ctx, r.db)
	total, err := countRows(ctx, q, `SELECT COUNT(*) FROM centers`+clause, args...)
	if err != nil {
		return nil, err
	}

	qList := `SELECT ` + centerColumns + ` FROM centers` + clause +
		fmt.Sprintf(` ORDER BY name, id LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	rows, err := q.QueryContext(ctx, qList, append(args, f.Limit, f.Offset)...)
	if err != nil {
		return nil, err
	}
	items, err := scanCenters(rows)
	if err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Center]{Items: items, Total: total}, nil
}

func (r *CenterPostgres) WithinBounds(ctx context.Context, b repository.Bounds, sport string) ([]model.Center, error) {
	q := `SELECT ` + centerColumns + ` FROM centers
		WHERE latitude BETWEEN $1 AND $2 AND longitude BETWEEN $3 AND $4`
	args := []any{b.MinLat, b.MaxLat, b.MinLng, b.MaxLng}
	if sport != "" {
		args = append(args, strings.ToLower(sport))
		q += " AND " + sportClause(len(args))
	}
	rows, err := executor(ctx, r.db).QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	return scanCenters(rows)
}

func (r *CenterPostgres) Count(ctx context.Context) (int, error) {
	return countRows(ctx, executor(ctx, r.db), `SELECT COUNT(*) FROM centers`)
}
