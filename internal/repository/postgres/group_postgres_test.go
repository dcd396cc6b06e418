package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startconnect/internal/model"
	"startconnect/internal/repository"
)

var groupCols = []string{"id", "name", "description", "hobby_id", "city", "owner_id", "is_private", "max_members", "member_count", "post_count", "image_path", "created_at", "updated_at"}

func TestGroupPostgres_CreateWithoutHobby(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	g := &model.Group{ID: "g1", Name: "Sunday Runners", OwnerID: "u1", MemberCount: 1, CreatedAt: now, UpdatedAt: now}

	mock.ExpectQuery("INSERT INTO groups").
		WithArgs("g1", "Sunday Runners", "", nil, "", "u1", false, 0, 1, 0, "", now, now).
		WillReturnRows(sqlmock.NewRows(groupCols).
			AddRow("g1", "Sunday Runners", "", nil, "", "u1", false, 0, 1, 0, "", now, now))

	out, err := NewGroupPostgres(db).Create(context.Background(), g)

	assert.NoError(t, err)
	assert.Equal(t, "", out.HobbyID)
	assert.Equal(t, 1, out.MemberCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGroupPostgres_FindByIDForUpdate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("FROM groups WHERE id = $1 FOR UPDATE")).
		WithArgs("g1").
		WillReturnRows(sqlmock.NewRows(groupCols).
			AddRow("g1", "Padel Crew", "", "h1", "Lyon", "u1", true, 8, 3, 12, "", now, now))

	g, err := NewGroupPostgres(db).FindByIDForUpdate(context.Background(), "g1")

	assert.NoError(t, err)
	assert.Equal(t, "h1", g.HobbyID)
	assert.True(t, g.IsPrivate)
	assert.Equal(t, 12, g.PostCount)
}

func TestGroupPostgres_ListWithFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM groups WHERE hobby_id = $1 AND lower(city) = lower($2) AND (name ILIKE $3 OR description ILIKE $3)")).
		WithArgs("h1", "Lyon", "%run%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC, id DESC LIMIT $4 OFFSET $5")).
		WithArgs("h1", "Lyon", "%run%", 20, 40).
		WillReturnRows(sqlmock.NewRows(groupCols).
			AddRow("g1", "Runners", "", "h1", "Lyon", "u1", false, 0, 3, 0, "", now, now))

	res, err := NewGroupPostgres(db).List(context.Background(), model.GroupFilter{
		HobbyID: "h1", City: "Lyon", Search: "run", Limit: 20, Offset: 40,
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.Len(t, res.Items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGroupPostgres_ListNoFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM groups")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta("LIMIT $1 OFFSET $2")).
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows(groupCols))

	res, err := NewGroupPostgres(db).List(context.Background(), model.GroupFilter{Limit: 10})

	assert.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.NotNil(t, res.Items)
}

func TestGroupPostgres_Members(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewGroupPostgres(db)
	ctx := context.Background()
	joined := time.Now().UTC()

	t.Run("add duplicate", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO group_members").
			WithArgs("g1", "u2", model.RoleMember, joined).
			WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

		err := repo.AddMember(ctx, model.GroupMember{GroupID: "g1", UserID: "u2", Role: model.RoleMember, JoinedAt: joined})
		assert.ErrorIs(t, err, repository.ErrDuplicate)
	})

	t.Run("remove non member", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM group_members").
			WithArgs("g1", "u9").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.RemoveMember(ctx, "g1", "u9"), sql.ErrNoRows)
	})

	t.Run("list ordered by join time", func(t *testing.T) {
		mock.ExpectQuery("FROM group_members m JOIN users u ON u.id = m.user_id WHERE m.group_id = (.+) ORDER BY m.joined_at ASC").
			WithArgs("g1").
			WillReturnRows(sqlmock.NewRows([]string{"group_id", "user_id", "display_name", "role", "joined_at"}).
				AddRow("g1", "u1", "Ana", model.RoleOwner, joined.Add(-time.Hour)).
				AddRow("g1", "u2", "Ben", model.RoleMember, joined))

		members, err := repo.ListMembers(ctx, "g1")
		assert.NoError(t, err)
		require.Len(t, members, 2)
		assert.Equal(t, model.RoleOwner, members[0].Role)
		assert.Equal(t, "Ben", members[1].DisplayName)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGroupPostgres_AdjustCounters(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE groups SET member_count = member_count \\+ \\$2, post_count = post_count \\+ \\$3").
		WithArgs("g1", -1, 0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, NewGroupPostgres(db).AdjustCounters(context.Background(), "g1", -1, 0))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostPostgres_ListByGroup(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM group_posts WHERE group_id").
		WithArgs("g1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT (.+) FROM group_posts WHERE group_id = (.+) ORDER BY created_at DESC").
		WithArgs("g1", 5, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "group_id", "author_id", "content", "created_at"}).
			AddRow("p1", "g1", "u1", "see you at 7", now))

	res, err := NewPostPostgres(db).ListByGroup(context.Background(), "g1", repository.PageQuery{Limit: 5})

	assert.NoError(t, err)
	assert.Equal(t, "see you at 7", res.Items[0].Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}
