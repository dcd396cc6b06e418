package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startconnect/internal/model"
	"startconnect/internal/repository"
)

var centerCols = []string{"id", "name", "address", "city", "sports", "latitude", "longitude", "courts", "open_time", "close_time", "phone", "created_at"}

func TestJoinSplitSports(t *testing.T) {
	assert.Equal(t, "tennis,padel", joinSports([]string{" Tennis", "PADEL ", ""}))
	assert.Equal(t, []string{"tennis", "padel"}, splitSports("tennis,padel"))
	assert.Equal(t, []string{}, splitSports(""))
}

func TestCenterPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	c := &model.Center{
		ID: "c1", Name: "Club Nord", City: "Lille", Sports: []string{"Tennis", "Padel"},
		Latitude: 50.63, Longitude: 3.06, Courts: 4, OpenTime: "08:00", CloseTime: "22:00", CreatedAt: now,
	}

	mock.ExpectQuery("INSERT INTO centers").
		WithArgs("c1", "Club Nord", "", "Lille", "tennis,padel", 50.63, 3.06, 4, "08:00", "22:00", "", now).
		WillReturnRows(sqlmock.NewRows(centerCols).
			AddRow("c1", "Club Nord", "", "Lille", "tennis,padel", 50.63, 3.06, 4, "08:00", "22:00", "", now))

	out, err := NewCenterPostgres(db).Create(context.Background(), c)

	assert.NoError(t, err)
	assert.Equal(t, []string{"tennis", "padel"}, out.Sports)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCenterPostgres_WithinBounds(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	b := repository.Bounds{MinLat: 48.8, MaxLat: 48.9, MinLng: 2.3, MaxLng: 2.4}
	mock.ExpectQuery(regexp.QuoteMeta("latitude BETWEEN $1 AND $2 AND longitude BETWEEN $3 AND $4 AND ($5 = ANY(string_to_array(sports, ',')))")).
		WithArgs(48.8, 48.9, 2.3, 2.4, "tennis").
		WillReturnRows(sqlmock.NewRows(centerCols).
			AddRow("c1", "Roland", "", "Paris", "tennis", 48.84, 2.25, 10, "08:00", "22:00", "", time.Now()))

	items, err := NewCenterPostgres(db).WithinBounds(context.Background(), b, "Tennis")

	assert.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Roland", items[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCenterPostgres_ListBySport(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM centers WHERE ($1 = ANY(string_to_array(sports, ',')))")).
		WithArgs("squash").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY name, id LIMIT $2 OFFSET $3")).
		WithArgs("squash", 10, 0).
		WillReturnRows(sqlmock.NewRows(centerCols))

	res, err := NewCenterPostgres(db).List(context.Background(), model.CenterFilter{Sport: "Squash", Limit: 10})

	assert.NoError(t, err)
	assert.Equal(t, 0, res.Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
