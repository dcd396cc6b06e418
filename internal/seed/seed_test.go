package seed

import (
	"bytes"
	"context"
	"errors"
	"math"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"startconnect/internal/logger"
	"startconnect/internal/model"
	"startconnect/internal/service"
	serviceMocks "startconnect/internal/service/mocks"
)

func TestRun(t *testing.T) {
	hobbies := new(serviceMocks.MockHobbyService)
	centers := new(serviceMocks.MockCenterService)

	hobbies.On("Create", mock.Anything, DefaultHobbies[0]).Return(nil, service.ErrHobbyExists).Once()
	hobbies.On("Create", mock.Anything, mock.Anything).Return(&model.Hobby{}, nil)

	var created []model.Center
	centers.On("Create", mock.Anything, mock.AnythingOfType("model.Center")).
		Return(&model.Center{ID: "c"}, nil).
		Run(func(args mock.Arguments) {
			created = append(created, args.Get(1).(model.Center))
		})

	opts := Options{Centers: 5, Latitude: 48.8566, Longitude: 2.3522, SpreadKm: 10, Seed: 42}
	res, err := New(hobbies, centers, logger.New(&bytes.Buffer{}, "info", nil)).Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 1, res.HobbiesSkipped)
	assert.Equal(t, len(DefaultHobbies)-1, res.HobbiesCreated)
	assert.Len(t, res.Centers, 5)
	require.Len(t, created, 5)

	for _, c := range created {
		assert.InDelta(t, opts.Latitude, c.Latitude, 10/111.0+1e-9)
		assert.LessOrEqual(t, math.Abs(c.Longitude-opts.Longitude), 10/(111.0*math.Cos(opts.Latitude*math.Pi/180))+1e-9)
		assert.NotEmpty(t, c.Sports)
		assert.LessOrEqual(t, len(c.Sports), 3)
		assert.GreaterOrEqual(t, c.Courts, 1)
		assert.Less(t, c.OpenTime, c.CloseTime)
	}
}

func TestRun_Reproducible(t *testing.T) {
	opts := Options{Latitude: 40.4, Longitude: -3.7, SpreadKm: 5, Seed: 7}
	a := fakeCenterWithSeed(opts)
	b := fakeCenterWithSeed(opts)
	assert.Equal(t, a, b)
}

func fakeCenterWithSeed(opts Options) model.Center {
	return fakeCenter(gofakeit.New(opts.Seed), opts)
}

func TestRun_HobbyFailureStops(t *testing.T) {
	hobbies := new(serviceMocks.MockHobbyService)
	centers := new(serviceMocks.MockCenterService)
	hobbies.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()

	_, err := New(hobbies, centers, logger.New(&bytes.Buffer{}, "info", nil)).Run(context.Background(), Options{Centers: 3})
	require.Error(t, err)
	centers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
