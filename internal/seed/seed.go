// Package seed fills an empty database with the hobby catalog and a set of
// fake sports centers around a coordinate.
package seed

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/sirupsen/logrus"

	"startconnect/internal/model"
	"startconnect/internal/service"
)

// DefaultHobbies is the catalog every deployment starts with.
var DefaultHobbies = []model.HobbyInput{
	{Name: "Tennis", Category: "racket"},
	{Name: "Padel", Category: "racket"},
	{Name: "Squash", Category: "racket"},
	{Name: "Badminton", Category: "racket"},
	{Name: "Football", Category: "team"},
	{Name: "Basketball", Category: "team"},
	{Name: "Volleyball", Category: "team"},
	{Name: "Running", Category: "endurance"},
	{Name: "Cycling", Category: "endurance"},
	{Name: "Swimming", Category: "endurance"},
	{Name: "Climbing", Category: "outdoor"},
	{Name: "Hiking", Category: "outdoor"},
	{Name: "Yoga", Category: "fitness"},
}

var courtSports = []string{"tennis", "padel", "squash", "badminton", "football", "basketball", "volleyball"}

// Options controls how many centers are generated and where.
type Options struct {
	Centers   int
	Latitude  float64
	Longitude float64
	SpreadKm  float64
	// Seed makes the generated data reproducible. Zero picks a random seed.
	Seed uint64
}

// Result counts what Run wrote.
type Result struct {
	HobbiesCreated int
	HobbiesSkipped int
	Centers        []model.Center
}

// Seeder writes through the services so the usual validation applies.
type Seeder struct {
	hobbies service.HobbyService
	centers service.CenterService
	log     logrus.FieldLogger
}

func New(hobbies service.HobbyService, centers service.CenterService, log logrus.FieldLogger) *Seeder {
	return &Seeder{hobbies: hobbies, centers: centers, log: log}
}

// Run is safe to repeat for hobbies; centers are always added.
func (s *Seeder) Run(ctx context.Context, opts Options) (*Result, error) {
	res := &Result{}
	for _, h := range DefaultHobbies {
		_, err := s.hobbies.Create(ctx, h)
		switch {
		case errors.Is(err, service.ErrHobbyExists):
			res.HobbiesSkipped++
		case err != nil:
			return res, fmt.Errorf("hobby %s: %w", h.Name, err)
		default:
			res.HobbiesCreated++
		}
	}

	faker := gofakeit.New(opts.Seed)
	for i := 0; i < opts.Centers; i++ {
		c, err := s.centers.Create(ctx, fakeCenter(faker, opts))
		if err != nil {
			return res, fmt.Errorf("center %d: %w", i, err)
		}
		res.Centers = append(res.Centers, *c)
	}

	s.log.WithFields(logrus.Fields{
		"hobbies_created": res.HobbiesCreated,
		"hobbies_skipped": res.HobbiesSkipped,
		"centers":         len(res.Centers),
	}).Info("seed complete")
	return res, nil
}

func fakeCenter(f *gofakeit.Faker, opts Options) model.Center {
	// ~111 km per degree of latitude; longitude degrees shrink with cos(lat)
	dLat := opts.SpreadKm / 111.0
	dLng := opts.SpreadKm / (111.0 * math.Max(math.Cos(opts.Latitude*math.Pi/180), 0.01))

	sports := append([]string(nil), courtSports...)
	f.ShuffleStrings(sports)
	sports = sports[:f.IntRange(1, 3)]

	return model.Center{
		Name:      strings.TrimSpace(f.Company() + " Sports Club"),
		Address:   f.Street(),
		City:      f.City(),
		Sports:    sports,
		Latitude:  clamp(opts.Latitude+f.Float64Range(-dLat, dLat), -90, 90),
		Longitude: clamp(opts.Longitude+f.Float64Range(-dLng, dLng), -180, 180),
		Courts:    f.IntRange(1, 8),
		OpenTime:  fmt.Sprintf("%02d:00", f.IntRange(6, 9)),
		CloseTime: fmt.Sprintf("%02d:00", f.IntRange(20, 23)),
		Phone:     f.Phone(),
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
