package service

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"startconnect/internal/cache"
	"startconnect/internal/model"
	"startconnect/internal/repository"
)

const (
	earthRadiusKm   = 6371.0088
	kmPerDegreeLat  = 111.32
	defaultRadiusKm = 10
	maxRadiusKm     = 100
)

// CenterService exposes sports venues and their booking calendar.
type CenterService interface {
	List(ctx context.Context, f model.CenterFilter) (*model.Page[model.Center], error)
	Get(ctx context.Context, id string) (*model.Center, error)
	// Nearby returns centers within q.RadiusKm of the point, closest first.
	Nearby(ctx context.Context, q model.NearbyQuery) ([]model.Center, error)
	// Availability lists the booked slots of a center on a local date (YYYY-MM-DD).
	Availability(ctx context.Context, id, date string) (*model.Availability, error)

	Create(ctx context.Context, in model.Center) (*model.Center, error)
	Update(ctx context.Context, id string, in model.Center) (*model.Center, error)
	Delete(ctx context.Context, id string) error
}

type centerService struct {
	centers  repository.CenterRepository
	bookings repository.BookingRepository
	cache    cache.NearbyCache
	loc      *time.Location
}

// NewCenterService builds the service. Calendar dates are read in loc, the
// zone opening hours are checked in; nil means UTC.
func NewCenterService(centers repository.CenterRepository, bookings repository.BookingRepository, nc cache.NearbyCache, loc *time.Location) CenterService {
	if nc == nil {
		nc = cache.Noop{}
	}
	if loc == nil {
		loc = time.UTC
	}
	return &centerService{centers: centers, bookings: bookings, cache: nc, loc: loc}
}

func (s *centerService) List(ctx context.Context, f model.CenterFilter) (*model.Page[model.Center], error) {
	pq := pageQuery(f.Limit, f.Offset)
	f.Limit, f.Offset = pq.Limit, pq.Offset
	f.Sport = strings.ToLower(strings.TrimSpace(f.Sport))
	res, err := s.centers.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return toPage(res), nil
}

func (s *centerService) Get(ctx context.Context, id string) (*model.Center, error) {
	c, err := s.centers.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrCenterNotFound)
	}
	return c, nil
}

func (s *centerService) Nearby(ctx context.Context, q model.NearbyQuery) ([]model.Center, error) {
	if !finite(q.Latitude) || !finite(q.Longitude) ||
		q.Latitude < -90 || q.Latitude > 90 || q.Longitude < -180 || q.Longitude > 180 {
		return nil, invalid("coordinates out of range")
	}
	if !finite(q.RadiusKm) {
		return nil, invalid("radiusKm must be a number")
	}
	if q.RadiusKm <= 0 {
		q.RadiusKm = defaultRadiusKm
	}
	q.RadiusKm = math.Min(q.RadiusKm, maxRadiusKm)
	q.Sport = strings.ToLower(strings.TrimSpace(q.Sport))

	if hit, ok := s.cache.GetNearby(ctx, q); ok {
		return hit, nil
	}

	candidates, err := s.centers.WithinBounds(ctx, boundingBox(q.Latitude, q.Longitude, q.RadiusKm), q.Sport)
	if err != nil {
		return nil, err
	}
	out := make([]model.Center, 0, len(candidates))
	for _, c := range candidates {
		d := haversineKm(q.Latitude, q.Longitude, c.Latitude, c.Longitude)
		if d <= q.RadiusKm {
			c.DistanceKm = math.Round(d*100) / 100
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DistanceKm < out[j].DistanceKm })

	s.cache.SetNearby(ctx, q, out)
	return out, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// boundingBox returns a box that contains the circle of radiusKm around the point.
func boundingBox(lat, lng, radiusKm float64) repository.Bounds {
	dLat := radiusKm / kmPerDegreeLat
	b := repository.Bounds{
		MinLat: math.Max(lat-dLat, -90),
		MaxLat: math.Min(lat+dLat, 90),
		MinLng: -180,
		MaxLng: 180,
	}
	cos := math.Cos(lat * math.Pi / 180)
	// near the poles or across the antimeridian keep the full longitude range
	if cos > 0.01 {
		dLng := radiusKm / (kmPerDegreeLat * cos)
		if lng-dLng >= -180 && lng+dLng <= 180 {
			b.MinLng, b.MaxLng = lng-dLng, lng+dLng
		}
	}
	return b
}

// haversineKm is the great-circle distance between two points.
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	const rad = math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLng := (lng2 - lng1) * rad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(a)))
}

func (s *centerService) Availability(ctx context.Context, id, date string) (*model.Availability, error) {
	day, err := time.ParseInLocation("2006-01-02", date, s.loc)
	if err != nil {
		return nil, invalid("date must be YYYY-MM-DD")
	}
	c, err := s.centers.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrCenterNotFound)
	}
	bookings, err := s.bookings.ListActiveByCenter(ctx, id, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	slots := make([]model.TimeSlot, 0, len(bookings))
	for _, b := range bookings {
		slots = append(slots, b.Slot())
	}
	return &model.Availability{
		CenterID:  c.ID,
		Date:      date,
		Courts:    c.Courts,
		OpenTime:  c.OpenTime,
		CloseTime: c.CloseTime,
		Booked:    slots,
	}, nil
}

func normalizeCenter(in *model.Center) error {
	if in.OpenTime >= in.CloseTime {
		return invalid("openTime must be before closeTime")
	}
	sports := make([]string, 0, len(in.Sports))
	for _, sp := range in.Sports {
		sp = strings.ToLower(strings.TrimSpace(sp))
		switch {
		case sp == "":
			continue
		case strings.Contains(sp, ","):
			return invalid("sport names cannot contain commas")
		}
		sports = append(sports, sp)
	}
	if len(sports) == 0 {
		return invalid("at least one sport is required")
	}
	in.Sports = sports
	in.Name = strings.TrimSpace(in.Name)
	return nil
}

func (s *centerService) Create(ctx context.Context, in model.Center) (*model.Center, error) {
	if err := normalizeCenter(&in); err != nil {
		return nil, err
	}
	in.ID = uuid.NewString()
	in.CreatedAt = time.Now().UTC()
	in.DistanceKm = 0
	return s.centers.Create(ctx, &in)
}

func (s *centerService) Update(ctx context.Context, id string, in model.Center) (*model.Center, error) {
	if err := normalizeCenter(&in); err != nil {
		return nil, err
	}
	in.ID = id
	c, err := s.centers.Update(ctx, &in)
	if err != nil {
		return nil, notFound(err, ErrCenterNotFound)
	}
	return c, nil
}

func (s *centerService) Delete(ctx context.Context, id string) error {
	return notFound(s.centers.Delete(ctx, id), ErrCenterNotFound)
}
