package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"startconnect/internal/model"
	"startconnect/internal/repository"
)

const maxBookingDuration = 4 * time.Hour

// BookingService books courts at centers.
type BookingService interface {
	// Create books one court. The center row is locked while capacity is checked.
	Create(ctx context.Context, uid string, in model.BookingInput) (*model.Booking, error)
	ListMine(ctx context.Context, uid string, upcoming bool) ([]model.Booking, error)
	// Get is allowed to the booking owner and to admins.
	Get(ctx context.Context, caller model.Identity, id string) (*model.Booking, error)
	Cancel(ctx context.Context, uid, id string) (*model.Booking, error)
	// CompleteEnded marks confirmed bookings whose end time passed as completed.
	CompleteEnded(ctx context.Context) (int64, error)
}

type bookingService struct {
	tx       repository.Transactor
	centers  repository.CenterRepository
	bookings repository.BookingRepository
	loc      *time.Location
	now      func() time.Time
}

// NewBookingService builds the service. Opening hours are read in loc.
func NewBookingService(tx repository.Transactor, centers repository.CenterRepository, bookings repository.BookingRepository, loc *time.Location) BookingService {
	if loc == nil {
		loc = time.UTC
	}
	return &bookingService{tx: tx, centers: centers, bookings: bookings, loc: loc, now: time.Now}
}

func (s *bookingService) Create(ctx context.Context, uid string, in model.BookingInput) (*model.Booking, error) {
	start, end := in.Start.UTC(), in.End.UTC()
	switch {
	case !start.Before(end):
		return nil, invalid("start must be before end")
	case !start.After(s.now()):
		return nil, invalid("start must be in the future")
	case end.Sub(start) > maxBookingDuration:
		return nil, invalid("a booking cannot exceed %s", maxBookingDuration)
	}
	sport := strings.ToLower(strings.TrimSpace(in.Sport))

	var out *model.Booking
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		c, err := s.centers.FindByIDForUpdate(ctx, in.CenterID)
		if err != nil {
			return notFound(err, ErrCenterNotFound)
		}
		if !c.Offers(sport) {
			return invalid("%s is not offered at this center", sport)
		}
		if !withinOpeningHours(c, start, end, s.loc) {
			return invalid("booking must be within opening hours %s-%s", c.OpenTime, c.CloseTime)
		}

		busy, err := s.bookings.UserHasOverlap(ctx, uid, start, end)
		if err != nil {
			return err
		}
		if busy {
			return ErrBookingOverlap
		}
		taken, err := s.bookings.CountOverlapping(ctx, c.ID, start, end)
		if err != nil {
			return err
		}
		if taken >= c.Courts {
			return ErrSlotUnavailable
		}

		out, err = s.bookings.Create(ctx, &model.Booking{
			ID:        uuid.NewString(),
			UserID:    uid,
			CenterID:  c.ID,
			Sport:     sport,
			Start:     start,
			End:       end,
			Status:    model.BookingConfirmed,
			Note:      strings.TrimSpace(in.Note),
			CreatedAt: s.now().UTC(),
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// withinOpeningHours reports whether [start, end) falls on one local day
// between the center's open and close times.
func withinOpeningHours(c *model.Center, start, end time.Time, loc *time.Location) bool {
	open, err := time.Parse("15:04", c.OpenTime)
	if err != nil {
		return false
	}
	closing, err := time.Parse("15:04", c.CloseTime)
	if err != nil {
		return false
	}
	ls, le := start.In(loc), end.In(loc)
	y, m, d := ls.Date()
	opensAt := time.Date(y, m, d, open.Hour(), open.Minute(), 0, 0, loc)
	closesAt := time.Date(y, m, d, closing.Hour(), closing.Minute(), 0, 0, loc)
	return !ls.Before(opensAt) && !le.After(closesAt)
}

func (s *bookingService) ListMine(ctx context.Context, uid string, upcoming bool) ([]model.Booking, error) {
	var from *time.Time
	if upcoming {
		now := s.now().UTC()
		from = &now
	}
	return s.bookings.ListByUser(ctx, uid, from)
}

func (s *bookingService) Get(ctx context.Context, caller model.Identity, id string) (*model.Booking, error) {
	b, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrBookingNotFound)
	}
	if b.UserID != caller.UID && !caller.Admin {
		return nil, ErrNotAllowed
	}
	return b, nil
}

func (s *bookingService) Cancel(ctx context.Context, uid, id string) (*model.Booking, error) {
	var out *model.Booking
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		b, err := s.bookings.FindByID(ctx, id)
		if err != nil {
			return notFound(err, ErrBookingNotFound)
		}
		if b.UserID != uid {
			return ErrNotAllowed
		}
		if b.Status != model.BookingConfirmed || !b.Start.After(s.now()) {
			return ErrBookingFinalized
		}
		if err := s.bookings.UpdateStatus(ctx, id, model.BookingCancelled); err != nil {
			return err
		}
		b.Status = model.BookingCancelled
		out = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *bookingService) CompleteEnded(ctx context.Context) (int64, error) {
	return s.bookings.CompleteEnded(ctx, s.now().UTC())
}
