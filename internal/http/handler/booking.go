package handler

import (
	"github.com/gofiber/fiber/v2"

	"startconnect/internal/model"
	"startconnect/internal/service"
)

// CreateBooking reserves a court.
//
//	@Summary	Book a court
//	@Tags		bookings
//	@Security	BearerAuth
//	@Accept		json
//	@Param		body	body		model.BookingInput	true	"booking"
//	@Success	201		{object}	model.Booking
//	@Failure	400		{object}	middleware.ErrorPayload
//	@Failure	409		{object}	middleware.ErrorPayload	"slot unavailable or overlapping booking"
//	@Router		/bookings [post]
func CreateBooking(svc service.BookingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.BookingInput
		if h, err := bind(c, &in); h {
			return err
		}
		b, err := svc.Create(c.UserContext(), caller(c).UID, in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(b)
	}
}

func MyBookings(svc service.BookingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		bookings, err := svc.ListMine(c.UserContext(), caller(c).UID, c.QueryBool("upcoming", false))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"data": bookings})
	}
}

func GetBooking(svc service.BookingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "id")
		if !ok {
			return invalidID(c)
		}
		b, err := svc.Get(c.UserContext(), caller(c), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(b)
	}
}

func CancelBooking(svc service.BookingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "id")
		if !ok {
			return invalidID(c)
		}
		b, err := svc.Cancel(c.UserContext(), caller(c).UID, id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(b)
	}
}
