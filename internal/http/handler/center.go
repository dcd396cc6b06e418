package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"startconnect/internal/model"
	"startconnect/internal/service"
)

// ListCenters filters centers by city and sport.
//
//	@Summary	List centers
//	@Tags		centers
//	@Security	BearerAuth
//	@Param		city	query		string	false	"city"
//	@Param		sport	query		string	false	"sport"
//	@Param		limit	query		int		false	"page size"
//	@Param		offset	query		int		false	"offset"
//	@Success	200		{object}	model.Page[model.Center]
//	@Router		/centers [get]
func ListCenters(svc service.CenterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, h, err := pagination(c)
		if h {
			return err
		}
		res, err := svc.List(c.UserContext(), model.CenterFilter{
			City:   c.Query("city"),
			Sport:  c.Query("sport"),
			Limit:  limit,
			Offset: offset,
		})
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}

func GetCenter(svc service.CenterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "id")
		if !ok {
			return invalidID(c)
		}
		ct, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(ct)
	}
}

// NearbyCenters searches around a coordinate, nearest first.
//
//	@Summary	Centers near a point
//	@Tags		centers
//	@Security	BearerAuth
//	@Param		lat			query		number	true	"latitude"
//	@Param		lng			query		number	true	"longitude"
//	@Param		radiusKm	query		number	false	"radius, default 10, max 100"
//	@Param		sport		query		string	false	"sport"
//	@Success	200			{object}	map[string][]model.Center
//	@Router		/centers/nearby [get]
func NearbyCenters(svc service.CenterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lat, err := strconv.ParseFloat(c.Query("lat"), 64)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_COORDINATES", "lat and lng are required numbers")
		}
		lng, err := strconv.ParseFloat(c.Query("lng"), 64)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_COORDINATES", "lat and lng are required numbers")
		}
		radius, err := strconv.ParseFloat(c.Query("radiusKm", "0"), 64)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_RADIUS", "invalid radiusKm")
		}

		centers, err := svc.Nearby(c.UserContext(), model.NearbyQuery{
			Latitude:  lat,
			Longitude: lng,
			RadiusKm:  radius,
			Sport:     c.Query("sport"),
		})
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"data": centers})
	}
}

func CenterAvailability(svc service.CenterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "id")
		if !ok {
			return invalidID(c)
		}
		av, err := svc.Availability(c.UserContext(), id, c.Query("date"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(av)
	}
}

func CreateCenter(svc service.CenterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.Center
		if h, err := bind(c, &in); h {
			return err
		}
		ct, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(ct)
	}
}

func UpdateCenter(svc service.CenterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "id")
		if !ok {
			return invalidID(c)
		}
		var in model.Center
		if h, err := bind(c, &in); h {
			return err
		}
		ct, err := svc.Update(c.UserContext(), id, in)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(ct)
	}
}

func DeleteCenter(svc service.CenterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "id")
		if !ok {
			return invalidID(c)
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return respondError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
