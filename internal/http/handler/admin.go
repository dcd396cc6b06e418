package handler

import (
	"github.com/gofiber/fiber/v2"

	"startconnect/internal/service"
)

type roleRequest struct {
	Admin *bool `json:"admin" validate:"required"`
}

func AdminListUsers(svc service.AdminService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, h, err := pagination(c)
		if h {
			return err
		}
		res, err := svc.ListUsers(c.UserContext(), c.Query("search"), limit, offset)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}

// AdminSetRole grants or revokes the admin claim.
//
//	@Summary	Set admin role
//	@Tags		admin
//	@Security	BearerAuth
//	@Accept		json
//	@Param		id		path		string		true	"user id"
//	@Param		body	body		roleRequest	true	"role"
//	@Success	200		{object}	model.User
//	@Failure	403		{object}	middleware.ErrorPayload
//	@Router		/admin/users/{id}/role [put]
func AdminSetRole(svc service.AdminService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in roleRequest
		if h, err := bind(c, &in); h {
			return err
		}
		u, err := svc.SetRole(c.UserContext(), c.Params("id"), *in.Admin)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(u)
	}
}

func AdminDeleteUser(svc service.AdminService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.DeleteUser(c.UserContext(), c.Params("id")); err != nil {
			return respondError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func AdminStats(svc service.AdminService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st, err := svc.Stats(c.UserContext())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(st)
	}
}
