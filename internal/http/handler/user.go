package handler

import (
	"github.com/gofiber/fiber/v2"

	"startconnect/internal/model"
	"startconnect/internal/service"
)

// GetMe returns the caller's full profile.
//
//	@Summary	Current user profile
//	@Tags		users
//	@Security	BearerAuth
//	@Success	200	{object}	model.User
//	@Router		/users/me [get]
func GetMe(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := svc.Me(c.UserContext(), caller(c).UID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(u)
	}
}

// UpdateMe applies a partial profile update.
func UpdateMe(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.UserUpdate
		if h, err := bind(c, &in); h {
			return err
		}
		u, err := svc.UpdateMe(c.UserContext(), caller(c).UID, in)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(u)
	}
}

// DeleteMe removes the caller's account and everything hanging off it.
func DeleteMe(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.DeleteMe(c.UserContext(), caller(c).UID); err != nil {
			return respondError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// UploadAvatar stores a new profile picture (multipart field "file").
//
//	@Summary	Upload avatar
//	@Tags		users
//	@Security	BearerAuth
//	@Accept		multipart/form-data
//	@Param		file	formData	file	true	"image"
//	@Success	200		{object}	model.User
//	@Failure	400		{object}	middleware.ErrorPayload
//	@Router		/users/me/avatar [put]
func UploadAvatar(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		up, h, err := imageUpload(c)
		if h {
			return err
		}
		defer up.file.Close()

		u, err := svc.SetAvatar(c.UserContext(), caller(c).UID, up.file, up.contentType, up.size)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(u)
	}
}

// MyGroups lists the groups the caller belongs to.
func MyGroups(svc service.GroupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		groups, err := svc.ListForMember(c.UserContext(), caller(c).UID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"data": groups})
	}
}

// GetUser returns another user's public profile. User IDs are identity
// provider UIDs, not UUIDs.
func GetUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(u)
	}
}

// SearchUsers matches display names.
//
//	@Summary	Search users
//	@Tags		users
//	@Security	BearerAuth
//	@Param		search	query		string	false	"display name fragment"
//	@Param		limit	query		int		false	"page size"
//	@Param		offset	query		int		false	"offset"
//	@Success	200		{object}	model.Page[model.User]
//	@Router		/users [get]
func SearchUsers(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, h, err := pagination(c)
		if h {
			return err
		}
		res, err := svc.Search(c.UserContext(), c.Query("search"), limit, offset)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}
