package handler

import (
	"github.com/gofiber/fiber/v2"

	"startconnect/internal/model"
	"startconnect/internal/service"
)

type transferRequest struct {
	NewOwnerID string `json:"newOwnerId" validate:"required"`
}

type postRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

// CreateGroup creates a group owned by the caller.
//
//	@Summary	Create group
//	@Tags		groups
//	@Security	BearerAuth
//	@Accept		json
//	@Param		body	body		model.GroupInput	true	"group"
//	@Success	201		{object}	model.Group
//	@Failure	400		{object}	middleware.ErrorPayload
//	@Router		/groups [post]
func CreateGroup(svc service.GroupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.GroupInput
		if h, err := bind(c, &in); h {
			return err
		}
		g, err := svc.Create(c.UserContext(), caller(c).UID, in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(g)
	}
}

// ListGroups filters groups by hobby, city and name.
//
//	@Summary	List groups
//	@Tags		groups
//	@Security	BearerAuth
//	@Param		hobbyId	query		string	false	"hobby id"
//	@Param		city	query		string	false	"city"
//	@Param		search	query		string	false	"name fragment"
//	@Param		limit	query		int		false	"page size"
//	@Param		offset	query		int		false	"offset"
//	@Success	200		{object}	model.Page[model.Group]
//	@Router		/groups [get]
func ListGroups(svc service.GroupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, h, err := pagination(c)
		if h {
			return err
		}
		res, err := svc.List(c.UserContext(), model.GroupFilter{
			HobbyID: c.Query("hobbyId"),
			City:    c.Query("city"),
			Search:  c.Query("search"),
			Limit:   limit,
			Offset:  offset,
		})
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}

func GetGroup(svc service.GroupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "id")
		if !ok {
			return invalidID(c)
		}
		g, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(g)
	}
}

func UpdateGroup(svc service.GroupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "id")
		if !ok {
			return invalidID(c)
		}
		var in model.GroupInput
		if h, err := bind(c, &in); h {
			return err
		}
		g, err := svc.Update(c.UserContext(), caller(c).UID, id, in)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(g)
	}
}

// DeleteGroup is allowed to the owner and to admins.
func DeleteGroup(svc service.GroupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "id")
		if !ok {
			return invalidID(c)
		}
		if err := svc.Delete(c.UserContext(), caller(c), id); err != nil {
			return respondError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func UploadGroupImage(svc service.GroupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "id")
		if !ok {
			return invalidID(c)
		}
		up, h, err := imageUpload(c)
		if h {
			return err
		}
		defer up.file.Close()

		g, err := svc.SetImage(c.UserContext(), caller(c).UID, id, up.file, up.contentType, up.size)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(g)
	}
}

// JoinGroup adds the caller to a public group.
//
//	@Summary	Join group
//	@Tags		groups
//	@Security	BearerAuth
//	@Param		id	path		string	true	"group id"
//	@Success	201	{object}	model.GroupMember
//	@Failure	403	{object}	middleware.ErrorPayload	"private group"
//	@Failure	409	{object}	middleware.ErrorPayload	"already member or full"
//	@Router		/groups/{id}/join [post]
func JoinGroup(svc service.GroupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "id")
		if !ok {
			return invalidID(c)
		}
		m, err := svc.Join(c.UserContext(), caller(c).UID, id)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(m)
	}
}

func LeaveGroup(svc service.GroupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "id")
		if !ok {
			return invalidID(c)
		}
		if err := svc.Leave(c.UserContext(), caller(c).UID, id); err != nil {
			return respondError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func TransferGroup(svc service.GroupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "id")
		if !ok {
			return invalidID(c)
		}
		var in transferRequest
		if h, err := bind(c, &in); h {
			return err
		}
		g, err := svc.Transfer(c.UserContext(), caller(c).UID, id, in.NewOwnerID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(g)
	}
}

func ListMembers(svc service.GroupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "id")
		if !ok {
			return invalidID(c)
		}
		members, err := svc.Members(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"data": members})
	}
}

func RemoveMember(svc service.GroupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "id")
		if !ok {
			return invalidID(c)
		}
		if err := svc.RemoveMember(c.UserContext(), caller(c).UID, id, c.Params("userId")); err != nil {
			return respondError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func CreatePost(svc service.GroupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "id")
		if !ok {
			return invalidID(c)
		}
		var in postRequest
		if h, err := bind(c, &in); h {
			return err
		}
		p, err := svc.CreatePost(c.UserContext(), caller(c).UID, id, in.Content)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

func ListPosts(svc service.GroupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "id")
		if !ok {
			return invalidID(c)
		}
		limit, offset, h, err := pagination(c)
		if h {
			return err
		}
		res, err := svc.ListPosts(c.UserContext(), caller(c).UID, id, limit, offset)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}

func DeletePost(svc service.GroupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "id")
		if !ok {
			return invalidID(c)
		}
		postID, ok := uuidParam(c, "postId")
		if !ok {
			return invalidID(c)
		}
		if err := svc.DeletePost(c.UserContext(), caller(c).UID, id, postID); err != nil {
			return respondError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
