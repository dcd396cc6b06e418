package handler

import (
	"github.com/gofiber/fiber/v2"

	"startconnect/internal/service"
)

type joinRequest struct {
	GroupID string `json:"groupId" validate:"required,uuid"`
	Message string `json:"message" validate:"max=500"`
}

// CreateGroupRequest asks to join a private group.
//
//	@Summary	Request to join
//	@Tags		group requests
//	@Security	BearerAuth
//	@Accept		json
//	@Param		body	body		joinRequest	true	"request"
//	@Success	201		{object}	model.GroupRequest
//	@Failure	409		{object}	middleware.ErrorPayload
//	@Router		/groupsRequests [post]
func CreateGroupRequest(svc service.GroupRequestService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in joinRequest
		if h, err := bind(c, &in); h {
			return err
		}
		r, err := svc.Create(c.UserContext(), caller(c).UID, in.GroupID, in.Message)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(r)
	}
}

func MyGroupRequests(svc service.GroupRequestService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqs, err := svc.ListMine(c.UserContext(), caller(c).UID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"data": reqs})
	}
}

// PendingGroupRequests is visible to the group owner only.
func PendingGroupRequests(svc service.GroupRequestService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		groupID, ok := uuidParam(c, "groupId")
		if !ok {
			return invalidID(c)
		}
		reqs, err := svc.ListPending(c.UserContext(), caller(c).UID, groupID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"data": reqs})
	}
}

func AcceptGroupRequest(svc service.GroupRequestService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "id")
		if !ok {
			return invalidID(c)
		}
		r, err := svc.Accept(c.UserContext(), caller(c).UID, id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(r)
	}
}

func RejectGroupRequest(svc service.GroupRequestService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "id")
		if !ok {
			return invalidID(c)
		}
		r, err := svc.Reject(c.UserContext(), caller(c).UID, id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(r)
	}
}

func CancelGroupRequest(svc service.GroupRequestService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "id")
		if !ok {
			return invalidID(c)
		}
		if err := svc.Cancel(c.UserContext(), caller(c).UID, id); err != nil {
			return respondError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
