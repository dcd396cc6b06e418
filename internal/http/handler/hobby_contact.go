package handler

import (
	"github.com/gofiber/fiber/v2"

	"startconnect/internal/model"
	"startconnect/internal/service"
)

type myHobbiesRequest struct {
	HobbyIDs []string `json:"hobbyIds" validate:"max=50,dive,uuid"`
}

type contactRequest struct {
	ContactID string `json:"contactId" validate:"required"`
}

func ListHobbies(svc service.HobbyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		hobbies, err := svc.Catalog(c.UserContext())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"data": hobbies})
	}
}

func MyHobbies(svc service.HobbyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		hobbies, err := svc.ListMine(c.UserContext(), caller(c).UID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"data": hobbies})
	}
}

// ReplaceMyHobbies overwrites the caller's hobby list.
func ReplaceMyHobbies(svc service.HobbyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in myHobbiesRequest
		if h, err := bind(c, &in); h {
			return err
		}
		hobbies, err := svc.ReplaceMine(c.UserContext(), caller(c).UID, in.HobbyIDs)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"data": hobbies})
	}
}

func CreateHobby(svc service.HobbyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.HobbyInput
		if h, err := bind(c, &in); h {
			return err
		}
		hb, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(hb)
	}
}

func DeleteHobby(svc service.HobbyService) fiber.Handler {
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

func ListContacts(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		contacts, err := svc.List(c.UserContext(), caller(c).UID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"data": contacts})
	}
}

// AddContact saves another user as a contact of the caller.
//
//	@Summary	Add contact
//	@Tags		contacts
//	@Security	BearerAuth
//	@Accept		json
//	@Param		body	body		contactRequest	true	"contact"
//	@Success	201		{object}	model.Contact
//	@Failure	409		{object}	middleware.ErrorPayload
//	@Router		/contacts [post]
func AddContact(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in contactRequest
		if h, err := bind(c, &in); h {
			return err
		}
		ct, err := svc.Add(c.UserContext(), caller(c).UID, in.ContactID)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(ct)
	}
}

func RemoveContact(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Remove(c.UserContext(), caller(c).UID, c.Params("contactId")); err != nil {
			return respondError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
