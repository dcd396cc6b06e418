package handler

import (
	"github.com/gofiber/fiber/v2"

	"startconnect/internal/model"
	"startconnect/internal/service"
)

// Register creates an identity account and its profile.
//
//	@Summary	Register a new account
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		model.Registration	true	"sign-up payload"
//	@Success	201		{object}	model.User
//	@Failure	400		{object}	middleware.ErrorPayload
//	@Failure	409		{object}	middleware.ErrorPayload
//	@Router		/auth/register [post]
func Register(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.Registration
		if h, err := bind(c, &in); h {
			return err
		}
		u, err := svc.Register(c.UserContext(), in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(u)
	}
}

// Login exchanges email and password for identity tokens.
//
//	@Summary	Password sign-in
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		model.Credentials	true	"credentials"
//	@Success	200		{object}	service.LoginResult
//	@Failure	401		{object}	middleware.ErrorPayload
//	@Router		/auth/login [post]
func Login(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.Credentials
		if h, err := bind(c, &in); h {
			return err
		}
		res, err := svc.Login(c.UserContext(), in)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}

// Logout revokes the caller's refresh tokens.
//
//	@Summary	Revoke sessions
//	@Tags		auth
//	@Security	BearerAuth
//	@Success	204
//	@Router		/auth/logout [post]
func Logout(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Logout(c.UserContext(), caller(c).UID); err != nil {
			return respondError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
