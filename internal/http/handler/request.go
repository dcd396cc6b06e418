package handler

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"startconnect/internal/http/middleware"
	"startconnect/internal/model"
	"startconnect/internal/storage"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// bind decodes the JSON body into dst and validates its struct tags.
// On failure the 400 response is already written and handled is true.
func bind(c *fiber.Ctx, dst any) (handled bool, err error) {
	if err := c.BodyParser(dst); err != nil {
		return true, writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
	}
	if err := validate.StructCtx(c.UserContext(), dst); err != nil {
		return true, writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", validationMessage(err))
	}
	return false, nil
}

// validationMessage renders the first failing field as "field: rule".
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request"
	}
	fe := verrs[0]
	field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
	if fe.Param() != "" {
		return fmt.Sprintf("%s: failed %s=%s", field, fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s: failed %s", field, fe.Tag())
}

// pagination reads limit and offset query params. Zero values fall back to
// the service defaults.
func pagination(c *fiber.Ctx) (limit, offset int, handled bool, err error) {
	limit, perr := strconv.Atoi(c.Query("limit", "0"))
	if perr != nil || limit < 0 {
		return 0, 0, true, writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
	}
	offset, perr = strconv.Atoi(c.Query("offset", "0"))
	if perr != nil || offset < 0 {
		return 0, 0, true, writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
	}
	return limit, offset, false, nil
}

// uuidParam returns the named path param if it is a UUID.
func uuidParam(c *fiber.Ctx, name string) (string, bool) {
	id := c.Params(name)
	return id, uuid.Validate(id) == nil
}

func invalidID(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
}

// caller returns the authenticated identity. Routes using it sit behind
// middleware.Authenticate.
func caller(c *fiber.Ctx) model.Identity {
	if id := middleware.IdentityFrom(c); id != nil {
		return *id
	}
	return model.Identity{}
}

type upload struct {
	file        io.ReadCloser
	contentType string
	size        int64
}

// imageUpload opens the multipart "file" field.
func imageUpload(c *fiber.Ctx) (*upload, bool, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, true, writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
	}
	if fh.Size > storage.MaxImageSize {
		return nil, true, writeError(c, fiber.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds 5 MiB")
	}

	ct := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "image/") {
		return nil, true, writeError(c, fiber.StatusBadRequest, "UNSUPPORTED_TYPE", "only image uploads are accepted")
	}

	f, err := fh.Open()
	if err != nil {
		return nil, true, writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
	}
	return &upload{file: f, contentType: ct, size: fh.Size}, false, nil
}
