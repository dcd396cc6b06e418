package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"startconnect/internal/http/middleware"
	"startconnect/internal/model"
	"startconnect/internal/repository"
	"startconnect/internal/service"
	serviceMocks "startconnect/internal/service/mocks"
)

var alice = &model.Identity{UID: "alice", Email: "alice@example.com"}

// newApp builds a test app that behaves as if Authenticate accepted id.
func newApp(id *model.Identity) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(middleware.RequestID())
	if id != nil {
		app.Use(func(c *fiber.Ctx) error {
			c.Locals(middleware.IdentityLocalKey, id)
			return c.Next()
		})
	}
	return app
}

func jsonRequest(method, target string, body any) *http.Request {
	var r io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeError(t *testing.T, resp *http.Response) errorPayload {
	t.Helper()
	var res errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	return res
}

func imageForm(contentType string, data []byte) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="pic"`)
	h.Set("Content-Type", contentType)
	part, _ := w.CreatePart(h)
	part.Write(data)
	w.Close()
	return body, w.FormDataContentType()
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, resp).Error.Code)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"domain conflict", service.ErrGroupFull, http.StatusConflict, "GROUP_FULL"},
		{"wrapped forbidden", fmt.Errorf("update: %w", service.ErrNotOwner), http.StatusForbidden, "NOT_OWNER"},
		{"validation", service.ErrInvalidInput, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"no rows", sql.ErrNoRows, http.StatusNotFound, "NOT_FOUND"},
		{"duplicate", fmt.Errorf("insert: %w", repository.ErrDuplicate), http.StatusConflict, "CONFLICT"},
		{"joined with cleanup failure", errors.Join(service.ErrEmailExists, errors.New("account rollback failed")), http.StatusConflict, "EMAIL_EXISTS"},
		{"unknown", errors.New("pq: connection reset"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp(nil)
			app.Get("/x", func(c *fiber.Ctx) error { return respondError(c, tt.err) })

			resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil))

			assert.Equal(t, tt.status, resp.StatusCode)
			res := decodeError(t, resp)
			assert.Equal(t, tt.code, res.Error.Code)
			assert.NotEmpty(t, res.RequestID)
			assert.NotContains(t, res.Error.Message, "pq:")
		})
	}
}

func TestRegister(t *testing.T) {
	mockSvc := new(serviceMocks.MockAuthService)
	app := newApp(nil)
	app.Post("/auth/register", Register(mockSvc))

	in := model.Registration{Email: "bob@example.com", Password: "secret1", DisplayName: "Bob"}

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Register", mock.Anything, in).Return(&model.User{ID: "uid-bob", Email: in.Email}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/auth/register", in))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var u model.User
		json.NewDecoder(resp.Body).Decode(&u)
		assert.Equal(t, "uid-bob", u.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid email", func(t *testing.T) {
		bad := in
		bad.Email = "not-an-email"
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/auth/register", bad))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		res := decodeError(t, resp)
		assert.Equal(t, "VALIDATION_ERROR", res.Error.Code)
		assert.Contains(t, res.Error.Message, "email")
	})

	t.Run("short password", func(t *testing.T) {
		bad := in
		bad.Password = "123"
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/auth/register", bad))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mockSvc.On("Register", mock.Anything, in).Return(nil, service.ErrEmailExists).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/auth/register", in))

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "EMAIL_EXISTS", decodeError(t, resp).Error.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Error.Code)
	})
}

func TestLogin(t *testing.T) {
	mockSvc := new(serviceMocks.MockAuthService)
	app := newApp(nil)
	app.Post("/auth/login", Login(mockSvc))

	creds := model.Credentials{Email: "bob@example.com", Password: "wrong"}
	mockSvc.On("Login", mock.Anything, creds).Return(nil, service.ErrInvalidCredentials).Once()

	resp, _ := app.Test(jsonRequest(http.MethodPost, "/auth/login", creds))

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_CREDENTIALS", decodeError(t, resp).Error.Code)
	mockSvc.AssertExpectations(t)
}

func TestLogout(t *testing.T) {
	mockSvc := new(serviceMocks.MockAuthService)
	app := newApp(alice)
	app.Post("/auth/logout", Logout(mockSvc))

	mockSvc.On("Logout", mock.Anything, "alice").Return(nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestListGroups(t *testing.T) {
	mockSvc := new(serviceMocks.MockGroupService)
	app := newApp(alice)
	app.Get("/groups", ListGroups(mockSvc))

	t.Run("success", func(t *testing.T) {
		f := model.GroupFilter{City: "Lyon", Search: "run", Limit: 5, Offset: 10}
		page := &model.Page[model.Group]{Items: []model.Group{{ID: uuid.NewString(), Name: "Runners"}}, Total: 11}
		mockSvc.On("List", mock.Anything, f).Return(page, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/groups?city=Lyon&search=run&limit=5&offset=10", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var res model.Page[model.Group]
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Len(t, res.Items, 1)
		assert.Equal(t, 11, res.Total)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid limit", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/groups?limit=abc", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_LIMIT", decodeError(t, resp).Error.Code)
	})

	t.Run("negative offset", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/groups?offset=-1", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_OFFSET", decodeError(t, resp).Error.Code)
	})
}

func TestGetGroup(t *testing.T) {
	mockSvc := new(serviceMocks.MockGroupService)
	app := newApp(alice)
	app.Get("/groups/:id", GetGroup(mockSvc))

	t.Run("invalid id", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/groups/invalid-uuid", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.NewString()
		mockSvc.On("Get", mock.Anything, id).Return(nil, service.ErrGroupNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/groups/"+id, nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "GROUP_NOT_FOUND", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		id := uuid.NewString()
		mockSvc.On("Get", mock.Anything, id).Return(nil, errors.New("db error")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/groups/"+id, nil))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestJoinGroup(t *testing.T) {
	mockSvc := new(serviceMocks.MockGroupService)
	app := newApp(alice)
	app.Post("/groups/:id/join", JoinGroup(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.NewString()
		mockSvc.On("Join", mock.Anything, "alice", id).
			Return(&model.GroupMember{GroupID: id, UserID: "alice", Role: model.RoleMember}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/groups/"+id+"/join", nil))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("private group", func(t *testing.T) {
		id := uuid.NewString()
		mockSvc.On("Join", mock.Anything, "alice", id).Return(nil, service.ErrRequestRequired).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/groups/"+id+"/join", nil))

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "REQUEST_REQUIRED", decodeError(t, resp).Error.Code)
	})
}

func TestDeleteGroup_PassesCaller(t *testing.T) {
	mockSvc := new(serviceMocks.MockGroupService)
	admin := &model.Identity{UID: "root", Admin: true}
	app := newApp(admin)
	app.Delete("/groups/:id", DeleteGroup(mockSvc))

	id := uuid.NewString()
	mockSvc.On("Delete", mock.Anything, *admin, id).Return(nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/groups/"+id, nil))

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestRemoveMember(t *testing.T) {
	mockSvc := new(serviceMocks.MockGroupService)
	app := newApp(alice)
	app.Delete("/groups/:id/members/:userId", RemoveMember(mockSvc))

	id := uuid.NewString()
	mockSvc.On("RemoveMember", mock.Anything, "alice", id, "bob").Return(nil).Once()
	mockSvc.On("RemoveMember", mock.Anything, "alice", id, "carol").Return(service.ErrNotOwner).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/groups/"+id+"/members/bob", nil))
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = app.Test(httptest.NewRequest(http.MethodDelete, "/groups/"+id+"/members/carol", nil))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "NOT_OWNER", decodeError(t, resp).Error.Code)

	resp, _ = app.Test(httptest.NewRequest(http.MethodDelete, "/groups/not-a-uuid/members/bob", nil))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
	mockSvc.AssertExpectations(t)
}

func TestTransferGroup_RequiresTarget(t *testing.T) {
	mockSvc := new(serviceMocks.MockGroupService)
	app := newApp(alice)
	app.Post("/groups/:id/transfer", TransferGroup(mockSvc))

	resp, _ := app.Test(jsonRequest(http.MethodPost, "/groups/"+uuid.NewString()+"/transfer", map[string]string{}))

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", decodeError(t, resp).Error.Code)
	mockSvc.AssertNotCalled(t, "Transfer")
}

func TestCreatePost(t *testing.T) {
	mockSvc := new(serviceMocks.MockGroupService)
	app := newApp(alice)
	app.Post("/groups/:id/posts", CreatePost(mockSvc))

	id := uuid.NewString()
	mockSvc.On("CreatePost", mock.Anything, "alice", id, "hello").Return(nil, service.ErrMembersOnly).Once()

	resp, _ := app.Test(jsonRequest(http.MethodPost, "/groups/"+id+"/posts", map[string]string{"content": "hello"}))

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "MEMBERS_ONLY", decodeError(t, resp).Error.Code)
	mockSvc.AssertExpectations(t)
}

func TestUploadAvatar(t *testing.T) {
	mockSvc := new(serviceMocks.MockUserService)
	app := newApp(alice)
	app.Put("/users/me/avatar", UploadAvatar(mockSvc))

	t.Run("success", func(t *testing.T) {
		body, ct := imageForm("image/png", []byte("\x89PNG....."))
		mockSvc.On("SetAvatar", mock.Anything, "alice", mock.Anything, "image/png", mock.Anything).
			Return(&model.User{ID: "alice", AvatarURL: "https://cdn/a.png"}, nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/users/me/avatar", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var u model.User
		json.NewDecoder(resp.Body).Decode(&u)
		assert.Equal(t, "https://cdn/a.png", u.AvatarURL)
		mockSvc.AssertExpectations(t)
	})

	t.Run("no file", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodPut, "/users/me/avatar", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "FILE_REQUIRED", decodeError(t, resp).Error.Code)
	})

	t.Run("not an image", func(t *testing.T) {
		body, ct := imageForm("application/pdf", []byte("%PDF"))
		req := httptest.NewRequest(http.MethodPut, "/users/me/avatar", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "UNSUPPORTED_TYPE", decodeError(t, resp).Error.Code)
	})
}

func TestUpdateMe(t *testing.T) {
	mockSvc := new(serviceMocks.MockUserService)
	app := newApp(alice)
	app.Put("/users/me", UpdateMe(mockSvc))

	city := "Porto"
	mockSvc.On("UpdateMe", mock.Anything, "alice", model.UserUpdate{City: &city}).
		Return(&model.User{ID: "alice", City: city}, nil).Once()

	resp, _ := app.Test(jsonRequest(http.MethodPut, "/users/me", map[string]string{"city": city}))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestNearbyCenters(t *testing.T) {
	mockSvc := new(serviceMocks.MockCenterService)
	app := newApp(alice)
	app.Get("/centers/nearby", NearbyCenters(mockSvc))

	t.Run("missing coordinates", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/centers/nearby?lng=2.3", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_COORDINATES", decodeError(t, resp).Error.Code)
	})

	t.Run("success", func(t *testing.T) {
		q := model.NearbyQuery{Latitude: 48.85, Longitude: 2.35, RadiusKm: 5, Sport: "tennis"}
		mockSvc.On("Nearby", mock.Anything, q).Return([]model.Center{{Name: "Roland", DistanceKm: 1.2}}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/centers/nearby?lat=48.85&lng=2.35&radiusKm=5&sport=tennis", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var res struct {
			Data []model.Center `json:"data"`
		}
		json.NewDecoder(resp.Body).Decode(&res)
		require.Len(t, res.Data, 1)
		assert.Equal(t, "Roland", res.Data[0].Name)
		mockSvc.AssertExpectations(t)
	})
}

func TestCreateBooking(t *testing.T) {
	mockSvc := new(serviceMocks.MockBookingService)
	app := newApp(alice)
	app.Post("/bookings", CreateBooking(mockSvc))

	start := time.Date(2030, 6, 1, 10, 0, 0, 0, time.UTC)
	in := model.BookingInput{CenterID: uuid.NewString(), Sport: "padel", Start: start, End: start.Add(time.Hour)}

	t.Run("slot taken", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, "alice", in).Return(nil, service.ErrSlotUnavailable).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/bookings", in))

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "SLOT_UNAVAILABLE", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing center", func(t *testing.T) {
		bad := in
		bad.CenterID = ""
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/bookings", bad))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestMyBookings_Upcoming(t *testing.T) {
	mockSvc := new(serviceMocks.MockBookingService)
	app := newApp(alice)
	app.Get("/bookings/me", MyBookings(mockSvc))

	mockSvc.On("ListMine", mock.Anything, "alice", true).Return([]model.Booking{}, nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/bookings/me?upcoming=true", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestAdminSetRole(t *testing.T) {
	mockSvc := new(serviceMocks.MockAdminService)
	app := newApp(&model.Identity{UID: "root", Admin: true})
	app.Put("/admin/users/:id/role", AdminSetRole(mockSvc))

	t.Run("missing flag", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPut, "/admin/users/bob/role", map[string]any{}))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("revoke", func(t *testing.T) {
		mockSvc.On("SetRole", mock.Anything, "bob", false).Return(&model.User{ID: "bob"}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/admin/users/bob/role", map[string]any{"admin": false}))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

type countingVerifier struct {
	calls int
}

func (v *countingVerifier) VerifyToken(_ context.Context, token string) (*model.Identity, error) {
	v.calls++
	switch token {
	case "alice":
		return alice, nil
	case "root":
		return &model.Identity{UID: "root", Admin: true}, nil
	}
	return nil, errors.New("invalid")
}

func TestRouting(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(),
	})
	app.Use(middleware.RequestID())

	requests := new(serviceMocks.MockGroupRequestService)
	admin := new(serviceMocks.MockAdminService)
	verifier := &countingVerifier{}
	RegisterRoutes(app, nil, Services{
		Auth:     new(serviceMocks.MockAuthService),
		Users:    new(serviceMocks.MockUserService),
		Groups:   new(serviceMocks.MockGroupService),
		Requests: requests,
		Hobbies:  new(serviceMocks.MockHobbyService),
		Contacts: new(serviceMocks.MockContactService),
		Centers:  new(serviceMocks.MockCenterService),
		Bookings: new(serviceMocks.MockBookingService),
		Admin:    admin,
	}, verifier, nil)

	withToken := func(method, target, token string) *http.Request {
		req := httptest.NewRequest(method, target, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		return req
	}

	t.Run("not found route", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/non-existent", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/health", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		assert.Equal(t, "METHOD_NOT_ALLOWED", decodeError(t, resp).Error.Code)
	})

	t.Run("protected route without token", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/groups", nil))

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "MISSING_TOKEN", decodeError(t, resp).Error.Code)
	})

	t.Run("group requests verify once", func(t *testing.T) {
		verifier.calls = 0
		requests.On("ListMine", mock.Anything, "alice").Return([]model.GroupRequest{}, nil).Once()

		resp, _ := app.Test(withToken(http.MethodGet, "/groupsRequests/me", "alice"))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, 1, verifier.calls)
		requests.AssertExpectations(t)
	})

	t.Run("admin route as member", func(t *testing.T) {
		resp, _ := app.Test(withToken(http.MethodGet, "/admin/stats", "alice"))

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "ADMIN_REQUIRED", decodeError(t, resp).Error.Code)
	})

	t.Run("admin route as admin", func(t *testing.T) {
		admin.On("Stats", mock.Anything).Return(&model.Stats{Users: 3}, nil).Once()

		resp, _ := app.Test(withToken(http.MethodGet, "/admin/stats", "root"))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		admin.AssertExpectations(t)
	})
}
