package handler

import (
	"database/sql"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"startconnect/docs"
	"startconnect/internal/http/middleware"
	"startconnect/internal/service"
)

// Services bundles the application services exposed over HTTP.
type Services struct {
	Auth     service.AuthService
	Users    service.UserService
	Groups   service.GroupService
	Requests service.GroupRequestService
	Hobbies  service.HobbyService
	Contacts service.ContactService
	Centers  service.CenterService
	Bookings service.BookingService
	Admin    service.AdminService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// authLimit guards the unauthenticated /auth endpoints and may be nil.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc Services, verifier middleware.TokenVerifier, authLimit fiber.Handler) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())
	app.Get("/swagger/*", swaggerUI())

	if authLimit == nil {
		authLimit = func(c *fiber.Ctx) error { return c.Next() }
	}
	authn := middleware.Authenticate(verifier)

	auth := app.Group("/auth")
	auth.Post("/register", authLimit, Register(svc.Auth))
	auth.Post("/login", authLimit, Login(svc.Auth))
	auth.Post("/logout", authn, Logout(svc.Auth))

	users := app.Group("/users", authn)
	users.Get("/me", GetMe(svc.Users))
	users.Put("/me", UpdateMe(svc.Users))
	users.Delete("/me", DeleteMe(svc.Users))
	users.Put("/me/avatar", UploadAvatar(svc.Users))
	users.Get("/me/groups", MyGroups(svc.Groups))
	users.Get("/", SearchUsers(svc.Users))
	users.Get("/:id", GetUser(svc.Users))

	// registered ahead of /groups, whose prefix middleware would also match
	reqs := app.Group("/groupsRequests", authn)
	reqs.Post("/", CreateGroupRequest(svc.Requests))
	reqs.Get("/me", MyGroupRequests(svc.Requests))
	reqs.Get("/group/:groupId", PendingGroupRequests(svc.Requests))
	reqs.Post("/:id/accept", AcceptGroupRequest(svc.Requests))
	reqs.Post("/:id/reject", RejectGroupRequest(svc.Requests))
	reqs.Delete("/:id", CancelGroupRequest(svc.Requests))

	groups := app.Group("/groups", authn)
	groups.Post("/", CreateGroup(svc.Groups))
	groups.Get("/", ListGroups(svc.Groups))
	groups.Get("/:id", GetGroup(svc.Groups))
	groups.Put("/:id", UpdateGroup(svc.Groups))
	groups.Delete("/:id", DeleteGroup(svc.Groups))
	groups.Put("/:id/image", UploadGroupImage(svc.Groups))
	groups.Post("/:id/join", JoinGroup(svc.Groups))
	groups.Post("/:id/leave", LeaveGroup(svc.Groups))
	groups.Post("/:id/transfer", TransferGroup(svc.Groups))
	groups.Get("/:id/members", ListMembers(svc.Groups))
	groups.Delete("/:id/members/:userId", RemoveMember(svc.Groups))
	groups.Post("/:id/posts", CreatePost(svc.Groups))
	groups.Get("/:id/posts", ListPosts(svc.Groups))
	groups.Delete("/:id/posts/:postId", DeletePost(svc.Groups))

	hobbies := app.Group("/hobbies", authn)
	hobbies.Get("/", ListHobbies(svc.Hobbies))
	hobbies.Get("/me", MyHobbies(svc.Hobbies))
	hobbies.Put("/me", ReplaceMyHobbies(svc.Hobbies))

	contacts := app.Group("/contacts", authn)
	contacts.Get("/", ListContacts(svc.Contacts))
	contacts.Post("/", AddContact(svc.Contacts))
	contacts.Delete("/:contactId", RemoveContact(svc.Contacts))

	centers := app.Group("/centers", authn)
	centers.Get("/", ListCenters(svc.Centers))
	centers.Get("/nearby", NearbyCenters(svc.Centers))
	centers.Get("/:id", GetCenter(svc.Centers))
	centers.Get("/:id/availability", CenterAvailability(svc.Centers))

	bookings := app.Group("/bookings", authn)
	bookings.Post("/", CreateBooking(svc.Bookings))
	bookings.Get("/me", MyBookings(svc.Bookings))
	bookings.Get("/:id", GetBooking(svc.Bookings))
	bookings.Delete("/:id", CancelBooking(svc.Bookings))

	admin := app.Group("/admin", authn, middleware.RequireAdmin())
	admin.Get("/users", AdminListUsers(svc.Admin))
	admin.Put("/users/:id/role", AdminSetRole(svc.Admin))
	admin.Delete("/users/:id", AdminDeleteUser(svc.Admin))
	admin.Post("/centers", CreateCenter(svc.Centers))
	admin.Put("/centers/:id", UpdateCenter(svc.Centers))
	admin.Delete("/centers/:id", DeleteCenter(svc.Centers))
	admin.Post("/hobbies", CreateHobby(svc.Hobbies))
	admin.Delete("/hobbies/:id", DeleteHobby(svc.Hobbies))
	admin.Get("/stats", AdminStats(svc.Admin))
}

// swaggerUI serves the generated OpenAPI docs with the request's host and scheme.
func swaggerUI() fiber.Handler {
	return func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	}
}
