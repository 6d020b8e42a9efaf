package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/hotel-room-booking/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/hotel-room-booking/internal/middleware" // import middleware for JWT authentication and role enforcement
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes and applies the
// necessary middleware.  Unauthenticated operations live under /v1/auth,
// while the protected identity endpoint lives under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	// Create a route group under the /v1/auth prefix for operations that do
	// not require an existing session (register, login, logout).
	g := e.Group("/v1/auth")
	// Register a POST endpoint to handle customer registration at /v1/auth/register.
	g.POST("/register", a.Register)
	// Register a POST endpoint to handle customer login at /v1/auth/login.
	g.POST("/login", a.Login)
	// Register a POST endpoint for logout.  Sessions are stateless bearer
	// tokens so the endpoint requires no authentication and always succeeds;
	// it exists so clients have a uniform place to terminate a session.
	g.POST("/logout", a.Logout)

	// Create another group for routes that require a valid access token.
	auth := e.Group("/v1")
	// Apply the JWTAuth middleware to the protected group using the provided secret.
	auth.Use(middleware.JWTAuth(jwtSecret))
	// Register a GET endpoint at /v1/me that returns the authenticated user's information.
	auth.GET("/me", a.Me)
}

// RegisterCatalog registers the unauthenticated catalog browse endpoints.
// The optional cache middleware (Redis-backed) is applied to both routes so
// repeated catalog reads are served without touching the database.  These
// routes do not apply any JWT middleware and are intended for guests.
func RegisterCatalog(e *echo.Echo, cat *handler.CatalogHandler, cacheMW echo.MiddlewareFunc) {
	// Expose the full room type catalog
	e.GET("/v1/room-types", cat.ListRoomTypes, cacheMW)
	// Room type details by id
	e.GET("/v1/room-types/:id", cat.GetRoomType, cacheMW)
}

// RegisterCustomer registers the booking and payment endpoints.  All of
// them require a valid access token; the booking/payment handlers then
// scope every read and write to the authenticated customer.
func RegisterCustomer(e *echo.Echo, b *handler.BookingHandler, p *handler.PaymentHandler, jwtSecret string) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))
	// Create a booking for a room type and date range
	g.POST("/bookings", b.CreateBooking)
	// List the caller's bookings, newest first
	g.GET("/bookings", b.ListBookings)
	// Cancel a booking that is still awaiting payment
	g.POST("/bookings/:id/cancel", b.CancelBooking)
	// Upload a payment slip for a booking
	g.POST("/bookings/:id/payment", p.SubmitPayment)
}

// RegisterAdmin registers the administrative console endpoints under
// /v1/admin.  Requests must carry a valid access token whose admin claim
// is true; the RequireAdmin middleware rejects everything else with 403.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string) {
	g := e.Group("/v1/admin")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireAdmin())
	// Aggregated dashboard: sales total, pending payments, admins, occupancy
	g.GET("/dashboard", a.Dashboard)
	// Approve a pending payment, marking its booking Paid
	g.POST("/payments/:id/approve", a.ApprovePayment)
	// Create a new administrator account
	g.POST("/admins", a.AddAdmin)
	// Revoke an admin grant (the owner account is protected)
	g.DELETE("/admins/:email", a.RemoveAdmin)
}
