package handler

import (
    "context"      // detached context for best-effort event publishing
    "database/sql" // sentinel errors returned from repository
    "errors"       // errors.Is comparisons
    "net/http"     // HTTP status codes
    "strconv"      // parsing path parameters
    "strings"      // email normalization
    "time"         // event timestamps

    "github.com/labstack/echo/v4" // Echo web framework

    "github.com/iliyamo/hotel-room-booking/internal/config"     // app configuration (owner email)
    "github.com/iliyamo/hotel-room-booking/internal/queue"      // broker event payloads
    "github.com/iliyamo/hotel-room-booking/internal/repository" // repository layer
    queue_publisher "github.com/iliyamo/hotel-room-booking/internal/service"
)

// AdminHandler implements the administrative console: the dashboard
// aggregates, payment approval and admin account management. All
// routes are gated by the RequireAdmin middleware; handlers assume
// the caller already holds the capability.
type AdminHandler struct {
	Cfg         config.Config
	Customers   *repository.CustomerRepo
	Admins      *repository.AdminRepo
	Bookings    *repository.BookingRepo
	Payments    *repository.PaymentRepo
	Rooms       *repository.RoomRepo
}

// NewAdminHandler constructs a new AdminHandler with the provided
// repositories. All dependencies must be non-nil.
func NewAdminHandler(cfg config.Config, cu *repository.CustomerRepo, ad *repository.AdminRepo, bo *repository.BookingRepo, pa *repository.PaymentRepo, ro *repository.RoomRepo) *AdminHandler {
	if cu == nil || ad == nil || bo == nil || pa == nil || ro == nil {
		panic("nil repository passed to NewAdminHandler")
	}
	return &AdminHandler{Cfg: cfg, Customers: cu, Admins: ad, Bookings: bo, Payments: pa, Rooms: ro}
}

// Dashboard handles GET /v1/admin/dashboard. Every aggregate is
// computed fresh per request: total sales over Paid bookings, the
// pending payment review queue, the current admin list, occupied
// rooms with their active booking and vacant rooms with price.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()

	totalSales, err := h.Bookings.TotalSalesPaid(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	pending, err := h.Payments.ListPending(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	admins, err := h.Admins.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	booked, err := h.Rooms.ListBooked(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	available, err := h.Rooms.ListAvailable(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"total_sales":      totalSales,
		"pending_payments": pending,
		"admins":           admins,
		"booked_rooms":     booked,
		"available_rooms":  available,
	})
}

// ApprovePayment handles POST /v1/admin/payments/:id/approve. The
// payment moves to Completed and its booking to Paid in one
// transaction. Approving an already approved payment re-sets the
// same terminal values and succeeds, so a double click is harmless.
func (h *AdminHandler) ApprovePayment(c echo.Context) error {
	payID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || payID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payment id"})
	}

	ctx := c.Request().Context()
	tx, err := h.Payments.DB.BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	payment, err := h.Payments.GetTx(ctx, tx, payID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "payment not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if err := h.Payments.CompleteTx(ctx, tx, payment); err != nil {
		if errors.Is(err, repository.ErrInvalidState) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "booking is not verifying"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to approve payment"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true

	go func() {
		pubCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishPaymentApproved(pubCtx, queue.PaymentApprovedEvent{
			PayID:      payment.PayID,
			BookingID:  payment.BookingID,
			Amount:     payment.Amount,
			Method:     payment.Method,
			ApprovedAt: time.Now().UTC().Format(time.RFC3339),
		})
	}()

	return c.JSON(http.StatusOK, echo.Map{
		"pay_id":         payID,
		"payment_status": "Completed",
		"booking_status": "Paid",
	})
}

// addAdminReq mirrors registerReq but is used by the console to
// create a new administrator account.
type addAdminReq struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
}

// AddAdmin handles POST /v1/admin/admins. It creates a customer
// account and grants it the SystemAdmin marker in one transaction; a
// duplicate email rolls both back.
func (h *AdminHandler) AddAdmin(c echo.Context) error {
	var req addAdminReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "first_name/last_name/email/password required"})
	}

	ctx := c.Request().Context()
	tx, err := h.Customers.DB.BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	uid, err := h.Customers.CreateTx(ctx, tx, req.FirstName, req.LastName, req.Email, req.Password, req.Phone, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create admin failed"})
	}
	if err := h.Admins.GrantTx(ctx, tx, req.Email); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "grant admin failed"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true

	return c.JSON(http.StatusCreated, echo.Map{
		"member_id": uid,
		"email":     req.Email,
		"admin":     true,
	})
}

// RemoveAdmin handles DELETE /v1/admin/admins/:email. The designated
// owner account can never lose its grant; any other email is revoked
// while the underlying customer record stays untouched.
func (h *AdminHandler) RemoveAdmin(c echo.Context) error {
	email := strings.ToLower(strings.TrimSpace(c.Param("email")))
	if email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email is required"})
	}
	if err := h.Admins.Revoke(c.Request().Context(), email, h.Cfg.OwnerEmail); err != nil {
		if errors.Is(err, repository.ErrProtected) {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "owner account cannot be removed"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "revoke admin failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"email": email, "admin": false})
}
