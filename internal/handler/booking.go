package handler

import (
    "context"      // detached context for best-effort event publishing
    "database/sql" // sentinel errors returned from repository
    "errors"       // errors.Is comparisons
    "net/http"     // HTTP status codes
    "strconv"      // parsing path parameters
    "time"         // date parsing and timestamps

    "github.com/labstack/echo/v4" // Echo web framework

    "github.com/iliyamo/hotel-room-booking/internal/model"      // domain types and status enums
    "github.com/iliyamo/hotel-room-booking/internal/queue"      // broker event payloads
    "github.com/iliyamo/hotel-room-booking/internal/repository" // repository layer
    queue_publisher "github.com/iliyamo/hotel-room-booking/internal/service"
)

// dateLayout is the wire format for check-in/check-out dates.
const dateLayout = "2006-01-02"

// BookingHandler groups repositories required to create, cancel and
// list bookings on behalf of customers. All methods assume that JWT
// authentication has already been performed by middleware and may
// return 401 Unauthorized if the member ID cannot be extracted from
// the context. Each mutating method runs its DB writes inside a
// transaction to guarantee atomicity: a room can never be marked
// Booked without a matching booking row, and vice versa.
type BookingHandler struct {
	BookingRepo  *repository.BookingRepo  // access to bookings
	RoomRepo     *repository.RoomRepo     // access to rooms for allocation and release
	RoomTypeRepo *repository.RoomTypeRepo // access to the catalog for pricing
}

// NewBookingHandler constructs a new BookingHandler with the provided
// repositories. All dependencies must be non-nil.
func NewBookingHandler(bookingRepo *repository.BookingRepo, roomRepo *repository.RoomRepo, roomTypeRepo *repository.RoomTypeRepo) *BookingHandler {
	if bookingRepo == nil || roomRepo == nil || roomTypeRepo == nil {
		panic("nil repository passed to NewBookingHandler")
	}
	return &BookingHandler{
		BookingRepo:  bookingRepo,
		RoomRepo:     roomRepo,
		RoomTypeRepo: roomTypeRepo,
	}
}

// bookingResp is the JSON shape of a created booking.
type bookingResp struct {
	BookingID  uint64  `json:"booking_id"`
	RoomID     uint64  `json:"room_id"`
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	Nights     int     `json:"nights"`
	TotalPrice float64 `json:"total_price"`
	Status     string  `json:"status"`
}

// CreateBooking handles POST /v1/bookings. It validates the requested
// date range, computes the frozen total price (nights times the
// current nightly price of the type), allocates the lowest-numbered
// Available room of the type and inserts the booking in Waiting
// Payment status. Allocation and insert share one transaction, so a
// failure of either leaves no trace. Allocation uses a conditional
// status update, which makes two concurrent requests racing for the
// last room resolve to exactly one winner; the loser receives 409.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	memberID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		TypeID   uint64 `json:"type_id"`
		CheckIn  string `json:"check_in"`
		CheckOut string `json:"check_out"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.TypeID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "type_id is required"})
	}
	checkIn, err := time.Parse(dateLayout, body.CheckIn)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date format, expected YYYY-MM-DD"})
	}
	checkOut, err := time.Parse(dateLayout, body.CheckOut)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date format, expected YYYY-MM-DD"})
	}
	nights := model.Nights(checkIn, checkOut)
	if nights <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check-out must be after check-in"})
	}

	ctx := c.Request().Context()
	roomType, err := h.RoomTypeRepo.GetByID(ctx, body.TypeID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room type not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	totalPrice := float64(nights) * roomType.PriceNight

	tx, err := h.BookingRepo.DB.BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	roomID, err := h.RoomRepo.AllocateTx(ctx, tx, body.TypeID)
	if err != nil {
		if errors.Is(err, repository.ErrNoAvailability) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "no room of this type is available"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to allocate room"})
	}
	booking := model.Booking{
		MemberID:   memberID,
		RoomID:     roomID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		TotalPrice: totalPrice,
	}
	if err := h.BookingRepo.CreateTx(ctx, tx, &booking); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create booking"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true

	// Publish the domain event best-effort after commit; a broker outage
	// never fails the booking.
	room, roomErr := h.RoomRepo.GetByID(ctx, roomID)
	roomNumber := ""
	if roomErr == nil {
		roomNumber = room.RoomNumber
	}
	go func() {
		pubCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishBookingCreated(pubCtx, queue.BookingCreatedEvent{
			BookingID:  booking.BookingID,
			MemberID:   memberID,
			RoomID:     roomID,
			RoomNumber: roomNumber,
			TypeName:   roomType.TypeName,
			CheckIn:    body.CheckIn,
			CheckOut:   body.CheckOut,
			Nights:     nights,
			TotalPrice: totalPrice,
			CreatedAt:  time.Now().UTC().Format(time.RFC3339),
		})
	}()

	return c.JSON(http.StatusCreated, bookingResp{
		BookingID:  booking.BookingID,
		RoomID:     roomID,
		CheckIn:    body.CheckIn,
		CheckOut:   body.CheckOut,
		Nights:     nights,
		TotalPrice: totalPrice,
		Status:     string(booking.Status),
	})
}

// CancelBooking handles POST /v1/bookings/:id/cancel. Cancellation is
// always scoped to the calling customer's own bookings and is only
// legal from Waiting Payment. On success the booking moves to
// Cancelled and its room returns to Available, both in one
// transaction.
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	memberID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || bookingID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}

	ctx := c.Request().Context()
	tx, err := h.BookingRepo.DB.BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	booking, err := h.BookingRepo.GetForCustomerTx(ctx, tx, bookingID, memberID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if booking.Status != model.BookingWaitingPayment {
		return c.JSON(http.StatusConflict, echo.Map{"error": "booking can no longer be cancelled"})
	}
	if err := h.BookingRepo.UpdateStatusTx(ctx, tx, bookingID, model.BookingWaitingPayment, model.BookingCancelled); err != nil {
		if errors.Is(err, repository.ErrInvalidState) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "booking can no longer be cancelled"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to cancel booking"})
	}
	if err := h.RoomRepo.ReleaseTx(ctx, tx, booking.RoomID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to release room"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true

	return c.JSON(http.StatusOK, echo.Map{
		"booking_id": bookingID,
		"status":     string(model.BookingCancelled),
	})
}

// ListBookings handles GET /v1/bookings. It returns the caller's
// bookings joined with room and catalog display fields, newest first.
func (h *BookingHandler) ListBookings(c echo.Context) error {
	memberID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	details, err := h.BookingRepo.ListByCustomer(c.Request().Context(), memberID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": details})
}
