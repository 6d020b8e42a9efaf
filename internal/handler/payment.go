package handler

import (
    "database/sql" // sentinel errors returned from repository
    "errors"       // errors.Is comparisons
    "net/http"     // HTTP status codes
    "strconv"      // parsing path parameters and form numbers
    "time"         // upload timestamps

    "github.com/labstack/echo/v4" // Echo web framework

    "github.com/iliyamo/hotel-room-booking/internal/model"      // domain types and status enums
    "github.com/iliyamo/hotel-room-booking/internal/repository" // repository layer
    "github.com/iliyamo/hotel-room-booking/internal/storage"    // slip file store
)

// PaymentHandler accepts payment slip uploads from customers. A
// submission stores the slip image, creates a Pending payment row and
// advances the booking from Waiting Payment to Verifying; the two
// database writes share one transaction. The claimed amount and
// method are recorded as entered and never validated against the
// booking total, because verification is a manual admin step.
type PaymentHandler struct {
	BookingRepo *repository.BookingRepo // access to bookings for ownership and status
	PaymentRepo *repository.PaymentRepo // access to payments
	Slips       *storage.SlipStore      // slip image storage
}

// NewPaymentHandler constructs a new PaymentHandler with the provided
// dependencies. All dependencies must be non-nil.
func NewPaymentHandler(bookingRepo *repository.BookingRepo, paymentRepo *repository.PaymentRepo, slips *storage.SlipStore) *PaymentHandler {
	if bookingRepo == nil || paymentRepo == nil || slips == nil {
		panic("nil dependency passed to NewPaymentHandler")
	}
	return &PaymentHandler{BookingRepo: bookingRepo, PaymentRepo: paymentRepo, Slips: slips}
}

// SubmitPayment handles POST /v1/bookings/:id/payment. The request is
// a multipart form carrying `amount`, `method` and a `slip_image`
// file with a png/jpg/jpeg/gif extension. The booking must belong to
// the caller and still be in Waiting Payment; a second submission
// finds the booking already Verifying and is rejected with 409.
func (h *PaymentHandler) SubmitPayment(c echo.Context) error {
	memberID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || bookingID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}

	amount, err := strconv.ParseFloat(c.FormValue("amount"), 64)
	if err != nil || amount < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid amount"})
	}
	method := c.FormValue("method")
	if method == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "method is required"})
	}

	fileHeader, err := c.FormFile("slip_image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "slip_image file is required"})
	}
	if fileHeader.Size == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": storage.ErrInvalidFile.Error()})
	}
	if _, ok := storage.AllowedExtension(fileHeader.Filename); !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": storage.ErrInvalidFile.Error()})
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
		return c.JSON(http.StatusConflict, echo.Map{"error": "booking is not awaiting payment"})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to read slip file"})
	}
	defer src.Close()

	slipPath, err := h.Slips.Save(src, fileHeader.Filename, bookingID, time.Now().UTC().Unix())
	if err != nil {
		if errors.Is(err, storage.ErrInvalidFile) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": storage.ErrInvalidFile.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to store slip file"})
	}

	payment := model.Payment{
		BookingID: bookingID,
		Amount:    amount,
		Method:    method,
		SlipPath:  slipPath,
	}
	if err := h.PaymentRepo.CreateTx(ctx, tx, &payment); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to record payment"})
	}
	// Conditional transition doubles as the double-submission guard: a
	// concurrent submission that already moved the booking to Verifying
	// makes this update match zero rows.
	if err := h.BookingRepo.UpdateStatusTx(ctx, tx, bookingID, model.BookingWaitingPayment, model.BookingVerifying); err != nil {
		if errors.Is(err, repository.ErrInvalidState) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "booking is not awaiting payment"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update booking"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true

	return c.JSON(http.StatusCreated, echo.Map{
		"pay_id":         payment.PayID,
		"booking_id":     bookingID,
		"slip_path":      slipPath,
		"payment_status": string(payment.Status),
		"booking_status": string(model.BookingVerifying),
	})
}
