package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

// BookingRepo provides CRUD operations for bookings. A booking pairs
// one customer with one allocated room for a date range; its status
// walks the lifecycle defined in the model package. Multi-table
// writes (allocate+insert, cancel+release, approve+mark paid) happen
// through the *Tx methods so handlers can wrap them in a single
// transaction.
type BookingRepo struct{ DB *sql.DB }

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

// CreateTx inserts a new booking in Waiting Payment status within the
// scope of an existing transaction and populates the generated ID on
// the provided record. The caller must commit or rollback.
func (r *BookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, b *model.Booking) error {
	b.Status = model.BookingWaitingPayment
	b.BookDate = time.Now().UTC()
	res, err := tx.ExecContext(ctx,
		`INSERT INTO Booking (Member_ID, Room_ID, Check_In, Check_Out, Total_Price, Booking_Status, Book_Date)
		 VALUES (?,?,?,?,?,?,?)`,
		b.MemberID, b.RoomID,
		b.CheckIn.Format("2006-01-02"), b.CheckOut.Format("2006-01-02"),
		b.TotalPrice, string(b.Status), b.BookDate.Format("2006-01-02"))
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.BookingID = uint64(id)
	return nil
}

// GetForCustomerTx loads a booking scoped to the owning customer
// inside a transaction. Returns sql.ErrNoRows when no booking matches
// the (customer, id) pair, which deliberately does not reveal whether
// the booking exists for someone else.
func (r *BookingRepo) GetForCustomerTx(ctx context.Context, tx *sql.Tx, bookingID, memberID uint64) (model.Booking, error) {
	var b model.Booking
	var bookDate sql.NullTime
	err := tx.QueryRowContext(ctx,
		`SELECT Booking_ID, Member_ID, Room_ID, Check_In, Check_Out, Total_Price, Booking_Status, Book_Date
		 FROM Booking WHERE Booking_ID = ? AND Member_ID = ? LIMIT 1`,
		bookingID, memberID).Scan(
		&b.BookingID, &b.MemberID, &b.RoomID, &b.CheckIn, &b.CheckOut,
		&b.TotalPrice, &b.Status, &bookDate)
	if bookDate.Valid {
		b.BookDate = bookDate.Time
	}
	return b, err
}

// UpdateStatusTx moves a booking from one status to another with a
// conditional update. When the booking is no longer in the expected
// source status (for example a second cancellation or a double
// payment submission) zero rows match and ErrInvalidState is
// returned, so illegal transitions can never be written.
func (r *BookingRepo) UpdateStatusTx(ctx context.Context, tx *sql.Tx, bookingID uint64, from, to model.BookingStatus) error {
	if !from.CanTransitionTo(to) {
		return ErrInvalidState
	}
	res, err := tx.ExecContext(ctx,
		`UPDATE Booking SET Booking_Status = ? WHERE Booking_ID = ? AND Booking_Status = ?`,
		string(to), bookingID, string(from))
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected != 1 {
		return ErrInvalidState
	}
	return nil
}

// BookingDetail is a booking joined with room and catalog display
// fields, as listed to the owning customer.
type BookingDetail struct {
	BookingID  uint64  `json:"booking_id"`
	RoomNumber string  `json:"room_number"`
	TypeName   string  `json:"type_name"`
	ImageURL   string  `json:"image_url"`
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	TotalPrice float64 `json:"total_price"`
	Status     string  `json:"status"`
	BookDate   string  `json:"book_date"`
}

// ListByCustomer returns all bookings belonging to a customer joined
// with room number, type name and image, newest first.
func (r *BookingRepo) ListByCustomer(ctx context.Context, memberID uint64) ([]BookingDetail, error) {
	const q = `SELECT b.Booking_ID, r.Room_Number, t.Type_Name, t.Image_URL,
	                  b.Check_In, b.Check_Out, b.Total_Price, b.Booking_Status, b.Book_Date
	           FROM Booking b
	           JOIN Room r ON r.Room_ID = b.Room_ID
	           JOIN RoomType t ON t.Type_ID = r.Type_ID
	           WHERE b.Member_ID = ?
	           ORDER BY b.Booking_ID DESC`
	rows, err := r.DB.QueryContext(ctx, q, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	details := make([]BookingDetail, 0)
	for rows.Next() {
		var d BookingDetail
		var image sql.NullString
		var checkIn, checkOut, bookDate sql.NullTime
		if err := rows.Scan(&d.BookingID, &d.RoomNumber, &d.TypeName, &image,
			&checkIn, &checkOut, &d.TotalPrice, &d.Status, &bookDate); err != nil {
			return nil, err
		}
		d.ImageURL = image.String
		if checkIn.Valid {
			d.CheckIn = checkIn.Time.Format("2006-01-02")
		}
		if checkOut.Valid {
			d.CheckOut = checkOut.Time.Format("2006-01-02")
		}
		if bookDate.Valid {
			d.BookDate = bookDate.Time.Format("2006-01-02")
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

// TotalSalesPaid sums Total_Price over all Paid bookings. Used by the
// admin dashboard; computed fresh on every call.
func (r *BookingRepo) TotalSalesPaid(ctx context.Context) (float64, error) {
	var total sql.NullFloat64
	err := r.DB.QueryRowContext(ctx,
		`SELECT SUM(Total_Price) FROM Booking WHERE Booking_Status = 'Paid'`).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total.Float64, nil
}
