package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

// RoomRepo provides persistence for physical rooms. Rooms carry a
// single coarse status flag; the allotment model does not track
// per-date reservation intervals.
type RoomRepo struct{ DB *sql.DB }

// NewRoomRepo returns a new RoomRepo bound to the given database.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{DB: db} }

// AllocateTx claims one Available room of the given type inside the
// provided transaction and returns its ID. Candidates are tried in
// ascending Room_ID order. Each claim is a conditional update
// (status flips to Booked only when it is still Available and the
// affected row count confirms it), so two concurrent allocators
// racing for the last room cannot both win: the loser's update
// matches zero rows and it moves on, eventually returning
// ErrNoAvailability.
func (r *RoomRepo) AllocateTx(ctx context.Context, tx *sql.Tx, typeID uint64) (uint64, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT Room_ID FROM Room WHERE Type_ID = ? AND Room_Status = 'Available' ORDER BY Room_ID`,
		typeID)
	if err != nil {
		return 0, err
	}
	var candidates []uint64
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return 0, err
		}
		candidates = append(candidates, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, err
	}
	return claimFirst(ctx, tx, candidates)
}

// claimFirst tries the conditional claim on each candidate in order
// and returns the first room whose status flip is confirmed by the
// affected row count. A zero count means another transaction claimed
// the room between the candidate query and this update; the loop
// moves on so concurrent allocators racing for the last room resolve
// to exactly one winner.
func claimFirst(ctx context.Context, ex execer, candidates []uint64) (uint64, error) {
	for _, id := range candidates {
		res, err := ex.ExecContext(ctx,
			`UPDATE Room SET Room_Status = 'Booked' WHERE Room_ID = ? AND Room_Status = 'Available'`,
			id)
		if err != nil {
			return 0, err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		if affected == 1 {
			return id, nil
		}
		// lost the race for this room, try the next candidate
	}
	return 0, ErrNoAvailability
}

// ReleaseTx flips a room back to Available inside the provided
// transaction. Used when the booking holding the room is cancelled.
func (r *RoomRepo) ReleaseTx(ctx context.Context, tx *sql.Tx, roomID uint64) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE Room SET Room_Status = 'Available' WHERE Room_ID = ?`,
		roomID)
	return err
}

// GetByID fetches a room by ID.
func (r *RoomRepo) GetByID(ctx context.Context, id uint64) (model.Room, error) {
	var rm model.Room
	err := r.DB.QueryRowContext(ctx,
		`SELECT Room_ID, Type_ID, Room_Number, Room_Status FROM Room WHERE Room_ID = ? LIMIT 1`,
		id).Scan(&rm.RoomID, &rm.TypeID, &rm.RoomNumber, &rm.Status)
	return rm, err
}

// BookedRoomView is one row of the admin occupancy view: a Booked
// room joined with its active booking's customer and stay dates.
type BookedRoomView struct {
	RoomNumber string `json:"room_number"`
	TypeName   string `json:"type_name"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Status     string `json:"booking_status"`
}

// ListBooked returns all rooms currently in Booked status together
// with their active booking (Waiting Payment, Verifying or Paid).
// One row per room; when historical bookings share the room the
// newest active one wins.
func (r *RoomRepo) ListBooked(ctx context.Context) ([]BookedRoomView, error) {
	const q = `SELECT r.Room_Number, t.Type_Name, b.Check_In, b.Check_Out, c.F_name, c.Lname, b.Booking_Status
	           FROM Room r
	           JOIN Booking b ON b.Room_ID = r.Room_ID
	           JOIN Customer c ON c.Member_ID = b.Member_ID
	           JOIN RoomType t ON t.Type_ID = r.Type_ID
	           WHERE r.Room_Status = 'Booked'
	             AND b.Booking_Status IN ('Waiting Payment', 'Verifying', 'Paid')
	             AND b.Booking_ID = (
	                 SELECT MAX(b2.Booking_ID) FROM Booking b2
	                 WHERE b2.Room_ID = r.Room_ID
	                   AND b2.Booking_Status IN ('Waiting Payment', 'Verifying', 'Paid'))
	           ORDER BY r.Room_Number`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	views := make([]BookedRoomView, 0)
	for rows.Next() {
		var v BookedRoomView
		var checkIn, checkOut sql.NullTime
		if err := rows.Scan(&v.RoomNumber, &v.TypeName, &checkIn, &checkOut, &v.FirstName, &v.LastName, &v.Status); err != nil {
			return nil, err
		}
		if checkIn.Valid {
			v.CheckIn = checkIn.Time.Format("2006-01-02")
		}
		if checkOut.Valid {
			v.CheckOut = checkOut.Time.Format("2006-01-02")
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

// AvailableRoomView is one row of the admin vacancy view: an
// Available room with its type name and nightly price.
type AvailableRoomView struct {
	RoomNumber string  `json:"room_number"`
	TypeName   string  `json:"type_name"`
	PriceNight float64 `json:"price_night"`
}

// ListAvailable returns all rooms currently in Available status with
// display fields for the admin dashboard.
func (r *RoomRepo) ListAvailable(ctx context.Context) ([]AvailableRoomView, error) {
	const q = `SELECT r.Room_Number, t.Type_Name, t.Price_Night
	           FROM Room r
	           JOIN RoomType t ON t.Type_ID = r.Type_ID
	           WHERE r.Room_Status = 'Available'
	           ORDER BY r.Room_Number`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	views := make([]AvailableRoomView, 0)
	for rows.Next() {
		var v AvailableRoomView
		if err := rows.Scan(&v.RoomNumber, &v.TypeName, &v.PriceNight); err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, rows.Err()
}
