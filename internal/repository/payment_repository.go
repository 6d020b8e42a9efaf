package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

// PaymentRepo provides persistence for payment attempts. A payment is
// created when a customer uploads a transfer slip and is mutated only
// by admin approval.
type PaymentRepo struct{ DB *sql.DB }

// NewPaymentRepo returns a new PaymentRepo bound to the given database.
func NewPaymentRepo(db *sql.DB) *PaymentRepo { return &PaymentRepo{DB: db} }

// CreateTx inserts a new payment in Pending status within the scope
// of an existing transaction and populates the generated ID on the
// provided record. The caller must commit or rollback.
func (r *PaymentRepo) CreateTx(ctx context.Context, tx *sql.Tx, p *model.Payment) error {
	p.Status = model.PaymentPending
	p.PayDate = time.Now().UTC()
	res, err := tx.ExecContext(ctx,
		`INSERT INTO Payment (Booking_ID, Pay_Amount, Pay_Method, Pay_Date, Pay_Slip, Pay_Status)
		 VALUES (?,?,?,?,?,?)`,
		p.BookingID, p.Amount, p.Method,
		p.PayDate.Format("2006-01-02 15:04:05"), p.SlipPath, string(p.Status))
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.PayID = uint64(id)
	return nil
}

// GetTx loads a payment by ID inside a transaction. Returns
// sql.ErrNoRows when the payment does not exist.
func (r *PaymentRepo) GetTx(ctx context.Context, tx *sql.Tx, payID uint64) (model.Payment, error) {
	var p model.Payment
	var payDate sql.NullTime
	var slip sql.NullString
	err := tx.QueryRowContext(ctx,
		`SELECT Pay_ID, Booking_ID, Pay_Amount, Pay_Method, Pay_Date, Pay_Slip, Pay_Status
		 FROM Payment WHERE Pay_ID = ? LIMIT 1`,
		payID).Scan(&p.PayID, &p.BookingID, &p.Amount, &p.Method, &payDate, &slip, &p.Status)
	if payDate.Valid {
		p.PayDate = payDate.Time
	}
	p.SlipPath = slip.String
	return p, err
}

// CompleteTx marks a payment Completed and its booking Paid inside
// the provided transaction. Both updates are written together so a
// failure of either rolls back the pair. The booking update only
// matches Verifying or Paid rows: re-approving an already approved
// payment re-sets the same terminal values (idempotent in effect),
// while a Cancelled or Waiting Payment booking yields zero matched
// rows and ErrInvalidState, so no other path can reach Paid.
func (r *PaymentRepo) CompleteTx(ctx context.Context, tx *sql.Tx, p model.Payment) error {
	if _, err := tx.ExecContext(ctx,
		`UPDATE Payment SET Pay_Status = 'Completed' WHERE Pay_ID = ?`,
		p.PayID); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx,
		`UPDATE Booking SET Booking_Status = 'Paid'
		 WHERE Booking_ID = ? AND Booking_Status IN ('Verifying', 'Paid')`,
		p.BookingID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected != 1 {
		// MySQL reports 0 affected rows both when no row matched and
		// when the matched row already held the target value, so probe
		// the current status before deciding this was an illegal jump.
		var status string
		if err := tx.QueryRowContext(ctx,
			`SELECT Booking_Status FROM Booking WHERE Booking_ID = ?`,
			p.BookingID).Scan(&status); err != nil {
			return err
		}
		if model.BookingStatus(status) != model.BookingPaid {
			return ErrInvalidState
		}
	}
	return nil
}

// PendingPaymentView is one row of the admin review queue: a Pending
// payment joined with its booking total and the paying customer.
type PendingPaymentView struct {
	PayID      uint64  `json:"pay_id"`
	BookingID  uint64  `json:"booking_id"`
	Amount     float64 `json:"amount"`
	Method     string  `json:"method"`
	PayDate    string  `json:"pay_date"`
	SlipPath   string  `json:"slip_path"`
	TotalPrice float64 `json:"total_price"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
}

// ListPending returns all Pending payments joined with booking and
// customer display fields for the admin dashboard, oldest first so
// the queue is reviewed in arrival order.
func (r *PaymentRepo) ListPending(ctx context.Context) ([]PendingPaymentView, error) {
	const q = `SELECT p.Pay_ID, p.Booking_ID, p.Pay_Amount, p.Pay_Method, p.Pay_Date, p.Pay_Slip,
	                  b.Total_Price, c.F_name, c.Lname
	           FROM Payment p
	           JOIN Booking b ON b.Booking_ID = p.Booking_ID
	           JOIN Customer c ON c.Member_ID = b.Member_ID
	           WHERE p.Pay_Status = 'Pending'
	           ORDER BY p.Pay_ID`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	views := make([]PendingPaymentView, 0)
	for rows.Next() {
		var v PendingPaymentView
		var payDate sql.NullTime
		var slip sql.NullString
		if err := rows.Scan(&v.PayID, &v.BookingID, &v.Amount, &v.Method, &payDate, &slip,
			&v.TotalPrice, &v.FirstName, &v.LastName); err != nil {
			return nil, err
		}
		if payDate.Valid {
			v.PayDate = payDate.Time.UTC().Format(time.RFC3339)
		}
		v.SlipPath = slip.String
		views = append(views, v)
	}
	return views, rows.Err()
}
