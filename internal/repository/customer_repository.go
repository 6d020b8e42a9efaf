package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/iliyamo/hotel-room-booking/internal/model"
	"github.com/iliyamo/hotel-room-booking/internal/utils"
)

// CustomerRepo provides persistence for guest accounts in the
// Customer table. Emails are normalized to lower case before any
// read or write so the unique constraint behaves case-insensitively.
type CustomerRepo struct{ DB *sql.DB }

// NewCustomerRepo returns a new CustomerRepo bound to the given database.
func NewCustomerRepo(db *sql.DB) *CustomerRepo { return &CustomerRepo{DB: db} }

// Create inserts a customer with a freshly hashed password and
// today's registration date, returning the generated member ID. A
// duplicate email is reported as ErrEmailExists.
func (r *CustomerRepo) Create(ctx context.Context, first, last, email, password, phone string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	return r.insert(ctx, r.DB, first, last, email, hash, phone)
}

// CreateTx is like Create but runs inside an existing transaction so
// callers can pair the insert with other writes, e.g. granting the
// SystemAdmin role. The caller must commit or rollback.
func (r *CustomerRepo) CreateTx(ctx context.Context, tx *sql.Tx, first, last, email, password, phone string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	return r.insert(ctx, tx, first, last, email, hash, phone)
}

// execer is the subset of *sql.DB and *sql.Tx used by insert.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func (r *CustomerRepo) insert(ctx context.Context, ex execer, first, last, email, hash, phone string) (uint64, error) {
	regDate := time.Now().UTC().Format("2006-01-02")
	res, err := ex.ExecContext(ctx,
		`INSERT INTO Customer (F_name, Lname, Email, Password, Phonenumber, Reg_date) VALUES (?,?,?,?,?,?)`,
		first, last, email, hash, phone, regDate)
	if err != nil {
		// MySQL error 1062 = duplicate entry for the unique email key
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a customer by normalized email. Returns
// sql.ErrNoRows when no account matches.
func (r *CustomerRepo) GetByEmail(ctx context.Context, email string) (model.Customer, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var c model.Customer
	var regDate sql.NullTime
	err := r.DB.QueryRowContext(ctx,
		`SELECT Member_ID, F_name, Lname, Address, Phonenumber, Reg_date, Email, Password
		 FROM Customer WHERE Email = ? LIMIT 1`,
		email).Scan(&c.MemberID, &c.FirstName, &c.LastName, &c.Address, &c.Phone, &regDate, &c.Email, &c.Password)
	if regDate.Valid {
		c.RegDate = regDate.Time
	}
	return c, err
}

// GetByID fetches a customer by member ID.
func (r *CustomerRepo) GetByID(ctx context.Context, id uint64) (model.Customer, error) {
	var c model.Customer
	var regDate sql.NullTime
	err := r.DB.QueryRowContext(ctx,
		`SELECT Member_ID, F_name, Lname, Address, Phonenumber, Reg_date, Email, Password
		 FROM Customer WHERE Member_ID = ? LIMIT 1`,
		id).Scan(&c.MemberID, &c.FirstName, &c.LastName, &c.Address, &c.Phone, &regDate, &c.Email, &c.Password)
	if regDate.Valid {
		c.RegDate = regDate.Time
	}
	return c, err
}
