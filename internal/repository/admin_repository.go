package repository

import (
	"context"
	"database/sql"
	"strings"
)

// AdminRepo manages the SystemAdmin marker set. An email present in
// SystemAdmin grants administrative capability to the matching
// Customer account; removing the row revokes the capability without
// touching the customer record.
type AdminRepo struct{ DB *sql.DB }

// NewAdminRepo returns a new AdminRepo bound to the given database.
func NewAdminRepo(db *sql.DB) *AdminRepo { return &AdminRepo{DB: db} }

// IsAdmin reports whether the email carries the admin grant.
func (r *AdminRepo) IsAdmin(ctx context.Context, email string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var one int
	err := r.DB.QueryRowContext(ctx,
		`SELECT 1 FROM SystemAdmin WHERE Email = ? LIMIT 1`, email).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GrantTx inserts the admin marker for an email inside the provided
// transaction, pairing it with the Customer insert performed by the
// caller. Granting an email that already holds the marker is a
// duplicate-key error surfaced as ErrEmailExists.
func (r *AdminRepo) GrantTx(ctx context.Context, tx *sql.Tx, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO SystemAdmin (Email) VALUES (?)`, email); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrEmailExists
		}
		return err
	}
	return nil
}

// Revoke removes the admin marker for an email. The designated owner
// email can never lose its marker and yields ErrProtected. Revoking an
// email that holds no marker is a no-op.
func (r *AdminRepo) Revoke(ctx context.Context, email, ownerEmail string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == strings.ToLower(strings.TrimSpace(ownerEmail)) {
		return ErrProtected
	}
	_, err := r.DB.ExecContext(ctx,
		`DELETE FROM SystemAdmin WHERE Email = ?`, email)
	return err
}

// AdminView is one row of the admin list shown on the dashboard: the
// grant joined with the customer's display name.
type AdminView struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// List returns every admin grant joined with the matching customer
// record, ordered by email for stable output.
func (r *AdminRepo) List(ctx context.Context) ([]AdminView, error) {
	const q = `SELECT c.F_name, c.Lname, c.Email
	           FROM Customer c
	           JOIN SystemAdmin s ON s.Email = c.Email
	           ORDER BY c.Email`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	admins := make([]AdminView, 0)
	for rows.Next() {
		var a AdminView
		if err := rows.Scan(&a.FirstName, &a.LastName, &a.Email); err != nil {
			return nil, err
		}
		admins = append(admins, a)
	}
	return admins, rows.Err()
}
