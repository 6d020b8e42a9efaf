package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/hotel-room-booking/internal/utils"
)

// schemaStatements creates the six application tables when they do not
// exist yet. Column names and status string values are part of the
// external contract (other tooling reads the schema directly) and must
// stay exactly as written here.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS Customer (
		Member_ID   BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		F_name      VARCHAR(100) NOT NULL,
		Lname       VARCHAR(100) NOT NULL,
		Address     VARCHAR(255) NULL,
		Phonenumber VARCHAR(32)  NOT NULL DEFAULT '',
		Reg_date    DATE         NULL,
		Email       VARCHAR(255) NOT NULL UNIQUE,
		Password    VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS RoomType (
		Type_ID     BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		Type_Name   VARCHAR(100)  NOT NULL,
		Price_Night DOUBLE        NOT NULL,
		Max_Guest   INT UNSIGNED  NOT NULL DEFAULT 0,
		Description TEXT          NULL,
		Image_URL   VARCHAR(512)  NULL
	)`,
	`CREATE TABLE IF NOT EXISTS Room (
		Room_ID     BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		Type_ID     BIGINT UNSIGNED NOT NULL,
		Room_Number VARCHAR(16)     NOT NULL,
		Room_Status VARCHAR(16)     NOT NULL DEFAULT 'Available',
		FOREIGN KEY (Type_ID) REFERENCES RoomType (Type_ID)
	)`,
	`CREATE TABLE IF NOT EXISTS Booking (
		Booking_ID     BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		Member_ID      BIGINT UNSIGNED NOT NULL,
		Room_ID        BIGINT UNSIGNED NOT NULL,
		Check_In       DATE            NOT NULL,
		Check_Out      DATE            NOT NULL,
		Total_Price    DOUBLE          NOT NULL DEFAULT 0,
		Booking_Status VARCHAR(32)     NOT NULL DEFAULT 'Waiting Payment',
		Book_Date      DATE            NULL,
		FOREIGN KEY (Member_ID) REFERENCES Customer (Member_ID),
		FOREIGN KEY (Room_ID) REFERENCES Room (Room_ID)
	)`,
	`CREATE TABLE IF NOT EXISTS Payment (
		Pay_ID     BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		Booking_ID BIGINT UNSIGNED NOT NULL,
		Pay_Amount DOUBLE          NOT NULL DEFAULT 0,
		Pay_Method VARCHAR(64)     NOT NULL DEFAULT '',
		Pay_Date   DATETIME        NULL,
		Pay_Slip   VARCHAR(512)    NULL,
		Pay_Status VARCHAR(16)     NOT NULL DEFAULT 'Pending',
		FOREIGN KEY (Booking_ID) REFERENCES Booking (Booking_ID)
	)`,
	`CREATE TABLE IF NOT EXISTS SystemAdmin (
		Email VARCHAR(255) PRIMARY KEY
	)`,
}

// seedRoomTypes is the launch catalog: three room classes.
var seedRoomTypes = []struct {
	name  string
	price float64
	guest uint32
	desc  string
	image string
}{
	{"Sea View Deluxe", 3500, 2, "Panoramic sea view room with a private balcony", "https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?auto=format&fit=crop&w=800&q=80"},
	{"Garden Villa", 5500, 4, "Private villa set in a tropical garden, ideal for families", "https://images.unsplash.com/photo-1566073771259-6a8506099945?auto=format&fit=crop&w=800&q=80"},
	{"Pool Suite", 8500, 2, "Romantic suite with a private swimming pool", "https://images.unsplash.com/photo-1591088398332-8a7791972843?auto=format&fit=crop&w=800&q=80"},
}

// seedRooms maps physical rooms onto the seeded types by ordinal:
// typeID N refers to the Nth entry of seedRoomTypes (auto-increment
// starts at 1 on an empty table).
var seedRooms = []struct {
	typeID uint64
	number string
}{
	{1, "101"}, {1, "102"}, {1, "103"},
	{2, "201"}, {2, "202"},
	{3, "301"},
}

// seedAdminAccounts are the default administrator accounts; the owner
// entry must match the OWNER_EMAIL default so the protected account
// exists out of the box.
var seedAdminAccounts = []struct {
	first, last, email, password string
}{
	{"System", "Admin", "admin@hotel.com", "admin123"},
	{"Resort", "Owner", "owner@hotel.com", "owner123"},
}

// InitSchema creates all tables and seeds the catalog and the default
// administrator accounts. It is idempotent: tables are created with IF
// NOT EXISTS, the catalog is seeded only when RoomType is empty and
// admin grants use INSERT IGNORE. All seed writes share one
// transaction so a crash mid-seed can never leave room types without
// rooms; the next startup finds RoomType empty and seeds again.
// The bcrypt cost is taken from config so seeded accounts hash the
// same way as registered ones. DDL stays outside the transaction
// because MySQL commits implicitly around each DDL statement anyway.
func InitSchema(ctx context.Context, db *sql.DB, bcryptCost int) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if err := seedCatalog(ctx, tx); err != nil {
		return err
	}
	if err := seedAdmins(ctx, tx, bcryptCost); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// seedCatalog inserts the initial room types and physical rooms when
// the catalog is empty. Runs inside the caller's transaction so the
// types and their rooms land together or not at all.
func seedCatalog(ctx context.Context, tx *sql.Tx) error {
	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM RoomType`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, t := range seedRoomTypes {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO RoomType (Type_Name, Price_Night, Max_Guest, Description, Image_URL) VALUES (?,?,?,?,?)`,
			t.name, t.price, t.guest, t.desc, t.image); err != nil {
			return err
		}
	}
	for _, r := range seedRooms {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO Room (Type_ID, Room_Number) VALUES (?,?)`,
			r.typeID, r.number); err != nil {
			return err
		}
	}
	return nil
}

// seedAdmins ensures the two default administrator accounts exist and
// carry the SystemAdmin grant, pairing each Customer insert with its
// grant inside the caller's transaction. Customer rows are only
// created when the email is not present yet so existing accounts keep
// their password.
func seedAdmins(ctx context.Context, tx *sql.Tx, bcryptCost int) error {
	today := time.Now().UTC().Format("2006-01-02")
	for _, a := range seedAdminAccounts {
		var exists int
		err := tx.QueryRowContext(ctx, `SELECT 1 FROM Customer WHERE Email = ?`, a.email).Scan(&exists)
		if err == sql.ErrNoRows {
			hash, herr := utils.HashPassword(a.password, bcryptCost)
			if herr != nil {
				return herr
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO Customer (F_name, Lname, Email, Password, Phonenumber, Reg_date) VALUES (?,?,?,?,?,?)`,
				a.first, a.last, a.email, hash, "0000000000", today); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `INSERT IGNORE INTO SystemAdmin (Email) VALUES (?)`, a.email); err != nil {
			return err
		}
	}
	return nil
}
