package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

// RoomTypeRepo provides read access to the RoomType catalog. The
// catalog is seeded once and read-mostly, so the repository exposes
// no mutation methods.
type RoomTypeRepo struct{ DB *sql.DB }

// NewRoomTypeRepo returns a new RoomTypeRepo bound to the given database.
func NewRoomTypeRepo(db *sql.DB) *RoomTypeRepo { return &RoomTypeRepo{DB: db} }

// List returns every room type ordered by ID. The dataset is small by
// design so no pagination is applied.
func (r *RoomTypeRepo) List(ctx context.Context) ([]model.RoomType, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT Type_ID, Type_Name, Price_Night, Max_Guest, Description, Image_URL
		 FROM RoomType ORDER BY Type_ID`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	types := make([]model.RoomType, 0)
	for rows.Next() {
		var t model.RoomType
		var desc, image sql.NullString
		if err := rows.Scan(&t.TypeID, &t.TypeName, &t.PriceNight, &t.MaxGuest, &desc, &image); err != nil {
			return nil, err
		}
		t.Description = desc.String
		t.ImageURL = image.String
		types = append(types, t)
	}
	return types, rows.Err()
}

// GetByID returns a single room type. Returns sql.ErrNoRows when the
// ID does not exist.
func (r *RoomTypeRepo) GetByID(ctx context.Context, id uint64) (model.RoomType, error) {
	var t model.RoomType
	var desc, image sql.NullString
	err := r.DB.QueryRowContext(ctx,
		`SELECT Type_ID, Type_Name, Price_Night, Max_Guest, Description, Image_URL
		 FROM RoomType WHERE Type_ID = ? LIMIT 1`,
		id).Scan(&t.TypeID, &t.TypeName, &t.PriceNight, &t.MaxGuest, &desc, &image)
	if err != nil {
		return model.RoomType{}, err
	}
	t.Description = desc.String
	t.ImageURL = image.String
	return t, nil
}
