package handler

import (
    "database/sql" // sentinel errors from the repository layer
    "net/http"     // HTTP status codes
    "strconv"      // parsing path parameters

    "github.com/labstack/echo/v4" // Echo web framework

    "github.com/iliyamo/hotel-room-booking/internal/repository" // repository layer
)

// CatalogHandler exposes the read-only room type catalog that guests
// browse before booking. No authentication is required; the catalog
// is public by design.
type CatalogHandler struct {
	RoomTypes *repository.RoomTypeRepo
}

// NewCatalogHandler constructs a CatalogHandler and panics if the
// repository is nil.
func NewCatalogHandler(roomTypes *repository.RoomTypeRepo) *CatalogHandler {
	if roomTypes == nil {
		panic("nil repository passed to NewCatalogHandler")
	}
	return &CatalogHandler{RoomTypes: roomTypes}
}

// roomTypeResp is the JSON shape of one catalog entry.
type roomTypeResp struct {
	TypeID      uint64  `json:"type_id"`
	TypeName    string  `json:"type_name"`
	PriceNight  float64 `json:"price_night"`
	MaxGuest    uint32  `json:"max_guest"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
}

// ListRoomTypes handles GET /v1/room-types. It returns every room
// type without filtering or pagination; the dataset is small by design.
func (h *CatalogHandler) ListRoomTypes(c echo.Context) error {
	types, err := h.RoomTypes.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]roomTypeResp, 0, len(types))
	for _, t := range types {
		out = append(out, roomTypeResp{
			TypeID:      t.TypeID,
			TypeName:    t.TypeName,
			PriceNight:  t.PriceNight,
			MaxGuest:    t.MaxGuest,
			Description: t.Description,
			ImageURL:    t.ImageURL,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"room_types": out})
}

// GetRoomType handles GET /v1/room-types/:id. Returns 404 when the
// type does not exist.
func (h *CatalogHandler) GetRoomType(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room type id"})
	}
	t, err := h.RoomTypes.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room type not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, roomTypeResp{
		TypeID:      t.TypeID,
		TypeName:    t.TypeName,
		PriceNight:  t.PriceNight,
		MaxGuest:    t.MaxGuest,
		Description: t.Description,
		ImageURL:    t.ImageURL,
	})
}
