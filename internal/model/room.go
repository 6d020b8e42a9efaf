package model

// RoomStatus is the closed set of states a physical room can be in.
// The underlying string values are stored verbatim in the
// `Room.Room_Status` column and form part of the external contract,
// so they must never be renamed.
type RoomStatus string

const (
    RoomAvailable RoomStatus = "Available" // room can be allocated to a new booking
    RoomBooked    RoomStatus = "Booked"    // room is held by a non-terminal booking
)

// Valid reports whether s is one of the known room states.
func (s RoomStatus) Valid() bool {
    return s == RoomAvailable || s == RoomBooked
}

// RoomType describes a catalog entry that guests can browse. Rows
// are seeded once and treated as immutable afterwards.
//
// Fields:
//  TypeID      – primary key identifier.
//  TypeName    – display name of the room class.
//  PriceNight  – nightly price.
//  MaxGuest    – maximum number of guests.
//  Description – marketing description.
//  ImageURL    – reference to a representative image.
type RoomType struct {
    TypeID      uint64  // RoomType.Type_ID
    TypeName    string  // RoomType.Type_Name
    PriceNight  float64 // RoomType.Price_Night
    MaxGuest    uint32  // RoomType.Max_Guest
    Description string  // RoomType.Description
    ImageURL    string  // RoomType.Image_URL
}

// Room is a physical unit belonging to a RoomType. A room carries a
// single coarse status flag rather than per-date reservation
// intervals: exactly one in-flight booking may hold a room at a time.
//
// Fields:
//  RoomID     – primary key identifier.
//  TypeID     – reference to the room's RoomType.
//  RoomNumber – human-facing room number (e.g. "101").
//  Status     – Available or Booked.
type Room struct {
    RoomID     uint64     // Room.Room_ID
    TypeID     uint64     // Room.Type_ID
    RoomNumber string     // Room.Room_Number
    Status     RoomStatus // Room.Room_Status
}
