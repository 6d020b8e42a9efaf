package model

import "time"

// BookingStatus is the closed set of states in the booking lifecycle.
// The underlying string values are stored verbatim in the
// `Booking.Booking_Status` column and are part of the external
// contract readable by other tooling, so they must never change.
type BookingStatus string

const (
    BookingWaitingPayment BookingStatus = "Waiting Payment" // created, no payment submitted yet
    BookingVerifying      BookingStatus = "Verifying"       // slip uploaded, awaiting admin review
    BookingPaid           BookingStatus = "Paid"            // payment approved (terminal)
    BookingCancelled      BookingStatus = "Cancelled"       // cancelled by the customer (terminal)
)

// bookingTransitions encodes the legal state machine:
//
//  Waiting Payment -> Verifying -> Paid
//  Waiting Payment -> Cancelled
//
// Paid and Cancelled are terminal. There is no way back from
// Verifying to Waiting Payment and no way from Paid to Cancelled.
var bookingTransitions = map[BookingStatus][]BookingStatus{
    BookingWaitingPayment: {BookingVerifying, BookingCancelled},
    BookingVerifying:      {BookingPaid},
    BookingPaid:           {},
    BookingCancelled:      {},
}

// Valid reports whether s is one of the known booking states.
func (s BookingStatus) Valid() bool {
    _, ok := bookingTransitions[s]
    return ok
}

// Terminal reports whether no further transition is possible from s.
func (s BookingStatus) Terminal() bool {
    return s.Valid() && len(bookingTransitions[s]) == 0
}

// CanTransitionTo reports whether moving from s to next is a legal
// step of the booking state machine.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
    for _, t := range bookingTransitions[s] {
        if t == next {
            return true
        }
    }
    return false
}

// ActiveBookingStatuses lists the non-terminal-or-paid states that
// keep a room in Booked status. A room is Booked iff it has at least
// one booking in one of these states.
func ActiveBookingStatuses() []BookingStatus {
    return []BookingStatus{BookingWaitingPayment, BookingVerifying, BookingPaid}
}

// Booking records a reservation of one room for a date range. The
// total price is computed once at creation time (nights multiplied by
// the nightly price of the room's type) and frozen thereafter even if
// the catalog price later changes. Bookings are never physically
// deleted; cancellation is a status change.
//
// Fields:
//  BookingID  – primary key identifier.
//  MemberID   – customer who made the booking.
//  RoomID     – allocated physical room.
//  CheckIn    – check-in date.
//  CheckOut   – check-out date.
//  TotalPrice – frozen total for the stay.
//  Status     – booking lifecycle state.
//  BookDate   – date the booking was created.
type Booking struct {
    BookingID  uint64        // Booking.Booking_ID
    MemberID   uint64        // Booking.Member_ID
    RoomID     uint64        // Booking.Room_ID
    CheckIn    time.Time     // Booking.Check_In
    CheckOut   time.Time     // Booking.Check_Out
    TotalPrice float64       // Booking.Total_Price
    Status     BookingStatus // Booking.Booking_Status
    BookDate   time.Time     // Booking.Book_Date
}

// Nights returns the whole number of nights between check-in and
// check-out. A non-positive result means the range is invalid.
func Nights(checkIn, checkOut time.Time) int {
    return int(checkOut.Sub(checkIn).Hours() / 24)
}
