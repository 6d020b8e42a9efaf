// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCreatedEvent is published when a booking is successfully created
// and a room has been allocated. It contains enough information for
// downstream consumers to log, notify, or trigger analytics without
// querying the primary database.
type BookingCreatedEvent struct {
    BookingID  uint64  `json:"booking_id"`
    MemberID   uint64  `json:"member_id"`
    RoomID     uint64  `json:"room_id"`
    RoomNumber string  `json:"room_number"`
    TypeName   string  `json:"type_name"`
    CheckIn    string  `json:"check_in"`
    CheckOut   string  `json:"check_out"`
    Nights     int     `json:"nights"`
    TotalPrice float64 `json:"total_price"`
    CreatedAt  string  `json:"created_at"`
}

// PaymentApprovedEvent is published when an administrator approves a
// pending payment, driving the booking into its Paid terminal state.
type PaymentApprovedEvent struct {
    PayID      uint64  `json:"pay_id"`
    BookingID  uint64  `json:"booking_id"`
    Amount     float64 `json:"amount"`
    Method     string  `json:"method"`
    ApprovedAt string  `json:"approved_at"`
}
