package model

import "time"

// PaymentStatus is the closed set of states a payment attempt can be
// in. The underlying string values are stored verbatim in the
// `Payment.Pay_Status` column and are part of the external contract.
type PaymentStatus string

const (
    PaymentPending   PaymentStatus = "Pending"   // slip uploaded, awaiting admin approval
    PaymentCompleted PaymentStatus = "Completed" // approved by an administrator (terminal)
)

// Valid reports whether s is one of the known payment states.
func (s PaymentStatus) Valid() bool {
    return s == PaymentPending || s == PaymentCompleted
}

// Payment records a single payment attempt for a booking, evidenced
// by an uploaded slip image. The amount and method are recorded as
// entered by the customer and are not validated against the booking's
// total. A payment is mutated only by admin approval.
//
// Fields:
//  PayID     – primary key identifier.
//  BookingID – booking the payment belongs to.
//  Amount    – amount claimed by the customer.
//  Method    – free-form payment method label.
//  PayDate   – timestamp of the upload.
//  SlipPath  – access path of the stored slip image.
//  Status    – Pending or Completed.
type Payment struct {
    PayID     uint64        // Payment.Pay_ID
    BookingID uint64        // Payment.Booking_ID
    Amount    float64       // Payment.Pay_Amount
    Method    string        // Payment.Pay_Method
    PayDate   time.Time     // Payment.Pay_Date
    SlipPath  string        // Payment.Pay_Slip
    Status    PaymentStatus // Payment.Pay_Status
}
