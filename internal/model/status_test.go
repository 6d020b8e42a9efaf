package model

import (
	"testing"
	"time"
)

func TestBookingTransitions(t *testing.T) {
	cases := []struct {
		from, to BookingStatus
		want     bool
	}{
		{BookingWaitingPayment, BookingVerifying, true},
		{BookingWaitingPayment, BookingCancelled, true},
		{BookingVerifying, BookingPaid, true},
		{BookingWaitingPayment, BookingPaid, false},
		{BookingVerifying, BookingWaitingPayment, false},
		{BookingVerifying, BookingCancelled, false},
		{BookingPaid, BookingCancelled, false},
		{BookingPaid, BookingWaitingPayment, false},
		{BookingCancelled, BookingWaitingPayment, false},
		{BookingCancelled, BookingPaid, false},
	}
	for _, c := range cases {
		if got := c.from.CanTransitionTo(c.to); got != c.want {
			t.Errorf("CanTransitionTo(%q -> %q) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestBookingStatusTerminal(t *testing.T) {
	if !BookingPaid.Terminal() {
		t.Error("Paid should be terminal")
	}
	if !BookingCancelled.Terminal() {
		t.Error("Cancelled should be terminal")
	}
	if BookingWaitingPayment.Terminal() {
		t.Error("Waiting Payment should not be terminal")
	}
	if BookingVerifying.Terminal() {
		t.Error("Verifying should not be terminal")
	}
}

func TestStatusStringsMatchSchema(t *testing.T) {
	// The raw string values are read by external tooling and must never drift.
	if string(BookingWaitingPayment) != "Waiting Payment" {
		t.Errorf("unexpected value %q", BookingWaitingPayment)
	}
	if string(BookingVerifying) != "Verifying" || string(BookingPaid) != "Paid" || string(BookingCancelled) != "Cancelled" {
		t.Error("booking status values drifted")
	}
	if string(RoomAvailable) != "Available" || string(RoomBooked) != "Booked" {
		t.Error("room status values drifted")
	}
	if string(PaymentPending) != "Pending" || string(PaymentCompleted) != "Completed" {
		t.Error("payment status values drifted")
	}
}

func TestStatusValidity(t *testing.T) {
	for _, s := range []BookingStatus{BookingWaitingPayment, BookingVerifying, BookingPaid, BookingCancelled} {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if BookingStatus("Refunded").Valid() {
		t.Error("unknown booking status should be invalid")
	}
	if RoomStatus("Maintenance").Valid() {
		t.Error("unknown room status should be invalid")
	}
	if PaymentStatus("Failed").Valid() {
		t.Error("unknown payment status should be invalid")
	}
}

func TestActiveBookingStatuses(t *testing.T) {
	active := ActiveBookingStatuses()
	if len(active) != 3 {
		t.Fatalf("expected 3 active statuses, got %d", len(active))
	}
	for _, s := range active {
		if s == BookingCancelled {
			t.Error("Cancelled must not keep a room Booked")
		}
	}
}

func TestNights(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		return d
	}
	cases := []struct {
		in, out string
		want    int
	}{
		{"2024-01-01", "2024-01-03", 2},
		{"2024-01-01", "2024-01-02", 1},
		{"2024-01-01", "2024-01-01", 0},
		{"2024-01-03", "2024-01-01", -2},
		{"2024-02-28", "2024-03-01", 2}, // leap year
	}
	for _, c := range cases {
		if got := Nights(day(c.in), day(c.out)); got != c.want {
			t.Errorf("Nights(%s, %s) = %d, want %d", c.in, c.out, got, c.want)
		}
	}
}

func TestTotalPriceComputation(t *testing.T) {
	// 2 nights at the seeded Sea View Deluxe price of 3500 must total 7000.
	in, _ := time.Parse("2006-01-02", "2024-01-01")
	out, _ := time.Parse("2006-01-02", "2024-01-03")
	nights := Nights(in, out)
	if total := float64(nights) * 3500; total != 7000 {
		t.Errorf("total price = %v, want 7000", total)
	}
}
