// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrNoAvailability indicates that every room of a requested
// type is already booked, while ErrInvalidState signals that a
// lifecycle transition was attempted from a state that does not allow
// it. Plain "row not found" conditions are reported as sql.ErrNoRows
// so callers can use the standard sentinel.
package repository

import "errors"

// ErrEmailExists is returned when an insert would violate the unique
// email constraint on the Customer table. Handlers should translate
// this into an HTTP 409 response.
var ErrEmailExists = errors.New("email already exists")

// ErrNoAvailability is returned when no room of the requested type is
// in Available status. Handlers should translate this into an HTTP
// 409 response.
var ErrNoAvailability = errors.New("no room available")

// ErrInvalidState is returned when a booking or payment transition is
// attempted from a state that does not permit it, such as cancelling
// a booking that is already Verifying or Paid. Handlers should
// translate this into an HTTP 409 response.
var ErrInvalidState = errors.New("invalid state for operation")

// ErrProtected is returned when an operation targets the designated
// owner account, which can never lose its admin grant. Handlers
// should translate this into an HTTP 403 response.
var ErrProtected = errors.New("owner account is protected")
