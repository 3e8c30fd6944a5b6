package model

import (
	"database/sql"
	"net/http"
	"time"

	"nyumba/shared/failure"
	"nyumba/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldFullName        = "full_name"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldRoomTypeID      = "room_type_id"
	FieldRoomID          = "room_id"
	FieldCheckIn         = "check_in"
	FieldCheckOut        = "check_out"
	FieldGuests          = "guests"
	FieldStatus          = "status"
	FieldSpecialRequests = "special_requests"
)

const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusCancelled  = "cancelled"
)

// ErrRoomUnavailable is returned when no room of the requested type can
// satisfy the stay window at confirmation time.
var ErrRoomUnavailable = &failure.Failure{
	Code:    http.StatusConflict,
	Message: "no rooms available for the requested dates",
}

// ErrInvalidTransition is returned when a lifecycle operation is applied to
// a booking whose current status does not permit it.
var ErrInvalidTransition = &failure.Failure{
	Code:    http.StatusConflict,
	Message: "booking status does not permit this transition",
}

// validTransitions holds the allowed status moves. Cancellation is open to
// every active state; checked_out and cancelled are terminal.
var validTransitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn: {StatusCheckedOut, StatusCancelled},
}

func CanTransition(from, to string) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}

	return false
}

// BlocksRoom reports whether a booking in the given status holds its room
// against other bookings. Pending requests never block; neither do completed
// or cancelled stays.
func BlocksRoom(status string) bool {
	return status == StatusConfirmed || status == StatusCheckedIn
}

type Booking struct {
	ID              string         `db:"id"`
	FullName        string         `db:"full_name"`
	Email           string         `db:"email"`
	Phone           string         `db:"phone"`
	RoomTypeID      string         `db:"room_type_id"`
	RoomID          sql.NullString `db:"room_id"`
	CheckIn         time.Time      `db:"check_in"`
	CheckOut        time.Time      `db:"check_out"`
	Guests          int            `db:"guests"`
	Status          string         `db:"status"`
	SpecialRequests string         `db:"special_requests"`
	model.Metadata
}

// Nights is the length of the stay. Check-out day is not slept in, so the
// count is the plain day difference of the half-open window.
func (b *Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}

// TotalPrice derives the amount owed from the nightly rate. It is never
// stored; pricing follows the room type's current rate.
func (b *Booking) TotalPrice(basePrice decimal.Decimal) decimal.Decimal {
	return basePrice.Mul(decimal.NewFromInt(int64(b.Nights())))
}

// Overlaps applies the half-open stay comparison: two windows conflict when
// each starts before the other ends. Back-to-back stays sharing a turnover
// day do not overlap.
func Overlaps(aCheckIn, aCheckOut, bCheckIn, bCheckOut time.Time) bool {
	return aCheckIn.Before(bCheckOut) && aCheckOut.After(bCheckIn)
}
