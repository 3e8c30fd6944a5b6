package notification

//go:generate go run go.uber.org/mock/mockgen -source=event.go -destination=mocks/notification_mock.go -package=notification_mock

import "context"

const (
	EventBookingRequested = "booking_requested"
	EventBookingConfirmed = "booking_confirmed"
	EventBookingCancelled = "booking_cancelled"
)

// Event carries everything the mail templates need, so the consumer never
// has to read the database.
type Event struct {
	Type            string `json:"type"`
	BookingID       string `json:"booking_id"`
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	RoomType        string `json:"room_type"`
	RoomNumber      string `json:"room_number,omitempty"`
	CheckIn         string `json:"check_in"`
	CheckOut        string `json:"check_out"`
	Guests          int    `json:"guests"`
	Nights          int    `json:"nights"`
	TotalPrice      string `json:"total_price"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

// Publisher hands booking events to the delivery pipeline. Publishing is
// best-effort from the caller's point of view: failures are logged, never
// surfaced to the guest.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}
