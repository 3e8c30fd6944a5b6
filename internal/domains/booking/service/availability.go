package service

//go:generate go run go.uber.org/mock/mockgen -source=availability.go -destination=mocks/availability_mock.go -package=booking_service_mock

import (
	"context"
	"time"

	"nyumba/infras/otel"
	"nyumba/internal/domains/booking/repository"
	catalogModel "nyumba/internal/domains/catalog/model"
	catalogRepo "nyumba/internal/domains/catalog/repository"
	"nyumba/shared/constant"

	"github.com/jmoiron/sqlx"
)

// Availability answers which rooms of a type are free for a stay window.
// A room is free when it is active and no confirmed or checked-in booking
// overlaps the window. Results keep the repository's id ordering, so the
// first candidate is stable across identical calls.
type Availability interface {
	AvailableRooms(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) ([]catalogModel.Room, error)
	AvailableRoomsTx(ctx context.Context, tx *sqlx.Tx, roomTypeID string, checkIn, checkOut time.Time) ([]catalogModel.Room, error)
	AvailableRoomCount(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) (int, error)
	IsRoomAvailable(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error)
}

type availabilityImpl struct {
	bookingRepo repository.Booking
	catalogRepo catalogRepo.Catalog
	otel        otel.Otel
}

func NewAvailability(bookingRepo repository.Booking, catalogRepo catalogRepo.Catalog, otel otel.Otel) Availability {
	return &availabilityImpl{
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		otel:        otel,
	}
}

func (a *availabilityImpl) AvailableRooms(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) (rooms []catalogModel.Room, err error) {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AvailableRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	active, err := a.catalogRepo.GetActiveRooms(ctx, roomTypeID)
	if err != nil {
		return nil, err
	}

	conflicting, err := a.bookingRepo.ConflictingRoomIDs(ctx, roomTypeID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	return subtract(active, conflicting), nil
}

// AvailableRoomsTx recomputes availability inside the caller's transaction.
// The room rows of the type are locked first, so two transactions confirming
// overlapping stays of the same type serialize here even though they lock
// different booking rows; the second one then reads the first's committed
// assignment when it collects the conflicting bookings.
func (a *availabilityImpl) AvailableRoomsTx(ctx context.Context, tx *sqlx.Tx, roomTypeID string, checkIn, checkOut time.Time) (rooms []catalogModel.Room, err error) {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AvailableRoomsTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	active, err := a.catalogRepo.GetActiveRoomsForUpdate(ctx, tx, roomTypeID)
	if err != nil {
		return nil, err
	}

	conflicting, err := a.bookingRepo.ConflictingRoomIDsForUpdate(ctx, tx, roomTypeID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	return subtract(active, conflicting), nil
}

func (a *availabilityImpl) AvailableRoomCount(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) (int, error) {
	rooms, err := a.AvailableRooms(ctx, roomTypeID, checkIn, checkOut)
	if err != nil {
		return 0, err
	}

	return len(rooms), nil
}

func (a *availabilityImpl) IsRoomAvailable(ctx context.Context, roomID string, checkIn, checkOut time.Time) (available bool, err error) {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IsRoomAvailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, err := a.catalogRepo.GetRoom(ctx, roomID)
	if err != nil {
		return false, err
	}

	if !room.IsActive {
		return false, nil
	}

	overlaps, err := a.bookingRepo.RoomOverlapExists(ctx, roomID, checkIn, checkOut)
	if err != nil {
		return false, err
	}

	return !overlaps, nil
}

// subtract removes the conflicting room ids from the active list, keeping
// the repository's id ordering.
func subtract(active []catalogModel.Room, conflicting []string) []catalogModel.Room {
	taken := make(map[string]struct{}, len(conflicting))
	for _, id := range conflicting {
		taken[id] = struct{}{}
	}

	rooms := make([]catalogModel.Room, 0, len(active))

	for _, room := range active {
		if _, ok := taken[room.ID]; ok {
			continue
		}

		rooms = append(rooms, room)
	}

	return rooms
}
