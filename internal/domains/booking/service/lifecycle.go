package service

import (
	"context"

	"nyumba/internal/domains/booking/model"
	"nyumba/internal/domains/booking/model/dto"
	catalogModel "nyumba/internal/domains/catalog/model"
	"nyumba/internal/notification"
	"nyumba/shared"
	"nyumba/shared/constant"
	"nyumba/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Confirm moves a pending booking to confirmed and assigns it a concrete
// room. The whole decision runs in one transaction: the booking row is
// locked, then the room rows of the type and every blocking booking that
// overlaps the window, so two concurrent confirmations cannot hand out the
// same room. When the request names a room it must belong to the booking's
// type and be free for the window; otherwise the first available room by id
// is taken.
func (s *serviceImpl) Confirm(ctx context.Context, id string, req dto.ConfirmBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	var (
		booking    model.Booking
		roomType   catalogModel.RoomType
		roomNumber string
	)

	err = s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		booking, err = s.repo.GetByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		if !model.CanTransition(booking.Status, model.StatusConfirmed) {
			return model.ErrInvalidTransition
		}

		roomType, err = s.catalogRepo.GetRoomType(ctx, booking.RoomTypeID)
		if err != nil {
			return err
		}

		if req.RoomID != constant.Empty {
			room, err := s.catalogRepo.GetRoom(ctx, req.RoomID)
			if err != nil {
				return err
			}

			if room.RoomTypeID != booking.RoomTypeID {
				return failure.BadRequestFromString("room does not belong to the booking's room type")
			}
		}

		rooms, err := s.availability.AvailableRoomsTx(ctx, tx, booking.RoomTypeID, booking.CheckIn, booking.CheckOut)
		if err != nil {
			return err
		}

		roomID := constant.Empty

		if req.RoomID != constant.Empty {
			for _, room := range rooms {
				if room.ID == req.RoomID {
					roomID = room.ID
					roomNumber = room.Number

					break
				}
			}
		} else if len(rooms) > 0 {
			roomID = rooms[0].ID
			roomNumber = rooms[0].Number
		}

		if roomID == constant.Empty {
			return model.ErrRoomUnavailable
		}

		if err := s.repo.AssignRoom(ctx, tx, booking.ID, roomID, model.StatusConfirmed); err != nil {
			return err
		}

		booking.Status = model.StatusConfirmed
		booking.RoomID.String = roomID
		booking.RoomID.Valid = true

		return nil
	})
	if err != nil {
		return res, err
	}

	return s.finishTransition(ctx, booking, roomType, notification.EventBookingConfirmed, roomNumber), nil
}

// Cancel releases a booking. Confirmed and checked-in cancellations free
// the room for the remaining nights immediately.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, roomType, err := s.transition(ctx, id, model.StatusCancelled)
	if err != nil {
		return res, err
	}

	return s.finishTransition(ctx, booking, roomType, notification.EventBookingCancelled, constant.Empty), nil
}

func (s *serviceImpl) CheckIn(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, roomType, err := s.transition(ctx, id, model.StatusCheckedIn)
	if err != nil {
		return res, err
	}

	return s.finishTransition(ctx, booking, roomType, constant.Empty, constant.Empty), nil
}

func (s *serviceImpl) CheckOut(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOut")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, roomType, err := s.transition(ctx, id, model.StatusCheckedOut)
	if err != nil {
		return res, err
	}

	return s.finishTransition(ctx, booking, roomType, constant.Empty, constant.Empty), nil
}

// transition locks the booking, checks the status machine, and applies the
// new status in one transaction. The room type is read before the mutation
// so a missing type aborts before anything is written.
func (s *serviceImpl) transition(ctx context.Context, id, to string) (booking model.Booking, roomType catalogModel.RoomType, err error) {
	err = s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		booking, err = s.repo.GetByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		if !model.CanTransition(booking.Status, to) {
			return model.ErrInvalidTransition
		}

		roomType, err = s.catalogRepo.GetRoomType(ctx, booking.RoomTypeID)
		if err != nil {
			return err
		}

		if err := s.repo.UpdateStatus(ctx, tx, booking.ID, to); err != nil {
			return err
		}

		booking.Status = to

		return nil
	})

	return booking, roomType, err
}

// finishTransition handles the post-commit work shared by every lifecycle
// operation: cache invalidation, the optional guest notification, and the
// response. The transition has already committed, so nothing here can fail
// the caller.
func (s *serviceImpl) finishTransition(ctx context.Context, booking model.Booking, roomType catalogModel.RoomType, eventType, roomNumber string) (res dto.BookingResponse) {
	if eventType != constant.Empty {
		s.notify(ctx, eventType, booking, roomType, roomNumber)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, booking.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBookings)
		shared.InvalidateCaches(c, s.cache, cacheAvailability)
	}()

	res.FromModel(booking, roomType.BasePrice)

	return res
}
