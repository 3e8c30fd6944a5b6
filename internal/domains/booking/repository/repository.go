package repository

//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mocks/repository_mock.go -package=booking_repo_mock

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"nyumba/infras/otel"
	"nyumba/infras/postgres"
	"nyumba/internal/domains/booking/model"
	"nyumba/shared/constant"
	gDto "nyumba/shared/dto"
	"nyumba/shared/failure"
	"nyumba/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const bookingColumns = `id, full_name, email, phone, room_type_id, room_id, check_in, check_out,
		guests, status, special_requests, created_at, modified_at`

// Overlap of two stays is half-open: a booking blocks the nights from its
// check-in up to, but not including, its check-out day. Every conflict query
// below encodes that as check_in < $out AND check_out > $in.
const overlapCondition = `b.check_in < $3 AND b.check_out > $2`

type Booking interface {
	Insert(ctx context.Context, booking model.Booking) error
	GetByID(ctx context.Context, id string) (model.Booking, error)
	GetByIDForUpdate(ctx context.Context, tx *sqlx.Tx, id string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, status string) ([]model.Booking, error)
	Count(ctx context.Context, status string) (int, error)
	ConflictingRoomIDs(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) ([]string, error)
	ConflictingRoomIDsForUpdate(ctx context.Context, tx *sqlx.Tx, roomTypeID string, checkIn, checkOut time.Time) ([]string, error)
	RoomOverlapExists(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error)
	AssignRoom(ctx context.Context, tx *sqlx.Tx, bookingID, roomID, status string) error
	UpdateStatus(ctx context.Context, tx *sqlx.Tx, bookingID, status string) error
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Insert")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `
		INSERT INTO bookings (id, full_name, email, phone, room_type_id, room_id, check_in, check_out,
			guests, status, special_requests, created_at, modified_at)
		VALUES (:id, :full_name, :email, :phone, :room_type_id, :room_id, :check_in, :check_out,
			:guests, :status, :special_requests, :created_at, :modified_at)`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = r.db.Write.NamedExecContext(ctx, query, booking); err != nil {
		log.Error().Err(err).Msg("failed to insert booking")

		return fmt.Errorf("failed to insert booking: %w", err)
	}

	return nil
}

func (r *repositoryImpl) GetByID(ctx context.Context, id string) (booking model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetByID")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE id = $1`, bookingColumns)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = r.db.Read.GetContext(ctx, &booking, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return booking, failure.NotFound(model.EntityName)
		}

		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	return booking, nil
}

// GetByIDForUpdate locks the booking row for the rest of the transaction so
// concurrent lifecycle operations on the same booking serialize.
func (r *repositoryImpl) GetByIDForUpdate(ctx context.Context, tx *sqlx.Tx, id string) (booking model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetByIDForUpdate")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE id = $1 FOR UPDATE`, bookingColumns)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = tx.GetContext(ctx, &booking, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return booking, failure.NotFound(model.EntityName)
		}

		log.Error().Err(err).Msg("failed to lock booking")

		return booking, fmt.Errorf("failed to lock booking: %w", err)
	}

	return booking, nil
}

func (r *repositoryImpl) GetAll(ctx context.Context, params gDto.QueryParams, status string) (bookings []model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(`SELECT %s FROM bookings`, bookingColumns)
	args := []any{}

	if status != constant.Empty {
		query += " WHERE status = $1"
		args = append(args, status)
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, params.Limit, params.Offset())
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = r.db.Read.SelectContext(ctx, &bookings, query, args...); err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	return bookings, nil
}

func (r *repositoryImpl) Count(ctx context.Context, status string) (total int, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT COUNT(*) FROM bookings`
	args := []any{}

	if status != constant.Empty {
		query += " WHERE status = $1"
		args = append(args, status)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = r.db.Read.GetContext(ctx, &total, query, args...); err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	return total, nil
}

func (r *repositoryImpl) ConflictingRoomIDs(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) (roomIDs []string, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".ConflictingRoomIDs")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(`
		SELECT DISTINCT b.room_id
		FROM bookings b
		WHERE b.room_type_id = $1
			AND b.room_id IS NOT NULL
			AND b.status IN ('%s', '%s')
			AND %s`,
		model.StatusConfirmed, model.StatusCheckedIn, overlapCondition)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = r.db.Read.SelectContext(ctx, &roomIDs, query, roomTypeID, checkIn, checkOut); err != nil {
		log.Error().Err(err).Msg("failed to get conflicting rooms")

		return nil, fmt.Errorf("failed to get conflicting rooms: %w", err)
	}

	return roomIDs, nil
}

// ConflictingRoomIDsForUpdate locks every blocking booking row that overlaps
// the window. DISTINCT cannot be combined with FOR UPDATE, so the caller
// deduplicates the returned ids.
func (r *repositoryImpl) ConflictingRoomIDsForUpdate(ctx context.Context, tx *sqlx.Tx, roomTypeID string, checkIn, checkOut time.Time) (roomIDs []string, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".ConflictingRoomIDsForUpdate")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(`
		SELECT b.room_id
		FROM bookings b
		WHERE b.room_type_id = $1
			AND b.room_id IS NOT NULL
			AND b.status IN ('%s', '%s')
			AND %s
		FOR UPDATE OF b`,
		model.StatusConfirmed, model.StatusCheckedIn, overlapCondition)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	locked := []string{}
	if err = tx.SelectContext(ctx, &locked, query, roomTypeID, checkIn, checkOut); err != nil {
		log.Error().Err(err).Msg("failed to lock conflicting rooms")

		return nil, fmt.Errorf("failed to lock conflicting rooms: %w", err)
	}

	seen := make(map[string]struct{}, len(locked))
	for _, id := range locked {
		if _, ok := seen[id]; ok {
			continue
		}

		seen[id] = struct{}{}
		roomIDs = append(roomIDs, id)
	}

	return roomIDs, nil
}

func (r *repositoryImpl) RoomOverlapExists(ctx context.Context, roomID string, checkIn, checkOut time.Time) (exists bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".RoomOverlapExists")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(`
		SELECT EXISTS (
			SELECT 1
			FROM bookings b
			WHERE b.room_id = $1
				AND b.status IN ('%s', '%s')
				AND %s
		)`,
		model.StatusConfirmed, model.StatusCheckedIn, overlapCondition)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = r.db.Read.GetContext(ctx, &exists, query, roomID, checkIn, checkOut); err != nil {
		log.Error().Err(err).Msg("failed to check room overlap")

		return false, fmt.Errorf("failed to check room overlap: %w", err)
	}

	return exists, nil
}

func (r *repositoryImpl) AssignRoom(ctx context.Context, tx *sqlx.Tx, bookingID, roomID, status string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".AssignRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `UPDATE bookings SET room_id = $1, status = $2, modified_at = $3 WHERE id = $4`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = tx.ExecContext(ctx, query, roomID, status, timezone.Now(), bookingID); err != nil {
		log.Error().Err(err).Msg("failed to assign room")

		return fmt.Errorf("failed to assign room: %w", err)
	}

	return nil
}

func (r *repositoryImpl) UpdateStatus(ctx context.Context, tx *sqlx.Tx, bookingID, status string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `UPDATE bookings SET status = $1, modified_at = $2 WHERE id = $3`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = tx.ExecContext(ctx, query, status, timezone.Now(), bookingID); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	return nil
}
