package repository

//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mocks/repository_mock.go -package=catalog_repo_mock

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"nyumba/infras/otel"
	"nyumba/infras/postgres"
	"nyumba/internal/domains/catalog/model"
	"nyumba/shared/constant"
	"nyumba/shared/failure"
	"nyumba/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

type Catalog interface {
	InsertRoomType(ctx context.Context, roomType model.RoomType) error
	GetRoomType(ctx context.Context, id string) (model.RoomType, error)
	GetRoomTypeBySlug(ctx context.Context, slug string) (model.RoomType, error)
	GetRoomTypes(ctx context.Context) ([]model.RoomType, error)
	UpdateRoomType(ctx context.Context, id string, changes map[string]any) error
	InsertRoom(ctx context.Context, room model.Room) error
	GetRoom(ctx context.Context, id string) (model.Room, error)
	GetRooms(ctx context.Context, roomTypeID string) ([]model.Room, error)
	GetActiveRooms(ctx context.Context, roomTypeID string) ([]model.Room, error)
	GetActiveRoomsForUpdate(ctx context.Context, tx *sqlx.Tx, roomTypeID string) ([]model.Room, error)
	DeactivateRoom(ctx context.Context, id string) error
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Catalog {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (r *repositoryImpl) InsertRoomType(ctx context.Context, roomType model.RoomType) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".InsertRoomType")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `
		INSERT INTO room_types (id, name, slug, description, base_price, capacity, image_url, created_at, modified_at)
		VALUES (:id, :name, :slug, :description, :base_price, :capacity, :image_url, :created_at, :modified_at)`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = r.db.Write.NamedExecContext(ctx, query, roomType); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return failure.Conflict(fmt.Sprintf("room type with slug %q already exists", roomType.Slug))
		}

		log.Error().Err(err).Msg("failed to insert room type")

		return fmt.Errorf("failed to insert room type: %w", err)
	}

	return nil
}

func (r *repositoryImpl) GetRoomType(ctx context.Context, id string) (roomType model.RoomType, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetRoomType")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `
		SELECT id, name, slug, description, base_price, capacity, image_url, created_at, modified_at
		FROM room_types
		WHERE id = $1`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = r.db.Read.GetContext(ctx, &roomType, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return roomType, failure.NotFound(model.RoomTypeEntityName)
		}

		log.Error().Err(err).Msg("failed to get room type")

		return roomType, fmt.Errorf("failed to get room type: %w", err)
	}

	return roomType, nil
}

func (r *repositoryImpl) GetRoomTypeBySlug(ctx context.Context, slug string) (roomType model.RoomType, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetRoomTypeBySlug")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `
		SELECT id, name, slug, description, base_price, capacity, image_url, created_at, modified_at
		FROM room_types
		WHERE slug = $1`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = r.db.Read.GetContext(ctx, &roomType, query, slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return roomType, failure.NotFound(model.RoomTypeEntityName)
		}

		log.Error().Err(err).Msg("failed to get room type by slug")

		return roomType, fmt.Errorf("failed to get room type by slug: %w", err)
	}

	return roomType, nil
}

func (r *repositoryImpl) GetRoomTypes(ctx context.Context) (roomTypes []model.RoomType, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetRoomTypes")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `
		SELECT id, name, slug, description, base_price, capacity, image_url, created_at, modified_at
		FROM room_types
		ORDER BY name ASC`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = r.db.Read.SelectContext(ctx, &roomTypes, query); err != nil {
		log.Error().Err(err).Msg("failed to get room types")

		return nil, fmt.Errorf("failed to get room types: %w", err)
	}

	return roomTypes, nil
}

func (r *repositoryImpl) UpdateRoomType(ctx context.Context, id string, changes map[string]any) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".UpdateRoomType")
	defer scope.End()
	defer scope.TraceIfError(err)

	if len(changes) == 0 {
		return nil
	}

	changes[constant.FieldModifiedAt] = timezone.Now()

	query := "UPDATE room_types SET "
	args := make([]any, 0, len(changes)+1)

	i := 1
	for column, value := range changes {
		if i > 1 {
			query += ", "
		}

		query += fmt.Sprintf("%s = $%d", column, i)
		args = append(args, value)
		i++
	}

	query += fmt.Sprintf(" WHERE id = $%d", i)
	args = append(args, id)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := r.db.Write.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error().Err(err).Msg("failed to update room type")

		return fmt.Errorf("failed to update room type: %w", err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return failure.NotFound(model.RoomTypeEntityName)
	}

	return nil
}

func (r *repositoryImpl) InsertRoom(ctx context.Context, room model.Room) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".InsertRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `
		INSERT INTO rooms (id, room_type_id, number, is_active, created_at, modified_at)
		VALUES (:id, :room_type_id, :number, :is_active, :created_at, :modified_at)`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = r.db.Write.NamedExecContext(ctx, query, room); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch string(pqErr.Code) {
			case constant.PqErrorCodeUniqueViolation:
				return failure.Conflict(fmt.Sprintf("room number %q already exists", room.Number))
			case constant.PqErrorCodeFkViolation:
				return failure.NotFound(model.RoomTypeEntityName)
			}
		}

		log.Error().Err(err).Msg("failed to insert room")

		return fmt.Errorf("failed to insert room: %w", err)
	}

	return nil
}

func (r *repositoryImpl) GetRoom(ctx context.Context, id string) (room model.Room, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `
		SELECT id, room_type_id, number, is_active, created_at, modified_at
		FROM rooms
		WHERE id = $1`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = r.db.Read.GetContext(ctx, &room, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return room, failure.NotFound(model.RoomEntityName)
		}

		log.Error().Err(err).Msg("failed to get room")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	return room, nil
}

func (r *repositoryImpl) GetRooms(ctx context.Context, roomTypeID string) (rooms []model.Room, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `
		SELECT id, room_type_id, number, is_active, created_at, modified_at
		FROM rooms`
	args := []any{}

	if roomTypeID != "" {
		query += " WHERE room_type_id = $1"
		args = append(args, roomTypeID)
	}

	query += " ORDER BY number ASC"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = r.db.Read.SelectContext(ctx, &rooms, query, args...); err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	return rooms, nil
}

// GetActiveRooms returns the active rooms of a room type ordered by id so
// that room assignment picks the same candidate for identical inputs.
func (r *repositoryImpl) GetActiveRooms(ctx context.Context, roomTypeID string) (rooms []model.Room, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetActiveRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `
		SELECT id, room_type_id, number, is_active, created_at, modified_at
		FROM rooms
		WHERE room_type_id = $1 AND is_active = TRUE
		ORDER BY id ASC`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = r.db.Read.SelectContext(ctx, &rooms, query, roomTypeID); err != nil {
		log.Error().Err(err).Msg("failed to get active rooms")

		return nil, fmt.Errorf("failed to get active rooms: %w", err)
	}

	return rooms, nil
}

// GetActiveRoomsForUpdate locks the active rooms of a room type for the rest
// of the transaction. Concurrent confirmations of the same room type contend
// on these rows, so the second transaction waits for the first to commit and
// then sees its assignment when it re-reads the conflicting bookings.
func (r *repositoryImpl) GetActiveRoomsForUpdate(ctx context.Context, tx *sqlx.Tx, roomTypeID string) (rooms []model.Room, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetActiveRoomsForUpdate")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `
		SELECT id, room_type_id, number, is_active, created_at, modified_at
		FROM rooms
		WHERE room_type_id = $1 AND is_active = TRUE
		ORDER BY id ASC
		FOR UPDATE`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = tx.SelectContext(ctx, &rooms, query, roomTypeID); err != nil {
		log.Error().Err(err).Msg("failed to lock active rooms")

		return nil, fmt.Errorf("failed to lock active rooms: %w", err)
	}

	return rooms, nil
}

func (r *repositoryImpl) DeactivateRoom(ctx context.Context, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".DeactivateRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `UPDATE rooms SET is_active = FALSE, modified_at = $1 WHERE id = $2`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := r.db.Write.ExecContext(ctx, query, timezone.Now(), id)
	if err != nil {
		log.Error().Err(err).Msg("failed to deactivate room")

		return fmt.Errorf("failed to deactivate room: %w", err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return failure.NotFound(model.RoomEntityName)
	}

	return nil
}
