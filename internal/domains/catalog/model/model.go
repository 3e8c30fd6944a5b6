package model

import (
	"database/sql"
	"nyumba/shared/model"

	"github.com/shopspring/decimal"
)

const (
	RoomTypeTableName  = "room_types"
	RoomTypeEntityName = "room type"

	FieldRoomTypeID   = "id"
	FieldName         = "name"
	FieldSlug         = "slug"
	FieldDescription  = "description"
	FieldBasePrice    = "base_price"
	FieldCapacity     = "capacity"
	FieldImageURL     = "image_url"
)

const (
	RoomTableName  = "rooms"
	RoomEntityName = "room"

	FieldRoomID     = "id"
	FieldRoomTypeFK = "room_type_id"
	FieldNumber     = "number"
	FieldIsActive   = "is_active"
)

// RoomType describes a bookable category of rooms. The base price is the
// nightly rate; capacity caps the guest count a booking may request.
type RoomType struct {
	ID          string          `db:"id"`
	Name        string          `db:"name"`
	Slug        string          `db:"slug"`
	Description string          `db:"description"`
	BasePrice   decimal.Decimal `db:"base_price"`
	Capacity    int             `db:"capacity"`
	ImageURL    sql.NullString  `db:"image_url"`
	model.Metadata
}

// Room is a physical room. Only active rooms are eligible for assignment;
// deactivating a room never touches bookings that already reference it.
type Room struct {
	ID         string `db:"id"`
	RoomTypeID string `db:"room_type_id"`
	Number     string `db:"number"`
	IsActive   bool   `db:"is_active"`
	model.Metadata
}
