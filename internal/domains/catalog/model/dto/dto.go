package dto

import (
	"nyumba/internal/domains/catalog/model"
	gDto "nyumba/shared/dto"
	gModel "nyumba/shared/model"
	"nyumba/shared/timezone"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

type CreateRoomTypeRequest struct {
	Name        string `json:"name"        validate:"required,max=50"`
	Slug        string `json:"slug"        validate:"omitempty,max=50"`
	Description string `json:"description" validate:"omitempty"`
	BasePrice   string `json:"base_price"  validate:"required"`
	Capacity    int    `json:"capacity"    validate:"required,gte=1"`
	Image       string `json:"image"       validate:"omitempty,mimetypes=image/png image/jpeg image/webp,maxfilesize=5"`
}

func (c *CreateRoomTypeRequest) ToModel(basePrice decimal.Decimal, imageURL string) model.RoomType {
	typeSlug := c.Slug
	if typeSlug == "" {
		typeSlug = slug.Make(c.Name)
	}

	roomType := model.RoomType{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Slug:        typeSlug,
		Description: c.Description,
		BasePrice:   basePrice,
		Capacity:    c.Capacity,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}

	if imageURL != "" {
		roomType.ImageURL.String = imageURL
		roomType.ImageURL.Valid = true
	}

	return roomType
}

type UpdateRoomTypeRequest struct {
	Name        string `json:"name"        validate:"omitempty,max=50"`
	Description string `json:"description" validate:"omitempty"`
	BasePrice   string `json:"base_price"  validate:"omitempty"`
	Capacity    int    `json:"capacity"    validate:"omitempty,gte=1"`
}

type RoomTypeResponse struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Slug                string `json:"slug"`
	Description         string `json:"description"`
	BasePrice           string `json:"base_price"`
	Capacity            int    `json:"capacity"`
	ImageURL            string `json:"image,omitempty"`
	AvailableRoomsCount int    `json:"available_rooms_count"`
}

func (r *RoomTypeResponse) FromModel(roomType model.RoomType, availableRooms int) {
	r.ID = roomType.ID
	r.Name = roomType.Name
	r.Slug = roomType.Slug
	r.Description = roomType.Description
	r.BasePrice = roomType.BasePrice.StringFixed(2)
	r.Capacity = roomType.Capacity
	r.AvailableRoomsCount = availableRooms

	if roomType.ImageURL.Valid {
		r.ImageURL = roomType.ImageURL.String
	}
}

type GetRoomTypesResponse struct {
	RoomTypes []RoomTypeResponse `json:"room_types"`
}

type CreateRoomRequest struct {
	RoomTypeID string `json:"room_type_id" validate:"required,uuid4"`
	Number     string `json:"number"       validate:"required,max=32"`
}

func (c *CreateRoomRequest) ToModel() model.Room {
	return model.Room{
		ID:         uuid.NewString(),
		RoomTypeID: c.RoomTypeID,
		Number:     c.Number,
		IsActive:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type RoomResponse struct {
	ID          string `json:"id"`
	RoomTypeID  string `json:"room_type_id"`
	Number      string `json:"number"`
	IsActive    bool   `json:"is_active"`
	IsAvailable *bool  `json:"is_available,omitempty"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(room model.Room) {
	r.ID = room.ID
	r.RoomTypeID = room.RoomTypeID
	r.Number = room.Number
	r.IsActive = room.IsActive
	r.Metadata.FromModel(room.Metadata)
}

type GetRoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}
