package dto_test

import (
	"database/sql"
	"testing"

	"nyumba/internal/domains/catalog/model"
	"nyumba/internal/domains/catalog/model/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCreateRoomTypeRequest_ToModel(t *testing.T) {
	req := dto.CreateRoomTypeRequest{
		Name:        "Deluxe Ocean View",
		Description: "King bed with a balcony",
		BasePrice:   "150.00",
		Capacity:    2,
	}

	basePrice := decimal.NewFromInt(150)
	roomType := req.ToModel(basePrice, "https://cdn.example.com/deluxe.webp")

	assert.NotEmpty(t, roomType.ID, "expected ID to be generated")
	assert.Equal(t, req.Name, roomType.Name)
	assert.Equal(t, "deluxe-ocean-view", roomType.Slug, "expected slug derived from name")
	assert.Equal(t, req.Description, roomType.Description)
	assert.True(t, basePrice.Equal(roomType.BasePrice))
	assert.Equal(t, req.Capacity, roomType.Capacity)
	assert.True(t, roomType.ImageURL.Valid)
	assert.Equal(t, "https://cdn.example.com/deluxe.webp", roomType.ImageURL.String)
	assert.False(t, roomType.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestCreateRoomTypeRequest_ToModel_ExplicitSlug(t *testing.T) {
	req := dto.CreateRoomTypeRequest{
		Name:      "Deluxe Ocean View",
		Slug:      "deluxe",
		BasePrice: "150.00",
		Capacity:  2,
	}

	roomType := req.ToModel(decimal.NewFromInt(150), "")

	assert.Equal(t, "deluxe", roomType.Slug)
	assert.False(t, roomType.ImageURL.Valid, "expected no image URL")
}

func TestRoomTypeResponse_FromModel(t *testing.T) {
	roomType := model.RoomType{
		ID:          "type-1",
		Name:        "Deluxe Ocean View",
		Slug:        "deluxe-ocean-view",
		Description: "King bed with a balcony",
		BasePrice:   decimal.RequireFromString("150.5"),
		Capacity:    2,
		ImageURL:    sql.NullString{String: "https://cdn.example.com/deluxe.webp", Valid: true},
	}

	var response dto.RoomTypeResponse
	response.FromModel(roomType, 3)

	assert.Equal(t, roomType.ID, response.ID)
	assert.Equal(t, roomType.Slug, response.Slug)
	assert.Equal(t, "150.50", response.BasePrice)
	assert.Equal(t, roomType.ImageURL.String, response.ImageURL)
	assert.Equal(t, 3, response.AvailableRoomsCount)
}

func TestCreateRoomRequest_ToModel(t *testing.T) {
	req := dto.CreateRoomRequest{
		RoomTypeID: "type-1",
		Number:     "204",
	}

	room := req.ToModel()

	assert.NotEmpty(t, room.ID, "expected ID to be generated")
	assert.Equal(t, req.RoomTypeID, room.RoomTypeID)
	assert.Equal(t, req.Number, room.Number)
	assert.True(t, room.IsActive, "expected new rooms to start active")
	assert.False(t, room.CreatedAt.IsZero(), "expected CreatedAt to be set")
}
