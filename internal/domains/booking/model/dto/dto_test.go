package dto_test

import (
	"database/sql"
	"net/http"
	"testing"
	"time"

	"nyumba/internal/domains/booking/model"
	"nyumba/internal/domains/booking/model/dto"
	"nyumba/shared/failure"
	gModel "nyumba/shared/model"
	"nyumba/shared/timezone"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCreateBookingRequest_Dates(t *testing.T) {
	req := dto.CreateBookingRequest{
		CheckIn:  "2027-06-10",
		CheckOut: "2027-06-13",
	}

	checkIn, checkOut, err := req.Dates()

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2027, 6, 10, 0, 0, 0, 0, time.UTC), checkIn)
	assert.Equal(t, time.Date(2027, 6, 13, 0, 0, 0, 0, time.UTC), checkOut)
}

func TestCreateBookingRequest_Dates_Invalid(t *testing.T) {
	tests := []struct {
		name string
		req  dto.CreateBookingRequest
	}{
		{
			name: "malformed check_in",
			req:  dto.CreateBookingRequest{CheckIn: "10/06/2027", CheckOut: "2027-06-13"},
		},
		{
			name: "malformed check_out",
			req:  dto.CreateBookingRequest{CheckIn: "2027-06-10", CheckOut: "next week"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := tt.req.Dates()

			assert.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		FullName:        "Asha Mwangi",
		Email:           "asha@example.com",
		Phone:           "+254700000001",
		RoomTypeID:      "type-1",
		Guests:          2,
		SpecialRequests: "late arrival",
	}

	checkIn := time.Date(2027, 6, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2027, 6, 13, 0, 0, 0, 0, time.UTC)

	booking := req.ToModel(checkIn, checkOut)

	assert.NotEmpty(t, booking.ID, "expected ID to be generated")
	assert.Equal(t, req.FullName, booking.FullName)
	assert.Equal(t, req.Email, booking.Email)
	assert.Equal(t, req.Phone, booking.Phone)
	assert.Equal(t, req.RoomTypeID, booking.RoomTypeID)
	assert.Equal(t, checkIn, booking.CheckIn)
	assert.Equal(t, checkOut, booking.CheckOut)
	assert.Equal(t, req.Guests, booking.Guests)
	assert.Equal(t, model.StatusPending, booking.Status)
	assert.False(t, booking.RoomID.Valid, "expected no room assigned at creation")
	assert.False(t, booking.CreatedAt.IsZero(), "expected CreatedAt to be set")
	assert.False(t, booking.ModifiedAt.IsZero(), "expected ModifiedAt to be set")
}

func TestBookingResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	booking := model.Booking{
		ID:         "booking-1",
		FullName:   "Asha Mwangi",
		Email:      "asha@example.com",
		Phone:      "+254700000001",
		RoomTypeID: "type-1",
		RoomID:     sql.NullString{String: "room-1", Valid: true},
		CheckIn:    time.Date(2027, 6, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2027, 6, 13, 0, 0, 0, 0, time.UTC),
		Guests:     2,
		Status:     model.StatusConfirmed,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}

	var response dto.BookingResponse
	response.FromModel(booking, decimal.NewFromInt(150))

	assert.Equal(t, booking.ID, response.ID)
	assert.Equal(t, "room-1", response.RoomID)
	assert.Equal(t, "2027-06-10", response.CheckIn)
	assert.Equal(t, "2027-06-13", response.CheckOut)
	assert.Equal(t, model.StatusConfirmed, response.Status)
	assert.Equal(t, 3, response.Nights)
	assert.Equal(t, "450.00", response.TotalPrice)
}

func TestBookingResponse_FromModel_Unassigned(t *testing.T) {
	booking := model.Booking{
		ID:         "booking-2",
		RoomTypeID: "type-1",
		CheckIn:    time.Date(2027, 6, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2027, 6, 11, 0, 0, 0, 0, time.UTC),
		Status:     model.StatusPending,
	}

	var response dto.BookingResponse
	response.FromModel(booking, decimal.NewFromInt(150))

	assert.Empty(t, response.RoomID)
	assert.Equal(t, 1, response.Nights)
	assert.Equal(t, "150.00", response.TotalPrice)
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	bookings := []model.Booking{
		{
			ID:         "booking-1",
			RoomTypeID: "type-1",
			CheckIn:    time.Date(2027, 6, 10, 0, 0, 0, 0, time.UTC),
			CheckOut:   time.Date(2027, 6, 12, 0, 0, 0, 0, time.UTC),
			Status:     model.StatusPending,
		},
		{
			ID:         "booking-2",
			RoomTypeID: "type-2",
			CheckIn:    time.Date(2027, 7, 1, 0, 0, 0, 0, time.UTC),
			CheckOut:   time.Date(2027, 7, 2, 0, 0, 0, 0, time.UTC),
			Status:     model.StatusConfirmed,
		},
	}

	prices := map[string]decimal.Decimal{
		"type-1": decimal.NewFromInt(100),
		"type-2": decimal.NewFromInt(250),
	}

	var response dto.GetBookingsResponse
	response.FromModels(bookings, prices, 12, 10)

	assert.Len(t, response.Bookings, 2)
	assert.Equal(t, 12, response.Total)
	assert.Equal(t, 2, response.TotalPage)
	assert.Equal(t, "200.00", response.Bookings[0].TotalPrice)
	assert.Equal(t, "250.00", response.Bookings[1].TotalPrice)
}
