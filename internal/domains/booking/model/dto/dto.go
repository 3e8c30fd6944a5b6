package dto

import (
	"time"

	"nyumba/internal/domains/booking/model"
	"nyumba/shared"
	"nyumba/shared/constant"
	gDto "nyumba/shared/dto"
	"nyumba/shared/failure"
	gModel "nyumba/shared/model"
	"nyumba/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateBookingRequest struct {
	FullName        string `json:"full_name"        validate:"required,max=100"`
	Email           string `json:"email"            validate:"required,email"`
	Phone           string `json:"phone"            validate:"required,max=20"`
	RoomTypeID      string `json:"room_type_id"     validate:"required,uuid4"`
	CheckIn         string `json:"check_in"         validate:"required,dateformat"`
	CheckOut        string `json:"check_out"        validate:"required,dateformat"`
	Guests          int    `json:"guests"           validate:"required,gte=1"`
	SpecialRequests string `json:"special_requests" validate:"omitempty,max=500"`
}

func (c *CreateBookingRequest) Dates() (checkIn, checkOut time.Time, err error) {
	return parseStayWindow(c.CheckIn, c.CheckOut)
}

func (c *CreateBookingRequest) ToModel(checkIn, checkOut time.Time) model.Booking {
	return model.Booking{
		ID:              uuid.NewString(),
		FullName:        c.FullName,
		Email:           c.Email,
		Phone:           c.Phone,
		RoomTypeID:      c.RoomTypeID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          c.Guests,
		Status:          model.StatusPending,
		SpecialRequests: c.SpecialRequests,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type ConfirmBookingRequest struct {
	RoomID string `json:"room_id" validate:"omitempty,uuid4"`
}

type AvailabilityRequest struct {
	RoomTypeID string `json:"room_type_id" validate:"required,uuid4"`
	CheckIn    string `json:"check_in"     validate:"required,dateformat"`
	CheckOut   string `json:"check_out"    validate:"required,dateformat"`
}

func (a *AvailabilityRequest) Dates() (checkIn, checkOut time.Time, err error) {
	return parseStayWindow(a.CheckIn, a.CheckOut)
}

type AvailabilityResponse struct {
	Available      bool   `json:"available"`
	AvailableCount int    `json:"available_count"`
	RoomType       string `json:"room_type"`
	RoomTypeID     string `json:"room_type_id"`
	CheckIn        string `json:"check_in"`
	CheckOut       string `json:"check_out"`
	Nights         int    `json:"nights"`
	PricePerNight  string `json:"price_per_night"`
	TotalPrice     string `json:"total_price"`
}

type BookingResponse struct {
	ID              string `json:"id"`
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	RoomTypeID      string `json:"room_type_id"`
	RoomID          string `json:"room_id,omitempty"`
	CheckIn         string `json:"check_in"`
	CheckOut        string `json:"check_out"`
	Guests          int    `json:"guests"`
	Status          string `json:"status"`
	SpecialRequests string `json:"special_requests,omitempty"`
	Nights          int    `json:"nights"`
	TotalPrice      string `json:"total_price"`
	gDto.Metadata
}

func (b *BookingResponse) FromModel(booking model.Booking, basePrice decimal.Decimal) {
	b.ID = booking.ID
	b.FullName = booking.FullName
	b.Email = booking.Email
	b.Phone = booking.Phone
	b.RoomTypeID = booking.RoomTypeID
	b.CheckIn = booking.CheckIn.Format(constant.DateFormat)
	b.CheckOut = booking.CheckOut.Format(constant.DateFormat)
	b.Guests = booking.Guests
	b.Status = booking.Status
	b.SpecialRequests = booking.SpecialRequests
	b.Nights = booking.Nights()
	b.TotalPrice = booking.TotalPrice(basePrice).StringFixed(2)
	b.Metadata.FromModel(booking.Metadata)

	if booking.RoomID.Valid {
		b.RoomID = booking.RoomID.String
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	Total     int               `json:"total"`
	TotalPage int               `json:"total_page"`
}

func (g *GetBookingsResponse) FromModels(bookings []model.Booking, prices map[string]decimal.Decimal, total, limit int) {
	g.Bookings = make([]BookingResponse, 0, len(bookings))
	g.Total = total
	g.TotalPage = shared.CalculateTotalPage(total, limit)

	for _, booking := range bookings {
		var item BookingResponse
		item.FromModel(booking, prices[booking.RoomTypeID])
		g.Bookings = append(g.Bookings, item)
	}
}

func parseStayWindow(checkInStr, checkOutStr string) (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(constant.DateFormat, checkInStr)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("check_in must be a valid date in YYYY-MM-DD format")
	}

	checkOut, err = time.Parse(constant.DateFormat, checkOutStr)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("check_out must be a valid date in YYYY-MM-DD format")
	}

	return checkIn, checkOut, nil
}
