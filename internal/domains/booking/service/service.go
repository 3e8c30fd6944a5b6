package service

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=mocks/service_mock.go -package=booking_service_mock

import (
	"context"
	"time"

	"nyumba/config"
	"nyumba/infras/otel"
	"nyumba/internal/domains/booking/model"
	"nyumba/internal/domains/booking/model/dto"
	"nyumba/internal/domains/booking/repository"
	catalogModel "nyumba/internal/domains/catalog/model"
	catalogRepo "nyumba/internal/domains/catalog/repository"
	"nyumba/internal/notification"
	"nyumba/shared"
	"nyumba/shared/cache"
	"nyumba/shared/constant"
	gDto "nyumba/shared/dto"
	"nyumba/shared/failure"
	"nyumba/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Transactor runs a function inside a database transaction. It is satisfied
// by *postgres.Connection.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

const (
	cacheGetBooking     = "booking:get"
	cacheGetAllBookings = "booking:get_all"
	cacheAvailability   = "availability"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	CheckAvailability(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, status string) (dto.GetBookingsResponse, error)
	Confirm(ctx context.Context, id string, req dto.ConfirmBookingRequest) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) (dto.BookingResponse, error)
	CheckIn(ctx context.Context, id string) (dto.BookingResponse, error)
	CheckOut(ctx context.Context, id string) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo         repository.Booking
	catalogRepo  catalogRepo.Catalog
	availability Availability
	db           Transactor
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	publisher    notification.Publisher
}

func New(
	repo repository.Booking,
	catalogRepo catalogRepo.Catalog,
	availability Availability,
	db Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	publisher notification.Publisher,
) Booking {
	return &serviceImpl{
		repo:         repo,
		catalogRepo:  catalogRepo,
		availability: availability,
		db:           db,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		publisher:    publisher,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, checkOut, err := req.Dates()
	if err != nil {
		return res, err
	}

	if err = validateStayWindow(checkIn, checkOut); err != nil {
		return res, err
	}

	roomType, err := s.catalogRepo.GetRoomType(ctx, req.RoomTypeID)
	if err != nil {
		return res, err
	}

	if req.Guests > roomType.Capacity {
		return res, failure.BadRequestFromString("guests exceeds the room type capacity")
	}

	booking := req.ToModel(checkIn, checkOut)

	if err = s.repo.Insert(ctx, booking); err != nil {
		return res, err
	}

	s.notify(ctx, notification.EventBookingRequested, booking, roomType, constant.Empty)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBookings)
	}()

	res.FromModel(booking, roomType.BasePrice)

	return res, nil
}

func (s *serviceImpl) CheckAvailability(ctx context.Context, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, checkOut, err := req.Dates()
	if err != nil {
		return res, err
	}

	if err = validateStayWindow(checkIn, checkOut); err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheAvailability, req)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for availability")

		return res, nil
	}

	roomType, err := s.catalogRepo.GetRoomType(ctx, req.RoomTypeID)
	if err != nil {
		return res, err
	}

	rooms, err := s.availability.AvailableRooms(ctx, req.RoomTypeID, checkIn, checkOut)
	if err != nil {
		return res, err
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	total := roomType.BasePrice.Mul(decimal.NewFromInt(int64(nights)))

	res = dto.AvailabilityResponse{
		Available:      len(rooms) > 0,
		AvailableCount: len(rooms),
		RoomType:       roomType.Name,
		RoomTypeID:     roomType.ID,
		CheckIn:        req.CheckIn,
		CheckOut:       req.CheckOut,
		Nights:         nights,
		PricePerNight:  roomType.BasePrice.StringFixed(2),
		TotalPrice:     total.StringFixed(2),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.AvailabilityTTL); err != nil {
			log.Error().Err(err).Msg("failed to save availability to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return res, err
	}

	roomType, err := s.catalogRepo.GetRoomType(ctx, booking.RoomTypeID)
	if err != nil {
		return res, err
	}

	res.FromModel(booking, roomType.BasePrice)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, status string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBookings, params, status)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, status)
	if err != nil {
		return res, err
	}

	bookings, err := s.repo.GetAll(ctx, params, status)
	if err != nil {
		return res, err
	}

	prices, err := s.basePrices(ctx, bookings)
	if err != nil {
		return res, err
	}

	res.FromModels(bookings, prices, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) basePrices(ctx context.Context, bookings []model.Booking) (map[string]decimal.Decimal, error) {
	prices := make(map[string]decimal.Decimal)

	for _, booking := range bookings {
		if _, ok := prices[booking.RoomTypeID]; ok {
			continue
		}

		roomType, err := s.catalogRepo.GetRoomType(ctx, booking.RoomTypeID)
		if err != nil {
			return nil, err
		}

		prices[booking.RoomTypeID] = roomType.BasePrice
	}

	return prices, nil
}

// notify publishes a booking event on a detached goroutine. Notification is
// best-effort; a publish failure never fails the booking operation.
func (s *serviceImpl) notify(ctx context.Context, eventType string, booking model.Booking, roomType catalogModel.RoomType, roomNumber string) {
	event := notification.Event{
		Type:            eventType,
		BookingID:       booking.ID,
		FullName:        booking.FullName,
		Email:           booking.Email,
		Phone:           booking.Phone,
		RoomType:        roomType.Name,
		RoomNumber:      roomNumber,
		CheckIn:         booking.CheckIn.Format(constant.DateFormat),
		CheckOut:        booking.CheckOut.Format(constant.DateFormat),
		Guests:          booking.Guests,
		Nights:          booking.Nights(),
		TotalPrice:      booking.TotalPrice(roomType.BasePrice).StringFixed(2),
		SpecialRequests: booking.SpecialRequests,
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.publisher.Publish(c, event); err != nil {
			log.Error().
				Err(err).
				Str("bookingID", booking.ID).
				Str("eventType", eventType).
				Msg("failed to publish booking event")
		}
	}()
}

func validateStayWindow(checkIn, checkOut time.Time) error {
	if !checkOut.After(checkIn) {
		return failure.BadRequestFromString("check_out must be after check_in")
	}

	if checkIn.Before(timezone.Today()) {
		return failure.BadRequestFromString("check_in must not be in the past")
	}

	return nil
}
