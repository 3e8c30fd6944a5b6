package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"nyumba/config"
	"nyumba/infras/otel/mocks"
	"nyumba/internal/domains/booking/model"
	"nyumba/internal/domains/booking/model/dto"
	repoMocks "nyumba/internal/domains/booking/repository/mocks"
	"nyumba/internal/domains/booking/service"
	svcMocks "nyumba/internal/domains/booking/service/mocks"
	catalogModel "nyumba/internal/domains/catalog/model"
	catalogRepoMocks "nyumba/internal/domains/catalog/repository/mocks"
	notificationMocks "nyumba/internal/notification/mocks"
	cacheMocks "nyumba/shared/cache/mocks"
	"nyumba/shared/failure"
)

// roomLockTransactor runs transaction bodies concurrently, the way separate
// database connections do. The only mutual exclusion it offers is a lock
// standing in for SELECT ... FOR UPDATE on a type's room rows: a body that
// takes it via lockRoomRows blocks the others until its transaction ends,
// at which point the holder's writes are committed and visible to waiters.
type roomLockTransactor struct {
	roomRows chan struct{}
}

func newRoomLockTransactor() *roomLockTransactor {
	return &roomLockTransactor{roomRows: make(chan struct{}, 1)}
}

func (t *roomLockTransactor) lockRoomRows() {
	t.roomRows <- struct{}{}
}

func (t *roomLockTransactor) WithTransaction(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	err := fn(nil)

	// commit or rollback drops the row lock the body took, if any
	select {
	case <-t.roomRows:
	default:
	}

	return err
}

type bookingFixture struct {
	svc          service.Booking
	tr           *roomLockTransactor
	repo         *repoMocks.MockBooking
	catalogRepo  *catalogRepoMocks.MockCatalog
	availability *svcMocks.MockAvailability
	publisher    *notificationMocks.MockPublisher
}

func newBookingService(ctrl *gomock.Controller) bookingFixture {
	mockRepo := repoMocks.NewMockBooking(ctrl)
	mockCatalogRepo := catalogRepoMocks.NewMockCatalog(ctrl)
	mockAvailability := svcMocks.NewMockAvailability(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockPublisher := notificationMocks.NewMockPublisher(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Cache.AvailabilityTTL = 30

	// Cache writes and event publishes run on detached goroutines.
	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	tr := newRoomLockTransactor()

	svc := service.New(
		mockRepo,
		mockCatalogRepo,
		mockAvailability,
		tr,
		cfg,
		mockCache,
		mockOtel,
		mockPublisher,
	)

	return bookingFixture{
		svc:          svc,
		tr:           tr,
		repo:         mockRepo,
		catalogRepo:  mockCatalogRepo,
		availability: mockAvailability,
		publisher:    mockPublisher,
	}
}

func deluxeRoomType() catalogModel.RoomType {
	return catalogModel.RoomType{
		ID:        "a2a4b6c8-0000-4000-8000-000000000001",
		Name:      "Deluxe",
		Slug:      "deluxe",
		BasePrice: decimal.RequireFromString("300"),
		Capacity:  2,
	}
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingService(ctrl)
	roomType := deluxeRoomType()

	validReq := func() dto.CreateBookingRequest {
		return dto.CreateBookingRequest{
			FullName:   "Asha Odhiambo",
			Email:      "asha@example.com",
			Phone:      "+254700000000",
			RoomTypeID: roomType.ID,
			CheckIn:    "2027-09-01",
			CheckOut:   "2027-09-04",
			Guests:     2,
		}
	}

	t.Run("successful request is stored as pending", func(t *testing.T) {
		f.catalogRepo.EXPECT().GetRoomType(gomock.Any(), roomType.ID).Return(roomType, nil)
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				assert.Equal(t, model.StatusPending, booking.Status)
				assert.False(t, booking.RoomID.Valid)
				return nil
			})

		res, err := f.svc.Create(context.Background(), validReq())

		assert.NoError(t, err)
		assert.Equal(t, model.StatusPending, res.Status)
		assert.Equal(t, 3, res.Nights)
		assert.Equal(t, "900.00", res.TotalPrice)
	})

	t.Run("check_out before check_in", func(t *testing.T) {
		req := validReq()
		req.CheckOut = "2027-08-30"

		_, err := f.svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("zero-night stay", func(t *testing.T) {
		req := validReq()
		req.CheckOut = req.CheckIn

		_, err := f.svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("check_in in the past", func(t *testing.T) {
		req := validReq()
		req.CheckIn = "2020-01-01"
		req.CheckOut = "2020-01-03"

		_, err := f.svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("guests exceed capacity", func(t *testing.T) {
		f.catalogRepo.EXPECT().GetRoomType(gomock.Any(), roomType.ID).Return(roomType, nil)

		req := validReq()
		req.Guests = 3

		_, err := f.svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("unknown room type", func(t *testing.T) {
		f.catalogRepo.EXPECT().
			GetRoomType(gomock.Any(), roomType.ID).
			Return(catalogModel.RoomType{}, failure.NotFound(catalogModel.RoomTypeEntityName))

		_, err := f.svc.Create(context.Background(), validReq())

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestBookingService_CheckAvailability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingService(ctrl)
	roomType := deluxeRoomType()

	req := dto.AvailabilityRequest{
		RoomTypeID: roomType.ID,
		CheckIn:    "2027-09-01",
		CheckOut:   "2027-09-04",
	}

	t.Run("rooms available", func(t *testing.T) {
		f.catalogRepo.EXPECT().GetRoomType(gomock.Any(), roomType.ID).Return(roomType, nil)
		f.availability.EXPECT().
			AvailableRooms(gomock.Any(), roomType.ID, gomock.Any(), gomock.Any()).
			Return([]catalogModel.Room{
				{ID: "r-1", Number: "D1"},
				{ID: "r-2", Number: "D2"},
			}, nil)

		res, err := f.svc.CheckAvailability(context.Background(), req)

		assert.NoError(t, err)
		assert.True(t, res.Available)
		assert.Equal(t, 2, res.AvailableCount)
		assert.Equal(t, "Deluxe", res.RoomType)
		assert.Equal(t, 3, res.Nights)
		assert.Equal(t, "300.00", res.PricePerNight)
		assert.Equal(t, "900.00", res.TotalPrice)
		assert.Equal(t, "2027-09-01", res.CheckIn)
		assert.Equal(t, "2027-09-04", res.CheckOut)
	})

	t.Run("no rooms available", func(t *testing.T) {
		f.catalogRepo.EXPECT().GetRoomType(gomock.Any(), roomType.ID).Return(roomType, nil)
		f.availability.EXPECT().
			AvailableRooms(gomock.Any(), roomType.ID, gomock.Any(), gomock.Any()).
			Return([]catalogModel.Room{}, nil)

		res, err := f.svc.CheckAvailability(context.Background(), req)

		assert.NoError(t, err)
		assert.False(t, res.Available)
		assert.Equal(t, 0, res.AvailableCount)
	})

	t.Run("invalid window", func(t *testing.T) {
		bad := req
		bad.CheckOut = bad.CheckIn

		_, err := f.svc.CheckAvailability(context.Background(), bad)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}
