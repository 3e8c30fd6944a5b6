package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"nyumba/config"
	"nyumba/infras/otel/mocks"
	"nyumba/internal/domains/catalog/model"
	"nyumba/internal/domains/catalog/model/dto"
	repoMocks "nyumba/internal/domains/catalog/repository/mocks"
	"nyumba/internal/domains/catalog/service"
	svcMocks "nyumba/internal/domains/catalog/service/mocks"
	cacheMocks "nyumba/shared/cache/mocks"
	"nyumba/shared/failure"
)

func newCatalogService(ctrl *gomock.Controller) (service.Catalog, *repoMocks.MockCatalog, *svcMocks.MockAvailabilityCounter, *cacheMocks.MockRedisCache) {
	mockRepo := repoMocks.NewMockCatalog(ctrl)
	mockAvailability := svcMocks.NewMockAvailabilityCounter(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Cache.AvailabilityTTL = 30

	svc := service.New(mockRepo, mockAvailability, cfg, mockCache, mockOtel, nil)

	// Cache invalidation runs on detached goroutines after writes.
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return svc, mockRepo, mockAvailability, mockCache
}

func TestCatalogService_CreateRoomType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newCatalogService(ctrl)

	tests := []struct {
		name      string
		req       dto.CreateRoomTypeRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation derives slug from name",
			req: dto.CreateRoomTypeRequest{
				Name:      "Deluxe Suite",
				BasePrice: "150.00",
				Capacity:  2,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					InsertRoomType(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, roomType model.RoomType) error {
						assert.Equal(t, "deluxe-suite", roomType.Slug)
						assert.True(t, roomType.BasePrice.Equal(decimal.RequireFromString("150.00")))
						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "invalid base price",
			req: dto.CreateRoomTypeRequest{
				Name:      "Deluxe Suite",
				BasePrice: "one fifty",
				Capacity:  2,
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "negative base price",
			req: dto.CreateRoomTypeRequest{
				Name:      "Deluxe Suite",
				BasePrice: "-10",
				Capacity:  2,
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "duplicate slug",
			req: dto.CreateRoomTypeRequest{
				Name:      "Deluxe Suite",
				BasePrice: "150.00",
				Capacity:  2,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					InsertRoomType(gomock.Any(), gomock.Any()).
					Return(failure.Conflict(`room type with slug "deluxe-suite" already exists`))
			},
			wantErr:  true,
			wantCode: 409,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.CreateRoomType(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "deluxe-suite", res.Slug)
				assert.Equal(t, "150.00", res.BasePrice)
			}
		})
	}
}

func TestCatalogService_GetRoomTypes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAvailability, mockCache := newCatalogService(ctrl)

	checkIn := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)

	roomTypes := []model.RoomType{
		{ID: "rt-1", Name: "Deluxe", Slug: "deluxe", BasePrice: decimal.RequireFromString("300"), Capacity: 2},
		{ID: "rt-2", Name: "Standard", Slug: "standard", BasePrice: decimal.RequireFromString("120"), Capacity: 3},
	}

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	mockRepo.EXPECT().GetRoomTypes(gomock.Any()).Return(roomTypes, nil)
	mockAvailability.EXPECT().AvailableRoomCount(gomock.Any(), "rt-1", checkIn, checkOut).Return(2, nil)
	mockAvailability.EXPECT().AvailableRoomCount(gomock.Any(), "rt-2", checkIn, checkOut).Return(0, nil)

	res, err := svc.GetRoomTypes(context.Background(), checkIn, checkOut)

	assert.NoError(t, err)
	assert.Len(t, res.RoomTypes, 2)
	assert.Equal(t, 2, res.RoomTypes[0].AvailableRoomsCount)
	assert.Equal(t, 0, res.RoomTypes[1].AvailableRoomsCount)
	assert.Equal(t, "300.00", res.RoomTypes[0].BasePrice)
}

func TestCatalogService_CreateRoom(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newCatalogService(ctrl)

	t.Run("unknown room type", func(t *testing.T) {
		mockRepo.EXPECT().
			GetRoomType(gomock.Any(), "rt-missing").
			Return(model.RoomType{}, failure.NotFound(model.RoomTypeEntityName))

		_, err := svc.CreateRoom(context.Background(), dto.CreateRoomRequest{
			RoomTypeID: "rt-missing",
			Number:     "101",
		})

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("successful creation", func(t *testing.T) {
		mockRepo.EXPECT().
			GetRoomType(gomock.Any(), "rt-1").
			Return(model.RoomType{ID: "rt-1"}, nil)
		mockRepo.EXPECT().
			InsertRoom(gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := svc.CreateRoom(context.Background(), dto.CreateRoomRequest{
			RoomTypeID: "rt-1",
			Number:     "101",
		})

		assert.NoError(t, err)
		assert.Equal(t, "101", res.Number)
		assert.True(t, res.IsActive)
	})
}

func TestCatalogService_GetRooms(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAvailability, _ := newCatalogService(ctrl)

	checkIn := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	rooms := []model.Room{
		{ID: "r-1", RoomTypeID: "rt-1", Number: "101", IsActive: true},
		{ID: "r-2", RoomTypeID: "rt-1", Number: "102", IsActive: false},
	}

	mockRepo.EXPECT().GetRooms(gomock.Any(), "rt-1").Return(rooms, nil)
	mockAvailability.EXPECT().IsRoomAvailable(gomock.Any(), "r-1", checkIn, checkOut).Return(true, nil)

	res, err := svc.GetRooms(context.Background(), "rt-1", checkIn, checkOut)

	assert.NoError(t, err)
	assert.Len(t, res.Rooms, 2)
	assert.NotNil(t, res.Rooms[0].IsAvailable)
	assert.True(t, *res.Rooms[0].IsAvailable)
	// Inactive rooms never report availability.
	assert.Nil(t, res.Rooms[1].IsAvailable)
}
