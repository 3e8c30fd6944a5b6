package service

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=mocks/service_mock.go -package=catalog_service_mock

import (
	"context"
	"fmt"
	"strings"
	"time"

	"nyumba/config"
	"nyumba/infras/otel"
	"nyumba/infras/s3"
	"nyumba/internal/domains/catalog/model"
	"nyumba/internal/domains/catalog/model/dto"
	"nyumba/internal/domains/catalog/repository"
	"nyumba/shared"
	"nyumba/shared/base64"
	"nyumba/shared/cache"
	"nyumba/shared/constant"
	"nyumba/shared/failure"

	"github.com/gosimple/slug"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	cacheGetRoomType     = "room_type:get"
	cacheGetAllRoomTypes = "room_type:get_all"
	cacheGetAllRooms     = "room:get_all"
)

// AvailabilityCounter reports room availability for a stay window. The
// booking domain provides the implementation; the catalog only consumes it
// to enrich listings.
type AvailabilityCounter interface {
	AvailableRoomCount(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) (int, error)
	IsRoomAvailable(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error)
}

type Catalog interface {
	CreateRoomType(ctx context.Context, req dto.CreateRoomTypeRequest) (dto.RoomTypeResponse, error)
	UpdateRoomType(ctx context.Context, id string, req dto.UpdateRoomTypeRequest) error
	GetRoomTypes(ctx context.Context, checkIn, checkOut time.Time) (dto.GetRoomTypesResponse, error)
	GetRoomType(ctx context.Context, slug string, checkIn, checkOut time.Time) (dto.RoomTypeResponse, error)
	CreateRoom(ctx context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	GetRooms(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) (dto.GetRoomsResponse, error)
	DeactivateRoom(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo         repository.Catalog
	availability AvailabilityCounter
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	s3           s3.S3
}

func New(repo repository.Catalog, availability AvailabilityCounter, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Catalog {
	return &serviceImpl{
		repo:         repo,
		availability: availability,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		s3:           s3,
	}
}

func (s *serviceImpl) CreateRoomType(ctx context.Context, req dto.CreateRoomTypeRequest) (res dto.RoomTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateRoomType")
	defer scope.End()
	defer scope.TraceIfError(err)

	basePrice, err := decimal.NewFromString(req.BasePrice)
	if err != nil {
		return res, failure.BadRequestFromString("base_price must be a valid decimal amount")
	}

	if basePrice.IsNegative() {
		return res, failure.BadRequestFromString("base_price must not be negative")
	}

	imageURL := constant.Empty
	if req.Image != constant.Empty {
		if imageURL, err = s.uploadImage(ctx, req); err != nil {
			return res, err
		}
	}

	roomType := req.ToModel(basePrice, imageURL)

	if err = s.repo.InsertRoomType(ctx, roomType); err != nil {
		if imageURL != constant.Empty {
			s.deleteImage(ctx, imageURL)
		}

		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoomTypes)
	}()

	res.FromModel(roomType, 0)

	return res, nil
}

func (s *serviceImpl) UpdateRoomType(ctx context.Context, id string, req dto.UpdateRoomTypeRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateRoomType")
	defer scope.End()
	defer scope.TraceIfError(err)

	changes := map[string]any{}

	if req.Name != constant.Empty {
		changes[model.FieldName] = req.Name
	}

	if req.Description != constant.Empty {
		changes[model.FieldDescription] = req.Description
	}

	if req.BasePrice != constant.Empty {
		basePrice, err := decimal.NewFromString(req.BasePrice)
		if err != nil || basePrice.IsNegative() {
			return failure.BadRequestFromString("base_price must be a valid non-negative decimal amount")
		}

		changes[model.FieldBasePrice] = basePrice
	}

	if req.Capacity > 0 {
		changes[model.FieldCapacity] = req.Capacity
	}

	if len(changes) == 0 {
		return failure.BadRequestFromString("nothing to update")
	}

	if err = s.repo.UpdateRoomType(ctx, id, changes); err != nil {
		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetRoomType)
		shared.InvalidateCaches(c, s.cache, cacheGetAllRoomTypes)
	}()

	return nil
}

func (s *serviceImpl) GetRoomTypes(ctx context.Context, checkIn, checkOut time.Time) (res dto.GetRoomTypesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRoomTypes")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoomTypes, checkIn, checkOut)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room types")

		return res, nil
	}

	roomTypes, err := s.repo.GetRoomTypes(ctx)
	if err != nil {
		return res, err
	}

	res.RoomTypes = make([]dto.RoomTypeResponse, 0, len(roomTypes))

	for _, roomType := range roomTypes {
		available, err := s.availability.AvailableRoomCount(ctx, roomType.ID, checkIn, checkOut)
		if err != nil {
			log.Error().Err(err).Str("roomTypeID", roomType.ID).Msg("failed to count available rooms")

			return res, err
		}

		var item dto.RoomTypeResponse
		item.FromModel(roomType, available)
		res.RoomTypes = append(res.RoomTypes, item)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.AvailabilityTTL); err != nil {
			log.Error().Err(err).Msg("failed to save room types to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetRoomType(ctx context.Context, slug string, checkIn, checkOut time.Time) (res dto.RoomTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRoomType")
	defer scope.End()
	defer scope.TraceIfError(err)

	roomType, err := s.repo.GetRoomTypeBySlug(ctx, slug)
	if err != nil {
		return res, err
	}

	available, err := s.availability.AvailableRoomCount(ctx, roomType.ID, checkIn, checkOut)
	if err != nil {
		log.Error().Err(err).Str("roomTypeID", roomType.ID).Msg("failed to count available rooms")

		return res, err
	}

	res.FromModel(roomType, available)

	return res, nil
}

func (s *serviceImpl) CreateRoom(ctx context.Context, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	// FK violation on insert already reports an unknown room type, the
	// lookup just gives the caller a cleaner message up front.
	if _, err = s.repo.GetRoomType(ctx, req.RoomTypeID); err != nil {
		return res, err
	}

	room := req.ToModel()

	if err = s.repo.InsertRoom(ctx, room); err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRooms)
		shared.InvalidateCaches(c, s.cache, cacheGetAllRoomTypes)
	}()

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) GetRooms(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	rooms, err := s.repo.GetRooms(ctx, roomTypeID)
	if err != nil {
		return res, err
	}

	res.Rooms = make([]dto.RoomResponse, 0, len(rooms))

	for _, room := range rooms {
		var item dto.RoomResponse
		item.FromModel(room)

		if room.IsActive {
			available, err := s.availability.IsRoomAvailable(ctx, room.ID, checkIn, checkOut)
			if err != nil {
				log.Error().Err(err).Str("roomID", room.ID).Msg("failed to check room availability")

				return res, err
			}

			item.IsAvailable = &available
		}

		res.Rooms = append(res.Rooms, item)
	}

	return res, nil
}

func (s *serviceImpl) DeactivateRoom(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeactivateRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.DeactivateRoom(ctx, id); err != nil {
		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRooms)
		shared.InvalidateCaches(c, s.cache, cacheGetAllRoomTypes)
	}()

	return nil
}

func (s *serviceImpl) uploadImage(ctx context.Context, req dto.CreateRoomTypeRequest) (url string, err error) {
	contentType := base64.GetContentType(req.Image)

	data, err := base64.Decode(req.Image)
	if err != nil {
		return constant.Empty, failure.BadRequestFromString("image must be a valid base64 data URI")
	}

	ext := "bin"
	if parts := strings.Split(contentType, "/"); len(parts) == 2 {
		ext = parts[1]
	}

	fileName := fmt.Sprintf("%s.%s", slugOrName(req), ext)
	bucketName := s.cfg.External.S3.BucketName

	url, err = s.s3.UploadFileBytes(ctx, bucketName, model.RoomTypeEntityName, fileName, contentType, data)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload room type image")

		return constant.Empty, fmt.Errorf("failed to upload room type image: %w", err)
	}

	return url, nil
}

func (s *serviceImpl) deleteImage(ctx context.Context, imageURL string) {
	bucketName := s.cfg.External.S3.BucketName

	objectName := s.s3.GetObjectNameFromURL(bucketName, imageURL)
	if objectName == constant.Empty {
		log.Warn().Str("url", imageURL).Msg("failed to extract object name from URL")

		return
	}

	if err := s.s3.DeleteFile(ctx, bucketName, model.RoomTypeEntityName, objectName); err != nil {
		log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete room type image")
	}
}

func slugOrName(req dto.CreateRoomTypeRequest) string {
	if req.Slug != constant.Empty {
		return req.Slug
	}

	return slug.Make(req.Name)
}
