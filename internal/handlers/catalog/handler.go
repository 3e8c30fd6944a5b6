package catalog

import (
	"net/http"
	"time"

	"nyumba/infras/otel"
	"nyumba/internal/domains/catalog/model/dto"
	"nyumba/internal/domains/catalog/service"
	"nyumba/shared/constant"
	"nyumba/shared/failure"
	"nyumba/shared/timezone"
	"nyumba/shared/validator"
	"nyumba/transport/http/middleware"
	"nyumba/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Catalog
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Catalog, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/room-types", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRoomTypes)
		routerGroup.Get("/{slug}", handler.GetRoomType)

		routerGroup.Group(func(operator chi.Router) {
			operator.Use(handler.auth.APIKey)
			operator.Post("/", handler.CreateRoomType)
			operator.Patch("/{id}", handler.UpdateRoomType)
		})
	})

	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRooms)

		routerGroup.Group(func(operator chi.Router) {
			operator.Use(handler.auth.APIKey)
			operator.Post("/", handler.CreateRoom)
			operator.Delete("/{id}", handler.DeactivateRoom)
		})
	})
}

// GetRoomTypes lists every room type with its availability for the window
// in the check_in/check_out query params. Without params the window is
// tonight only.
func (handler *Handler) GetRoomTypes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomTypes")
	defer scope.End()

	checkIn, checkOut, err := stayWindowFromQuery(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	roomTypes, err := handler.service.GetRoomTypes(ctx, checkIn, checkOut)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room types")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, roomTypes)
}

func (handler *Handler) GetRoomType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomType")
	defer scope.End()

	slug := chi.URLParam(r, constant.RequestParamSlug)

	checkIn, checkOut, err := stayWindowFromQuery(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	roomType, err := handler.service.GetRoomType(ctx, slug, checkIn, checkOut)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room type")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, roomType)
}

func (handler *Handler) CreateRoomType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoomType")
	defer scope.End()

	req := dto.CreateRoomTypeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	roomType, err := handler.service.CreateRoomType(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room type")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room type created: " + roomType.Slug)

	response.WithJSON(w, http.StatusCreated, roomType)
}

func (handler *Handler) UpdateRoomType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoomType")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateRoomTypeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateRoomType(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room type")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Room type updated successfully")
}

// GetRooms lists rooms, optionally scoped to a room type, with per-room
// availability for the queried window.
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	roomTypeID := r.URL.Query().Get(constant.RequestParamRoomTypeID)

	checkIn, checkOut, err := stayWindowFromQuery(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	rooms, err := handler.service.GetRooms(ctx, roomTypeID, checkIn, checkOut)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

func (handler *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	req := dto.CreateRoomRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	room, err := handler.service.CreateRoom(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room created: " + room.Number)

	response.WithJSON(w, http.StatusCreated, room)
}

func (handler *Handler) DeactivateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeactivateRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeactivateRoom(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to deactivate room")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Room deactivated successfully")
}

// stayWindowFromQuery reads check_in/check_out from the query string. Both
// absent means tonight; a lone check_in means a one-night stay.
func stayWindowFromQuery(r *http.Request) (checkIn, checkOut time.Time, err error) {
	checkInStr := r.URL.Query().Get(constant.RequestParamCheckIn)
	checkOutStr := r.URL.Query().Get(constant.RequestParamCheckOut)

	if checkInStr == constant.Empty {
		checkIn = timezone.Today()
	} else if checkIn, err = time.Parse(constant.DateFormat, checkInStr); err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("check_in must be a valid date in YYYY-MM-DD format")
	}

	if checkOutStr == constant.Empty {
		checkOut = checkIn.AddDate(0, 0, 1)
	} else if checkOut, err = time.Parse(constant.DateFormat, checkOutStr); err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("check_out must be a valid date in YYYY-MM-DD format")
	}

	if !checkOut.After(checkIn) {
		return checkIn, checkOut, failure.BadRequestFromString("check_out must be after check_in")
	}

	return checkIn, checkOut, nil
}
