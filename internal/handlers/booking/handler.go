package booking

import (
	"net/http"

	"nyumba/infras/otel"
	"nyumba/internal/domains/booking/model/dto"
	"nyumba/internal/domains/booking/service"
	"nyumba/shared/constant"
	gDto "nyumba/shared/dto"
	"nyumba/shared/validator"
	"nyumba/transport/http/middleware"
	"nyumba/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Booking, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Post("/check-availability", handler.CheckAvailability)
		routerGroup.Get("/{id}", handler.GetBooking)

		routerGroup.Group(func(operator chi.Router) {
			operator.Use(handler.auth.APIKey)
			operator.Get("/", handler.GetBookings)
			operator.Post("/{id}/confirm", handler.ConfirmBooking)
			operator.Post("/{id}/cancel", handler.CancelBooking)
			operator.Post("/{id}/check-in", handler.CheckInBooking)
			operator.Post("/{id}/check-out", handler.CheckOutBooking)
		})
	})
}

// CreateBooking takes a guest's booking request and stores it as pending.
// No room is held until an operator confirms.
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking requested: " + booking.ID)

	response.WithJSON(w, http.StatusCreated, booking)
}

func (handler *Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	req := dto.AvailabilityRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	availability, err := handler.service.CheckAvailability(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, availability)
}

func (handler *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	status := r.URL.Query().Get(constant.RequestParamStatus)

	bookings, err := handler.service.GetAll(ctx, queryParams, status)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// ConfirmBooking assigns a room and moves the booking to confirmed. The
// body may name a specific room; otherwise the first free room is used.
func (handler *Handler) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConfirmBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.ConfirmBookingRequest{}
	if r.ContentLength > 0 {
		if err := validator.Validate(r.Body, &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request body")

			response.WithError(w, err)

			return
		}
	}

	booking, err := handler.service.Confirm(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to confirm booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking confirmed: " + booking.ID)

	response.WithJSON(w, http.StatusOK, booking)
}

func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Cancel(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking cancelled: " + booking.ID)

	response.WithJSON(w, http.StatusOK, booking)
}

func (handler *Handler) CheckInBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckInBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.CheckIn(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check in booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

func (handler *Handler) CheckOutBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckOutBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.CheckOut(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check out booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}
