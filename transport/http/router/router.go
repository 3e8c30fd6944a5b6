package router

import (
	"nyumba/internal/handlers/booking"
	"nyumba/internal/handlers/catalog"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Catalog catalog.Handler
	Booking booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Catalog.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
