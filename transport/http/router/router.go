package router

import (
	"github.com/go-chi/chi/v5"

	"hotelier/internal/handlers/auth"
	"hotelier/internal/handlers/booking"
	"hotelier/internal/handlers/guest"
	"hotelier/internal/handlers/room"
)

// DomainHandlers holds every HTTP handler wired into the router.
type DomainHandlers struct {
	Auth    auth.Handler
	Guest   guest.Handler
	Room    room.Handler
	Booking booking.Handler
}

type Router struct {
	handlers DomainHandlers
}

func ProvideRouter(handlers DomainHandlers) Router {
	return Router{handlers: handlers}
}

// SetupRoutes mounts every domain handler under the versioned prefix.
func (r *Router) SetupRoutes(mux chi.Router) {
	mux.Route("/v1", func(rc chi.Router) {
		r.handlers.Auth.Router(rc)
		r.handlers.Guest.Router(rc)
		r.handlers.Room.Router(rc)
		r.handlers.Booking.Router(rc)
	})
}
