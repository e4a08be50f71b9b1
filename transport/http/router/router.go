package router

import (
	"hotel/internal/handlers/attraction"
	"hotel/internal/handlers/auth"
	"hotel/internal/handlers/blog"
	"hotel/internal/handlers/booking"
	"hotel/internal/handlers/contact"
	"hotel/internal/handlers/gallery"
	"hotel/internal/handlers/health"
	"hotel/internal/handlers/hotelservice"
	"hotel/internal/handlers/review"
	"hotel/internal/handlers/room"
	"hotel/internal/handlers/upload"
	"hotel/internal/handlers/user"
	"hotel/internal/handlers/virtualtour"
	"hotel/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Health       health.Handler
	Auth         auth.Handler
	User         user.Handler
	Room         room.Handler
	Booking      booking.Handler
	Contact      contact.Handler
	HotelService hotelservice.Handler
	Gallery      gallery.Handler
	VirtualTour  virtualtour.Handler
	Blog         blog.Handler
	Review       review.Handler
	Attraction   attraction.Handler
	Upload       upload.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
	Auth           middleware.Auth
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Health.Router(routerGroup, r.App, r.Auth)
		r.DomainHandlers.Auth.Router(routerGroup, r.App, r.Auth)
		r.DomainHandlers.User.Router(routerGroup, r.App, r.Auth)
		r.DomainHandlers.Room.Router(routerGroup, r.App, r.Auth)
		r.DomainHandlers.Booking.Router(routerGroup, r.App, r.Auth)
		r.DomainHandlers.Contact.Router(routerGroup, r.App, r.Auth)
		r.DomainHandlers.HotelService.Router(routerGroup, r.App, r.Auth)
		r.DomainHandlers.Gallery.Router(routerGroup, r.App, r.Auth)
		r.DomainHandlers.VirtualTour.Router(routerGroup, r.App, r.Auth)
		r.DomainHandlers.Blog.Router(routerGroup, r.App, r.Auth)
		r.DomainHandlers.Review.Router(routerGroup, r.App, r.Auth)
		r.DomainHandlers.Attraction.Router(routerGroup, r.App, r.Auth)
		r.DomainHandlers.Upload.Router(routerGroup, r.App, r.Auth)
	})
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, auth middleware.Auth) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
		Auth:           auth,
	}
}
