//go:build wireinject
// +build wireinject

package di

import (
	"hotel/config"
	"hotel/infras/jwt"
	"hotel/infras/kafka"
	"hotel/infras/mailer"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/infras/redis"
	"hotel/infras/s3"
	"hotel/shared/cache"
	"hotel/transport/event"
	"hotel/transport/http"
	"hotel/transport/http/middleware"
	"hotel/transport/http/router"

	attractionRepository "hotel/internal/domains/attraction/repository"
	attractionService "hotel/internal/domains/attraction/service"
	authService "hotel/internal/domains/auth/service"
	blogCategoryRepository "hotel/internal/domains/blogcategory/repository"
	blogCategoryService "hotel/internal/domains/blogcategory/service"
	blogPostRepository "hotel/internal/domains/blogpost/repository"
	blogPostService "hotel/internal/domains/blogpost/service"
	bookingRepository "hotel/internal/domains/booking/repository"
	bookingService "hotel/internal/domains/booking/service"
	contactRepository "hotel/internal/domains/contact/repository"
	contactService "hotel/internal/domains/contact/service"
	galleryRepository "hotel/internal/domains/gallery/repository"
	galleryService "hotel/internal/domains/gallery/service"
	hotelServiceRepository "hotel/internal/domains/hotelservice/repository"
	hotelServiceService "hotel/internal/domains/hotelservice/service"
	notificationService "hotel/internal/domains/notification/service"
	reviewRepository "hotel/internal/domains/review/repository"
	reviewService "hotel/internal/domains/review/service"
	roomRepository "hotel/internal/domains/room/repository"
	roomService "hotel/internal/domains/room/service"
	uploadService "hotel/internal/domains/upload/service"
	userRepository "hotel/internal/domains/user/repository"
	userService "hotel/internal/domains/user/service"
	virtualTourRepository "hotel/internal/domains/virtualtour/repository"
	virtualTourService "hotel/internal/domains/virtualtour/service"

	attractionHandler "hotel/internal/handlers/attraction"
	authHandler "hotel/internal/handlers/auth"
	blogHandler "hotel/internal/handlers/blog"
	bookingHandler "hotel/internal/handlers/booking"
	contactHandler "hotel/internal/handlers/contact"
	galleryHandler "hotel/internal/handlers/gallery"
	healthHandler "hotel/internal/handlers/health"
	hotelServiceHandler "hotel/internal/handlers/hotelservice"
	reviewHandler "hotel/internal/handlers/review"
	roomHandler "hotel/internal/handlers/room"
	uploadHandler "hotel/internal/handlers/upload"
	userHandler "hotel/internal/handlers/user"
	virtualTourHandler "hotel/internal/handlers/virtualtour"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
	mailer.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var notificationDomain = wire.NewSet(
	notificationService.New,
)

var contactDomain = wire.NewSet(
	contactRepository.New,
	contactService.New,
)

var hotelServiceDomain = wire.NewSet(
	hotelServiceRepository.New,
	hotelServiceService.New,
)

var galleryDomain = wire.NewSet(
	galleryRepository.New,
	galleryService.New,
)

var virtualTourDomain = wire.NewSet(
	virtualTourRepository.New,
	virtualTourService.New,
)

var blogDomain = wire.NewSet(
	blogCategoryRepository.New,
	blogCategoryService.New,
	blogPostRepository.New,
	blogPostService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var attractionDomain = wire.NewSet(
	attractionRepository.New,
	attractionService.New,
)

var uploadDomain = wire.NewSet(
	uploadService.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	roomDomain,
	bookingDomain,
	notificationDomain,
	contactDomain,
	hotelServiceDomain,
	galleryDomain,
	virtualTourDomain,
	blogDomain,
	reviewDomain,
	attractionDomain,
	uploadDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.Checks,
	healthHandler.New,
	authHandler.New,
	userHandler.New,
	roomHandler.New,
	bookingHandler.New,
	contactHandler.New,
	hotelServiceHandler.New,
	galleryHandler.New,
	virtualTourHandler.New,
	blogHandler.New,
	reviewHandler.New,
	attractionHandler.New,
	uploadHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeWorker() *event.Consumer {
	wire.Build(
		configurations,
		otel.New,
		kafka.New,
		mailer.New,
		notificationDomain,
		event.New,
	)

	return &event.Consumer{}
}

func InitializeUserService() userService.User {
	wire.Build(
		configurations,
		postgres.New,
		otel.New,
		redis.New,
		sharedHelpers,
		userDomain,
	)

	return nil
}
