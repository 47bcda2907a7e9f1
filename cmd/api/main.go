package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"stayhub/internal/config"
	"stayhub/internal/database"
	"stayhub/internal/middleware"
	"stayhub/internal/modules/admin"
	"stayhub/internal/modules/auth"
	"stayhub/internal/modules/booking"
	"stayhub/internal/modules/favorite"
	"stayhub/internal/modules/listing"
	jwtsvc "stayhub/internal/pkg/jwt"
	"stayhub/internal/repository"
)

func main() {
	// .env is optional, real env always wins
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	accommodationRepo := repository.NewAccommodationRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	listingService := listing.NewService(accommodationRepo, bookingRepo)
	listingHandler := listing.NewHandler(listingService)

	bookingService := booking.NewService(bookingRepo, accommodationRepo)
	bookingHandler := booking.NewHandler(bookingService)

	favoriteHandler := favorite.NewHandler(favoriteRepo, accommodationRepo)

	adminService := admin.NewService(userRepo, accommodationRepo)
	adminHandler := admin.NewHandler(adminService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		listingHandler.RegisterPublicRoutes(v1)

		// any authenticated user
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			favoriteHandler.RegisterRoutes(protected)
		}

		// hosts only
		host := v1.Group("/")
		host.Use(middleware.Auth(j), middleware.HostOnly())
		{
			listingHandler.RegisterHostRoutes(host)
			bookingHandler.RegisterHostRoutes(host)
		}

		// admins only
		adm := v1.Group("/")
		adm.Use(middleware.Auth(j), middleware.AdminOnly())
		{
			listingHandler.RegisterAdminRoutes(adm)
			adminHandler.RegisterRoutes(adm)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
