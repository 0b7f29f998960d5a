package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"frontdesk/internal/database"
	"frontdesk/internal/middleware"
	"frontdesk/internal/modules/auth"
	"frontdesk/internal/modules/catalog"
	"frontdesk/internal/modules/guest"
	"frontdesk/internal/modules/reservation"
	"frontdesk/internal/modules/staff"
	jwtsvc "frontdesk/internal/pkg/jwt"
	"frontdesk/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found, continuing with environment variables")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	staffRepo := repository.NewStaffRepository(db)
	guestRepo := repository.NewGuestRepository(db)
	roomTypeRepo := repository.NewRoomTypeRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	discountRepo := repository.NewDiscountRepository(db)
	reservationRepo := repository.NewReservationRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	authService := auth.NewService(staffRepo, j)
	authHandler := auth.NewHandler(authService)

	guestService := guest.NewService(guestRepo)
	guestHandler := guest.NewHandler(guestService)

	catalogService := catalog.NewService(roomTypeRepo, roomRepo, discountRepo, reservationRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	reservationService := reservation.NewService(reservationRepo, roomRepo, roomTypeRepo, guestRepo, discountRepo)
	reservationHandler := reservation.NewHandler(reservationService)

	staffService := staff.NewService(staffRepo)
	staffHandler := staff.NewHandler(staffService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		// any authenticated staff member
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			guestHandler.RegisterRoutes(protected)
			reservationHandler.RegisterRoutes(protected)

			managers := protected.Group("/")
			managers.Use(middleware.ManagerOnly())
			{
				catalogHandler.RegisterRoutes(managers)
			}

			admins := protected.Group("/")
			admins.Use(middleware.ITAdminOnly())
			{
				staffHandler.RegisterRoutes(admins)
			}
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
