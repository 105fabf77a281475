package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotel-inventory/config"
	"hotel-inventory/controllers"
	"hotel-inventory/routes"
	"hotel-inventory/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	// Tokens cannot be issued or verified without a secret; refuse to boot.
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ ERROR: JWT_SECRET environment variable is not set.")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied")

	// Initialize services
	capacityService := services.NewCapacityService()
	gate := services.NewAuthorizationGate()
	catalogService := services.NewCatalogService(db)
	hotelService := services.NewHotelService(db, catalogService, capacityService, gate)
	roomConfigService := services.NewRoomConfigurationService(db, catalogService, capacityService, gate)
	userService := services.NewUserService(db, gate)
	roleService := services.NewRoleService(db)

	// Initialize controllers
	authController := controllers.NewAuthController(userService)
	hotelController := controllers.NewHotelController(hotelService)
	roomConfigController := controllers.NewRoomConfigurationController(roomConfigService)
	catalogController := controllers.NewCatalogController(catalogService)
	userController := controllers.NewUserController(userService)
	roleController := controllers.NewRoleController(roleService)

	// Build router
	router := routes.SetupRouter(
		authController,
		hotelController,
		roomConfigController,
		catalogController,
		userController,
		roleController,
		db,
	)

	// Port from env (prefer), fallback to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
