// File: /main.go
package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"carbontrack-api/config"
	"carbontrack-api/database"
	"carbontrack-api/middleware"
	"carbontrack-api/repositories"
	"carbontrack-api/routes"
	"carbontrack-api/rpc"
	"carbontrack-api/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Repositories and services shared by every protocol adapter.
	userRepo := repositories.NewGormUserRepository(db)
	recordRepo := repositories.NewGormCarbonRecordRepository(db)
	calculator := services.NewCalculator(services.DefaultEmissionFactors())
	carbonService := services.NewCarbonService(calculator, recordRepo)
	adviceService := services.NewAdviceService(cfg)
	emailService := services.NewEmailService(cfg)

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.New()
	router.Use(routes.SetupCORS())
	router.Use(middleware.RequestID())
	router.Use(middleware.SecurityHeaders())
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Setup routes (REST + SOAP share the HTTP port)
	routes.SetupRoutes(router, cfg, userRepo, carbonService, adviceService, emailService)

	// gRPC adapter on its own port
	grpcServer, err := rpc.NewServer(cfg.GRPCPort, carbonService)
	if err != nil {
		log.Fatal("Failed to start gRPC server:", err)
	}
	go func() {
		if err := grpcServer.Serve(); err != nil {
			log.Fatal("gRPC server stopped:", err)
		}
	}()

	// Start server
	log.Printf("Starting CarbonTrack API server on port %s", cfg.Port)
	log.Printf("REST API available at: http://localhost:%s/api/v1", cfg.Port)
	log.Printf("SOAP service available at: http://localhost:%s/soap?wsdl", cfg.Port)
	log.Printf("gRPC service listening on port %s", cfg.GRPCPort)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
