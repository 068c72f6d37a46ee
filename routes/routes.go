// File: /routes/routes.go
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"carbontrack-api/config"
	"carbontrack-api/controllers"
	"carbontrack-api/middleware"
	"carbontrack-api/repositories"
	"carbontrack-api/services"
	"carbontrack-api/soap"
)

// SetupCORS allows browser clients on other origins to call the API.
func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func SetupRoutes(
	r *gin.Engine,
	cfg *config.Config,
	users repositories.UserRepository,
	carbonService *services.CarbonService,
	adviceService *services.AdviceService,
	emailService *services.EmailService,
) {
	// Controllers
	authController := controllers.NewAuthController(users, cfg.JWTSecret, emailService)
	carbonController := controllers.NewCarbonController(carbonService, adviceService)
	soapHandler := soap.NewHandler(carbonService)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// SOAP endpoint (document-messaging adapter). GET with ?wsdl serves
	// the contract; POST carries the SOAP envelope.
	r.GET("/soap", func(c *gin.Context) {
		if _, hasWSDL := c.GetQuery("wsdl"); hasWSDL {
			soapHandler.ServeWSDL(c)
			return
		}
		c.Status(http.StatusMethodNotAllowed)
	})
	r.POST("/soap", soapHandler.HandleRequest)

	// API version 1
	v1 := r.Group("/api/v1")
	v1.Use(middleware.RateLimit(120, 20))

	// Auth routes (public)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret, users))
	{
		carbon := protected.Group("/carbon")
		{
			carbon.POST("/calculate", carbonController.Calculate)
			carbon.GET("/records", carbonController.GetRecords)
			carbon.GET("/total", carbonController.GetTotalCarbon)
			carbon.GET("/breakdown", carbonController.GetBreakdown)
			carbon.POST("/recommendations", carbonController.GetRecommendations)
		}
	}
}
