package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripwise/cmd/fx/account_fx"
	"tripwise/cmd/fx/db_fx"
	"tripwise/cmd/fx/generator_fx"
	"tripwise/cmd/fx/trip_fx"
	"tripwise/internal/api/controllers"
	"tripwise/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	app := fx.New(
		db_fx.Module,
		generator_fx.Module,
		account_fx.Module,
		trip_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	tripController *controllers.TripController,
	accountController *controllers.AccountController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	RegisterRoutes(r, tripController, accountController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tripController *controllers.TripController,
	accountController *controllers.AccountController) {

	accounts := r.Group("/api/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)

	// Generation lives on its own path so that non-POST methods get a clean
	// 405 instead of falling into the :tripId wildcard.
	r.POST("/api/generateTrip", tripController.GenerateTrip)

	trips := r.Group("/api/trips")
	authed := trips.Group("")
	authed.Use(middleware.JWTAuthMiddleware())
	authed.POST("", tripController.SaveTrip)
	authed.GET("/my-trips", tripController.GetMyTrips)
	authed.GET("/:tripId", tripController.GetTripById)
	authed.DELETE("/:tripId", tripController.DeleteTrip)
}
