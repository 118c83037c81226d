package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"

	"github.com/AchilleKettyetta/bstay/routes"
	"github.com/AchilleKettyetta/bstay/services"
	"github.com/AchilleKettyetta/bstay/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Could not load .env file (this is normal in production)")
	}

	client := storage.InitializeRedis()
	store := storage.NewStore(storage.NewAdapter(storage.NewRedisBackend(client)))
	store.Initialize(context.Background())

	engine := services.NewBookingEngine(store)
	h := routes.NewHandler(store, engine)

	app := iris.New()
	app.Validator = validator.New()

	user := app.Party("/api/user")
	{
		user.Post("/register", h.Register)
		user.Post("/login", h.Login)
		user.Post("/logout", h.Logout)
		user.Get("/session", h.GetSession)
	}

	property := app.Party("/api/property")
	{
		property.Get("/", h.GetProperties)
		property.Get("/{id:int64}", h.GetProperty)
	}

	location := app.Party("/api/location")
	{
		location.Get("/locations", h.GetAvailableLocations)
	}

	reservations := app.Party("/api/reservations")
	{
		reservations.Post("/", h.CreateReservation)
		reservations.Get("/user/{id:int64}", h.RequireSession, h.GetUserReservations)
	}

	iris.RegisterOnInterrupt(func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		// Flush every collection once more so a crash-free shutdown always
		// leaves storage consistent with memory.
		store.SaveAll(shutdownCtx)
		app.Shutdown(shutdownCtx)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 BStay server listening on port", port)

	app.Listen(":"+port, iris.WithoutInterruptHandler)
}
