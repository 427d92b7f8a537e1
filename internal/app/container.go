package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"shareit-backend/internal/api"
	"shareit-backend/internal/booking"
	"shareit-backend/internal/item"
	"shareit-backend/internal/itemrequest"
	"shareit-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router *gin.Engine
}

// NewContainer initializes all modules and returns the container.
// Wiring is explicit constructor injection; there are no ambient singletons.
func NewContainer(cfg Config) *Container {
	// User module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo)

	// Booking storage doubles as the item module's view of bookings.
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)

	// Item request storage resolves request ids for item listings.
	requestRepo := itemrequest.NewPgxRepository(cfg.DBPool)

	// Item module (items + comments)
	itemRepo := item.NewPgxRepository(cfg.DBPool)
	commentRepo := item.NewPgxCommentRepository(cfg.DBPool)
	itemService := item.NewService(itemRepo, commentRepo, bookingRepo, requestRepo, userService)

	// Item request module
	requestService := itemrequest.NewService(requestRepo, itemRepo, userService)

	// Booking module
	bookingService := booking.NewService(bookingRepo, itemService, userService)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		UserService:    userService,
		ItemService:    itemService,
		RequestService: requestService,
		BookingService: bookingService,
	})

	return &Container{Router: router}
}
