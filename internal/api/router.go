package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"shareit-backend/internal/booking"
	bookingHttp "shareit-backend/internal/booking/http"
	"shareit-backend/internal/identity"
	"shareit-backend/internal/item"
	itemHttp "shareit-backend/internal/item/http"
	"shareit-backend/internal/itemrequest"
	requestHttp "shareit-backend/internal/itemrequest/http"
	"shareit-backend/internal/user"
	userHttp "shareit-backend/internal/user/http"
)

// Config holds the services and settings the router needs.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	UserService    user.Service
	ItemService    item.Service
	RequestService itemrequest.Service
	BookingService booking.Service
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, identity) and
// registering routes for the four modules.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global middleware:
	// - Logger: logs request information to the console.
	// - Recovery: captures panics and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery(), RequestID())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", identity.Header}
	r.Use(cors.New(corsConfig))

	// identityMiddleware: requires a valid X-Sharer-User-Id header.
	identityMiddleware := identity.Required()

	// Initialize HTTP handlers for each module.
	userHandler := userHttp.NewHandler(cfg.UserService)
	itemHandler := itemHttp.NewHandler(cfg.ItemService)
	requestHandler := requestHttp.NewHandler(cfg.RequestService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)

	r.GET("/manage/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	root := r.Group("")
	{
		userHttp.RegisterRoutes(root, userHandler)
		itemHttp.RegisterRoutes(root, itemHandler, identityMiddleware)
		requestHttp.RegisterRoutes(root, requestHandler, identityMiddleware)
		bookingHttp.RegisterRoutes(root, bookingHandler, identityMiddleware)
	}

	return r
}
