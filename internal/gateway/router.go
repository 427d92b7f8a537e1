package gateway

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"shareit-backend/internal/api"
	"shareit-backend/internal/booking"
	"shareit-backend/internal/identity"
	"shareit-backend/internal/pkg/pagination"
	"shareit-backend/internal/pkg/response"
)

const defaultPageSize = 20

type createBookingBody struct {
	ItemID int64     `json:"itemId" binding:"required,min=1"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
}

// NewRouter builds the gateway router: every route validates what it can
// locally and forwards the rest to the upstream server.
func NewRouter(client *Client) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(api.RequestID())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, identity.Header, "X-Request-Id")
	r.Use(cors.New(corsConfig))

	r.GET("/manage/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	users := r.Group("/users")
	{
		users.POST("", client.Forward)
		users.PATCH("/:id", client.Forward)
		users.DELETE("/:id", client.Forward)
		users.GET("/:id", client.Forward)
		users.GET("", client.Forward)
	}

	items := r.Group("/items", identity.Required())
	{
		items.POST("", client.Forward)
		items.PATCH("/:id", client.Forward)
		items.GET("/search", checkPagination, client.Forward)
		items.GET("/:id", client.Forward)
		items.GET("", checkPagination, client.Forward)
		items.POST("/:id/comment", client.Forward)
	}

	requests := r.Group("/requests", identity.Required())
	{
		requests.POST("", client.Forward)
		requests.GET("", client.Forward)
		requests.GET("/all", checkPagination, client.Forward)
		requests.GET("/:id", client.Forward)
	}

	bookings := r.Group("/bookings", identity.Required())
	{
		bookings.POST("", checkBookingPeriod, client.Forward)
		bookings.PATCH("/:id", client.Forward)
		bookings.GET("/owner", checkState, checkPagination, client.Forward)
		bookings.GET("/:id", client.Forward)
		bookings.GET("", checkState, checkPagination, client.Forward)
	}

	return r
}

func checkPagination(c *gin.Context) {
	if _, err := pagination.FromQuery(c, defaultPageSize); err != nil {
		response.Error(c, err)
		c.Abort()
		return
	}
	c.Next()
}

func checkState(c *gin.Context) {
	if _, err := booking.ParseStateFilter(c.Query("state")); err != nil {
		response.Error(c, err)
		c.Abort()
		return
	}
	c.Next()
}

// checkBookingPeriod rejects malformed or past booking intervals before they
// reach the server. The body is restored so Forward can replay it upstream.
func checkBookingPeriod(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, err)
		c.Abort()
		return
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	var req createBookingBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "invalid request body"})
		c.Abort()
		return
	}
	if err := booking.ValidatePeriod(req.Start, req.End, time.Now()); err != nil {
		response.Error(c, err)
		c.Abort()
		return
	}

	c.Request.Body = io.NopCloser(bytes.NewReader(body))
	c.Next()
}
