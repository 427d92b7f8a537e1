package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit-backend/internal/booking"
	"shareit-backend/internal/identity"
	"shareit-backend/internal/pkg/pagination"
	"shareit-backend/internal/pkg/request"
	"shareit-backend/internal/pkg/response"
)

const defaultPageSize = 20

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "invalid request body: " + err.Error()})
		return
	}

	b, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		BookerID: identity.UserID(c),
		ItemID:   body.ItemID,
		Start:    body.Start,
		End:      body.End,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

func (h *Handler) Approve(c *gin.Context) {
	id, err := request.BindID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "approved query parameter must be a boolean"})
		return
	}

	b, err := h.service.Approve(c.Request.Context(), identity.UserID(c), id, approved)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Get(c *gin.Context) {
	id, err := request.BindID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), identity.UserID(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) List(c *gin.Context) {
	h.list(c, h.service.ListByBooker)
}

func (h *Handler) ListOwner(c *gin.Context) {
	h.list(c, h.service.ListByOwner)
}

func (h *Handler) list(
	c *gin.Context,
	query func(ctx context.Context, userID int64, filter booking.StateFilter, limit, offset int) ([]*booking.Booking, error),
) {
	filter, err := booking.ParseStateFilter(c.Query("state"))
	if err != nil {
		response.Error(c, err)
		return
	}

	page, err := pagination.FromQuery(c, defaultPageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	bookings, err := query(c.Request.Context(), identity.UserID(c), filter, page.Limit(), page.Offset())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, items)
}
