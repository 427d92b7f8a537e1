package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shareit-backend/internal/identity"
	"shareit-backend/internal/itemrequest"
	"shareit-backend/internal/pkg/pagination"
	"shareit-backend/internal/pkg/request"
	"shareit-backend/internal/pkg/response"
)

const defaultPageSize = 20

type Handler struct {
	service itemrequest.Service
}

func NewHandler(service itemrequest.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateRequestRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "invalid request body: " + err.Error()})
		return
	}

	req, err := h.service.Create(c.Request.Context(), identity.UserID(c), body.Description)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewRequestResponse(req))
}

func (h *Handler) ListMine(c *gin.Context) {
	requests, err := h.service.ListMine(c.Request.Context(), identity.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]RequestWithItemsResponse, len(requests))
	for i, req := range requests {
		items[i] = NewRequestWithItemsResponse(req)
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) ListOthers(c *gin.Context) {
	page, err := pagination.FromQuery(c, defaultPageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	requests, err := h.service.ListOthers(c.Request.Context(), identity.UserID(c), page.Limit(), page.Offset())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]RequestWithItemsResponse, len(requests))
	for i, req := range requests {
		items[i] = NewRequestWithItemsResponse(req)
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := request.BindID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	req, err := h.service.GetByID(c.Request.Context(), identity.UserID(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewRequestWithItemsResponse(req))
}
