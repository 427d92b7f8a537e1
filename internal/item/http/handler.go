package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shareit-backend/internal/identity"
	"shareit-backend/internal/item"
	"shareit-backend/internal/pkg/pagination"
	"shareit-backend/internal/pkg/request"
	"shareit-backend/internal/pkg/response"
)

const defaultPageSize = 20

type Handler struct {
	service item.Service
}

func NewHandler(service item.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateItemRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "invalid request body: " + err.Error()})
		return
	}

	it, err := h.service.Create(c.Request.Context(), item.CreateRequest{
		OwnerID:     identity.UserID(c),
		Name:        body.Name,
		Description: body.Description,
		Available:   *body.Available,
		RequestID:   body.RequestID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewItemResponse(it))
}

func (h *Handler) Update(c *gin.Context) {
	id, err := request.BindID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var body UpdateItemRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "invalid request body: " + err.Error()})
		return
	}

	it, err := h.service.Update(c.Request.Context(), identity.UserID(c), id, item.Patch{
		Name:        body.Name,
		Description: body.Description,
		Available:   body.Available,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewItemResponse(it))
}

func (h *Handler) Get(c *gin.Context) {
	id, err := request.BindID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	details, err := h.service.GetDetails(c.Request.Context(), identity.UserID(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewItemDetailsResponse(details))
}

func (h *Handler) List(c *gin.Context) {
	page, err := pagination.FromQuery(c, defaultPageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	details, err := h.service.ListOwnerItems(c.Request.Context(), identity.UserID(c), page.Limit(), page.Offset())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ItemDetailsResponse, len(details))
	for i, d := range details {
		items[i] = NewItemDetailsResponse(d)
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) Search(c *gin.Context) {
	page, err := pagination.FromQuery(c, defaultPageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	found, err := h.service.Search(c.Request.Context(), c.Query("text"), page.Limit(), page.Offset())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ItemResponse, len(found))
	for i, it := range found {
		items[i] = NewItemResponse(it)
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) AddComment(c *gin.Context) {
	id, err := request.BindID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var body CreateCommentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "invalid request body: " + err.Error()})
		return
	}

	cm, err := h.service.AddComment(c.Request.Context(), identity.UserID(c), id, body.Text)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewCommentResponse(cm))
}
