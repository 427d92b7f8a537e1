package http

import (
	"time"

	"shareit-backend/internal/item"
	"shareit-backend/internal/itemrequest"
)

type CreateRequestRequest struct {
	Description string `json:"description" binding:"required,max=1000"`
}

// RequestedItemResponse is the availability-status view of an item that was
// listed in answer to a sharing request.
type RequestedItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   int64  `json:"requestId"`
}

func newRequestedItemResponse(it *item.Item) RequestedItemResponse {
	resp := RequestedItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
	}
	if it.RequestID != nil {
		resp.RequestID = *it.RequestID
	}
	return resp
}

type RequestResponse struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Created     time.Time `json:"created"`
}

func NewRequestResponse(req *itemrequest.ItemRequest) RequestResponse {
	return RequestResponse{
		ID:          req.ID,
		Description: req.Description,
		Created:     req.Created,
	}
}

type RequestWithItemsResponse struct {
	RequestResponse
	Items []RequestedItemResponse `json:"items"`
}

func NewRequestWithItemsResponse(w *itemrequest.WithItems) RequestWithItemsResponse {
	items := make([]RequestedItemResponse, len(w.Items))
	for i, it := range w.Items {
		items[i] = newRequestedItemResponse(it)
	}

	return RequestWithItemsResponse{
		RequestResponse: NewRequestResponse(w.Request),
		Items:           items,
	}
}
