package http

import (
	"time"

	"shareit-backend/internal/item"
)

type CreateItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Available   *bool  `json:"available" binding:"required"`
	RequestID   *int64 `json:"requestId"`
}

type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required,max=1000"`
}

type CommentResponse struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

func NewCommentResponse(cm *item.Comment) CommentResponse {
	return CommentResponse{
		ID:         cm.ID,
		Text:       cm.Text,
		AuthorName: cm.AuthorName,
		Created:    cm.Created,
	}
}

// BookingIntervalResponse is the owner-only last/next booking view.
type BookingIntervalResponse struct {
	ID       int64     `json:"id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	BookerID int64     `json:"bookerId"`
}

func newIntervalResponse(iv *item.BookingInterval) *BookingIntervalResponse {
	if iv == nil {
		return nil
	}
	return &BookingIntervalResponse{
		ID:       iv.ID,
		Start:    iv.Start,
		End:      iv.End,
		BookerID: iv.BookerID,
	}
}

type ItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId"`
}

func NewItemResponse(it *item.Item) ItemResponse {
	return ItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		RequestID:   it.RequestID,
	}
}

type ItemDetailsResponse struct {
	ItemResponse
	LastBooking *BookingIntervalResponse `json:"lastBooking,omitempty"`
	NextBooking *BookingIntervalResponse `json:"nextBooking,omitempty"`
	Comments    []CommentResponse        `json:"comments"`
}

func NewItemDetailsResponse(d *item.Details) ItemDetailsResponse {
	comments := make([]CommentResponse, len(d.Comments))
	for i, cm := range d.Comments {
		comments[i] = NewCommentResponse(cm)
	}

	return ItemDetailsResponse{
		ItemResponse: NewItemResponse(d.Item),
		LastBooking:  newIntervalResponse(d.LastBooking),
		NextBooking:  newIntervalResponse(d.NextBooking),
		Comments:     comments,
	}
}

// ItemTag is the minimal item projection nested in other responses.
type ItemTag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
