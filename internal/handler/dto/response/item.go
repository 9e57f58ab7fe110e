package response

import (
	"time"

	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ItemResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Available   bool       `json:"available"`
	OwnerID     uuid.UUID  `json:"owner_id"`
	RequestID   *uuid.UUID `json:"request_id,omitempty"`
}

type BookingRefResponse struct {
	ID       uuid.UUID `json:"id"`
	BookerID uuid.UUID `json:"booker_id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type CommentResponse struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"author_name"`
	Created    time.Time `json:"created"`
}

type ItemDetailResponse struct {
	ItemResponse
	LastBooking *BookingRefResponse `json:"last_booking,omitempty"`
	NextBooking *BookingRefResponse `json:"next_booking,omitempty"`
	Comments    []*CommentResponse  `json:"comments"`
}

func FromItemView(view *queries.ItemView) *ItemResponse {
	var resp ItemResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromItemViews(views []*queries.ItemView) []*ItemResponse {
	result := make([]*ItemResponse, len(views))
	for i, v := range views {
		result[i] = FromItemView(v)
	}
	return result
}

func FromItemDetailView(view *queries.ItemDetailView) *ItemDetailResponse {
	resp := &ItemDetailResponse{
		ItemResponse: *FromItemView(&view.ItemView),
		LastBooking:  fromBookingRef(view.LastBooking),
		NextBooking:  fromBookingRef(view.NextBooking),
		Comments:     FromCommentViews(view.Comments),
	}
	return resp
}

func FromItemDetailViews(views []*queries.ItemDetailView) []*ItemDetailResponse {
	result := make([]*ItemDetailResponse, len(views))
	for i, v := range views {
		result[i] = FromItemDetailView(v)
	}
	return result
}

func FromCommentView(view *queries.CommentView) *CommentResponse {
	var resp CommentResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromCommentViews(views []*queries.CommentView) []*CommentResponse {
	result := make([]*CommentResponse, len(views))
	for i, v := range views {
		result[i] = FromCommentView(v)
	}
	return result
}

func fromBookingRef(ref *queries.BookingRef) *BookingRefResponse {
	if ref == nil {
		return nil
	}
	var resp BookingRefResponse
	_ = copier.Copy(&resp, ref)
	return &resp
}
