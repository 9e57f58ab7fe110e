package response

import (
	"time"

	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemRequestResponse struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	RequestorID uuid.UUID       `json:"requestor_id"`
	Created     time.Time       `json:"created"`
	Items       []*ItemResponse `json:"items"`
}

func FromRequestView(view *queries.RequestView) *ItemRequestResponse {
	items := FromItemViews(view.Items)
	if items == nil {
		items = []*ItemResponse{}
	}
	return &ItemRequestResponse{
		ID:          view.ID,
		Description: view.Description,
		RequestorID: view.RequestorID,
		Created:     view.Created,
		Items:       items,
	}
}

func FromRequestViews(views []*queries.RequestView) []*ItemRequestResponse {
	result := make([]*ItemRequestResponse, len(views))
	for i, v := range views {
		result[i] = FromRequestView(v)
	}
	return result
}
