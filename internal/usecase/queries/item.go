package queries

import (
	"context"
	"strings"
	"time"

	"gearshare/internal/infra"
	"gearshare/internal/pkg/clock"
	"gearshare/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrItemNotFound = errs.New("item not found")

// ItemBookingRow associates a short booking with its item for the bulk
// last/next queries.
type ItemBookingRow struct {
	ItemID  uuid.UUID
	Booking BookingRef
}

type ItemCommentRow struct {
	ItemID  uuid.UUID
	Comment CommentView
}

type ItemReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	FindAllByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ItemView, error)
	Search(ctx context.Context, text string) ([]*ItemView, error)
	// LastForItem: the APPROVED booking with the greatest start <= now.
	LastForItem(ctx context.Context, itemID uuid.UUID, now time.Time) (*BookingRef, error)
	// NextForItem: the APPROVED booking with the smallest start > now.
	NextForItem(ctx context.Context, itemID uuid.UUID, now time.Time) (*BookingRef, error)
	// LastForItems returns past-or-current APPROVED bookings for all items,
	// ordered start DESC so the first row per item is the most recent.
	LastForItems(ctx context.Context, itemIDs []uuid.UUID, now time.Time) ([]*ItemBookingRow, error)
	// NextForItems returns future APPROVED bookings ordered start ASC so the
	// first row per item is the soonest.
	NextForItems(ctx context.Context, itemIDs []uuid.UUID, now time.Time) ([]*ItemBookingRow, error)
}

type CommentReadStore interface {
	FindAllForItem(ctx context.Context, itemID uuid.UUID) ([]*CommentView, error)
	FindForItems(ctx context.Context, itemIDs []uuid.UUID) ([]*ItemCommentRow, error)
}

type ItemQueries interface {
	// GetByID withholds the availability index (last/next) from everyone but
	// the item's owner.
	GetByID(ctx context.Context, actorID, itemID uuid.UUID) (*ItemDetailView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ItemDetailView, error)
	Search(ctx context.Context, text string) ([]*ItemView, error)
}

type itemQueriesImpl struct {
	items    ItemReadStore
	comments CommentReadStore
	clock    clock.Clock
}

func NewItemQueries(items ItemReadStore, comments CommentReadStore, clk clock.Clock) ItemQueries {
	return &itemQueriesImpl{items: items, comments: comments, clock: clk}
}

func (q *itemQueriesImpl) GetByID(ctx context.Context, actorID, itemID uuid.UUID) (*ItemDetailView, error) {
	view, err := q.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	detail := &ItemDetailView{ItemView: *view}

	if view.OwnerID == actorID {
		now := q.clock.Now()
		if detail.LastBooking, err = q.items.LastForItem(ctx, itemID, now); err != nil {
			return nil, err
		}
		if detail.NextBooking, err = q.items.NextForItem(ctx, itemID, now); err != nil {
			return nil, err
		}
	}

	if detail.Comments, err = q.comments.FindAllForItem(ctx, itemID); err != nil {
		return nil, err
	}
	return detail, nil
}

func (q *itemQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ItemDetailView, error) {
	items, err := q.items.FindAllByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []*ItemDetailView{}, nil
	}

	ids := make([]uuid.UUID, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}

	now := q.clock.Now()
	past, err := q.items.LastForItems(ctx, ids, now)
	if err != nil {
		return nil, err
	}
	future, err := q.items.NextForItems(ctx, ids, now)
	if err != nil {
		return nil, err
	}
	comments, err := q.comments.FindForItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	// First row per item wins; the store's ordering makes that the most
	// recent (past) or soonest (future) booking.
	lastByItem := firstPerItem(past)
	nextByItem := firstPerItem(future)

	commentsByItem := make(map[uuid.UUID][]*CommentView)
	for _, row := range comments {
		c := row.Comment
		commentsByItem[row.ItemID] = append(commentsByItem[row.ItemID], &c)
	}

	result := make([]*ItemDetailView, len(items))
	for i, it := range items {
		detail := &ItemDetailView{
			ItemView:    *it,
			LastBooking: lastByItem[it.ID],
			NextBooking: nextByItem[it.ID],
			Comments:    commentsByItem[it.ID],
		}
		if detail.Comments == nil {
			detail.Comments = []*CommentView{}
		}
		result[i] = detail
	}
	return result, nil
}

func (q *itemQueriesImpl) Search(ctx context.Context, text string) ([]*ItemView, error) {
	if strings.TrimSpace(text) == "" {
		return []*ItemView{}, nil
	}
	return q.items.Search(ctx, text)
}

func firstPerItem(rows []*ItemBookingRow) map[uuid.UUID]*BookingRef {
	byItem := make(map[uuid.UUID]*BookingRef)
	for _, row := range rows {
		if _, ok := byItem[row.ItemID]; !ok {
			ref := row.Booking
			byItem[row.ItemID] = &ref
		}
	}
	return byItem
}
