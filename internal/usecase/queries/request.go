package queries

import (
	"context"

	"gearshare/internal/infra"
	"gearshare/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRequestNotFound = errs.New("item request not found")

type RequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	// FindByRequestor returns the user's own requests, newest first.
	FindByRequestor(ctx context.Context, requestorID uuid.UUID) ([]*RequestView, error)
	// FindByOtherRequestors returns everyone else's requests, newest first.
	FindByOtherRequestors(ctx context.Context, requestorID uuid.UUID) ([]*RequestView, error)
	// ItemsForRequests loads the items listed in answer to the given requests.
	ItemsForRequests(ctx context.Context, requestIDs []uuid.UUID) ([]*ItemView, error)
}

type RequestQueries interface {
	GetByID(ctx context.Context, actorID, id uuid.UUID) (*RequestView, error)
	ListOwn(ctx context.Context, requestorID uuid.UUID) ([]*RequestView, error)
	ListOthers(ctx context.Context, requestorID uuid.UUID) ([]*RequestView, error)
}

type requestQueriesImpl struct {
	requests RequestReadStore
	users    UserReadStore
}

func NewRequestQueries(requests RequestReadStore, users UserReadStore) RequestQueries {
	return &requestQueriesImpl{requests: requests, users: users}
}

func (q *requestQueriesImpl) GetByID(ctx context.Context, actorID, id uuid.UUID) (*RequestView, error) {
	if err := q.requireUser(ctx, actorID); err != nil {
		return nil, err
	}
	view, err := q.requests.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	if err := q.attachItems(ctx, []*RequestView{view}); err != nil {
		return nil, err
	}
	return view, nil
}

func (q *requestQueriesImpl) ListOwn(ctx context.Context, requestorID uuid.UUID) ([]*RequestView, error) {
	if err := q.requireUser(ctx, requestorID); err != nil {
		return nil, err
	}
	views, err := q.requests.FindByRequestor(ctx, requestorID)
	if err != nil {
		return nil, err
	}
	if err := q.attachItems(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

func (q *requestQueriesImpl) ListOthers(ctx context.Context, requestorID uuid.UUID) ([]*RequestView, error) {
	if err := q.requireUser(ctx, requestorID); err != nil {
		return nil, err
	}
	views, err := q.requests.FindByOtherRequestors(ctx, requestorID)
	if err != nil {
		return nil, err
	}
	if err := q.attachItems(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

func (q *requestQueriesImpl) requireUser(ctx context.Context, id uuid.UUID) error {
	if _, err := q.users.FindByID(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func (q *requestQueriesImpl) attachItems(ctx context.Context, views []*RequestView) error {
	if len(views) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(views))
	for i, v := range views {
		ids[i] = v.ID
	}
	items, err := q.requests.ItemsForRequests(ctx, ids)
	if err != nil {
		return err
	}
	byRequest := make(map[uuid.UUID][]*ItemView)
	for _, it := range items {
		if it.RequestID != nil {
			byRequest[*it.RequestID] = append(byRequest[*it.RequestID], it)
		}
	}
	for _, v := range views {
		v.Items = byRequest[v.ID]
		if v.Items == nil {
			v.Items = []*ItemView{}
		}
	}
	return nil
}
