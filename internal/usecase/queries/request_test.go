//go:build unit

package queries_test

import (
	"context"
	"testing"

	"gearshare/internal/usecase/queries"
	"gearshare/tests/common/builder"
	queriesmock "gearshare/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RequestQueriesTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	requests *queriesmock.MockRequestReadStore
	users    *queriesmock.MockUserReadStore
	queries  queries.RequestQueries
}

func (s *RequestQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.requests = queriesmock.NewMockRequestReadStore(s.mockCtrl)
	s.users = queriesmock.NewMockUserReadStore(s.mockCtrl)
	s.queries = queries.NewRequestQueries(s.requests, s.users)
}

func (s *RequestQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRequestQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(RequestQueriesTestSuite))
}

func (s *RequestQueriesTestSuite) expectUser(id uuid.UUID) {
	s.users.EXPECT().FindByID(gomock.Any(), id).
		Return(&queries.UserView{ID: id, Name: "Requestor", Email: "requestor@example.com"}, nil)
}

func (s *RequestQueriesTestSuite) TestListOwn() {
	requestorID := uuid.New()

	s.Run("answered items are attached to their request", func() {
		req := builder.NewRequestBuilder().With(func(b *builder.RequestBuilder) { b.RequestorID = requestorID })
		view := req.BuildView()

		answer := builder.NewItemBuilder().With(func(b *builder.ItemBuilder) { b.RequestID = &req.ID }).BuildView()

		s.expectUser(requestorID)
		s.requests.EXPECT().FindByRequestor(gomock.Any(), requestorID).
			Return([]*queries.RequestView{view}, nil)
		s.requests.EXPECT().ItemsForRequests(gomock.Any(), []uuid.UUID{req.ID}).
			Return([]*queries.ItemView{answer}, nil)

		actual, err := s.queries.ListOwn(context.Background(), requestorID)
		require.NoError(s.T(), err)
		require.Len(s.T(), actual, 1)
		require.Len(s.T(), actual[0].Items, 1)
		assert.Equal(s.T(), answer.ID, actual[0].Items[0].ID)
	})

	s.Run("request with no answers keeps an empty item list", func() {
		view := builder.NewRequestBuilder().
			With(func(b *builder.RequestBuilder) { b.RequestorID = requestorID }).
			BuildView()

		s.expectUser(requestorID)
		s.requests.EXPECT().FindByRequestor(gomock.Any(), requestorID).
			Return([]*queries.RequestView{view}, nil)
		s.requests.EXPECT().ItemsForRequests(gomock.Any(), gomock.Any()).
			Return([]*queries.ItemView{}, nil)

		actual, err := s.queries.ListOwn(context.Background(), requestorID)
		require.NoError(s.T(), err)
		require.Len(s.T(), actual, 1)
		assert.NotNil(s.T(), actual[0].Items)
		assert.Empty(s.T(), actual[0].Items)
	})

	s.Run("unknown requestor", func() {
		s.users.EXPECT().FindByID(gomock.Any(), requestorID).Return(nil, notFoundErr())

		actual, err := s.queries.ListOwn(context.Background(), requestorID)
		require.ErrorIs(s.T(), err, queries.ErrUserNotFound)
		assert.Nil(s.T(), actual)
	})
}

func (s *RequestQueriesTestSuite) TestGetByID() {
	actorID := uuid.New()
	req := builder.NewRequestBuilder()

	s.Run("any known user can read any request", func() {
		s.expectUser(actorID)
		s.requests.EXPECT().FindByID(gomock.Any(), req.ID).Return(req.BuildView(), nil)
		s.requests.EXPECT().ItemsForRequests(gomock.Any(), []uuid.UUID{req.ID}).
			Return([]*queries.ItemView{}, nil)

		actual, err := s.queries.GetByID(context.Background(), actorID, req.ID)
		require.NoError(s.T(), err)
		assert.Equal(s.T(), req.ID, actual.ID)
	})

	s.Run("missing request", func() {
		s.expectUser(actorID)
		s.requests.EXPECT().FindByID(gomock.Any(), req.ID).Return(nil, notFoundErr())

		actual, err := s.queries.GetByID(context.Background(), actorID, req.ID)
		require.ErrorIs(s.T(), err, queries.ErrRequestNotFound)
		assert.Nil(s.T(), actual)
	})
}
