//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"gearshare/internal/pkg/clock"
	"gearshare/internal/usecase/queries"
	"gearshare/tests/common/builder"
	queriesmock "gearshare/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ItemQueriesTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	items     *queriesmock.MockItemReadStore
	comments  *queriesmock.MockCommentReadStore
	clock     *clock.MockClock
	queries   queries.ItemQueries
	fixedTime time.Time
}

func (s *ItemQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.items = queriesmock.NewMockItemReadStore(s.mockCtrl)
	s.comments = queriesmock.NewMockCommentReadStore(s.mockCtrl)
	s.fixedTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.clock = clock.NewMockClock(s.fixedTime)
	s.queries = queries.NewItemQueries(s.items, s.comments, s.clock)
}

func (s *ItemQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestItemQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(ItemQueriesTestSuite))
}

func (s *ItemQueriesTestSuite) TestGetByID() {
	b := builder.NewItemBuilder()
	view := b.BuildView()

	s.Run("owner sees last and next bookings", func() {
		last := builder.NewBookingBuilder().BuildRef()
		next := builder.NewBookingBuilder().BuildRef()

		s.items.EXPECT().FindByID(gomock.Any(), b.ID).Return(view, nil)
		s.items.EXPECT().LastForItem(gomock.Any(), b.ID, s.fixedTime).Return(last, nil)
		s.items.EXPECT().NextForItem(gomock.Any(), b.ID, s.fixedTime).Return(next, nil)
		s.comments.EXPECT().FindAllForItem(gomock.Any(), b.ID).Return([]*queries.CommentView{}, nil)

		actual, err := s.queries.GetByID(context.Background(), b.OwnerID, b.ID)
		require.NoError(s.T(), err)
		assert.Equal(s.T(), last, actual.LastBooking)
		assert.Equal(s.T(), next, actual.NextBooking)
	})

	s.Run("non-owner gets no availability index", func() {
		s.items.EXPECT().FindByID(gomock.Any(), b.ID).Return(view, nil)
		s.comments.EXPECT().FindAllForItem(gomock.Any(), b.ID).Return([]*queries.CommentView{}, nil)

		actual, err := s.queries.GetByID(context.Background(), uuid.New(), b.ID)
		require.NoError(s.T(), err)
		assert.Nil(s.T(), actual.LastBooking)
		assert.Nil(s.T(), actual.NextBooking)
		assert.NotNil(s.T(), actual.Comments)
	})

	s.Run("missing item", func() {
		s.items.EXPECT().FindByID(gomock.Any(), b.ID).Return(nil, notFoundErr())

		actual, err := s.queries.GetByID(context.Background(), b.OwnerID, b.ID)
		require.ErrorIs(s.T(), err, queries.ErrItemNotFound)
		assert.Nil(s.T(), actual)
	})
}

func (s *ItemQueriesTestSuite) TestListByOwner() {
	ownerID := uuid.New()

	item1 := builder.NewItemBuilder().With(func(b *builder.ItemBuilder) { b.OwnerID = ownerID })
	item2 := builder.NewItemBuilder().With(func(b *builder.ItemBuilder) { b.OwnerID = ownerID })

	s.Run("first row per item wins for last and next", func() {
		views := []*queries.ItemView{item1.BuildView(), item2.BuildView()}
		ids := []uuid.UUID{item1.ID, item2.ID}

		mostRecent := builder.NewBookingBuilder().BuildRef()
		older := builder.NewBookingBuilder().BuildRef()
		soonest := builder.NewBookingBuilder().BuildRef()

		s.items.EXPECT().FindAllByOwner(gomock.Any(), ownerID).Return(views, nil)
		s.items.EXPECT().LastForItems(gomock.Any(), ids, s.fixedTime).Return([]*queries.ItemBookingRow{
			{ItemID: item1.ID, Booking: *mostRecent},
			{ItemID: item1.ID, Booking: *older},
		}, nil)
		s.items.EXPECT().NextForItems(gomock.Any(), ids, s.fixedTime).Return([]*queries.ItemBookingRow{
			{ItemID: item2.ID, Booking: *soonest},
		}, nil)
		s.comments.EXPECT().FindForItems(gomock.Any(), ids).Return([]*queries.ItemCommentRow{}, nil)

		actual, err := s.queries.ListByOwner(context.Background(), ownerID)
		require.NoError(s.T(), err)
		require.Len(s.T(), actual, 2)

		assert.Equal(s.T(), mostRecent, actual[0].LastBooking)
		assert.Nil(s.T(), actual[0].NextBooking)
		assert.Nil(s.T(), actual[1].LastBooking)
		assert.Equal(s.T(), soonest, actual[1].NextBooking)
	})

	s.Run("comments are grouped per item", func() {
		views := []*queries.ItemView{item1.BuildView(), item2.BuildView()}
		ids := []uuid.UUID{item1.ID, item2.ID}

		s.items.EXPECT().FindAllByOwner(gomock.Any(), ownerID).Return(views, nil)
		s.items.EXPECT().LastForItems(gomock.Any(), ids, s.fixedTime).Return(nil, nil)
		s.items.EXPECT().NextForItems(gomock.Any(), ids, s.fixedTime).Return(nil, nil)
		s.comments.EXPECT().FindForItems(gomock.Any(), ids).Return([]*queries.ItemCommentRow{
			{ItemID: item2.ID, Comment: queries.CommentView{ID: uuid.New(), Text: "solid", AuthorName: "Alex"}},
		}, nil)

		actual, err := s.queries.ListByOwner(context.Background(), ownerID)
		require.NoError(s.T(), err)
		require.Len(s.T(), actual, 2)

		assert.Empty(s.T(), actual[0].Comments)
		require.Len(s.T(), actual[1].Comments, 1)
		assert.Equal(s.T(), "solid", actual[1].Comments[0].Text)
	})

	s.Run("owner without items gets an empty list", func() {
		s.items.EXPECT().FindAllByOwner(gomock.Any(), ownerID).Return([]*queries.ItemView{}, nil)

		actual, err := s.queries.ListByOwner(context.Background(), ownerID)
		require.NoError(s.T(), err)
		assert.Empty(s.T(), actual)
	})
}

func (s *ItemQueriesTestSuite) TestSearch() {
	s.Run("blank text short-circuits to an empty list", func() {
		actual, err := s.queries.Search(context.Background(), "   ")
		require.NoError(s.T(), err)
		assert.Empty(s.T(), actual)
	})

	s.Run("non-blank text is forwarded to the store", func() {
		view := builder.NewItemBuilder().BuildView()
		s.items.EXPECT().Search(gomock.Any(), "drill").Return([]*queries.ItemView{view}, nil)

		actual, err := s.queries.Search(context.Background(), "drill")
		require.NoError(s.T(), err)
		require.Len(s.T(), actual, 1)
		assert.Equal(s.T(), view, actual[0])
	})
}
