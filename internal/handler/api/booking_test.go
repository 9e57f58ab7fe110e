//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"gearshare/internal/handler/api"
	"gearshare/internal/handler/middleware"
	resdto "gearshare/internal/handler/dto/response"
	"gearshare/internal/usecase/commands"
	"gearshare/internal/usecase/queries"
	"gearshare/tests/common/builder"
	"gearshare/tests/common/httptest"
	"gearshare/tests/common/testutil"
	commandsmock "gearshare/tests/mock/commands"
	queriesmock "gearshare/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	group := s.router.Group("/bookings")
	group.Use(middleware.RequireIdentity())
	group.POST("", s.handler.CreateBooking)
	group.GET("", s.handler.ListOwnBookings)
	group.GET("/owner", s.handler.ListOwnerBookings)
	group.GET("/:id", s.handler.GetBooking)
	group.PATCH("/:id", s.handler.DecideBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	b := builder.NewBookingBuilder()

	s.Run("success returns 201 with the created booking", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any(), b.BookerID).
			Return(b.BuildView(), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings",
			b.BuildCreateRequestDTO(), b.BookerID.String())

		var resp resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(b.ID, resp.ID)
		s.Equal("WAITING", resp.Status)
		s.Equal(b.ItemID, resp.Item.ID)
		s.Equal(b.BookerID, resp.Booker.ID)
	})

	s.Run("missing identity header", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings",
			b.BuildCreateRequestDTO(), "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "X-Sharer-User-Id")
	})

	s.Run("malformed identity header", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings",
			b.BuildCreateRequestDTO(), "not-a-uuid")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "X-Sharer-User-Id")
	})

	s.Run("missing item_id fails binding", func() {
		body := testutil.DtoMap(s.T(), b.BuildCreateRequestDTO(), testutil.Field("item_id", nil))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings",
			body, b.BookerID.String())

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("usecase error mapping", func() {
		cases := []struct {
			name       string
			err        error
			wantStatus int
		}{
			{name: "unknown booker", err: commands.ErrUserNotFound, wantStatus: http.StatusNotFound},
			{name: "unknown item", err: commands.ErrItemNotFound, wantStatus: http.StatusNotFound},
			{name: "missing period bound", err: commands.ErrMissingPeriod, wantStatus: http.StatusBadRequest},
			{name: "inverted period", err: commands.ErrInvalidPeriod, wantStatus: http.StatusBadRequest},
			{name: "unavailable item", err: commands.ErrItemUnavailable, wantStatus: http.StatusBadRequest},
			{name: "owner booking own item", err: commands.ErrOwnerBooking, wantStatus: http.StatusBadRequest},
		}

		for _, c := range cases {
			s.Run(c.name, func() {
				s.mockCommands.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, c.err)

				w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings",
					b.BuildCreateRequestDTO(), b.BookerID.String())

				httptest.AssertErrorResponse(s.T(), w, c.wantStatus, "")
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestDecideBooking() {
	b := builder.NewBookingBuilder()

	s.Run("approval returns the updated booking", func() {
		approved := builder.NewBookingBuilder()
		approved.ID = b.ID
		approved.Status = "APPROVED"

		s.mockCommands.EXPECT().
			Decide(gomock.Any(), b.OwnerID, b.ID, true).
			Return(approved.BuildView(), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/bookings/"+b.ID.String()+"?approved=true", nil, b.OwnerID.String())

		var resp resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("APPROVED", resp.Status)
	})

	s.Run("rejection", func() {
		rejected := builder.NewBookingBuilder()
		rejected.ID = b.ID
		rejected.Status = "REJECTED"

		s.mockCommands.EXPECT().
			Decide(gomock.Any(), b.OwnerID, b.ID, false).
			Return(rejected.BuildView(), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/bookings/"+b.ID.String()+"?approved=false", nil, b.OwnerID.String())

		var resp resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("REJECTED", resp.Status)
	})

	s.Run("missing approved query parameter", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/bookings/"+b.ID.String(), nil, b.OwnerID.String())

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "approved")
	})

	s.Run("non-boolean approved query parameter", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/bookings/"+b.ID.String()+"?approved=maybe", nil, b.OwnerID.String())

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "approved")
	})

	s.Run("malformed booking ID", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/bookings/not-a-uuid?approved=true", nil, b.OwnerID.String())

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("non-owner is forbidden", func() {
		stranger := uuid.New()
		s.mockCommands.EXPECT().
			Decide(gomock.Any(), stranger, b.ID, true).
			Return(nil, commands.ErrNotItemOwner)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/bookings/"+b.ID.String()+"?approved=true", nil, stranger.String())

		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "owner")
	})

	s.Run("already decided booking", func() {
		s.mockCommands.EXPECT().
			Decide(gomock.Any(), b.OwnerID, b.ID, true).
			Return(nil, commands.ErrAlreadyDecided)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/bookings/"+b.ID.String()+"?approved=true", nil, b.OwnerID.String())

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "already decided")
	})

	s.Run("unknown booking", func() {
		s.mockCommands.EXPECT().
			Decide(gomock.Any(), b.OwnerID, b.ID, true).
			Return(nil, commands.ErrBookingNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/bookings/"+b.ID.String()+"?approved=true", nil, b.OwnerID.String())

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	b := builder.NewBookingBuilder()

	s.Run("visible booking", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), b.BookerID, b.ID).
			Return(b.BuildView(), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings/"+b.ID.String(), nil, b.BookerID.String())

		var resp resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(b.ID, resp.ID)
	})

	s.Run("hidden or missing booking", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), b.BookerID, b.ID).
			Return(nil, queries.ErrBookingNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings/"+b.ID.String(), nil, b.BookerID.String())

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestListOwnBookings() {
	bookerID := uuid.New()

	s.Run("state query parameter is forwarded", func() {
		s.mockQueries.EXPECT().
			ListByBooker(gomock.Any(), bookerID, "PAST").
			Return([]*queries.BookingView{builder.NewBookingBuilder().BuildView()}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings?state=PAST", nil, bookerID.String())

		var resp []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp, 1)
	})

	s.Run("unknown state", func() {
		s.mockQueries.EXPECT().
			ListByBooker(gomock.Any(), bookerID, "UNSUPPORTED_STATUS").
			Return(nil, queries.ErrUnknownState)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings?state=UNSUPPORTED_STATUS", nil, bookerID.String())

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "UNSUPPORTED_STATUS")
	})
}

func (s *BookingHandlerTestSuite) TestListOwnerBookings() {
	ownerID := uuid.New()

	s.Run("empty result stays a JSON array", func() {
		s.mockQueries.EXPECT().
			ListByOwner(gomock.Any(), ownerID, "").
			Return([]*queries.BookingView{}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings/owner", nil, ownerID.String())

		var resp []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Empty(resp)
	})

	s.Run("owner without account", func() {
		s.mockQueries.EXPECT().
			ListByOwner(gomock.Any(), ownerID, "").
			Return(nil, queries.ErrUserNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings/owner", nil, ownerID.String())

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "User not found")
	})
}
