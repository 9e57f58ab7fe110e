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

type RequestHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRequestCommands
	mockQueries  *queriesmock.MockRequestQueries
	handler      *api.RequestHandler
}

func (s *RequestHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRequestCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRequestQueries(s.mockCtrl)
	s.handler = api.NewRequestHandler(s.mockCommands, s.mockQueries)

	group := s.router.Group("/requests")
	group.Use(middleware.RequireIdentity())
	group.POST("", s.handler.CreateRequest)
	group.GET("", s.handler.ListOwnRequests)
	group.GET("/all", s.handler.ListOtherRequests)
	group.GET("/:id", s.handler.GetRequest)
}

func (s *RequestHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRequestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RequestHandlerTestSuite))
}

func (s *RequestHandlerTestSuite) TestCreateRequest() {
	b := builder.NewRequestBuilder()

	s.Run("success returns 201 with the stored request", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), b.RequestorID, commands.CreateRequestInput{Description: b.Description}).
			Return(b.ID, nil)
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), b.RequestorID, b.ID).
			Return(b.BuildView(), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/requests",
			b.BuildCreateRequestDTO(), b.RequestorID.String())

		var resp resdto.ItemRequestResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(b.ID, resp.ID)
		s.NotNil(resp.Items)
	})

	s.Run("missing identity header", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/requests",
			b.BuildCreateRequestDTO(), "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "X-Sharer-User-Id")
	})

	s.Run("missing description fails binding", func() {
		body := testutil.DtoMap(s.T(), b.BuildCreateRequestDTO(), testutil.Field("description", nil))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/requests",
			body, b.RequestorID.String())

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("unknown requestor", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), b.RequestorID, gomock.Any()).
			Return(uuid.Nil, commands.ErrUserNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/requests",
			b.BuildCreateRequestDTO(), b.RequestorID.String())

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "User not found")
	})
}

func (s *RequestHandlerTestSuite) TestListOwnRequests() {
	requestorID := uuid.New()

	s.Run("own requests returned", func() {
		views := []*queries.RequestView{
			builder.NewRequestBuilder().With(func(b *builder.RequestBuilder) { b.RequestorID = requestorID }).BuildView(),
		}
		s.mockQueries.EXPECT().ListOwn(gomock.Any(), requestorID).Return(views, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/requests", nil, requestorID.String())

		var resp []resdto.ItemRequestResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp, 1)
	})

	s.Run("unknown requestor", func() {
		s.mockQueries.EXPECT().ListOwn(gomock.Any(), requestorID).Return(nil, queries.ErrUserNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/requests", nil, requestorID.String())

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "User not found")
	})
}

func (s *RequestHandlerTestSuite) TestListOtherRequests() {
	requestorID := uuid.New()

	s.Run("other users' requests returned via /requests/all", func() {
		views := []*queries.RequestView{builder.NewRequestBuilder().BuildView()}
		s.mockQueries.EXPECT().ListOthers(gomock.Any(), requestorID).Return(views, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/requests/all", nil, requestorID.String())

		var resp []resdto.ItemRequestResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp, 1)
	})
}

func (s *RequestHandlerTestSuite) TestGetRequest() {
	b := builder.NewRequestBuilder()
	actorID := uuid.New()

	s.Run("existing request", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), actorID, b.ID).Return(b.BuildView(), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/requests/"+b.ID.String(),
			nil, actorID.String())

		var resp resdto.ItemRequestResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(b.Description, resp.Description)
	})

	s.Run("unknown request", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), actorID, b.ID).Return(nil, queries.ErrRequestNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/requests/"+b.ID.String(),
			nil, actorID.String())

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Item request not found")
	})

	s.Run("malformed request ID", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/requests/not-a-uuid",
			nil, actorID.String())

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request ID")
	})
}
