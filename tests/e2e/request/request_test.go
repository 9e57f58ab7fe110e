//go:build e2e

package request_test

import (
	"fmt"
	"net/http"
	"testing"

	"gearshare/internal/handler/dto/request"
	"gearshare/internal/handler/dto/response"
	"gearshare/tests/common/dbtest"
	"gearshare/tests/common/httptest"
	"gearshare/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const requestsURL = "/requests"

type RequestSuite struct {
	e2e.SharedSuite
}

func (s *RequestSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestRequestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RequestSuite))
}

func ptrBool(b bool) *bool { return &b }

// =============================================================================
// TestCreateRequest - Item request creation API tests
// =============================================================================

func (s *RequestSuite) TestCreateRequest() {
	s.Run("Normal case: User can post an item request", func() {
		t := s.T()

		requestorID := dbtest.CreateTestUser(t, s.DB, "Requestor", "requestor@example.com")

		reqBody := request.CreateItemRequestRequest{Description: "Need a drill for the weekend"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, requestsURL, reqBody, requestorID.String())
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.ItemRequestResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.NotEqual(t, uuid.Nil, created.ID)
		require.Equal(t, "Need a drill for the weekend", created.Description)
		require.Equal(t, requestorID, created.RequestorID)
		require.NotNil(t, created.Items)
		require.Empty(t, created.Items)
		require.False(t, created.Created.IsZero())
	})

	s.Run("Error case: Unknown user rejected", func() {
		t := s.T()

		reqBody := request.CreateItemRequestRequest{Description: "Need a ladder"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, requestsURL, reqBody, uuid.New().String())
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "User not found")
	})

	s.Run("Error case: Missing description rejected", func() {
		t := s.T()

		requestorID := dbtest.CreateTestUser(t, s.DB, "Requestor", "requestor@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, requestsURL, map[string]any{}, requestorID.String())
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request format")
	})
}

// =============================================================================
// TestListRequests - Own and other listings with answering items
// =============================================================================

func (s *RequestSuite) TestListRequests() {
	s.Run("Normal case: Own listing carries answering items", func() {
		t := s.T()

		requestorID := dbtest.CreateTestUser(t, s.DB, "Requestor", "requestor@example.com")
		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		requestID := dbtest.CreateTestRequest(t, s.DB, requestorID, "Need a drill for the weekend")

		itemReq := request.CreateItemRequest{
			Name:        "Cordless Drill",
			Description: "Answering the weekend request",
			Available:   ptrBool(true),
			RequestID:   &requestID,
		}
		iw := httptest.PerformRequest(t, s.Router, http.MethodPost, "/items", itemReq, ownerID.String())
		require.Equal(t, http.StatusCreated, iw.Code, iw.Body.String())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL, nil, requestorID.String())
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var own []response.ItemRequestResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &own))
		require.Len(t, own, 1)
		require.Equal(t, requestID, own[0].ID)
		require.Len(t, own[0].Items, 1)
		require.Equal(t, "Cordless Drill", own[0].Items[0].Name)
		require.NotNil(t, own[0].Items[0].RequestID)
		require.Equal(t, requestID, *own[0].Items[0].RequestID)
	})

	s.Run("Normal case: Others listing excludes own requests", func() {
		t := s.T()

		requestorID := dbtest.CreateTestUser(t, s.DB, "Requestor", "requestor@example.com")
		otherID := dbtest.CreateTestUser(t, s.DB, "Other", "other@example.com")
		ownRequestID := dbtest.CreateTestRequest(t, s.DB, requestorID, "Need a drill")
		otherRequestID := dbtest.CreateTestRequest(t, s.DB, otherID, "Need a tent")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL+"/all", nil, requestorID.String())
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var others []response.ItemRequestResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &others))
		require.Len(t, others, 1)
		require.Equal(t, otherRequestID, others[0].ID)
		require.NotEqual(t, ownRequestID, others[0].ID)
	})

	s.Run("Normal case: Empty own listing is a JSON array", func() {
		t := s.T()

		requestorID := dbtest.CreateTestUser(t, s.DB, "Requestor", "requestor@example.com")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL, nil, requestorID.String())
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, "[]", w.Body.String())
	})

	s.Run("Error case: Unknown user rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL, nil, uuid.New().String())
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "User not found")
	})
}

// =============================================================================
// TestGetRequest - Request detail API tests
// =============================================================================

func (s *RequestSuite) TestGetRequest() {
	s.Run("Normal case: Any known user can read any request", func() {
		t := s.T()

		requestorID := dbtest.CreateTestUser(t, s.DB, "Requestor", "requestor@example.com")
		readerID := dbtest.CreateTestUser(t, s.DB, "Reader", "reader@example.com")
		requestID := dbtest.CreateTestRequest(t, s.DB, requestorID, "Need a drill")

		url := fmt.Sprintf("%s/%s", requestsURL, requestID)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, readerID.String())
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var got response.ItemRequestResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))
		require.Equal(t, requestID, got.ID)
		require.Equal(t, "Need a drill", got.Description)
	})

	s.Run("Error case: Unknown request returns not found", func() {
		t := s.T()

		readerID := dbtest.CreateTestUser(t, s.DB, "Reader", "reader@example.com")
		url := fmt.Sprintf("%s/%s", requestsURL, uuid.New())
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, readerID.String())
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Item request not found")
	})
}
