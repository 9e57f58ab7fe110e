//go:build e2e

package item_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"gearshare/internal/handler/dto/request"
	"gearshare/internal/handler/dto/response"
	"gearshare/tests/common/dbtest"
	"gearshare/tests/common/httptest"
	"gearshare/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const itemsURL = "/items"

type ItemSuite struct {
	e2e.SharedSuite
}

func (s *ItemSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestItemSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ItemSuite))
}

func ptrBool(b bool) *bool       { return &b }
func ptrString(v string) *string { return &v }

// =============================================================================
// TestCreateItem - Item creation API tests
// =============================================================================

func (s *ItemSuite) TestCreateItem() {
	s.Run("Normal case: Owner can create an item", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")

		reqBody := request.CreateItemRequest{
			Name:        "Cordless Drill",
			Description: "18V cordless drill with two batteries",
			Available:   ptrBool(true),
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, itemsURL, reqBody, ownerID.String())
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.ItemResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.NotEqual(t, uuid.Nil, created.ID)
		require.Equal(t, "Cordless Drill", created.Name)
		require.Equal(t, "18V cordless drill with two batteries", created.Description)
		require.True(t, created.Available)
		require.Equal(t, ownerID, created.OwnerID)
		require.Nil(t, created.RequestID)
	})

	s.Run("Normal case: Item answering a request carries the request ID", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		requestorID := dbtest.CreateTestUser(t, s.DB, "Requestor", "requestor@example.com")
		requestID := dbtest.CreateTestRequest(t, s.DB, requestorID, "Need a drill for the weekend")

		reqBody := request.CreateItemRequest{
			Name:        "Cordless Drill",
			Description: "Answering the weekend request",
			Available:   ptrBool(true),
			RequestID:   &requestID,
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, itemsURL, reqBody, ownerID.String())
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.ItemResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.NotNil(t, created.RequestID)
		require.Equal(t, requestID, *created.RequestID)
	})

	s.Run("Error case: Unknown request ID rejected", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		badRequestID := uuid.New()

		reqBody := request.CreateItemRequest{
			Name:        "Cordless Drill",
			Description: "Answering a request that does not exist",
			Available:   ptrBool(true),
			RequestID:   &badRequestID,
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, itemsURL, reqBody, ownerID.String())
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Item request not found")
	})

	s.Run("Error case: Unknown owner rejected", func() {
		t := s.T()

		reqBody := request.CreateItemRequest{
			Name:        "Cordless Drill",
			Description: "Owned by nobody",
			Available:   ptrBool(true),
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, itemsURL, reqBody, uuid.New().String())
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "User not found")
	})

	s.Run("Error case: Missing available flag rejected", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")

		body := map[string]any{"name": "Drill", "description": "No flag"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, itemsURL, body, ownerID.String())
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request format")
	})
}

// =============================================================================
// TestUpdateItem - Partial update API tests
// =============================================================================

func (s *ItemSuite) TestUpdateItem() {
	s.Run("Normal case: Owner can patch single fields", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Cordless Drill", true)

		updateReq := request.UpdateItemRequest{Available: ptrBool(false)}
		url := fmt.Sprintf("%s/%s", itemsURL, itemID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url, updateReq, ownerID.String())
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated response.ItemResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &updated))
		require.False(t, updated.Available)
		require.Equal(t, "Cordless Drill", updated.Name)

		// Name-only patch leaves the rest intact.
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPatch, url,
			request.UpdateItemRequest{Name: ptrString("Hammer Drill")}, ownerID.String())
		require.Equal(t, http.StatusOK, w2.Code)
		require.NoError(t, httptest.DecodeResponseBody(t, w2.Body, &updated))
		require.Equal(t, "Hammer Drill", updated.Name)
		require.False(t, updated.Available)
	})

	s.Run("Error case: Non-owner cannot see or patch the item", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		strangerID := dbtest.CreateTestUser(t, s.DB, "Stranger", "stranger@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Cordless Drill", true)

		url := fmt.Sprintf("%s/%s", itemsURL, itemID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url,
			request.UpdateItemRequest{Available: ptrBool(false)}, strangerID.String())
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Item not found")
	})
}

// =============================================================================
// TestGetItem - Detail view with availability index and comments
// =============================================================================

func (s *ItemSuite) TestGetItem() {
	s.Run("Normal case: Owner sees last and next bookings, others do not", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "Booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Cordless Drill", true)

		now := time.Now()
		lastID := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID, "APPROVED",
			now.Add(-48*time.Hour), now.Add(-24*time.Hour))
		nextID := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID, "APPROVED",
			now.Add(24*time.Hour), now.Add(48*time.Hour))
		// Waiting bookings never enter the availability index.
		dbtest.CreateTestBooking(t, s.DB, itemID, bookerID, "WAITING",
			now.Add(72*time.Hour), now.Add(96*time.Hour))

		url := fmt.Sprintf("%s/%s", itemsURL, itemID)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, ownerID.String())
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var ownerView response.ItemDetailResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &ownerView))
		require.NotNil(t, ownerView.LastBooking)
		require.NotNil(t, ownerView.NextBooking)
		require.Equal(t, lastID, ownerView.LastBooking.ID)
		require.Equal(t, nextID, ownerView.NextBooking.ID)
		require.Equal(t, bookerID, ownerView.LastBooking.BookerID)

		wb := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, bookerID.String())
		require.Equal(t, http.StatusOK, wb.Code)

		var bookerView response.ItemDetailResponse
		require.NoError(t, httptest.DecodeResponseBody(t, wb.Body, &bookerView))
		require.Nil(t, bookerView.LastBooking)
		require.Nil(t, bookerView.NextBooking)
	})

	s.Run("Error case: Unknown item returns not found", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "User", "user@example.com")
		url := fmt.Sprintf("%s/%s", itemsURL, uuid.New())
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, userID.String())
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Item not found")
	})
}

// =============================================================================
// TestListOwnItems - Owner listing with per-item index
// =============================================================================

func (s *ItemSuite) TestListOwnItems() {
	s.Run("Normal case: Owner listing attaches index per item", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "Booker", "booker@example.com")
		drillID := dbtest.CreateTestItem(t, s.DB, ownerID, "Cordless Drill", true)
		ladderID := dbtest.CreateTestItem(t, s.DB, ownerID, "Ladder", true)

		now := time.Now()
		nextID := dbtest.CreateTestBooking(t, s.DB, drillID, bookerID, "APPROVED",
			now.Add(24*time.Hour), now.Add(48*time.Hour))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, itemsURL, nil, ownerID.String())
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var items []response.ItemDetailResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &items))
		require.Len(t, items, 2)

		byID := make(map[uuid.UUID]response.ItemDetailResponse, len(items))
		for _, it := range items {
			byID[it.ID] = it
		}
		require.NotNil(t, byID[drillID].NextBooking)
		require.Equal(t, nextID, byID[drillID].NextBooking.ID)
		require.Nil(t, byID[drillID].LastBooking)
		require.Nil(t, byID[ladderID].NextBooking)
		require.Nil(t, byID[ladderID].LastBooking)
	})

	s.Run("Normal case: Empty owner listing is a JSON array", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, itemsURL, nil, ownerID.String())
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, "[]", w.Body.String())
	})
}

// =============================================================================
// TestSearchItems - Text search API tests
// =============================================================================

func (s *ItemSuite) TestSearchItems() {
	s.Run("Normal case: Search matches name and description, available only", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		searcherID := dbtest.CreateTestUser(t, s.DB, "Searcher", "searcher@example.com")
		drillID := dbtest.CreateTestItem(t, s.DB, ownerID, "Cordless Drill", true)
		dbtest.CreateTestItem(t, s.DB, ownerID, "Ladder", true)
		dbtest.CreateTestItem(t, s.DB, ownerID, "Old Drill", false)

		searchURL := itemsURL + "/search?text=dRiLl"
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, searchURL, nil, searcherID.String())
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var found []response.ItemResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &found))
		require.Len(t, found, 1)
		require.Equal(t, drillID, found[0].ID)
	})

	s.Run("Normal case: Blank text returns an empty array", func() {
		t := s.T()

		searcherID := dbtest.CreateTestUser(t, s.DB, "Searcher", "searcher@example.com")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, itemsURL+"/search?text=", nil, searcherID.String())
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, "[]", w.Body.String())
	})
}

// =============================================================================
// TestCreateComment - Comment eligibility API tests
// =============================================================================

func (s *ItemSuite) TestCreateComment() {
	s.Run("Normal case: Booker with a finished approved booking can comment", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "Booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Cordless Drill", true)

		now := time.Now()
		dbtest.CreateTestBooking(t, s.DB, itemID, bookerID, "APPROVED",
			now.Add(-48*time.Hour), now.Add(-24*time.Hour))

		commentURL := fmt.Sprintf("%s/%s/comment", itemsURL, itemID)
		reqBody := request.CreateCommentRequest{Text: "Great drill, batteries lasted all day"}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, commentURL, reqBody, bookerID.String())
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var comment response.CommentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &comment))
		require.Equal(t, "Great drill, batteries lasted all day", comment.Text)
		require.Equal(t, "Booker", comment.AuthorName)

		// The comment shows up on the item detail.
		dw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s/%s", itemsURL, itemID), nil, bookerID.String())
		require.Equal(t, http.StatusOK, dw.Code)

		var detail response.ItemDetailResponse
		require.NoError(t, httptest.DecodeResponseBody(t, dw.Body, &detail))
		require.Len(t, detail.Comments, 1)
		require.Equal(t, comment.ID, detail.Comments[0].ID)

		// A user who never rented the item cannot comment on it.
		strangerID := dbtest.CreateTestUser(t, s.DB, "Stranger", "stranger@example.com")
		sw := httptest.PerformRequest(t, s.Router, http.MethodPost, commentURL,
			request.CreateCommentRequest{Text: "Looks nice"}, strangerID.String())
		httptest.AssertErrorResponse(t, sw, http.StatusBadRequest, "No completed booking of this item")
	})

	s.Run("Error case: No finished booking means no comment", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "Booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Cordless Drill", true)

		now := time.Now()
		// An ongoing approved booking does not qualify.
		dbtest.CreateTestBooking(t, s.DB, itemID, bookerID, "APPROVED",
			now.Add(-24*time.Hour), now.Add(24*time.Hour))
		// Neither does a finished booking that was never approved.
		dbtest.CreateTestBooking(t, s.DB, itemID, bookerID, "REJECTED",
			now.Add(-96*time.Hour), now.Add(-72*time.Hour))

		commentURL := fmt.Sprintf("%s/%s/comment", itemsURL, itemID)
		reqBody := request.CreateCommentRequest{Text: "Trying to comment too early"}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, commentURL, reqBody, bookerID.String())
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "No completed booking of this item")
	})

	s.Run("Error case: Unknown item returns not found", func() {
		t := s.T()

		bookerID := dbtest.CreateTestUser(t, s.DB, "Booker", "booker@example.com")
		commentURL := fmt.Sprintf("%s/%s/comment", itemsURL, uuid.New())
		reqBody := request.CreateCommentRequest{Text: "Hello"}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, commentURL, reqBody, bookerID.String())
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Item not found")
	})
}
