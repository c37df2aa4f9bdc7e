package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"food-marketplace/apperr"
	"food-marketplace/auth"
	httpapi "food-marketplace/rate-svc/internal/api/http"
	"food-marketplace/rate-svc/internal/domain"
	"food-marketplace/rate-svc/internal/mocks"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(mockSvc *mocks.ReviewServiceInterface) *mux.Router {
	handler := &httpapi.Handler{Reviews: mockSvc}
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func withIdentity(req *http.Request, userID uuid.UUID, role auth.Role) *http.Request {
	auth.SetHeaders(req.Header, auth.Identity{UserID: userID, Role: role})
	return req
}

func TestHandler_createReview(t *testing.T) {
	customerID := uuid.New()
	orderID := uuid.New()

	tests := []struct {
		name         string
		role         auth.Role
		payload      string
		prepareMocks func(*mocks.ReviewServiceInterface)
		expectedCode int
		expectedBody string
	}{
		{
			name:    "success",
			role:    auth.RoleCustomer,
			payload: `{"order_id":"` + orderID.String() + `","rating":5,"comment":"Great!"}`,
			prepareMocks: func(m *mocks.ReviewServiceInterface) {
				m.On("Create", mock.Anything, customerID, mock.MatchedBy(func(in domain.ReviewInput) bool {
					return in.OrderID == orderID && in.Rating == 5
				})).Return(&domain.Review{ID: uuid.New(), OrderID: orderID, Rating: 5}, nil).Once()
			},
			expectedCode: http.StatusCreated,
			expectedBody: `"rating":5`,
		},
		{
			name:         "invalid_json",
			role:         auth.RoleCustomer,
			payload:      `bad json`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "rating_out_of_range",
			role:         auth.RoleCustomer,
			payload:      `{"order_id":"` + orderID.String() + `","rating":7}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "seller_cannot_review",
			role:         auth.RoleSeller,
			payload:      `{"order_id":"` + orderID.String() + `","rating":5}`,
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "anonymous",
			payload:      `{"order_id":"` + orderID.String() + `","rating":5}`,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:    "already_reviewed",
			role:    auth.RoleCustomer,
			payload: `{"order_id":"` + orderID.String() + `","rating":3}`,
			prepareMocks: func(m *mocks.ReviewServiceInterface) {
				m.On("Create", mock.Anything, customerID, mock.Anything).
					Return(nil, apperr.Conflict("order %s has already been reviewed", orderID)).Once()
			},
			expectedCode: http.StatusConflict,
			expectedBody: "already been reviewed",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockSvc := mocks.NewReviewServiceInterface(t)
			if testCase.prepareMocks != nil {
				testCase.prepareMocks(mockSvc)
			}
			router := setupTestRouter(mockSvc)

			req := httptest.NewRequest("POST", "/api/reviews", bytes.NewBufferString(testCase.payload))
			if testCase.role != "" {
				withIdentity(req, customerID, testCase.role)
			}
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_storeStatistics(t *testing.T) {
	mockSvc := mocks.NewReviewServiceInterface(t)
	router := setupTestRouter(mockSvc)
	storeID := uuid.New()

	mockSvc.On("Statistics", mock.Anything, storeID).Return(&domain.Statistics{
		StoreID:      storeID,
		Average:      4.5,
		Total:        2,
		Distribution: map[string]int{"1": 0, "2": 0, "3": 0, "4": 1, "5": 1},
	}, nil).Once()

	req := httptest.NewRequest("GET", "/api/reviews/store/"+storeID.String()+"/statistics", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	var body struct {
		Success bool              `json:"success"`
		Data    domain.Statistics `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 4.5, body.Data.Average)
	assert.Equal(t, 1, body.Data.Distribution["5"])
}

func TestHandler_listStoreReviews(t *testing.T) {
	mockSvc := mocks.NewReviewServiceInterface(t)
	router := setupTestRouter(mockSvc)
	storeID := uuid.New()

	mockSvc.On("ListStoreReviews", mock.Anything, storeID, 2, 5).Return([]domain.Review{{ID: uuid.New(), Rating: 4}}, nil).Once()

	req := httptest.NewRequest("GET", "/api/reviews/store/"+storeID.String()+"?page=2&page_size=5", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"rating":4`)
}

func TestHandler_respond(t *testing.T) {
	sellerID := uuid.New()
	reviewID := uuid.New()

	t.Run("seller responds", func(t *testing.T) {
		mockSvc := mocks.NewReviewServiceInterface(t)
		router := setupTestRouter(mockSvc)
		mockSvc.On("Respond", mock.Anything, sellerID, reviewID, "Thank you").
			Return(&domain.Review{ID: reviewID, Response: "Thank you"}, nil).Once()

		req := withIdentity(httptest.NewRequest("POST", "/api/reviews/"+reviewID.String()+"/response",
			bytes.NewBufferString(`{"response":"Thank you"}`)), sellerID, auth.RoleSeller)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("not the owner", func(t *testing.T) {
		mockSvc := mocks.NewReviewServiceInterface(t)
		router := setupTestRouter(mockSvc)
		mockSvc.On("Respond", mock.Anything, sellerID, reviewID, "Thank you").
			Return(nil, apperr.Forbidden("store belongs to another seller")).Once()

		req := withIdentity(httptest.NewRequest("POST", "/api/reviews/"+reviewID.String()+"/response",
			bytes.NewBufferString(`{"response":"Thank you"}`)), sellerID, auth.RoleSeller)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

func TestHandler_deleteReview(t *testing.T) {
	mockSvc := mocks.NewReviewServiceInterface(t)
	router := setupTestRouter(mockSvc)
	adminID := uuid.New()
	reviewID := uuid.New()

	mockSvc.On("Delete", mock.Anything, auth.Identity{UserID: adminID, Role: auth.RoleAdmin}, reviewID).Return(nil).Once()

	req := withIdentity(httptest.NewRequest("DELETE", "/api/reviews/"+reviewID.String(), nil), adminID, auth.RoleAdmin)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestHandler_getOrderReview_badID(t *testing.T) {
	router := setupTestRouter(mocks.NewReviewServiceInterface(t))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/reviews/order/abc", nil))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
