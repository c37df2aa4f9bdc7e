package tests

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"food-marketplace/apperr"
	"food-marketplace/auth"
	httpapi "food-marketplace/revenue-svc/internal/api/http"
	"food-marketplace/revenue-svc/internal/domain"
	"food-marketplace/revenue-svc/internal/mocks"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTestRouter(mockSvc *mocks.RevenueServiceInterface) *mux.Router {
	handler := &httpapi.Handler{Revenue: mockSvc}
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestHandler_overview(t *testing.T) {
	sellerID := uuid.New()
	storeID := uuid.New()

	tests := []struct {
		name         string
		role         auth.Role
		path         string
		prepareMocks func(*mocks.RevenueServiceInterface)
		expectedCode int
		expectedBody string
	}{
		{
			name: "default period is month",
			role: auth.RoleSeller,
			path: "/api/revenue/store/" + storeID.String() + "/overview",
			prepareMocks: func(m *mocks.RevenueServiceInterface) {
				m.On("EnsureOwner", mock.Anything, sellerID, storeID).Return(nil).Once()
				m.On("Overview", mock.Anything, storeID, domain.PeriodMonth).
					Return(&domain.Overview{StoreID: storeID, TotalOrders: 3, TotalRevenue: decimal.NewFromInt(180000)}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"total_orders":3`,
		},
		{
			name: "explicit period",
			role: auth.RoleSeller,
			path: "/api/revenue/store/" + storeID.String() + "/overview?period=week",
			prepareMocks: func(m *mocks.RevenueServiceInterface) {
				m.On("EnsureOwner", mock.Anything, sellerID, storeID).Return(nil).Once()
				m.On("Overview", mock.Anything, storeID, "week").Return(&domain.Overview{StoreID: storeID}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "customer forbidden",
			role:         auth.RoleCustomer,
			path:         "/api/revenue/store/" + storeID.String() + "/overview",
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "anonymous",
			path:         "/api/revenue/store/" + storeID.String() + "/overview",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "malformed store id",
			role:         auth.RoleSeller,
			path:         "/api/revenue/store/abc/overview",
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "not the owner",
			role: auth.RoleSeller,
			path: "/api/revenue/store/" + storeID.String() + "/overview",
			prepareMocks: func(m *mocks.RevenueServiceInterface) {
				m.On("EnsureOwner", mock.Anything, sellerID, storeID).
					Return(apperr.Forbidden("store %s belongs to another seller", storeID)).Once()
			},
			expectedCode: http.StatusForbidden,
			expectedBody: "another seller",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockSvc := mocks.NewRevenueServiceInterface(t)
			if testCase.prepareMocks != nil {
				testCase.prepareMocks(mockSvc)
			}
			router := setupTestRouter(mockSvc)

			req := httptest.NewRequest("GET", testCase.path, nil)
			if testCase.role != "" {
				auth.SetHeaders(req.Header, auth.Identity{UserID: sellerID, Role: testCase.role})
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

func TestHandler_topOrders(t *testing.T) {
	sellerID := uuid.New()
	storeID := uuid.New()

	t.Run("take parsed", func(t *testing.T) {
		mockSvc := mocks.NewRevenueServiceInterface(t)
		mockSvc.On("EnsureOwner", mock.Anything, sellerID, storeID).Return(nil).Once()
		mockSvc.On("TopOrders", mock.Anything, storeID, "year", 3).Return([]domain.OrderRevenue{}, nil).Once()

		req := httptest.NewRequest("GET", "/api/revenue/store/"+storeID.String()+"/top-orders?period=year&take=3", nil)
		auth.SetHeaders(req.Header, auth.Identity{UserID: sellerID, Role: auth.RoleSeller})
		recorder := httptest.NewRecorder()
		setupTestRouter(mockSvc).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("invalid take", func(t *testing.T) {
		mockSvc := mocks.NewRevenueServiceInterface(t)
		mockSvc.On("EnsureOwner", mock.Anything, sellerID, storeID).Return(nil).Once()

		req := httptest.NewRequest("GET", "/api/revenue/store/"+storeID.String()+"/top-orders?take=abc", nil)
		auth.SetHeaders(req.Header, auth.Identity{UserID: sellerID, Role: auth.RoleSeller})
		recorder := httptest.NewRecorder()
		setupTestRouter(mockSvc).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestHandler_detailedReport(t *testing.T) {
	sellerID := uuid.New()
	storeID := uuid.New()
	wantStart := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC)

	t.Run("dates parsed", func(t *testing.T) {
		mockSvc := mocks.NewRevenueServiceInterface(t)
		mockSvc.On("EnsureOwner", mock.Anything, sellerID, storeID).Return(nil).Once()
		mockSvc.On("DetailedReport", mock.Anything, storeID,
			mock.MatchedBy(func(p *time.Time) bool { return p != nil && p.Equal(wantStart) }),
			mock.MatchedBy(func(p *time.Time) bool { return p != nil && p.Equal(wantEnd) }),
		).Return(&domain.DetailedReport{StoreID: storeID, Orders: []domain.ReportOrder{}}, nil).Once()

		req := httptest.NewRequest("GET", "/api/revenue/store/"+storeID.String()+
			"/detailed-report?startDate=2026-10-01&endDate=2026-10-10T00:00:00Z", nil)
		auth.SetHeaders(req.Header, auth.Identity{UserID: sellerID, Role: auth.RoleSeller})
		recorder := httptest.NewRecorder()
		setupTestRouter(mockSvc).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"orders":[]`)
	})

	t.Run("open range", func(t *testing.T) {
		mockSvc := mocks.NewRevenueServiceInterface(t)
		mockSvc.On("EnsureOwner", mock.Anything, sellerID, storeID).Return(nil).Once()
		mockSvc.On("DetailedReport", mock.Anything, storeID, (*time.Time)(nil), (*time.Time)(nil)).
			Return(&domain.DetailedReport{StoreID: storeID}, nil).Once()

		req := httptest.NewRequest("GET", "/api/revenue/store/"+storeID.String()+"/detailed-report", nil)
		auth.SetHeaders(req.Header, auth.Identity{UserID: sellerID, Role: auth.RoleSeller})
		recorder := httptest.NewRecorder()
		setupTestRouter(mockSvc).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("bad date", func(t *testing.T) {
		mockSvc := mocks.NewRevenueServiceInterface(t)
		mockSvc.On("EnsureOwner", mock.Anything, sellerID, storeID).Return(nil).Once()

		req := httptest.NewRequest("GET", "/api/revenue/store/"+storeID.String()+"/detailed-report?startDate=yesterday", nil)
		auth.SetHeaders(req.Header, auth.Identity{UserID: sellerID, Role: auth.RoleSeller})
		recorder := httptest.NewRecorder()
		setupTestRouter(mockSvc).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "startDate")
	})
}

func TestHandler_health(t *testing.T) {
	recorder := httptest.NewRecorder()
	setupTestRouter(mocks.NewRevenueServiceInterface(t)).ServeHTTP(recorder, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "revenue-svc")
}
