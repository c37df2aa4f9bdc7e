package tests

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"food-marketplace/api-gateway/internal/gateway"
	"food-marketplace/api-gateway/internal/mocks"
	"food-marketplace/auth"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

var testConfig = gateway.Config{
	MarketSvcURL:  "http://market-svc",
	RateSvcURL:    "http://rate-svc",
	RevenueSvcURL: "http://revenue-svc",
	JWTSecret:     testSecret,
}

func newSessions(t *testing.T) *auth.RedisSessionStore {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { client.Close() })
	return auth.NewRedisSessionStore(client, time.Hour)
}

func okResponse(body string) *http.Response {
	resp := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

// login mints a token for a fresh session the way an identity provider would.
func login(t *testing.T, sessions auth.SessionStore, id auth.Identity) string {
	sessionID, err := sessions.Rotate(context.Background(), id.UserID)
	require.NoError(t, err)
	token, err := auth.IssueToken(testSecret, id, sessionID, time.Hour)
	require.NoError(t, err)
	return token
}

func TestGateway_HealthCheck(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	gw.HealthCheck(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		Success bool              `json:"success"`
		Data    map[string]string `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, "api-gateway", body.Data["service"])
}

func TestGateway_Routing(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		wantHost string
	}{
		{name: "create review", method: http.MethodPost, path: "/api/reviews", wantHost: "rate-svc"},
		{name: "store reviews", method: http.MethodGet, path: "/api/reviews/store/abc?page=2", wantHost: "rate-svc"},
		{name: "revenue", method: http.MethodGet, path: "/api/revenue/store/abc/overview", wantHost: "revenue-svc"},
		{name: "orders", method: http.MethodPost, path: "/api/orders", wantHost: "market-svc"},
		{name: "stores", method: http.MethodGet, path: "/api/stores", wantHost: "market-svc"},
		{name: "search", method: http.MethodGet, path: "/api/search?q=pho", wantHost: "market-svc"},
		{name: "payment callback", method: http.MethodGet, path: "/api/payment/vnpay-return?vnp_TxnRef=x", wantHost: "market-svc"},
		{name: "reviews lookalike", method: http.MethodGet, path: "/api/reviewsx", wantHost: "market-svc"},
		{name: "uploads", method: http.MethodGet, path: "/uploads/menu_1.png", wantHost: "market-svc"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockClient := mocks.NewHTTPClient(t)
			gw := gateway.NewGateway(testConfig, mockClient, newSessions(t))

			mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
				return req.URL.Host == testCase.wantHost && req.Method == testCase.method
			})).Return(okResponse(`{"success":true}`), nil).Once()

			req := httptest.NewRequest(testCase.method, testCase.path, nil)
			rr := httptest.NewRecorder()
			gw.SetupRoutes().ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
		})
	}
}

func TestGateway_ProxyKeepsQuery(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(testConfig, mockClient, newSessions(t))

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == "http://rate-svc/api/reviews/store/abc?page=2&page_size=5"
	})).Return(okResponse(`[]`), nil).Once()

	rr := httptest.NewRecorder()
	gw.SetupRoutes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/reviews/store/abc?page=2&page_size=5", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestGateway_ProxyError(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(testConfig, mockClient, newSessions(t))

	mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection failed")).Once()

	rr := httptest.NewRecorder()
	gw.SetupRoutes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/stores", nil))

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Contains(t, rr.Body.String(), "upstream service unavailable")
}

func TestGateway_Authenticate(t *testing.T) {
	userID := uuid.New()
	identity := auth.Identity{UserID: userID, Role: auth.RoleCustomer}

	t.Run("valid token sets identity headers", func(t *testing.T) {
		sessions := newSessions(t)
		mockClient := mocks.NewHTTPClient(t)
		gw := gateway.NewGateway(testConfig, mockClient, sessions)
		token := login(t, sessions, identity)

		mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
			return req.Header.Get(auth.HeaderUserID) == userID.String() &&
				req.Header.Get(auth.HeaderUserRole) == string(auth.RoleCustomer)
		})).Return(okResponse(`{}`), nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		gw.SetupRoutes().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("spoofed headers are stripped", func(t *testing.T) {
		mockClient := mocks.NewHTTPClient(t)
		gw := gateway.NewGateway(testConfig, mockClient, newSessions(t))

		mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
			return req.Header.Get(auth.HeaderUserID) == "" && req.Header.Get(auth.HeaderUserRole) == ""
		})).Return(okResponse(`{}`), nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		auth.SetHeaders(req.Header, auth.Identity{UserID: uuid.New(), Role: auth.RoleAdmin})
		rr := httptest.NewRecorder()
		gw.SetupRoutes().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	rejected := []struct {
		name   string
		header func(t *testing.T, sessions auth.SessionStore) string
	}{
		{
			name:   "garbage token",
			header: func(t *testing.T, _ auth.SessionStore) string { return "Bearer not-a-jwt" },
		},
		{
			name:   "wrong scheme",
			header: func(t *testing.T, sessions auth.SessionStore) string { return "Basic " + login(t, sessions, identity) },
		},
		{
			name: "wrong secret",
			header: func(t *testing.T, sessions auth.SessionStore) string {
				sessionID, err := sessions.Rotate(context.Background(), userID)
				require.NoError(t, err)
				token, err := auth.IssueToken("other-secret", identity, sessionID, time.Hour)
				require.NoError(t, err)
				return "Bearer " + token
			},
		},
		{
			name: "revoked session",
			header: func(t *testing.T, sessions auth.SessionStore) string {
				token := login(t, sessions, identity)
				_, err := sessions.Rotate(context.Background(), userID)
				require.NoError(t, err)
				return "Bearer " + token
			},
		},
	}

	for _, testCase := range rejected {
		t.Run(testCase.name, func(t *testing.T) {
			sessions := newSessions(t)
			gw := gateway.NewGateway(testConfig, mocks.NewHTTPClient(t), sessions)

			req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
			req.Header.Set("Authorization", testCase.header(t, sessions))
			rr := httptest.NewRecorder()
			gw.SetupRoutes().ServeHTTP(rr, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Contains(t, rr.Body.String(), `"success":false`)
		})
	}
}

func TestGateway_Logout(t *testing.T) {
	userID := uuid.New()
	identity := auth.Identity{UserID: userID, Role: auth.RoleSeller}

	t.Run("revokes existing tokens", func(t *testing.T) {
		sessions := newSessions(t)
		gw := gateway.NewGateway(testConfig, mocks.NewHTTPClient(t), sessions)
		router := gw.SetupRoutes()
		token := login(t, sessions, identity)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)

		again := httptest.NewRequest(http.MethodGet, "/api/revenue/store/abc/overview", nil)
		again.Header.Set("Authorization", "Bearer "+token)
		rr = httptest.NewRecorder()
		router.ServeHTTP(rr, again)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("anonymous", func(t *testing.T) {
		gw := gateway.NewGateway(testConfig, mocks.NewHTTPClient(t), newSessions(t))

		rr := httptest.NewRecorder()
		gw.SetupRoutes().ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
