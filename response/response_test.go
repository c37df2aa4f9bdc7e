package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"food-marketplace/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type addItemRequest struct {
	Quantity int    `json:"quantity" validate:"min=1,max=100"`
	Note     string `json:"note" validate:"max=500"`
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
	return env
}

func TestError_MapsKinds(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedMsg  string
	}{
		{name: "validation", err: apperr.Validation("cart is empty"), expectedCode: http.StatusBadRequest, expectedMsg: "cart is empty"},
		{name: "not_found", err: apperr.NotFound("order not found"), expectedCode: http.StatusNotFound, expectedMsg: "order not found"},
		{name: "forbidden", err: apperr.Forbidden("not your store"), expectedCode: http.StatusForbidden, expectedMsg: "not your store"},
		{name: "invalid_state", err: apperr.InvalidState("order cannot be cancelled"), expectedCode: http.StatusConflict, expectedMsg: "order cannot be cancelled"},
		{name: "security", err: apperr.Security("bad signature"), expectedCode: http.StatusBadRequest, expectedMsg: "request could not be verified"},
		{name: "internal", err: errors.New("pq: connection refused"), expectedCode: http.StatusInternalServerError, expectedMsg: "internal server error"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			Error(rr, testCase.err)

			assert.Equal(t, testCase.expectedCode, rr.Code)
			env := decodeEnvelope(t, rr)
			assert.False(t, env.Success)
			assert.Equal(t, testCase.expectedMsg, env.Message)
		})
	}
}

func TestOK_WritesEnvelope(t *testing.T) {
	rr := httptest.NewRecorder()
	OK(rr, "done", map[string]int{"count": 2})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true,"message":"done","data":{"count":2}}`, rr.Body.String())
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		expectedOK   bool
		expectedCode int
		expectedMsg  string
	}{
		{name: "valid", body: `{"quantity":2,"note":"no onions"}`, expectedOK: true},
		{name: "unknown_field", body: `{"quantity":2,"price":1}`, expectedCode: http.StatusBadRequest, expectedMsg: "invalid json body"},
		{name: "trailing_data", body: `{"quantity":2}{}`, expectedCode: http.StatusBadRequest, expectedMsg: "invalid json body"},
		{name: "trailing_garbage", body: `{"quantity":2} x`, expectedCode: http.StatusBadRequest, expectedMsg: "invalid json body"},
		{name: "trailing_whitespace", body: "{\"quantity\":2}\n  ", expectedOK: true},
		{name: "quantity_too_low", body: `{"quantity":0}`, expectedCode: http.StatusBadRequest, expectedMsg: "quantity must be at least 1"},
		{name: "quantity_too_high", body: `{"quantity":101}`, expectedCode: http.StatusBadRequest, expectedMsg: "quantity must be at most 100"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(testCase.body))
			rr := httptest.NewRecorder()

			var dst addItemRequest
			ok := Decode(rr, req, &dst)

			assert.Equal(t, testCase.expectedOK, ok)
			if !testCase.expectedOK {
				assert.Equal(t, testCase.expectedCode, rr.Code)
				assert.Equal(t, testCase.expectedMsg, decodeEnvelope(t, rr).Message)
			}
		})
	}
}
