package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorBody {
	t.Helper()

	var response ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	return response.Error
}

func TestWriteJSON(t *testing.T) {
	t.Run("successful write", func(t *testing.T) {
		w := httptest.NewRecorder()
		data := map[string]string{"message": "test"}

		err := WriteJSON(w, http.StatusOK, data)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var response map[string]string
		err = json.NewDecoder(w.Body).Decode(&response)
		require.NoError(t, err)
		assert.Equal(t, "test", response["message"])
	})

	t.Run("nil data", func(t *testing.T) {
		w := httptest.NewRecorder()

		err := WriteJSON(w, http.StatusNoContent, nil)
		require.NoError(t, err)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})
}

func TestWriteOK(t *testing.T) {
	w := httptest.NewRecorder()

	err := WriteOK(w, map[string]string{"status": "deleted"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"deleted"}`, w.Body.String())
}

func TestWriteCreated(t *testing.T) {
	w := httptest.NewRecorder()

	err := WriteCreated(w, map[string]interface{}{"industry": map[string]string{"code": "tech"}})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"industry":{"code":"tech"}}`, w.Body.String())
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name            string
		write           func(w http.ResponseWriter) error
		expectedStatus  int
		expectedMessage string
	}{
		{
			name: "bad request",
			write: func(w http.ResponseWriter) error {
				return WriteBadRequest(w, "Invalid request body", nil)
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid request body",
		},
		{
			name: "not found with message",
			write: func(w http.ResponseWriter) error {
				return WriteNotFound(w, "Company code 'nope' could not be found")
			},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "Company code 'nope' could not be found",
		},
		{
			name: "not found default message",
			write: func(w http.ResponseWriter) error {
				return WriteNotFound(w, "")
			},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "Resource not found",
		},
		{
			name: "method not allowed",
			write: func(w http.ResponseWriter) error {
				return WriteMethodNotAllowed(w, "")
			},
			expectedStatus:  http.StatusMethodNotAllowed,
			expectedMessage: "Method not allowed",
		},
		{
			name: "conflict",
			write: func(w http.ResponseWriter) error {
				return WriteConflict(w, "Company code 'apple' already exists", nil)
			},
			expectedStatus:  http.StatusConflict,
			expectedMessage: "Company code 'apple' already exists",
		},
		{
			name: "internal server error",
			write: func(w http.ResponseWriter) error {
				return WriteInternalServerError(w, "")
			},
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
		{
			name: "status text when message empty",
			write: func(w http.ResponseWriter) error {
				return WriteError(w, http.StatusServiceUnavailable, "", nil)
			},
			expectedStatus:  http.StatusServiceUnavailable,
			expectedMessage: "Service Unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			require.NoError(t, tt.write(w))

			assert.Equal(t, tt.expectedStatus, w.Code)
			body := decodeError(t, w)
			assert.Equal(t, tt.expectedMessage, body.Message)
			assert.Equal(t, tt.expectedStatus, body.Status)
			assert.Nil(t, body.Details)
		})
	}
}

func TestWriteBadRequest_Details(t *testing.T) {
	w := httptest.NewRecorder()

	err := WriteBadRequest(w, "Validation failed", map[string]interface{}{"name": "name is required"})
	require.NoError(t, err)

	assert.JSONEq(t,
		`{"error":{"message":"Validation failed","status":400,"details":{"name":"name is required"}}}`,
		w.Body.String())
}

func TestWriteError_EmptyDetailsOmitted(t *testing.T) {
	w := httptest.NewRecorder()

	require.NoError(t, WriteConflict(w, "taken", map[string]interface{}{}))

	assert.NotContains(t, w.Body.String(), "details")
}
