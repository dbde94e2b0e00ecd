package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/upb/biztime/utils"
)

// headerCounter records how many times WriteHeader reaches the client writer
type headerCounter struct {
	*httptest.ResponseRecorder
	writes int
}

func (h *headerCounter) WriteHeader(code int) {
	h.writes++
	h.ResponseRecorder.WriteHeader(code)
}

func TestTimeout(t *testing.T) {
	t.Run("handler sees the deadline", func(t *testing.T) {
		var deadline time.Time
		var ok bool
		handler := Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			deadline, ok = r.Context().Deadline()
			_ = utils.WriteOK(w, map[string]string{"status": "ok"})
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/companies", nil))

		require.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(time.Second), deadline, time.Second)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("handler answering the deadline is written once", func(t *testing.T) {
		handler := Timeout(10 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
			_ = utils.WriteError(w, http.StatusGatewayTimeout, "Request timed out", nil)
		}))

		w := &headerCounter{ResponseRecorder: httptest.NewRecorder()}
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/companies", nil))

		assert.Equal(t, 1, w.writes)
		assert.Equal(t, http.StatusGatewayTimeout, w.Code)
		assert.JSONEq(t, `{"error":{"message":"Request timed out","status":504}}`, w.Body.String())
	})

	t.Run("silent handler gets a 504 envelope", func(t *testing.T) {
		handler := Timeout(10 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))

		w := &headerCounter{ResponseRecorder: httptest.NewRecorder()}
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/companies", nil))

		assert.Equal(t, 1, w.writes)
		assert.JSONEq(t, `{"error":{"message":"Request timed out","status":504}}`, w.Body.String())
	})

	t.Run("canceled client gets nothing extra", func(t *testing.T) {
		handler := Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		w := &headerCounter{ResponseRecorder: httptest.NewRecorder()}
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/companies", nil).WithContext(ctx))

		assert.Equal(t, 0, w.writes)
	})
}
