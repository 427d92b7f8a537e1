package gateway

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shareit-backend/internal/identity"
)

type upstreamCall struct {
	Method string
	Path   string
	Query  string
	UserID string
	Body   string
}

func newTestGateway(t *testing.T) (*gin.Engine, *atomic.Pointer[upstreamCall]) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var lastCall atomic.Pointer[upstreamCall]
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		lastCall.Store(&upstreamCall{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			UserID: r.Header.Get(identity.Header),
			Body:   string(body),
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id": 1}`)
	}))
	t.Cleanup(upstream.Close)

	client := NewClient(upstream.URL, 5*time.Second)
	return NewRouter(client), &lastCall
}

func serve(router *gin.Engine, method, target, userID, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if userID != "" {
		req.Header.Set(identity.Header, userID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGatewayForwarding(t *testing.T) {
	router, lastCall := newTestGateway(t)

	t.Run("forwards method path query body and identity", func(t *testing.T) {
		w := serve(router, "GET", "/items/search?text=drill&from=0&size=5", "7", "")
		require.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"id": 1}`, w.Body.String())

		call := lastCall.Load()
		require.NotNil(t, call)
		assert.Equal(t, "GET", call.Method)
		assert.Equal(t, "/items/search", call.Path)
		assert.Equal(t, "text=drill&from=0&size=5", call.Query)
		assert.Equal(t, "7", call.UserID)
	})

	t.Run("user routes are open", func(t *testing.T) {
		w := serve(router, "POST", "/users", "", `{"name": "Ann", "email": "ann@example.com"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		call := lastCall.Load()
		require.NotNil(t, call)
		assert.JSONEq(t, `{"name": "Ann", "email": "ann@example.com"}`, call.Body)
	})
}

func TestGatewayIdentityGuard(t *testing.T) {
	router, lastCall := newTestGateway(t)

	for _, route := range []struct{ method, target string }{
		{"POST", "/items"},
		{"GET", "/bookings"},
		{"GET", "/requests"},
	} {
		w := serve(router, route.method, route.target, "", "{}")
		assert.Equal(t, http.StatusBadRequest, w.Code, route.target)
	}
	assert.Nil(t, lastCall.Load(), "rejected requests must not reach the server")
}

func TestGatewayPreValidation(t *testing.T) {
	router, lastCall := newTestGateway(t)

	t.Run("unknown booking state", func(t *testing.T) {
		w := serve(router, "GET", "/bookings?state=UNSUPPORTED_STATUS", "7", "")
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp struct {
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Unknown state: UNSUPPORTED_STATUS", resp.Message)
	})

	t.Run("invalid pagination", func(t *testing.T) {
		for _, target := range []string{
			"/items?from=-1",
			"/items/search?size=0",
			"/requests/all?size=-5",
			"/bookings/owner?from=abc",
		} {
			w := serve(router, "GET", target, "7", "")
			assert.Equal(t, http.StatusBadRequest, w.Code, target)
		}
	})

	t.Run("booking period in the past", func(t *testing.T) {
		body := fmt.Sprintf(`{"itemId": 1, "start": %q, "end": %q}`,
			time.Now().Add(-48*time.Hour).Format(time.RFC3339),
			time.Now().Add(-24*time.Hour).Format(time.RFC3339))

		w := serve(router, "POST", "/bookings", "7", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed booking body", func(t *testing.T) {
		w := serve(router, "POST", "/bookings", "7", `{"itemId": "nope"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	assert.Nil(t, lastCall.Load(), "rejected requests must not reach the server")

	t.Run("valid booking forwards intact", func(t *testing.T) {
		body := fmt.Sprintf(`{"itemId": 1, "start": %q, "end": %q}`,
			time.Now().Add(24*time.Hour).Format(time.RFC3339),
			time.Now().Add(48*time.Hour).Format(time.RFC3339))

		w := serve(router, "POST", "/bookings", "7", body)
		require.Equal(t, http.StatusCreated, w.Code)

		call := lastCall.Load()
		require.NotNil(t, call)
		assert.JSONEq(t, body, call.Body)
	})
}
