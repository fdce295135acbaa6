package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func newTestRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(handlers...)
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})
	router.OPTIONS("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "reached")
	})
	return router
}

func TestRequestIDGenerated(t *testing.T) {
	router := newTestRouter(RequestID())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	id := w.Header().Get(RequestIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("\nwanted:\nuuid request id\ngot:\n%q", id)
	}
	if w.Body.String() != id {
		t.Fatalf("\nwanted:\n%s\ngot:\n%s", id, w.Body.String())
	}
}

func TestRequestIDEchoed(t *testing.T) {
	router := newTestRouter(RequestID())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Fatalf("\nwanted:\nabc-123\ngot:\n%s", got)
	}
}

func TestRequestIDRejectsOversized(t *testing.T) {
	router := newTestRouter(RequestID())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("x", maxRequestIDLen+1))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if _, err := uuid.Parse(w.Header().Get(RequestIDHeader)); err != nil {
		t.Fatalf("\nwanted:\nfresh uuid\ngot:\n%q", w.Header().Get(RequestIDHeader))
	}
}

func TestGetRequestIDWithoutMiddleware(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if w.Body.String() != "-" {
		t.Fatalf("\nwanted:\n-\ngot:\n%s", w.Body.String())
	}
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name       string
		origin     string
		method     string
		wantOrigin string
		wantStatus int
	}{
		{name: "default origin", origin: "", method: http.MethodGet, wantOrigin: "*", wantStatus: http.StatusOK},
		{name: "configured origin", origin: "https://aquaflow.example", method: http.MethodGet, wantOrigin: "https://aquaflow.example", wantStatus: http.StatusOK},
		{name: "preflight short circuits", origin: "", method: http.MethodOptions, wantOrigin: "*", wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(CORS(tt.origin))

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, "/ping", nil))

			if w.Code != tt.wantStatus {
				t.Fatalf("\nwanted:\n%d\ngot:\n%d", tt.wantStatus, w.Code)
			}
			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Fatalf("\nwanted:\n%s\ngot:\n%s", tt.wantOrigin, got)
			}
			if got := w.Header().Get("Access-Control-Allow-Methods"); got != "POST, GET, OPTIONS" {
				t.Fatalf("\nwanted:\nPOST, GET, OPTIONS\ngot:\n%s", got)
			}
		})
	}
}
