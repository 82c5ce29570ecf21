package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"

	"goal-planner/pkg/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(m Middleware) *gin.Engine {
	r := gin.New()
	r.GET("/x", m.Scope(), m.RateLimit(), func(c *gin.Context) {
		sc, _ := GetScope(c)
		c.String(http.StatusOK, sc.UserID)
	})
	return r
}

func do(r http.Handler, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if userID != "" {
		req.Header.Set(UserIDHeader, userID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestScope(t *testing.T) {
	r := newEngine(New(log.NewNop(), 0))

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{name: "missing", header: "", status: http.StatusUnauthorized},
		{name: "not a uuid", header: "alice", status: http.StatusUnauthorized},
		{name: "valid", header: "6F9619FF-8B86-D011-B42D-00C04FC964FF", status: http.StatusOK, body: "6f9619ff-8b86-d011-b42d-00c04fc964ff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, tt.header)
			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d", w.Code, tt.status)
			}
			if tt.body != "" && w.Body.String() != tt.body {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.body)
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	// 10/min gives a burst of 1.
	r := newEngine(New(log.NewNop(), 10))
	alice := "11111111-1111-1111-1111-111111111111"
	bob := "22222222-2222-2222-2222-222222222222"

	if w := do(r, alice); w.Code != http.StatusOK {
		t.Fatalf("first request status = %d", w.Code)
	}
	if w := do(r, alice); w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want 429", w.Code)
	}
	if w := do(r, bob); w.Code != http.StatusOK {
		t.Fatalf("other user status = %d, want 200", w.Code)
	}
}

func TestRateLimitConcurrentFirstRequests(t *testing.T) {
	tests := []struct {
		name           string
		requestsPerMin int
		wantAllowed    int64
	}{
		{name: "Burst of one", requestsPerMin: 10, wantAllowed: 1},
		{name: "Burst of five", requestsPerMin: 50, wantAllowed: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := newRateLimiter(tt.requestsPerMin)
			var allowed atomic.Int64
			var wg sync.WaitGroup
			start := make(chan struct{})
			for i := 0; i < 64; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					<-start
					if rl.allow("11111111-1111-1111-1111-111111111111") {
						allowed.Add(1)
					}
				}()
			}
			close(start)
			wg.Wait()

			if got := allowed.Load(); got != tt.wantAllowed {
				t.Errorf("allowed = %d, want %d", got, tt.wantAllowed)
			}
		})
	}
}

func TestRateLimitDisabled(t *testing.T) {
	r := newEngine(New(log.NewNop(), 0))
	id := "11111111-1111-1111-1111-111111111111"
	for i := 0; i < 20; i++ {
		if w := do(r, id); w.Code != http.StatusOK {
			t.Fatalf("request %d status = %d", i, w.Code)
		}
	}
}
