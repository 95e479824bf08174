package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"
)

func TestRateLimitPerIP(t *testing.T) {
	handler := RateLimit(4, time.Hour)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	do := func(remote string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/matches", nil)
		req.RemoteAddr = remote
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	// burst is half the window allowance
	for i := 0; i < 2; i++ {
		if rec := do("10.0.0.1:5000"); rec.Code != http.StatusNoContent {
			t.Fatalf("request %d status = %d; want %d", i+1, rec.Code, http.StatusNoContent)
		}
	}
	rec := do("10.0.0.1:5001")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusTooManyRequests)
	}
	if got := rec.Header().Get("Retry-After"); got != "3600" {
		t.Errorf("Retry-After = %q; want %q", got, "3600")
	}

	if rec := do("10.0.0.2:5000"); rec.Code != http.StatusNoContent {
		t.Errorf("other client status = %d; want %d", rec.Code, http.StatusNoContent)
	}
}

func TestIPLimiterSweepsIdleVisitors(t *testing.T) {
	l := newIPLimiter(10, time.Second)
	clock := time.Unix(0, 0)
	l.now = func() time.Time { return clock }

	for i := 0; i < sweepThreshold; i++ {
		l.allow("10.1." + strconv.Itoa(i))
	}
	clock = clock.Add(time.Minute)
	l.allow("fresh")

	if len(l.visitors) != 1 {
		t.Errorf("visitors after sweep = %d; want 1", len(l.visitors))
	}
}

func TestIPLimiterMinimumBurst(t *testing.T) {
	l := newIPLimiter(1, time.Minute)
	if l.burst != 1 {
		t.Errorf("burst = %d; want 1", l.burst)
	}
	if !l.allow("10.0.0.1") {
		t.Error("first request rejected")
	}
}
