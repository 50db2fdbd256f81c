package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClientIPGeneric_DirectRemote(t *testing.T) {
	req := httptest.NewRequest("GET", "http://example.local/", nil)
	req.RemoteAddr = "203.0.113.5:54321"
	ip := clientIPGeneric(req, nil)
	if ip != "203.0.113.5" {
		t.Fatalf("expected direct remote IP, got %s", ip)
	}
}

func TestClientIPGeneric_TrustedProxyXFF(t *testing.T) {
	req := httptest.NewRequest("GET", "http://example.local/", nil)
	req.RemoteAddr = "198.51.100.10:443"
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 198.51.100.10")
	// trustedCIDR contains the remote IP
	ip := clientIPGeneric(req, []string{"198.51.100.10"})
	if ip != "203.0.113.7" {
		t.Fatalf("expected X-Forwarded-For first value, got %s", ip)
	}
}

func TestClientIPGeneric_UntrustedProxyIgnoresXFF(t *testing.T) {
	req := httptest.NewRequest("GET", "http://example.local/", nil)
	req.RemoteAddr = "198.51.100.11:443"
	req.Header.Set("X-Forwarded-For", "203.0.113.8, 198.51.100.11")
	ip := clientIPGeneric(req, []string{"198.51.100.10"})
	if ip != "198.51.100.11" {
		t.Fatalf("expected remote IP when proxy untrusted, got %s", ip)
	}
}

func TestIPRateLimiter_OverLimit(t *testing.T) {
	limiter := NewIPRateLimiter(2, time.Minute)
	next, _ := okHandler()
	handler := limiter.Middleware(next)

	var last int
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("POST", "http://example.local/api/auth/login", nil)
		req.RemoteAddr = "203.0.113.9:1000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		last = rec.Code
	}
	if last != http.StatusTooManyRequests {
		t.Fatalf("expected 429 on third request, got %d", last)
	}
}

func TestIPRateLimiter_SeparateIPs(t *testing.T) {
	limiter := NewIPRateLimiter(1, time.Minute)
	next, _ := okHandler()
	handler := limiter.Middleware(next)

	for _, addr := range []string{"203.0.113.10:1000", "203.0.113.11:1000"} {
		req := httptest.NewRequest("POST", "http://example.local/api/auth/login", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 for fresh IP %s, got %d", addr, rec.Code)
		}
	}
}

func TestAccountLockout_InMemory(t *testing.T) {
	const employeeID = 9001

	if locked, _ := IsAccountLocked(employeeID); locked {
		t.Fatal("account should start unlocked")
	}

	RecordFailedLogin(employeeID)
	locked, retry := IsAccountLocked(employeeID)
	if !locked {
		t.Fatal("expected lockout after a failed login")
	}
	if retry <= 0 || retry > time.Minute {
		t.Fatalf("unexpected first lockout duration %v", retry)
	}

	ResetFailedLogin(employeeID)
	if locked, _ := IsAccountLocked(employeeID); locked {
		t.Fatal("reset should clear the lockout")
	}
}
