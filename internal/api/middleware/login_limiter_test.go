package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func limiterRouter(l *LoginLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", l.Check(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func postLogin(r *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = ip + ":1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLimiterBlocksAfterMaxFailures(t *testing.T) {
	l := NewLoginLimiter(3, 15*time.Minute)
	r := limiterRouter(l)

	for i := 0; i < 3; i++ {
		if w := postLogin(r, "10.0.0.1"); w.Code != http.StatusOK {
			t.Fatalf("attempt %d: status %d", i, w.Code)
		}
		l.Fail("10.0.0.1")
	}

	w := postLogin(r, "10.0.0.1")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("blocked IP got status %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "15 minutes") {
		t.Errorf("body %q does not name remaining minutes", w.Body.String())
	}

	// Another IP is unaffected.
	if w := postLogin(r, "10.0.0.2"); w.Code != http.StatusOK {
		t.Errorf("other IP got status %d", w.Code)
	}
}

func TestLimiterResetOnSuccess(t *testing.T) {
	l := NewLoginLimiter(3, 15*time.Minute)

	l.Fail("10.0.0.1")
	l.Fail("10.0.0.1")
	l.Reset("10.0.0.1")
	l.Fail("10.0.0.1")

	if blocked, _ := l.Blocked("10.0.0.1"); blocked {
		t.Error("IP blocked although the counter was reset")
	}
}

func TestLimiterExpiryUnblocks(t *testing.T) {
	l := NewLoginLimiter(1, 15*time.Minute)
	current := time.Now()
	l.now = func() time.Time { return current }

	l.Fail("10.0.0.1")
	if blocked, _ := l.Blocked("10.0.0.1"); !blocked {
		t.Fatal("IP not blocked after reaching the limit")
	}

	current = current.Add(16 * time.Minute)
	if blocked, _ := l.Blocked("10.0.0.1"); blocked {
		t.Error("IP still blocked after the window elapsed")
	}
}
