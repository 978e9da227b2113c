package middleware

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Michaux-Technology/Geco-SchoolPlan/pkg/response"
)

// LoginLimiter throttles the mobile login endpoint per client IP.
// After maxAttempts consecutive failures the IP is blocked for
// blockFor; a successful login clears the counter. State is held in
// memory only, a restart forgives everyone.
type LoginLimiter struct {
	mu          sync.Mutex
	attempts    map[string]int
	blockedTill map[string]time.Time

	maxAttempts int
	blockFor    time.Duration
	now         func() time.Time
}

// NewLoginLimiter creates a LoginLimiter.
func NewLoginLimiter(maxAttempts int, blockFor time.Duration) *LoginLimiter {
	return &LoginLimiter{
		attempts:    make(map[string]int),
		blockedTill: make(map[string]time.Time),
		maxAttempts: maxAttempts,
		blockFor:    blockFor,
		now:         time.Now,
	}
}

// Blocked reports whether ip is currently blocked and for how much
// longer.
func (l *LoginLimiter) Blocked(ip string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	till, ok := l.blockedTill[ip]
	if !ok {
		return false, 0
	}
	remaining := till.Sub(l.now())
	if remaining <= 0 {
		delete(l.blockedTill, ip)
		delete(l.attempts, ip)
		return false, 0
	}
	return true, remaining
}

// Fail records a failed attempt and starts the block once the limit
// is reached.
func (l *LoginLimiter) Fail(ip string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.attempts[ip]++
	if l.attempts[ip] >= l.maxAttempts {
		l.blockedTill[ip] = l.now().Add(l.blockFor)
	}
}

// Reset clears the state of ip after a successful login.
func (l *LoginLimiter) Reset(ip string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.attempts, ip)
	delete(l.blockedTill, ip)
}

// Check rejects blocked IPs with a 429 naming the remaining minutes.
func (l *LoginLimiter) Check() gin.HandlerFunc {
	return func(c *gin.Context) {
		blocked, remaining := l.Blocked(c.ClientIP())
		if blocked {
			minutes := int(math.Ceil(remaining.Minutes()))
			response.TooManyRequests(c, fmt.Sprintf(
				"trop de tentatives de connexion, réessayez dans %d minutes", minutes))
			c.Abort()
			return
		}
		c.Next()
	}
}
