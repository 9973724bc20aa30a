package middleware

import (
	"testing"
	"time"
)

func TestMemoryLimiter_AllowWithinLimit(t *testing.T) {
	limiter := NewMemoryLimiter()

	for i := 0; i < 3; i++ {
		if !limiter.Allow("ip:1.2.3.4", 3, time.Minute) {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if limiter.Allow("ip:1.2.3.4", 3, time.Minute) {
		t.Error("fourth request should be blocked")
	}
}

func TestMemoryLimiter_KeysAreIndependent(t *testing.T) {
	limiter := NewMemoryLimiter()

	if !limiter.Allow("a", 1, time.Minute) {
		t.Fatal("first key should be allowed")
	}
	if !limiter.Allow("b", 1, time.Minute) {
		t.Error("second key must have its own window")
	}
}

func TestMemoryLimiter_WindowResets(t *testing.T) {
	limiter := NewMemoryLimiter()

	if !limiter.Allow("k", 1, 10*time.Millisecond) {
		t.Fatal("first request should be allowed")
	}
	if limiter.Allow("k", 1, 10*time.Millisecond) {
		t.Fatal("second request inside the window should be blocked")
	}
	time.Sleep(15 * time.Millisecond)
	if !limiter.Allow("k", 1, 10*time.Millisecond) {
		t.Error("request after the window should be allowed again")
	}
}
