package auth

import (
	"testing"
	"time"
)

func newTestRateLimiter(maxAttempts int) *RateLimiter {
	return NewRateLimiter(RateLimitConfig{
		MaxAttempts:     maxAttempts,
		WindowDuration:  time.Minute,
		LockoutDuration: time.Minute,
		CleanupInterval: time.Hour,
	})
}

func TestRateLimiter_AllowsUnderLimit(t *testing.T) {
	rl := newTestRateLimiter(3)
	defer rl.Stop()

	for i := 0; i < 2; i++ {
		allowed, _ := rl.Allow("1.2.3.4", "alice")
		if !allowed {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
		rl.RecordFailure("1.2.3.4", "alice")
	}

	allowed, _ := rl.Allow("1.2.3.4", "alice")
	if !allowed {
		t.Error("attempt under limit should still be allowed")
	}
}

func TestRateLimiter_LocksOutAfterMaxFailures(t *testing.T) {
	rl := newTestRateLimiter(3)
	defer rl.Stop()

	var locked bool
	for i := 0; i < 3; i++ {
		locked, _ = rl.RecordFailure("1.2.3.4", "alice")
	}
	if !locked {
		t.Error("expected lockout after max failures")
	}

	allowed, retryAfter := rl.Allow("1.2.3.4", "alice")
	if allowed {
		t.Error("locked out pair should not be allowed")
	}
	if retryAfter <= 0 {
		t.Error("expected positive retryAfter during lockout")
	}
}

func TestRateLimiter_SuccessResetsFailures(t *testing.T) {
	rl := newTestRateLimiter(3)
	defer rl.Stop()

	rl.RecordFailure("1.2.3.4", "alice")
	rl.RecordFailure("1.2.3.4", "alice")
	rl.RecordSuccess("1.2.3.4", "alice")

	for i := 0; i < 2; i++ {
		allowed, _ := rl.Allow("1.2.3.4", "alice")
		if !allowed {
			t.Fatal("failures should have been cleared by success")
		}
		rl.RecordFailure("1.2.3.4", "alice")
	}
}

func TestRateLimiter_SeparateKeysPerUser(t *testing.T) {
	rl := newTestRateLimiter(2)
	defer rl.Stop()

	rl.RecordFailure("1.2.3.4", "alice")
	rl.RecordFailure("1.2.3.4", "alice")

	if allowed, _ := rl.Allow("1.2.3.4", "alice"); allowed {
		t.Error("alice from this IP should be locked out")
	}
	if allowed, _ := rl.Allow("1.2.3.4", "bob"); !allowed {
		t.Error("bob should not be affected by alice's failures")
	}
	if allowed, _ := rl.Allow("5.6.7.8", "alice"); !allowed {
		t.Error("alice from another IP should not be affected")
	}
}
