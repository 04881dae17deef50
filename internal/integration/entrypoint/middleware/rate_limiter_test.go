package middleware

import (
	"testing"
	"time"
)

func TestRateLimiter_Allow(t *testing.T) {
	t.Run("allows up to the configured attempts", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(3, time.Minute)

		for i := 0; i < 3; i++ {
			if !rl.allow("10.0.0.1") {
				t.Fatalf("attempt %d should be allowed", i+1)
			}
		}
		if rl.allow("10.0.0.1") {
			t.Error("fourth attempt should be blocked")
		}
	})

	t.Run("keys are tracked independently", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, time.Minute)

		if !rl.allow("10.0.0.1") {
			t.Fatal("first key should be allowed")
		}
		if !rl.allow("10.0.0.2") {
			t.Error("second key should have its own budget")
		}
		if rl.allow("10.0.0.1") {
			t.Error("first key should be exhausted")
		}
	})

	t.Run("window expiry restores the budget", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, 10*time.Millisecond)

		if !rl.allow("10.0.0.1") {
			t.Fatal("first attempt should be allowed")
		}
		if rl.allow("10.0.0.1") {
			t.Fatal("second attempt should be blocked")
		}

		time.Sleep(20 * time.Millisecond)
		if !rl.allow("10.0.0.1") {
			t.Error("attempt after the window should be allowed")
		}
	})

	t.Run("reset clears all state", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, time.Minute)

		rl.allow("10.0.0.1")
		rl.Reset()
		if !rl.allow("10.0.0.1") {
			t.Error("attempt after reset should be allowed")
		}
	})

	t.Run("cleanup drops only expired entries", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, 10*time.Millisecond)

		rl.allow("expired")
		time.Sleep(20 * time.Millisecond)
		rl.allow("fresh")
		rl.Cleanup()

		rl.mu.Lock()
		_, hasExpired := rl.entries["expired"]
		_, hasFresh := rl.entries["fresh"]
		rl.mu.Unlock()

		if hasExpired {
			t.Error("expired entry should be removed")
		}
		if !hasFresh {
			t.Error("fresh entry should survive cleanup")
		}
	})
}
