package ratelimit_test

import (
	"errors"
	"testing"
	"time"

	"case-assistant/internal/ratelimit"
)

func TestCheckLimit(t *testing.T) {
	t.Run("sixth request in window is rejected", func(t *testing.T) {
		l := ratelimit.New(5, time.Minute)
		for i := 0; i < 5; i++ {
			res := l.CheckLimit("user-1")
			if !res.Allowed {
				t.Fatalf("request %d unexpectedly rejected", i+1)
			}
			if res.Remaining != 4-i {
				t.Errorf("request %d: expected remaining %d, got %d", i+1, 4-i, res.Remaining)
			}
		}
		res := l.CheckLimit("user-1")
		if res.Allowed {
			t.Error("sixth request should be rejected")
		}
		if res.RetryAfter <= 0 {
			t.Errorf("expected positive RetryAfter, got %s", res.RetryAfter)
		}
	})

	t.Run("users are independent", func(t *testing.T) {
		l := ratelimit.New(1, time.Minute)
		if !l.CheckLimit("a").Allowed {
			t.Error("first request for a rejected")
		}
		if !l.CheckLimit("b").Allowed {
			t.Error("first request for b rejected")
		}
		if l.CheckLimit("a").Allowed {
			t.Error("second request for a should be rejected")
		}
	})

	t.Run("exhausted window survives continuous activity", func(t *testing.T) {
		// The tracker TTL is twice the window. A user who exhausts two
		// consecutive windows must still be denied late in the second one,
		// even though the first bucket insertion is more than 2x the window
		// in the past by then.
		l := ratelimit.New(5, 400*time.Millisecond)
		for i := 0; i < 5; i++ {
			if !l.CheckLimit("user-1").Allowed {
				t.Fatalf("request %d in first window rejected", i+1)
			}
		}
		time.Sleep(600 * time.Millisecond)
		for i := 0; i < 5; i++ {
			if !l.CheckLimit("user-1").Allowed {
				t.Fatalf("request %d in second window rejected", i+1)
			}
		}
		time.Sleep(300 * time.Millisecond)
		res := l.CheckLimit("user-1")
		if res.Allowed {
			t.Errorf("sixth request in second window was allowed, remaining=%d", res.Remaining)
		}
		if !res.Allowed && res.RetryAfter <= 0 {
			t.Errorf("expected positive RetryAfter, got %s", res.RetryAfter)
		}
	})

	t.Run("bucket refills at window boundary", func(t *testing.T) {
		l := ratelimit.New(1, 30*time.Millisecond)
		if !l.CheckLimit("user-1").Allowed {
			t.Fatal("first request rejected")
		}
		if l.CheckLimit("user-1").Allowed {
			t.Fatal("second request in window should be rejected")
		}
		time.Sleep(40 * time.Millisecond)
		if !l.CheckLimit("user-1").Allowed {
			t.Error("request after window reset should be allowed")
		}
	})
}

func TestEnforceLimit(t *testing.T) {
	l := ratelimit.New(1, time.Minute)
	if err := l.EnforceLimit("user-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := l.EnforceLimit("user-1")
	if err == nil {
		t.Fatal("expected rate limit error")
	}
	var exceeded *ratelimit.ExceededError
	if !errors.As(err, &exceeded) {
		t.Fatalf("expected *ExceededError, got %T", err)
	}
	if exceeded.RetryAfter <= 0 {
		t.Errorf("expected positive RetryAfter, got %s", exceeded.RetryAfter)
	}
	if exceeded.UserID != "user-1" {
		t.Errorf("unexpected user id: %s", exceeded.UserID)
	}
}
