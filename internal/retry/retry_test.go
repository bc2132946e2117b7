package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubClassifier struct{ transient bool }

func (c stubClassifier) IsTransient(err error) bool { return c.transient }

func fastBackoff(maxAttempts int) *ExponentialBackoff {
	return NewExponentialBackoff(maxAttempts,
		WithInitialDelay(time.Millisecond),
		WithMaxDelay(2*time.Millisecond),
		WithJitter(0),
	)
}

// TestExecute_SuccessFirstAttempt tests that a successful operation runs
// exactly once.
func TestExecute_SuccessFirstAttempt(t *testing.T) {
	executor := NewExecutor(stubClassifier{transient: true}, fastBackoff(3))

	calls := 0
	err := executor.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if calls != 1 {
		t.Errorf("Expected 1 call, got %d", calls)
	}
}

// TestExecute_FatalErrorNoRetry tests that non-transient errors return
// immediately.
func TestExecute_FatalErrorNoRetry(t *testing.T) {
	executor := NewExecutor(stubClassifier{transient: false}, fastBackoff(3))

	fatal := errors.New("syntax error")
	calls := 0
	err := executor.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return fatal
	})
	if !errors.Is(err, fatal) {
		t.Errorf("Expected fatal error, got: %v", err)
	}
	if calls != 1 {
		t.Errorf("Expected 1 call, got %d", calls)
	}
}

// TestExecute_TransientRetriesUntilSuccess tests recovery after
// transient failures.
func TestExecute_TransientRetriesUntilSuccess(t *testing.T) {
	executor := NewExecutor(stubClassifier{transient: true}, fastBackoff(5))

	calls := 0
	err := executor.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("connection refused")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Expected eventual success, got: %v", err)
	}
	if calls != 3 {
		t.Errorf("Expected 3 calls, got %d", calls)
	}
}

// TestExecute_ExhaustsAttempts tests that the attempt budget bounds the
// retries and the last error is returned.
func TestExecute_ExhaustsAttempts(t *testing.T) {
	executor := NewExecutor(stubClassifier{transient: true}, fastBackoff(2))

	transient := errors.New("connection refused")
	calls := 0
	err := executor.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return transient
	})
	if !errors.Is(err, transient) {
		t.Errorf("Expected last transient error, got: %v", err)
	}
	// Initial attempt plus two retries.
	if calls != 3 {
		t.Errorf("Expected 3 calls, got %d", calls)
	}
}

// TestExecute_ContextCancellation tests that cancellation stops the
// retry loop.
func TestExecute_ContextCancellation(t *testing.T) {
	executor := NewExecutor(stubClassifier{transient: true},
		NewExponentialBackoff(10, WithInitialDelay(time.Hour), WithJitter(0)))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := executor.Execute(ctx, func(ctx context.Context) error {
		return errors.New("connection refused")
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context cancellation, got: %v", err)
	}
}

// TestExecute_OnRetryCallback tests the retry observation hook.
func TestExecute_OnRetryCallback(t *testing.T) {
	var attempts []int
	executor := NewExecutor(stubClassifier{transient: true}, fastBackoff(2)).
		WithOnRetry(func(attempt int, err error, delay time.Duration) {
			attempts = append(attempts, attempt)
		})

	_ = executor.Execute(context.Background(), func(ctx context.Context) error {
		return errors.New("connection refused")
	})

	if len(attempts) != 2 || attempts[0] != 0 || attempts[1] != 1 {
		t.Errorf("Expected retry callbacks [0 1], got %v", attempts)
	}
}

// TestNextDelay_GrowthAndCap tests exponential growth up to the cap.
func TestNextDelay_GrowthAndCap(t *testing.T) {
	b := NewExponentialBackoff(5,
		WithInitialDelay(100*time.Millisecond),
		WithMaxDelay(300*time.Millisecond),
		WithJitter(0),
	)

	if d := b.NextDelay(0); d != 100*time.Millisecond {
		t.Errorf("Expected 100ms for attempt 0, got %v", d)
	}
	if d := b.NextDelay(1); d != 200*time.Millisecond {
		t.Errorf("Expected 200ms for attempt 1, got %v", d)
	}
	if d := b.NextDelay(5); d != 300*time.Millisecond {
		t.Errorf("Expected cap 300ms, got %v", d)
	}
}

// TestNextDelay_DeterministicJitter tests the jitter bounds with a fixed
// random source.
func TestNextDelay_DeterministicJitter(t *testing.T) {
	b := NewExponentialBackoff(3,
		WithInitialDelay(100*time.Millisecond),
		WithJitter(0.1),
		WithJitterFunc(func() float64 { return 1.0 }),
	)

	// random=1.0 maps to the +10% edge.
	if d := b.NextDelay(0); d != 110*time.Millisecond {
		t.Errorf("Expected 110ms at +10%% jitter, got %v", d)
	}
}

// TestClassifier_TransientPatterns tests message-based classification.
func TestClassifier_TransientPatterns(t *testing.T) {
	c := NewPostgreSQLErrorClassifier()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"connection refused", errors.New("dial tcp: connection refused"), true},
		{"too many connections", errors.New("FATAL: too many connections"), true},
		{"broken pipe", errors.New("write: broken pipe"), true},
		{"syntax error", errors.New("syntax error at or near"), false},
		{"constraint violation", errors.New("duplicate key value violates unique constraint"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.IsTransient(tt.err); got != tt.want {
				t.Errorf("IsTransient(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
