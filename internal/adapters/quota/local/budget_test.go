package local

import (
	"context"
	"sync"
	"testing"
)

func TestBudgetDecrements(t *testing.T) {
	b := NewBudget(3)
	ctx := context.Background()

	for want := 3; want > 0; want-- {
		n, err := b.Remaining(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != want {
			t.Fatalf("remaining = %d, want %d", n, want)
		}
		b.Record(ctx)
	}

	n, _ := b.Remaining(ctx)
	if n != 0 {
		t.Fatalf("remaining = %d, want 0", n)
	}
}

func TestBudgetNeverNegative(t *testing.T) {
	b := NewBudget(1)
	ctx := context.Background()

	b.Record(ctx)
	b.Record(ctx)

	n, _ := b.Remaining(ctx)
	if n != 0 {
		t.Fatalf("remaining = %d, want 0", n)
	}
}

func TestBudgetConcurrentRecords(t *testing.T) {
	const workers = 50
	b := NewBudget(workers)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Record(ctx)
		}()
	}
	wg.Wait()

	n, _ := b.Remaining(ctx)
	if n != 0 {
		t.Fatalf("remaining = %d after %d concurrent records, want 0", n, workers)
	}
}
