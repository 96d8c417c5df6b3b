package parallel

import (
	"sync/atomic"
	"testing"
)

func TestPoolRun(t *testing.T) {
	p := NewPool(4)
	defer p.Close()

	var sum atomic.Int64
	work := make([]func(), 100)
	for i := range work {
		work[i] = func() { sum.Add(int64(i)) }
	}
	p.Run(work)
	if got := sum.Load(); got != 4950 {
		t.Errorf("sum = %d, want 4950", got)
	}
}

func TestPoolDefaultWorkers(t *testing.T) {
	p := NewPool(0)
	defer p.Close()
	if p.Workers() < 1 {
		t.Errorf("Workers() = %d, want >= 1", p.Workers())
	}
}

func TestPoolRunAfterClose(t *testing.T) {
	p := NewPool(2)
	p.Close()
	p.Close()

	ran := 0
	p.Run([]func(){func() { ran++ }, func() { ran++ }})
	if ran != 2 {
		t.Errorf("ran = %d, want 2", ran)
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		n, parts int
		want     []Span
	}{
		{"even", 10, 2, []Span{{0, 5}, {5, 10}}},
		{"remainder", 10, 3, []Span{{0, 4}, {4, 7}, {7, 10}}},
		{"more parts than rows", 2, 8, []Span{{0, 1}, {1, 2}}},
		{"zero parts", 3, 0, []Span{{0, 3}}},
		{"empty", 0, 4, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.n, tt.parts)
			if len(got) != len(tt.want) {
				t.Fatalf("Split(%d, %d) = %v, want %v", tt.n, tt.parts, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Split(%d, %d)[%d] = %v, want %v", tt.n, tt.parts, i, got[i], tt.want[i])
				}
			}
		})
	}
}
