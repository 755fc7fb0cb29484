package vmath

import "testing"

// TestFastRand_Deterministic verifies equal seeds produce equal sequences
func TestFastRand_Deterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("Sequences diverged at step %d", i)
		}
	}
}

// TestFastRand_ZeroSeed verifies a zero seed still produces values
func TestFastRand_ZeroSeed(t *testing.T) {
	r := NewFastRand(0)
	if r.Next() == 0 {
		t.Error("Expected non-zero output for zero seed")
	}
}

// TestFastRand_Ranges verifies Intn and Float64 bounds
func TestFastRand_Ranges(t *testing.T) {
	r := NewFastRand(7)
	for i := 0; i < 1000; i++ {
		if n := r.Intn(10); n < 0 || n >= 10 {
			t.Fatalf("Intn out of range: %d", n)
		}
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %f", f)
		}
	}
	if r.Intn(0) != 0 {
		t.Error("Expected Intn(0) to return 0")
	}
}

func TestDistSq(t *testing.T) {
	if got := DistSq(1, 1, 4, 5); got != 25 {
		t.Errorf("Expected 25, got %d", got)
	}
	if got := DistSq(4, 5, 1, 1); got != 25 {
		t.Errorf("Expected symmetric 25, got %d", got)
	}
}

func BenchmarkFastRand_Float64(b *testing.B) {
	r := NewFastRand(1)
	var sink float64
	for i := 0; i < b.N; i++ {
		sink += r.Float64()
	}
	_ = sink
}
