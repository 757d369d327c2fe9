package rng

import (
	"context"
	"testing"
)

func TestSeededStream_Deterministic(t *testing.T) {
	adapter := NewAdapter()

	a, err := adapter.SeededStream(context.Background(), "normal_sample", 42)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	b, err := adapter.SeededStream(context.Background(), "normal_sample", 42)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("Streams with the same name and seed must be identical")
		}
	}
}

func TestSeededStream_NameIsolation(t *testing.T) {
	adapter := NewAdapter()

	a, _ := adapter.SeededStream(context.Background(), "normal_sample", 42)
	b, _ := adapter.SeededStream(context.Background(), "other_operation", 42)

	same := true
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			same = false
			break
		}
	}
	if same {
		t.Error("Streams with different names should not share a sequence")
	}
}
