package nat_test

import (
	"testing"

	"vnat/internal/nat"
)

func TestSizeAndDepth(t *testing.T) {
	for n := uint32(0); n <= 10; n++ {
		tree := nat.FromUint32(n)
		if got, want := tree.Size(), uint64(1)<<n; got != want {
			t.Fatalf("Size(%d) = %d, want %d", n, got, want)
		}
		if got := tree.Depth(); got != int(n) {
			t.Fatalf("Depth(%d) = %d", n, got)
		}
	}
}

func TestDepth_NonCanonical(t *testing.T) {
	if got := nat.Set(three).Depth(); got != 4 {
		t.Fatalf("Depth = %d, want 4", got)
	}
}
