package nat_test

import (
	"errors"
	"testing"

	"vnat/internal/nat"
)

func TestCheckedUint32_Canonical(t *testing.T) {
	for n := uint32(0); n <= 8; n++ {
		got, err := nat.FromUint32(n).CheckedUint32()
		if err != nil {
			t.Fatalf("CheckedUint32(%d): %v", n, err)
		}
		if got != n {
			t.Fatalf("CheckedUint32(%d) = %d", n, got)
		}
	}
}

func TestCheckedUint32_Malformed(t *testing.T) {
	tests := []struct {
		name     string
		tree     nat.Nat
		path     []int
		want     int
		gotElems int
	}{
		{"nested zero in first slot", nat.Set(one), []int{0}, 0, 1},
		{"duplicate zero", nat.Set(zero, zero), []int{1}, 1, 0},
		{"wrong order", nat.Set(zero, two, one), []int{1}, 1, 2},
		{"deep violation", nat.Set(zero, one, nat.Set(zero, zero)), []int{2, 1}, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.tree.CheckedUint32()
			if !errors.Is(err, nat.ErrMalformedTree) {
				t.Fatalf("want ErrMalformedTree, got %v", err)
			}
			var me *nat.MalformedError
			if !errors.As(err, &me) {
				t.Fatalf("want *MalformedError, got %T", err)
			}
			if len(me.Path) != len(tt.path) {
				t.Fatalf("path = %v, want %v", me.Path, tt.path)
			}
			for i := range tt.path {
				if me.Path[i] != tt.path[i] {
					t.Fatalf("path = %v, want %v", me.Path, tt.path)
				}
			}
			if me.Want != tt.want || me.Got != tt.gotElems {
				t.Fatalf("want/got = %d/%d, expected %d/%d", me.Want, me.Got, tt.want, tt.gotElems)
			}
		})
	}
}

func TestMalformedError_Message(t *testing.T) {
	_, err := nat.Set(zero, one, nat.Set(zero, zero)).CheckedUint32()
	want := "malformed tree: element /2/1 has 0 elements, want 1"
	if err == nil || err.Error() != want {
		t.Fatalf("error = %v, want %q", err, want)
	}
}

func TestUint32_IsUnchecked(t *testing.T) {
	// A malformed tree still reports its element count.
	if got := nat.Set(three, three).Uint32(); got != 2 {
		t.Fatalf("Uint32 = %d, want 2", got)
	}
}
