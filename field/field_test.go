package field

import (
	"errors"
	"testing"
)

var primesBelow100 = []int{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47,
	53, 59, 61, 67, 71, 73, 79, 83, 89, 97,
}

func markedIndices(v []float64) []int {
	var idx []int
	for i, x := range v {
		if x != 0 {
			idx = append(idx, i)
		}
	}

	return idx
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func TestBuildPrimesBelow100(t *testing.T) {
	v, err := Build(100, Prime)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	if len(v) != 100 {
		t.Fatalf("length = %d, want 100", len(v))
	}

	got := markedIndices(v)
	if !equalInts(got, primesBelow100) {
		t.Fatalf("prime indices = %v, want %v", got, primesBelow100)
	}
}

func TestBuildPrimesEdges(t *testing.T) {
	cases := []struct {
		n    int
		want []int
	}{
		{1, nil},
		{2, nil}, // 0 and 1 are forced non-prime
		{3, []int{2}},
		{4, []int{2, 3}},
		{10, []int{2, 3, 5, 7}},
	}

	for _, c := range cases {
		v, err := Build(c.n, Prime)
		if err != nil {
			t.Fatalf("Build(%d, Prime) returned error: %v", c.n, err)
		}

		if got := markedIndices(v); !equalInts(got, c.want) {
			t.Fatalf("Build(%d, Prime) marked %v, want %v", c.n, got, c.want)
		}
	}
}

func TestBuildPerfectSquaresBelow17(t *testing.T) {
	v, err := Build(17, PerfectSquare)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	want := []int{1, 4, 9, 16}
	if got := markedIndices(v); !equalInts(got, want) {
		t.Fatalf("square indices = %v, want %v", got, want)
	}
}

func TestBuildPerfectSquaresExcludesZero(t *testing.T) {
	v, err := Build(5, PerfectSquare)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	if v[0] != 0 {
		t.Fatalf("index 0 marked as perfect square")
	}

	if got := markedIndices(v); !equalInts(got, []int{1, 4}) {
		t.Fatalf("square indices = %v, want [1 4]", got)
	}
}

func TestBuildValuesAreBinary(t *testing.T) {
	for _, kind := range []Kind{Prime, PerfectSquare} {
		v, err := Build(1 << 10, kind)
		if err != nil {
			t.Fatalf("Build(%v) returned error: %v", kind, err)
		}

		for i, x := range v {
			if x != 0 && x != 1 {
				t.Fatalf("%v field entry %d = %v, want 0 or 1", kind, i, x)
			}
		}
	}
}

func TestBuildPrimeCountLarge(t *testing.T) {
	// pi(2^16) = 6542.
	v, err := Build(1<<16, Prime)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	if got := Count(v); got != 6542 {
		t.Fatalf("Count = %d, want 6542", got)
	}
}

func TestBuildInvalid(t *testing.T) {
	if _, err := Build(0, Prime); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("Build(0): expected ErrInvalidLength, got %v", err)
	}

	if _, err := Build(-8, PerfectSquare); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("Build(-8): expected ErrInvalidLength, got %v", err)
	}

	if _, err := Build(16, Kind(0)); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("Build(Kind(0)): expected ErrUnknownKind, got %v", err)
	}
}

func TestKindString(t *testing.T) {
	if Prime.String() != "prime" || PerfectSquare.String() != "perfect-square" {
		t.Fatalf("unexpected Kind names: %q, %q", Prime, PerfectSquare)
	}

	if Kind(99).String() != "unknown" {
		t.Fatalf("Kind(99) = %q, want unknown", Kind(99))
	}
}
