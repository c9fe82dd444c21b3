package layout

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func solveLengths(length int, policies ...Policy) ([]int, bool) {
	items := make([]Item, len(policies))
	for i, p := range policies {
		items[i] = Item{Policy: p}
	}
	tooSmall := Solve(length, items)
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.Length
	}
	return out, tooSmall
}

func TestSolve(t *testing.T) {
	type tc struct {
		length   int
		policies []Policy
		want     []int
		tooSmall bool
	}

	tests := map[string]tc{
		"fixed plus two weighted expanders": {
			length: 100,
			policies: []Policy{
				FixedPolicy(20),
				ExpandingPolicy(10),
				ExpandingPolicy(10).WithStretch(3),
			},
			want: []int{20, 25, 55},
		},
		"rounding remainder goes round robin": {
			length:   10,
			policies: []Policy{ExpandingPolicy(0), ExpandingPolicy(0), ExpandingPolicy(0)},
			want:     []int{4, 3, 3},
		},
		"rounding remainder passes to the preferred group": {
			length: 10,
			policies: []Policy{
				ExpandingPolicy(0), ExpandingPolicy(0), ExpandingPolicy(0), PreferredPolicy(0),
			},
			want: []int{3, 3, 3, 1},
		},
		"remainder too small to share settles expanding first": {
			length: 10,
			policies: []Policy{
				ExpandingPolicy(0), ExpandingPolicy(0), ExpandingPolicy(0),
				PreferredPolicy(0), PreferredPolicy(0), PreferredPolicy(0),
			},
			want: []int{4, 3, 3, 0, 0, 0},
		},
		"shrink remainder passes to the expanding group": {
			length: 12,
			policies: []Policy{
				PreferredPolicy(4), PreferredPolicy(4), PreferredPolicy(4), ExpandingPolicy(4),
			},
			want: []int{3, 3, 3, 3},
		},
		"exact fit": {
			length:   30,
			policies: []Policy{PreferredPolicy(10), ExpandingPolicy(20)},
			want:     []int{10, 20},
		},
		"expanding claims slack before preferred": {
			length:   50,
			policies: []Policy{PreferredPolicy(10), ExpandingPolicy(10)},
			want:     []int{10, 40},
		},
		"preferred gets what saturated expanders leave": {
			length:   50,
			policies: []Policy{PreferredPolicy(10), ExpandingPolicy(10).WithMax(20)},
			want:     []int{30, 20},
		},
		"member pinned at max drops out and the rest re-share": {
			length: 100,
			policies: []Policy{
				ExpandingPolicy(0).WithMax(10),
				ExpandingPolicy(0),
				ExpandingPolicy(0).WithStretch(2),
			},
			want: []int{10, 30, 60},
		},
		"minimum expanding grows, minimum waits": {
			length:   40,
			policies: []Policy{MinimumExpandingPolicy(10), MinimumPolicy(10)},
			want:     []int{30, 10},
		},
		"nothing can grow": {
			length:   100,
			policies: []Policy{MaximumPolicy(10), FixedPolicy(10)},
			want:     []int{10, 10},
		},
		"preferred shrinks before expanding": {
			length:   20,
			policies: []Policy{PreferredPolicy(15), ExpandingPolicy(15)},
			want:     []int{5, 15},
		},
		"expanding shrinks once preferred is at min": {
			length:   10,
			policies: []Policy{PreferredPolicy(15).WithMin(10), ExpandingPolicy(15)},
			want:     []int{10, 0},
		},
		"low stretch gives up more": {
			length:   30,
			policies: []Policy{PreferredPolicy(20), PreferredPolicy(20).WithStretch(3)},
			want:     []int{12, 18},
		},
		"maximum shrinks beside a fixed sibling": {
			length:   10,
			policies: []Policy{MaximumPolicy(8), FixedPolicy(6)},
			want:     []int{4, 6},
		},
		"ignored splits the whole length by stretch": {
			length:   100,
			policies: []Policy{IgnoredPolicy(), IgnoredPolicy().WithStretch(3)},
			want:     []int{25, 75},
		},
		"ignored shares are taken back when fixed needs room": {
			length:   10,
			policies: []Policy{IgnoredPolicy(), IgnoredPolicy(), FixedPolicy(4)},
			want:     []int{3, 3, 4},
		},
		"ignored share is clamped to max": {
			length:   100,
			policies: []Policy{IgnoredPolicy().WithMax(10), PreferredPolicy(0)},
			want:     []int{10, 90},
		},
		"zero length": {
			length:   0,
			policies: []Policy{PreferredPolicy(5), ExpandingPolicy(5)},
			want:     []int{0, 0},
		},
		"two fixed children in too little space": {
			length:   30,
			policies: []Policy{FixedPolicy(20), FixedPolicy(20)},
			want:     []int{20, 20},
			tooSmall: true,
		},
		"can ignore min gives up space as a last resort": {
			length:   30,
			policies: []Policy{FixedPolicy(20), FixedPolicy(20).WithCanIgnoreMin(true)},
			want:     []int{20, 10},
			tooSmall: true,
		},
		"single child takes everything": {
			length:   42,
			policies: []Policy{ExpandingPolicy(3)},
			want:     []int{42},
		},
		"no children": {
			length: 42,
			want:   []int{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, tooSmall := solveLengths(tt.length, tt.policies...)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("lengths mismatch (-want +got):\n%s", diff)
			}
			if tooSmall != tt.tooSmall {
				t.Errorf("tooSmall = %v, want %v", tooSmall, tt.tooSmall)
			}
		})
	}
}

func TestSolve_TooSmallNeverExceedsHint(t *testing.T) {
	got, tooSmall := solveLengths(30, FixedPolicy(20), FixedPolicy(20))
	if !tooSmall {
		t.Fatal("tooSmall = false, want true")
	}
	for i, n := range got {
		if n > 20 {
			t.Errorf("length[%d] = %d, exceeds hint 20", i, n)
		}
		if n < 20 {
			t.Errorf("length[%d] = %d, below min 20", i, n)
		}
	}
}

func TestSolve_Idempotent(t *testing.T) {
	items := []Item{
		{Policy: FixedPolicy(7)},
		{Policy: ExpandingPolicy(3).WithStretch(2)},
		{Policy: IgnoredPolicy().WithMax(9)},
		{Policy: PreferredPolicy(11)},
	}
	first := append([]Item(nil), items...)
	second := append([]Item(nil), items...)

	Solve(57, first)
	Solve(57, second)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second solve differs (-first +second):\n%s", diff)
	}
}

func TestSolve_StretchMonotonic(t *testing.T) {
	for _, length := range []int{1, 7, 10, 11, 23} {
		prevA, prevB := -1, -1
		for stretch := 1; stretch <= 8; stretch++ {
			got, _ := solveLengths(length, ExpandingPolicy(2), ExpandingPolicy(2).WithStretch(stretch))
			a, b := got[0], got[1]
			if prevB >= 0 {
				if b < prevB {
					t.Errorf("length %d: stretch %d gave %d, less than %d at stretch %d", length, stretch, b, prevB, stretch-1)
				}
				if b-a < prevB-prevA {
					t.Errorf("length %d: stretch %d lost ground to sibling (%d vs %d)", length, stretch, b-a, prevB-prevA)
				}
			}
			prevA, prevB = a, b
		}
	}
}

func TestSolve_Conservation(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	kinds := []Kind{KindFixed, KindMinimum, KindMaximum, KindPreferred, KindExpanding, KindMinimumExpanding, KindIgnored}

	for trial := 0; trial < 2000; trial++ {
		n := 1 + rng.IntN(6)
		items := make([]Item, n)
		sumMin, sumMax := 0, 0
		for i := range items {
			k := kinds[rng.IntN(len(kinds))]
			hint := rng.IntN(21)
			p := DefaultPolicy().As(k, hint).WithStretch(1 + rng.IntN(5))
			switch k {
			case KindPreferred, KindExpanding:
				if rng.IntN(2) == 0 {
					p = p.WithMax(hint + rng.IntN(16))
				}
				if rng.IntN(2) == 0 {
					p = p.WithMin(rng.IntN(hint + 1))
				}
			case KindMaximum:
				if rng.IntN(2) == 0 {
					p = p.WithMin(rng.IntN(hint + 1))
				}
			case KindIgnored:
				if rng.IntN(2) == 0 {
					maxLen := rng.IntN(31)
					p = p.WithMax(maxLen).WithMin(rng.IntN(maxLen + 1))
				}
			}
			items[i] = Item{Policy: p}
			sumMin += p.Min()
			sumMax += p.Max()
		}
		length := rng.IntN(121)

		tooSmall := Solve(length, items)

		total := 0
		for i, it := range items {
			total += it.Length
			if it.Length > it.Policy.Max() {
				t.Fatalf("trial %d: item %d length %d above max %d", trial, i, it.Length, it.Policy.Max())
			}
			if it.Length < it.Policy.Min() && !tooSmall {
				t.Fatalf("trial %d: item %d length %d below min %d without tooSmall", trial, i, it.Length, it.Policy.Min())
			}
			if it.Policy.Kind() == KindFixed && !tooSmall && it.Length != it.Policy.Hint() {
				t.Fatalf("trial %d: fixed item %d length %d, want hint %d", trial, i, it.Length, it.Policy.Hint())
			}
		}
		if tooSmall != (sumMin > length) {
			t.Fatalf("trial %d: tooSmall = %v with sum(min) %d and length %d", trial, tooSmall, sumMin, length)
		}
		if sumMin <= length && length <= sumMax && total != length {
			t.Fatalf("trial %d: lengths sum to %d, want %d", trial, total, length)
		}
	}
}

func TestSolve_ZeroStretchPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Solve() did not panic on a zero stretch")
		}
		if msg, _ := r.(string); !strings.Contains(msg, "stretch must be positive") {
			t.Errorf("panic = %v, want a stretch message", r)
		}
	}()
	Solve(10, []Item{{Policy: ExpandingPolicy(2)}, {Policy: Policy{kind: KindExpanding}}})
}
