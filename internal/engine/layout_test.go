package engine

import "testing"

func TestPositionsForDeterministic(t *testing.T) {
	for count := 0; count <= SlotCapacity; count++ {
		a := PositionsFor(count)
		b := PositionsFor(count)
		if len(a) != count || len(b) != count {
			t.Fatalf("count %d: got lengths %d and %d", count, len(a), len(b))
		}
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("count %d slot %d: %+v vs %+v", count, i, a[i], b[i])
			}
		}
	}
}

func TestPositionsForZeroAndOverflow(t *testing.T) {
	if got := PositionsFor(0); len(got) != 0 {
		t.Fatalf("count 0 should be empty, got %d", len(got))
	}
	if got := PositionsFor(-3); len(got) != 0 {
		t.Fatalf("negative count should be empty, got %d", len(got))
	}
	if got := PositionsFor(SlotCapacity + 5); len(got) != SlotCapacity {
		t.Fatalf("overflow should clamp to capacity, got %d", len(got))
	}
}

func TestRingSlotsDistinct(t *testing.T) {
	slots := PositionsFor(SlotCapacity)
	seenAnchor := make(map[string]bool)
	seenPos := make(map[[2]float64]bool)
	for i, s := range slots {
		if s.Index != i {
			t.Fatalf("slot %d carries index %d", i, s.Index)
		}
		if s.Anchor == "" {
			t.Fatalf("slot %d has no anchor", i)
		}
		if seenAnchor[s.Anchor] {
			t.Fatalf("duplicate anchor %q", s.Anchor)
		}
		seenAnchor[s.Anchor] = true
		key := [2]float64{s.Angle, s.Radius}
		if seenPos[key] {
			t.Fatalf("colliding slot at angle %v radius %v", s.Angle, s.Radius)
		}
		seenPos[key] = true
		if s.Radius <= 0 || s.Radius > 1 {
			t.Fatalf("slot %d radius %v out of range", i, s.Radius)
		}
	}
}
