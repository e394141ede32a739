package march

import "testing"

// cornerDark reports whether corner c of configuration k is dark.
func cornerDark(k uint8, c Point) bool {
	switch c {
	case Point{0, 0}:
		return k&8 != 0
	case Point{1, 0}:
		return k&4 != 0
	case Point{1, 1}:
		return k&2 != 0
	default:
		return k&1 != 0
	}
}

func TestSegments_Uniform(t *testing.T) {
	if len(Segments(0)) != 0 || len(Segments(15)) != 0 {
		t.Error("uniform configurations 0 and 15 should have no segments")
	}
}

// TestSegments_EdgeCrossings checks that every cell edge with differently
// classified endpoints is crossed exactly once, and no other edge is.
func TestSegments_EdgeCrossings(t *testing.T) {
	edges := []struct {
		mid  Point
		a, b Point
	}{
		{Top, Point{0, 0}, Point{1, 0}},
		{Right, Point{1, 0}, Point{1, 1}},
		{Bottom, Point{0, 1}, Point{1, 1}},
		{Left, Point{0, 0}, Point{0, 1}},
	}

	for k := range uint8(16) {
		hits := make(map[Point]int)
		for _, s := range Segments(k) {
			hits[s.A]++
			hits[s.B]++
		}
		for _, e := range edges {
			want := 0
			if cornerDark(k, e.a) != cornerDark(k, e.b) {
				want = 1
			}
			if hits[e.mid] != want {
				t.Errorf("k=%d: edge %+v crossed %d times, want %d", k, e.mid, hits[e.mid], want)
			}
		}
	}
}

func TestSegments_Complement(t *testing.T) {
	// Swapping dark and light keeps the same edge crossings.
	for k := range uint8(16) {
		if len(Segments(k)) != len(Segments(15-k)) {
			t.Errorf("k=%d has %d segments, complement %d has %d",
				k, len(Segments(k)), 15-k, len(Segments(15-k)))
		}
	}
}
