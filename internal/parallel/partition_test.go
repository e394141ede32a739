package parallel

import "testing"

func TestSpanOf(t *testing.T) {
	tests := []struct {
		name        string
		id, workers int
		n           int
		want        Span
	}{
		{"single worker", 0, 1, 256, Span{0, 256}},
		{"even first", 0, 4, 256, Span{0, 64}},
		{"even last", 3, 4, 256, Span{192, 256}},
		{"uneven middle", 1, 3, 10, Span{3, 6}},
		{"uneven last", 2, 3, 10, Span{6, 10}},
		{"more workers than items", 0, 4, 2, Span{0, 0}},
		{"more workers than items last", 3, 4, 2, Span{1, 2}},
		{"empty range", 1, 2, 0, Span{}},
		{"bad id", 5, 2, 10, Span{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SpanOf(tt.id, tt.workers, tt.n); got != tt.want {
				t.Errorf("SpanOf(%d, %d, %d) = %+v, want %+v", tt.id, tt.workers, tt.n, got, tt.want)
			}
		})
	}
}

// TestSpanOf_Cover checks that spans are disjoint, ordered and cover [0, n).
func TestSpanOf_Cover(t *testing.T) {
	for workers := 1; workers <= 17; workers++ {
		for _, n := range []int{0, 1, 2, 5, 16, 100, 256, 2047} {
			next := 0
			total := 0
			for id := range workers {
				s := SpanOf(id, workers, n)
				if s.Empty() {
					continue
				}
				if s.Start != next {
					t.Fatalf("workers=%d n=%d id=%d: Start = %d, want %d", workers, n, id, s.Start, next)
				}
				next = s.End
				total += s.Len()
			}
			if total != n || next != n {
				t.Errorf("workers=%d n=%d: covered %d items ending at %d", workers, n, total, next)
			}
		}
	}
}

func TestAssign_TrailingRowOwner(t *testing.T) {
	for workers := 1; workers <= 9; workers++ {
		owners := 0
		for id := range workers {
			a := Assign(id, workers, 3)
			if a.OwnsTrailingRow {
				owners++
				if id != workers-1 {
					t.Errorf("workers=%d: id %d owns trailing row, want %d", workers, id, workers-1)
				}
			}
			if a.Rows != SpanOf(id, workers, 3) {
				t.Errorf("Assign(%d, %d).Rows = %+v, want %+v", id, workers, a.Rows, SpanOf(id, workers, 3))
			}
		}
		if owners != 1 {
			t.Errorf("workers=%d: %d trailing row owners, want 1", workers, owners)
		}
	}
}

func TestAssign_TrailingOwnerWithEmptySpan(t *testing.T) {
	// With no grid rows the last worker still owns the trailing row.
	a := Assign(2, 3, 0)
	if !a.OwnsTrailingRow {
		t.Error("Assign(2, 3, 0).OwnsTrailingRow = false, want true")
	}
	if !a.Rows.Empty() {
		t.Errorf("Assign(2, 3, 0).Rows = %+v, want empty", a.Rows)
	}
}
