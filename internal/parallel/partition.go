package parallel

// Span is a half-open index range [Start, End).
type Span struct {
	Start int
	End   int
}

// Len returns the number of indices in the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Empty reports whether the span contains no indices.
func (s Span) Empty() bool {
	return s.End <= s.Start
}

// SpanOf returns the range of [0, n) assigned to worker id out of workers:
// [id*n/workers, min((id+1)*n/workers, n)). The spans of all ids are
// disjoint and cover [0, n) exactly; some may be empty when workers > n.
func SpanOf(id, workers, n int) Span {
	if workers <= 0 || n <= 0 || id < 0 || id >= workers {
		return Span{}
	}
	return Span{
		Start: id * n / workers,
		End:   min((id+1)*n/workers, n),
	}
}

// Assignment is the grid work a single worker owns during sampling and
// stamping.
type Assignment struct {
	// Rows is the worker's range of grid rows.
	Rows Span

	// OwnsTrailingRow is set for exactly one worker (the highest id). That
	// worker classifies the extra grid row sampled from the last pixel row.
	OwnsTrailingRow bool
}

// Assign returns the assignment of worker id when rows grid rows are split
// among workers.
func Assign(id, workers, rows int) Assignment {
	return Assignment{
		Rows:            SpanOf(id, workers, rows),
		OwnsTrailingRow: workers > 0 && id == workers-1,
	}
}
