package march

// Point is a location inside a unit cell: (0,0) is the top-left corner and
// (1,1) the bottom-right corner.
type Point struct {
	X, Y float64
}

// Edge midpoints of the unit cell.
var (
	Top    = Point{0.5, 0}
	Right  = Point{1, 0.5}
	Bottom = Point{0.5, 1}
	Left   = Point{0, 0.5}
)

// Segment is a straight contour piece between two edge midpoints.
type Segment struct {
	A, B Point
}

// segmentTable lists, per configuration, the segments that separate dark
// corners from light ones. Saddles (5 and 10) cut off each dark corner.
var segmentTable = [16][]Segment{
	0:  nil,
	1:  {{Left, Bottom}},
	2:  {{Bottom, Right}},
	3:  {{Left, Right}},
	4:  {{Top, Right}},
	5:  {{Top, Right}, {Left, Bottom}},
	6:  {{Top, Bottom}},
	7:  {{Left, Top}},
	8:  {{Left, Top}},
	9:  {{Top, Bottom}},
	10: {{Left, Top}, {Bottom, Right}},
	11: {{Top, Right}},
	12: {{Left, Right}},
	13: {{Bottom, Right}},
	14: {{Left, Bottom}},
	15: nil,
}

// Segments returns the contour segments of configuration k (0-15).
// The returned slice must not be modified.
func Segments(k uint8) []Segment {
	return segmentTable[k&0xF]
}
