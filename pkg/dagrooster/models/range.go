package models

// MergeRange represents the bounds of a merged cell region.
type MergeRange struct {
	// R1 is the start row (0-based).
	R1 int `json:"r1"`
	// C1 is the start column (0-based).
	C1 int `json:"c1"`
	// R2 is the end row (0-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (0-based, inclusive).
	C2 int `json:"c2"`
}

// Contains reports whether the cell at (row, col) lies inside the range.
func (m MergeRange) Contains(row, col int) bool {
	return row >= m.R1 && row <= m.R2 && col >= m.C1 && col <= m.C2
}
