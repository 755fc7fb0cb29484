package vmath

// DistSq returns the squared euclidean distance between two grid points
func DistSq(x1, y1, x2, y2 int) int {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx + dy*dy
}
