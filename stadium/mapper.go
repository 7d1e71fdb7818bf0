package stadium

import "math"

// boundaryEpsilon counteracts floating-point jitter from intersection
// computations that land a hair below a cell boundary.
const boundaryEpsilon = 1e-5

// GridCoord converts a position in grid-local space (origin at the grid's
// min corner) into a discrete cell coordinate, clamped into [0, n-1] on
// both axes. Pure and deterministic.
func GridCoord(x, z float64, n int, cell float64) (int, int) {
	ix := int(math.Floor(x/cell + boundaryEpsilon))
	iz := int(math.Floor(z/cell + boundaryEpsilon))
	return clampIndex(ix, n), clampIndex(iz, n)
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// PixelPosition maps a cell coordinate to the top-left corner of the cell
// in top-left-origin pixel space, the canvas renderer's convention.
func PixelPosition(ix, iz int, cell float64) (float64, float64) {
	return float64(ix) * cell, float64(iz) * cell
}

// PlacementPosition maps a cell coordinate to the centre of the cell in a
// world whose origin sits at the middle of the grid, the arena renderer's
// convention.
func PlacementPosition(ix, iz, n int, cell float64) (float64, float64) {
	offset := (float64(n)*cell)/2 - cell/2
	px := float64(ix)*cell - offset
	pz := float64(iz)*cell - offset
	return px, pz
}

// WorldToGrid is the inverse of PlacementPosition's centring: it shifts a
// world position back into grid-local space and resolves the cell.
func WorldToGrid(wx, wz float64, n int, cell float64) (int, int) {
	half := (float64(n) * cell) / 2
	return GridCoord(wx+half, wz+half, n, cell)
}
