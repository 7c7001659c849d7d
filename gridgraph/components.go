package gridgraph

// ConnectedComponents groups the cells reachable from one another through
// the given open passages. Edges whose endpoints are not adjacent cells of
// this grid are ignored. Each component is a slice of vertex IDs in BFS
// discovery order; components are ordered by their smallest ID.
//
// Time:   O(L·W + E).
// Memory: O(L·W + E) for visited flags, the passage set and output.
func (g *Grid) ConnectedComponents(open []Edge) [][]int {
	total := g.Len()
	passage := make(map[[2]int]struct{}, len(open))
	for _, e := range open {
		if !g.Contains(e.A) || !g.Contains(e.B) || !g.Adjacent(e.A, e.B) {
			continue
		}
		passage[pairKey(e.A.ID, e.B.ID)] = struct{}{}
	}

	seen := make([]bool, total)
	var comps [][]int
	for i0 := 0; i0 < total; i0++ {
		if seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		var comp []int
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			ux, uy := g.Coordinate(u)
			for _, d := range g.neighborOffsets {
				vx, vy := ux+d[0], uy+d[1]
				if !g.InBounds(vx, vy) {
					continue
				}
				vi := g.index(vx, vy)
				if _, ok := passage[pairKey(u, vi)]; !ok || seen[vi] {
					continue
				}
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// pairKey normalises an unordered ID pair.
func pairKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}

	return [2]int{a, b}
}
