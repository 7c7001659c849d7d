package maze

// CanTraverse reports whether cells (x1,y1) and (x2,y2) are joined by a
// spanning-tree edge. Out-of-bounds or non-adjacent cells are never joined.
func (m *Maze) CanTraverse(x1, y1, x2, y2 int) bool {
	if m.st == nil {
		return false
	}
	u, ok := m.st.grid.VertexAt(x1, y1)
	if !ok {
		return false
	}
	v, ok := m.st.grid.VertexAt(x2, y2)
	if !ok {
		return false
	}
	_, open := m.st.passages[pairKey(u.ID, v.ID)]

	return open
}

// HasRightWall reports whether a wall separates (x,y) from (x+1,y). The
// right border of the grid is always a wall.
func (m *Maze) HasRightWall(x, y int) bool {
	return !m.CanTraverse(x, y, x+1, y)
}

// HasDownWall reports whether a wall separates (x,y) from (x,y+1). The
// bottom border of the grid is always a wall.
func (m *Maze) HasDownWall(x, y int) bool {
	return !m.CanTraverse(x, y, x, y+1)
}
