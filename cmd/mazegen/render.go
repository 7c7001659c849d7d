package main

import (
	"strings"

	"github.com/katalvlaran/lvmaze/gridgraph"
	"github.com/katalvlaran/lvmaze/maze"
)

// overlay lists the cells to highlight.
type overlay struct {
	visited []gridgraph.Vertex
	path    []gridgraph.Vertex
}

// marks resolves the glyph of every highlighted cell. Later layers win:
// visited, then path, then start and goal.
func (ov overlay) marks(m *maze.Maze) map[int]byte {
	out := make(map[int]byte, len(ov.visited)+len(ov.path)+2)
	for _, v := range ov.visited {
		out[v.ID] = '.'
	}
	for _, v := range ov.path {
		out[v.ID] = '*'
	}
	if s, ok := m.Start(); ok {
		out[s.ID] = 'S'
	}
	if g, ok := m.Goal(); ok {
		out[g.ID] = 'G'
	}

	return out
}

// render draws the maze with "+---+" corners, "|" right walls and "---"
// down walls, reading only the wall queries.
func render(m *maze.Maze, ov overlay) string {
	marks := ov.marks(m)
	var sb strings.Builder

	sb.WriteString(strings.Repeat("+---", m.Width()))
	sb.WriteString("+\n")
	for y := 0; y < m.Length(); y++ {
		sb.WriteByte('|')
		for x := 0; x < m.Width(); x++ {
			glyph, ok := marks[y*m.Width()+x]
			if !ok {
				glyph = ' '
			}
			sb.WriteByte(' ')
			sb.WriteByte(glyph)
			sb.WriteByte(' ')
			if m.HasRightWall(x, y) {
				sb.WriteByte('|')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')

		for x := 0; x < m.Width(); x++ {
			sb.WriteByte('+')
			if m.HasDownWall(x, y) {
				sb.WriteString("---")
			} else {
				sb.WriteString("   ")
			}
		}
		sb.WriteString("+\n")
	}

	return sb.String()
}
