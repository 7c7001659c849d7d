package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/gridgraph"
	"github.com/katalvlaran/lvmaze/maze"
)

// fixed2x2 is the layout S→(0,1)→G with (1,0) a dead end.
func fixed2x2(t *testing.T) *maze.Maze {
	t.Helper()
	g, err := gridgraph.NewGrid(2, 2)
	require.NoError(t, err)
	v := g.Vertices()
	m, err := maze.FromSpanningTree(2, 2, []gridgraph.Edge{
		{A: v[0], B: v[1]},
		{A: v[0], B: v[2]},
		{A: v[2], B: v[3]},
	})
	require.NoError(t, err)

	return m
}

func TestRender_Walls(t *testing.T) {
	want := "" +
		"+---+---+\n" +
		"| S     |\n" +
		"+   +---+\n" +
		"|     G |\n" +
		"+---+---+\n"
	assert.Equal(t, want, render(fixed2x2(t), overlay{}))
}

func TestRender_PathAndTrail(t *testing.T) {
	m := fixed2x2(t)
	order, path, err := m.BreadthFirst()
	require.NoError(t, err)

	want := "" +
		"+---+---+\n" +
		"| S   . |\n" +
		"+   +---+\n" +
		"| *   G |\n" +
		"+---+---+\n"
	assert.Equal(t, want, render(m, overlay{visited: order, path: path}))
}

func TestRender_Empty(t *testing.T) {
	assert.Equal(t, "+\n", render(maze.New(), overlay{}))
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{"-l", "3", "--width=4", "-s", "9", "-S", "bfs", "--trail", "--dedup", "--compress"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, config{length: 3, width: 4, seed: 9, solve: solveBFS, trail: true, dedup: true, compress: true}, cfg)

	cfg, err = parseFlags(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.length)
	assert.Equal(t, solveNone, cfg.solve)
}

func TestParseFlags_Rejects(t *testing.T) {
	cases := map[string][]string{
		"bad solve":   {"--solve", "astar"},
		"zero length": {"-l", "0"},
		"negative":    {"-w", "-2"},
		"positional":  {"extra"},
	}
	for name, args := range cases {
		_, err := parseFlags(args, io.Discard)
		assert.ErrorIs(t, err, errUsage, name)
	}

	_, err := parseFlags([]string{"--nope"}, io.Discard)
	assert.Error(t, err)

	_, err = parseFlags([]string{"-h"}, io.Discard)
	assert.ErrorIs(t, err, pflag.ErrHelp)
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	err := run(config{length: 4, width: 6, seed: 3, solve: solveDFS, trail: true}, &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 2*4+1+1)
	assert.Equal(t, "+---+---+---+---+---+---+", lines[0])
	assert.Contains(t, out.String(), "S")
	assert.Contains(t, out.String(), "G")
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "dfs: visited "), lines[len(lines)-1])

	// same seed, same picture
	var again bytes.Buffer
	require.NoError(t, run(config{length: 4, width: 6, seed: 3, solve: solveDFS, trail: true}, &again))
	assert.Equal(t, out.String(), again.String())
}

func TestRun_NoSolve(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(config{length: 1, width: 1}, &out))
	assert.Equal(t, "+---+\n| G |\n+---+\n", out.String())
}

// failingWriter accepts a fixed number of writes and then fails.
type failingWriter struct {
	ok  int
	buf bytes.Buffer
}

var errDiskFull = errors.New("disk full")

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.ok == 0 {
		return 0, errDiskFull
	}
	w.ok--

	return w.buf.Write(p)
}

func TestRun_WriteErrors(t *testing.T) {
	cfg := config{length: 3, width: 3, seed: 5, solve: solveBFS}

	// maze write fails
	err := run(cfg, &failingWriter{})
	assert.ErrorIs(t, err, errDiskFull)

	// maze written, summary write fails
	w := &failingWriter{ok: 1}
	err = run(cfg, w)
	assert.ErrorIs(t, err, errDiskFull)
	assert.Contains(t, err.Error(), "summary")
	assert.True(t, strings.HasPrefix(w.buf.String(), "+---+---+---+\n"))

	// without a solve mode there is no summary to fail on
	require.NoError(t, run(config{length: 3, width: 3, seed: 5, solve: solveNone}, &failingWriter{ok: 1}))
}
