package maze_test

import (
	"testing"

	"github.com/katalvlaran/lvmaze/maze"
)

// BenchmarkGenerate measures full regeneration of a 50×50 maze.
func BenchmarkGenerate(b *testing.B) {
	m := maze.New(maze.WithSeed(42))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Generate(50, 50, nil)
	}
}

// BenchmarkHasRightWall measures a full wall sweep, as a renderer would per frame.
func BenchmarkHasRightWall(b *testing.B) {
	m, err := maze.Build(50, 50, maze.WithSeed(42))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for y := 0; y < 50; y++ {
			for x := 0; x < 50; x++ {
				_ = m.HasRightWall(x, y)
				_ = m.HasDownWall(x, y)
			}
		}
	}
}
