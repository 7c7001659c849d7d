// Command mazegen generates a random perfect maze, prints it as ASCII art and
// optionally overlays a depth-first or breadth-first solution.
//
// Usage:
//
//	mazegen -l 12 -w 30 --seed 7 --solve bfs --trail
//
// Legend: S start, G goal, * path, . visited but off the path.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvmaze/maze"
)

// Solve modes accepted by --solve.
const (
	solveNone = "none"
	solveDFS  = "dfs"
	solveBFS  = "bfs"
)

// config is the parsed command line.
type config struct {
	length, width int
	seed          int64
	solve         string
	trail         bool
	dedup         bool
	compress      bool
}

// errUsage marks command-line problems (exit code 2).
var errUsage = errors.New("mazegen: usage")

func main() {
	log.SetFlags(0)
	log.SetPrefix("mazegen: ")

	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		log.Print(err)
		os.Exit(2)
	}
	if err = run(cfg, os.Stdout); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

// parseFlags reads args into a config. Usage text goes to errOut.
func parseFlags(args []string, errOut io.Writer) (config, error) {
	var cfg config
	fs := pflag.NewFlagSet("mazegen", pflag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.IntVarP(&cfg.length, "length", "l", 10, "number of rows")
	fs.IntVarP(&cfg.width, "width", "w", 10, "number of columns")
	fs.Int64VarP(&cfg.seed, "seed", "s", 0, "random seed (0 = default seed)")
	fs.StringVarP(&cfg.solve, "solve", "S", solveNone, "overlay a solution: none, dfs or bfs")
	fs.BoolVar(&cfg.trail, "trail", false, "also mark every cell the search visited")
	fs.BoolVar(&cfg.dedup, "dedup", false, "one candidate edge per neighbour pair")
	fs.BoolVar(&cfg.compress, "compress", false, "use path compression in union-find")
	fs.SortFlags = false

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("%w: unexpected arguments %v", errUsage, fs.Args())
	}
	switch cfg.solve {
	case solveNone, solveDFS, solveBFS:
	default:
		return cfg, fmt.Errorf("%w: --solve must be none, dfs or bfs, got %q", errUsage, cfg.solve)
	}
	if cfg.length <= 0 || cfg.width <= 0 {
		return cfg, fmt.Errorf("%w: --length and --width must be positive", errUsage)
	}

	return cfg, nil
}

// run generates the maze described by cfg and writes it to out.
func run(cfg config, out io.Writer) error {
	opts := []maze.Option{maze.WithSeed(cfg.seed)}
	if cfg.dedup {
		opts = append(opts, maze.WithDedupEdges())
	}
	if cfg.compress {
		opts = append(opts, maze.WithPathCompression())
	}
	m, err := maze.Build(cfg.length, cfg.width, opts...)
	if err != nil {
		return err
	}

	var (
		ov      overlay
		summary string
	)
	if cfg.solve != solveNone {
		search := m.DepthFirst
		if cfg.solve == solveBFS {
			search = m.BreadthFirst
		}
		order, path, err := search()
		if err != nil {
			return err
		}
		if cfg.trail {
			ov.visited = order
		}
		ov.path = path
		summary = fmt.Sprintf("%s: visited %d of %d cells, path length %d\n",
			cfg.solve, len(order), cfg.length*cfg.width, len(path))
	}

	if _, err = io.WriteString(out, render(m, ov)); err != nil {
		return fmt.Errorf("write maze: %w", err)
	}
	if summary == "" {
		return nil
	}
	if _, err = io.WriteString(out, summary); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	return nil
}
