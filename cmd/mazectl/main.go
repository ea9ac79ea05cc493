// mazectl generates, solves and verifies recursive-division mazes.
//
// Usage:
//
//	mazectl generate [--size=21] [--seed=N] [--entrances=1] [--format=text|yaml] [--out=<path>] [--trace]
//	mazectl solve    [--grid=<maze.yaml> | --size=N --seed=N] [--from=r,c] [--to=r,c]
//	mazectl verify   [--count=100] [--size=21] [--seed=N] [--parallel=4]
//	mazectl version
//
// Settings come from --config (YAML), .env and MAZE_* variables; explicit
// flags win.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
