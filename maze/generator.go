package maze

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sort"

	"github.com/bt4R9/TD/grid"
)

// chamber is an inclusive rectangle of interior cells still to be divided.
// minRow and minCol are always odd.
type chamber struct {
	minRow, maxRow int
	minCol, maxCol int
}

// carver holds the state of a single Generate call.
type carver struct {
	grid   *grid.Grid
	rand   *rand.Rand
	onWall func(Wall)
	walls  int
}

// Generate builds a size×size maze by recursive division.
// Returns ErrInvalidDimension for sizes outside [MinSize, MaxSize] before
// allocating anything, ErrOptionViolation for bad options and
// ErrTooManyEntrances when WithEntrances asks for more openings than the
// bottom row offers.
func Generate(size int, opts ...Option) (*Maze, error) {
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("%w: size %d not in [%d, %d]", ErrInvalidDimension, size, MinSize, MaxSize)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if slots := EntranceSlots(size); o.Entrances > slots {
		return nil, fmt.Errorf("%w: %d requested, %d available at size %d", ErrTooManyEntrances, o.Entrances, slots, size)
	}

	r := o.Rand
	if r == nil {
		r = rand.New(rand.NewSource(o.Seed))
	}
	g, err := grid.New(size, size)
	if err != nil {
		return nil, err
	}

	c := &carver{grid: g, rand: r, onWall: o.OnWall}
	c.outerWalls()
	entrances := c.openEntrances(o.Entrances)
	c.divide(Horizontal, chamber{minRow: 1, maxRow: size - 2, minCol: 1, maxCol: size - 2}, 0)

	o.Logger.Debug("maze generated",
		slog.Int("size", size),
		slog.Int64("seed", o.Seed),
		slog.Int("entrances", len(entrances)),
		slog.Int("walls", c.walls),
		slog.Int("open", g.OpenCount()),
	)

	return &Maze{
		Grid:      g,
		Entrance:  entrances[0],
		Entrances: entrances,
		Seed:      o.Seed,
	}, nil
}

// EntranceSlots returns how many entrances a maze of the given size can hold:
// the odd columns of [1, size-2].
func EntranceSlots(size int) int {
	if size < MinSize {
		return 0
	}
	return (size - 1) / 2
}

// outerWalls blocks every cell of the first and last row and column.
func (c *carver) outerWalls() {
	n := c.grid.Height()
	for i := 0; i < n; i++ {
		c.block(0, i)
		c.block(n-1, i)
		c.block(i, 0)
		c.block(i, n-1)
	}
}

// openEntrances opens k distinct odd columns of the bottom row and returns
// them sorted left to right.
func (c *carver) openEntrances(k int) []grid.Coord {
	n := c.grid.Height()
	picks := c.rand.Perm(EntranceSlots(n))[:k]
	sort.Ints(picks)

	out := make([]grid.Coord, 0, k)
	for _, p := range picks {
		e := grid.Pos(n-1, 2*p+1)
		_ = c.grid.Set(e, grid.Open)
		out = append(out, e)
	}
	return out
}

// divide carves one wall across ch along o and recurses into both halves
// with the orientation flipped. A chamber narrower than 2 cells along the
// wall axis is left open.
func (c *carver) divide(o Orientation, ch chamber, depth int) {
	switch o {
	case Horizontal:
		if ch.maxRow-ch.minRow < 2 {
			return
		}
		y := ch.minRow + 1 + 2*c.rand.Intn((ch.maxRow-ch.minRow)/2)
		hole := ch.minCol + 2*c.rand.Intn((ch.maxCol-ch.minCol)/2+1)
		for x := ch.minCol; x <= ch.maxCol; x++ {
			if x != hole {
				c.block(y, x)
			}
		}
		c.emit(Wall{Orientation: o, At: y, From: ch.minCol, To: ch.maxCol, Hole: grid.Pos(y, hole), Depth: depth})

		c.divide(Vertical, chamber{minRow: ch.minRow, maxRow: y - 1, minCol: ch.minCol, maxCol: ch.maxCol}, depth+1)
		c.divide(Vertical, chamber{minRow: y + 1, maxRow: ch.maxRow, minCol: ch.minCol, maxCol: ch.maxCol}, depth+1)

	case Vertical:
		if ch.maxCol-ch.minCol < 2 {
			return
		}
		x := ch.minCol + 1 + 2*c.rand.Intn((ch.maxCol-ch.minCol)/2)
		hole := ch.minRow + 2*c.rand.Intn((ch.maxRow-ch.minRow)/2+1)
		for y := ch.minRow; y <= ch.maxRow; y++ {
			if y != hole {
				c.block(y, x)
			}
		}
		c.emit(Wall{Orientation: o, At: x, From: ch.minRow, To: ch.maxRow, Hole: grid.Pos(hole, x), Depth: depth})

		c.divide(Horizontal, chamber{minRow: ch.minRow, maxRow: ch.maxRow, minCol: ch.minCol, maxCol: x - 1}, depth+1)
		c.divide(Horizontal, chamber{minRow: ch.minRow, maxRow: ch.maxRow, minCol: x + 1, maxCol: ch.maxCol}, depth+1)
	}
}

func (c *carver) emit(w Wall) {
	c.walls++
	c.onWall(w)
}

func (c *carver) block(row, col int) {
	_ = c.grid.Set(grid.Pos(row, col), grid.Blocked)
}
