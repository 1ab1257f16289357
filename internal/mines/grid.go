package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type CellState int8

const (
	Hidden       CellState = -2
	ExplodedMine CellState = 65
	// 0-8 for an open cell with the given number of mined neighbors
)

func (s CellState) String() string {
	switch {
	case s == Hidden:
		return " "
	case s == ExplodedMine:
		return "X"
	case 0 <= s && s <= 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

// Grid is the render-oriented view of a board: what a player is allowed
// to see, one state per cell in row-major order.
type Grid []CellState

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for row := range len(g) / width {
		for col := range width {
			i := row*width + col
			if i >= len(g) {
				break
			}
			fmt.Fprint(&b, g[i].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}

func (b *Board) Render() Grid {
	g := make(Grid, len(b.Cells))
	for i, cell := range b.Cells {
		switch {
		case !cell.Open:
			g[i] = Hidden
		case cell.Mine:
			g[i] = ExplodedMine
		default:
			g[i] = CellState(cell.Adjacent)
		}
	}
	return g
}
