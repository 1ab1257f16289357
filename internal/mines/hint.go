package mines

import (
	"log/slog"

	"github.com/zyedidia/generic/mapset"
)

// Hint finds an unrevealed, unmined cell with no mined neighbors and
// returns it as a suggestion that is always safe to reveal. Coordinates
// already handed out are remembered and never suggested twice.
//
// Seeds are scanned in row-major order; from each candidate seed a
// depth-first search walks the 8-neighbor graph until a qualifying cell
// turns up. A failed search moves on to the next seed with a fresh
// visited set, matching the reference behavior of the search.
func (b *Board) Hint() (Coordinate, bool) {
	if b.Hinted == nil { // gob drops empty maps on decode
		b.Hinted = make(map[Coordinate]bool)
	}
	for row := range b.Height {
		for col := range b.Width {
			seed := Coordinate{row, col}
			if !b.hintable(seed) {
				continue
			}
			if found, ok := b.searchFullySafe(seed); ok {
				b.Hinted[found] = true
				Log.Debug("hint found",
					slog.Any("seed", seed), slog.Any("hint", found))
				return found, true
			}
		}
	}
	return Coordinate{}, false
}

func (b *Board) hintable(c Coordinate) bool {
	cell := b.At(c)
	return !b.Hinted[c] && !cell.Open && !cell.Mine
}

// searchFullySafe runs the depth-first traversal from seed. The stack is
// explicit so a large component cannot exhaust the call stack, but the
// visit order is exactly that of the recursive formulation: check the
// node first, then descend into its neighbors in row-then-column order.
func (b *Board) searchFullySafe(seed Coordinate) (Coordinate, bool) {
	visited := mapset.New[Coordinate]()
	stack := []Coordinate{seed}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited.Has(c) {
			continue
		}
		visited.Put(c)
		if b.hintable(c) && b.At(c).Adjacent == 0 {
			return c, true
		}
		ns := b.Neighbors(c)
		for i := len(ns) - 1; i >= 0; i-- {
			if !visited.Has(ns[i]) {
				stack = append(stack, ns[i])
			}
		}
	}
	return Coordinate{}, false
}
