package mines

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
)

var Log *slog.Logger = slog.Default()

// Coordinate addresses a single cell, 0-indexed from the top-left corner.
type Coordinate struct {
	Row, Col int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

type Cell struct {
	Mine     bool
	Adjacent int // mined neighbors among the up to 8 surrounding cells
	Open     bool
}

type Board struct {
	Width, Height int
	MineCount     int
	Cells         []Cell // row-major, Cells[row*Width+col]
	Hinted        map[Coordinate]bool
}

// NewBoard allocates a Width x Height grid, places MineCount mines
// uniformly without replacement and computes adjacency counts. The mine
// layout is fixed for the lifetime of the board.
func NewBoard(params GameParams, r *rand.Rand) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	b := &Board{
		Width:     params.Width,
		Height:    params.Height,
		MineCount: params.MineCount(),
		Cells:     make([]Cell, params.Width*params.Height),
		Hinted:    make(map[Coordinate]bool),
	}
	for _, i := range r.Perm(len(b.Cells))[:b.MineCount] {
		b.Cells[i].Mine = true
	}
	b.countAdjacent()
	return b, nil
}

func (b *Board) index(c Coordinate) int {
	return c.Row*b.Width + c.Col
}

func (b *Board) InBounds(c Coordinate) bool {
	return 0 <= c.Row && c.Row < b.Height && 0 <= c.Col && c.Col < b.Width
}

func (b *Board) At(c Coordinate) Cell {
	return b.Cells[b.index(c)]
}

// Neighbors lists the valid cells of the clamped 3x3 neighborhood around
// c, excluding c itself, in row-then-column order.
func (b *Board) Neighbors(c Coordinate) []Coordinate {
	ns := make([]Coordinate, 0, 8)
	for row := max(0, c.Row-1); row <= min(b.Height-1, c.Row+1); row++ {
		for col := max(0, c.Col-1); col <= min(b.Width-1, c.Col+1); col++ {
			if row == c.Row && col == c.Col {
				continue
			}
			ns = append(ns, Coordinate{row, col})
		}
	}
	return ns
}

func (b *Board) countAdjacent() {
	for row := range b.Height {
		for col := range b.Width {
			c := Coordinate{row, col}
			if b.Cells[b.index(c)].Mine {
				continue
			}
			n := 0
			for _, nb := range b.Neighbors(c) {
				if b.Cells[b.index(nb)].Mine {
					n++
				}
			}
			b.Cells[b.index(c)].Adjacent = n
		}
	}
}

// Reveal opens a single cell and reports whether it was mined. There is
// no flood fill: one call opens exactly one cell.
func (b *Board) Reveal(c Coordinate) (bool, error) {
	if !b.InBounds(c) {
		return false, fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	cell := &b.Cells[b.index(c)]
	if cell.Open {
		return false, fmt.Errorf("%w: %s", ErrAlreadyRevealed, c)
	}
	cell.Open = true
	return cell.Mine, nil
}

func (b *Board) HasUnrevealedSafeCells() bool {
	for _, cell := range b.Cells {
		if !cell.Open && !cell.Mine {
			return true
		}
	}
	return false
}

// RevealAll opens every cell, mines included. Used for the post-game
// disclosure after a loss or forfeit.
func (b *Board) RevealAll() {
	for i := range b.Cells {
		b.Cells[i].Open = true
	}
}
