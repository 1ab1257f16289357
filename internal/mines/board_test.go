package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testBoard builds a board with a fixed mine layout, bypassing random
// placement.
func testBoard(t *testing.T, width, height int, mines ...Coordinate) *Board {
	t.Helper()
	b := &Board{
		Width:     width,
		Height:    height,
		MineCount: len(mines),
		Cells:     make([]Cell, width*height),
		Hinted:    make(map[Coordinate]bool),
	}
	for _, m := range mines {
		require.True(t, b.InBounds(m))
		b.Cells[b.index(m)].Mine = true
	}
	b.countAdjacent()
	return b
}

func TestNewBoardPlacesExactMineCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params GameParams
	}{
		{"2x2 easy", GameParams{2, 2, 1}},
		{"9x9 easy", GameParams{9, 9, 1}},
		{"9x9 medium", GameParams{9, 9, 2}},
		{"16x16 hard", GameParams{16, 16, 3}},
		{"30x16 hard", GameParams{30, 16, 3}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			r := rand.New(rand.NewPCG(1, 2))
			for range 25 {
				b, err := NewBoard(test.params, r)
				require.NoError(t, err)

				mines := 0
				for _, cell := range b.Cells {
					if cell.Mine {
						mines++
					}
				}
				assert.Equal(t, test.params.MineCount(), mines)
				assert.Equal(t, b.MineCount, mines)
			}
		})
	}
}

func TestNewBoardRejectsBadParams(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for _, params := range []GameParams{
		{1, 2, 1}, {2, 1, 1}, {2, 2, 0}, {2, 2, 4},
	} {
		_, err := NewBoard(params, r)
		assert.ErrorIs(t, err, ErrInvalidConfiguration)
	}
}

func TestAdjacencyCounts(t *testing.T) {
	// mines in opposite corners of a 3x3 grid
	b := testBoard(t, 3, 3, Coordinate{0, 0}, Coordinate{2, 2})

	want := map[Coordinate]int{
		{0, 1}: 1, {0, 2}: 0,
		{1, 0}: 1, {1, 1}: 2, {1, 2}: 1,
		{2, 0}: 0, {2, 1}: 1,
	}
	for c, n := range want {
		assert.Equal(t, n, b.At(c).Adjacent, "cell %s", c)
	}
}

func TestAdjacencyEdgeClamping(t *testing.T) {
	// a corner mine touches only its 3 in-grid neighbors
	b := testBoard(t, 4, 4, Coordinate{0, 0})

	assert.Equal(t, 1, b.At(Coordinate{0, 1}).Adjacent)
	assert.Equal(t, 1, b.At(Coordinate{1, 0}).Adjacent)
	assert.Equal(t, 1, b.At(Coordinate{1, 1}).Adjacent)
	assert.Equal(t, 0, b.At(Coordinate{0, 2}).Adjacent)
	assert.Equal(t, 0, b.At(Coordinate{2, 2}).Adjacent)
	assert.Equal(t, 0, b.At(Coordinate{3, 3}).Adjacent)
}

func TestRevealErrors(t *testing.T) {
	b := testBoard(t, 3, 3, Coordinate{0, 0})

	for _, c := range []Coordinate{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		_, err := b.Reveal(c)
		assert.ErrorIs(t, err, ErrOutOfBounds)
	}

	mine, err := b.Reveal(Coordinate{1, 1})
	require.NoError(t, err)
	assert.False(t, mine)

	_, err = b.Reveal(Coordinate{1, 1})
	assert.ErrorIs(t, err, ErrAlreadyRevealed)

	// failures leave the grid untouched
	open := 0
	for _, cell := range b.Cells {
		if cell.Open {
			open++
		}
	}
	assert.Equal(t, 1, open)
}

func TestRevealMine(t *testing.T) {
	b := testBoard(t, 2, 2, Coordinate{0, 0})

	mine, err := b.Reveal(Coordinate{0, 0})
	require.NoError(t, err)
	assert.True(t, mine)
}

func TestHasUnrevealedSafeCells(t *testing.T) {
	b := testBoard(t, 2, 2, Coordinate{0, 0})

	assert.True(t, b.HasUnrevealedSafeCells())
	for _, c := range []Coordinate{{0, 1}, {1, 0}, {1, 1}} {
		_, err := b.Reveal(c)
		require.NoError(t, err)
	}
	assert.False(t, b.HasUnrevealedSafeCells())
}

func TestNeighborsOrder(t *testing.T) {
	b := testBoard(t, 3, 3)

	assert.Equal(t, []Coordinate{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 2},
		{2, 0}, {2, 1}, {2, 2},
	}, b.Neighbors(Coordinate{1, 1}))

	assert.Equal(t, []Coordinate{
		{0, 1}, {1, 0}, {1, 1},
	}, b.Neighbors(Coordinate{0, 0}))
}

func TestRenderGrid(t *testing.T) {
	b := testBoard(t, 2, 2, Coordinate{0, 0})
	_, err := b.Reveal(Coordinate{1, 1})
	require.NoError(t, err)

	g := b.Render()
	assert.Equal(t, Grid{Hidden, Hidden, Hidden, 1}, g)
	assert.Equal(t, "    \n  1 \n", g.ToString(2))

	_, err = b.Reveal(Coordinate{0, 0})
	require.NoError(t, err)
	assert.Equal(t, ExplodedMine, b.Render()[0])
}
