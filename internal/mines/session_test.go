package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession(t *testing.T, width, height int, mines ...Coordinate) *Session {
	t.Helper()
	return &Session{
		Board:      testBoard(t, width, height, mines...),
		GameParams: GameParams{Width: width, Height: height, Difficulty: 1},
	}
}

func TestSessionLoss(t *testing.T) {
	s := testSession(t, 3, 3, Coordinate{1, 1})

	res, err := s.Reveal(Coordinate{0, 0})
	require.NoError(t, err)
	assert.False(t, res.HitMine)
	assert.Equal(t, StatusInProgress, res.Status)

	res, err = s.Reveal(Coordinate{1, 1})
	require.NoError(t, err)
	assert.True(t, res.HitMine)
	assert.Equal(t, StatusLost, res.Status)
	assert.True(t, s.Over())

	_, err = s.Reveal(Coordinate{2, 2})
	assert.ErrorIs(t, err, ErrGameOver)
	_, err = s.Hint()
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestSessionWin(t *testing.T) {
	s := testSession(t, 2, 2, Coordinate{0, 1})

	for i, c := range []Coordinate{{0, 0}, {1, 0}, {1, 1}} {
		res, err := s.Reveal(c)
		require.NoError(t, err)
		require.False(t, res.HitMine)
		if i < 2 {
			assert.Equal(t, StatusInProgress, res.Status)
		}
		if res.Status == StatusWon {
			break
		}
	}

	assert.Equal(t, StatusWon, s.Status())
	assert.True(t, s.Won)
	assert.False(t, s.Dead)
}

// a 2x2 easy game has exactly one mine, so a win takes at most 3 reveals
func TestSmallestGameWinnable(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 20 {
		s, err := NewSession(GameParams{Width: 2, Height: 2, Difficulty: 1}, r)
		require.NoError(t, err)
		require.Equal(t, 1, s.Board.MineCount)

		reveals := 0
		for row := range 2 {
			for col := range 2 {
				c := Coordinate{row, col}
				if s.Board.At(c).Mine {
					continue
				}
				res, err := s.Reveal(c)
				require.NoError(t, err)
				require.False(t, res.HitMine)
				reveals++
			}
		}
		assert.LessOrEqual(t, reveals, 3)
		assert.Equal(t, StatusWon, s.Status())
	}
}

func TestSessionRevealErrorsKeepStateMachine(t *testing.T) {
	s := testSession(t, 3, 3, Coordinate{1, 1})

	_, err := s.Reveal(Coordinate{5, 5})
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.Equal(t, StatusInProgress, s.Status())

	_, err = s.Reveal(Coordinate{0, 0})
	require.NoError(t, err)
	_, err = s.Reveal(Coordinate{0, 0})
	assert.ErrorIs(t, err, ErrAlreadyRevealed)
	assert.Equal(t, StatusInProgress, s.Status())
}

func TestSessionHintDelegates(t *testing.T) {
	s := testSession(t, 3, 3, Coordinate{2, 2})

	c, err := s.Hint()
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, Coordinate{0, 0}, *c)
	assert.True(t, s.Board.Hinted[*c])

	// a session without fully safe cells yields no hint and no error
	s = testSession(t, 2, 2, Coordinate{0, 0})
	c, err = s.Hint()
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestForfeit(t *testing.T) {
	s := testSession(t, 3, 3, Coordinate{1, 1})

	require.NoError(t, s.Forfeit())
	assert.Equal(t, StatusLost, s.Status())
	for _, cell := range s.Board.Cells {
		assert.True(t, cell.Open)
	}

	assert.ErrorIs(t, s.Forfeit(), ErrGameOver)
}

func TestSessionGobRoundTrip(t *testing.T) {
	s := testSession(t, 3, 3, Coordinate{2, 2})
	_, err := s.Reveal(Coordinate{1, 1})
	require.NoError(t, err)
	_, err = s.Hint()
	require.NoError(t, err)

	buf, err := s.Bytes()
	require.NoError(t, err)

	decoded, err := DecodeSession(buf)
	require.NoError(t, err)
	assert.Equal(t, s.GameParams, decoded.GameParams)
	assert.Equal(t, s.Board.Cells, decoded.Board.Cells)
	assert.Equal(t, s.Board.Hinted, decoded.Board.Hinted)
	assert.Equal(t, s.Status(), decoded.Status())
}
