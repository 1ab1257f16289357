package handlers

import (
	"math/rand/v2"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akoreshkov/minehint-server/internal/mines"
)

func TestParseCreateGameDTO(t *testing.T) {
	query, err := url.ParseQuery("width=9&height=9&difficulty=2&extra=ignored")
	require.NoError(t, err)

	dto, err := ParseCreateGameDTO(query)
	require.NoError(t, err)
	assert.Equal(t, mines.GameParams{Width: 9, Height: 9, Difficulty: 2}, dto.GameParams())

	query, _ = url.ParseQuery("width=9&height=9")
	_, err = ParseCreateGameDTO(query)
	assert.Error(t, err)
}

func TestParseCoordinateDTO(t *testing.T) {
	query, err := url.ParseQuery("row=3&col=7")
	require.NoError(t, err)

	dto, err := ParseCoordinateDTO(query)
	require.NoError(t, err)
	assert.Equal(t, mines.Coordinate{Row: 3, Col: 7}, dto.Coordinate())

	query, _ = url.ParseQuery("row=3")
	_, err = ParseCoordinateDTO(query)
	assert.Error(t, err)
}

func TestExecuteCommand(t *testing.T) {
	sess, err := mines.NewSession(
		mines.GameParams{Width: 4, Height: 4, Difficulty: 1},
		rand.New(rand.NewPCG(1, 2)),
	)
	require.NoError(t, err)

	_, err = executeCommand(sess, "dance")
	assert.ErrorIs(t, err, errUnknownCommand)

	_, err = executeCommand(sess, "")
	assert.ErrorIs(t, err, errUnknownCommand)

	_, err = executeCommand(sess, "reveal 1")
	assert.Error(t, err)

	_, err = executeCommand(sess, "reveal 9 9")
	assert.ErrorIs(t, err, mines.ErrOutOfBounds)

	result, err := executeCommand(sess, "hint")
	require.NoError(t, err)
	if hint, ok := result.(*mines.Coordinate); ok && hint != nil {
		cell := sess.Board.At(*hint)
		assert.False(t, cell.Mine)
		assert.Equal(t, 0, cell.Adjacent)
	}
}
