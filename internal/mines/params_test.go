package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		params GameParams
		ok     bool
	}{
		{"2x2 easy", GameParams{2, 2, 1}, true},
		{"30x16 hard", GameParams{30, 16, 3}, true},
		{"width too small", GameParams{1, 5, 1}, false},
		{"height too small", GameParams{5, 1, 1}, false},
		{"zero difficulty", GameParams{5, 5, 0}, false},
		{"difficulty too high", GameParams{5, 5, 4}, false},
		{"negative dimensions", GameParams{-3, -3, 2}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.params.Validate()
			if test.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfiguration)
			}
		})
	}
}

func TestMineCount(t *testing.T) {
	tests := []struct {
		name   string
		params GameParams
		want   int
	}{
		{"easy floor", GameParams{2, 2, 1}, 1},
		{"medium floor", GameParams{3, 3, 2}, 2},
		{"hard floor", GameParams{2, 2, 3}, 3},
		{"easy 10x10", GameParams{10, 10, 1}, 10},
		{"medium 10x10", GameParams{10, 10, 2}, 15},
		{"hard 10x10", GameParams{10, 10, 3}, 20},
		{"easy truncates", GameParams{5, 5, 1}, 2},
		{"medium truncates", GameParams{5, 5, 2}, 3},
		{"hard truncates", GameParams{7, 7, 3}, 9},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, test.params.MineCount())
		})
	}
}

func TestParseSeed(t *testing.T) {
	params := GameParams{Width: 16, Height: 9, Difficulty: 2}
	parsed, err := ParseSeed(params.Seed())
	assert.NoError(t, err)
	assert.Equal(t, params, *parsed)

	_, err = ParseSeed("16:9")
	assert.Error(t, err)

	_, err = ParseSeed("1:1:1")
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}
