package mines

import (
	"fmt"
	"strings"
)

const (
	DifficultyEasy = iota + 1
	DifficultyMedium
	DifficultyHard
)

type GameParams struct {
	Width, Height, Difficulty int
}

func (p GameParams) Validate() error {
	if p.Width < 2 || p.Height < 2 {
		return fmt.Errorf(
			"%w: grid must be at least 2x2, got %dx%d",
			ErrInvalidConfiguration, p.Width, p.Height,
		)
	}
	if p.Difficulty < DifficultyEasy || p.Difficulty > DifficultyHard {
		return fmt.Errorf(
			"%w: difficulty must be 1, 2 or 3, got %d",
			ErrInvalidConfiguration, p.Difficulty,
		)
	}
	return nil
}

// MineCount derives the number of mines from the difficulty tier:
// 10%, 15% or 20% of the grid area (truncated), with a floor of
// 1, 2 or 3 mines respectively.
func (p GameParams) MineCount() int {
	var (
		total = p.Width * p.Height
		count int
	)
	switch p.Difficulty {
	case DifficultyEasy:
		count = max(1, total/10)
	case DifficultyMedium:
		count = max(2, total*15/100)
	case DifficultyHard:
		count = max(3, total/5)
	}
	return count
}

func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.Difficulty)
}

func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Width, &p.Height, &p.Difficulty)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (sseed = "%s", n = %d, err = %w)`,
			sseed, n, err,
		)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
