package mines

import (
	"bytes"
	"encoding/gob"
	"math/rand/v2"
)

type GameStatus int8

const (
	StatusInProgress GameStatus = iota
	StatusWon
	StatusLost
)

func (s GameStatus) String() string {
	switch s {
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "in progress"
	}
}

// Session drives one game over one board. A session becomes terminal
// when a mine is revealed (lost) or the last safe cell is revealed
// (won); no operation leaves a terminal state.
type Session struct {
	Board     *Board
	Dead, Won bool
	GameParams
}

func NewSession(params GameParams, r *rand.Rand) (*Session, error) {
	board, err := NewBoard(params, r)
	if err != nil {
		return nil, err
	}
	return &Session{Board: board, GameParams: params}, nil
}

func DecodeSession(buf []byte) (*Session, error) {
	var s Session
	if err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s Session) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *Session) Over() bool {
	return s.Dead || s.Won
}

func (s *Session) Status() GameStatus {
	switch {
	case s.Dead:
		return StatusLost
	case s.Won:
		return StatusWon
	default:
		return StatusInProgress
	}
}

type RevealResult struct {
	HitMine bool
	Status  GameStatus
}

// Reveal opens one cell and advances the state machine. Failed reveals
// (out of bounds, replayed cell, terminal session) leave every bit of
// state untouched.
func (s *Session) Reveal(c Coordinate) (RevealResult, error) {
	if s.Over() {
		return RevealResult{}, ErrGameOver
	}
	mine, err := s.Board.Reveal(c)
	if err != nil {
		return RevealResult{}, err
	}
	if mine {
		s.Dead = true
	} else if !s.Board.HasUnrevealedSafeCells() {
		s.Won = true
	}
	return RevealResult{HitMine: mine, Status: s.Status()}, nil
}

func (s *Session) Hint() (*Coordinate, error) {
	if s.Over() {
		return nil, ErrGameOver
	}
	c, ok := s.Board.Hint()
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// Forfeit ends a running game as a loss and discloses the full grid.
func (s *Session) Forfeit() error {
	if s.Over() {
		return ErrGameOver
	}
	s.Dead = true
	s.Board.RevealAll()
	return nil
}
