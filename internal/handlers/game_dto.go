package handlers

import (
	"strconv"
	"time"

	"github.com/gorilla/schema"

	"github.com/akoreshkov/minehint-server/internal/mines"
	"github.com/akoreshkov/minehint-server/internal/repository"
)

type CreateGameDTO struct {
	Width      int `schema:"width,required"`
	Height     int `schema:"height,required"`
	Difficulty int `schema:"difficulty,required"`
}

func ParseCreateGameDTO(src map[string][]string) (CreateGameDTO, error) {
	var dto CreateGameDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

func (dto CreateGameDTO) GameParams() mines.GameParams {
	return mines.GameParams(dto)
}

type CoordinateDTO struct {
	Row int `schema:"row,required"`
	Col int `schema:"col,required"`
}

func ParseCoordinateDTO(src map[string][]string) (CoordinateDTO, error) {
	var dto CoordinateDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

func (dto CoordinateDTO) Coordinate() mines.Coordinate {
	return mines.Coordinate(dto)
}

type GameSessionDTO struct {
	GameSessionID string     `json:"game_session_id"`
	Grid          mines.Grid `json:"grid"`
	Width         int        `json:"width"`
	Height        int        `json:"height"`
	Difficulty    int        `json:"difficulty"`
	MineCount     int        `json:"mine_count"`
	Status        string     `json:"status"`
	HintsUsed     int        `json:"hints_used"`
	StartedAt     int64      `json:"started_at"`
	EndedAt       *int64     `json:"ended_at,omitempty"`
}

// extra per-move fields piggybacking on the session DTO
type RevealDTO struct {
	GameSessionDTO
	HitMine bool `json:"hit_mine"`
}

type HintDTO struct {
	GameSessionDTO
	Hint *mines.Coordinate `json:"hint"`
}

func NewGameSessionDTO(row *repository.GameSession, sess *mines.Session) GameSessionDTO {
	var endedAt *int64
	if row.EndedAt != nil {
		ms := row.EndedAt.UnixMilli()
		endedAt = &ms
	}
	return GameSessionDTO{
		GameSessionID: strconv.FormatInt(row.GameSessionID, 10),
		Grid:          sess.Board.Render(),
		Width:         sess.Width,
		Height:        sess.Height,
		Difficulty:    sess.Difficulty,
		MineCount:     sess.Board.MineCount,
		Status:        sess.Status().String(),
		HintsUsed:     row.HintsUsed,
		StartedAt:     row.StartedAt.UnixMilli(),
		EndedAt:       endedAt,
	}
}

func endedAtFor(sess *mines.Session) *time.Time {
	if !sess.Over() {
		return nil
	}
	now := time.Now().UTC()
	return &now
}
