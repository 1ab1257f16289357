package repository

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/akoreshkov/minehint-server/internal/mines"
)

type GameSession struct {
	GameSessionID int64
	PlayerID      *int64
	Width         int
	Height        int
	Difficulty    int
	MineCount     int
	Dead          bool
	Won           bool
	HintsUsed     int
	State         []byte
	StartedAt     time.Time
	EndedAt       *time.Time
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

func (s GameSession) Session() (*mines.Session, error) {
	return mines.DecodeSession(s.State)
}

type CreateGameSessionParams struct {
	PlayerID *int64
}

func (q Queries) CreateGameSession(
	ctx context.Context, sess *mines.Session, params CreateGameSessionParams,
) (*GameSession, error) {
	state, err := sess.Bytes()
	if err != nil {
		return nil, err
	}

	args := pgx.NamedArgs{
		"width":      sess.Width,
		"height":     sess.Height,
		"difficulty": sess.Difficulty,
		"mine_count": sess.Board.MineCount,
		"dead":       sess.Dead,
		"won":        sess.Won,
		"state":      state,
	}
	if params.PlayerID != nil {
		args["player_id"] = *params.PlayerID
	}

	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO game_session (
			player_id, width, height, difficulty, mine_count, dead, won, state
		)
		VALUES (
			@player_id, @width, @height, @difficulty, @mine_count, @dead, @won, @state
		)
		RETURNING *;`,
		args,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}

func (q Queries) FetchGameSession(ctx context.Context, gameSessionID int64) (*GameSession, error) {
	rows, _ := q.db.Query(
		ctx,
		"SELECT * FROM game_session WHERE game_session_id = $1",
		gameSessionID,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}

type UpdateGameSessionParams struct {
	Dead      *bool
	Won       *bool
	HintsUsed *int
	EndedAt   *time.Time
	State     *[]byte
}

func (p UpdateGameSessionParams) setClause() (string, pgx.NamedArgs) {
	parts := make([]string, 0)
	args := pgx.NamedArgs{}

	if p.Dead != nil {
		parts = append(parts, "dead = @dead")
		args["dead"] = *p.Dead
	}
	if p.Won != nil {
		parts = append(parts, "won = @won")
		args["won"] = *p.Won
	}
	if p.HintsUsed != nil {
		parts = append(parts, "hints_used = @hints_used")
		args["hints_used"] = *p.HintsUsed
	}
	if p.EndedAt != nil {
		parts = append(parts, "ended_at = @ended_at")
		args["ended_at"] = *p.EndedAt
	}
	if p.State != nil {
		parts = append(parts, "state = @state")
		args["state"] = *p.State
	}

	return strings.Join(parts, ", "), args
}

func (q Queries) UpdateGameSession(
	ctx context.Context, gameSessionID int64, params UpdateGameSessionParams,
) (*GameSession, error) {
	setClause, args := params.setClause()
	args["game_session_id"] = gameSessionID

	rows, _ := q.db.Query(
		ctx,
		`UPDATE game_session
		SET `+setClause+`, updated_at = now()
		WHERE game_session_id = @game_session_id
		RETURNING *;`,
		args,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}
