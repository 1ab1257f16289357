package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/akoreshkov/minehint-server/internal/mines"
)

type LeaderboardEntry struct {
	GameSessionID string  `json:"game_session_id"`
	Username      *string `json:"username"`
	Width         int     `json:"width"`
	Height        int     `json:"height"`
	Difficulty    int     `json:"difficulty"`
	HintsUsed     int     `json:"hints_used"`
	PlaytimeMs    float64 `json:"playtime_ms"`
}

type LeaderboardFilter struct {
	Username   *string
	GameParams *mines.GameParams
}

func (f LeaderboardFilter) whereClause() (string, pgx.NamedArgs) {
	clauses := []string{"won", "ended_at IS NOT NULL"}
	args := pgx.NamedArgs{}
	if f.Username != nil {
		clauses = append(clauses, "username = @username")
		args["username"] = *f.Username
	}
	if f.GameParams != nil {
		clauses = append(
			clauses,
			"width = @width",
			"height = @height",
			"difficulty = @difficulty",
		)
		args["width"] = f.GameParams.Width
		args["height"] = f.GameParams.Height
		args["difficulty"] = f.GameParams.Difficulty
	}
	return strings.Join(clauses, " AND "), args
}

// Leaderboard lists completed wins ordered by playtime, fewest hints
// breaking ties.
func (q Queries) Leaderboard(
	ctx context.Context, filter LeaderboardFilter,
) ([]LeaderboardEntry, error) {
	whereClause, args := filter.whereClause()
	rows, _ := q.db.Query(
		ctx,
		`SELECT
			gs.game_session_id::text AS game_session_id,
			p.username,
			gs.width,
			gs.height,
			gs.difficulty,
			gs.hints_used,
			extract(epoch FROM (gs.ended_at - gs.started_at)) * 1000 AS playtime_ms
		FROM game_session gs
		LEFT JOIN player p USING (player_id)
		WHERE `+whereClause+`
		ORDER BY playtime_ms ASC, gs.hints_used ASC
		LIMIT 50;`,
		args,
	)
	return pgx.CollectRows(rows, pgx.RowToStructByName[LeaderboardEntry])
}
