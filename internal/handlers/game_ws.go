package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/akoreshkov/minehint-server/internal/mines"
	"github.com/akoreshkov/minehint-server/internal/repository"
)

var errUnknownCommand = fmt.Errorf("unknown command")

// executeCommand applies one text command to a session. Supported:
//
//	reveal <row> <col>
//	hint
//	forfeit
func executeCommand(sess *mines.Session, command string) (any, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, errUnknownCommand
	}
	switch fields[0] {
	case "reveal":
		if len(fields) != 3 {
			return nil, fmt.Errorf("reveal wants a row and a column")
		}
		row, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("bad row: %w", err)
		}
		col, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("bad column: %w", err)
		}
		return sess.Reveal(mines.Coordinate{Row: row, Col: col})
	case "hint":
		return sess.Hint()
	case "forfeit":
		return nil, sess.Forfeit()
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownCommand, fields[0])
	}
}

// ConnectWS serves a live game over a websocket: each text frame is a
// command, each reply is the refreshed session DTO.
func (g Game) ConnectWS(w http.ResponseWriter, r *http.Request) {
	row, sess, ok := g.loadSession(w, r)
	if !ok {
		return
	}

	conn, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Error("unable to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	for {
		mt, message, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				g.logger.Warn("websocket read failed", "error", err)
			}
			return
		}
		if mt != websocket.TextMessage {
			return
		}

		hintsUsed := row.HintsUsed
		result, err := executeCommand(sess, strings.TrimSpace(string(message)))
		if err != nil {
			if werr := conn.WriteJSON(wrapError(err)); werr != nil {
				g.logger.Error("websocket write failed", "error", werr)
				return
			}
			continue
		}
		if hint, ok := result.(*mines.Coordinate); ok && hint != nil {
			hintsUsed++
		}

		row, ok = g.saveSessionWS(r, row, sess, hintsUsed)
		if !ok {
			return
		}

		reply := map[string]any{
			"session": NewGameSessionDTO(row, sess),
		}
		if res, ok := result.(mines.RevealResult); ok {
			reply["hit_mine"] = res.HitMine
		}
		if hint, ok := result.(*mines.Coordinate); ok {
			reply["hint"] = hint
		}
		if err := conn.WriteJSON(reply); err != nil {
			g.logger.Error("websocket write failed", "error", err)
			return
		}
	}
}

func (g Game) saveSessionWS(
	r *http.Request,
	row *repository.GameSession, sess *mines.Session, hintsUsed int,
) (*repository.GameSession, bool) {
	state, err := sess.Bytes()
	if err != nil {
		g.logger.Error("unable to serialize game state", "error", err)
		return nil, false
	}

	dead, won := sess.Dead, sess.Won
	updated, err := g.repo.UpdateGameSession(
		r.Context(), row.GameSessionID, repository.UpdateGameSessionParams{
			Dead:      &dead,
			Won:       &won,
			HintsUsed: &hintsUsed,
			EndedAt:   endedAtFor(sess),
			State:     &state,
		},
	)
	if err != nil {
		g.logger.Error("unable to update game session", "error", err)
		return nil, false
	}

	return updated, true
}
