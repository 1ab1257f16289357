package handlers

import (
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akoreshkov/minehint-server/internal/config"
	"github.com/akoreshkov/minehint-server/internal/middleware"
	"github.com/akoreshkov/minehint-server/internal/mines"
	"github.com/akoreshkov/minehint-server/internal/repository"
)

type Game struct {
	logger *slog.Logger
	repo   *repository.Queries
	ws     *config.WebSocket
	rnd    *rand.Rand
}

func NewGame(
	logger *slog.Logger,
	db *pgxpool.Pool,
	ws *config.WebSocket,
	rnd *rand.Rand,
) *Game {
	return &Game{
		logger: logger,
		repo:   repository.New(db),
		ws:     ws,
		rnd:    rnd,
	}
}

func (g Game) Create(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseCreateGameDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	sess, err := mines.NewSession(dto.GameParams(), g.rnd)
	if errors.Is(err, mines.ErrInvalidConfiguration) {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to create a new game", "error", err)
		return
	}

	params := repository.CreateGameSessionParams{}
	if claims, ok := middleware.PlayerClaims(r); ok {
		params.PlayerID = &claims.PlayerID
	}

	row, err := g.repo.CreateGameSession(r.Context(), sess, params)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to persist game session", "error", err)
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(row, sess))
}

func (g Game) Fetch(w http.ResponseWriter, r *http.Request) {
	row, sess, ok := g.loadSession(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, g.logger, NewGameSessionDTO(row, sess))
}

func (g Game) Reveal(w http.ResponseWriter, r *http.Request) {
	coord, err := ParseCoordinateDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	row, sess, ok := g.loadSession(w, r)
	if !ok {
		return
	}

	res, err := sess.Reveal(coord.Coordinate())
	if err != nil {
		w.WriteHeader(statusForGameError(err))
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	row, ok = g.saveSession(w, r, row, sess, nil)
	if !ok {
		return
	}

	sendJSONOrLog(w, g.logger, RevealDTO{
		GameSessionDTO: NewGameSessionDTO(row, sess),
		HitMine:        res.HitMine,
	})
}

func (g Game) Hint(w http.ResponseWriter, r *http.Request) {
	row, sess, ok := g.loadSession(w, r)
	if !ok {
		return
	}

	hint, err := sess.Hint()
	if err != nil {
		w.WriteHeader(statusForGameError(err))
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	if hint != nil {
		hintsUsed := row.HintsUsed + 1
		row, ok = g.saveSession(w, r, row, sess, &hintsUsed)
		if !ok {
			return
		}
	}

	sendJSONOrLog(w, g.logger, HintDTO{
		GameSessionDTO: NewGameSessionDTO(row, sess),
		Hint:           hint,
	})
}

func (g Game) Forfeit(w http.ResponseWriter, r *http.Request) {
	row, sess, ok := g.loadSession(w, r)
	if !ok {
		return
	}

	if err := sess.Forfeit(); err != nil {
		w.WriteHeader(statusForGameError(err))
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	row, ok = g.saveSession(w, r, row, sess, nil)
	if !ok {
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(row, sess))
}

func (g Game) Leaderboard(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repository.LeaderboardFilter{}

	if username := query.Get("username"); username != "" {
		filter.Username = &username
	}
	if seed := query.Get("seed"); seed != "" {
		params, err := mines.ParseSeed(seed)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			sendJSONOrLog(w, g.logger, wrapError(err))
			return
		}
		filter.GameParams = params
	}

	entries, err := g.repo.Leaderboard(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to fetch leaderboard", "error", err)
		return
	}

	sendJSONOrLog(w, g.logger, entries)
}

// loadSession fetches and decodes the game session addressed by the
// path; on failure it writes the response itself.
func (g Game) loadSession(
	w http.ResponseWriter, r *http.Request,
) (*repository.GameSession, *mines.Session, bool) {
	gameSessionID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, nil, false
	}

	row, err := g.repo.FetchGameSession(r.Context(), gameSessionID)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return nil, nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to fetch game session", "error", err)
		return nil, nil, false
	}

	sess, err := row.Session()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("db returned invalid game_session.state", "error", err)
		return nil, nil, false
	}

	return row, sess, true
}

func (g Game) saveSession(
	w http.ResponseWriter, r *http.Request,
	row *repository.GameSession, sess *mines.Session, hintsUsed *int,
) (*repository.GameSession, bool) {
	state, err := sess.Bytes()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to serialize game state", "error", err)
		return nil, false
	}

	dead, won := sess.Dead, sess.Won
	updated, err := g.repo.UpdateGameSession(
		r.Context(), row.GameSessionID, repository.UpdateGameSessionParams{
			Dead:      &dead,
			Won:       &won,
			HintsUsed: hintsUsed,
			EndedAt:   endedAtFor(sess),
			State:     &state,
		},
	)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to update game session", "error", err)
		return nil, false
	}

	return updated, true
}

func statusForGameError(err error) int {
	switch {
	case errors.Is(err, mines.ErrOutOfBounds),
		errors.Is(err, mines.ErrAlreadyRevealed):
		return http.StatusBadRequest
	case errors.Is(err, mines.ErrGameOver):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
