package main

import (
	"hash/maphash"
	"io"
	"math/rand/v2"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/schema"
	"github.com/jackc/pgx/v5"

	"github.com/gridkit/sudoku-server/internal/sudoku"
)

var (
	dec = schema.NewDecoder()
	rnd = rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(),
		new(maphash.Hash).Sum64(),
	))
)

func init() {
	dec.IgnoreUnknownKeys(true)
}

type NewGameParams struct {
	Size   int `schema:"size,required"`
	Givens int `schema:"givens,required"`
}

type CellParams struct {
	Row    int `schema:"row,required"`
	Column int `schema:"col,required"`
}

type MoveParams struct {
	Row    int `schema:"row,required"`
	Column int `schema:"col,required"`
	Value  int `schema:"value,required"`
}

type CandidatesParams struct {
	Row    int    `schema:"row,required"`
	Column int    `schema:"col,required"`
	Values string `schema:"values"`
}

func handleNewGame(w http.ResponseWriter, r *http.Request) {
	var params NewGameParams
	if err := dec.Decode(&params, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	state, err := NewGameState(params.Size, params.Givens, rnd)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(err.Error()))
		return
	}
	var session *GameSession
	if claims, ok := r.Context().Value(ctxPlayerClaims).(*PlayerClaims); ok {
		log.Debug("creating session for player ", claims.Username)
		session, err = pg.CreatePlayerGameSession(r.Context(), claims.PlayerId, state)
		refreshPlayerCookies(w, *claims)
	} else {
		log.Debug("creating anonymous session")
		session, err = pg.CreateAnonymousGameSession(r.Context(), state)
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return
	}
	if _, err := sendJSON(w, session); err != nil {
		log.Error(err)
	}
}

func handleGetGame(w http.ResponseWriter, r *http.Request) {
	sessionId, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	session, err := pg.GetSession(r.Context(), sessionId)
	if err == pgx.ErrNoRows {
		w.WriteHeader(http.StatusNotFound)
		return
	} else if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return
	}
	if _, err := sendJSON(w, &session); err != nil {
		log.Error(err)
	}
}

func handleSetCell(w http.ResponseWriter, r *http.Request) {
	var params MoveParams
	if err := dec.Decode(&params, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	sessionId, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	session, err := pg.GetSession(r.Context(), sessionId)
	if err == pgx.ErrNoRows {
		w.WriteHeader(http.StatusNotFound)
		return
	} else if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return
	}
	if err := session.State.SetCell(
		params.Row, params.Column, sudoku.Symbol(params.Value),
	); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(err.Error()))
		return
	}
	if session.State.Completed() && session.EndedAt.IsZero() {
		session.EndedAt = time.Now().UTC()
	}
	if err := pg.UpdateGameSession(r.Context(), session); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return
	}
	if _, err := sendJSON(w, &session); err != nil {
		log.Error(err)
	}
}

func handleEraseCell(w http.ResponseWriter, r *http.Request) {
	var params CellParams
	if err := dec.Decode(&params, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	sessionId, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	session, err := pg.GetSession(r.Context(), sessionId)
	if err == pgx.ErrNoRows {
		w.WriteHeader(http.StatusNotFound)
		return
	} else if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return
	}
	if err := session.State.EraseCell(params.Row, params.Column); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(err.Error()))
		return
	}
	if err := pg.UpdateGameSession(r.Context(), session); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return
	}
	if _, err := sendJSON(w, &session); err != nil {
		log.Error(err)
	}
}

func handleEliminateCandidate(w http.ResponseWriter, r *http.Request) {
	var params MoveParams
	if err := dec.Decode(&params, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	sessionId, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	session, err := pg.GetSession(r.Context(), sessionId)
	if err == pgx.ErrNoRows {
		w.WriteHeader(http.StatusNotFound)
		return
	} else if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return
	}
	if err := session.State.EliminateCandidate(
		params.Row, params.Column, sudoku.Symbol(params.Value),
	); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(err.Error()))
		return
	}
	if session.State.Completed() && session.EndedAt.IsZero() {
		session.EndedAt = time.Now().UTC()
	}
	if err := pg.UpdateGameSession(r.Context(), session); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return
	}
	if _, err := sendJSON(w, &session); err != nil {
		log.Error(err)
	}
}

func handleSetCandidates(w http.ResponseWriter, r *http.Request) {
	var params CandidatesParams
	if err := dec.Decode(&params, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	values, err := parseSymbolList(params.Values)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	sessionId, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	session, err := pg.GetSession(r.Context(), sessionId)
	if err == pgx.ErrNoRows {
		w.WriteHeader(http.StatusNotFound)
		return
	} else if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return
	}
	if err := session.State.SetCellCandidates(
		params.Row, params.Column, values,
	); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(err.Error()))
		return
	}
	if session.State.Completed() && session.EndedAt.IsZero() {
		session.EndedAt = time.Now().UTC()
	}
	if err := pg.UpdateGameSession(r.Context(), session); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return
	}
	if _, err := sendJSON(w, &session); err != nil {
		log.Error(err)
	}
}

func handleSolve(w http.ResponseWriter, r *http.Request) {
	sessionId, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	session, err := pg.GetSession(r.Context(), sessionId)
	if err == pgx.ErrNoRows {
		w.WriteHeader(http.StatusNotFound)
		return
	} else if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return
	}
	if err := session.State.AutoSolve(); err != nil {
		log.Debug("solve stopped: ", err)
	}
	if session.State.Completed() && session.EndedAt.IsZero() {
		session.EndedAt = time.Now().UTC()
	}
	if err := pg.UpdateGameSession(r.Context(), session); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return
	}
	if _, err := sendJSON(w, &session); err != nil {
		log.Error(err)
	}
}

// Accepts newline-separated commands transferred via body of following syntax:
//
//	s row col value // set a value
//	x row col       // erase a cell
//	e row col value // strike a pencil mark
//	c row col v,v,v // replace pencil marks
//	a               // run the solver
//	g               // no-op, fetch state
//
// Commands are interpreted in the order they are listed. If any command
// completes the puzzle, interpretation stops and the session is returned
// immediately. If any command is malformed, all changes to game state will
// be dropped and the response will have a status of [http.StatusBadRequest]
// and a payload with the command's line number and an error message.
func handleBatch(w http.ResponseWriter, r *http.Request) {
	sessionId, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	session, err := pg.GetSession(r.Context(), sessionId)
	if err == pgx.ErrNoRows {
		w.WriteHeader(http.StatusNotFound)
		return
	} else if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return
	}
	lines := strings.TrimSpace(string(body))
	for i, c := range byPiece(lines, "\n") {
		if err := executeCommand(&session.State, c); err != nil {
			payload := struct {
				Line    int    `json:"line"`
				Message string `json:"message"`
			}{i, err.Error()}
			w.WriteHeader(http.StatusBadRequest)
			if _, err := sendJSON(w, payload); err != nil {
				log.Error(err)
			}
			return
		}
		if session.State.Completed() {
			break
		}
	}
	if session.State.Completed() && session.EndedAt.IsZero() {
		session.EndedAt = time.Now().UTC()
	}
	if err := pg.UpdateGameSession(r.Context(), session); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return
	}
	if _, err := sendJSON(w, &session); err != nil {
		log.Error(err)
	}
}
