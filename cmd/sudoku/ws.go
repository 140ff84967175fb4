package main

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jackc/pgx/v5"

	"github.com/gridkit/sudoku-server/internal/sudoku"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		log.Debug("\tws origin: ", r.Host)
		return true
	},
}

// SolveFrame is one step of a watched solve: the candidate lists and lock
// flags of every cell in row-major order.
type SolveFrame struct {
	Candidates [][]sudoku.Symbol `json:"candidates"`
	Solved     []bool            `json:"solved"`
}

func solveFrame(g *sudoku.Grid) SolveFrame {
	cells := g.Cells()
	frame := SolveFrame{
		Candidates: make([][]sudoku.Symbol, len(cells)),
		Solved:     make([]bool, len(cells)),
	}
	for i, c := range cells {
		frame.Candidates[i] = c.Candidates()
		frame.Solved[i] = c.Solved()
	}
	return frame
}

// watchSolve runs the solver over the session grid, pushing one frame per
// propagation step down the socket. The final session message is sent by the
// caller's common path.
func watchSolve(c *websocket.Conn, session *GameSession) error {
	var writeErr error
	solveErr := session.State.AutoSolve(sudoku.WithDisplayFunc(func(g *sudoku.Grid) {
		if writeErr != nil {
			return
		}
		writeErr = c.WriteJSON(solveFrame(g))
	}))
	if writeErr != nil {
		return writeErr
	}
	if solveErr != nil {
		log.Debug("watched solve stopped: ", solveErr)
	}
	return nil
}

func handleConnectWs(w http.ResponseWriter, r *http.Request) {
	sessionId, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	session, err := pg.GetSession(context.Background(), sessionId)
	if err == pgx.ErrNoRows {
		w.WriteHeader(http.StatusNotFound)
		return
	} else if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return
	}
	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("upgrade: ", err)
		return
	}
	defer c.Close()
	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				log.Warn("read: ", err)
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}
		text := strings.TrimSpace(string(message))
		log.Debug("\t> ", text)
		if text == "watch" {
			if err := watchSolve(c, session); err != nil {
				log.Error("watch: ", err)
				return
			}
		} else {
			for _, cmd := range byPiece(text, "\n") {
				if err := executeCommand(&session.State, cmd); err != nil {
					log.Error("command: ", err)
					return
				}
				if session.State.Completed() {
					break
				}
			}
		}
		if session.State.Completed() && session.EndedAt.IsZero() {
			session.EndedAt = time.Now().UTC()
		}
		if err := pg.UpdateGameSession(
			context.Background(), session,
		); err != nil {
			log.Error(err)
			return
		}
		if err := c.WriteJSON(session); err != nil {
			log.Error("write: ", err)
			break
		}
		log.Debug("\t< <session data>")
	}
}
