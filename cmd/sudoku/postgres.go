package main

import (
	"bytes"
	"context"
	"encoding/gob"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gridkit/sudoku-server/internal/config"
)

const (
	createPlayerTable = `
CREATE TABLE IF NOT EXISTS player (
	player_id 		bigint 	GENERATED ALWAYS AS IDENTITY
							PRIMARY KEY,
	username 		text 	UNIQUE NOT NULL,
	password_hash 	bytea 	NOT NULL,
	created_at 		timestamp with time zone
							DEFAULT now()
							NOT NULL,
	updated_at 		timestamp with time zone
							DEFAULT now()
							NOT NULL
);`
	createGameSessionTable = `
CREATE TABLE IF NOT EXISTS game_session (
	game_session_id	bigint 	GENERATED ALWAYS AS IDENTITY
							PRIMARY KEY,
	player_id		bigint	REFERENCES player (player_id)
							NULL,
	size			integer	NOT NULL,
	givens			integer	NOT NULL,
	completed		boolean NOT NULL,
	assisted		boolean NOT NULL,
	started_at		timestamp with time zone
							DEFAULT now()
							NOT NULL,
	ended_at		timestamp with time zone
							NULL,
	state			bytea	NOT NULL,
	created_at 		timestamp with time zone
							DEFAULT now()
							NOT NULL,
	updated_at 		timestamp with time zone
							DEFAULT now()
							NOT NULL
	);`
	createUpdateModifiedColumnFunction = `
CREATE OR REPLACE FUNCTION update_modified_column()
RETURNS TRIGGER AS $$
BEGIN
	NEW.updated_at = now();
	RETURN NEW;
END;
$$ LANGUAGE 'plpgsql';`
	createPlayerUpdateTrigger = `
CREATE OR REPLACE TRIGGER update_players_modtime
BEFORE UPDATE ON player
FOR EACH ROW EXECUTE FUNCTION update_modified_column();`
	createGameSessionUpdateTrigger = `
CREATE OR REPLACE TRIGGER update_game_session_modtime
BEFORE UPDATE ON game_session
FOR EACH ROW EXECUTE FUNCTION update_modified_column();`
	initSql = createPlayerTable +
		createGameSessionTable +
		createUpdateModifiedColumnFunction +
		createPlayerUpdateTrigger +
		createGameSessionUpdateTrigger
)

type Player struct {
	PlayerId     int    `db:"player_id"`
	Username     string `db:"username"`
	PasswordHash []byte `db:"password_hash"`
}

type postgres struct {
	db *pgxpool.Pool
}

func NewPostgres(ctx context.Context, dbConfig config.Database) (*postgres, error) {
	poolConfig, err := dbConfig.PoolConfig()
	if err != nil {
		return nil, err
	}
	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(ctx, initSql); err != nil {
		return nil, err
	}
	return &postgres{db}, nil
}

func (pg *postgres) Ping(ctx context.Context) error {
	return pg.db.Ping(ctx)
}

func (pg *postgres) Close() {
	pg.db.Close()
}

func (pg *postgres) CreatePlayer(
	ctx context.Context, username string, passwordHash []byte,
) (*Player, error) {
	var playerId int
	if err := pg.db.QueryRow(ctx, `
		INSERT INTO player (
			username, password_hash
		)
		VALUES (
			@username, @password_hash
		)
		RETURNING player_id`,
		pgx.NamedArgs{
			"username":      username,
			"password_hash": passwordHash,
		}).Scan(&playerId); err != nil {
		return nil, err
	}
	player := &Player{
		PlayerId: playerId,
		Username: username,
	}
	return player, nil
}

func (pg *postgres) GetPlayer(
	ctx context.Context, username string,
) (*Player, error) {
	rows, err := pg.db.Query(ctx, `
		SELECT player_id, username, password_hash
		FROM player
		WHERE username = $1;`,
		username)
	if err != nil {
		return nil, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Player])
}

func (pg *postgres) CreateAnonymousGameSession(
	ctx context.Context, state *GameState,
) (*GameSession, error) {
	var (
		stateBuf      bytes.Buffer
		gameSessionId int
		startedAt     time.Time
	)
	if err := gob.NewEncoder(&stateBuf).Encode(state); err != nil {
		return nil, err
	}
	if err := pg.db.QueryRow(ctx, `
		INSERT INTO game_session (
			size, givens, completed, assisted, state
		)
		VALUES (
			@size, @givens, @completed, @assisted, @state
		)
		RETURNING game_session_id, started_at;`,
		pgx.NamedArgs{
			"size":      state.Size,
			"givens":    state.GivenCount(),
			"completed": state.Completed(),
			"assisted":  state.Assisted,
			"state":     stateBuf.Bytes(),
		}).Scan(&gameSessionId, &startedAt); err != nil {
		return nil, err
	}
	session := &GameSession{
		SessionId: gameSessionId,
		State:     *state,
		StartedAt: startedAt,
	}
	return session, nil
}

func (pg *postgres) CreatePlayerGameSession(
	ctx context.Context, playerId int, state *GameState,
) (*GameSession, error) {
	var (
		stateBuf      bytes.Buffer
		gameSessionId int
		startedAt     time.Time
	)
	if err := gob.NewEncoder(&stateBuf).Encode(state); err != nil {
		return nil, err
	}
	if err := pg.db.QueryRow(ctx, `
		INSERT INTO game_session (
			player_id, size, givens, completed, assisted, state
		)
		VALUES (
			@player_id, @size, @givens, @completed, @assisted, @state
		)
		RETURNING game_session_id, started_at;`,
		pgx.NamedArgs{
			"player_id": playerId,
			"size":      state.Size,
			"givens":    state.GivenCount(),
			"completed": state.Completed(),
			"assisted":  state.Assisted,
			"state":     stateBuf.Bytes(),
		}).Scan(&gameSessionId, &startedAt); err != nil {
		return nil, err
	}
	session := &GameSession{
		SessionId: gameSessionId,
		PlayerId:  &playerId,
		State:     *state,
		StartedAt: startedAt,
	}
	return session, nil
}

func (pg *postgres) GetSession(
	ctx context.Context, gameSessionId int,
) (*GameSession, error) {
	var (
		stateBuf  []byte
		state     GameState
		startedAt time.Time
		endedAt   pgtype.Timestamptz
	)
	if err := pg.db.QueryRow(ctx, `
		SELECT state, started_at, ended_at
		FROM game_session
		WHERE game_session_id = $1;`,
		gameSessionId).Scan(
		&stateBuf, &startedAt, &endedAt,
	); err != nil {
		return nil, err
	}
	if err := gob.NewDecoder(bytes.NewBuffer(stateBuf)).Decode(&state); err != nil {
		return nil, err
	}
	gameSession := &GameSession{
		SessionId: gameSessionId,
		State:     state,
		StartedAt: startedAt,
		EndedAt:   endedAt.Time,
	}
	return gameSession, nil
}

func (pg *postgres) UpdateGameSession(
	ctx context.Context, gameSession *GameSession,
) error {
	var stateBuf bytes.Buffer
	if err := gob.NewEncoder(&stateBuf).Encode(gameSession.State); err != nil {
		return err
	}
	var endedAt *time.Time
	if !gameSession.EndedAt.IsZero() {
		endedAt = &gameSession.EndedAt
	}
	_, err := pg.db.Exec(ctx, `
		UPDATE game_session
		SET completed = @completed
			, assisted = @assisted
			, ended_at = @ended_at
			, state = @state
		WHERE game_session_id = @game_session_id;`,
		pgx.NamedArgs{
			"game_session_id": gameSession.SessionId,
			"completed":       gameSession.State.Completed(),
			"assisted":        gameSession.State.Assisted,
			"ended_at":        endedAt,
			"state":           stateBuf.Bytes(),
		})
	return err
}
