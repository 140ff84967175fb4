package main

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
)

// GameRecord is a leaderboard row. Only unassisted completions count, so the
// playtime of a record is honest.
type GameRecord struct {
	GameSessionId string  `json:"session_id"`
	Username      *string `json:"username"`
	Size          int     `json:"size"`
	Givens        int     `json:"givens"`
	Playtime      float64 `json:"playtime"`
}

type GameRecordFilters struct {
	username *string
	size     *int
}

func (f GameRecordFilters) WhereClause() (string, pgx.NamedArgs) {
	args := pgx.NamedArgs{}
	whereClauses := []string{}
	if f.username != nil {
		args["username"] = *f.username
		whereClauses = append(whereClauses, "username = @username")
	}
	if f.size != nil {
		args["size"] = *f.size
		whereClauses = append(whereClauses, "size = @size")
	}

	if len(whereClauses) == 0 {
		return "", args
	}
	return strings.Join(whereClauses, " and "), args
}

type GameRecordsOption = func(*GameRecordFilters) error

func GameRecordsForPlayer(username string) GameRecordsOption {
	return func(f *GameRecordFilters) error {
		f.username = &username
		return nil
	}
}

func GameRecordsForSize(size int) GameRecordsOption {
	return func(f *GameRecordFilters) error {
		if size < 1 {
			return errors.New("size must be positive")
		}
		f.size = &size
		return nil
	}
}

func getGameRecords(
	ctx context.Context, options ...GameRecordsOption,
) ([]GameRecord, error) {
	filters := &GameRecordFilters{}
	for _, op := range options {
		err := op(filters)
		if err != nil {
			return nil, err
		}
	}

	sql := `
	select
		game_session_id::text game_session_id
		, username
		, size
		, givens
		, (
			extract('epoch' from ended_at) - extract('epoch' from started_at)
		) * 1000 playtime
	from game_session
		left outer join player using (player_id)
	where
		completed = true
		and assisted = false
		and ended_at is not null`

	whereClause, args := filters.WhereClause()
	if whereClause != "" {
		sql += " and " + whereClause
	}

	sql += " order by playtime"

	rows, err := pg.db.Query(ctx, sql, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[GameRecord])
}
