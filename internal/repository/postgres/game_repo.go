package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

type GameRepo struct {
	DB *sql.DB
}

func NewGameRepo(db *sql.DB) *GameRepo {
	return &GameRepo{DB: db}
}

// GameResult is the outcome of a finished game. Only the final board is kept, not the moves
// that led to it.
type GameResult struct {
	GameID          string
	Winner          string // "Red", "Black" or empty for a draw
	Status          string
	TotalMoves      int
	DurationSeconds int
	CreatedAt       time.Time
	FinishedAt      time.Time
	BoardState      [][]int
}

// SaveResult inserts a finished game, overwriting an earlier record with the same id
func (r *GameRepo) SaveResult(ctx context.Context, result GameResult) error {
	boardJSON, err := json.Marshal(result.BoardState)
	if err != nil {
		return fmt.Errorf("failed to marshal board state: %w", err)
	}

	var winner sql.NullString
	if result.Winner != "" {
		winner = sql.NullString{String: result.Winner, Valid: true}
	}

	query := `
	INSERT INTO game_result (game_id, winner, status, total_moves, duration_seconds, created_at, finished_at, board_state)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (game_id) DO UPDATE SET
		winner = EXCLUDED.winner,
		status = EXCLUDED.status,
		total_moves = EXCLUDED.total_moves,
		duration_seconds = EXCLUDED.duration_seconds,
		finished_at = EXCLUDED.finished_at,
		board_state = EXCLUDED.board_state;
	`

	_, err = r.DB.ExecContext(ctx, query, result.GameID, winner, result.Status, result.TotalMoves,
		result.DurationSeconds, result.CreatedAt, result.FinishedAt, boardJSON)
	if err != nil {
		return fmt.Errorf("failed to upsert game result: %w", err)
	}
	return nil
}

// RecentResults returns the latest finished games, newest first
func (r *GameRepo) RecentResults(ctx context.Context, limit int) ([]GameResult, error) {
	query := `
	SELECT game_id, winner, status, total_moves, duration_seconds, created_at, finished_at, board_state
	FROM game_result
	ORDER BY finished_at DESC
	LIMIT $1;
	`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query game results: %w", err)
	}
	defer rows.Close()

	var results []GameResult
	for rows.Next() {
		var result GameResult
		var winner sql.NullString
		var boardJSON []byte

		err := rows.Scan(
			&result.GameID,
			&winner,
			&result.Status,
			&result.TotalMoves,
			&result.DurationSeconds,
			&result.CreatedAt,
			&result.FinishedAt,
			&boardJSON,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game result: %w", err)
		}

		if winner.Valid {
			result.Winner = winner.String
		}
		if boardJSON != nil {
			if err := json.Unmarshal(boardJSON, &result.BoardState); err != nil {
				return nil, fmt.Errorf("failed to unmarshal board state: %w", err)
			}
		}

		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate game results: %w", err)
	}
	return results, nil
}

// DeleteFinishedBefore removes results older than cutoff and reports how many went
func (r *GameRepo) DeleteFinishedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM game_result WHERE finished_at < $1;`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old game results: %w", err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted game results: %w", err)
	}
	return deleted, nil
}
