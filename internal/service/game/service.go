package game

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/iamasit07/connect4-rules/internal/domain"
	"github.com/iamasit07/connect4-rules/internal/repository/postgres"
	"github.com/iamasit07/connect4-rules/internal/repository/redis"
	"github.com/iamasit07/connect4-rules/pkg/uid"
)

// Record runs on its own deadline, detached from the caller's cancellation
const recordTimeout = 5 * time.Second

const (
	ErrGameNotFinished   domain.Error = "game is not finished"
	ErrInconsistentBoard domain.Error = "board does not match the recorded outcome"
)

type ResultRepository interface {
	SaveResult(ctx context.Context, result postgres.GameResult) error
	RecentResults(ctx context.Context, limit int) ([]postgres.GameResult, error)
}

type TallyCache interface {
	IncrWins(ctx context.Context, color domain.CellState) error
	IncrDraws(ctx context.Context) error
	Tally(ctx context.Context) (redis.Tally, error)
}

// GameSession is one local game from the first prompt to the final board
type GameSession struct {
	GameID     string
	Game       *domain.Game
	CreatedAt  time.Time
	FinishedAt time.Time
}

func NewGameSession() (*GameSession, error) {
	gameID, err := uid.GenerateGameID()
	if err != nil {
		return nil, err
	}

	return &GameSession{
		GameID:    gameID,
		Game:      domain.NewGame(),
		CreatedAt: time.Now(),
	}, nil
}

func (gs *GameSession) Duration() time.Duration {
	if gs.FinishedAt.IsZero() {
		return 0
	}
	return gs.FinishedAt.Sub(gs.CreatedAt)
}

// Result flattens a finished session into the stored form
func (gs *GameSession) Result() postgres.GameResult {
	result := postgres.GameResult{
		GameID:          gs.GameID,
		Status:          string(gs.Game.Status),
		TotalMoves:      gs.Game.MoveCount,
		DurationSeconds: int(gs.Duration().Seconds()),
		CreatedAt:       gs.CreatedAt,
		FinishedAt:      gs.FinishedAt,
		BoardState:      gs.Game.Board.Snapshot(),
	}
	if gs.Game.Status == domain.StatusWon {
		result.Winner = gs.Game.Winner.Color().String()
	}
	return result
}

// Record stores a finished game and bumps the tally. Either store may be absent.
func (s *Service) Record(ctx context.Context, gs *GameSession) error {
	if !gs.Game.IsFinished() {
		return ErrGameNotFinished
	}

	// the winner never switched turns, so a full scan from their side must agree
	if gs.Game.Status == domain.StatusWon && !gs.Game.Board.CheckForWin() {
		return ErrInconsistentBoard
	}

	if gs.FinishedAt.IsZero() {
		gs.FinishedAt = time.Now()
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	if s.Repo != nil {
		if err := s.Repo.SaveResult(ctx, gs.Result()); err != nil {
			return fmt.Errorf("failed to save game %s: %w", gs.GameID, err)
		}
		log.Printf("[GAME] Game %s saved successfully", gs.GameID)
	}

	if s.Cache != nil {
		var err error
		if gs.Game.Status == domain.StatusWon {
			err = s.Cache.IncrWins(ctx, gs.Game.Winner.Color())
		} else {
			err = s.Cache.IncrDraws(ctx)
		}
		if err != nil {
			log.Printf("[GAME] Error updating tally for game %s: %v", gs.GameID, err)
		}
	}

	return nil
}

// Recent returns the latest stored results, newest first. It reports false when no
// repository is configured.
func (s *Service) Recent(ctx context.Context, limit int) ([]postgres.GameResult, bool, error) {
	if s.Repo == nil {
		return nil, false, nil
	}
	results, err := s.Repo.RecentResults(ctx, limit)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load recent games: %w", err)
	}
	return results, true, nil
}

// Tally reports false when no cache is configured
func (s *Service) Tally(ctx context.Context) (redis.Tally, bool, error) {
	if s.Cache == nil {
		return redis.Tally{}, false, nil
	}
	tally, err := s.Cache.Tally(ctx)
	if err != nil {
		return redis.Tally{}, false, err
	}
	return tally, true, nil
}
