package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iamasit07/connect4-rules/internal/config"
	"github.com/iamasit07/connect4-rules/internal/repository/postgres"
	"github.com/iamasit07/connect4-rules/internal/repository/redis"
	"github.com/iamasit07/connect4-rules/internal/service/cleanup"
	"github.com/iamasit07/connect4-rules/internal/service/game"
	"github.com/iamasit07/connect4-rules/internal/transport/cli"
	"github.com/joho/godotenv"
)

const recentGames = 5

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found")
		}
	}

	cfg := config.LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Optional result storage
	var repo game.ResultRepository
	if cfg.DatabaseURL != "" {
		db, err := postgres.Connect(ctx, cfg.DatabaseURL, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns, cfg.DBConnMaxLifetimeMin)
		if err != nil {
			log.Printf("[DB] Warning: %v. Results will not be stored.", err)
		} else {
			defer db.Close()

			if err := postgres.RunMigrations(ctx, db); err != nil {
				log.Fatalf("Migration failed: %v", err)
			}

			gameRepo := postgres.NewGameRepo(db)
			repo = gameRepo
			cleanup.NewWorker(gameRepo, cfg.ResultRetention).Start(ctx, time.Hour)
		}
	}

	// 2. Optional win tally
	var cache game.TallyCache
	if cfg.RedisURL != "" {
		if err := redis.InitRedis(ctx, cfg.RedisURL, cfg.RedisPassword); err != nil {
			log.Printf("Failed to initialize Redis: %v", err)
		}
		defer redis.CloseRedis()

		if redis.IsRedisEnabled() {
			cache = redis.NewTallyCache(redis.RedisClient)
		}
	}

	service := game.NewService(repo, cache)
	session, err := game.NewGameSession()
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}
	loop := cli.NewLoop(session.Game, os.Stdin, os.Stdout)

	// stdin reads cannot be interrupted, so the loop runs aside and a signal just ends main
	done := make(chan error, 1)
	go func() {
		_, err := loop.Run(ctx)
		done <- err
	}()

	select {
	case <-ctx.Done():
		fmt.Println()
		log.Println("[GAME] Interrupted, game abandoned")
		return
	case err := <-done:
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			log.Println("[GAME] Input closed, game abandoned")
			return
		}
		if err != nil {
			log.Fatalf("Game error: %v", err)
		}
	}

	session.FinishedAt = time.Now()
	// Record keeps going if an interrupt lands now, so the finished game is not lost
	if err := service.Record(ctx, session); err != nil {
		log.Printf("[GAME] Error recording game %s: %v", session.GameID, err)
	}

	reportCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	tally, ok, err := service.Tally(reportCtx)
	if err != nil {
		log.Printf("[GAME] Error reading tally: %v", err)
	} else if ok {
		fmt.Printf("Red %d - Black %d (draws: %d)\n", tally.RedWins, tally.BlackWins, tally.Draws)
	}

	recent, ok, err := service.Recent(reportCtx, recentGames)
	if err != nil {
		log.Printf("[GAME] Error reading recent games: %v", err)
	} else if ok && len(recent) > 0 {
		fmt.Println("Recent games:")
		for _, result := range recent {
			outcome := "draw"
			if result.Winner != "" {
				outcome = result.Winner + " won"
			}
			fmt.Printf("  %s  %-9s in %d moves\n", result.FinishedAt.Local().Format("2006-01-02 15:04"), outcome, result.TotalMoves)
		}
	}
}
