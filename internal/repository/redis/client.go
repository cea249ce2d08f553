package redis

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/iamasit07/connect4-rules/internal/domain"
	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client
var redisEnabled bool

// redisOptions accepts either a plain host:port or a redis:// / rediss:// URL. An explicit
// password wins over one embedded in the URL.
func redisOptions(addr, password string) (*redis.Options, error) {
	if !strings.Contains(addr, "://") {
		return &redis.Options{
			Addr:     addr,
			Password: password,
			DB:       0,
		}, nil
	}

	opts, err := redis.ParseURL(addr)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	if password != "" {
		opts.Password = password
	}
	return opts, nil
}

// InitRedis connects to addr. An unreachable server is not an error: the tally is simply
// unavailable for this run. A malformed URL is.
func InitRedis(ctx context.Context, addr, password string) error {
	redisEnabled = false

	opts, err := redisOptions(addr, password)
	if err != nil {
		return err
	}
	RedisClient = redis.NewClient(opts)

	err = RedisClient.Ping(ctx).Err()
	if err != nil {
		log.Printf("[REDIS] Warning: Could not connect to Redis: %v. Running without a win tally.", err)
		redisEnabled = false
		return nil
	}

	redisEnabled = true
	log.Println("[REDIS] Connected successfully")
	return nil
}

// IsRedisEnabled returns whether Redis is available
func IsRedisEnabled() bool {
	return redisEnabled
}

// CloseRedis closes the Redis connection
func CloseRedis() error {
	if RedisClient != nil {
		return RedisClient.Close()
	}
	return nil
}

const (
	keyPrefix = "connect4:"
	keyDraws  = keyPrefix + "draws"
)

func winsKey(color domain.CellState) string {
	return keyPrefix + "wins:" + color.String()
}

// Tally counts finished games across runs
type Tally struct {
	RedWins   int64
	BlackWins int64
	Draws     int64
}

// TallyCache keeps win and draw counters in redis
type TallyCache struct {
	client *redis.Client
}

func NewTallyCache(client *redis.Client) *TallyCache {
	return &TallyCache{client: client}
}

func (c *TallyCache) IncrWins(ctx context.Context, color domain.CellState) error {
	if color != domain.Red && color != domain.Black {
		return fmt.Errorf("no win counter for %v", color)
	}
	return c.client.Incr(ctx, winsKey(color)).Err()
}

func (c *TallyCache) IncrDraws(ctx context.Context) error {
	return c.client.Incr(ctx, keyDraws).Err()
}

func (c *TallyCache) Tally(ctx context.Context) (Tally, error) {
	values, err := c.client.MGet(ctx, winsKey(domain.Red), winsKey(domain.Black), keyDraws).Result()
	if err != nil {
		return Tally{}, fmt.Errorf("failed to read tally: %w", err)
	}

	counts := make([]int64, len(values))
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			continue // missing key
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Tally{}, fmt.Errorf("failed to parse tally counter: %w", err)
		}
		counts[i] = n
	}

	return Tally{RedWins: counts[0], BlackWins: counts[1], Draws: counts[2]}, nil
}
