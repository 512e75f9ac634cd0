package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/focus-backend/internal/entity"
)

var ErrResultNotFound = errors.New("result not found")

const (
	resultKeyPrefix = "result:"
	winsKeyPrefix   = "wins:"
)

type ResultRepository interface {
	Save(ctx context.Context, result *entity.Result) error
	GetByID(ctx context.Context, matchID string) (*entity.Result, error)
	Wins(ctx context.Context, playerID string) (int64, error)
}

type dbResult struct {
	client *redis.Client
}

func NewResultRepository(client *redis.Client) ResultRepository {
	return &dbResult{
		client: client,
	}
}

// Save - stores the result and bumps the winner's tally in one transaction.
func (that *dbResult) Save(ctx context.Context, result *entity.Result) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal result: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, resultKeyPrefix+result.MatchID, resultJSON, 0)
		pipe.Incr(ctx, winsKeyPrefix+result.Winner.ID)

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	return nil
}

func (that *dbResult) GetByID(ctx context.Context, matchID string) (*entity.Result, error) {
	response, err := that.client.Get(ctx, resultKeyPrefix+matchID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrResultNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get result by id: %w", err)
	}

	var result entity.Result
	if err = json.Unmarshal([]byte(response), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return &result, nil
}

// Wins - number of matches the player has won, zero when unknown.
func (that *dbResult) Wins(ctx context.Context, playerID string) (int64, error) {
	wins, err := that.client.Get(ctx, winsKeyPrefix+playerID).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}

	if err != nil {
		return 0, fmt.Errorf("failed to get wins: %w", err)
	}

	return wins, nil
}
