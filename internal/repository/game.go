package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/entity"
)

var ErrGameNotFound = errors.New("game not found")

const journalTTL = 7 * 24 * time.Hour

// Observation is the last game state a client saw for an account.
type Observation struct {
	Turns      uint8     `json:"turns"`
	State      string    `json:"state"`
	ObservedAt time.Time `json:"observed_at"`
}

// GameRepository journals the latest observation per game address so a poll that
// hits a lagging node cannot move the local view backwards.
type GameRepository interface {
	Save(ctx context.Context, address entity.Address, observation *Observation) error
	GetByAddress(ctx context.Context, address entity.Address) (*Observation, error)
	DeleteByAddress(ctx context.Context, address entity.Address) error
}

type dbGame struct {
	client *redis.Client
}

func NewGameRepository(client *redis.Client) GameRepository {
	return &dbGame{
		client: client,
	}
}

func gameKey(address entity.Address) string {
	return "game:" + address.String()
}

func (that *dbGame) Save(ctx context.Context, address entity.Address, observation *Observation) error {
	observationJSON, err := json.Marshal(observation)
	if err != nil {
		return fmt.Errorf("could not marshal observation: %w", err)
	}

	err = that.client.Set(ctx, gameKey(address), observationJSON, journalTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to set observation: %w", err)
	}

	return nil
}

func (that *dbGame) GetByAddress(ctx context.Context, address entity.Address) (*Observation, error) {
	response, err := that.client.Get(ctx, gameKey(address)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get observation: %w", err)
	}

	var observation Observation
	if err = json.Unmarshal([]byte(response), &observation); err != nil {
		return nil, fmt.Errorf("failed to unmarshal observation: %w", err)
	}

	return &observation, nil
}

func (that *dbGame) DeleteByAddress(ctx context.Context, address entity.Address) error {
	deleted, err := that.client.Del(ctx, gameKey(address)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete observation: %w", err)
	}

	if deleted == 0 {
		return ErrGameNotFound
	}

	return nil
}
