package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/entity"
)

// Memory backs both repositories when Redis is disabled. Its contents live only
// as long as the process.
type Memory struct {
	mu       sync.RWMutex
	games    map[entity.Address]Observation
	decimals map[entity.Address]uint8
}

func NewMemory() *Memory {
	return &Memory{
		games:    make(map[entity.Address]Observation),
		decimals: make(map[entity.Address]uint8),
	}
}

func (that *Memory) Save(_ context.Context, address entity.Address, observation *Observation) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.games[address] = *observation

	return nil
}

func (that *Memory) GetByAddress(_ context.Context, address entity.Address) (*Observation, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	observation, ok := that.games[address]
	if !ok {
		return nil, ErrGameNotFound
	}

	return &observation, nil
}

func (that *Memory) DeleteByAddress(_ context.Context, address entity.Address) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[address]; !ok {
		return ErrGameNotFound
	}

	delete(that.games, address)

	return nil
}

func (that *Memory) SaveDecimals(_ context.Context, mint entity.Address, decimals uint8) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.decimals[mint] = decimals

	return nil
}

func (that *Memory) GetDecimals(_ context.Context, mint entity.Address) (uint8, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	decimals, ok := that.decimals[mint]
	if !ok {
		return 0, ErrMintNotFound
	}

	return decimals, nil
}
