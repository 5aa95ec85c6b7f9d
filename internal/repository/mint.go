package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/entity"
)

var ErrMintNotFound = errors.New("mint not found")

// MintRepository caches mint decimals. They never change for a mint, so entries
// do not expire.
type MintRepository interface {
	SaveDecimals(ctx context.Context, mint entity.Address, decimals uint8) error
	GetDecimals(ctx context.Context, mint entity.Address) (uint8, error)
}

type dbMint struct {
	client *redis.Client
}

func NewMintRepository(client *redis.Client) MintRepository {
	return &dbMint{
		client: client,
	}
}

func mintKey(mint entity.Address) string {
	return "mint:" + mint.String() + ":decimals"
}

func (that *dbMint) SaveDecimals(ctx context.Context, mint entity.Address, decimals uint8) error {
	if err := that.client.Set(ctx, mintKey(mint), decimals, 0).Err(); err != nil {
		return fmt.Errorf("failed to set mint decimals: %w", err)
	}

	return nil
}

func (that *dbMint) GetDecimals(ctx context.Context, mint entity.Address) (uint8, error) {
	response, err := that.client.Get(ctx, mintKey(mint)).Result()

	if errors.Is(err, redis.Nil) {
		return 0, ErrMintNotFound
	}

	if err != nil {
		return 0, fmt.Errorf("failed to get mint decimals: %w", err)
	}

	decimals, err := strconv.ParseUint(response, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("failed to parse mint decimals %q: %w", response, err)
	}

	return uint8(decimals), nil
}
