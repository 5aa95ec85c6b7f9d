package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/ledger"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/repository"
)

type mintRepo interface {
	SaveDecimals(ctx context.Context, mint entity.Address, decimals uint8) error
	GetDecimals(ctx context.Context, mint entity.Address) (uint8, error)
}

type TokenService interface {
	Decimals(ctx context.Context, mint entity.Address) (uint8, error)
	// Holdings returns the owner's associated token account for the mint and its raw balance.
	Holdings(ctx context.Context, mint, owner entity.Address) (entity.Address, uint64, error)
}

type tokenService struct {
	logger   *slog.Logger
	tokens   ledger.TokenService
	deriver  ledger.AddressDeriver
	mintRepo mintRepo
}

func NewTokenService(logger *slog.Logger, tokens ledger.TokenService, deriver ledger.AddressDeriver, mintRepo mintRepo) TokenService {
	return &tokenService{
		logger:   logger.With("component", "token"),
		tokens:   tokens,
		deriver:  deriver,
		mintRepo: mintRepo,
	}
}

func (that *tokenService) Decimals(ctx context.Context, mint entity.Address) (uint8, error) {
	log := that.logger.With("method", "Decimals", "mint", mint.String())

	decimals, err := that.mintRepo.GetDecimals(ctx, mint)
	if err == nil {
		return decimals, nil
	}

	if !errors.Is(err, repository.ErrMintNotFound) {
		log.Warn("mint cache lookup failed", "error", err)
	}

	decimals, err = that.tokens.MintDecimals(ctx, mint)
	if err != nil {
		return 0, apperror.Remote("get mint decimals", err)
	}

	if err = that.mintRepo.SaveDecimals(ctx, mint, decimals); err != nil {
		log.Warn("could not cache mint decimals", "error", err)
	}

	return decimals, nil
}

func (that *tokenService) Holdings(ctx context.Context, mint, owner entity.Address) (entity.Address, uint64, error) {
	account, err := that.deriver.AssociatedTokenAccount(mint, owner)
	if err != nil {
		return entity.Address{}, 0, fmt.Errorf("failed to derive token account: %w", err)
	}

	balance, err := that.tokens.Balance(ctx, account)
	if err != nil {
		return entity.Address{}, 0, apperror.Remote("get token balance", err)
	}

	return account, balance, nil
}
