package service

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/codec"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/ledger"
)

// Role selects which player slot the identity is matched against.
type Role int

const (
	RoleCreator Role = iota
	RoleAcceptor
)

type DiscoveredGame struct {
	View *entity.PlayableGame
	Game *entity.Game
}

type DiscoveryService interface {
	// ListPlayable returns unaccepted and ongoing games the identity takes part in,
	// creator matches first, in the store's order.
	ListPlayable(ctx context.Context, identity entity.Address) ([]*DiscoveredGame, error)
	// ListUnaccepted returns games still waiting for acceptance where the identity
	// holds the given role.
	ListUnaccepted(ctx context.Context, identity entity.Address, role Role) ([]*DiscoveredGame, error)
}

type discoveryService struct {
	logger *slog.Logger
	store  ledger.AccountStore
	tokens TokenService
}

func NewDiscoveryService(logger *slog.Logger, store ledger.AccountStore, tokens TokenService) DiscoveryService {
	return &discoveryService{
		logger: logger.With("component", "discovery"),
		store:  store,
		tokens: tokens,
	}
}

func (that *discoveryService) ListPlayable(ctx context.Context, identity entity.Address) ([]*DiscoveredGame, error) {
	var created, accepted []ledger.KeyedAccount

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		created, err = that.store.QueryAccounts(groupCtx, codec.CreatorFilter(identity))
		if err != nil {
			return apperror.Remote("query created games", err)
		}
		return nil
	})
	group.Go(func() error {
		var err error
		accepted, err = that.store.QueryAccounts(groupCtx, codec.AcceptorFilter(identity))
		if err != nil {
			return apperror.Remote("query accepted games", err)
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return that.classify(ctx, identity, append(created, accepted...))
}

func (that *discoveryService) ListUnaccepted(ctx context.Context, identity entity.Address, role Role) ([]*DiscoveredGame, error) {
	filter := codec.CreatorFilter(identity)
	if role == RoleAcceptor {
		filter = codec.AcceptorFilter(identity)
	}

	accounts, err := that.store.QueryAccounts(ctx, filter, codec.UnacceptedFilter())
	if err != nil {
		return nil, apperror.Remote("query unaccepted games", err)
	}

	games, err := that.classify(ctx, identity, accounts)
	if err != nil {
		return nil, err
	}

	// the probe also admits ongoing games; keep only the ones still pending
	pending := games[:0]
	for _, game := range games {
		if game.Game.IsUnaccepted() {
			pending = append(pending, game)
		}
	}

	return pending, nil
}

// classify drops every account that is not a valid ongoing game. Those may be
// closed, foreign or mid-write, so they are skipped without error.
func (that *discoveryService) classify(ctx context.Context, identity entity.Address, accounts []ledger.KeyedAccount) ([]*DiscoveredGame, error) {
	log := that.logger.With("method", "classify")

	games := make([]*DiscoveredGame, 0, len(accounts))
	for _, account := range accounts {
		if !codec.IsValidOngoingGame(account.Data) {
			log.Debug("skipping account", "address", account.Address.String(), "reason", "not a valid ongoing game")
			continue
		}

		game, err := codec.DecodeGame(account.Data)
		if err != nil {
			log.Debug("skipping account", "address", account.Address.String(), "error", err)
			continue
		}

		decimals, err := that.tokens.Decimals(ctx, game.StakeMint)
		if err != nil {
			return nil, err
		}

		games = append(games, &DiscoveredGame{
			View: entity.NewPlayableGame(account.Address, identity, game, decimals),
			Game: game,
		})
	}

	log.Debug("classified accounts", "found", len(accounts), "playable", len(games))

	return games, nil
}
