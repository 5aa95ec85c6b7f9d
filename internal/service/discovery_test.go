package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/codec"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/ledger"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/repository"
	mockedLedger "github.com/rocketscienceinc/tictactoe-ledger-client/mocks/ledger"
	"github.com/rocketscienceinc/tictactoe-ledger-client/testing/suite"
)

var (
	me       = entity.Address{1}
	opponent = entity.Address{2}
	mint     = entity.Address{7}

	errRPCDown = errors.New("rpc down")
)

func encoded(t *testing.T, game *entity.Game) []byte {
	t.Helper()

	raw, err := codec.EncodeGame(game)
	require.NoError(t, err)

	return raw
}

func account(t *testing.T, address byte, game *entity.Game) ledger.KeyedAccount {
	t.Helper()

	return ledger.KeyedAccount{Address: entity.Address{address}, Data: encoded(t, game)}
}

func gameBetween(creator, acceptor entity.Address, state entity.GameState, turns uint8) *entity.Game {
	return &entity.Game{
		Players:       [2]entity.Address{creator, acceptor},
		State:         state,
		Turns:         turns,
		StakeMint:     mint,
		StakeAmount:   2_500_000,
		IsInitialized: true,
	}
}

func newDiscovery(t *testing.T) (DiscoveryService, *mockedLedger.MockAccountStore, *mockedLedger.MockTokenService) {
	t.Helper()

	store := mockedLedger.NewMockAccountStore(t)
	tokens := mockedLedger.NewMockTokenService(t)
	deriver := mockedLedger.NewMockAddressDeriver(t)

	tokenService := NewTokenService(suite.Logger(), tokens, deriver, repository.NewMemory())

	return NewDiscoveryService(suite.Logger(), store, tokenService), store, tokens
}

func TestDiscoveryService_ListPlayable(t *testing.T) {
	ctx := context.Background()

	t.Run("Lists created games before accepted ones", func(t *testing.T) {
		// Given: one game created by me and one where I am the acceptor
		discovery, store, tokens := newDiscovery(t)

		store.EXPECT().
			QueryAccounts(mock.Anything, codec.CreatorFilter(me)).
			Return([]ledger.KeyedAccount{account(t, 10, gameBetween(me, opponent, entity.Ongoing(), 2))}, nil).
			Once()
		store.EXPECT().
			QueryAccounts(mock.Anything, codec.AcceptorFilter(me)).
			Return([]ledger.KeyedAccount{account(t, 20, gameBetween(opponent, me, entity.Ongoing(), 3))}, nil).
			Once()
		tokens.EXPECT().MintDecimals(mock.Anything, mint).Return(uint8(6), nil).Once()

		// When: listing playable games
		games, err := discovery.ListPlayable(ctx, me)

		// Then: both are returned, creator matches first, with the opponent resolved
		require.NoError(t, err)
		require.Len(t, games, 2)

		assert.Equal(t, entity.Address{10}, games[0].View.Address)
		assert.Equal(t, opponent, games[0].View.Opponent)
		assert.Equal(t, "2.5", games[0].View.StakeAmount)
		assert.Equal(t, 7, games[0].View.TurnsRemaining)

		assert.Equal(t, entity.Address{20}, games[1].View.Address)
		assert.Equal(t, opponent, games[1].View.Opponent)
	})

	t.Run("Silently drops accounts that are not ongoing games", func(t *testing.T) {
		// Given: a finished game, a truncated buffer and an uninitialized account
		discovery, store, _ := newDiscovery(t)

		uninitialized := gameBetween(me, opponent, entity.Ongoing(), 1)
		uninitialized.IsInitialized = false

		store.EXPECT().
			QueryAccounts(mock.Anything, codec.CreatorFilter(me)).
			Return([]ledger.KeyedAccount{
				account(t, 10, gameBetween(me, opponent, entity.Over(me), 5)),
				{Address: entity.Address{11}, Data: []byte{1, 2, 3}},
				account(t, 12, uninitialized),
			}, nil).
			Once()
		store.EXPECT().
			QueryAccounts(mock.Anything, codec.AcceptorFilter(me)).
			Return([]ledger.KeyedAccount{account(t, 20, gameBetween(opponent, me, entity.Draw(), 9))}, nil).
			Once()

		// When: listing playable games
		games, err := discovery.ListPlayable(ctx, me)

		// Then: nothing is playable and that is not an error
		require.NoError(t, err)
		assert.Empty(t, games)
	})

	t.Run("Query failure is a remote fault", func(t *testing.T) {
		discovery, store, _ := newDiscovery(t)

		store.EXPECT().QueryAccounts(mock.Anything, codec.CreatorFilter(me)).Return(nil, errRPCDown).Maybe()
		store.EXPECT().QueryAccounts(mock.Anything, codec.AcceptorFilter(me)).Return(nil, nil).Maybe()

		games, err := discovery.ListPlayable(ctx, me)

		assert.Nil(t, games)
		assert.ErrorIs(t, err, apperror.ErrRemote)
		assert.ErrorIs(t, err, errRPCDown)
	})

	t.Run("Mint decimals are fetched once per mint", func(t *testing.T) {
		// Given: two games staked in the same mint
		discovery, store, tokens := newDiscovery(t)

		store.EXPECT().
			QueryAccounts(mock.Anything, codec.CreatorFilter(me)).
			Return([]ledger.KeyedAccount{
				account(t, 10, gameBetween(me, opponent, entity.Ongoing(), 0)),
				account(t, 11, gameBetween(me, opponent, entity.Unaccepted(), 0)),
			}, nil).
			Once()
		store.EXPECT().QueryAccounts(mock.Anything, codec.AcceptorFilter(me)).Return(nil, nil).Once()
		tokens.EXPECT().MintDecimals(mock.Anything, mint).Return(uint8(0), nil).Once()

		// When: listing twice
		_, err := discovery.ListPlayable(ctx, me)
		require.NoError(t, err)

		store.EXPECT().QueryAccounts(mock.Anything, codec.CreatorFilter(me)).Return(nil, nil).Once()
		store.EXPECT().QueryAccounts(mock.Anything, codec.AcceptorFilter(me)).Return(nil, nil).Once()
		_, err = discovery.ListPlayable(ctx, me)

		// Then: the token service was asked once
		require.NoError(t, err)
	})
}

func TestDiscoveryService_ListUnaccepted(t *testing.T) {
	ctx := context.Background()

	t.Run("Finds invitations with the acceptor and unaccepted filters", func(t *testing.T) {
		// Given: the store returns a pending invitation and an ongoing game
		discovery, store, tokens := newDiscovery(t)

		store.EXPECT().
			QueryAccounts(mock.Anything, codec.AcceptorFilter(me), codec.UnacceptedFilter()).
			Return([]ledger.KeyedAccount{
				account(t, 30, gameBetween(opponent, me, entity.Unaccepted(), 0)),
				account(t, 31, gameBetween(opponent, me, entity.Ongoing(), 0)),
			}, nil).
			Once()
		tokens.EXPECT().MintDecimals(mock.Anything, mint).Return(uint8(2), nil).Once()

		// When: listing invitations
		games, err := discovery.ListUnaccepted(ctx, me, RoleAcceptor)

		// Then: only the pending game is kept
		require.NoError(t, err)
		require.Len(t, games, 1)
		assert.True(t, games[0].View.Unaccepted)
		assert.Equal(t, entity.Address{30}, games[0].View.Address)
	})

	t.Run("Uses the creator filter for cancellable games", func(t *testing.T) {
		discovery, store, _ := newDiscovery(t)

		store.EXPECT().
			QueryAccounts(mock.Anything, codec.CreatorFilter(me), codec.UnacceptedFilter()).
			Return([]ledger.KeyedAccount{}, nil).
			Once()

		games, err := discovery.ListUnaccepted(ctx, me, RoleCreator)

		require.NoError(t, err)
		assert.Empty(t, games)
	})

	t.Run("Query failure is a remote fault", func(t *testing.T) {
		discovery, store, _ := newDiscovery(t)

		store.EXPECT().
			QueryAccounts(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errRPCDown).
			Once()

		_, err := discovery.ListUnaccepted(ctx, me, RoleCreator)

		assert.ErrorIs(t, err, apperror.ErrRemote)
	})
}
