package usecase

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
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/service"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/session"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/settlement"
	mockedLedger "github.com/rocketscienceinc/tictactoe-ledger-client/mocks/ledger"
	mockedUseCase "github.com/rocketscienceinc/tictactoe-ledger-client/mocks/usecase"
	"github.com/rocketscienceinc/tictactoe-ledger-client/testing/suite"
)

var (
	me       = entity.Address{1}
	opponent = entity.Address{2}
	mint     = entity.Address{7}
	gameAddr = entity.Address{9}
	myATA    = entity.Address{71}

	errSendFailed = errors.New("send failed")
	someIx        = ledger.Instruction{Data: []byte{0xff}}
)

type signer entity.Address

func (that signer) Address() entity.Address { return entity.Address(that) }

type deps struct {
	discovery    *mockedUseCase.Mockdiscovery
	tokens       *mockedUseCase.Mocktokens
	instructions *mockedUseCase.Mockinstructions
	runner       *mockedUseCase.MocksessionRunner
	store        *mockedLedger.MockAccountStore
	submitter    *mockedLedger.MockSubmitter
	journal      *repository.Memory
}

func newManager(t *testing.T) (*GameManager, *deps) {
	t.Helper()

	d := &deps{
		discovery:    mockedUseCase.NewMockdiscovery(t),
		tokens:       mockedUseCase.NewMocktokens(t),
		instructions: mockedUseCase.NewMockinstructions(t),
		runner:       mockedUseCase.NewMocksessionRunner(t),
		store:        mockedLedger.NewMockAccountStore(t),
		submitter:    mockedLedger.NewMockSubmitter(t),
		journal:      repository.NewMemory(),
	}

	manager := NewGameManager(
		suite.Logger(),
		signer(me),
		d.discovery, d.tokens, d.instructions, d.runner, d.store, d.submitter, d.journal,
	)

	return manager, d
}

func (that *deps) holds(balance uint64, decimals uint8) {
	that.tokens.EXPECT().Decimals(mock.Anything, mint).Return(decimals, nil).Once()
	that.tokens.EXPECT().Holdings(mock.Anything, mint, me).Return(myATA, balance, nil).Once()
}

func (that *deps) account(t *testing.T, game *entity.Game) {
	t.Helper()

	raw, err := codec.EncodeGame(game)
	require.NoError(t, err)

	that.store.EXPECT().GetAccount(mock.Anything, gameAddr).Return(raw, nil).Once()
}

func pending(creator, acceptor entity.Address) *entity.Game {
	return &entity.Game{
		Players:       [2]entity.Address{creator, acceptor},
		State:         entity.Unaccepted(),
		StakeMint:     mint,
		StakeAmount:   1_500,
		IsInitialized: true,
	}
}

func TestGameManager_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Stakes the parsed amount with a fresh game account", func(t *testing.T) {
		// Given: a player holding 10.00 tokens of a 2-decimal mint
		manager, d := newManager(t)
		d.holds(1_000, 2)

		gameAccount := signer(gameAddr)
		d.submitter.EXPECT().NewSigner().Return(gameAccount, nil).Once()
		d.instructions.EXPECT().Create(me, gameAddr, opponent, mint, myATA, uint64(250)).Return(someIx, nil).Once()
		d.submitter.EXPECT().Submit(mock.Anything, someIx, signer(me), gameAccount).Return("sig", nil).Once()

		// When: creating a game staking 2.5 tokens
		address, err := manager.Create(ctx, opponent, mint, "2.5")

		// Then: the game account address is returned
		require.NoError(t, err)
		assert.Equal(t, gameAddr, address)
	})

	t.Run("Rejects playing against yourself", func(t *testing.T) {
		manager, _ := newManager(t)

		_, err := manager.Create(ctx, me, mint, "1")

		assert.ErrorIs(t, err, apperror.ErrInvalidAddress)
	})

	t.Run("Rejects an empty balance", func(t *testing.T) {
		manager, d := newManager(t)
		d.holds(0, 2)

		_, err := manager.Create(ctx, opponent, mint, "1")

		assert.ErrorIs(t, err, apperror.ErrInsufficientBalance)
	})

	t.Run("Rejects a stake above the balance", func(t *testing.T) {
		manager, d := newManager(t)
		d.holds(1_000, 2)

		_, err := manager.Create(ctx, opponent, mint, "10.01")

		assert.ErrorIs(t, err, apperror.ErrInsufficientBalance)
	})

	t.Run("Rejects more fractional digits than the mint has", func(t *testing.T) {
		manager, d := newManager(t)
		d.holds(1_000, 2)

		_, err := manager.Create(ctx, opponent, mint, "0.001")

		assert.ErrorIs(t, err, apperror.ErrInvalidAmount)
	})

	t.Run("Submission failure is a remote fault", func(t *testing.T) {
		manager, d := newManager(t)
		d.holds(1_000, 0)
		d.submitter.EXPECT().NewSigner().Return(signer(gameAddr), nil).Once()
		d.instructions.EXPECT().Create(me, gameAddr, opponent, mint, myATA, uint64(5)).Return(someIx, nil).Once()
		d.submitter.EXPECT().Submit(mock.Anything, someIx, mock.Anything, mock.Anything).Return("", errSendFailed).Once()

		_, err := manager.Create(ctx, opponent, mint, "5")

		assert.ErrorIs(t, err, apperror.ErrRemote)
		assert.ErrorIs(t, err, errSendFailed)
	})
}

func TestGameManager_Accept(t *testing.T) {
	ctx := context.Background()

	t.Run("Escrows the matching stake", func(t *testing.T) {
		// Given: an invitation from the opponent
		manager, d := newManager(t)
		d.account(t, pending(opponent, me))
		d.holds(2_000, 3)
		d.instructions.EXPECT().Accept(me, gameAddr, mint, myATA).Return(someIx, nil).Once()
		d.submitter.EXPECT().Submit(mock.Anything, someIx, signer(me)).Return("sig", nil).Once()

		// When: accepting it
		err := manager.Accept(ctx, gameAddr)

		// Then: the accept instruction was submitted
		require.NoError(t, err)
	})

	t.Run("Creator cannot accept its own game", func(t *testing.T) {
		manager, d := newManager(t)
		d.account(t, pending(me, opponent))

		err := manager.Accept(ctx, gameAddr)

		assert.ErrorIs(t, err, apperror.ErrNotAPlayer)
	})

	t.Run("Rejects a game that already started", func(t *testing.T) {
		manager, d := newManager(t)
		game := pending(opponent, me)
		game.State = entity.Ongoing()
		d.account(t, game)

		err := manager.Accept(ctx, gameAddr)

		assert.ErrorIs(t, err, apperror.ErrInvalidSelection)
	})

	t.Run("Rejects when the stake cannot be matched", func(t *testing.T) {
		manager, d := newManager(t)
		d.account(t, pending(opponent, me))
		d.holds(1_499, 3)

		err := manager.Accept(ctx, gameAddr)

		assert.ErrorIs(t, err, apperror.ErrInsufficientBalance)
	})

	t.Run("Closed account is reported as such", func(t *testing.T) {
		manager, d := newManager(t)
		d.store.EXPECT().GetAccount(mock.Anything, gameAddr).Return(nil, apperror.ErrAccountClosed).Once()

		err := manager.Accept(ctx, gameAddr)

		assert.ErrorIs(t, err, apperror.ErrAccountClosed)
	})
}

func TestGameManager_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("Refunds the creator", func(t *testing.T) {
		// Given: a game I created that nobody accepted
		manager, d := newManager(t)
		d.account(t, pending(me, opponent))
		d.instructions.EXPECT().
			Cancel(me, gameAddr, mint, mock.MatchedBy(func(targets settlement.Targets) bool {
				return targets.Single != nil && *targets.Single == me && targets.Both == nil
			})).
			Return(someIx, nil).
			Once()
		d.submitter.EXPECT().Submit(mock.Anything, someIx, signer(me)).Return("sig", nil).Once()

		// When: cancelling it
		signature, err := manager.Cancel(ctx, gameAddr)

		// Then: the refund was submitted
		require.NoError(t, err)
		assert.Equal(t, "sig", signature)
	})

	t.Run("Only the creator can cancel", func(t *testing.T) {
		manager, d := newManager(t)
		d.account(t, pending(opponent, me))

		_, err := manager.Cancel(ctx, gameAddr)

		assert.ErrorIs(t, err, apperror.ErrNotAPlayer)
	})
}

func TestGameManager_Play(t *testing.T) {
	ctx := context.Background()

	finished := func(state entity.GameState) *entity.Game {
		game := pending(me, opponent)
		game.State = state
		game.Turns = 5
		return game
	}

	t.Run("Creator settles a win to itself", func(t *testing.T) {
		// Given: the session ends with the creator winning
		manager, d := newManager(t)
		require.NoError(t, d.journal.Save(ctx, gameAddr, &repository.Observation{Turns: 5, State: "over"}))

		game := finished(entity.Over(me))
		plan, err := settlement.Resolve(game, me)
		require.NoError(t, err)

		d.runner.EXPECT().Run(mock.Anything, signer(me), gameAddr).
			Return(&session.Result{State: session.Won, Outcome: entity.OutcomeWon, Game: game, Plan: plan}, nil).
			Once()
		d.instructions.EXPECT().Close(me, gameAddr, mint, plan.Targets).Return(someIx, nil).Once()
		d.submitter.EXPECT().Submit(mock.Anything, someIx, signer(me)).Return("close-sig", nil).Once()

		// When: playing the game
		report, err := manager.Play(ctx, gameAddr)

		// Then: it was settled and the journal entry dropped
		require.NoError(t, err)
		assert.Equal(t, session.Won, report.Result.State)
		assert.Equal(t, "close-sig", report.Signature)

		_, err = d.journal.GetByAddress(ctx, gameAddr)
		assert.ErrorIs(t, err, repository.ErrGameNotFound)
	})

	t.Run("Acceptor leaves settlement to the creator", func(t *testing.T) {
		// Given: the acceptor's session ends in a draw
		manager, d := newManager(t)

		game := finished(entity.Draw())
		game.Players = [2]entity.Address{opponent, me}
		plan, err := settlement.Resolve(game, me)
		require.NoError(t, err)

		d.runner.EXPECT().Run(mock.Anything, signer(me), gameAddr).
			Return(&session.Result{State: session.Drawn, Outcome: entity.OutcomeDraw, Game: game, Plan: plan}, nil).
			Once()

		// When: playing the game
		report, err := manager.Play(ctx, gameAddr)

		// Then: nothing is submitted
		require.NoError(t, err)
		assert.Equal(t, session.Drawn, report.Result.State)
		assert.Empty(t, report.Signature)
	})

	t.Run("Session failure is returned", func(t *testing.T) {
		manager, d := newManager(t)
		d.runner.EXPECT().Run(mock.Anything, signer(me), gameAddr).Return(nil, apperror.Inconsistent("bad state")).Once()

		_, err := manager.Play(ctx, gameAddr)

		assert.ErrorIs(t, err, apperror.ErrProtocolInconsistency)
	})

	t.Run("Account closed by the creator ends the game", func(t *testing.T) {
		// Given: the creator closed the account before our next poll
		manager, d := newManager(t)
		require.NoError(t, d.journal.Save(ctx, gameAddr, &repository.Observation{Turns: 6, State: "ongoing"}))

		d.runner.EXPECT().Run(mock.Anything, signer(me), gameAddr).
			Return(nil, apperror.ErrAccountClosed).
			Once()

		// When: playing the game
		_, err := manager.Play(ctx, gameAddr)

		// Then: the closure is reported and the journal entry dropped
		assert.ErrorIs(t, err, apperror.ErrAccountClosed)

		_, err = d.journal.GetByAddress(ctx, gameAddr)
		assert.ErrorIs(t, err, repository.ErrGameNotFound)
	})

	t.Run("Settlement failure keeps the outcome", func(t *testing.T) {
		manager, d := newManager(t)

		game := finished(entity.Over(opponent))
		plan, err := settlement.Resolve(game, me)
		require.NoError(t, err)

		d.runner.EXPECT().Run(mock.Anything, signer(me), gameAddr).
			Return(&session.Result{State: session.Lost, Outcome: entity.OutcomeLost, Game: game, Plan: plan}, nil).
			Once()
		d.instructions.EXPECT().Close(me, gameAddr, mint, plan.Targets).Return(someIx, nil).Once()
		d.submitter.EXPECT().Submit(mock.Anything, someIx, signer(me)).Return("", errSendFailed).Once()

		report, err := manager.Play(ctx, gameAddr)

		assert.ErrorIs(t, err, apperror.ErrRemote)
		require.NotNil(t, report)
		assert.Equal(t, session.Lost, report.Result.State)
	})
}

func TestGameManager_Listing(t *testing.T) {
	ctx := context.Background()

	t.Run("Invitations use the acceptor role", func(t *testing.T) {
		manager, d := newManager(t)
		games := []*service.DiscoveredGame{{Game: pending(opponent, me)}}
		d.discovery.EXPECT().ListUnaccepted(mock.Anything, me, service.RoleAcceptor).Return(games, nil).Once()

		found, err := manager.Invitations(ctx)

		require.NoError(t, err)
		assert.Equal(t, games, found)
	})

	t.Run("Cancellable games use the creator role", func(t *testing.T) {
		manager, d := newManager(t)
		d.discovery.EXPECT().ListUnaccepted(mock.Anything, me, service.RoleCreator).Return(nil, nil).Once()

		found, err := manager.Cancellable(ctx)

		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("Playable surfaces remote faults", func(t *testing.T) {
		manager, d := newManager(t)
		d.discovery.EXPECT().ListPlayable(mock.Anything, me).Return(nil, apperror.Remote("query", errSendFailed)).Once()

		_, err := manager.Playable(ctx)

		assert.ErrorIs(t, err, apperror.ErrRemote)
	})
}
