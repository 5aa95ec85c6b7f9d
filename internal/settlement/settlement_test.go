package settlement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/entity"
)

var (
	creator  = entity.Address{1}
	acceptor = entity.Address{2}
	stranger = entity.Address{3}
)

func finished(state entity.GameState) *entity.Game {
	return &entity.Game{
		Players:       [2]entity.Address{creator, acceptor},
		State:         state,
		Turns:         5,
		IsInitialized: true,
	}
}

func TestTargets_Validate(t *testing.T) {
	t.Run("Rejects both a winner and a refund split", func(t *testing.T) {
		// Given: targets carrying both destination sets
		winner := creator
		players := [2]entity.Address{creator, acceptor}
		targets := Targets{Single: &winner, Both: &players}

		// When: validating
		err := targets.Validate()

		// Then: the precondition is violated
		assert.ErrorIs(t, err, apperror.ErrSettlementTargets)
	})

	t.Run("Rejects empty targets", func(t *testing.T) {
		assert.ErrorIs(t, Targets{}.Validate(), apperror.ErrSettlementTargets)
	})

	t.Run("Accepts exactly one destination set", func(t *testing.T) {
		winner := acceptor
		players := [2]entity.Address{creator, acceptor}

		assert.NoError(t, Targets{Single: &winner}.Validate())
		assert.NoError(t, Targets{Both: &players}.Validate())
	})
}

func TestResolve(t *testing.T) {
	t.Run("Local winner gets a single destination", func(t *testing.T) {
		// Given: a game won by the local identity
		game := finished(entity.Over(creator))

		// When: resolving the settlement
		plan, err := Resolve(game, creator)

		// Then: the winner takes the stake
		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeWon, plan.Outcome)
		assert.Equal(t, WinnerTakesStake, plan.Kind)
		assert.Equal(t, []entity.Address{creator}, plan.Targets.Owners())
		assert.NoError(t, plan.Targets.Validate())
		assert.True(t, plan.SubmittedBy(creator))
	})

	t.Run("Loser sees the winner as the single destination", func(t *testing.T) {
		plan, err := Resolve(finished(entity.Over(creator)), acceptor)

		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeLost, plan.Outcome)
		assert.Equal(t, []entity.Address{creator}, plan.Targets.Owners())
		assert.False(t, plan.SubmittedBy(acceptor))
	})

	t.Run("Draw refunds both players", func(t *testing.T) {
		plan, err := Resolve(finished(entity.Draw()), acceptor)

		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeDraw, plan.Outcome)
		assert.Equal(t, SplitRefund, plan.Kind)
		assert.Equal(t, []entity.Address{creator, acceptor}, plan.Targets.Owners())
		assert.Nil(t, plan.Targets.Single)
	})

	t.Run("Non terminal states are protocol inconsistencies", func(t *testing.T) {
		for _, state := range []entity.GameState{entity.Ongoing(), entity.Unaccepted()} {
			_, err := Resolve(finished(state), creator)

			assert.ErrorIs(t, err, apperror.ErrProtocolInconsistency)
		}
	})

	t.Run("Winner outside the players is a protocol inconsistency", func(t *testing.T) {
		_, err := Resolve(finished(entity.Over(stranger)), creator)

		assert.ErrorIs(t, err, apperror.ErrProtocolInconsistency)
	})

	t.Run("Strangers cannot resolve", func(t *testing.T) {
		_, err := Resolve(finished(entity.Draw()), stranger)

		assert.ErrorIs(t, err, apperror.ErrNotAPlayer)
	})
}

func TestResolveCancel(t *testing.T) {
	t.Run("Refunds the creator", func(t *testing.T) {
		game := finished(entity.Unaccepted())

		plan, err := ResolveCancel(game, creator)

		require.NoError(t, err)
		assert.Equal(t, CancelRefund, plan.Kind)
		assert.Equal(t, []entity.Address{creator}, plan.Targets.Owners())
	})

	t.Run("Only the creator may cancel", func(t *testing.T) {
		_, err := ResolveCancel(finished(entity.Unaccepted()), acceptor)

		assert.ErrorIs(t, err, apperror.ErrNotAPlayer)
	})

	t.Run("Accepted games cannot be cancelled", func(t *testing.T) {
		_, err := ResolveCancel(finished(entity.Ongoing()), creator)

		assert.ErrorIs(t, err, apperror.ErrProtocolInconsistency)
	})
}
