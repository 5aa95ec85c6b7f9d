package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/apperror"
)

func addr(b byte) Address {
	var a Address
	a[0] = b

	return a
}

func TestSlotToMove(t *testing.T) {
	t.Run("Even turn counts belong to the creator", func(t *testing.T) {
		for _, turns := range []uint8{0, 2, 4, 6, 8} {
			assert.Equal(t, SlotCreator, SlotToMove(turns))
		}
	})

	t.Run("Odd turn counts belong to the acceptor", func(t *testing.T) {
		for _, turns := range []uint8{1, 3, 5, 7, 9} {
			assert.Equal(t, SlotAcceptor, SlotToMove(turns))
		}
	})

	t.Run("Other flips the slot", func(t *testing.T) {
		assert.Equal(t, SlotAcceptor, SlotCreator.Other())
		assert.Equal(t, SlotCreator, SlotAcceptor.Other())
	})
}

func TestGame_IsValidOngoing(t *testing.T) {
	t.Run("Returns true for initialized unaccepted and ongoing games", func(t *testing.T) {
		// Given: initialized games waiting or in progress
		waiting := &Game{State: Unaccepted(), IsInitialized: true}
		playing := &Game{State: Ongoing(), IsInitialized: true}

		// Then: both are valid ongoing games
		assert.True(t, waiting.IsValidOngoing())
		assert.True(t, playing.IsValidOngoing())
	})

	t.Run("Returns false for finished or uninitialized games", func(t *testing.T) {
		assert.False(t, (&Game{State: Over(addr(1)), IsInitialized: true}).IsValidOngoing())
		assert.False(t, (&Game{State: Draw(), IsInitialized: true}).IsValidOngoing())
		assert.False(t, (&Game{State: Ongoing()}).IsValidOngoing())
	})
}

func TestGame_SlotOf(t *testing.T) {
	game := &Game{Players: [2]Address{addr(1), addr(2)}}

	t.Run("Finds the creator and acceptor slots", func(t *testing.T) {
		slot, err := game.SlotOf(addr(1))
		require.NoError(t, err)
		assert.Equal(t, SlotCreator, slot)

		slot, err = game.SlotOf(addr(2))
		require.NoError(t, err)
		assert.Equal(t, SlotAcceptor, slot)
	})

	t.Run("Returns ErrNotAPlayer for strangers", func(t *testing.T) {
		_, err := game.SlotOf(addr(3))

		assert.ErrorIs(t, err, apperror.ErrNotAPlayer)
	})

	t.Run("Opponent is the other slot", func(t *testing.T) {
		assert.Equal(t, addr(2), game.Opponent(addr(1)))
		assert.Equal(t, addr(1), game.Opponent(addr(2)))
	})
}

func TestNewPlayableGame(t *testing.T) {
	// Given: an ongoing game seen by the acceptor
	game := &Game{
		Players:     [2]Address{addr(1), addr(2)},
		Board:       Board{{TileX}, {TileEmpty, TileO}},
		State:       Ongoing(),
		Turns:       2,
		StakeMint:   addr(9),
		StakeAmount: 2_500_000,
	}

	// When: building the view
	view := NewPlayableGame(addr(7), addr(2), game, 6)

	// Then: the view resolves the opponent and scales the stake
	assert.Equal(t, addr(7), view.Address)
	assert.Equal(t, addr(1), view.Opponent)
	assert.Equal(t, "2.5", view.StakeAmount)
	assert.Equal(t, 7, view.TurnsRemaining)
	assert.Equal(t, "X", view.Board[0][0])
	assert.Equal(t, "O", view.Board[1][1])
	assert.Equal(t, " ", view.Board[2][2])
	assert.False(t, view.Unaccepted)
}
