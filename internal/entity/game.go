package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/apperror"
)

const (
	BoardSide  = 3
	BoardCells = BoardSide * BoardSide

	// MaxTurns is reached when every cell is marked.
	MaxTurns = BoardCells
)

type Tile uint8

const (
	TileEmpty Tile = iota
	TileX
	TileO
)

func (that Tile) Symbol() string {
	switch that {
	case TileX:
		return "X"
	case TileO:
		return "O"
	default:
		return " "
	}
}

type Board [BoardSide][BoardSide]Tile

type StateKind uint8

const (
	StateUnaccepted StateKind = iota
	StateOngoing
	StateOver
	StateDraw
)

func (that StateKind) String() string {
	switch that {
	case StateUnaccepted:
		return "unaccepted"
	case StateOngoing:
		return "ongoing"
	case StateOver:
		return "over"
	case StateDraw:
		return "draw"
	default:
		return fmt.Sprintf("state(%d)", uint8(that))
	}
}

// GameState is the account's state variant. Winner is set only for StateOver.
type GameState struct {
	Kind   StateKind
	Winner Address
}

func Unaccepted() GameState { return GameState{Kind: StateUnaccepted} }
func Ongoing() GameState    { return GameState{Kind: StateOngoing} }
func Draw() GameState       { return GameState{Kind: StateDraw} }

func Over(winner Address) GameState {
	return GameState{Kind: StateOver, Winner: winner}
}

// Game is the decoded on-ledger game account.
type Game struct {
	Players       [2]Address
	Board         Board
	State         GameState
	Turns         uint8
	StakeMint     Address
	StakeAmount   uint64
	IsInitialized bool
}

func (that *Game) IsValidOngoing() bool {
	return that.IsInitialized &&
		(that.State.Kind == StateUnaccepted || that.State.Kind == StateOngoing)
}

func (that *Game) IsUnaccepted() bool {
	return that.State.Kind == StateUnaccepted
}

func (that *Game) Creator() Address {
	return that.Players[SlotCreator]
}

// SlotOf returns the slot the identity occupies in this game.
func (that *Game) SlotOf(identity Address) (Slot, error) {
	switch identity {
	case that.Players[SlotCreator]:
		return SlotCreator, nil
	case that.Players[SlotAcceptor]:
		return SlotAcceptor, nil
	default:
		return 0, fmt.Errorf("%w: %s", apperror.ErrNotAPlayer, identity)
	}
}

// Opponent returns whichever player slot is not the identity.
func (that *Game) Opponent(identity Address) Address {
	if that.Players[SlotCreator] == identity {
		return that.Players[SlotAcceptor]
	}

	return that.Players[SlotCreator]
}

func (that *Game) SlotToMove() Slot {
	return SlotToMove(that.Turns)
}

func (that *Game) TurnsRemaining() int {
	return MaxTurns - int(that.Turns)
}
