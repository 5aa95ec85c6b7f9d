package session

import (
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/repository"
)

type State int

const (
	AwaitingAcceptance State = iota
	LocalMove
	RemoteMove
	Won
	Lost
	Drawn
)

func (that State) String() string {
	switch that {
	case AwaitingAcceptance:
		return "awaiting-acceptance"
	case LocalMove:
		return "local-move"
	case RemoteMove:
		return "remote-move"
	case Won:
		return "won"
	case Lost:
		return "lost"
	case Drawn:
		return "draw"
	default:
		return "unknown"
	}
}

func (that State) Terminal() bool {
	return that == Won || that == Lost || that == Drawn
}

func terminalState(outcome entity.Outcome) State {
	switch outcome {
	case entity.OutcomeWon:
		return Won
	case entity.OutcomeLost:
		return Lost
	default:
		return Drawn
	}
}

// turnState applies the parity rule for an accepted game.
func turnState(game *entity.Game, slot entity.Slot) State {
	if game.SlotToMove() == slot {
		return LocalMove
	}

	return RemoteMove
}

// progress orders observations; a lower value than one already seen is stale.
func progress(kind entity.StateKind, turns uint8) int {
	rank := 2
	switch kind {
	case entity.StateUnaccepted:
		rank = 0
	case entity.StateOngoing:
		rank = 1
	}

	return rank*(entity.MaxTurns+1) + int(turns)
}

func observedProgress(observation *repository.Observation) int {
	kind := entity.StateOver
	switch observation.State {
	case entity.StateUnaccepted.String():
		kind = entity.StateUnaccepted
	case entity.StateOngoing.String():
		kind = entity.StateOngoing
	}

	return progress(kind, observation.Turns)
}
