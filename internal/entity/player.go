package entity

// Slot is a player's index in Game.Players.
type Slot int

const (
	SlotCreator  Slot = 0
	SlotAcceptor Slot = 1
)

// SlotToMove is the single source of the parity rule: even turn counts belong to
// the creator, odd ones to the acceptor. Nothing stores the current player.
func SlotToMove(turns uint8) Slot {
	return Slot(turns % 2)
}

func (that Slot) Other() Slot {
	return 1 - that
}

func (that Slot) String() string {
	switch that {
	case SlotCreator:
		return "creator"
	case SlotAcceptor:
		return "acceptor"
	default:
		return "unknown"
	}
}

type Outcome string

const (
	OutcomeWon  Outcome = "won"
	OutcomeLost Outcome = "lost"
	OutcomeDraw Outcome = "draw"
)
