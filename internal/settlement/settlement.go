// Package settlement decides how escrowed stake leaves a finished or cancelled game.
//
// Only the client in the creator slot submits the settlement transaction. The
// acceptor observes it passively. This is a protocol rule, not an omission.
package settlement

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/entity"
)

type Kind string

const (
	WinnerTakesStake Kind = "winner-takes-stake"
	SplitRefund      Kind = "split-refund"
	CancelRefund     Kind = "cancel-refund"
)

// Targets are the owners whose token accounts receive the escrow. Exactly one of
// Single and Both must be set.
type Targets struct {
	Single *entity.Address
	Both   *[2]entity.Address
}

func (that Targets) Validate() error {
	switch {
	case that.Single != nil && that.Both != nil:
		return fmt.Errorf("%w: both a single destination and a split were given", apperror.ErrSettlementTargets)
	case that.Single == nil && that.Both == nil:
		return fmt.Errorf("%w: no destination given", apperror.ErrSettlementTargets)
	default:
		return nil
	}
}

// Owners lists the destination owners in slot order.
func (that Targets) Owners() []entity.Address {
	if that.Single != nil {
		return []entity.Address{*that.Single}
	}

	if that.Both != nil {
		return []entity.Address{that.Both[entity.SlotCreator], that.Both[entity.SlotAcceptor]}
	}

	return nil
}

type Plan struct {
	Kind    Kind
	Outcome entity.Outcome
	Targets Targets
	// Submitter is the only identity allowed to send the settlement.
	Submitter entity.Address
}

func (that *Plan) SubmittedBy(identity entity.Address) bool {
	return that.Submitter == identity
}

// Resolve maps a terminal account to the local outcome and its disbursement.
// Any state other than over or draw is a protocol inconsistency.
func Resolve(game *entity.Game, identity entity.Address) (*Plan, error) {
	if _, err := game.SlotOf(identity); err != nil {
		return nil, err
	}

	plan := &Plan{Submitter: game.Creator()}

	switch game.State.Kind {
	case entity.StateOver:
		winner := game.State.Winner
		if _, err := game.SlotOf(winner); err != nil {
			return nil, apperror.Inconsistent("winner %s is not a player", winner)
		}

		plan.Kind = WinnerTakesStake
		plan.Targets = Targets{Single: &winner}
		plan.Outcome = entity.OutcomeLost
		if winner == identity {
			plan.Outcome = entity.OutcomeWon
		}
	case entity.StateDraw:
		players := game.Players
		plan.Kind = SplitRefund
		plan.Outcome = entity.OutcomeDraw
		plan.Targets = Targets{Both: &players}
	default:
		return nil, apperror.Inconsistent("terminal game has state %s", game.State.Kind)
	}

	return plan, nil
}

// ResolveCancel refunds the creator of a game nobody accepted.
func ResolveCancel(game *entity.Game, identity entity.Address) (*Plan, error) {
	if !game.IsUnaccepted() {
		return nil, apperror.Inconsistent("cannot cancel a game in state %s", game.State.Kind)
	}

	creator := game.Creator()
	if identity != creator {
		return nil, fmt.Errorf("%w: only the creator can cancel", apperror.ErrNotAPlayer)
	}

	return &Plan{
		Kind:      CancelRefund,
		Targets:   Targets{Single: &creator},
		Submitter: creator,
	}, nil
}
