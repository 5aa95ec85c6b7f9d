package console

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/session"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/tictactoe"
)

// ReadMove shows the board and asks for the local move.
func (that *Console) ReadMove(ctx context.Context, board *entity.Board) (string, error) {
	that.printf("\n%s\n", tictactoe.RenderBoard(board))

	return that.prompt(ctx, "Your move (row col): ")
}

func (that *Console) Reject(err error) {
	that.printf("Invalid move: %v\n", err)
}

func (that *Console) Opened(state session.State, game *entity.Game) {
	switch state {
	case session.AwaitingAcceptance:
		that.printf("Waiting for the opponent to accept...\n")
	case session.RemoteMove:
		that.printf("Waiting for the opponent's move...\n")
	default:
		that.printBoardIfOver(state, game)
	}
}

func (that *Console) Transitioned(from, to session.State, game *entity.Game) {
	switch to {
	case session.RemoteMove:
		if from == session.LocalMove {
			that.printf("Move sent.\n")
		}
		that.printf("Waiting for the opponent's move...\n")
	case session.LocalMove:
		if from == session.AwaitingAcceptance {
			that.printf("The opponent accepted.\n")
		}
	default:
		that.printBoardIfOver(to, game)
	}
}

func (that *Console) printBoardIfOver(state session.State, game *entity.Game) {
	if state.Terminal() && game != nil {
		that.printf("\n%s\n", tictactoe.RenderBoard(&game.Board))
	}
}

func (that *Console) printOutcome(outcome entity.Outcome) {
	switch outcome {
	case entity.OutcomeWon:
		that.printf("You won!\n")
	case entity.OutcomeLost:
		that.printf("You lost.\n")
	case entity.OutcomeDraw:
		that.printf("Draw.\n")
	}
}

func (that *Console) printGame(view *entity.PlayableGame) {
	status := "ongoing"
	if view.Unaccepted {
		status = "waiting for acceptance"
	}

	that.printf("%s vs %s, stake %s of %s, %d turns left (%s)\n",
		view.Address, view.Opponent, view.StakeAmount, view.StakeMint, view.TurnsRemaining, status)
}
