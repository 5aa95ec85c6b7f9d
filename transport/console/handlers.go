package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/service"
)

func (that *Console) handleResume(ctx context.Context) error {
	games, err := that.manager.Playable(ctx)
	if err != nil {
		return err
	}

	game, err := that.choose(ctx, games, "Resume this game?")
	if err != nil || game == nil {
		return err
	}

	return that.play(ctx, game.View.Address)
}

func (that *Console) handleCreate(ctx context.Context) error {
	log := that.logger.With("method", "handleCreate")

	opponent, err := that.promptAddress(ctx, "Opponent address: ")
	if err != nil {
		return err
	}

	mint, err := that.promptAddress(ctx, "Stake mint address: ")
	if err != nil {
		return err
	}

	holdings, err := that.manager.Holdings(ctx, mint)
	if err != nil {
		return err
	}

	that.printf("Your balance: %s\n", holdings.Display())

	stake, err := that.prompt(ctx, "Stake amount: ")
	if err != nil {
		return err
	}

	address, err := that.manager.Create(ctx, opponent, mint, stake)
	if err != nil {
		return err
	}

	log.Info("created game", "game", address.String())
	that.printf("Created game %s\n", address)

	return that.play(ctx, address)
}

func (that *Console) handleAccept(ctx context.Context) error {
	games, err := that.manager.Invitations(ctx)
	if err != nil {
		return err
	}

	game, err := that.choose(ctx, games, "Accept this game?")
	if err != nil || game == nil {
		return err
	}

	address := game.View.Address
	if err = that.manager.Accept(ctx, address); err != nil {
		return err
	}

	that.printf("Accepted game %s\n", address)

	return that.play(ctx, address)
}

func (that *Console) handleCancel(ctx context.Context) error {
	games, err := that.manager.Cancellable(ctx)
	if err != nil {
		return err
	}

	game, err := that.choose(ctx, games, "Cancel this game?")
	if err != nil || game == nil {
		return err
	}

	address := game.View.Address
	signature, err := that.manager.Cancel(ctx, address)
	if err != nil {
		return err
	}

	that.printf("Cancelled game %s, stake refunded (%s)\n", address, signature)

	return nil
}

func (that *Console) play(ctx context.Context, address entity.Address) error {
	report, err := that.manager.Play(ctx, address)
	if errors.Is(err, apperror.ErrAccountClosed) {
		that.printf("Game %s was closed on the ledger: it ended and the creator settled it, or it was cancelled\n", address)
		return nil
	}

	if report != nil {
		that.printOutcome(report.Result.Outcome)
	}

	if err != nil {
		return err
	}

	if report.Signature != "" {
		that.printf("Stake settled (%s)\n", report.Signature)
	} else {
		that.printf("The game creator settles the stake\n")
	}

	return nil
}

// choose confirms a single game or asks for a 1-based index among several. A nil
// game with a nil error means the player declined.
func (that *Console) choose(ctx context.Context, games []*service.DiscoveredGame, question string) (*service.DiscoveredGame, error) {
	switch len(games) {
	case 0:
		that.printf("%s\n", apperror.ErrNoGames)
		return nil, nil
	case 1:
		that.printGame(games[0].View)

		ok, err := that.confirm(ctx, question)
		if err != nil || !ok {
			return nil, err
		}

		return games[0], nil
	}

	for i, game := range games {
		that.printf("%d. ", i+1)
		that.printGame(game.View)
	}

	for {
		answer, err := that.prompt(ctx, fmt.Sprintf("Select a game [1-%d]: ", len(games)))
		if err != nil {
			return nil, err
		}

		index, err := strconv.Atoi(answer)
		if err == nil && index >= 1 && index <= len(games) {
			return games[index-1], nil
		}

		that.printf("%v: %q\n", apperror.ErrInvalidSelection, answer)
	}
}

func (that *Console) promptAddress(ctx context.Context, label string) (entity.Address, error) {
	for {
		answer, err := that.prompt(ctx, label)
		if err != nil {
			return entity.Address{}, err
		}

		address, err := entity.ParseAddress(answer)
		if err == nil {
			return address, nil
		}

		that.printf("%v\n", err)
	}
}
