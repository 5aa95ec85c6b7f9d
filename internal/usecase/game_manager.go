package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/codec"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/ledger"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/repository"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/service"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/session"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/settlement"
)

type discovery interface {
	ListPlayable(ctx context.Context, identity entity.Address) ([]*service.DiscoveredGame, error)
	ListUnaccepted(ctx context.Context, identity entity.Address, role service.Role) ([]*service.DiscoveredGame, error)
}

type tokens interface {
	Decimals(ctx context.Context, mint entity.Address) (uint8, error)
	Holdings(ctx context.Context, mint, owner entity.Address) (entity.Address, uint64, error)
}

type instructions interface {
	Create(user, gameAccount, opponent, mint, userTokenAccount entity.Address, stakeAmount uint64) (ledger.Instruction, error)
	Accept(user, gameAccount, mint, userTokenAccount entity.Address) (ledger.Instruction, error)
	Cancel(creator, gameAccount, mint entity.Address, targets settlement.Targets) (ledger.Instruction, error)
	Close(creator, gameAccount, mint entity.Address, targets settlement.Targets) (ledger.Instruction, error)
}

type sessionRunner interface {
	Run(ctx context.Context, player ledger.Signer, address entity.Address) (*session.Result, error)
}

type gameJournal interface {
	DeleteByAddress(ctx context.Context, address entity.Address) error
}

// Holdings is the local player's position in a stake mint.
type Holdings struct {
	Account  entity.Address
	Balance  uint64
	Decimals uint8
}

func (that *Holdings) Display() string {
	return entity.FormatAmount(that.Balance, that.Decimals)
}

// Report is what a finished game left behind locally.
type Report struct {
	Result *session.Result
	// Signature of the settlement transaction; empty when the opponent settles.
	Signature string
}

// GameManager runs every game flow for one local player.
type GameManager struct {
	logger *slog.Logger
	player ledger.Signer

	discovery    discovery
	tokens       tokens
	instructions instructions
	runner       sessionRunner
	store        ledger.AccountStore
	submitter    ledger.Submitter
	journal      gameJournal
}

func NewGameManager(
	logger *slog.Logger,
	player ledger.Signer,
	discovery discovery,
	tokens tokens,
	instructions instructions,
	runner sessionRunner,
	store ledger.AccountStore,
	submitter ledger.Submitter,
	journal gameJournal,
) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		player: player,

		discovery:    discovery,
		tokens:       tokens,
		instructions: instructions,
		runner:       runner,
		store:        store,
		submitter:    submitter,
		journal:      journal,
	}
}

func (that *GameManager) Identity() entity.Address {
	return that.player.Address()
}

// Playable lists games the player can resume. An empty list is not an error.
func (that *GameManager) Playable(ctx context.Context) ([]*service.DiscoveredGame, error) {
	games, err := that.discovery.ListPlayable(ctx, that.Identity())
	if err != nil {
		return nil, fmt.Errorf("failed to list playable games: %w", err)
	}

	return games, nil
}

// Invitations lists games waiting for the player to accept them.
func (that *GameManager) Invitations(ctx context.Context) ([]*service.DiscoveredGame, error) {
	games, err := that.discovery.ListUnaccepted(ctx, that.Identity(), service.RoleAcceptor)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}

	return games, nil
}

// Cancellable lists games the player created that nobody accepted yet.
func (that *GameManager) Cancellable(ctx context.Context) ([]*service.DiscoveredGame, error) {
	games, err := that.discovery.ListUnaccepted(ctx, that.Identity(), service.RoleCreator)
	if err != nil {
		return nil, fmt.Errorf("failed to list cancellable games: %w", err)
	}

	return games, nil
}

func (that *GameManager) Holdings(ctx context.Context, mint entity.Address) (*Holdings, error) {
	decimals, err := that.tokens.Decimals(ctx, mint)
	if err != nil {
		return nil, fmt.Errorf("failed to get mint decimals: %w", err)
	}

	account, balance, err := that.tokens.Holdings(ctx, mint, that.Identity())
	if err != nil {
		return nil, fmt.Errorf("failed to get token holdings: %w", err)
	}

	return &Holdings{Account: account, Balance: balance, Decimals: decimals}, nil
}

// Create stakes a human readable amount of mint against opponent and returns the
// new game's address. The game account is a fresh keypair that co-signs.
func (that *GameManager) Create(ctx context.Context, opponent, mint entity.Address, stake string) (entity.Address, error) {
	log := that.logger.With("method", "Create")

	if opponent.IsZero() || opponent == that.Identity() {
		return entity.Address{}, fmt.Errorf("%w: cannot play against %s", apperror.ErrInvalidAddress, opponent)
	}

	holdings, err := that.Holdings(ctx, mint)
	if err != nil {
		return entity.Address{}, err
	}

	if holdings.Balance == 0 {
		return entity.Address{}, fmt.Errorf("%w: no tokens of mint %s", apperror.ErrInsufficientBalance, mint)
	}

	amount, err := entity.ParseAmount(stake, holdings.Decimals)
	if err != nil {
		return entity.Address{}, err
	}

	if amount == 0 {
		return entity.Address{}, fmt.Errorf("%w: stake must be positive", apperror.ErrInvalidAmount)
	}

	if amount > holdings.Balance {
		return entity.Address{}, fmt.Errorf("%w: stake %s exceeds balance %s",
			apperror.ErrInsufficientBalance, stake, holdings.Display())
	}

	gameAccount, err := that.submitter.NewSigner()
	if err != nil {
		return entity.Address{}, fmt.Errorf("failed to create game account: %w", err)
	}

	ix, err := that.instructions.Create(that.Identity(), gameAccount.Address(), opponent, mint, holdings.Account, amount)
	if err != nil {
		return entity.Address{}, fmt.Errorf("failed to build create instruction: %w", err)
	}

	signature, err := that.submitter.Submit(ctx, ix, that.player, gameAccount)
	if err != nil {
		return entity.Address{}, apperror.Remote("create game", err)
	}

	log.Info("game created", "game", gameAccount.Address().String(), "stake", amount, "signature", signature)

	return gameAccount.Address(), nil
}

// Accept escrows the player's matching stake into a pending game.
func (that *GameManager) Accept(ctx context.Context, address entity.Address) error {
	log := that.logger.With("method", "Accept")

	game, err := that.fetchGame(ctx, address)
	if err != nil {
		return err
	}

	if !game.IsUnaccepted() {
		return fmt.Errorf("%w: game %s is %s", apperror.ErrInvalidSelection, address, game.State.Kind)
	}

	if slot, err := game.SlotOf(that.Identity()); err != nil || slot != entity.SlotAcceptor {
		return fmt.Errorf("%w: not invited to game %s", apperror.ErrNotAPlayer, address)
	}

	holdings, err := that.Holdings(ctx, game.StakeMint)
	if err != nil {
		return err
	}

	if holdings.Balance < game.StakeAmount {
		return fmt.Errorf("%w: stake %s exceeds balance %s", apperror.ErrInsufficientBalance,
			entity.FormatAmount(game.StakeAmount, holdings.Decimals), holdings.Display())
	}

	ix, err := that.instructions.Accept(that.Identity(), address, game.StakeMint, holdings.Account)
	if err != nil {
		return fmt.Errorf("failed to build accept instruction: %w", err)
	}

	signature, err := that.submitter.Submit(ctx, ix, that.player)
	if err != nil {
		return apperror.Remote("accept game", err)
	}

	log.Info("game accepted", "game", address.String(), "signature", signature)

	return nil
}

// Cancel refunds the creator of a game nobody accepted and closes it.
func (that *GameManager) Cancel(ctx context.Context, address entity.Address) (string, error) {
	log := that.logger.With("method", "Cancel")

	game, err := that.fetchGame(ctx, address)
	if err != nil {
		return "", err
	}

	plan, err := settlement.ResolveCancel(game, that.Identity())
	if err != nil {
		return "", err
	}

	ix, err := that.instructions.Cancel(that.Identity(), address, game.StakeMint, plan.Targets)
	if err != nil {
		return "", fmt.Errorf("failed to build cancel instruction: %w", err)
	}

	signature, err := that.submitter.Submit(ctx, ix, that.player)
	if err != nil {
		return "", apperror.Remote("cancel game", err)
	}

	log.Info("game cancelled", "game", address.String(), "signature", signature)
	that.forget(ctx, address)

	return signature, nil
}

// Play drives the game to its end and settles it when this player is the creator.
// An account closed mid-session returns apperror.ErrAccountClosed: the game ended
// and the creator already closed it.
func (that *GameManager) Play(ctx context.Context, address entity.Address) (*Report, error) {
	result, err := that.runner.Run(ctx, that.player, address)
	if errors.Is(err, apperror.ErrAccountClosed) {
		// the creator settled or cancelled before our next poll
		that.forget(ctx, address)
	}

	if err != nil {
		return nil, fmt.Errorf("game %s: %w", address, err)
	}

	signature, err := that.Settle(ctx, address, result)
	if err != nil {
		return &Report{Result: result}, err
	}

	return &Report{Result: result, Signature: signature}, nil
}

// Settle submits the closing disbursement. Only the creator submits it; the
// acceptor leaves it to the creator's client and gets an empty signature.
func (that *GameManager) Settle(ctx context.Context, address entity.Address, result *session.Result) (string, error) {
	log := that.logger.With("method", "Settle", "game", address.String())

	if result == nil || result.Plan == nil {
		return "", apperror.Inconsistent("game %s has no settlement plan", address)
	}

	if !result.Plan.SubmittedBy(that.Identity()) {
		log.Info("settlement left to the creator", "outcome", string(result.Outcome))
		that.forget(ctx, address)

		return "", nil
	}

	ix, err := that.instructions.Close(that.Identity(), address, result.Game.StakeMint, result.Plan.Targets)
	if err != nil {
		return "", fmt.Errorf("failed to build close instruction: %w", err)
	}

	signature, err := that.submitter.Submit(ctx, ix, that.player)
	if err != nil {
		return "", apperror.Remote("settle game", err)
	}

	log.Info("game settled", "outcome", string(result.Outcome), "signature", signature)
	that.forget(ctx, address)

	return signature, nil
}

func (that *GameManager) fetchGame(ctx context.Context, address entity.Address) (*entity.Game, error) {
	raw, err := that.store.GetAccount(ctx, address)
	if errors.Is(err, apperror.ErrAccountClosed) {
		return nil, fmt.Errorf("game %s: %w", address, err)
	}

	if err != nil {
		return nil, apperror.Remote("fetch game account", err)
	}

	game, err := codec.DecodeGame(raw)
	if err != nil {
		return nil, fmt.Errorf("game %s: %w", address, err)
	}

	return game, nil
}

func (that *GameManager) forget(ctx context.Context, address entity.Address) {
	if err := that.journal.DeleteByAddress(ctx, address); err != nil && !errors.Is(err, repository.ErrGameNotFound) {
		that.logger.Warn("could not clear turn journal", "game", address.String(), "error", err)
	}
}
