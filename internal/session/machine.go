// Package session drives one game from its current ledger state to completion by
// polling the game account. Polling is the only way to learn about the opponent:
// there are no push notifications.
//
// Every Step suspends in at most one place: waiting for local input, sleeping for
// the poll interval, or waiting for a submission to be confirmed. All of them
// honor context cancellation.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/codec"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/ledger"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/repository"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/settlement"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/tictactoe"
)

const DefaultPollInterval = 2 * time.Second

// MoveInput supplies the local player's moves.
type MoveInput interface {
	// ReadMove shows the board and blocks for a raw "row col" line.
	ReadMove(ctx context.Context, board *entity.Board) (string, error)
	// Reject reports an invalid move. The turn is not consumed.
	Reject(err error)
}

// Observer follows a session. Opened reports the initial state once, then every
// change is reported through Transitioned.
type Observer interface {
	Opened(state State, game *entity.Game)
	Transitioned(from, to State, game *entity.Game)
}

type journal interface {
	Save(ctx context.Context, address entity.Address, observation *repository.Observation) error
	GetByAddress(ctx context.Context, address entity.Address) (*repository.Observation, error)
}

type playBuilder interface {
	Play(user, gameAccount entity.Address, row, col uint8) ledger.Instruction
}

type Config struct {
	PollInterval time.Duration
	// Timeout bounds a whole Run. Zero polls without limit.
	Timeout time.Duration
}

type Machine struct {
	logger    *slog.Logger
	store     ledger.AccountStore
	submitter ledger.Submitter
	builder   playBuilder
	journal   journal
	input     MoveInput
	observer  Observer
	config    Config
}

func New(
	logger *slog.Logger,
	store ledger.AccountStore,
	submitter ledger.Submitter,
	builder playBuilder,
	journal journal,
	input MoveInput,
	observer Observer,
	config Config,
) *Machine {
	if config.PollInterval <= 0 {
		config.PollInterval = DefaultPollInterval
	}

	return &Machine{
		logger:    logger.With("component", "session"),
		store:     store,
		submitter: submitter,
		builder:   builder,
		journal:   journal,
		input:     input,
		observer:  observer,
		config:    config,
	}
}

type Result struct {
	State   State
	Outcome entity.Outcome
	Game    *entity.Game
	Plan    *settlement.Plan
}

// Run plays the game at address until a terminal state is observed.
func (that *Machine) Run(ctx context.Context, player ledger.Signer, address entity.Address) (*Result, error) {
	if that.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, that.config.Timeout)
		defer cancel()
	}

	session, err := that.Open(ctx, player, address)
	if err != nil {
		return nil, err
	}

	for !session.State().Terminal() {
		if err = session.Step(ctx); err != nil {
			return nil, err
		}
	}

	return session.Result(), nil
}

// Open fetches the account and picks the initial state.
func (that *Machine) Open(ctx context.Context, player ledger.Signer, address entity.Address) (*Session, error) {
	session := &Session{
		machine: that,
		player:  player,
		address: address,
		logger:  that.logger.With("game", address.String()),
		saved:   -1,
	}

	if observation, err := that.journal.GetByAddress(ctx, address); err == nil {
		session.seen = observedProgress(observation)
		session.saved = session.seen
	} else if !errors.Is(err, repository.ErrGameNotFound) {
		session.logger.Warn("could not read turn journal", "error", err)
	}

	game, err := session.first(ctx)
	if err != nil {
		return nil, err
	}

	if session.state.Terminal() {
		return session, nil
	}

	if session.slot, err = game.SlotOf(player.Address()); err != nil {
		return nil, err
	}

	session.game = game
	session.record(ctx, game)

	if game.IsUnaccepted() {
		session.transition(AwaitingAcceptance)
	} else {
		session.transition(turnState(game, session.slot))
	}

	return session, nil
}

// first is the opening read. A read behind the journal is stale and is retried
// after the poll interval, like any other poll.
func (that *Session) first(ctx context.Context) (*entity.Game, error) {
	for {
		raw, err := that.fetch(ctx)
		if err != nil {
			return nil, err
		}

		if !codec.IsValidOngoingGame(raw) {
			return nil, that.finish(raw)
		}

		game, err := codec.DecodeGame(raw)
		if err != nil {
			return nil, fmt.Errorf("game %s cannot be played: %w", that.address, err)
		}

		if progress(game.State.Kind, game.Turns) >= that.seen {
			return game, nil
		}

		that.logger.Debug("ignoring stale opening read", "turns", game.Turns)

		if err = that.wait(ctx); err != nil {
			return nil, err
		}
	}
}

// Session is one game's synchronization loop. It is not safe for concurrent use;
// separate sessions share nothing.
type Session struct {
	machine *Machine
	logger  *slog.Logger
	player  ledger.Signer
	address entity.Address
	slot    entity.Slot
	state   State
	game    *entity.Game
	plan    *settlement.Plan
	opened  bool

	// seen is the furthest progress known for this game, here or in an earlier run,
	// including our own submitted move; saved is the furthest progress journaled.
	seen  int
	saved int
}

func (that *Session) State() State {
	return that.state
}

func (that *Session) Game() *entity.Game {
	return that.game
}

func (that *Session) Result() *Result {
	result := &Result{State: that.state, Game: that.game, Plan: that.plan}
	if that.plan != nil {
		result.Outcome = that.plan.Outcome
	}

	return result
}

// Step performs one poll-and-transition.
func (that *Session) Step(ctx context.Context) error {
	switch that.state {
	case AwaitingAcceptance:
		return that.awaitAcceptance(ctx)
	case LocalMove:
		return that.localMove(ctx)
	case RemoteMove:
		return that.remoteMove(ctx)
	default:
		return nil
	}
}

func (that *Session) awaitAcceptance(ctx context.Context) error {
	game, err := that.poll(ctx)
	if err != nil || that.state.Terminal() {
		return err
	}

	if game == nil || game.IsUnaccepted() {
		return that.wait(ctx)
	}

	that.transition(turnState(game, that.slot))

	return nil
}

func (that *Session) localMove(ctx context.Context) error {
	line, err := that.machine.input.ReadMove(ctx, &that.game.Board)
	if err != nil {
		return fmt.Errorf("failed to read move: %w", err)
	}

	move, err := tictactoe.ReadMove(&that.game.Board, line)
	if err != nil {
		that.machine.input.Reject(err)
		return nil
	}

	ix := that.machine.builder.Play(that.player.Address(), that.address, move.Row, move.Col)

	signature, err := that.machine.submitter.Submit(ctx, ix, that.player)
	if err != nil {
		return apperror.Remote("submit play", err)
	}

	that.logger.Info("move submitted", "row", move.Row, "col", move.Col, "signature", signature)

	// the opponent moves next; the following poll doubles as the post-submission check,
	// and a read that does not include our move yet is stale
	if expected := progress(that.game.State.Kind, that.game.Turns+1); expected > that.seen {
		that.seen = expected
	}
	that.transition(RemoteMove)

	return nil
}

func (that *Session) remoteMove(ctx context.Context) error {
	game, err := that.poll(ctx)
	if err != nil || that.state.Terminal() {
		return err
	}

	if game != nil && turnState(game, that.slot) == LocalMove {
		that.transition(LocalMove)
		return nil
	}

	return that.wait(ctx)
}

// poll fetches the account once. An account that is no longer a valid ongoing
// game finishes the session. A nil game with a nil error means the read brought
// nothing usable: it was stale or caught the account mid-write.
func (that *Session) poll(ctx context.Context) (*entity.Game, error) {
	raw, err := that.fetch(ctx)
	if err != nil {
		return nil, err
	}

	if !codec.IsValidOngoingGame(raw) {
		return nil, that.finish(raw)
	}

	game, err := codec.DecodeGame(raw)
	if err != nil {
		that.logger.Warn("undecodable game account", "error", err)
		return nil, nil
	}

	if progress(game.State.Kind, game.Turns) < that.seen {
		that.logger.Debug("ignoring stale read", "turns", game.Turns)
		return nil, nil
	}

	that.game = game
	that.record(ctx, game)

	that.logger.Debug("polled", "state", game.State.Kind.String(), "turns", game.Turns)

	return game, nil
}

func (that *Session) fetch(ctx context.Context) ([]byte, error) {
	raw, err := that.machine.store.GetAccount(ctx, that.address)
	if errors.Is(err, apperror.ErrAccountClosed) {
		return nil, fmt.Errorf("game %s: %w", that.address, err)
	}

	if err != nil {
		return nil, apperror.Remote("fetch game account", err)
	}

	return raw, nil
}

// finish resolves the terminal sub-state from an account that is no longer a
// valid ongoing game.
func (that *Session) finish(raw []byte) error {
	game, err := codec.DecodeGame(raw)
	if err != nil {
		return apperror.Inconsistent("terminal game account does not decode: %v", err)
	}

	if that.slot, err = game.SlotOf(that.player.Address()); err != nil {
		return err
	}

	plan, err := settlement.Resolve(game, that.player.Address())
	if err != nil {
		return err
	}

	that.game = game
	that.plan = plan
	that.transition(terminalState(plan.Outcome))

	return nil
}

func (that *Session) wait(ctx context.Context) error {
	timer := time.NewTimer(that.machine.config.PollInterval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("stopped waiting in state %s: %w", that.state, ctx.Err())
	case <-timer.C:
		return nil
	}
}

func (that *Session) transition(to State) {
	from := that.state
	that.state = to

	turns := -1
	if that.game != nil {
		turns = int(that.game.Turns)
	}

	observer := that.machine.observer

	if !that.opened {
		that.opened = true
		that.logger.Info("session opened", "state", to.String(), "slot", that.slot.String(), "turns", turns)

		if observer != nil {
			observer.Opened(to, that.game)
		}
		return
	}

	that.logger.Info("state transition", "from", from.String(), "to", to.String(), "turns", turns)

	if observer != nil {
		observer.Transitioned(from, to, that.game)
	}
}

func (that *Session) record(ctx context.Context, game *entity.Game) {
	observed := progress(game.State.Kind, game.Turns)
	if observed > that.seen {
		that.seen = observed
	}

	if observed <= that.saved {
		return
	}

	that.saved = observed

	observation := &repository.Observation{
		Turns:      game.Turns,
		State:      game.State.Kind.String(),
		ObservedAt: time.Now().UTC(),
	}

	if err := that.machine.journal.Save(ctx, that.address, observation); err != nil {
		that.logger.Warn("could not write turn journal", "error", err)
	}
}
