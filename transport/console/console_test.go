package console

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/codec"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/ledger"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/repository"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/service"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/session"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/usecase"
	mockedConsole "github.com/rocketscienceinc/tictactoe-ledger-client/mocks/console"
	mockedLedger "github.com/rocketscienceinc/tictactoe-ledger-client/mocks/ledger"
	"github.com/rocketscienceinc/tictactoe-ledger-client/testing/suite"
)

var (
	me       = entity.Address{1}
	opponent = entity.Address{2}
	mint     = entity.Address{7}

	errBoom = errors.New("boom")
)

func newConsole(t *testing.T, input string) (*Console, *mockedConsole.MockgameManager, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	manager := mockedConsole.NewMockgameManager(t)
	manager.EXPECT().Identity().Return(me).Maybe()

	c := New(suite.Logger(), strings.NewReader(input), out)
	c.Attach(manager)

	return c, manager, out
}

func discovered(address byte, unaccepted bool) *service.DiscoveredGame {
	return &service.DiscoveredGame{
		View: &entity.PlayableGame{
			Address:        entity.Address{address},
			Opponent:       opponent,
			StakeMint:      mint,
			StakeAmount:    "1.5",
			TurnsRemaining: 9,
			Unaccepted:     unaccepted,
		},
	}
}

func won() *usecase.Report {
	return &usecase.Report{
		Result:    &session.Result{State: session.Won, Outcome: entity.OutcomeWon},
		Signature: "close-sig",
	}
}

func TestConsole_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("Quits on q", func(t *testing.T) {
		c, _, out := newConsole(t, "q\n")

		require.NoError(t, c.Run(ctx))
		assert.Contains(t, out.String(), "Playing as "+me.String())
	})

	t.Run("End of input ends the menu", func(t *testing.T) {
		c, _, _ := newConsole(t, "")

		assert.NoError(t, c.Run(ctx))
	})

	t.Run("Unknown options are reported", func(t *testing.T) {
		c, _, out := newConsole(t, "9\nq\n")

		require.NoError(t, c.Run(ctx))
		assert.Contains(t, out.String(), `Unknown option "9"`)
	})

	t.Run("Resumes the only game after confirmation", func(t *testing.T) {
		// Given: one playable game
		c, manager, out := newConsole(t, "1\nmaybe\ny\nq\n")
		manager.EXPECT().Playable(mock.Anything).Return([]*service.DiscoveredGame{discovered(10, false)}, nil).Once()
		manager.EXPECT().Play(mock.Anything, entity.Address{10}).Return(won(), nil).Once()

		// When: choosing resume and answering yes after an invalid answer
		require.NoError(t, c.Run(ctx))

		// Then: the game is played and the outcome shown
		assert.Contains(t, out.String(), "You won!")
		assert.Contains(t, out.String(), "Stake settled (close-sig)")
	})

	t.Run("Declining the only game returns to the menu", func(t *testing.T) {
		c, manager, _ := newConsole(t, "1\nn\nq\n")
		manager.EXPECT().Playable(mock.Anything).Return([]*service.DiscoveredGame{discovered(10, false)}, nil).Once()

		require.NoError(t, c.Run(ctx))
	})

	t.Run("Selects among several games by 1-based index", func(t *testing.T) {
		c, manager, out := newConsole(t, "1\n0\n3\n2\nq\n")
		manager.EXPECT().Playable(mock.Anything).
			Return([]*service.DiscoveredGame{discovered(10, false), discovered(11, true)}, nil).
			Once()
		manager.EXPECT().Play(mock.Anything, entity.Address{11}).Return(won(), nil).Once()

		require.NoError(t, c.Run(ctx))
		assert.Contains(t, out.String(), "invalid selection")
		assert.Contains(t, out.String(), "waiting for acceptance")
	})

	t.Run("No games is reported, not failed", func(t *testing.T) {
		c, manager, out := newConsole(t, "1\nq\n")
		manager.EXPECT().Playable(mock.Anything).Return(nil, nil).Once()

		require.NoError(t, c.Run(ctx))
		assert.Contains(t, out.String(), "no ongoing or pending games")
	})

	t.Run("Action errors are shown and the menu continues", func(t *testing.T) {
		c, manager, out := newConsole(t, "3\nq\n")
		manager.EXPECT().Invitations(mock.Anything).Return(nil, errBoom).Once()

		require.NoError(t, c.Run(ctx))
		assert.Contains(t, out.String(), "Error: boom")
	})

	t.Run("Creates a game and plays it", func(t *testing.T) {
		// Given: a player answering the create prompts, first with a bad address
		input := strings.Join([]string{"2", "not-an-address", opponent.String(), mint.String(), "1.5", "q"}, "\n") + "\n"
		c, manager, out := newConsole(t, input)
		created := entity.Address{20}

		manager.EXPECT().Holdings(mock.Anything, mint).Return(&usecase.Holdings{Balance: 250, Decimals: 2}, nil).Once()
		manager.EXPECT().Create(mock.Anything, opponent, mint, "1.5").Return(created, nil).Once()
		manager.EXPECT().Play(mock.Anything, created).
			Return(&usecase.Report{Result: &session.Result{State: session.Drawn, Outcome: entity.OutcomeDraw}}, nil).
			Once()

		// When: running the menu
		require.NoError(t, c.Run(ctx))

		// Then: the balance, the new game and the outcome are shown
		assert.Contains(t, out.String(), "Your balance: 2.5")
		assert.Contains(t, out.String(), "Created game "+created.String())
		assert.Contains(t, out.String(), "Draw.")
		assert.Contains(t, out.String(), "The game creator settles the stake")
	})

	t.Run("Accepts an invitation and plays it", func(t *testing.T) {
		c, manager, _ := newConsole(t, "3\ny\nq\n")
		manager.EXPECT().Invitations(mock.Anything).Return([]*service.DiscoveredGame{discovered(30, true)}, nil).Once()
		manager.EXPECT().Accept(mock.Anything, entity.Address{30}).Return(nil).Once()
		manager.EXPECT().Play(mock.Anything, entity.Address{30}).Return(won(), nil).Once()

		require.NoError(t, c.Run(ctx))
	})

	t.Run("Cancels a pending game", func(t *testing.T) {
		c, manager, out := newConsole(t, "4\ny\nq\n")
		manager.EXPECT().Cancellable(mock.Anything).Return([]*service.DiscoveredGame{discovered(40, true)}, nil).Once()
		manager.EXPECT().Cancel(mock.Anything, entity.Address{40}).Return("cancel-sig", nil).Once()

		require.NoError(t, c.Run(ctx))
		assert.Contains(t, out.String(), "stake refunded (cancel-sig)")
	})

	t.Run("Game closed by the creator is an ending, not an error", func(t *testing.T) {
		// Given: the creator closed the game while we were waiting
		c, manager, out := newConsole(t, "1\ny\nq\n")
		manager.EXPECT().Playable(mock.Anything).Return([]*service.DiscoveredGame{discovered(10, false)}, nil).Once()
		manager.EXPECT().Play(mock.Anything, entity.Address{10}).
			Return(nil, fmt.Errorf("game: %w", apperror.ErrAccountClosed)).
			Once()

		// When: resuming it
		require.NoError(t, c.Run(ctx))

		// Then: the ending is explained instead of printed as a failure
		assert.Contains(t, out.String(), "was closed on the ledger")
		assert.NotContains(t, out.String(), "Error:")
	})

	t.Run("Cancelled context stops the menu", func(t *testing.T) {
		// Given: input that never ends
		reader, writer := io.Pipe()
		defer writer.Close()

		manager := mockedConsole.NewMockgameManager(t)
		manager.EXPECT().Identity().Return(me).Once()
		c := New(suite.Logger(), reader, io.Discard)
		c.Attach(manager)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		// When: the menu prompts under a cancelled context
		err := c.Run(cancelled)

		// Then: the cancellation is returned
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestConsole_MoveInput(t *testing.T) {
	ctx := context.Background()

	t.Run("Shows the board before asking for a move", func(t *testing.T) {
		c, _, out := newConsole(t, " 1 2 \n")
		board := entity.Board{}
		board[0][0] = entity.TileX

		line, err := c.ReadMove(ctx, &board)

		require.NoError(t, err)
		assert.Equal(t, "1 2", line)
		assert.Contains(t, out.String(), " X ")
		assert.Contains(t, out.String(), "Your move (row col): ")
	})

	t.Run("Reports rejected moves", func(t *testing.T) {
		c, _, out := newConsole(t, "")

		c.Reject(errBoom)

		assert.Contains(t, out.String(), "Invalid move: boom")
	})
}

type plays struct{}

func (plays) Play(user, gameAccount entity.Address, row, col uint8) ledger.Instruction {
	return ledger.Instruction{
		Accounts: []ledger.AccountMeta{ledger.Meta(user, true, true), ledger.Meta(gameAccount, false, true)},
		Data:     codec.EncodePlay(row, col),
	}
}

type signer entity.Address

func (that signer) Address() entity.Address { return entity.Address(that) }

func TestConsole_FollowsSession(t *testing.T) {
	ctx := context.Background()
	gameAddr := entity.Address{50}

	account := func(t *testing.T, store *mockedLedger.MockAccountStore, state entity.GameState, turns uint8) {
		t.Helper()

		raw, err := codec.EncodeGame(&entity.Game{
			Players:       [2]entity.Address{me, opponent},
			State:         state,
			Turns:         turns,
			StakeMint:     mint,
			StakeAmount:   150,
			IsInitialized: true,
		})
		require.NoError(t, err)

		store.EXPECT().GetAccount(mock.Anything, gameAddr).Return(raw, nil).Once()
	}

	run := func(t *testing.T, input string) (*mockedLedger.MockAccountStore, *mockedLedger.MockSubmitter, func() (*session.Result, error), *bytes.Buffer) {
		t.Helper()

		store := mockedLedger.NewMockAccountStore(t)
		submitter := mockedLedger.NewMockSubmitter(t)
		c, _, out := newConsole(t, input)

		machine := session.New(suite.Logger(), store, submitter, plays{}, repository.NewMemory(), c, c,
			session.Config{PollInterval: time.Millisecond})

		return store, submitter, func() (*session.Result, error) {
			return machine.Run(ctx, signer(me), gameAddr)
		}, out
	}

	t.Run("Announces every stage of a created game", func(t *testing.T) {
		// Given: a fresh game the opponent accepts, one local move, then a win
		store, submitter, play, out := run(t, "0 0\n")
		account(t, store, entity.Unaccepted(), 0)
		account(t, store, entity.Ongoing(), 0)
		submitter.EXPECT().Submit(mock.Anything, mock.Anything, mock.Anything).Return("sig", nil).Once()
		account(t, store, entity.Over(me), 5)

		// When: the session runs to the end
		result, err := play()

		// Then: the player is told about each stage in order
		require.NoError(t, err)
		assert.Equal(t, session.Won, result.State)

		text := out.String()
		stages := []string{
			"Waiting for the opponent to accept",
			"The opponent accepted",
			"Your move (row col): ",
			"Move sent.",
			"Waiting for the opponent's move",
		}
		last := -1
		for _, stage := range stages {
			at := strings.Index(text, stage)
			require.Greater(t, at, last, "%q out of order", stage)
			last = at
		}
	})

	t.Run("Resuming on the opponent's turn says so", func(t *testing.T) {
		// Given: an ongoing game where the opponent moves next
		store, _, play, out := run(t, "")
		account(t, store, entity.Ongoing(), 1)
		account(t, store, entity.Draw(), 9)

		// When: the session runs
		result, err := play()

		// Then: the wait is announced before the result
		require.NoError(t, err)
		assert.Equal(t, session.Drawn, result.State)
		assert.Contains(t, out.String(), "Waiting for the opponent's move")
	})
}
