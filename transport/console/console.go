// Package console is the interactive line-oriented front end. Prompts go to out;
// logs are written elsewhere so they never interleave with the board.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/service"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/usecase"
)

var ErrInputClosed = errors.New("input closed")

type gameManager interface {
	Identity() entity.Address
	Playable(ctx context.Context) ([]*service.DiscoveredGame, error)
	Invitations(ctx context.Context) ([]*service.DiscoveredGame, error)
	Cancellable(ctx context.Context) ([]*service.DiscoveredGame, error)
	Holdings(ctx context.Context, mint entity.Address) (*usecase.Holdings, error)
	Create(ctx context.Context, opponent, mint entity.Address, stake string) (entity.Address, error)
	Accept(ctx context.Context, address entity.Address) error
	Cancel(ctx context.Context, address entity.Address) (string, error)
	Play(ctx context.Context, address entity.Address) (*usecase.Report, error)
}

type action struct {
	key     string
	label   string
	handler func(ctx context.Context) error
}

type Console struct {
	logger  *slog.Logger
	out     io.Writer
	lines   chan string
	manager gameManager
}

// New starts reading lines from in. The reader goroutine exits at EOF.
func New(logger *slog.Logger, in io.Reader, out io.Writer) *Console {
	that := &Console{
		logger: logger.With("component", "console"),
		out:    out,
		lines:  make(chan string),
	}

	go func() {
		defer close(that.lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			that.lines <- scanner.Text()
		}
	}()

	return that
}

// Attach sets the game manager. It is separate from New because the manager's
// session machine takes the console as its move input.
func (that *Console) Attach(manager gameManager) {
	that.manager = manager
}

// Run shows the main menu until the player quits, input ends or ctx is done.
func (that *Console) Run(ctx context.Context) error {
	actions := []action{
		{key: "1", label: "Resume a game", handler: that.handleResume},
		{key: "2", label: "Create a game", handler: that.handleCreate},
		{key: "3", label: "Accept a game", handler: that.handleAccept},
		{key: "4", label: "Cancel a game", handler: that.handleCancel},
	}

	that.printf("Playing as %s\n", that.manager.Identity())

	for {
		that.printf("\n")
		for _, a := range actions {
			that.printf("%s) %s\n", a.key, a.label)
		}
		that.printf("q) Quit\n")

		choice, err := that.prompt(ctx, "> ")
		if err != nil {
			return ignoreInputClosed(err)
		}

		if choice == "q" {
			return nil
		}

		handled := false
		for _, a := range actions {
			if a.key != choice {
				continue
			}

			handled = true
			if err = a.handler(ctx); err != nil {
				if ctx.Err() != nil || errors.Is(err, ErrInputClosed) {
					return ignoreInputClosed(err)
				}

				that.logger.Error("action failed", "action", a.label, "error", err)
				that.printf("Error: %v\n", err)
			}
		}

		if !handled {
			that.printf("Unknown option %q\n", choice)
		}
	}
}

// prompt prints label and waits for one trimmed line.
func (that *Console) prompt(ctx context.Context, label string) (string, error) {
	that.printf("%s", label)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-that.lines:
		if !ok {
			return "", ErrInputClosed
		}
		return strings.TrimSpace(line), nil
	}
}

func (that *Console) confirm(ctx context.Context, label string) (bool, error) {
	for {
		answer, err := that.prompt(ctx, label+" [y/n]: ")
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}

func (that *Console) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Warn("could not write to console", "error", err)
	}
}

func ignoreInputClosed(err error) error {
	if errors.Is(err, ErrInputClosed) {
		return nil
	}

	return err
}
