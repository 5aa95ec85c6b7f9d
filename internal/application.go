package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/config"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/ledger/solana"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/repository"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/service"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/session"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-ledger-client/transport/console"
)

var (
	ErrAddrNotFound  = errors.New("redis address string is empty")
	ErrKeypairNotSet = errors.New("keypair path is not set")
)

type repositories struct {
	games repository.GameRepository
	mints repository.MintRepository
	close func()
}

// RunApp - runs the interactive client until the player quits or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	logger = logger.With("session", uuid.NewString())
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	if conf.KeypairPath == "" {
		return ErrKeypairNotSet
	}

	player, err := solana.LoadKeypair(conf.KeypairPath)
	if err != nil {
		return err
	}

	client, err := solana.New(logger, solana.Options{
		Endpoint:        conf.Ledger.RPCEndpoint,
		ProgramID:       conf.Ledger.ProgramID,
		Commitment:      conf.Ledger.Commitment,
		ConfirmInterval: conf.Ledger.ConfirmInterval,
		ConfirmTimeout:  conf.Ledger.ConfirmTimeout,
	})
	if err != nil {
		return fmt.Errorf("could not create ledger client: %w", err)
	}

	repos, err := openRepositories(ctx, log, conf)
	if err != nil {
		return err
	}
	defer repos.close()

	tokens := service.NewTokenService(logger, client, client, repos.mints)
	discovery := service.NewDiscoveryService(logger, client, tokens)
	instructions := service.NewInstructionBuilder(client)

	front := console.New(logger, os.Stdin, os.Stdout)

	machine := session.New(logger, client, client, instructions, repos.games, front, front, session.Config{
		PollInterval: conf.Poll.Interval,
		Timeout:      conf.Poll.Timeout,
	})

	gameManager := usecase.NewGameManager(
		logger, player, discovery, tokens, instructions, machine, client, client, repos.games,
	)
	front.Attach(gameManager)

	log.Info("Starting client", "player", player.Address().String(), "endpoint", conf.Ledger.RPCEndpoint)

	if err = front.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("console error: %w", err)
	}

	log.Info("Client stopped")

	return nil
}

// openRepositories uses Redis when enabled and process memory otherwise.
func openRepositories(ctx context.Context, log *slog.Logger, conf *config.Config) (*repositories, error) {
	if !conf.Redis.Enabled {
		memory := repository.NewMemory()
		return &repositories{games: memory, mints: memory, close: func() {}}, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return &repositories{
		games: repository.NewGameRepository(redisStorage),
		mints: repository.NewMintRepository(redisStorage),
		close: func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		},
	}, nil
}
