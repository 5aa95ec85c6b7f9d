// Package solana implements the ledger collaborators over a Solana JSON-RPC node.
package solana

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	sdk "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/ledger"
)

var (
	escrowSeed    = []byte("escrow")
	authoritySeed = []byte("authority")
)

var ErrTransactionFailed = errors.New("transaction failed")

type Options struct {
	Endpoint        string
	ProgramID       string
	Commitment      string
	ConfirmInterval time.Duration
	ConfirmTimeout  time.Duration
}

// Client talks to one RPC node on behalf of one game program.
type Client struct {
	logger     *slog.Logger
	rpc        *rpc.Client
	program    sdk.PublicKey
	commitment rpc.CommitmentType

	confirmInterval time.Duration
	confirmTimeout  time.Duration
}

func New(logger *slog.Logger, opts Options) (*Client, error) {
	program, err := sdk.PublicKeyFromBase58(opts.ProgramID)
	if err != nil {
		return nil, fmt.Errorf("invalid program id %q: %w", opts.ProgramID, err)
	}

	commitment := rpc.CommitmentType(opts.Commitment)
	if commitment == "" {
		commitment = rpc.CommitmentConfirmed
	}

	if opts.ConfirmInterval <= 0 {
		opts.ConfirmInterval = time.Second
	}

	return &Client{
		logger:          logger.With("component", "ledger", "endpoint", opts.Endpoint),
		rpc:             rpc.New(opts.Endpoint),
		program:         program,
		commitment:      commitment,
		confirmInterval: opts.ConfirmInterval,
		confirmTimeout:  opts.ConfirmTimeout,
	}, nil
}

func (that *Client) GetAccount(ctx context.Context, address entity.Address) ([]byte, error) {
	result, err := that.rpc.GetAccountInfoWithOpts(ctx, sdk.PublicKey(address), &rpc.GetAccountInfoOpts{
		Encoding:   sdk.EncodingBase64,
		Commitment: that.commitment,
	})
	if errors.Is(err, rpc.ErrNotFound) {
		return nil, apperror.ErrAccountClosed
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get account %s: %w", address, err)
	}

	if result.Value == nil || result.Value.Data == nil {
		return nil, apperror.ErrAccountClosed
	}

	return result.Value.Data.GetBinary(), nil
}

// QueryAccounts lists the program's accounts matching every filter.
func (that *Client) QueryAccounts(ctx context.Context, filters ...ledger.Filter) ([]ledger.KeyedAccount, error) {
	rpcFilters := make([]rpc.RPCFilter, 0, len(filters))
	for _, filter := range filters {
		rpcFilters = append(rpcFilters, rpc.RPCFilter{
			Memcmp: &rpc.RPCFilterMemcmp{
				Offset: filter.Offset,
				Bytes:  sdk.Base58(filter.Bytes),
			},
		})
	}

	result, err := that.rpc.GetProgramAccountsWithOpts(ctx, that.program, &rpc.GetProgramAccountsOpts{
		Commitment: that.commitment,
		Encoding:   sdk.EncodingBase64,
		Filters:    rpcFilters,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query program accounts: %w", err)
	}

	accounts := make([]ledger.KeyedAccount, 0, len(result))
	for _, keyed := range result {
		if keyed == nil || keyed.Account == nil || keyed.Account.Data == nil {
			continue
		}

		accounts = append(accounts, ledger.KeyedAccount{
			Address: entity.Address(keyed.Pubkey),
			Data:    keyed.Account.Data.GetBinary(),
		})
	}

	return accounts, nil
}

func (that *Client) MintDecimals(ctx context.Context, mint entity.Address) (uint8, error) {
	result, err := that.rpc.GetTokenSupply(ctx, sdk.PublicKey(mint), that.commitment)
	if err != nil {
		return 0, fmt.Errorf("failed to get supply of mint %s: %w", mint, err)
	}

	if result.Value == nil {
		return 0, fmt.Errorf("mint %s has no supply info: %w", mint, apperror.ErrInvalidAddress)
	}

	return result.Value.Decimals, nil
}

// Balance returns the raw token amount held by a token account. An account that
// does not exist yet holds nothing.
func (that *Client) Balance(ctx context.Context, account entity.Address) (uint64, error) {
	result, err := that.rpc.GetTokenAccountBalance(ctx, sdk.PublicKey(account), that.commitment)
	if err != nil {
		if _, getErr := that.GetAccount(ctx, account); errors.Is(getErr, apperror.ErrAccountClosed) {
			return 0, nil
		}

		return 0, fmt.Errorf("failed to get balance of %s: %w", account, err)
	}

	if result.Value == nil {
		return 0, nil
	}

	amount, err := strconv.ParseUint(result.Value.Amount, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid balance %q of %s: %w", result.Value.Amount, account, err)
	}

	return amount, nil
}

func (that *Client) Escrow(mint entity.Address) (entity.Address, error) {
	return that.programAddress(escrowSeed, mint)
}

func (that *Client) Authority(mint entity.Address) (entity.Address, error) {
	return that.programAddress(authoritySeed, mint)
}

func (that *Client) programAddress(seed []byte, mint entity.Address) (entity.Address, error) {
	address, _, err := sdk.FindProgramAddress([][]byte{seed, mint.Bytes()}, that.program)
	if err != nil {
		return entity.Address{}, fmt.Errorf("failed to derive %s address: %w", seed, err)
	}

	return entity.Address(address), nil
}

func (that *Client) AssociatedTokenAccount(mint, owner entity.Address) (entity.Address, error) {
	address, _, err := sdk.FindAssociatedTokenAddress(sdk.PublicKey(owner), sdk.PublicKey(mint))
	if err != nil {
		return entity.Address{}, fmt.Errorf("failed to derive token account of %s: %w", owner, err)
	}

	return entity.Address(address), nil
}

func (that *Client) TokenProgram() entity.Address {
	return entity.Address(sdk.TokenProgramID)
}

func (that *Client) SystemProgram() entity.Address {
	return entity.Address(sdk.SystemProgramID)
}
