// Package ledger declares the external collaborators the client talks to: the
// remote account store, transaction submission, the token service and
// deterministic address derivation. Implementations live in sub-packages.
package ledger

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/entity"
)

// Filter is a byte-exact equality match at a fixed account offset.
type Filter struct {
	Offset uint64
	Bytes  []byte
}

type KeyedAccount struct {
	Address entity.Address
	Data    []byte
}

type AccountMeta struct {
	Address  entity.Address
	Signer   bool
	Writable bool
}

func Meta(address entity.Address, signer, writable bool) AccountMeta {
	return AccountMeta{Address: address, Signer: signer, Writable: writable}
}

// Instruction targets the game program. Every mutating action is one
// instruction in its own transaction.
type Instruction struct {
	Accounts []AccountMeta
	Data     []byte
}

type Signer interface {
	Address() entity.Address
}

type AccountStore interface {
	// GetAccount returns apperror.ErrAccountClosed when no account exists.
	GetAccount(ctx context.Context, address entity.Address) ([]byte, error)
	QueryAccounts(ctx context.Context, filters ...Filter) ([]KeyedAccount, error)
}

type Submitter interface {
	// Submit blocks until the transaction is confirmed or fails.
	Submit(ctx context.Context, ix Instruction, signers ...Signer) (string, error)
	NewSigner() (Signer, error)
}

type TokenService interface {
	MintDecimals(ctx context.Context, mint entity.Address) (uint8, error)
	Balance(ctx context.Context, account entity.Address) (uint64, error)
}

type AddressDeriver interface {
	Escrow(mint entity.Address) (entity.Address, error)
	Authority(mint entity.Address) (entity.Address, error)
	AssociatedTokenAccount(mint, owner entity.Address) (entity.Address, error)
	TokenProgram() entity.Address
	SystemProgram() entity.Address
}
