package service

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/codec"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/ledger"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/settlement"
)

// InstructionBuilder attaches account references to encoded instruction payloads.
type InstructionBuilder struct {
	deriver ledger.AddressDeriver
}

func NewInstructionBuilder(deriver ledger.AddressDeriver) *InstructionBuilder {
	return &InstructionBuilder{deriver: deriver}
}

func (that *InstructionBuilder) Create(
	user, gameAccount, opponent, mint, userTokenAccount entity.Address,
	stakeAmount uint64,
) (ledger.Instruction, error) {
	escrow, err := that.deriver.Escrow(mint)
	if err != nil {
		return ledger.Instruction{}, fmt.Errorf("failed to derive escrow: %w", err)
	}

	return ledger.Instruction{
		Accounts: []ledger.AccountMeta{
			ledger.Meta(user, true, true),
			ledger.Meta(gameAccount, true, true),
			ledger.Meta(mint, false, false),
			ledger.Meta(escrow, false, true),
			ledger.Meta(userTokenAccount, false, true),
			ledger.Meta(that.deriver.TokenProgram(), false, false),
			ledger.Meta(that.deriver.SystemProgram(), false, false),
		},
		Data: codec.EncodeCreateGame(opponent, stakeAmount),
	}, nil
}

func (that *InstructionBuilder) Accept(user, gameAccount, mint, userTokenAccount entity.Address) (ledger.Instruction, error) {
	escrow, err := that.deriver.Escrow(mint)
	if err != nil {
		return ledger.Instruction{}, fmt.Errorf("failed to derive escrow: %w", err)
	}

	return ledger.Instruction{
		Accounts: []ledger.AccountMeta{
			ledger.Meta(user, true, true),
			ledger.Meta(gameAccount, false, true),
			ledger.Meta(mint, false, false),
			ledger.Meta(escrow, false, true),
			ledger.Meta(userTokenAccount, false, true),
			ledger.Meta(that.deriver.TokenProgram(), false, false),
		},
		Data: codec.EncodeAcceptGame(),
	}, nil
}

// Play references only the player and the game; the coordinates ride in the payload.
func (that *InstructionBuilder) Play(user, gameAccount entity.Address, row, col uint8) ledger.Instruction {
	return ledger.Instruction{
		Accounts: []ledger.AccountMeta{
			ledger.Meta(user, true, false),
			ledger.Meta(gameAccount, false, true),
		},
		Data: codec.EncodePlay(row, col),
	}
}

func (that *InstructionBuilder) Cancel(creator, gameAccount, mint entity.Address, targets settlement.Targets) (ledger.Instruction, error) {
	return that.disburse(codec.EncodeCancelGame(), creator, gameAccount, mint, targets)
}

func (that *InstructionBuilder) Close(creator, gameAccount, mint entity.Address, targets settlement.Targets) (ledger.Instruction, error) {
	return that.disburse(codec.EncodeCloseGame(), creator, gameAccount, mint, targets)
}

// disburse rejects malformed targets before anything else is derived or sent.
func (that *InstructionBuilder) disburse(
	data []byte,
	creator, gameAccount, mint entity.Address,
	targets settlement.Targets,
) (ledger.Instruction, error) {
	if err := targets.Validate(); err != nil {
		return ledger.Instruction{}, err
	}

	escrow, err := that.deriver.Escrow(mint)
	if err != nil {
		return ledger.Instruction{}, fmt.Errorf("failed to derive escrow: %w", err)
	}

	authority, err := that.deriver.Authority(mint)
	if err != nil {
		return ledger.Instruction{}, fmt.Errorf("failed to derive escrow authority: %w", err)
	}

	accounts := []ledger.AccountMeta{
		ledger.Meta(creator, true, true),
		ledger.Meta(gameAccount, false, true),
		ledger.Meta(mint, false, false),
		ledger.Meta(escrow, false, true),
		ledger.Meta(authority, false, false),
	}

	for _, owner := range targets.Owners() {
		destination, err := that.deriver.AssociatedTokenAccount(mint, owner)
		if err != nil {
			return ledger.Instruction{}, fmt.Errorf("failed to derive token account of %s: %w", owner, err)
		}
		accounts = append(accounts, ledger.Meta(destination, false, true))
	}

	accounts = append(accounts, ledger.Meta(that.deriver.TokenProgram(), false, false))

	return ledger.Instruction{Accounts: accounts, Data: data}, nil
}
