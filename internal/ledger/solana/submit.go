package solana

import (
	"context"
	"fmt"
	"time"

	sdk "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/ledger"
)

// Keypair is a local signing identity.
type Keypair struct {
	key sdk.PrivateKey
}

func LoadKeypair(path string) (*Keypair, error) {
	key, err := sdk.PrivateKeyFromSolanaKeygenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load keypair from %s: %w", path, err)
	}

	return &Keypair{key: key}, nil
}

func (that *Keypair) Address() entity.Address {
	return entity.Address(that.key.PublicKey())
}

// NewSigner generates a throwaway keypair, used for fresh game accounts.
func (that *Client) NewSigner() (ledger.Signer, error) {
	key, err := sdk.NewRandomPrivateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate keypair: %w", err)
	}

	return &Keypair{key: key}, nil
}

// Submit sends ix in its own transaction paid by the first signer and waits for
// confirmation. It never resends.
func (that *Client) Submit(ctx context.Context, ix ledger.Instruction, signers ...ledger.Signer) (string, error) {
	if len(signers) == 0 {
		return "", fmt.Errorf("%w: no fee payer", ErrTransactionFailed)
	}

	keys := make(map[sdk.PublicKey]*sdk.PrivateKey, len(signers))
	for _, signer := range signers {
		keypair, ok := signer.(*Keypair)
		if !ok {
			return "", fmt.Errorf("%w: signer %s has no private key", ErrTransactionFailed, signer.Address())
		}
		keys[keypair.key.PublicKey()] = &keypair.key
	}

	metas := make(sdk.AccountMetaSlice, 0, len(ix.Accounts))
	for _, account := range ix.Accounts {
		metas = append(metas, sdk.NewAccountMeta(sdk.PublicKey(account.Address), account.Writable, account.Signer))
	}

	blockhash, err := that.rpc.GetLatestBlockhash(ctx, that.commitment)
	if err != nil {
		return "", fmt.Errorf("failed to get latest blockhash: %w", err)
	}

	payer := sdk.PublicKey(signers[0].Address())

	tx, err := sdk.NewTransaction(
		[]sdk.Instruction{sdk.NewInstruction(that.program, metas, ix.Data)},
		blockhash.Value.Blockhash,
		sdk.TransactionPayer(payer),
	)
	if err != nil {
		return "", fmt.Errorf("failed to build transaction: %w", err)
	}

	if _, err = tx.Sign(func(key sdk.PublicKey) *sdk.PrivateKey { return keys[key] }); err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}

	signature, err := that.rpc.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		PreflightCommitment: that.commitment,
	})
	if err != nil {
		return "", fmt.Errorf("failed to send transaction: %w", err)
	}

	that.logger.Debug("transaction sent", "signature", signature.String())

	if err = that.confirm(ctx, signature); err != nil {
		return signature.String(), err
	}

	return signature.String(), nil
}

func (that *Client) confirm(ctx context.Context, signature sdk.Signature) error {
	if that.confirmTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, that.confirmTimeout)
		defer cancel()
	}

	ticker := time.NewTicker(that.confirmInterval)
	defer ticker.Stop()

	for {
		result, err := that.rpc.GetSignatureStatuses(ctx, false, signature)
		if err != nil {
			that.logger.Warn("could not get signature status", "signature", signature.String(), "error", err)
		} else if len(result.Value) > 0 && result.Value[0] != nil {
			status := result.Value[0]
			if status.Err != nil {
				return fmt.Errorf("%w: %s: %v", ErrTransactionFailed, signature, status.Err)
			}

			if confirmed(status.ConfirmationStatus, that.commitment) {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("transaction %s not confirmed: %w", signature, ctx.Err())
		case <-ticker.C:
		}
	}
}

func confirmed(status rpc.ConfirmationStatusType, want rpc.CommitmentType) bool {
	switch status {
	case rpc.ConfirmationStatusFinalized:
		return true
	case rpc.ConfirmationStatusConfirmed:
		return want != rpc.CommitmentFinalized
	case rpc.ConfirmationStatusProcessed:
		return want == rpc.CommitmentProcessed
	default:
		return false
	}
}
