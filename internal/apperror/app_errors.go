package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNoGames             = errors.New("no ongoing or pending games")
	ErrNotAPlayer          = errors.New("identity is not a player of this game")
	ErrAccountClosed       = errors.New("game account does not exist or was closed")
	ErrSettlementTargets   = errors.New("exactly one of winner or refund targets must be set")
	ErrInsufficientBalance = errors.New("token balance is too low")
	ErrInvalidAmount       = errors.New("invalid token amount")
	ErrInvalidAddress      = errors.New("invalid address")
	ErrInvalidSelection    = errors.New("invalid selection")
)

// Sentinels matched by the typed errors below through errors.Is.
var (
	ErrDecode                = errors.New("decode error")
	ErrValidation            = errors.New("invalid move")
	ErrProtocolInconsistency = errors.New("protocol inconsistency")
	ErrRemote                = errors.New("remote fault")
)

// DecodeError reports a buffer that does not hold a game account or instruction.
// It is always recoverable: callers downgrade it to "not a valid game".
type DecodeError struct {
	Reason string
	Offset int
}

func (that *DecodeError) Error() string {
	return fmt.Sprintf("decode error at offset %d: %s", that.Offset, that.Reason)
}

func (that *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

type ValidationKind string

const (
	OutOfBounds    ValidationKind = "out of bounds"
	TileOccupied   ValidationKind = "tile occupied"
	MalformedInput ValidationKind = "malformed input"
)

type ValidationError struct {
	Kind   ValidationKind
	Detail string
}

func (that *ValidationError) Error() string {
	if that.Detail == "" {
		return "invalid move: " + string(that.Kind)
	}

	return fmt.Sprintf("invalid move: %s: %s", that.Kind, that.Detail)
}

func (that *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ProtocolInconsistency is fatal for the current session. It points at a codec or
// program version mismatch, not at bad input.
type ProtocolInconsistency struct {
	Detail string
}

func (that *ProtocolInconsistency) Error() string {
	return "protocol inconsistency: " + that.Detail
}

func (that *ProtocolInconsistency) Is(target error) bool {
	return target == ErrProtocolInconsistency
}

// RemoteFault wraps a failed query or submission against the ledger.
type RemoteFault struct {
	Op  string
	Err error
}

func (that *RemoteFault) Error() string {
	return fmt.Sprintf("remote fault during %s: %v", that.Op, that.Err)
}

func (that *RemoteFault) Unwrap() error {
	return that.Err
}

func (that *RemoteFault) Is(target error) bool {
	return target == ErrRemote
}

func Remote(op string, err error) error {
	return &RemoteFault{Op: op, Err: err}
}

func Inconsistent(format string, args ...any) error {
	return &ProtocolInconsistency{Detail: fmt.Sprintf(format, args...)}
}
