package entity

import (
	"bytes"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/apperror"
)

const AddressSize = 32

// Address is a 32-byte ledger account address, rendered in base58.
type Address [AddressSize]byte

func ParseAddress(s string) (Address, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %q: %w", apperror.ErrInvalidAddress, s, err)
	}

	if len(raw) != AddressSize {
		return Address{}, fmt.Errorf("%w: %q decodes to %d bytes", apperror.ErrInvalidAddress, s, len(raw))
	}

	var addr Address
	copy(addr[:], raw)

	return addr, nil
}

func AddressFromBytes(b []byte) (Address, error) {
	if len(b) != AddressSize {
		return Address{}, fmt.Errorf("%w: %d bytes", apperror.ErrInvalidAddress, len(b))
	}

	var addr Address
	copy(addr[:], b)

	return addr, nil
}

func (that Address) String() string {
	return base58.Encode(that[:])
}

func (that Address) Bytes() []byte {
	return bytes.Clone(that[:])
}

func (that Address) IsZero() bool {
	return that == Address{}
}
