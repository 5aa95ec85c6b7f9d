// Package codec holds the byte-exact layouts of the game account and of the game
// program's instructions. There is no version field: any change here breaks
// compatibility with accounts already on the ledger.
package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"

	bin "github.com/gagliardetto/binary"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/entity"
)

const (
	CreatorOffset  = 0
	AcceptorOffset = CreatorOffset + entity.AddressSize
	BoardOffset    = AcceptorOffset + entity.AddressSize
	StateOffset    = BoardOffset + entity.BoardCells
	// bytes after the state discriminant, excluding the optional winner
	tailSize = 1 + entity.AddressSize + 8 + 1

	// BaseSize is the encoded length of a game without a winner.
	BaseSize = StateOffset + 1 + tailSize
	// AccountSize is the allocation size of a game account.
	AccountSize = BaseSize + entity.AddressSize
)

// DecodeGame decodes a full game account. It never panics; malformed input
// yields *apperror.DecodeError.
func DecodeGame(data []byte) (*entity.Game, error) {
	dec := bin.NewBorshDecoder(data)
	offset := func() int { return len(data) - dec.Remaining() }

	game := &entity.Game{}

	for slot := range game.Players {
		addr, err := readAddress(dec)
		if err != nil {
			return nil, decodeErr(offset(), "player %d: %v", slot, err)
		}
		game.Players[slot] = addr
	}

	for row := range game.Board {
		for col := range game.Board[row] {
			tag, err := dec.ReadUint8()
			if err != nil {
				return nil, decodeErr(offset(), "tile %d,%d: %v", row, col, err)
			}
			if tag > uint8(entity.TileO) {
				return nil, decodeErr(offset()-1, "tile %d,%d: unknown tag %d", row, col, tag)
			}
			game.Board[row][col] = entity.Tile(tag)
		}
	}

	kind, err := dec.ReadUint8()
	if err != nil {
		return nil, decodeErr(offset(), "state: %v", err)
	}

	switch entity.StateKind(kind) {
	case entity.StateUnaccepted, entity.StateOngoing, entity.StateDraw:
		game.State = entity.GameState{Kind: entity.StateKind(kind)}
	case entity.StateOver:
		winner, err := readAddress(dec)
		if err != nil {
			return nil, decodeErr(offset(), "winner: %v", err)
		}
		game.State = entity.Over(winner)
	default:
		return nil, decodeErr(StateOffset, "unknown state discriminant %d", kind)
	}

	if game.Turns, err = dec.ReadUint8(); err != nil {
		return nil, decodeErr(offset(), "turns: %v", err)
	}
	if game.Turns > entity.MaxTurns {
		return nil, decodeErr(offset()-1, "turn counter %d exceeds %d", game.Turns, entity.MaxTurns)
	}

	if game.StakeMint, err = readAddress(dec); err != nil {
		return nil, decodeErr(offset(), "stake mint: %v", err)
	}

	if game.StakeAmount, err = dec.ReadUint64(binary.LittleEndian); err != nil {
		return nil, decodeErr(offset(), "stake amount: %v", err)
	}

	flag, err := dec.ReadUint8()
	if err != nil {
		return nil, decodeErr(offset(), "initialized flag: %v", err)
	}
	switch flag {
	case 0:
	case 1:
		game.IsInitialized = true
	default:
		return nil, decodeErr(offset()-1, "initialized flag %d is not a bool", flag)
	}

	// allocation padding past the encoded value must be zero
	end := offset()
	if tail := data[end:]; len(tail) > 0 && !isZero(tail) {
		return nil, decodeErr(end, "%d trailing non-zero bytes", len(tail))
	}

	return game, nil
}

// EncodeGame encodes a game account padded to AccountSize.
func EncodeGame(game *entity.Game) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, AccountSize))
	enc := bin.NewBorshEncoder(buf)

	for _, player := range game.Players {
		if err := enc.WriteBytes(player[:], false); err != nil {
			return nil, fmt.Errorf("failed to encode player: %w", err)
		}
	}

	for _, row := range game.Board {
		for _, tile := range row {
			if err := enc.WriteUint8(uint8(tile)); err != nil {
				return nil, fmt.Errorf("failed to encode tile: %w", err)
			}
		}
	}

	if err := enc.WriteUint8(uint8(game.State.Kind)); err != nil {
		return nil, fmt.Errorf("failed to encode state: %w", err)
	}
	if game.State.Kind == entity.StateOver {
		if err := enc.WriteBytes(game.State.Winner[:], false); err != nil {
			return nil, fmt.Errorf("failed to encode winner: %w", err)
		}
	}

	if err := enc.WriteUint8(game.Turns); err != nil {
		return nil, fmt.Errorf("failed to encode turns: %w", err)
	}
	if err := enc.WriteBytes(game.StakeMint[:], false); err != nil {
		return nil, fmt.Errorf("failed to encode stake mint: %w", err)
	}
	if err := enc.WriteUint64(game.StakeAmount, binary.LittleEndian); err != nil {
		return nil, fmt.Errorf("failed to encode stake amount: %w", err)
	}
	if err := enc.WriteBool(game.IsInitialized); err != nil {
		return nil, fmt.Errorf("failed to encode initialized flag: %w", err)
	}

	out := buf.Bytes()

	return append(out, make([]byte, AccountSize-len(out))...), nil
}

// IsValidOngoingGame reports whether the buffer holds an initialized game that is
// unaccepted or ongoing. It reads only the state byte and the initialized flag, so
// it accepts buffers of any foreign layout and answers false instead of failing.
func IsValidOngoingGame(data []byte) bool {
	if len(data) < BaseSize {
		return false
	}

	switch entity.StateKind(data[StateOffset]) {
	case entity.StateUnaccepted, entity.StateOngoing:
		return data[BaseSize-1] == 1
	default:
		return false
	}
}

func readAddress(dec *bin.Decoder) (entity.Address, error) {
	raw, err := dec.ReadNBytes(entity.AddressSize)
	if err != nil {
		return entity.Address{}, err
	}

	return entity.AddressFromBytes(raw)
}

func decodeErr(offset int, format string, args ...any) error {
	return &apperror.DecodeError{Offset: offset, Reason: fmt.Sprintf(format, args...)}
}

func isZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}

	return true
}
