package codec

import (
	"encoding/binary"

	bin "github.com/gagliardetto/binary"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/entity"
)

type InstructionKind uint8

const (
	CreateGame InstructionKind = iota
	AcceptGame
	Play
	CancelGame
	CloseGame
)

func (that InstructionKind) String() string {
	switch that {
	case CreateGame:
		return "create"
	case AcceptGame:
		return "accept"
	case Play:
		return "play"
	case CancelGame:
		return "cancel"
	case CloseGame:
		return "close"
	default:
		return "unknown"
	}
}

const (
	createGameSize = 1 + entity.AddressSize + 8
	playSize       = 1 + 2
)

func EncodeCreateGame(opponent entity.Address, stakeAmount uint64) []byte {
	data := make([]byte, 0, createGameSize)
	data = append(data, byte(CreateGame))
	data = append(data, opponent[:]...)

	return binary.LittleEndian.AppendUint64(data, stakeAmount)
}

func DecodeCreateGame(data []byte) (entity.Address, uint64, error) {
	if err := expectKind(data, CreateGame, createGameSize); err != nil {
		return entity.Address{}, 0, err
	}

	dec := bin.NewBorshDecoder(data[1:])

	opponent, err := readAddress(dec)
	if err != nil {
		return entity.Address{}, 0, decodeErr(1, "opponent: %v", err)
	}

	amount, err := dec.ReadUint64(binary.LittleEndian)
	if err != nil {
		return entity.Address{}, 0, decodeErr(1+entity.AddressSize, "stake amount: %v", err)
	}

	return opponent, amount, nil
}

// EncodePlay carries the board coordinates; the program does not derive them.
func EncodePlay(row, col uint8) []byte {
	return []byte{byte(Play), row, col}
}

func DecodePlay(data []byte) (uint8, uint8, error) {
	if err := expectKind(data, Play, playSize); err != nil {
		return 0, 0, err
	}

	return data[1], data[2], nil
}

// Accept, cancel and close carry only the discriminant; every address they need
// travels as an account reference.
func EncodeAcceptGame() []byte { return []byte{byte(AcceptGame)} }
func EncodeCancelGame() []byte { return []byte{byte(CancelGame)} }
func EncodeCloseGame() []byte  { return []byte{byte(CloseGame)} }

func DecodeKind(data []byte) (InstructionKind, error) {
	if len(data) == 0 {
		return 0, decodeErr(0, "empty instruction")
	}

	kind := InstructionKind(data[0])
	if kind > CloseGame {
		return 0, decodeErr(0, "unknown instruction discriminant %d", data[0])
	}

	return kind, nil
}

func expectKind(data []byte, want InstructionKind, size int) error {
	kind, err := DecodeKind(data)
	if err != nil {
		return err
	}

	if kind != want {
		return decodeErr(0, "expected %s instruction, got %s", want, kind)
	}

	if len(data) != size {
		return decodeErr(len(data), "%s instruction is %d bytes, want %d", want, len(data), size)
	}

	return nil
}

