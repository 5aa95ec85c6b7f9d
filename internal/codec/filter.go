package codec

import (
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/ledger"
)

const (
	// UnacceptedOffset starts an 8-byte window over board tiles 2..8 and the state
	// discriminant. It is all zero only while the game waits for acceptance.
	UnacceptedOffset = StateOffset - 7
	unacceptedWindow = 8
)

func CreatorFilter(identity entity.Address) ledger.Filter {
	return ledger.Filter{Offset: CreatorOffset, Bytes: identity.Bytes()}
}

func AcceptorFilter(identity entity.Address) ledger.Filter {
	return ledger.Filter{Offset: AcceptorOffset, Bytes: identity.Bytes()}
}

func UnacceptedFilter() ledger.Filter {
	return ledger.Filter{Offset: UnacceptedOffset, Bytes: make([]byte, unacceptedWindow)}
}
