package entity

// PlayableGame is the local summary of a discovered account shown for selection.
// It is rebuilt on every discovery pass and never persisted.
type PlayableGame struct {
	Address        Address
	Opponent       Address
	StakeMint      Address
	StakeAmount    string
	Board          [BoardSide][BoardSide]string
	TurnsRemaining int
	Unaccepted     bool
}

func NewPlayableGame(address, identity Address, game *Game, decimals uint8) *PlayableGame {
	view := &PlayableGame{
		Address:        address,
		Opponent:       game.Opponent(identity),
		StakeMint:      game.StakeMint,
		StakeAmount:    FormatAmount(game.StakeAmount, decimals),
		TurnsRemaining: game.TurnsRemaining(),
		Unaccepted:     game.IsUnaccepted(),
	}

	for row := range game.Board {
		for col, tile := range game.Board[row] {
			view.Board[row][col] = tile.Symbol()
		}
	}

	return view
}
