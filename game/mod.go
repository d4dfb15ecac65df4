package game

// Move represents one legal choice a player may make from a State. Concrete
// games supply their own move type; the searcher treats moves as opaque.
type Move any

// Player identifies the mover's role at a player-turn state. The searching
// player maximizes and the opponent minimizes; a game with more than two
// players folds its turn order into these two roles.
type Player uint8

const (
	Max Player = iota
	Min
)

func (p Player) String() string {
	if p == Max {
		return "max"
	}
	return "min"
}

// Outcome is one possible result of a chance state together with its
// probability. The probabilities across a state's outcomes must sum to 1.
type Outcome struct {
	State State
	Prob  float64
}

// State should be immutable - operations on State always return a new copy.
// Exactly one of {terminal, chance, player-turn} holds for any reachable
// state.
type State interface {
	// IsTerminal reports whether the game has ended at this state.
	IsTerminal() bool
	// Score evaluates the state on a fixed scale where positive favors Max.
	// It must be well-defined on every state, terminal or not: the searcher
	// calls it both at true terminals and at depth cutoff.
	Score() float64
	// Player identifies the mover at a player-turn state.
	Player() Player
	// IsChance reports whether the next transition is probabilistic rather
	// than player-chosen.
	IsChance() bool
	// LegalMoves enumerates the mover's choices in a deterministic order.
	// Must be non-empty unless the state is terminal or a chance state.
	LegalMoves() []Move
	// Play applies a move and returns the successor state.
	Play(Move) State
	// Outcomes enumerates the possible results of a chance state with their
	// probabilities.
	Outcomes() []Outcome
}
