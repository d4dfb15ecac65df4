// Package tictactoe implements the game contract for tic-tac-toe. It is the
// reference consumer of the searcher: small enough to verify by hand, rich
// enough to exercise every contract operation except chance.
package tictactoe

import (
	"fmt"
	"strings"

	"gametree/game"
)

const (
	markX = 'x'
	markO = 'o'
	blank = ' '
)

// Move is a cell index 0-8, counting left to right from the top-left corner.
type Move int

// State is a tic-tac-toe position: a 9-char board read left to right, top to
// bottom. x moves first and plays the Max role. The zero value is not a valid
// position; start from New.
type State struct {
	board string
}

func New() State {
	return State{board: strings.Repeat(string(blank), 9)}
}

// Parse builds a State from a 9-char board string of 'x', 'o' and ' ' cells,
// read left to right from the top-left corner.
func Parse(board string) (State, error) {
	if len(board) != 9 {
		return State{}, fmt.Errorf("board must have 9 cells, got %d", len(board))
	}
	for i := 0; i < len(board); i++ {
		switch board[i] {
		case markX, markO, blank:
		default:
			return State{}, fmt.Errorf("invalid cell %q at index %d", board[i], i)
		}
	}
	xs := strings.Count(board, "x")
	os := strings.Count(board, "o")
	if os > xs || xs > os+1 {
		return State{}, fmt.Errorf("unreachable position: %d x marks vs %d o marks", xs, os)
	}
	return State{board: board}, nil
}

func (s State) turn() int {
	return 9 - strings.Count(s.board, string(blank))
}

func (s State) mark() byte {
	if s.turn()%2 == 0 {
		return markX
	}
	return markO
}

func (s State) Player() game.Player {
	if s.mark() == markX {
		return game.Max
	}
	return game.Min
}

func (s State) LegalMoves() []game.Move {
	moves := make([]game.Move, 0, 9)
	for i := 0; i < len(s.board); i++ {
		if s.board[i] == blank {
			moves = append(moves, Move(i))
		}
	}
	return moves
}

func (s State) Play(move game.Move) game.State {
	i := int(move.(Move))
	return State{board: s.board[:i] + string(s.mark()) + s.board[i+1:]}
}

func (s State) IsChance() bool {
	return false
}

func (s State) Outcomes() []game.Outcome {
	return nil
}

func (s State) IsTerminal() bool {
	return s.Winner() != blank || !strings.ContainsRune(s.board, rune(blank))
}

// Winner returns 'x' or 'o' if that side completed a line, or ' ' otherwise.
// A full board with no completed line is a draw and still returns ' '.
func (s State) Winner() byte {
	for _, chain := range s.chains() {
		if chain == "xxx" {
			return markX
		}
		if chain == "ooo" {
			return markO
		}
	}
	return blank
}

// chains lists the 8 lines that can hold three in a row.
func (s State) chains() []string {
	b := s.board
	return []string{
		b[0:3], b[3:6], b[6:9], // rows
		string([]byte{b[0], b[3], b[6]}), // columns
		string([]byte{b[1], b[4], b[7]}),
		string([]byte{b[2], b[5], b[8]}),
		string([]byte{b[0], b[4], b[8]}), // diagonals
		string([]byte{b[2], b[4], b[6]}),
	}
}

// Score tallies, for every line not blocked by the other side, the square of
// each side's mark count: positive for x, negative for o.
func (s State) Score() float64 {
	score := 0.0
	for _, chain := range s.chains() {
		xs := strings.Count(chain, "x")
		os := strings.Count(chain, "o")
		if xs > 0 && os > 0 {
			continue
		}
		score += float64(xs*xs - os*os)
	}
	return score
}

func (s State) String() string {
	rows := make([]string, 0, 3)
	for i := 0; i < 9; i += 3 {
		cells := []string{string(s.board[i]), string(s.board[i+1]), string(s.board[i+2])}
		rows = append(rows, strings.Join(cells, "|"))
	}
	return strings.Join(rows, "\n-----\n")
}
