// Package search picks moves for the computer player with an alpha-beta negamax.
package search

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/dividebyhalf/internal/entity"
)

// WinScore dominates any heuristic score. Terminal scores add the remaining depth so earlier wins rank higher.
const WinScore = 1 << 20

const infinity = WinScore << 2

var (
	ErrNoMoves      = errors.New("no moves available")
	ErrInvalidDepth = errors.New("search depth must be positive")
)

// Scorer evaluates a non-terminal state from the point of view of the player to move.
type Scorer func(state entity.State) int

// ClosenessScore - the smaller the remaining value, the closer the player is to 1.
func ClosenessScore(state entity.State) int {
	return -state.Value
}

type bound uint8

const (
	exact bound = iota
	lowerBound
	upperBound
)

type tableKey struct {
	value int
	depth int
	turn  entity.Player
}

type tableEntry struct {
	score int
	flag  bound
}

type Negamax struct {
	depth int
	score Scorer
	table map[tableKey]tableEntry
}

func NewNegamax(depth int, scorer Scorer) (*Negamax, error) {
	if depth < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDepth, depth)
	}

	if scorer == nil {
		scorer = ClosenessScore
	}

	return &Negamax{
		depth: depth,
		score: scorer,
		table: make(map[tableKey]tableEntry),
	}, nil
}

func (that *Negamax) Depth() int {
	return that.depth
}

// BestMove - returns the divisor with the highest negamax score. Ties go to the smaller divisor.
func (that *Negamax) BestMove(state entity.State) (int, error) {
	if state.IsTerminal() {
		return 0, fmt.Errorf("%w: value %d", ErrNoMoves, state.Value)
	}

	alpha, beta := -infinity, infinity
	bestMove, bestScore := 0, -infinity

	for _, divisor := range entity.Divisors {
		child := entity.State{Value: state.Value / divisor, Turn: state.Turn.Opponent()}

		score := -that.negamax(child, that.depth-1, -beta, -alpha)
		if bestMove == 0 || score > bestScore {
			bestMove, bestScore = divisor, score
		}

		if score > alpha {
			alpha = score
		}
	}

	return bestMove, nil
}

func (that *Negamax) negamax(state entity.State, depth, alpha, beta int) int {
	// the opponent just moved, so 1 means we lost and 0 means they did
	switch {
	case state.Value == entity.TerminalValue:
		return -(WinScore + depth)
	case state.Value < entity.TerminalValue:
		return WinScore + depth
	case depth <= 0:
		return that.score(state)
	}

	key := tableKey{value: state.Value, depth: depth, turn: state.Turn}
	alphaOrig := alpha

	if entry, ok := that.table[key]; ok {
		switch entry.flag {
		case exact:
			return entry.score
		case lowerBound:
			alpha = max(alpha, entry.score)
		case upperBound:
			beta = min(beta, entry.score)
		}

		if alpha >= beta {
			return entry.score
		}
	}

	best := -infinity
	for _, divisor := range entity.Divisors {
		child := entity.State{Value: state.Value / divisor, Turn: state.Turn.Opponent()}

		score := -that.negamax(child, depth-1, -beta, -alpha)
		best = max(best, score)
		alpha = max(alpha, score)

		if alpha >= beta {
			break
		}
	}

	flag := exact
	switch {
	case best <= alphaOrig:
		flag = upperBound
	case best >= beta:
		flag = lowerBound
	}
	that.table[key] = tableEntry{score: best, flag: flag}

	return best
}
