//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package mcts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/alphazero-chess-core/internal/chess"
)

// zeroValue is the stubbed evaluator used by the invariant tests: it never
// queries the position, always returning 0 for every queued state.
type zeroValue struct{}

func (zeroValue) Batch(states []chess.State, _ Backend) ([]float64, error) {
	return make([]float64, len(states)), nil
}

// matingValue scores a batch by the terminal-value convention: a
// leaf where the side to move has been checkmated is worth -1 from that
// side's own perspective (and therefore backs up as +1 to the edge that led
// there); every other leaf is neutral.
type matingValue struct{}

func (matingValue) Batch(states []chess.State, _ Backend) ([]float64, error) {
	out := make([]float64, len(states))
	for i, s := range states {
		st := s
		if chess.CheckWin(&st) {
			out[i] = -1
		}
	}
	return out, nil
}

func TestGetMoveOnTerminalStateReturnsErrTerminalState(t *testing.T) {
	s, err := chess.StateFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	_, err = GetMove(s, zeroValue{}, firstCandidate, ChessBackend{})
	assert.ErrorIs(t, err, ErrTerminalState)
}

// TestGetMoveCompletesWithPartialFinalBatch runs 25 simulations with a batch
// size of 4, so the last queued leaf is only evaluated by the final flush.
// The root-visit invariant itself is checked in TestSimulationInvariants.
func TestGetMoveCompletesWithPartialFinalBatch(t *testing.T) {
	s := chess.NewInitialState()
	_, err := GetMove(s, zeroValue{}, firstCandidate, ChessBackend{}, WithSimulations(25), WithBatchSize(4))
	require.NoError(t, err)
}

// TestGetMoveFindsForcedMate mirrors the Fool's-mate sequence (f2f3 e7e5
// g2g4 d8h4) with colors and ranks swapped so the side that delivers mate
// is the first player to move, avoiding any dependence on which color the
// evaluator's sign convention favors at the root. White's queen on d1 has a
// single open diagonal to h5, mating the boxed-in black king; with a
// checkmate-aware evaluator, enough simulations must make that edge's
// visit count dominate every sibling's.
func TestGetMoveFindsForcedMate(t *testing.T) {
	s, err := chess.StateFromFEN("rnbqkbnr/ppppp2p/5p2/6p1/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)

	mate := chess.Move{From: chess.Square{Row: 7, Col: 3}, To: chess.Square{Row: 3, Col: 7}}

	found := false
	for _, m := range chess.GetLegalMoves(&s) {
		if m == mate {
			found = true
		}
	}
	require.True(t, found, "fixture position must offer the mating queen move")

	move, err := GetMove(s, matingValue{}, firstCandidate, ChessBackend{}, WithSimulations(200), WithBatchSize(8))
	require.NoError(t, err)
	assert.Equal(t, mate, move)
}
