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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/alphazero-chess-core/internal/chess"
)

func TestNewNodeTerminalHasNoUntriedOrChildren(t *testing.T) {
	s, err := chess.StateFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	n := newNode(s, chess.GetLegalMoves(&s), nil, -1)
	assert.True(t, n.isTerminal())
	assert.False(t, n.hasUntried())
	assert.Empty(t, n.children)
}

func TestUCTInfinityForUnvisitedAction(t *testing.T) {
	s := chess.NewInitialState()
	n := newNode(s, chess.GetLegalMoves(&s), nil, -1)
	assert.True(t, math.IsInf(n.uct(0, 1.4), 1))
}

func TestBestActionByVisitsBreaksTiesByFirstEncountered(t *testing.T) {
	s := chess.NewInitialState()
	moves := chess.GetLegalMoves(&s)
	n := newNode(s, moves, nil, -1)
	for a := 0; a < 3; a++ {
		child := newNode(s, moves, n, a)
		n.children[a] = child
		n.visits[a] = 2
	}
	assert.Equal(t, 0, n.bestActionByVisits())
}

func TestBestChildByUCTIgnoresActionsWithNoChild(t *testing.T) {
	s := chess.NewInitialState()
	moves := chess.GetLegalMoves(&s)
	n := newNode(s, moves, nil, -1)
	n.children[2] = newNode(s, moves, n, 2)
	n.visits[2] = 5
	n.n = 5
	assert.Equal(t, 2, n.bestChildByUCT(1.4))
}
