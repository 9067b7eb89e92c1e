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

// firstCandidate is a deterministic stand-in for a uniform guidance policy:
// it always expands the lowest-indexed untried move, which is enough to
// exercise expansion order without depending on randomness in a test.
func firstCandidate(candidates []chess.Move) chess.Move {
	return candidates[0]
}

func TestSelectLeafReturnsRootWhileUntriedRemains(t *testing.T) {
	s := chess.NewInitialState()
	root := newNode(s, chess.GetLegalMoves(&s), nil, -1)
	leaf := selectLeaf(root, 1.4)
	assert.Same(t, root, leaf)
}

func TestExpandLinksChildUnderChosenActionIndex(t *testing.T) {
	s := chess.NewInitialState()
	root := newNode(s, chess.GetLegalMoves(&s), nil, -1)
	backend := ChessBackend{}

	child := expand(root, firstCandidate, backend)

	assert.Same(t, root.children[0], child)
	assert.Same(t, root, child.parent)
	assert.Equal(t, 0, child.parentActionIdx)
	assert.NotContains(t, root.untried, 0)
	assert.Len(t, root.untried, len(root.legalMoves)-1)
}

func TestBackupNegatesValueAtEachAncestorStep(t *testing.T) {
	s := chess.NewInitialState()
	root := newNode(s, chess.GetLegalMoves(&s), nil, -1)
	backend := ChessBackend{}

	child := expand(root, firstCandidate, backend)
	grandchild := expand(child, firstCandidate, backend)

	backup(grandchild, 1.0)

	require.Equal(t, 1, grandchild.n)
	require.Equal(t, 1, child.n)
	require.Equal(t, 1, root.n)

	// grandchild's value (1.0) is the opponent's perspective at child, so
	// child's edge into grandchild records -1.0.
	assert.Equal(t, 1, child.visits[grandchild.parentActionIdx])
	assert.Equal(t, -1.0, child.total[grandchild.parentActionIdx])
	assert.Equal(t, -1.0, child.mean[grandchild.parentActionIdx])

	// negated again going from child to root: +1.0.
	assert.Equal(t, 1, root.visits[child.parentActionIdx])
	assert.Equal(t, 1.0, root.total[child.parentActionIdx])
}

// walkInvariant recursively asserts, at every node with at least one child,
// that the sum of per-action visit counts equals the node's total visit
// count (plus one for a non-root node, whose own backup as a freshly
// expanded leaf counts in n but on no outgoing edge), and that
// Q_a == W_a/N_a for every visited action.
func walkInvariant(t *testing.T, v *node) {
	t.Helper()
	hasChild := false
	sum := 0
	for a, child := range v.children {
		if child == nil {
			continue
		}
		hasChild = true
		sum += v.visits[a]
		if v.visits[a] > 0 {
			assert.Equal(t, v.total[a]/float64(v.visits[a]), v.mean[a])
		}
		walkInvariant(t, child)
	}
	if hasChild {
		want := sum
		if v.parent != nil {
			want++
		}
		assert.Equal(t, v.n, want, "sum of child visits must equal node total")
	}
}

func TestSimulationInvariants(t *testing.T) {
	s := chess.NewInitialState()
	root := newNode(s, chess.GetLegalMoves(&s), nil, -1)
	backend := ChessBackend{}

	const simulations = 37
	for i := 0; i < simulations; i++ {
		v := selectLeaf(root, 1.4)
		leaf := v
		if v.hasUntried() {
			leaf = expand(v, firstCandidate, backend)
		}
		backup(leaf, 0)
	}

	assert.Equal(t, simulations, root.n)
	walkInvariant(t, root)
}
