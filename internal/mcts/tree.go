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

import "github.com/frankkopp/alphazero-chess-core/internal/chess"

// selectLeaf walks from root choosing, at each node, its untried action (if
// one exists - that node is returned for expansion) or else the expanded
// action with maximal UCT, descending into its child. A node with no
// untried action and no children at all is terminal and is returned as-is.
// Depth is bounded by the longest game reachable from root, so this always
// terminates.
func selectLeaf(root *node, c float64) *node {
	v := root
	for {
		if v.hasUntried() {
			return v
		}
		if v.isTerminal() {
			return v
		}
		a := v.bestChildByUCT(c)
		if a < 0 {
			return v
		}
		v = v.children[a]
	}
}

// expand picks one of v's untried moves via policy, applies it against
// backend, and links the resulting state as a new child under the action's
// original index in v's move list. It returns the new child, which becomes
// the leaf queued for evaluation.
func expand(v *node, policy Policy, backend Backend) *node {
	untriedMoves := make([]chess.Move, len(v.untried))
	for i, a := range v.untried {
		untriedMoves[i] = v.legalMoves[a]
	}

	chosen := policy(untriedMoves)

	pos := -1
	for i, m := range untriedMoves {
		if m == chosen {
			pos = i
			break
		}
	}
	a := v.untried[pos]
	v.untried = append(v.untried[:pos], v.untried[pos+1:]...)

	childState := backend.PlayMove(v.state, chosen)
	childMoves := backend.GetLegalMoves(childState)
	child := newNode(childState, childMoves, v, a)
	v.children[a] = child
	return child
}

// backup walks from leaf toward the root carrying value r, which is
// interpreted from leaf's side-to-move perspective. At each step the
// current node's total visit count is incremented; if it has a parent, the
// parent's edge statistics for the action that produced this node are
// updated with -r (the parent's perspective is the opposite of this
// node's), and r is negated before moving up one level.
func backup(leaf *node, r float64) {
	v := leaf
	for v != nil {
		v.n++
		parent := v.parent
		if parent == nil {
			return
		}
		a := v.parentActionIdx
		parent.visits[a]++
		parent.total[a] -= r
		parent.mean[a] = parent.total[a] / float64(parent.visits[a])
		r = -r
		v = parent
	}
}
