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

// Package mcts implements an AlphaZero-style Monte-Carlo tree search driver
// over the internal/chess rules backend: UCT selection, expansion guided by
// an external policy, batched leaf evaluation and signed backup.
package mcts

import (
	"math"

	"github.com/frankkopp/alphazero-chess-core/internal/chess"
)

// node is one position in the search tree. Its per-action arrays are sized
// to len(legalMoves) at construction and never resized; untried holds the
// indices not yet expanded into a child. The tree owns every node
// exclusively through its children slice - parent is a non-owning
// back-pointer valid only for the lifetime of the driver call that built it.
type node struct {
	state      chess.State
	legalMoves []chess.Move

	n       int       // node-total visit count
	visits  []int     // N[a]
	total   []float64 // W[a]
	mean    []float64 // Q[a] = W[a]/N[a]
	untried []int     // indices into legalMoves not yet expanded
	children []*node  // children[a], nil until action a is expanded

	parent          *node
	parentActionIdx int
}

// newNode builds a node from (state, legalMoves, parent, parentActionIdx).
// A terminal position has an empty legalMoves, and therefore an empty
// untried set and no children - exactly the construction rule the driver
// relies on to recognize a leaf with nothing left to expand.
func newNode(state chess.State, legalMoves []chess.Move, parent *node, parentActionIdx int) *node {
	untried := make([]int, len(legalMoves))
	for i := range untried {
		untried[i] = i
	}
	return &node{
		state:           state,
		legalMoves:      legalMoves,
		visits:          make([]int, len(legalMoves)),
		total:           make([]float64, len(legalMoves)),
		mean:            make([]float64, len(legalMoves)),
		untried:         untried,
		children:        make([]*node, len(legalMoves)),
		parent:          parent,
		parentActionIdx: parentActionIdx,
	}
}

// isTerminal reports whether v has no legal moves at all - a checkmated or
// stalemated/drawn position, per the construction rule in newNode.
func (v *node) isTerminal() bool {
	return len(v.legalMoves) == 0
}

// hasUntried reports whether v still has an action with no child.
func (v *node) hasUntried() bool {
	return len(v.untried) > 0
}

// uct computes the UCT score of action a at v:
// +Inf for an unvisited action, otherwise Q_a + c*sqrt(ln(N_v)/N_a).
func (v *node) uct(a int, c float64) float64 {
	if v.visits[a] == 0 {
		return math.Inf(1)
	}
	return v.mean[a] + c*math.Sqrt(math.Log(float64(v.n))/float64(v.visits[a]))
}

// bestChildByUCT returns the index of the expanded action (one with a
// non-nil child) with maximal UCT score. Only called when v has no untried
// action left, so every index 0..len(legalMoves)-1 has a child.
func (v *node) bestChildByUCT(c float64) int {
	best := -1
	bestScore := math.Inf(-1)
	for a, child := range v.children {
		if child == nil {
			continue
		}
		score := v.uct(a, c)
		if score > bestScore {
			bestScore = score
			best = a
		}
	}
	return best
}

// bestActionByVisits returns the index of root's most-visited action,
// breaking ties by first-encountered maximum, matching the final move
// selection rule.
func (v *node) bestActionByVisits() int {
	best := -1
	bestN := -1
	for a, child := range v.children {
		if child == nil {
			continue
		}
		if v.visits[a] > bestN {
			bestN = v.visits[a]
			best = a
		}
	}
	return best
}
