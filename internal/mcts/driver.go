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
	"context"
	"errors"

	"golang.org/x/sync/semaphore"

	"github.com/frankkopp/alphazero-chess-core/internal/chess"
	"github.com/frankkopp/alphazero-chess-core/internal/config"
	"github.com/frankkopp/alphazero-chess-core/internal/logging"
)

// ErrTerminalState is returned by GetMove when the root state has no legal
// moves. Calling GetMove on a terminal state is a precondition violation the
// caller is expected to check before calling; this is the one such
// violation the driver reports rather than letting it corrupt the search.
var ErrTerminalState = errors.New("mcts: root state has no legal moves")

// Backend supplies the rules operations the driver needs to grow the tree:
// applying a move and listing the legal moves of the resulting state. A
// chess.State/chess.Move pair produced by internal/chess satisfies this
// directly via package-level functions wrapped by an adapter (see
// ChessBackend).
type Backend interface {
	PlayMove(state chess.State, move chess.Move) chess.State
	GetLegalMoves(state chess.State) []chess.Move
}

// ChessBackend adapts internal/chess's package-level functions to Backend.
type ChessBackend struct{}

func (ChessBackend) PlayMove(state chess.State, move chess.Move) chess.State {
	return chess.PlayMove(&state, move)
}

func (ChessBackend) GetLegalMoves(state chess.State) []chess.Move {
	return chess.GetLegalMoves(&state)
}

// Policy picks exactly one move from a non-empty candidate list - the
// guidance prior driving expansion order. It never receives an empty slice.
type Policy func(candidates []chess.Move) chess.Move

// Evaluator scores a batch of leaf states in one call, returning one signed
// scalar per input state in the same order, from each state's own
// side-to-move perspective. Implementations may call back into backend
// (e.g. to re-derive features) which is why it is passed through.
type Evaluator interface {
	Batch(states []chess.State, backend Backend) ([]float64, error)
}

// options holds the tunable knobs of a single GetMove call, seeded from
// config.Settings.MCTS and overridable per call via Option.
type options struct {
	simulations int
	c           float64
	batchSize   int
}

func defaultOptions() options {
	return options{
		simulations: config.Settings.MCTS.Simulations,
		c:           config.Settings.MCTS.ExplorationConstant,
		batchSize:   config.Settings.MCTS.BatchSize,
	}
}

// Option overrides one tuning knob of a GetMove call without touching the
// global config.Settings - for library callers that do not want process-wide
// state.
type Option func(*options)

// WithSimulations overrides the number of simulations run.
func WithSimulations(n int) Option {
	return func(o *options) { o.simulations = n }
}

// WithExplorationConstant overrides the UCT exploration constant c.
func WithExplorationConstant(c float64) Option {
	return func(o *options) { o.c = c }
}

// WithBatchSize overrides the number of queued leaves that triggers a flush.
func WithBatchSize(n int) Option {
	return func(o *options) { o.batchSize = n }
}

// GetMove runs an AlphaZero-style MCTS search from state and returns the
// move on the most-visited root edge. value scores batches of queued
// leaves, policy picks the expansion order at each node, and backend
// applies moves and lists legal moves while growing the tree.
//
// Tree mutation (selection, expansion, backup) is single-threaded; the
// driver acquires a weight-1 semaphore once before the simulation loop and
// releases it only around the blocking call into value.Batch, the
// acquire-release-around-blocking-call idiom of a running-flag semaphore.
// With at most one concurrent caller this never contends - it gives
// a host runtime an explicit, named suspension point to hook without
// violating the "tree mutation is uncontended" contract.
func GetMove(state chess.State, value Evaluator, policy Policy, backend Backend, opts ...Option) (chess.Move, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	log := logging.GetSearchLog()

	root := newNode(state, backend.GetLegalMoves(state), nil, -1)
	if root.isTerminal() {
		return chess.Move{}, ErrTerminalState
	}

	sem := semaphore.NewWeighted(1)
	ctx := context.Background()
	_ = sem.Acquire(ctx, 1)
	defer sem.Release(1)

	var pending []*node
	var pendingStates []chess.State

	flush := func() error {
		if len(pending) == 0 {
			return nil
		}
		log.Debugf("flushing %d queued leaves", len(pending))
		sem.Release(1)
		values, err := func() ([]float64, error) {
			// Reacquire even when Batch panics, so the deferred Release in
			// GetMove stays balanced and the panic reaches the caller as is.
			defer func() { _ = sem.Acquire(ctx, 1) }()
			return value.Batch(pendingStates, backend)
		}()
		if err != nil {
			return err
		}
		for i, leaf := range pending {
			backup(leaf, values[i])
		}
		pending = pending[:0]
		pendingStates = pendingStates[:0]
		return nil
	}

	for i := 0; i < o.simulations; i++ {
		v := selectLeaf(root, o.c)

		leaf := v
		if v.hasUntried() {
			leaf = expand(v, policy, backend)
		}

		pending = append(pending, leaf)
		pendingStates = append(pendingStates, leaf.state)

		if len(pending) >= o.batchSize {
			if err := flush(); err != nil {
				return chess.Move{}, err
			}
		}

		if (i+1)%1000 == 0 {
			log.Debugf("completed %d/%d simulations", i+1, o.simulations)
		}
	}
	if err := flush(); err != nil {
		return chess.Move{}, err
	}

	best := root.bestActionByVisits()
	return root.legalMoves[best], nil
}
