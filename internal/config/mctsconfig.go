/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package config

// MCTSConfiguration is a data structure to hold the default tuning knobs of
// an MCTS driver run. Any of these may be overridden per call via
// mcts.Option without touching this global state.
type MCTSConfiguration struct {
	// Simulations is the number of simulations run per GetMove call.
	Simulations int

	// ExplorationConstant is the "c" factor in the UCT formula.
	ExplorationConstant float64

	// BatchSize is the number of queued leaves that triggers a value.batch flush.
	BatchSize int
}

// sets defaults which might be overwritten by the config file.
func init() {
	Settings.MCTS.Simulations = 1000
	Settings.MCTS.ExplorationConstant = 1.4
	Settings.MCTS.BatchSize = 32
}
