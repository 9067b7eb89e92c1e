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

// Command selfplay drives the engine core through a complete game against
// itself, printing the move list and final result. It is a thin demo
// harness, not a training loop: the evaluator plugged in here is a material
// count, standing in for the external learned value network the core is
// designed around.
package main

import (
	"flag"
	"math/rand"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/alphazero-chess-core/internal/chess"
	"github.com/frankkopp/alphazero-chess-core/internal/config"
	"github.com/frankkopp/alphazero-chess-core/internal/logging"
	"github.com/frankkopp/alphazero-chess-core/internal/mcts"
)

var out = message.NewPrinter(language.English)

// materialEvaluator stands in for the external learned value network: it
// scores a leaf by signed material count from the evaluated state's own
// side-to-move perspective, normalized into a bounded range so it composes
// sensibly with the +1/-1 terminal values CheckWin/CheckDraw leaves carry
// when wired through a richer evaluator.
type materialEvaluator struct{}

func (materialEvaluator) Batch(states []chess.State, _ mcts.Backend) ([]float64, error) {
	out := make([]float64, len(states))
	for i, s := range states {
		st := s
		out[i] = materialScore(&st)
	}
	return out, nil
}

func materialScore(s *chess.State) float64 {
	if chess.CheckWin(s) {
		return -1
	}
	if chess.CheckDraw(s) {
		return 0
	}
	var score int
	for _, p := range s.Board {
		if p.IsEmpty() {
			continue
		}
		v := p.Value()
		if p.Color() == s.Turn {
			score += v
		} else {
			score -= v
		}
	}
	const maxMaterial = 39.0 // queen+2 rooks+2 bishops+2 knights+8 pawns
	clamped := float64(score) / maxMaterial
	if clamped > 1 {
		clamped = 1
	}
	if clamped < -1 {
		clamped = -1
	}
	return clamped
}

// randomPolicy is the guidance prior used in place of a learned policy
// network: it picks uniformly at random among the untried candidates.
func randomPolicy(candidates []chess.Move) chess.Move {
	return candidates[rand.Intn(len(candidates))]
}

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	fen := flag.String("fen", chess.StartFEN, "FEN of the position to start self-play from")
	simulations := flag.Int("simulations", 0, "simulations per move (0 uses the configured default)")
	maxPlies := flag.Int("maxplies", 200, "maximum number of plies before self-play stops")
	cpuProfile := flag.Bool("cpuprofile", false, "enable CPU profiling for this run")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()
	log := logging.GetLog()

	state, err := chess.StateFromFEN(*fen)
	if err != nil {
		log.Errorf("invalid starting FEN %q: %v", *fen, err)
		return
	}

	value := materialEvaluator{}
	backend := mcts.ChessBackend{}

	var opts []mcts.Option
	if *simulations > 0 {
		opts = append(opts, mcts.WithSimulations(*simulations))
	}

	var moves []chess.Move
	for ply := 0; ply < *maxPlies; ply++ {
		if chess.CheckWin(&state) || chess.CheckDraw(&state) {
			break
		}
		move, err := mcts.GetMove(state, value, randomPolicy, backend, opts...)
		if err != nil {
			log.Errorf("search failed at ply %d: %v", ply, err)
			return
		}
		state = chess.PlayMove(&state, move)
		moves = append(moves, move)
		out.Printf("%3d. %s\n", ply+1, uciString(move))
	}

	switch {
	case chess.CheckWin(&state):
		out.Println("result: checkmate")
	case chess.CheckDraw(&state):
		out.Println("result: draw")
	default:
		out.Println("result: ply limit reached")
	}
	out.Printf("plies played: %d\n", len(moves))
}

// uciString renders a move as a four-character square pair, e.g. "e2e4".
func uciString(m chess.Move) string {
	file := func(c int) byte { return byte('a' + c) }
	rank := func(r int) byte { return byte('0' + (8 - r)) }
	return string([]byte{
		file(m.From.Col), rank(m.From.Row),
		file(m.To.Col), rank(m.To.Row),
	})
}
