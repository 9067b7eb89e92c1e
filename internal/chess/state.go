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

package chess

import "strings"

// StartFEN is the standard FEN of the initial chess position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// State is the full, immutable chess position: the 64-square board, the
// side to move, castling rights, the fifty-move counter and the per-player
// move histories used by the repetition-style draw heuristic.
//
// States are value-typed: PlayMove always returns a fresh State, never
// mutating its receiver in place, so a State can be freely shared between
// MCTS nodes without aliasing concerns.
type State struct {
	Board [64]Piece
	Turn  Color

	FiftyMoveCounter int

	WhiteCanCastleKingside  bool
	WhiteCanCastleQueenside bool
	BlackCanCastleKingside  bool
	BlackCanCastleQueenside bool

	// WhiteHistory and BlackHistory hold that player's played moves,
	// most-recent-first. Used only by the repetition-style draw heuristic
	// in terminal.go.
	WhiteHistory []Move
	BlackHistory []Move
}

// At returns the piece occupying sq.
func (s *State) At(sq Square) Piece {
	return s.Board[sq.Index()]
}

// NewInitialState returns the standard chess starting position: White to
// move, all four castling rights held, empty histories.
func NewInitialState() State {
	s, err := StateFromFEN(StartFEN)
	if err != nil {
		// StartFEN is a compile-time constant; this can never happen.
		panic(err)
	}
	s.FiftyMoveCounter = 0
	return s
}

// String renders the board as an 8-row diagram (row 0 first) followed by
// the side to move and castling rights - a debugging aid in the same style
// as a position/board debug dump, not part of the external contract. The
// fifty-move counter and the move histories are not printed.
func (s *State) String() string {
	var b strings.Builder
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			b.WriteByte(byte(s.Board[r*8+c]))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	if s.Turn == White {
		b.WriteString("turn: white\n")
	} else {
		b.WriteString("turn: black\n")
	}
	b.WriteString("castling: ")
	flags := []struct {
		on   bool
		char byte
	}{
		{s.WhiteCanCastleKingside, 'K'},
		{s.WhiteCanCastleQueenside, 'Q'},
		{s.BlackCanCastleKingside, 'k'},
		{s.BlackCanCastleQueenside, 'q'},
	}
	any := false
	for _, f := range flags {
		if f.on {
			b.WriteByte(f.char)
			any = true
		}
	}
	if !any {
		b.WriteByte('-')
	}
	b.WriteByte('\n')
	return b.String()
}
