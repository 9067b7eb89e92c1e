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

import "github.com/frankkopp/alphazero-chess-core/internal/assert"

// PlayMove returns the state resulting from applying m to s. Precondition:
// m must be one of the moves returned by GetLegalMoves(s); PlayMove performs
// no legality check beyond what the castling-right/castling-execution steps
// below encode - passing an illegal move is undefined behavior. Built with
// the "debug" tag, the precondition that m moves the side to move's own
// piece is asserted rather than silently corrupting the board; release
// builds skip the check entirely.
func PlayMove(s *State, m Move) State {
	next := *s
	next.WhiteHistory = append([]Move(nil), s.WhiteHistory...)
	next.BlackHistory = append([]Move(nil), s.BlackHistory...)

	mover := s.Turn
	pc := s.At(m.From)
	target := s.At(m.To)

	assert.Assert(!pc.IsEmpty() && pc.Color() == mover,
		"PlayMove: %v does not move a %v piece (found %v on %v)", m, mover, pc, m.From)

	next.Turn = mover.Opponent()
	next.FiftyMoveCounter++

	if mover == White {
		next.WhiteHistory = append([]Move{m}, next.WhiteHistory...)
	} else {
		next.BlackHistory = append([]Move{m}, next.BlackHistory...)
	}

	if pc.upper() == WhitePawn || !target.IsEmpty() {
		next.FiftyMoveCounter = 0
	}

	updateCastlingRights(&next, m, pc)

	if pc.upper() == WhiteKing && m.To.Col-m.From.Col == 2 {
		relocateRook(&next, m.From.Row, 7, 5)
	} else if pc.upper() == WhiteKing && m.To.Col-m.From.Col == -2 {
		relocateRook(&next, m.From.Row, 0, 3)
	}

	next.Board[m.To.Index()] = pc
	next.Board[m.From.Index()] = Empty

	if pc == WhitePawn && m.To.Row == 0 {
		next.Board[m.To.Index()] = WhiteQueen
	} else if pc == BlackPawn && m.To.Row == 7 {
		next.Board[m.To.Index()] = BlackQueen
	}

	return next
}

// updateCastlingRights monotonically clears castling rights on a king move
// or a rook move away from its original file. Rights never turn back on. A
// rook move is judged by origin file alone, not origin square: a rook
// that wanders back through file 0 or 7 from a non-home row still clears
// the corresponding right, matching the original engine's fc-only check.
func updateCastlingRights(next *State, m Move, pc Piece) {
	switch pc {
	case WhiteKing:
		next.WhiteCanCastleKingside = false
		next.WhiteCanCastleQueenside = false
	case BlackKing:
		next.BlackCanCastleKingside = false
		next.BlackCanCastleQueenside = false
	case WhiteRook:
		if m.From.Col == 7 {
			next.WhiteCanCastleKingside = false
		} else if m.From.Col == 0 {
			next.WhiteCanCastleQueenside = false
		}
	case BlackRook:
		if m.From.Col == 7 {
			next.BlackCanCastleKingside = false
		} else if m.From.Col == 0 {
			next.BlackCanCastleQueenside = false
		}
	}
}

// relocateRook moves the rook on (row, fromCol) to (row, toCol), used when
// executing a two-file king move as a castle.
func relocateRook(next *State, row, fromCol, toCol int) {
	from := Square{Row: row, Col: fromCol}
	to := Square{Row: row, Col: toCol}
	next.Board[to.Index()] = next.Board[from.Index()]
	next.Board[from.Index()] = Empty
}
