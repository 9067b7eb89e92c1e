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

// GetLegalMoves returns every legal move available to the side to move in
// s. It never panics on an invalid state and returns an empty slice rather
// than nil when no legal move exists - the terminal detector in terminal.go
// disambiguates checkmate from stalemate/draw from that empty result.
func GetLegalMoves(s *State) []Move {
	if hasInsufficientMaterial(s) {
		return []Move{}
	}

	pseudo := generatePseudoLegalMoves(s)

	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		next := PlayMove(s, m)
		if !KingInCheck(&next, s.Turn) {
			legal = append(legal, m)
		}
	}
	return legal
}

// hasInsufficientMaterial implements the cheap insufficient-material
// shortcut: no pawns/rooks/queens and at most one minor piece on the board
// is treated as an immediate draw by short-circuiting move generation.
func hasInsufficientMaterial(s *State) bool {
	prq := 0
	minor := 0
	for _, p := range s.Board {
		switch p.upper() {
		case WhitePawn, WhiteRook, WhiteQueen:
			prq++
		case WhiteBishop, WhiteKnight:
			minor++
		}
	}
	return prq == 0 && minor <= 1
}

// generatePseudoLegalMoves produces every move the side to move's pieces
// could make ignoring whether it leaves the mover's own king in check.
// Duplicates never appear; order is unspecified.
func generatePseudoLegalMoves(s *State) []Move {
	var moves []Move
	mover := s.Turn
	for i, p := range s.Board {
		if p.IsEmpty() || p.Color() != mover {
			continue
		}
		from := Square{Row: i / 8, Col: i % 8}
		switch p.upper() {
		case WhitePawn:
			generatePawnMoves(s, from, mover, &moves)
		case WhiteKnight:
			generateStepMoves(s, from, mover, knightOffsets[:], &moves)
		case WhiteBishop:
			generateSliderMoves(s, from, mover, bishopDirections[:], &moves)
		case WhiteRook:
			generateSliderMoves(s, from, mover, rookDirections[:], &moves)
		case WhiteQueen:
			generateSliderMoves(s, from, mover, bishopDirections[:], &moves)
			generateSliderMoves(s, from, mover, rookDirections[:], &moves)
		case WhiteKing:
			generateStepMoves(s, from, mover, kingDirections[:], &moves)
		}
	}
	return moves
}

// generatePawnMoves appends single/double forward steps and diagonal
// captures for the pawn at from. Promotion is handled by PlayMove, not here.
func generatePawnMoves(s *State, from Square, mover Color, moves *[]Move) {
	dir := -1
	startRow := 6
	if mover == Black {
		dir = 1
		startRow = 1
	}

	oneStep := from.Offset(dir, 0)
	if oneStep.InBounds() && s.At(oneStep).IsEmpty() {
		*moves = append(*moves, Move{From: from, To: oneStep, Score: 0})

		if from.Row == startRow {
			twoStep := from.Offset(2*dir, 0)
			if twoStep.InBounds() && s.At(twoStep).IsEmpty() {
				*moves = append(*moves, Move{From: from, To: twoStep, Score: 0})
			}
		}
	}

	for _, dc := range [2]int{-1, 1} {
		target := from.Offset(dir, dc)
		if !target.InBounds() {
			continue
		}
		tp := s.At(target)
		if tp.IsEmpty() || tp.Color() == mover {
			continue
		}
		if tp.upper() == WhiteKing {
			continue
		}
		*moves = append(*moves, Move{From: from, To: target, Score: tp.Value()})
	}
}

// generateStepMoves appends single-step moves (knight L-shapes, king
// adjacency) along the given offsets: empty targets are quiet moves,
// opposing non-king pieces are scored captures, own pieces are skipped.
func generateStepMoves(s *State, from Square, mover Color, offsets [][2]int, moves *[]Move) {
	for _, o := range offsets {
		to := from.Offset(o[0], o[1])
		if !to.InBounds() {
			continue
		}
		appendIfQuietOrCapture(s, from, to, mover, moves)
	}
}

// generateSliderMoves ray-walks each direction from from, appending quiet
// moves for empty squares and stopping the ray at the first occupied
// square - which yields a capture only if it holds an opposing non-king
// piece.
func generateSliderMoves(s *State, from Square, mover Color, dirs [][2]int, moves *[]Move) {
	for _, d := range dirs {
		cur := from
		for {
			cur = cur.Offset(d[0], d[1])
			if !cur.InBounds() {
				break
			}
			tp := s.At(cur)
			if tp.IsEmpty() {
				*moves = append(*moves, Move{From: from, To: cur, Score: 0})
				continue
			}
			if tp.Color() != mover && tp.upper() != WhiteKing {
				*moves = append(*moves, Move{From: from, To: cur, Score: tp.Value()})
			}
			break
		}
	}
}

func appendIfQuietOrCapture(s *State, from, to Square, mover Color, moves *[]Move) {
	tp := s.At(to)
	if tp.IsEmpty() {
		*moves = append(*moves, Move{From: from, To: to, Score: 0})
		return
	}
	if tp.Color() != mover && tp.upper() != WhiteKing {
		*moves = append(*moves, Move{From: from, To: to, Score: tp.Value()})
	}
}
