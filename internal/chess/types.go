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

// Package chess implements the rules/evaluation backend used by the MCTS
// driver in internal/mcts: legal move generation, move application, terminal
// detection, FEN parsing and a fixed-shape tensor encoding for a learned
// evaluator. Every public function is a referentially transparent mapping
// from inputs to outputs; a State is a value type and is never mutated after
// construction.
package chess

// Piece is the glyph occupying a square: one of the 12 piece letters or
// Empty. Case is the sole ownership test - uppercase belongs to White (the
// first player to move), lowercase to Black.
type Piece byte

// Piece glyphs, matching standard FEN letters. Empty denotes an empty square.
const (
	Empty       Piece = '.'
	WhitePawn   Piece = 'P'
	WhiteKnight Piece = 'N'
	WhiteBishop Piece = 'B'
	WhiteRook   Piece = 'R'
	WhiteQueen  Piece = 'Q'
	WhiteKing   Piece = 'K'
	BlackPawn   Piece = 'p'
	BlackKnight Piece = 'n'
	BlackBishop Piece = 'b'
	BlackRook   Piece = 'r'
	BlackQueen  Piece = 'q'
	BlackKing   Piece = 'k'
)

// IsEmpty reports whether the square holding p has no piece on it.
func (p Piece) IsEmpty() bool { return p == Empty }

// IsWhite reports whether p belongs to the first player (uppercase glyph).
func (p Piece) IsWhite() bool { return p >= 'A' && p <= 'Z' }

// IsBlack reports whether p belongs to the second player (lowercase glyph).
func (p Piece) IsBlack() bool { return p >= 'a' && p <= 'z' }

// Color returns the owning player of p; only meaningful if !p.IsEmpty().
func (p Piece) Color() Color {
	if p.IsWhite() {
		return White
	}
	return Black
}

// upper returns the uppercase form of p, used to look up case-insensitive
// piece kind (value, direction table) regardless of owner.
func (p Piece) upper() Piece {
	if p.IsBlack() {
		return p - ('a' - 'A')
	}
	return p
}

// Value returns the absolute material value of the piece occupying p,
// regardless of color, or 0 if p is empty.
func (p Piece) Value() int {
	return pieceValue[p.upper()]
}

var pieceValue = map[Piece]int{
	Empty:       0,
	WhitePawn:   1,
	WhiteKnight: 3,
	WhiteBishop: 3,
	WhiteRook:   5,
	WhiteQueen:  9,
	WhiteKing:   100,
}

// Color identifies the side to move: White (0) is the first player, Black
// (1) the second.
type Color int8

const (
	White Color = 0
	Black Color = 1
)

// Opponent returns the other color.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// Square addresses one of the 64 board cells in row-major order, row 0
// being the top (Black's back rank in the initial position).
type Square struct {
	Row, Col int
}

// Index returns the linear row*8+col index of sq into a 64-element board.
func (sq Square) Index() int { return sq.Row*8 + sq.Col }

// InBounds reports whether sq addresses a square on the board.
func (sq Square) InBounds() bool {
	return sq.Row >= 0 && sq.Row < 8 && sq.Col >= 0 && sq.Col < 8
}

// Offset returns the square dr rows and dc cols away from sq. The result may
// be out of bounds; callers must check InBounds before indexing a board.
func (sq Square) Offset(dr, dc int) Square {
	return Square{Row: sq.Row + dr, Col: sq.Col + dc}
}

// Move is a single ply: the (from, to) square pair plus an advisory score
// equal to the absolute value of the captured piece (0 for a quiet move).
// The score is used by external priors/move-ordering; it never affects
// legality.
type Move struct {
	From, To Square
	Score    int
}

// knightOffsets are the 8 L-shaped knight jumps.
var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// bishopDirections are the 4 diagonal ray directions.
var bishopDirections = [4][2]int{
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

// rookDirections are the 4 orthogonal ray directions.
var rookDirections = [4][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
}

// kingDirections are all 8 adjacent offsets, used for the king step set and
// for king-proximity checks.
var kingDirections = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}
