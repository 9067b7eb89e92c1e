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

// findKing returns the square holding player's king, and false if no such
// king is on the board.
func findKing(s *State, player Color) (Square, bool) {
	want := WhiteKing
	if player == Black {
		want = BlackKing
	}
	for i, p := range s.Board {
		if p == want {
			return Square{Row: i / 8, Col: i % 8}, true
		}
	}
	return Square{}, false
}

// KingInCheck reports whether player's king is attacked by any opposing
// piece in s. Returns false if player has no king on the board.
func KingInCheck(s *State, player Color) bool {
	kingSq, ok := findKing(s, player)
	if !ok {
		return false
	}
	return isAttacked(s, kingSq, player.Opponent())
}

// isAttacked reports whether sq is attacked by any piece belonging to by.
func isAttacked(s *State, sq Square, by Color) bool {
	if pawnAttacksSquare(s, sq, by) {
		return true
	}
	if knightAttacksSquare(s, sq, by) {
		return true
	}
	if sliderAttacksSquare(s, sq, by, rookDirections, WhiteRook, WhiteQueen) {
		return true
	}
	if sliderAttacksSquare(s, sq, by, bishopDirections, WhiteBishop, WhiteQueen) {
		return true
	}
	if kingAttacksSquare(s, sq, by) {
		return true
	}
	return false
}

// pawnAttacksSquare checks the two diagonal-forward squares (from by's
// point of view) relative to sq for an attacking pawn of color by.
func pawnAttacksSquare(s *State, sq Square, by Color) bool {
	// by's pawns attack "backward" onto sq relative to their own advance
	// direction: a white pawn on (r+1, c+-1) attacks (r, c); a black pawn
	// on (r-1, c+-1) attacks (r, c).
	dr := 1
	want := WhitePawn
	if by == Black {
		dr = -1
		want = BlackPawn
	}
	for _, dc := range [2]int{-1, 1} {
		from := sq.Offset(dr, dc)
		if from.InBounds() && s.At(from) == want {
			return true
		}
	}
	return false
}

func knightAttacksSquare(s *State, sq Square, by Color) bool {
	want := WhiteKnight
	if by == Black {
		want = BlackKnight
	}
	for _, o := range knightOffsets {
		from := sq.Offset(o[0], o[1])
		if from.InBounds() && s.At(from) == want {
			return true
		}
	}
	return false
}

func kingAttacksSquare(s *State, sq Square, by Color) bool {
	want := WhiteKing
	if by == Black {
		want = BlackKing
	}
	for _, o := range kingDirections {
		from := sq.Offset(o[0], o[1])
		if from.InBounds() && s.At(from) == want {
			return true
		}
	}
	return false
}

// sliderAttacksSquare ray-walks each direction in dirs from sq outward,
// stopping at the first non-empty square, and reports whether that square
// holds a by-colored piece of kind straightPiece (rook/bishop upper glyph)
// or queenPiece.
func sliderAttacksSquare(s *State, sq Square, by Color, dirs [4][2]int, straightPiece, queenPiece Piece) bool {
	wantStraight := straightPiece
	wantQueen := queenPiece
	if by == Black {
		wantStraight = straightPiece + ('a' - 'A')
		wantQueen = queenPiece + ('a' - 'A')
	}
	for _, d := range dirs {
		cur := sq
		for {
			cur = cur.Offset(d[0], d[1])
			if !cur.InBounds() {
				break
			}
			p := s.At(cur)
			if p.IsEmpty() {
				continue
			}
			if p == wantStraight || p == wantQueen {
				return true
			}
			break
		}
	}
	return false
}
