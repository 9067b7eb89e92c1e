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

// fiftyMoveLimit is the half-move clock threshold at which a game is drawn.
const fiftyMoveLimit = 50

// CheckWin reports checkmate against the side to move: no legal move and
// that side's king is in check.
func CheckWin(s *State) bool {
	return len(GetLegalMoves(s)) == 0 && KingInCheck(s, s.Turn)
}

// CheckDraw reports stalemate, insufficient material, the fifty-move
// clock, or the repetition-style periodicity heuristic on both players'
// move histories.
func CheckDraw(s *State) bool {
	if len(GetLegalMoves(s)) == 0 && !KingInCheck(s, s.Turn) {
		return true
	}
	if s.FiftyMoveCounter >= fiftyMoveLimit {
		return true
	}
	return hasRepeatedPrefix(s.WhiteHistory) && hasRepeatedPrefix(s.BlackHistory)
}

// hasRepeatedPrefix reports whether the move history (most-recent-first)
// contains a short periodic suffix: a KMP-based surrogate for threefold
// repetition, used in place of a Zobrist-hashed position count. It computes
// the KMP failure function over the history as a sequence of moves and
// looks for any prefix length i+1 whose period p (p = i+1-failure[i])
// divides i+1 at least 3 times.
func hasRepeatedPrefix(history []Move) bool {
	n := len(history)
	if n == 0 {
		return false
	}
	failure := make([]int, n)
	k := 0
	for i := 1; i < n; i++ {
		for k > 0 && history[i] != history[k] {
			k = failure[k-1]
		}
		if history[i] == history[k] {
			k++
		}
		failure[i] = k
	}
	for i := 0; i < n; i++ {
		p := (i + 1) - failure[i]
		if p >= 2 && (i+1)%p == 0 && (i+1)/p >= 3 {
			return true
		}
	}
	return false
}
