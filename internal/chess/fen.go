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

import (
	"fmt"
	"strconv"
	"strings"
)

// StateFromFEN parses a standard six-field FEN string into a State.
// Precondition: s has at least a piece-placement field; an error is
// returned otherwise. Trailing fields beyond piece-placement are optional -
// any that are missing leave the corresponding State fields at their zero
// defaults. En-passant target and full-move number are tokenized but
// discarded - they carry no state this core tracks (en-passant is not
// modeled).
func StateFromFEN(s string) (State, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) == 0 {
		return State{}, fmt.Errorf("chess: empty FEN")
	}

	var state State
	row, col := 0, 0
	for _, r := range fields[0] {
		switch {
		case r == '/':
			continue
		case r >= '1' && r <= '8':
			n, _ := strconv.Atoi(string(r))
			for i := 0; i < n; i++ {
				state.Board[row*8+col] = Empty
				col++
			}
		default:
			state.Board[row*8+col] = Piece(r)
			col++
		}
		if col >= 8 {
			row++
			col = 0
		}
	}

	state.Turn = White
	if len(fields) >= 2 && fields[1] == "b" {
		state.Turn = Black
	}

	if len(fields) >= 3 {
		rights := fields[2]
		state.WhiteCanCastleKingside = strings.Contains(rights, "K")
		state.WhiteCanCastleQueenside = strings.Contains(rights, "Q")
		state.BlackCanCastleKingside = strings.Contains(rights, "k")
		state.BlackCanCastleQueenside = strings.Contains(rights, "q")
	}

	// fields[3] is the en-passant target square - parsed and discarded.

	if len(fields) >= 5 {
		if clock, err := strconv.Atoi(fields[4]); err == nil {
			state.FiftyMoveCounter = clock
		}
	}

	// fields[5] is the full-move number - parsed and discarded.

	return state, nil
}
