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

// Tensor is the fixed-shape (17, 8, 8) encoding of a State handed to the
// learned evaluator. Row/column ordering matches the board's row-major
// layout - tensor[c][r][col] mirrors State.Board[r*8+col].
type Tensor [17][8][8]float64

// planeOrder fixes channels 0-11 to the one-hot piece planes in the order
// required by the tensor encoding contract.
var planeOrder = [12]Piece{
	WhitePawn, WhiteKnight, WhiteBishop, WhiteRook, WhiteQueen, WhiteKing,
	BlackPawn, BlackKnight, BlackBishop, BlackRook, BlackQueen, BlackKing,
}

// StateToTensor encodes s into the fixed (17,8,8) tensor contract shared
// with the external value/policy network: channels 0-11 are one-hot piece
// planes, channel 12 is the side-to-move plane, channels 13-16 are the
// castling-right planes.
func StateToTensor(s *State) Tensor {
	var t Tensor

	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := s.Board[r*8+c]
			for ch, want := range planeOrder {
				if p == want {
					t[ch][r][c] = 1.0
				}
			}
		}
	}

	sideToMove := 0.0
	if s.Turn == White {
		sideToMove = 1.0
	}
	castling := [4]bool{
		s.WhiteCanCastleKingside,
		s.WhiteCanCastleQueenside,
		s.BlackCanCastleKingside,
		s.BlackCanCastleQueenside,
	}
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			t[12][r][c] = sideToMove
			for i, on := range castling {
				if on {
					t[13+i][r][c] = 1.0
				}
			}
		}
	}

	return t
}
