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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateToTensorOneHotPlanesSumToOneOnOccupiedSquares(t *testing.T) {
	s := NewInitialState()
	tensor := StateToTensor(&s)

	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			sum := 0.0
			for ch := 0; ch < 12; ch++ {
				sum += tensor[ch][r][c]
			}
			if s.Board[r*8+c].IsEmpty() {
				assert.Zero(t, sum)
			} else {
				assert.Equal(t, 1.0, sum)
			}
		}
	}
}

func TestStateToTensorSideToMovePlaneIsUniform(t *testing.T) {
	s := NewInitialState()
	tensor := StateToTensor(&s)
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			assert.Equal(t, 1.0, tensor[12][r][c])
		}
	}
}

func TestStateToTensorCastlingPlanesMatchFlags(t *testing.T) {
	s, _ := StateFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w Kq - 0 1")
	tensor := StateToTensor(&s)
	want := [4]float64{1.0, 0.0, 0.0, 1.0}
	for i, w := range want {
		for r := 0; r < 8; r++ {
			for c := 0; c < 8; c++ {
				assert.Equal(t, w, tensor[13+i][r][c])
			}
		}
	}
}
