package sudoku

import (
	"math"
	"math/rand/v2"
	"slices"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type void struct{}

type set[T comparable] map[T]void

func isqrt(n int) int {
	r := int(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// RotateLeft returns a copy of seq with the first n items moved to the
// end. n may exceed the length or be negative.
func RotateLeft[T any](seq []T, n int) []T {
	if len(seq) == 0 {
		return nil
	}
	n = ((n % len(seq)) + len(seq)) % len(seq)
	rotated := make([]T, 0, len(seq))
	rotated = append(rotated, seq[n:]...)
	return append(rotated, seq[:n]...)
}

// RotateRight returns a copy of seq with the last n items moved to the
// front.
func RotateRight[T any](seq []T, n int) []T {
	return RotateLeft(seq, -n)
}

func shuffled(symbols []Symbol, rnd *rand.Rand) []Symbol {
	seq := slices.Clone(symbols)
	rnd.Shuffle(len(seq), func(i, j int) {
		seq[i], seq[j] = seq[j], seq[i]
	})
	return seq
}
