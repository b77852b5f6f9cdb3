package entropy

import (
	"math"

	"github.com/arloliu/bytestat/ngram"
)

// MaxBits is the largest possible entropy of a byte sequence.
const MaxBits = 8.0

// Shannon returns the Shannon entropy of data in bits per byte:
//
//	H = -Σ p(v) · log2 p(v)
//
// over every distinct byte value v. Empty input and single-valued input both
// yield exactly 0.0.
func Shannon(data []byte) float64 {
	if len(data) == 0 {
		return 0.0
	}

	var hist [ngram.ByteValues]uint64
	for _, b := range data {
		hist[b]++
	}

	return FromHistogram(&hist)
}

// FromHistogram returns the entropy of a byte histogram. An all-zero
// histogram yields 0.0.
func FromHistogram(hist *[ngram.ByteValues]uint64) float64 {
	var total uint64
	for _, c := range hist {
		total += c
	}
	if total == 0 {
		return 0.0
	}

	h := 0.0
	for _, c := range hist {
		if c == 0 {
			continue
		}
		p := float64(c) / float64(total)
		h -= p * math.Log2(p)
	}

	return clampZero(h)
}

// FromCounts returns the entropy of an n-gram table in bits per gram.
// For unigram tables it equals Shannon of the counted bytes.
func FromCounts(counts ngram.Counts) float64 {
	total := counts.Total()
	if total == 0 {
		return 0.0
	}

	h := 0.0
	for _, c := range counts {
		if c <= 0 {
			continue
		}
		p := float64(c) / float64(total)
		h -= p * math.Log2(p)
	}

	return clampZero(h)
}

// Normalized returns Shannon(data) scaled to [0, 1].
func Normalized(data []byte) float64 {
	return Shannon(data) / MaxBits
}

// clampZero maps degenerate results (negative zero, rounding noise below
// zero, NaN) to exactly 0.0.
func clampZero(h float64) float64 {
	if h <= 0 || math.IsNaN(h) {
		return 0.0
	}

	return h
}
