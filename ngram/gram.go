package ngram

import (
	"cmp"
	"encoding/hex"
	"maps"
	"strings"
)

const (
	// MinGramSize is the smallest supported window width.
	MinGramSize = 1
	// MaxGramSize is the largest supported window width.
	MaxGramSize = 3
	// ByteValues is the number of distinct byte values, and the size of every unigram table.
	ByteValues = 256
)

// Gram is an n-gram: exactly n raw bytes held in a string so it can key a map.
type Gram string

// Bytes returns a copy of the gram's bytes.
func (g Gram) Bytes() []byte {
	return []byte(g)
}

// Len returns the gram width in bytes.
func (g Gram) Len() int {
	return len(g)
}

// String returns the gram in lowercase hex, e.g. "4d5a" for "MZ".
func (g Gram) String() string {
	return hex.EncodeToString([]byte(g))
}

// unigrams holds the single-byte grams for every byte value.
var unigrams = func() [ByteValues]Gram {
	var grams [ByteValues]Gram
	for v := range grams {
		grams[v] = Gram([]byte{byte(v)})
	}

	return grams
}()

// Unigram returns the single-byte gram for b.
func Unigram(b byte) Gram {
	return unigrams[b]
}

// Counts maps each gram to its number of occurrences.
type Counts map[Gram]int

// Total returns the sum of all counts, i.e. the number of windows counted.
func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}

	return total
}

// Distinct returns the number of grams with a non-zero count.
//
// For unigram tables this differs from len(c), which is always 256.
func (c Counts) Distinct() int {
	distinct := 0
	for _, n := range c {
		if n > 0 {
			distinct++
		}
	}

	return distinct
}

// Clone returns an independent copy of the table. Cloning nil yields nil.
func (c Counts) Clone() Counts {
	return maps.Clone(c)
}

// Pair is one entry of a distribution.
type Pair struct {
	Gram  Gram
	Count int
}

// comparePairs orders pairs by count descending, then by gram ascending.
func comparePairs(a, b Pair) int {
	if c := cmp.Compare(b.Count, a.Count); c != 0 {
		return c
	}

	return strings.Compare(string(a.Gram), string(b.Gram))
}
