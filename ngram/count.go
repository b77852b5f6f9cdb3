package ngram

import (
	"fmt"

	"github.com/arloliu/bytestat/endian"
	"github.com/arloliu/bytestat/errs"
)

// Count returns the n-gram table of data, taking windows of n bytes at offsets
// 0, step, 2*step, ... for as long as a full window fits.
//
// Parameters:
//   - data: byte sequence to scan; nil is treated as empty
//   - n: window width, 1, 2 or 3
//   - step: distance between consecutive window starts, at least 1
//
// Returns:
//   - Counts: an empty table when len(data) < n; for n = 1 all 256 byte values
//     are present and step is ignored; for n > 1 only observed grams are present
//   - error: ErrInvalidGramSize or ErrInvalidStep, reported before any scanning
func Count(data []byte, n, step int) (Counts, error) {
	if err := validateWindow(n, step); err != nil {
		return nil, err
	}

	return count(data, n, step), nil
}

func validateWindow(n, step int) error {
	if n < MinGramSize || n > MaxGramSize {
		return fmt.Errorf("%w: got %d", errs.ErrInvalidGramSize, n)
	}
	if step <= 0 {
		return fmt.Errorf("%w: got %d", errs.ErrInvalidStep, step)
	}

	return nil
}

func count(data []byte, n, step int) Counts {
	if len(data) < n {
		return Counts{}
	}

	switch n {
	case 1:
		return countUnigrams(data)
	case 2:
		return countWide(data, 2, step)
	default:
		return countWide(data, 3, step)
	}
}

func countUnigrams(data []byte) Counts {
	var hist [ByteValues]int
	for _, b := range data {
		hist[b]++
	}

	counts := make(Counts, ByteValues)
	for v, c := range hist {
		counts[unigrams[v]] = c
	}

	return counts
}

// countWide counts 2- and 3-byte windows through packed integer keys, so the
// scan does not build a string per window.
func countWide(data []byte, n, step int) Counts {
	engine := endian.GetBigEndianEngine()
	last := len(data) - n

	packed := make(map[uint32]int)
	for off := 0; off <= last; off += step {
		var key uint32
		if n == 2 {
			key = uint32(engine.Uint16(data[off:]))
		} else {
			key = endian.Uint24(engine, data[off:])
		}
		packed[key]++
	}

	counts := make(Counts, len(packed))
	buf := make([]byte, 0, MaxGramSize)
	for key, c := range packed {
		if n == 2 {
			buf = engine.AppendUint16(buf[:0], uint16(key))
		} else {
			buf = endian.AppendUint24(engine, buf[:0], key)
		}
		counts[Gram(buf)] = c
	}

	return counts
}
