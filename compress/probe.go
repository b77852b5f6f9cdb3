package compress

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/arloliu/bytestat/errs"
	"github.com/arloliu/bytestat/format"
)

// probeTypes are the codecs MeasureAll runs when no types are given.
var probeTypes = []format.CompressionType{
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

// Measure compresses data with the given algorithm, decompresses the result
// and reports sizes and timings.
//
// Returns:
//   - CompressionStats: sizes and timings; incompressible input is reported
//     with CompressedSize == OriginalSize and Incompressible set
//   - error: ErrInvalidCompression for unknown types, ErrRoundTrip if the
//     decompressed bytes differ from data, or a codec error
func Measure(compressionType format.CompressionType, data []byte) (CompressionStats, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return CompressionStats{}, err
	}

	stats := CompressionStats{
		Algorithm:    compressionType,
		OriginalSize: int64(len(data)),
	}

	start := time.Now()
	compressed, err := codec.Compress(data)
	stats.CompressionTimeNs = time.Since(start).Nanoseconds()
	if errors.Is(err, errs.ErrIncompressible) {
		stats.CompressedSize = stats.OriginalSize
		stats.Incompressible = true

		return stats, nil
	}
	if err != nil {
		return CompressionStats{}, fmt.Errorf("%s compression failed: %w", compressionType, err)
	}
	stats.CompressedSize = int64(len(compressed))

	start = time.Now()
	restored, err := codec.Decompress(compressed)
	stats.DecompressionTimeNs = time.Since(start).Nanoseconds()
	if err != nil {
		return CompressionStats{}, fmt.Errorf("%s round-trip failed: %w", compressionType, err)
	}
	if !bytes.Equal(restored, data) {
		return CompressionStats{}, fmt.Errorf("%w: %s restored %d of %d bytes",
			errs.ErrRoundTrip, compressionType, len(restored), len(data))
	}

	return stats, nil
}

// MeasureAll runs Measure for each type in order, or for Zstd, S2 and LZ4
// when no types are given. It stops at the first error.
func MeasureAll(data []byte, types ...format.CompressionType) ([]CompressionStats, error) {
	if len(types) == 0 {
		types = probeTypes
	}

	results := make([]CompressionStats, 0, len(types))
	for _, t := range types {
		stats, err := Measure(t, data)
		if err != nil {
			return nil, err
		}
		results = append(results, stats)
	}

	return results, nil
}

// Best returns the probe with the lowest compression ratio, the first one on
// ties. It reports false for an empty slice.
func Best(results []CompressionStats) (CompressionStats, bool) {
	if len(results) == 0 {
		return CompressionStats{}, false
	}

	best := results[0]
	for _, r := range results[1:] {
		if r.CompressionRatio() < best.CompressionRatio() {
			best = r
		}
	}

	return best, true
}
