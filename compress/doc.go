// Package compress probes how well binary data compresses.
//
// Entropy alone can mislead: a table of ascending integers has high byte
// entropy but compresses extremely well, while packed code stays near its
// original size under every algorithm. Measuring the actual compression ratio
// with a few general-purpose codecs gives a second, independent signal for
// packing and encryption detection.
//
// # Codecs
//
//   - None: identity, the baseline (format.CompressionNone)
//   - Zstd: best ratio, the most telling probe (format.CompressionZstd)
//   - S2: fast, Snappy-compatible block format (format.CompressionS2)
//   - LZ4: fastest, weakest matcher (format.CompressionLZ4)
//
// Zstd is backed by github.com/klauspost/compress/zstd. Building with cgo and
// the gozstd tag switches it to github.com/valyala/gozstd.
//
// # Measuring
//
//	stats, err := compress.Measure(format.CompressionZstd, data)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%.2f\n", stats.CompressionRatio()) // < 1.0 means it shrank
//
//	all, _ := compress.MeasureAll(data) // Zstd, S2 and LZ4
//
// Measure always round-trips the data and fails with errs.ErrRoundTrip if the
// decompressed bytes differ from the input.
//
// # Thread Safety
//
// All codecs are stateless values backed by sync.Pool and are safe for
// concurrent use.
package compress
