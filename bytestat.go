// Package bytestat computes byte-level statistical summaries of binary data:
// Shannon entropy, n-gram frequency distributions, compressibility and
// human-readable sizes.
//
// These are the building blocks of binary triage: file-type detection looks
// at the most frequent bytes and byte pairs, and packing or encryption shows
// up as high entropy that no codec can compress.
//
// # Core Features
//
//   - N-gram counting over 1-, 2- and 3-byte windows with a configurable step
//   - Ranked distributions with top-K, skip-top and exclusion filters
//   - Per-source caching of count tables in an explicit side table
//   - Shannon entropy, entropy profiles and coarse entropy bands
//   - Compressibility probes with Zstd, S2 and LZ4
//
// # Basic Usage
//
// Counting and ranking byte pairs:
//
//	import "github.com/arloliu/bytestat"
//
//	data := []byte("MZ\x90\x00\x03\x00\x00\x00")
//	counts, _ := bytestat.NgramCounts(data, 2, 1)
//	top, _ := bytestat.NgramDistribution(data, 2, 1, ngram.WithTopK(3))
//
// Summarizing a named buffer, whose tables are cached for later calls:
//
//	src := ngram.NewBuffer("sample.exe", data)
//	summary, _ := bytestat.Summarize(src)
//	fmt.Println(summary.HumanSize, summary.Entropy, summary.Level)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the ngram,
// entropy, humanize and compress packages. For fine-grained control, such as a
// private Analyzer with its own cache, use those packages directly.
package bytestat

import (
	"github.com/arloliu/bytestat/entropy"
	"github.com/arloliu/bytestat/format"
	"github.com/arloliu/bytestat/humanize"
	"github.com/arloliu/bytestat/ngram"
)

var defaultAnalyzer = ngram.NewDefaultAnalyzer()

// DefaultAnalyzer returns the shared Analyzer behind NgramCounts,
// NgramDistribution and Summarize.
//
// Its cache lives as long as the process. Call Forget on it for sources that
// are no longer needed, or Reset to drop everything.
func DefaultAnalyzer() *ngram.Analyzer {
	return defaultAnalyzer
}

// EnsureString returns input as text, decoding byte slices with the named
// encoding and falling back to latin-1. See humanize.EnsureString.
//
// Example:
//
//	s, err := bytestat.EnsureString(raw, "utf-8", format.PolicyStrict)
func EnsureString(input any, encoding string, policy format.ErrorPolicy) (string, error) {
	return humanize.EnsureString(input, encoding, policy)
}

// HumanReadableSize formats a byte count, e.g. HumanReadableSize(1024, 0) == "1KB".
// See humanize.Size.
func HumanReadableSize(size uint64, precision int) string {
	return humanize.Size(size, precision)
}

// NgramCounts returns the n-gram table of input, a []byte or an ngram.Source.
//
// Sources are cached in the default analyzer per gram width; the step is not
// part of the cache key, so the first call for a given n decides the table.
//
// Parameters:
//   - input: []byte (never cached) or ngram.Source (cached)
//   - n: window width, 1, 2 or 3
//   - step: distance between window starts, at least 1
//
// Returns:
//   - ngram.Counts: the count table; all 256 byte values for n = 1
//   - error: errs.ErrInvalidGramSize, errs.ErrInvalidStep or errs.ErrUnsupportedInput
func NgramCounts(input any, n, step int) (ngram.Counts, error) {
	return defaultAnalyzer.Counts(input, n, step)
}

// NgramDistribution returns the ranked n-gram distribution of input.
//
// Available options:
//   - ngram.WithTopK(k)
//   - ngram.WithSkipTop(s)
//   - ngram.WithExclude(grams...)
//
// Excluded grams are filtered after truncation, so the result may hold fewer
// than k entries. See ngram.Distribution.
func NgramDistribution(input any, n, step int, opts ...ngram.DistributionOption) ([]ngram.Pair, error) {
	return defaultAnalyzer.Distribution(input, n, step, opts...)
}

// ShannonEntropy returns the entropy of data in bits per byte; 0.0 for empty
// or single-valued input. See entropy.Shannon.
func ShannonEntropy(data []byte) float64 {
	return entropy.Shannon(data)
}
