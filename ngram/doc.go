// Package ngram counts fixed-width byte windows (n-grams) in binary data and
// ranks them into filterable frequency distributions.
//
// # Counting
//
// Count slides a window of n bytes (n is 1, 2 or 3) over a byte sequence,
// advancing step bytes between window starts, and returns a Counts table:
//
//	counts, err := ngram.Count(data, 2, 1)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(counts[ngram.Gram("MZ")])
//
// Unigram tables (n = 1) are full histograms: all 256 byte values are present,
// including those that never occur, and step does not apply. Tables for n > 1
// only contain windows that were actually observed.
//
// # Distributions
//
// Distribution sorts a table by count (descending, ties broken by gram in
// byte-wise order) and selects a window of it:
//
//	top, _ := ngram.Distribution(counts,
//	    ngram.WithTopK(10),          // keep ten entries
//	    ngram.WithSkipTop(1),        // after dropping the most frequent one
//	    ngram.WithExclude("\x00"),   // and ignoring NUL bytes
//	)
//
// Truncation to the retrieval budget (topK + skipTop + number of exclusions)
// happens before excluded grams are filtered out. An excluded gram that ranks
// inside the budget still uses one slot of it, so the result can hold fewer
// than topK entries even when the table has more.
//
// # Caching
//
// An Analyzer memoizes tables per Source and gram width in a side table. The
// step is not part of the cache key: the first request for a given n decides
// the table every later request for that n receives. The analyzer never
// notices changes to the bytes behind a Source; call Forget or Refresh after
// mutating them.
//
// Analyzer methods are safe for concurrent use. Package-level functions hold
// no state.
package ngram
