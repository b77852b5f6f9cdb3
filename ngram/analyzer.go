package ngram

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/arloliu/bytestat/errs"
	"github.com/arloliu/bytestat/internal/hash"
	"github.com/arloliu/bytestat/internal/options"
)

// AnalyzerConfig holds Analyzer settings.
type AnalyzerConfig struct {
	cacheEnabled bool
	fingerprint  bool
}

func defaultAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{
		cacheEnabled: true,
		fingerprint:  true,
	}
}

// AnalyzerOption is a functional option for NewAnalyzer.
type AnalyzerOption = options.Option[*AnalyzerConfig]

// WithCache enables or disables the per-source table cache. Enabled by default.
func WithCache(enabled bool) AnalyzerOption {
	return options.NoError(func(cfg *AnalyzerConfig) {
		cfg.cacheEnabled = enabled
	})
}

// WithFingerprint controls whether a content fingerprint is recorded when a
// source is first cached. Refresh needs it. Enabled by default.
func WithFingerprint(enabled bool) AnalyzerOption {
	return options.NoError(func(cfg *AnalyzerConfig) {
		cfg.fingerprint = enabled
	})
}

// CacheStats reports cache activity of an Analyzer.
type CacheStats struct {
	Hits    uint64 // requests served from the cache
	Misses  uint64 // requests that scanned the source
	Entries int    // sources currently cached
}

type cacheEntry struct {
	tables        [MaxGramSize + 1]Counts // indexed by n
	fingerprint   uint64
	fingerprinted bool
}

// Analyzer counts n-grams and caches tables per Source and gram width.
//
// The cache key is (source identity, n). The step is deliberately not part of
// it: once a table for n is cached, later requests for n return it whatever
// step they ask for.
//
// An Analyzer is safe for concurrent use. Counting a source happens under the
// analyzer's lock, so concurrent misses are serialized.
type Analyzer struct {
	mu     sync.Mutex
	cfg    AnalyzerConfig
	cache  map[Source]*cacheEntry
	hits   uint64
	misses uint64
}

// NewAnalyzer creates an Analyzer configured by opts.
func NewAnalyzer(opts ...AnalyzerOption) (*Analyzer, error) {
	cfg := defaultAnalyzerConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return &Analyzer{
		cfg:   cfg,
		cache: make(map[Source]*cacheEntry),
	}, nil
}

// NewDefaultAnalyzer creates an Analyzer with caching and fingerprints enabled.
func NewDefaultAnalyzer() *Analyzer {
	return &Analyzer{
		cfg:   defaultAnalyzerConfig(),
		cache: make(map[Source]*cacheEntry),
	}
}

// Counts returns the n-gram table of input, which must be a []byte or a Source.
//
// Raw byte slices are never cached. Sources are served through CountSource.
// Any other input type yields ErrUnsupportedInput; n and step are validated first.
func (a *Analyzer) Counts(input any, n, step int) (Counts, error) {
	if err := validateWindow(n, step); err != nil {
		return nil, err
	}

	switch v := input.(type) {
	case []byte:
		return count(v, n, step), nil
	case Source:
		return a.countSource(v, n, step), nil
	default:
		return nil, unsupportedInput(input)
	}
}

// CountSource returns the n-gram table of src, scanning it only on the first
// request for n. The returned table is a copy and may be modified freely.
func (a *Analyzer) CountSource(src Source, n, step int) (Counts, error) {
	if err := validateWindow(n, step); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, unsupportedInput(src)
	}

	return a.countSource(src, n, step), nil
}

// Distribution counts input like Counts and ranks the table like the
// package-level Distribution.
func (a *Analyzer) Distribution(input any, n, step int, opts ...DistributionOption) ([]Pair, error) {
	counts, err := a.Counts(input, n, step)
	if err != nil {
		return nil, err
	}

	return Distribution(counts, opts...)
}

func (a *Analyzer) countSource(src Source, n, step int) Counts {
	if !a.cfg.cacheEnabled || !cacheable(src) {
		return count(src.Bytes(), n, step)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	entry, ok := a.cache[src]
	if ok && entry.tables[n] != nil {
		a.hits++
		return entry.tables[n].Clone()
	}
	a.misses++

	data := src.Bytes()
	if len(data) < n {
		return Counts{}
	}

	counts := count(data, n, step)
	if !ok {
		entry = &cacheEntry{}
		if a.cfg.fingerprint {
			entry.fingerprint = hash.Fingerprint(data)
			entry.fingerprinted = true
		}
		a.cache[src] = entry
	}
	entry.tables[n] = counts

	return counts.Clone()
}

// Cached reports whether a table for src and n is cached.
func (a *Analyzer) Cached(src Source, n int) bool {
	if n < MinGramSize || n > MaxGramSize || !cacheable(src) {
		return false
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	entry, ok := a.cache[src]

	return ok && entry.tables[n] != nil
}

// Forget drops every cached table of src.
func (a *Analyzer) Forget(src Source) {
	if !cacheable(src) {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	delete(a.cache, src)
}

// Refresh drops the cached tables of src if its bytes no longer match the
// fingerprint taken when it was first cached, and reports whether it did.
// Without fingerprints Refresh never drops anything.
func (a *Analyzer) Refresh(src Source) bool {
	if !cacheable(src) {
		return false
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	entry, ok := a.cache[src]
	if !ok || !entry.fingerprinted {
		return false
	}
	if hash.Fingerprint(src.Bytes()) == entry.fingerprint {
		return false
	}
	delete(a.cache, src)

	return true
}

// Reset clears the cache and its statistics.
func (a *Analyzer) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	clear(a.cache)
	a.hits, a.misses = 0, 0
}

// Stats returns a snapshot of cache activity.
func (a *Analyzer) Stats() CacheStats {
	a.mu.Lock()
	defer a.mu.Unlock()

	return CacheStats{
		Hits:    a.hits,
		Misses:  a.misses,
		Entries: len(a.cache),
	}
}

// cacheable reports whether src can key the side table without panicking.
// A comparable type can still hold an unhashable dynamic value, e.g. a struct
// with an interface field carrying a slice; hashing src once catches that.
func cacheable(src Source) bool {
	if src == nil || !reflect.TypeOf(src).Comparable() {
		return false
	}

	return hashable(src)
}

func hashable(src Source) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	_ = map[Source]struct{}{src: {}}

	return true
}

func unsupportedInput(input any) error {
	return fmt.Errorf("%w: %T, expected []byte or ngram.Source", errs.ErrUnsupportedInput, input)
}
