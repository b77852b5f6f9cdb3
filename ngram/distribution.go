package ngram

import (
	"fmt"
	"slices"

	"github.com/arloliu/bytestat/errs"
	"github.com/arloliu/bytestat/internal/options"
	"github.com/arloliu/bytestat/internal/pool"
)

// DistributionConfig selects which part of a ranked table is returned.
type DistributionConfig struct {
	topK       int
	hasTopK    bool
	skipTop    int
	exclude    map[Gram]struct{}
	excludeLen int
}

// DistributionOption configures a distribution query.
type DistributionOption = options.Option[*DistributionConfig]

// WithTopK limits the result to k entries. Without it every entry is kept.
//
// k = 0 is accepted and taken literally: the retrieval budget shrinks to
// skipTop plus the number of exclusions.
func WithTopK(k int) DistributionOption {
	return options.New(func(cfg *DistributionConfig) error {
		if k < 0 {
			return fmt.Errorf("%w: top-k must not be negative, got %d", errs.ErrInvalidOption, k)
		}
		cfg.topK = k
		cfg.hasTopK = true

		return nil
	})
}

// WithSkipTop drops the s highest-ranked entries from the result.
func WithSkipTop(s int) DistributionOption {
	return options.New(func(cfg *DistributionConfig) error {
		if s < 0 {
			return fmt.Errorf("%w: skip-top must not be negative, got %d", errs.ErrInvalidOption, s)
		}
		cfg.skipTop = s

		return nil
	})
}

// WithExclude removes the given grams from the result. Repeated calls accumulate.
//
// Every listed gram widens the retrieval budget by one, duplicates included.
func WithExclude(grams ...Gram) DistributionOption {
	return options.NoError(func(cfg *DistributionConfig) {
		if cfg.exclude == nil {
			cfg.exclude = make(map[Gram]struct{}, len(grams))
		}
		for _, g := range grams {
			cfg.exclude[g] = struct{}{}
		}
		cfg.excludeLen += len(grams)
	})
}

var pairPool = pool.NewSlicePool[Pair]()

// Distribution ranks counts by frequency and returns the selected slice of it.
//
// The steps, in order:
//  1. retrieval budget = len(counts) without WithTopK, else topK + skipTop + exclusions
//  2. sort by count descending (gram ascending on ties), truncate to the budget
//  3. drop excluded grams
//  4. return entries [skipTop, skipTop + topK), or [skipTop, skipTop + len(counts))
//     when topK is unset or zero
//
// The result is never nil and may be shorter than topK.
func Distribution(counts Counts, opts ...DistributionOption) ([]Pair, error) {
	var cfg DistributionConfig
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return distribution(counts, &cfg), nil
}

// DistributionOf counts data and ranks the table in one call, without caching.
func DistributionOf(data []byte, n, step int, opts ...DistributionOption) ([]Pair, error) {
	counts, err := Count(data, n, step)
	if err != nil {
		return nil, err
	}

	return Distribution(counts, opts...)
}

func distribution(counts Counts, cfg *DistributionConfig) []Pair {
	total := len(counts)

	budget := total
	if cfg.hasTopK {
		budget = cfg.topK + cfg.skipTop + cfg.excludeLen
	}

	sorted, cleanup := pairPool.Get(total)
	defer cleanup()

	for g, c := range counts {
		sorted = append(sorted, Pair{Gram: g, Count: c})
	}
	slices.SortFunc(sorted, comparePairs)
	sorted = sorted[:min(budget, len(sorted))]

	ranked := make([]Pair, 0, len(sorted))
	for _, p := range sorted {
		if _, skip := cfg.exclude[p.Gram]; skip {
			continue
		}
		ranked = append(ranked, p)
	}

	limit := total
	if cfg.hasTopK && cfg.topK > 0 {
		limit = cfg.topK
	}
	start := min(cfg.skipTop, len(ranked))
	end := min(cfg.skipTop+limit, len(ranked))

	return ranked[start:end]
}
