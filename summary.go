package bytestat

import (
	"fmt"

	"github.com/arloliu/bytestat/compress"
	"github.com/arloliu/bytestat/entropy"
	"github.com/arloliu/bytestat/errs"
	"github.com/arloliu/bytestat/format"
	"github.com/arloliu/bytestat/humanize"
	"github.com/arloliu/bytestat/internal/options"
	"github.com/arloliu/bytestat/ngram"
)

// Summary is a one-shot triage report of a source.
type Summary struct {
	Size      int64
	HumanSize string

	Entropy float64
	Level   entropy.Level

	// TopBytes are the most frequent byte values that occur, NUL excluded.
	TopBytes []ngram.Pair

	// Compression is the probe result; its Algorithm is zero when probing is disabled.
	Compression compress.CompressionStats
}

// SummaryConfig holds Summarize settings.
type SummaryConfig struct {
	topK        int
	precision   int
	compression format.CompressionType
	analyzer    *ngram.Analyzer
}

func defaultSummaryConfig() SummaryConfig {
	return SummaryConfig{
		topK:        10,
		precision:   1,
		compression: format.CompressionZstd,
		analyzer:    defaultAnalyzer,
	}
}

// SummaryOption is a functional option for Summarize.
type SummaryOption = options.Option[*SummaryConfig]

// WithTopBytes sets how many byte values TopBytes holds at most; 0 leaves it
// empty. Defaults to 10.
func WithTopBytes(k int) SummaryOption {
	return options.New(func(cfg *SummaryConfig) error {
		if k < 0 {
			return fmt.Errorf("%w: top bytes must not be negative, got %d", errs.ErrInvalidOption, k)
		}
		cfg.topK = k

		return nil
	})
}

// WithSizePrecision sets the decimals of HumanSize. Defaults to 1.
func WithSizePrecision(precision int) SummaryOption {
	return options.NoError(func(cfg *SummaryConfig) {
		cfg.precision = precision
	})
}

// WithCompressionProbe selects the codec used for the compression probe.
// format.CompressionNone disables probing. Defaults to Zstd.
func WithCompressionProbe(compressionType format.CompressionType) SummaryOption {
	return options.New(func(cfg *SummaryConfig) error {
		if _, err := compress.GetCodec(compressionType); err != nil {
			return err
		}
		cfg.compression = compressionType

		return nil
	})
}

// WithAnalyzer makes Summarize count through analyzer instead of the default one.
func WithAnalyzer(analyzer *ngram.Analyzer) SummaryOption {
	return options.New(func(cfg *SummaryConfig) error {
		if analyzer == nil {
			return fmt.Errorf("%w: nil analyzer", errs.ErrInvalidOption)
		}
		cfg.analyzer = analyzer

		return nil
	})
}

// Summarize reports size, entropy, the most frequent bytes and compressibility
// of src. The unigram table is counted through the analyzer, so it is cached
// for later NgramCounts calls on the same source.
//
// Example:
//
//	summary, err := bytestat.Summarize(ngram.NewBuffer("sample.bin", data),
//	    bytestat.WithTopBytes(5),
//	    bytestat.WithCompressionProbe(format.CompressionS2),
//	)
func Summarize(src ngram.Source, opts ...SummaryOption) (Summary, error) {
	cfg := defaultSummaryConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return Summary{}, err
	}

	counts, err := cfg.analyzer.CountSource(src, 1, 1)
	if err != nil {
		return Summary{}, err
	}

	top, err := topBytes(counts, cfg.topK)
	if err != nil {
		return Summary{}, err
	}

	size := ngram.SizeOf(src)
	h := entropy.FromCounts(counts)
	summary := Summary{
		Size:      size,
		HumanSize: humanize.Size(uint64(max(size, 0)), cfg.precision),
		Entropy:   h,
		Level:     entropy.Classify(h),
		TopBytes:  top,
	}

	if cfg.compression != format.CompressionNone {
		stats, err := compress.Measure(cfg.compression, src.Bytes())
		if err != nil {
			return Summary{}, fmt.Errorf("compression probe: %w", err)
		}
		summary.Compression = stats
	}

	return summary, nil
}

// topBytes returns up to k occurring byte values, NUL excluded. k = 0 yields
// none; the distribution's literal top-k of zero would still admit entries.
func topBytes(counts ngram.Counts, k int) ([]ngram.Pair, error) {
	if k == 0 {
		return []ngram.Pair{}, nil
	}

	top, err := ngram.Distribution(counts, ngram.WithTopK(k), ngram.WithExclude(ngram.Unigram(0)))
	if err != nil {
		return nil, err
	}
	for len(top) > 0 && top[len(top)-1].Count == 0 {
		top = top[:len(top)-1]
	}

	return top, nil
}
