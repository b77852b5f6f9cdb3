package entropy

import (
	"fmt"

	"github.com/arloliu/bytestat/errs"
	"github.com/arloliu/bytestat/internal/options"
)

// DefaultBlockSize is the block size Profile uses unless told otherwise.
const DefaultBlockSize = 256

// Block is the entropy of one window of a profiled buffer.
type Block struct {
	Offset  int
	Length  int
	Entropy float64
}

// ProfileConfig holds Profile settings.
type ProfileConfig struct {
	blockSize int
	step      int // 0 means blockSize
}

// ProfileOption is a functional option for Profile.
type ProfileOption = options.Option[*ProfileConfig]

// WithBlockSize sets the number of bytes per block.
func WithBlockSize(size int) ProfileOption {
	return options.New(func(cfg *ProfileConfig) error {
		if size <= 0 {
			return fmt.Errorf("%w: block size must be positive, got %d", errs.ErrInvalidOption, size)
		}
		cfg.blockSize = size

		return nil
	})
}

// WithBlockStep sets the distance between block starts. Steps smaller than
// the block size produce overlapping blocks. Defaults to the block size.
func WithBlockStep(step int) ProfileOption {
	return options.New(func(cfg *ProfileConfig) error {
		if step <= 0 {
			return fmt.Errorf("%w: block step must be positive, got %d", errs.ErrInvalidOption, step)
		}
		cfg.step = step

		return nil
	})
}

// Profile splits data into blocks and returns the entropy of each. The last
// block may be shorter than the block size. Empty data yields no blocks.
func Profile(data []byte, opts ...ProfileOption) ([]Block, error) {
	cfg := ProfileConfig{blockSize: DefaultBlockSize}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}
	step := cfg.step
	if step == 0 {
		step = cfg.blockSize
	}

	blocks := make([]Block, 0, len(data)/step+1)
	for off := 0; off < len(data); off += step {
		end := min(off+cfg.blockSize, len(data))
		blocks = append(blocks, Block{
			Offset:  off,
			Length:  end - off,
			Entropy: Shannon(data[off:end]),
		})
		if end == len(data) {
			break
		}
	}

	return blocks, nil
}

// Peak returns the block with the highest entropy, the first one on ties.
// It reports false for an empty profile.
func Peak(blocks []Block) (Block, bool) {
	if len(blocks) == 0 {
		return Block{}, false
	}

	peak := blocks[0]
	for _, b := range blocks[1:] {
		if b.Entropy > peak.Entropy {
			peak = b
		}
	}

	return peak, true
}
