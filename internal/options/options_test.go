package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type probeConfig struct {
	width int
	label string
	calls []string
}

var errNegativeWidth = errors.New("width cannot be negative")

func withWidth(w int) Option[*probeConfig] {
	return New(func(c *probeConfig) error {
		if w < 0 {
			return errNegativeWidth
		}
		c.width = w
		c.calls = append(c.calls, "width")

		return nil
	})
}

func withLabel(label string) Option[*probeConfig] {
	return NoError(func(c *probeConfig) {
		c.label = label
		c.calls = append(c.calls, "label")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &probeConfig{}
		err := Apply(cfg, withLabel("bytes"), withWidth(3))
		require.NoError(t, err)
		require.Equal(t, 3, cfg.width)
		require.Equal(t, "bytes", cfg.label)
		require.Equal(t, []string{"label", "width"}, cfg.calls)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &probeConfig{}
		err := Apply(cfg, withWidth(-1), withLabel("never"))
		require.ErrorIs(t, err, errNegativeWidth)
		require.Empty(t, cfg.label)
		require.Empty(t, cfg.calls)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &probeConfig{}
		err := Apply(cfg, nil, withWidth(2), nil)
		require.NoError(t, err)
		require.Equal(t, 2, cfg.width)
	})

	t.Run("no options leaves target untouched", func(t *testing.T) {
		cfg := &probeConfig{width: 7}
		require.NoError(t, Apply(cfg))
		require.Equal(t, 7, cfg.width)
	})
}
