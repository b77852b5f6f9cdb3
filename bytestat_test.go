package bytestat

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bytestat/errs"
	"github.com/arloliu/bytestat/format"
	"github.com/arloliu/bytestat/ngram"
)

func allByteValues() []byte {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}

	return data
}

func TestNgramCountsUnigramHistogram(t *testing.T) {
	for _, data := range [][]byte{[]byte("hello world"), allByteValues(), {0}} {
		counts, err := NgramCounts(data, 1, 1)
		require.NoError(t, err)
		require.Len(t, counts, 256)
		require.Equal(t, len(data), counts.Total())
	}
}

func TestNgramCountsShortInput(t *testing.T) {
	for n := 1; n <= 3; n++ {
		counts, err := NgramCounts([]byte{}, n, 1)
		require.NoError(t, err)
		require.Empty(t, counts)
	}
}

func TestNgramCountsErrors(t *testing.T) {
	_, err := NgramCounts([]byte("abc"), 0, 1)
	require.ErrorIs(t, err, errs.ErrInvalidGramSize)

	_, err = NgramCounts([]byte("abc"), 2, 0)
	require.ErrorIs(t, err, errs.ErrInvalidStep)

	_, err = NgramCounts(struct{}{}, 2, 1)
	require.ErrorIs(t, err, errs.ErrUnsupportedInput)
}

func TestNgramCountsCachesSources(t *testing.T) {
	src := ngram.NewBuffer("cached", []byte("abcdef"))
	t.Cleanup(func() { DefaultAnalyzer().Forget(src) })

	first, err := NgramCounts(src, 2, 1)
	require.NoError(t, err)
	require.True(t, DefaultAnalyzer().Cached(src, 2))

	second, err := NgramCounts(src, 2, 3)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestNgramCountsNilBuffer(t *testing.T) {
	var src *ngram.Buffer

	counts, err := NgramCounts(src, 1, 1)
	require.NoError(t, err)
	require.Empty(t, counts)
}

func TestNgramDistribution(t *testing.T) {
	data := []byte("aaaaabbbcccd")

	got, err := NgramDistribution(data, 1, 1, ngram.WithTopK(2))
	require.NoError(t, err)
	require.Equal(t, []ngram.Pair{{Gram: "a", Count: 5}, {Gram: "b", Count: 3}}, got)

	got, err = NgramDistribution(data, 1, 1, ngram.WithTopK(2), ngram.WithExclude("a"))
	require.NoError(t, err)
	require.Equal(t, []ngram.Pair{{Gram: "b", Count: 3}, {Gram: "c", Count: 3}}, got)
}

func TestShannonEntropy(t *testing.T) {
	require.Equal(t, 0.0, ShannonEntropy(nil))
	require.Equal(t, 0.0, ShannonEntropy([]byte("aaaa")))
	require.InDelta(t, 8.0, ShannonEntropy(allByteValues()), 1e-9)
}

func TestHumanReadableSize(t *testing.T) {
	require.Equal(t, "1KB", HumanReadableSize(1024, 0))
	require.Equal(t, "1023B", HumanReadableSize(1023, 0))
	require.Equal(t, "0B", HumanReadableSize(0, 0))
}

func TestEnsureString(t *testing.T) {
	s, err := EnsureString([]byte("caf\xe9"), "utf-8", format.PolicyStrict)
	require.NoError(t, err)
	require.Equal(t, "café", s)

	s, err = EnsureString("already text", "utf-8", format.PolicyStrict)
	require.NoError(t, err)
	require.Equal(t, "already text", s)

	_, err = EnsureString(12, "utf-8", format.PolicyStrict)
	require.ErrorIs(t, err, errs.ErrUnsupportedInput)
}
