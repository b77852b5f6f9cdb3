package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionTypeString(t *testing.T) {
	tests := []struct {
		typ  CompressionType
		want string
	}{
		{CompressionNone, "None"},
		{CompressionZstd, "Zstd"},
		{CompressionS2, "S2"},
		{CompressionLZ4, "LZ4"},
		{CompressionType(0xff), "Unknown"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.typ.String())
	}
}

func TestErrorPolicyString(t *testing.T) {
	require.Equal(t, "strict", PolicyStrict.String())
	require.Equal(t, "replace", PolicyReplace.String())
	require.Equal(t, "ignore", PolicyIgnore.String())
	require.Equal(t, "unknown", ErrorPolicy(0).String())
}
