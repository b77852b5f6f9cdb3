package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngines(t *testing.T) {
	require.Equal(t, binary.BigEndian, GetBigEndianEngine())
	require.Equal(t, binary.LittleEndian, GetLittleEndianEngine())
}

func TestUint24(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0xff}

	require.Equal(t, uint32(0x010203), Uint24(GetBigEndianEngine(), data))
	require.Equal(t, uint32(0x030201), Uint24(GetLittleEndianEngine(), data))
	require.Panics(t, func() { Uint24(GetBigEndianEngine(), data[:2]) })
}

func TestAppendUint24RoundTrip(t *testing.T) {
	for _, engine := range []EndianEngine{GetBigEndianEngine(), GetLittleEndianEngine()} {
		for _, v := range []uint32{0, 1, 0xff, 0x1234, 0xabcdef, 0xffffff} {
			b := AppendUint24(engine, nil, v)
			require.Len(t, b, 3)
			require.Equal(t, v, Uint24(engine, b))
		}
	}
}

func TestBigEndianOrderMatchesBytes(t *testing.T) {
	engine := GetBigEndianEngine()
	lo := []byte{0x00, 0xff, 0xff}
	hi := []byte{0x01, 0x00, 0x00}
	require.Less(t, Uint24(engine, lo), Uint24(engine, hi))
}
