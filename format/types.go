package format

type (
	CompressionType uint8
	ErrorPolicy     uint8
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

const (
	PolicyStrict  ErrorPolicy = 0x1 // PolicyStrict fails decoding on any invalid byte sequence.
	PolicyReplace ErrorPolicy = 0x2 // PolicyReplace substitutes U+FFFD for invalid sequences.
	PolicyIgnore  ErrorPolicy = 0x3 // PolicyIgnore drops invalid sequences.
)

// CompressionTypes lists every compression type, in declaration order.
var CompressionTypes = []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

func (p ErrorPolicy) String() string {
	switch p {
	case PolicyStrict:
		return "strict"
	case PolicyReplace:
		return "replace"
	case PolicyIgnore:
		return "ignore"
	default:
		return "unknown"
	}
}
