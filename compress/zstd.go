package compress

// ZstdCompressor compresses with Zstandard at the default level.
//
// The implementation lives in zstd_pure.go (klauspost/compress) or, with cgo
// and the gozstd build tag, zstd_cgo.go (valyala/gozstd).
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
