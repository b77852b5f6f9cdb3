package pool

import "sync"

// Default sizing for compression probe buffers.
const (
	ProbeBufferDefaultSize  = 1024 * 64       // 64KiB
	ProbeBufferMaxThreshold = 1024 * 1024 * 4 // 4MiB
)

type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Reset empties the buffer but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Sized resizes the buffer to exactly n bytes, reallocating when the
// capacity is insufficient. Existing contents are not preserved on reallocation.
func (bb *ByteBuffer) Sized(n int) []byte {
	if n < 0 {
		panic("Sized: negative length")
	}
	if cap(bb.B) < n {
		bb.B = make([]byte, n)
	}
	bb.B = bb.B[:n]

	return bb.B
}

// ByteBufferPool is a pool of ByteBuffers backed by sync.Pool.
//
// Buffers grown past maxThreshold are dropped on Put instead of being retained.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var probeDefaultPool = NewByteBufferPool(ProbeBufferDefaultSize, ProbeBufferMaxThreshold)

// GetProbeBuffer retrieves a ByteBuffer from the default probe pool.
func GetProbeBuffer() *ByteBuffer {
	return probeDefaultPool.Get()
}

// PutProbeBuffer returns a ByteBuffer to the default probe pool.
func PutProbeBuffer(bb *ByteBuffer) {
	probeDefaultPool.Put(bb)
}
