package ngram

// Source is a byte-bearing object whose n-gram tables an Analyzer may cache.
//
// Sources key the analyzer's side table by identity, so implementations should
// be pointer types. A Source whose dynamic type is not comparable is still
// counted but never cached.
type Source interface {
	Bytes() []byte
}

// Sizer is implemented by sources that know their size without materializing bytes.
type Sizer interface {
	Size() int64
}

// Buffer is an in-memory Source with a display name.
type Buffer struct {
	name string
	data []byte
}

var (
	_ Source = (*Buffer)(nil)
	_ Sizer  = (*Buffer)(nil)
)

// NewBuffer wraps data without copying it. The caller must not modify data
// while tables for it are cached, or must call Analyzer.Forget afterwards.
func NewBuffer(name string, data []byte) *Buffer {
	return &Buffer{name: name, data: data}
}

// Name returns the buffer's display name.
func (b *Buffer) Name() string {
	if b == nil {
		return ""
	}

	return b.name
}

// Bytes returns the wrapped bytes.
// A nil Buffer holds no bytes.
func (b *Buffer) Bytes() []byte {
	if b == nil {
		return nil
	}

	return b.data
}

// Size returns the number of wrapped bytes.
func (b *Buffer) Size() int64 {
	return int64(len(b.Bytes()))
}

// SizeOf returns src's size, preferring Sizer when implemented.
func SizeOf(src Source) int64 {
	if s, ok := src.(Sizer); ok {
		return s.Size()
	}

	return int64(len(src.Bytes()))
}
