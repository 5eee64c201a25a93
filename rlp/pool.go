// pool.go provides a pooled byte buffer for building RLP-framed output,
// and append-style primitives for writing RLP fragments directly into a
// growing buffer without an intermediate allocation per fragment. The V3
// encoder uses both: one pooled buffer per EncodeFunction call (the pool
// amortizes the buffer's backing array, not the call itself), and
// AppendBytes/AppendUint64 to write each field's encoding in place.
package rlp

import (
	"sync"
	"sync/atomic"
)

// defaultBufSize is the initial capacity for pooled buffers.
const defaultBufSize = 256

// maxBufSize caps the buffer size retained in the pool to avoid pinning
// an oversized backing array after one large encode.
const maxBufSize = 1 << 20 // 1 MiB

// BufferMetrics tracks buffer pool usage for monitoring.
type BufferMetrics struct {
	PoolHits   atomic.Int64
	PoolMisses atomic.Int64
	Gets       atomic.Int64
}

// Snapshot returns a point-in-time copy of the metrics.
func (m *BufferMetrics) Snapshot() BufferMetricsSnapshot {
	return BufferMetricsSnapshot{
		PoolHits:   m.PoolHits.Load(),
		PoolMisses: m.PoolMisses.Load(),
		Gets:       m.Gets.Load(),
	}
}

// BufferMetricsSnapshot is a frozen copy of BufferMetrics.
type BufferMetricsSnapshot struct {
	PoolHits   int64
	PoolMisses int64
	Gets       int64
}

// BufferPool hands out reusable []byte buffers for accumulating RLP
// fragments during a single encode call.
type BufferPool struct {
	pool    sync.Pool
	metrics BufferMetrics
}

// NewBufferPool creates a buffer pool with default sizing.
func NewBufferPool() *BufferPool {
	bp := &BufferPool{}
	bp.pool.New = func() interface{} {
		bp.metrics.PoolMisses.Add(1)
		buf := make([]byte, 0, defaultBufSize)
		return &buf
	}
	return bp
}

// Metrics returns the pool's usage metrics.
func (bp *BufferPool) Metrics() *BufferMetrics {
	return &bp.metrics
}

// Get retrieves a zero-length buffer from the pool.
func (bp *BufferPool) Get() *[]byte {
	bp.metrics.Gets.Add(1)
	buf := bp.pool.Get().(*[]byte)
	if cap(*buf) > 0 {
		bp.metrics.PoolHits.Add(1)
	}
	*buf = (*buf)[:0]
	return buf
}

// Put returns a buffer to the pool, discarding oversized buffers so the
// pool doesn't retain memory proportional to the largest message ever
// encoded.
func (bp *BufferPool) Put(buf *[]byte) {
	if cap(*buf) > maxBufSize {
		return
	}
	bp.pool.Put(buf)
}

// AppendBytes appends the RLP encoding of a byte string to dst and
// returns the extended slice.
func AppendBytes(dst, data []byte) []byte {
	n := len(data)
	if n == 1 && data[0] <= 0x7f {
		return append(dst, data[0])
	}
	if n <= 55 {
		dst = append(dst, 0x80+byte(n))
		return append(dst, data...)
	}
	lb := putUintBigEndian(uint64(n))
	dst = append(dst, 0xb7+byte(len(lb)))
	dst = append(dst, lb...)
	return append(dst, data...)
}

// AppendUint64 appends the RLP encoding of a non-negative integer to dst —
// the `rlp_int(len)` primitive used for dynamic-array length prefixes and
// for external-mode unsigned integer fields.
func AppendUint64(dst []byte, v uint64) []byte {
	if v == 0 {
		return append(dst, 0x80)
	}
	if v < 128 {
		return append(dst, byte(v))
	}
	b := putUintBigEndian(v)
	dst = append(dst, 0x80+byte(len(b)))
	return append(dst, b...)
}
