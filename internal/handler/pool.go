package handler

import (
	"bytes"
	"sync"
)

// encodeBufferSize is the initial capacity of pooled response buffers.
// Trade and collection payloads fit without a regrow.
const encodeBufferSize = 512

// bufferPool recycles encode buffers across respondJSON calls.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, encodeBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer resets the buffer before handing it back to the pool.
func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}
