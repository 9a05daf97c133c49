package brotli

import (
	"errors"
	"io"
)

// WriterOptions configures Writer.
type WriterOptions struct {
	// LGWin is the base 2 logarithm of the sliding window size.
	// Range is 16 to 24. 0 indicates the default of 22.
	LGWin int
}

var errWriterClosed = errors.New("brotli: Writer is closed")

// NewWriter initializes a new Writer instance that compresses everything
// written to it into a single Brotli stream on dst. The stream is not
// complete until Close is called.
func NewWriter(dst io.Writer, options WriterOptions) *Writer {
	w := new(Writer)
	lgwin := options.LGWin
	if lgwin == 0 {
		lgwin = kWindowBits
	}
	w.compressor, w.err = NewBrotliCompressor(lgwin)
	if w.err == nil {
		w.compressor.WriteStreamHeader()
	}
	w.dst = dst
	return w
}

type Writer struct {
	dst        io.Writer
	compressor *BrotliCompressor
	buf        []byte
	err        error
}

// emitMetaBlock compresses the buffered input as one meta-block and writes
// the completed bytes to the destination.
func (w *Writer) emitMetaBlock() error {
	if len(w.buf) == 0 {
		return nil
	}
	out := w.compressor.WriteMetaBlock(w.buf)
	w.buf = w.buf[:0]
	if len(out) == 0 {
		return nil
	}
	_, err := w.dst.Write(out)
	return err
}

// Write implements io.Writer. Close must be called to ensure that the
// stream is sealed and all bytes are flushed to the underlying Writer.
func (w *Writer) Write(p []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	if w.dst == nil {
		return 0, errWriterClosed
	}

	const maxBlockSize = 1 << kMetaBlockSizeBits
	for len(p) > 0 {
		room := maxBlockSize - len(w.buf)
		if room == 0 {
			if err := w.emitMetaBlock(); err != nil {
				w.err = err
				return n, err
			}
			room = maxBlockSize
		}
		chunk := len(p)
		if chunk > room {
			chunk = room
		}
		w.buf = append(w.buf, p[:chunk]...)
		p = p[chunk:]
		n += chunk
	}
	return n, nil
}

// Flush compresses the pending input as a meta-block of its own. The
// resulting output can be decoded to match all input before Flush, but the
// stream is not yet complete until after Close.
// Flush has a negative impact on compression.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	if w.dst == nil {
		return errWriterClosed
	}
	if err := w.emitMetaBlock(); err != nil {
		w.err = err
	}
	return w.err
}

// Close seals the stream and flushes the remaining data to the decorated
// writer.
func (w *Writer) Close() error {
	if w.err != nil {
		return w.err
	}
	if w.dst == nil {
		return errWriterClosed
	}
	if err := w.emitMetaBlock(); err != nil {
		w.err = err
		w.dst = nil
		return err
	}
	out := w.compressor.FinishStream()
	_, err := w.dst.Write(out)
	w.dst = nil
	return err
}
