package hex

import (
	"io"

	"hexstream.lol/chk"
	"hexstream.lol/errorf"
)

// DefaultBufferSize is the read buffer of a Decoder and the largest write an
// Encoder passes on at once.
const DefaultBufferSize = 4096

// maxEmptyReads is how many (0, nil) reads a Decoder tolerates in a row.
const maxEmptyReads = 100

// Encoder is an io.WriteCloser that writes the hex text of everything written
// to it to an underlying writer.
type Encoder struct {
	c      *Codec
	w      io.Writer
	buf    []byte
	closed bool
}

// NewEncoder returns an Encoder writing c's encoding to w.
func NewEncoder(c *Codec, w io.Writer) *Encoder {
	return &Encoder{c: c, w: w, buf: make([]byte, 0, DefaultBufferSize)}
}

// Write encodes p. n counts bytes of p, not hex characters written.
func (e *Encoder) Write(p []byte) (n int, err error) {
	if e.closed {
		err = errorf.D("%w", ErrStreamClosed)
		return
	}
	for len(p) > 0 {
		chunk := p
		if len(chunk) > DefaultBufferSize/2 {
			chunk = chunk[:DefaultBufferSize/2]
		}
		e.buf = e.c.EncAppend(e.buf[:0], chunk)
		if _, err = e.w.Write(e.buf); chk.E(err) {
			return
		}
		n += len(chunk)
		p = p[len(chunk):]
	}
	return
}

// Close stops further writes. It does not close the underlying writer.
func (e *Encoder) Close() (err error) {
	e.closed = true
	return
}

// Decoder is an io.Reader that decodes the hex text read from an underlying
// reader. Digit pairs may be split across reads of the source. When the source
// ends, the codec's odd length policy is applied, so a Strict Decoder returns
// ErrOddLength instead of io.EOF for an unpaired trailing digit.
type Decoder struct {
	c   *Codec
	r   io.Reader
	in  []byte
	st  StreamState
	pos int
	err error
}

// NewDecoder returns a Decoder reading hex text from r.
func NewDecoder(c *Codec, r io.Reader) *Decoder {
	return NewDecoderSize(c, r, DefaultBufferSize)
}

// NewDecoderSize returns a Decoder that reads at most size bytes from r at a
// time.
func NewDecoderSize(c *Codec, r io.Reader, size int) *Decoder {
	if size < 1 {
		size = DefaultBufferSize
	}
	return &Decoder{c: c, r: r, in: make([]byte, size)}
}

func (d *Decoder) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return
	}
	for empty := 0; d.pos == len(d.st.Out); empty++ {
		if d.err != nil {
			err = d.err
			return
		}
		if empty == maxEmptyReads {
			err = io.ErrNoProgress
			return
		}
		d.st.Out, d.pos = d.st.Out[:0], 0
		d.fill()
	}
	n = copy(p, d.st.Out[d.pos:])
	d.pos += n
	return
}

// fill reads once from the source and decodes what arrived.
func (d *Decoder) fill() {
	var nr int
	nr, d.err = d.r.Read(d.in)
	if nr > 0 {
		if err := d.c.DecodeStream(d.in, 0, nr, &d.st); err != nil {
			d.err = err
			return
		}
	}
	if d.err == io.EOF {
		if err := d.c.Finish(&d.st); err != nil {
			d.err = err
		}
	}
}

// DecodeWriter is an io.WriteCloser that decodes the hex text written to it
// and writes the bytes to an underlying writer. Close applies the odd length
// policy.
type DecodeWriter struct {
	c  *Codec
	w  io.Writer
	st StreamState
}

// NewDecodeWriter returns a DecodeWriter writing decoded bytes to w.
func NewDecodeWriter(c *Codec, w io.Writer) *DecodeWriter {
	return &DecodeWriter{c: c, w: w}
}

// Write decodes p. On an invalid character n is the number of digits accepted
// before it.
func (d *DecodeWriter) Write(p []byte) (n int, err error) {
	before := d.st.Consumed()
	err = d.c.DecodeStream(p, 0, len(p), &d.st)
	n = d.st.Consumed() - before
	if len(d.st.Out) > 0 {
		if _, werr := d.w.Write(d.st.Out); chk.E(werr) && err == nil {
			err = werr
		}
		d.st.Out = d.st.Out[:0]
	}
	return
}

// Close ends the stream. It does not close the underlying writer.
func (d *DecodeWriter) Close() error { return d.c.Finish(&d.st) }
