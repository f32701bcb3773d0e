// Package hex is a Base16 codec with a configurable alphabet case, a policy for
// odd length input, and a decoder that can be fed hex text in arbitrary
// fragments across calls.
//
// A Codec is immutable and safe for concurrent use. A StreamState, and the io
// wrappers built on it, belong to one stream and one goroutine at a time.
package hex

import (
	"github.com/templexxx/xhex"

	"hexstream.lol/chk"
	"hexstream.lol/errorf"
)

// Codec encodes bytes to hex text and decodes it back.
type Codec struct {
	alphabet *Alphabet
	policy   Policy
}

// New returns a Strict codec using the Upper alphabet, or Lower if lowerCase is
// set.
func New(lowerCase bool) *Codec { return NewWithPolicy(lowerCase, Strict) }

// NewWithPolicy returns a codec with an explicit odd length policy.
//
// Decoding only accepts the characters of the selected alphabet, so a lower
// case codec rejects 'A'-'F' and an upper case codec rejects 'a'-'f'.
func NewWithPolicy(lowerCase bool, p Policy) (c *Codec) {
	c = &Codec{alphabet: Upper, policy: p}
	if lowerCase {
		c.alphabet = Lower
	}
	return
}

func (c *Codec) Alphabet() *Alphabet { return c.alphabet }
func (c *Codec) Policy() Policy      { return c.policy }
func (c *Codec) LowerCase() bool     { return c.alphabet == Lower }

// EncodedLen is the length of the encoding of n bytes.
func EncodedLen(n int) int { return n * 2 }

// DecodedLen is the number of bytes n hex digits decode to, ignoring a trailing
// unpaired digit.
func DecodedLen(n int) int { return n / 2 }

func checkRange(n, offset, length int) (err error) {
	if offset < 0 || length < 0 || offset > n-length {
		err = errorf.T("%w: offset %d length %d in buffer of %d",
			ErrRange, offset, length, n)
	}
	return
}

// Encode returns the hex text of src[offset:offset+length]. A nil src gives a
// nil result, a zero length gives an empty one.
func (c *Codec) Encode(src []byte, offset, length int) (dst []byte, err error) {
	if src == nil {
		return
	}
	if err = checkRange(len(src), offset, length); err != nil {
		return
	}
	dst = make([]byte, EncodedLen(length))
	c.encode(dst, src[offset:offset+length])
	return
}

// EncodeToString returns the hex text of all of src.
func (c *Codec) EncodeToString(src []byte) string {
	dst := make([]byte, EncodedLen(len(src)))
	c.encode(dst, src)
	return string(dst)
}

// EncAppend appends the hex text of src to dst.
func (c *Codec) EncAppend(dst, src []byte) (b []byte) {
	l := len(dst)
	dst = append(dst, make([]byte, EncodedLen(len(src)))...)
	c.encode(dst[l:], src)
	b = dst
	return
}

// encode writes exactly EncodedLen(len(src)) bytes to dst.
func (c *Codec) encode(dst, src []byte) {
	if len(src) == 0 {
		return
	}
	if c.alphabet == Lower {
		// xhex produces lower case and uses AVX2 when present.
		xhex.Encode(dst, src)
		return
	}
	enc := &c.alphabet.enc
	for i, v := range src {
		dst[i*2] = enc[v>>4]
		dst[i*2+1] = enc[v&0x0f]
	}
}

// Decode returns the bytes of the hex text in src. A nil src gives a nil result
// and an empty one an empty, non-nil result.
func (c *Codec) Decode(src []byte) (dst []byte, err error) {
	if src == nil {
		return
	}
	return c.DecAppend(make([]byte, 0, DecodedLen(len(src))), src)
}

// DecodeString is Decode for text.
func (c *Codec) DecodeString(s string) (dst []byte, err error) {
	return c.DecAppend(make([]byte, 0, DecodedLen(len(s))), []byte(s))
}

// DecAppend decodes src and appends the bytes to dst. On error dst is returned
// unchanged.
func (c *Codec) DecAppend(dst, src []byte) (b []byte, err error) {
	b = dst
	var n int
	if n, err = c.validate(src); chk.T(err) {
		return
	}
	if n == 0 {
		return
	}
	l := len(dst)
	dst = append(dst, make([]byte, DecodedLen(n))...)
	// every character is known to be a hex digit, so this cannot fail.
	if err = xhex.Decode(dst[l:], src[:n]); chk.E(err) {
		return
	}
	b = dst
	return
}

// validate checks every character of src against the alphabet, left to right,
// and returns how many of them form whole bytes. The unpaired digit that the
// Lenient policy drops is still validated.
func (c *Codec) validate(src []byte) (n int, err error) {
	for i, ch := range src {
		if _, ok := c.alphabet.Nibble(ch); !ok {
			err = invalidByte(i, ch)
			return
		}
	}
	n = len(src)
	if n%2 == 1 {
		if c.policy == Strict {
			err = errorf.T("%w: got %d", ErrOddLength, n)
			return
		}
		n--
	}
	return
}
