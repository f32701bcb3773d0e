package hex

import (
	"hexstream.lol/errorf"
)

// Input is the closed set of things Decode accepts: Bytes or Text.
type Input interface{ input() }

// Bytes is hex text held in a byte slice.
type Bytes []byte

// Text is hex text held in a string.
type Text string

func (Bytes) input() {}
func (Text) input()  {}

// DecodeInput decodes either variant of Input. A nil Input gives a nil result.
func (c *Codec) DecodeInput(in Input) (dst []byte, err error) {
	switch v := in.(type) {
	case nil:
		return
	case Bytes:
		return c.Decode(v)
	case Text:
		return c.DecodeString(string(v))
	}
	// only reachable through a type that embeds Input.
	err = errorf.T("%w: %T", ErrUnsupportedInput, in)
	return
}

// DecodeAny decodes a []byte, string, Bytes or Text held in an interface value.
// A nil value gives a nil result, any other type is ErrUnsupportedInput.
func (c *Codec) DecodeAny(v any) (dst []byte, err error) {
	switch t := v.(type) {
	case nil:
		return
	case []byte:
		return c.Decode(t)
	case string:
		return c.DecodeString(t)
	case Input:
		return c.DecodeInput(t)
	}
	err = errorf.T("%w: %T", ErrUnsupportedInput, v)
	return
}
