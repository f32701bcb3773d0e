package hex

import (
	"hexstream.lol/errorf"
)

// Phase is the position of a stream within the current byte.
type Phase int

const (
	// AwaitingHigh means the next digit starts a new byte.
	AwaitingHigh Phase = iota
	// AwaitingLow means a high nibble is pending and the next digit completes it.
	AwaitingLow
)

func (p Phase) String() string {
	if p == AwaitingLow {
		return "awaiting low nibble"
	}
	return "awaiting high nibble"
}

// StreamState carries a decode across calls to DecodeStream, so a digit pair
// split between two fragments still decodes to one byte. The zero value is a
// fresh stream. It belongs to a single stream and must not be used from more
// than one goroutine at a time. After an error its contents are undefined.
type StreamState struct {
	// Out accumulates decoded bytes. Take drains it.
	Out []byte
	// EOF is set by Finish.
	EOF bool

	pending  byte
	phase    Phase
	consumed int
}

// Phase reports whether a high nibble is waiting for its pair.
func (st *StreamState) Phase() Phase { return st.phase }

// Pending returns the stored high nibble, if there is one.
func (st *StreamState) Pending() (v byte, ok bool) {
	return st.pending, st.phase == AwaitingLow
}

// Consumed is the number of hex digits accepted so far.
func (st *StreamState) Consumed() int { return st.consumed }

// Take returns the bytes decoded since the last Take and empties Out.
func (st *StreamState) Take() (b []byte) {
	b, st.Out = st.Out, nil
	return
}

// Reset returns the state to a fresh stream, keeping the capacity of Out.
func (st *StreamState) Reset() {
	*st = StreamState{Out: st.Out[:0]}
}

// DecodeStream consumes the hex digits in in[offset:offset+length], appending
// every completed byte to st.Out. The input may end in the middle of a byte;
// the high nibble is kept in st for the next call. Decoding a text in one call
// or in any number of fragments gives the same bytes.
//
// Invalid characters are an error under either policy. The odd length policy
// is applied by Finish.
func (c *Codec) DecodeStream(in []byte, offset, length int, st *StreamState) (err error) {
	if st.EOF {
		err = errorf.T("%w", ErrStreamClosed)
		return
	}
	if err = checkRange(len(in), offset, length); err != nil {
		return
	}
	for _, ch := range in[offset : offset+length] {
		v, ok := c.alphabet.Nibble(ch)
		if !ok {
			err = invalidByte(st.consumed, ch)
			return
		}
		st.consumed++
		if st.phase == AwaitingHigh {
			st.pending, st.phase = v, AwaitingLow
			continue
		}
		st.Out = append(st.Out, st.pending<<4|v)
		st.pending, st.phase = 0, AwaitingHigh
	}
	return
}

// Finish marks the end of the stream. A pending high nibble is ErrOddLength
// under the Strict policy and is dropped under Lenient. Calling Finish again
// does nothing.
func (c *Codec) Finish(st *StreamState) (err error) {
	if st.EOF {
		return
	}
	st.EOF = true
	if st.phase == AwaitingLow {
		st.pending, st.phase = 0, AwaitingHigh
		if c.policy == Strict {
			err = errorf.T("%w: stream ended after %d digits", ErrOddLength, st.consumed)
		}
	}
	return
}
