package hex

import (
	"errors"
	"fmt"

	"hexstream.lol/log"
)

var (
	// ErrUnsupportedInput is returned by DecodeAny and DecodeInput for values that
	// are neither bytes nor text.
	ErrUnsupportedInput = errors.New("hex: unsupported object type")
	// ErrInvalidHexCharacter is matched by every *InvalidByteError.
	ErrInvalidHexCharacter = errors.New("hex: invalid hex character")
	// ErrOddLength reports an unpaired trailing digit under the Strict policy.
	ErrOddLength = errors.New("hex: odd number of hex digits")
	// ErrRange reports an offset and length that do not fit the buffer.
	ErrRange = errors.New("hex: offset or length out of range")
	// ErrStreamClosed is returned when a finished stream is written to.
	ErrStreamClosed = errors.New("hex: stream already finished")
)

// InvalidByteError describes a character outside the codec's alphabet, and
// where it was found. For streams the offset counts from the start of the
// stream, not the current call.
type InvalidByteError struct {
	Offset int
	Char   byte
}

func (e *InvalidByteError) Error() string {
	return fmt.Sprintf("hex: invalid character %#U at offset %d", rune(e.Char), e.Offset)
}

func (e *InvalidByteError) Unwrap() error { return ErrInvalidHexCharacter }

func invalidByte(offset int, c byte) (err error) {
	err = &InvalidByteError{Offset: offset, Char: c}
	log.T.Ln(err)
	return
}
