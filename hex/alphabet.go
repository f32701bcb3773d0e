package hex

const (
	upperChars = "0123456789ABCDEF"
	lowerChars = "0123456789abcdef"

	// invalid marks a character that has no nibble value in an alphabet.
	invalid = 0xff
)

// Alphabet maps the 16 nibble values to hex digit characters, and the
// characters back to their nibble values. The zero value is not usable, use
// Upper or Lower.
type Alphabet struct {
	enc [16]byte
	dec [256]byte
}

var (
	// Upper is the alphabet 0-9A-F, used by default.
	Upper = newAlphabet(upperChars)
	// Lower is the alphabet 0-9a-f.
	Lower = newAlphabet(lowerChars)
)

func newAlphabet(chars string) (a *Alphabet) {
	a = &Alphabet{}
	for i := range a.dec {
		a.dec[i] = invalid
	}
	for i := range a.enc {
		a.enc[i] = chars[i]
		a.dec[chars[i]] = byte(i)
	}
	return
}

// Char returns the character for the low 4 bits of v.
func (a *Alphabet) Char(v byte) byte { return a.enc[v&0x0f] }

// Nibble returns the value of a hex digit, and false if c is not in the
// alphabet.
func (a *Alphabet) Nibble(c byte) (v byte, ok bool) {
	v = a.dec[c]
	ok = v != invalid
	return
}

func (a *Alphabet) String() string { return string(a.enc[:]) }
