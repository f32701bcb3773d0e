package hex

// Std is the default codec: upper case and Strict.
var Std = New(false)

// StdLower is a Strict codec for lower case text, the form most protocols
// write.
var StdLower = New(true)

// Enc returns the upper case hex text of src.
func Enc(src []byte) string { return Std.EncodeToString(src) }

// Dec decodes upper case hex text.
func Dec(s string) ([]byte, error) { return Std.DecodeString(s) }

// EncAppend appends the lower case hex text of src to dst.
func EncAppend(dst, src []byte) []byte { return StdLower.EncAppend(dst, src) }

// DecAppend decodes lower case hex text from src and appends it to dst.
func DecAppend(dst, src []byte) ([]byte, error) { return StdLower.DecAppend(dst, src) }
