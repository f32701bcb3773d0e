package hex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type wrapped struct{ Input }

func TestDecodeInput(t *testing.T) {
	got, err := Std.DecodeInput(Bytes("CAFE"))
	require.NoError(t, err)
	require.Equal(t, []byte{0xca, 0xfe}, got)

	got, err = Std.DecodeInput(Text("CAFE"))
	require.NoError(t, err)
	require.Equal(t, []byte{0xca, 0xfe}, got)

	got, err = Std.DecodeInput(nil)
	require.NoError(t, err)
	require.Nil(t, got)

	got, err = Std.DecodeInput(Bytes(nil))
	require.NoError(t, err)
	require.Nil(t, got)

	_, err = Std.DecodeInput(wrapped{Text("CAFE")})
	require.ErrorIs(t, err, ErrUnsupportedInput)
}

func TestDecodeAny(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []byte
		err  error
	}{
		{"bytes", []byte("0A0B"), []byte{0x0a, 0x0b}, nil},
		{"string", "0A0B", []byte{0x0a, 0x0b}, nil},
		{"text", Text("FF"), []byte{0xff}, nil},
		{"nil", nil, nil, nil},
		{"int", 42, nil, ErrUnsupportedInput},
		{"runes", []rune("0A"), nil, ErrUnsupportedInput},
		{"bad char", "0G", nil, ErrInvalidHexCharacter},
		{"odd", "0A0", nil, ErrOddLength},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Std.DecodeAny(tt.in)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
