package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"

	"hexstream.lol/hex"
)

func TestStream_RoundTrip(t *testing.T) {
	for _, c := range []*hex.Codec{hex.Std, hex.StdLower} {
		src := frand.Bytes(10000)
		var text, back bytes.Buffer
		require.NoError(t, stream(context.Background(), c, encodeMode, 33,
			bytes.NewReader(src), &text))
		require.Equal(t, c.EncodeToString(src), text.String())
		require.NoError(t, stream(context.Background(), c, decodeMode, 33,
			bytes.NewReader(text.Bytes()), &back))
		require.Equal(t, src, back.Bytes())
	}
}

func TestStream_DecodeErrors(t *testing.T) {
	var out bytes.Buffer
	err := stream(context.Background(), hex.Std, decodeMode, 4,
		strings.NewReader("ABC"), &out)
	require.ErrorIs(t, err, hex.ErrOddLength)

	out.Reset()
	lenient := hex.NewWithPolicy(false, hex.Lenient)
	require.NoError(t, stream(context.Background(), lenient, decodeMode, 4,
		strings.NewReader("ABC"), &out))
	require.Equal(t, []byte{0xAB}, out.Bytes())

	err = stream(context.Background(), hex.Std, decodeMode, 4,
		strings.NewReader("ABCDEFGH"), &out)
	require.ErrorIs(t, err, hex.ErrInvalidHexCharacter)
}

func TestStream_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	err := stream(ctx, hex.Std, encodeMode, 4, strings.NewReader("data"), &out)
	require.ErrorIs(t, err, context.Canceled)
}

func TestOutputName(t *testing.T) {
	require.Equal(t, "a.bin.hex", outputName(encodeMode, "a.bin"))
	require.Equal(t, "a.bin", outputName(decodeMode, "a.bin.hex"))
	require.Equal(t, "a.txt.bin", outputName(decodeMode, "a.txt"))
	require.Equal(t, ".hex.bin", outputName(decodeMode, ".hex"))
}

func TestConvertFiles(t *testing.T) {
	dir := t.TempDir()
	var names []string
	contents := make(map[string][]byte)
	for i := range 6 {
		name := filepath.Join(dir, "f"+string(rune('a'+i)))
		data := frand.Bytes(frand.Intn(5000))
		require.NoError(t, os.WriteFile(name, data, 0o600))
		names = append(names, name)
		contents[name] = data
	}
	c := hex.StdLower
	require.NoError(t, convertFiles(context.Background(), c, encodeMode, 64, 3, names))
	var hexNames []string
	for _, name := range names {
		text, err := os.ReadFile(name + ".hex")
		require.NoError(t, err)
		require.Equal(t, c.EncodeToString(contents[name]), string(text))
		require.NoError(t, os.Remove(name))
		hexNames = append(hexNames, name+".hex")
	}
	require.NoError(t, convertFiles(context.Background(), c, decodeMode, 64, 2, hexNames))
	for _, name := range names {
		data, err := os.ReadFile(name)
		require.NoError(t, err)
		require.Equal(t, contents[name], data)
	}
}

func TestConvertFiles_Failure(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.hex")
	require.NoError(t, os.WriteFile(bad, []byte("ABC"), 0o600))
	err := convertFiles(context.Background(), hex.Std, decodeMode, 8, 1, []string{bad})
	require.ErrorIs(t, err, hex.ErrOddLength)
	_, statErr := os.Stat(filepath.Join(dir, "bad"))
	require.True(t, os.IsNotExist(statErr))

	err = convertFiles(context.Background(), hex.Std, encodeMode, 8, 1,
		[]string{filepath.Join(dir, "missing")})
	require.Error(t, err)
}
