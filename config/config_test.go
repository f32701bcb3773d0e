package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"hexstream.lol/hex"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("HEXSTREAM_PROFILE", t.TempDir())
	cfg, err := New()
	require.NoError(t, err)
	require.Equal(t, "hexstream", cfg.AppName)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "strict", cfg.Policy)
	require.Equal(t, 4096, cfg.Chunk)
	require.Equal(t, 4, cfg.Workers)
	require.False(t, cfg.Lower)

	c := cfg.Codec()
	require.False(t, c.LowerCase())
	require.Equal(t, hex.Strict, c.Policy())
}

func TestNew_EnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HEXSTREAM_PROFILE", dir)
	t.Setenv("HEXSTREAM_CHUNK", "128")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(
		"HEXSTREAM_LOWER=true\nHEXSTREAM_POLICY=lenient\nHEXSTREAM_CHUNK=64\n"), 0o600))
	cfg, err := New()
	require.NoError(t, err)
	require.Equal(t, dir, cfg.Profile)
	require.True(t, cfg.Lower)
	require.Equal(t, "lenient", cfg.Policy)
	// the environment overrides the file
	require.Equal(t, 128, cfg.Chunk)

	c := cfg.Codec()
	require.True(t, c.LowerCase())
	require.Equal(t, hex.Lenient, c.Policy())
}

func TestValidate(t *testing.T) {
	good := C{LogLevel: "debug", Policy: "lenient", Chunk: 1, Workers: 1, Pprof: "cpu"}
	require.NoError(t, good.Validate())

	tests := []struct {
		name   string
		modify func(c *C)
	}{
		{"policy", func(c *C) { c.Policy = "sloppy" }},
		{"chunk", func(c *C) { c.Chunk = 0 }},
		{"workers", func(c *C) { c.Workers = -1 }},
		{"pprof", func(c *C) { c.Pprof = "block" }},
		{"log level", func(c *C) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := good
			tt.modify(&c)
			require.Error(t, c.Validate())
		})
	}
}

func TestPrintEnv(t *testing.T) {
	var buf bytes.Buffer
	PrintEnv(&C{AppName: "hx", Policy: "strict", Chunk: 10}, &buf)
	out := buf.String()
	require.True(t, strings.HasPrefix(out, "#!/usr/bin/env bash\n"))
	require.Contains(t, out, "export HEXSTREAM_APP_NAME=hx\n")
	require.Contains(t, out, "export HEXSTREAM_CHUNK=10\n")
	require.Contains(t, out, "export HEXSTREAM_POLICY=strict\n")
}

func TestPrintHelp(t *testing.T) {
	var buf bytes.Buffer
	PrintHelp(&C{AppName: "hx", Profile: "/tmp/hx"}, &buf)
	require.Contains(t, buf.String(), "HEXSTREAM_POLICY")
	require.Contains(t, buf.String(), filepath.Join("/tmp/hx", ".env"))
}
