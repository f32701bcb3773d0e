// Package config loads the hexstream configuration from environment variables
// and an optional .env file in the profile directory.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
	"go-simpler.org/env"

	"hexstream.lol/chk"
	"hexstream.lol/config/keyvalue"
	envfile "hexstream.lol/env"
	"hexstream.lol/hex"
	"hexstream.lol/lol"
)

// C is the configuration of the hexstream command. Command line flags override
// the codec settings.
type C struct {
	AppName  string `env:"HEXSTREAM_APP_NAME" default:"hexstream" usage:"name used for the profile directory"`
	Profile  string `env:"HEXSTREAM_PROFILE" usage:"directory holding the .env file and profiles (default is APP_NAME under the XDG config directory)"`
	LogLevel string `env:"HEXSTREAM_LOG_LEVEL" default:"info" usage:"log level: off fatal error warn info debug trace"`
	Lower    bool   `env:"HEXSTREAM_LOWER" default:"false" usage:"encode with lower case digits, and only accept lower case when decoding"`
	Policy   string `env:"HEXSTREAM_POLICY" default:"strict" usage:"odd length decode input: strict fails, lenient drops the last digit"`
	Chunk    int    `env:"HEXSTREAM_CHUNK" default:"4096" usage:"stream buffer size in bytes"`
	Workers  int    `env:"HEXSTREAM_WORKERS" default:"4" usage:"number of files processed at once"`
	Pprof    string `env:"HEXSTREAM_PPROF" default:"none" usage:"write a profile to the profile directory: none cpu mem"`
}

// New loads the configuration. Values in the environment take precedence over
// the .env file in the profile directory.
func New() (cfg *C, err error) {
	cfg = &C{}
	if err = env.Load(cfg, nil); chk.T(err) {
		return
	}
	if cfg.Profile == "" {
		cfg.Profile = filepath.Join(xdg.ConfigHome, cfg.AppName)
	}
	envPath := filepath.Join(cfg.Profile, ".env")
	if fileExists(envPath) {
		profile := cfg.Profile
		var e envfile.Env
		if e, err = envfile.GetEnv(envPath); chk.E(err) {
			err = errors.Wrapf(err, "reading %s", envPath)
			return
		}
		if err = env.Load(cfg, &env.Options{Source: envfile.OSFirst{File: e}}); chk.E(err) {
			err = errors.Wrapf(err, "loading %s", envPath)
			return
		}
		if cfg.Profile == "" {
			cfg.Profile = profile
		}
	}
	err = cfg.Validate()
	return
}

func fileExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}

// Validate checks the values that env.Load cannot.
func (cfg *C) Validate() (err error) {
	if _, err = hex.ParsePolicy(cfg.Policy); err != nil {
		return
	}
	if cfg.Chunk < 1 {
		return errors.Errorf("HEXSTREAM_CHUNK must be positive, got %d", cfg.Chunk)
	}
	if cfg.Workers < 1 {
		return errors.Errorf("HEXSTREAM_WORKERS must be positive, got %d", cfg.Workers)
	}
	switch strings.ToLower(cfg.Pprof) {
	case "", "none", "cpu", "mem":
	default:
		return errors.Errorf("HEXSTREAM_PPROF must be none, cpu or mem, got '%s'", cfg.Pprof)
	}
	for _, l := range lol.LevelNames {
		if cfg.LogLevel == l {
			return
		}
	}
	return errors.Errorf("unknown HEXSTREAM_LOG_LEVEL '%s'", cfg.LogLevel)
}

// Codec returns the codec the configuration describes.
func (cfg *C) Codec() *hex.Codec {
	// Validate has accepted the policy.
	p, _ := hex.ParsePolicy(cfg.Policy)
	return hex.NewWithPolicy(cfg.Lower, p)
}

// PrintEnv writes the configuration as a shell script that can be saved as the
// .env file in the profile directory.
func PrintEnv(cfg *C, printer io.Writer) { keyvalue.PrintEnv(*cfg, printer) }

// Usage returns the list of environment variables with their defaults.
func Usage(cfg *C) string {
	var buf bytes.Buffer
	env.Usage(cfg, &buf, nil)
	return buf.String()
}

// PrintHelp outputs a help text listing the configuration options and default
// values to a provided io.Writer (usually os.Stderr or os.Stdout).
func PrintHelp(cfg *C, printer io.Writer) {
	_, _ = fmt.Fprintf(printer,
		"Environment variables that configure %s:\n\n%s", cfg.AppName, Usage(cfg))
	_, _ = fmt.Fprintf(printer,
		"\n.env file found in the profile directory is loaded automatically, the\n"+
			"environment overrides it. Write the current configuration there with\n\n"+
			"\t%s env > %s\n\n", os.Args[0], filepath.Join(cfg.Profile, ".env"))
}
