// Command hexstream encodes binary data to hex text and decodes hex text back,
// streaming from stdin to stdout or converting a list of files side by side.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/klauspost/cpuid/v2"
	"github.com/pkg/profile"

	"hexstream.lol/chk"
	"hexstream.lol/config"
	"hexstream.lol/hex"
	"hexstream.lol/log"
	"hexstream.lol/lol"
)

type filesArgs struct {
	Files []string `arg:"positional" help:"files to convert, each written next to the original; none or - streams stdin to stdout"`
}

type runArgs struct {
	Encode  *filesArgs `arg:"subcommand:encode" help:"encode binary data as hex text (FILE becomes FILE.hex)"`
	Decode  *filesArgs `arg:"subcommand:decode" help:"decode hex text (FILE.hex becomes FILE, other names get .bin)"`
	Env     *struct{}  `arg:"subcommand:env" help:"print the configuration as a .env shell script"`
	Lower   bool       `arg:"-l,--lower" help:"lower case digits, overrides HEXSTREAM_LOWER"`
	Lenient bool       `arg:"--lenient" help:"drop a trailing unpaired digit when decoding, overrides HEXSTREAM_POLICY"`
	Chunk   int        `arg:"-c,--chunk" help:"stream buffer size in bytes, overrides HEXSTREAM_CHUNK"`
}

var cfg *config.C

func (runArgs) Epilogue() string {
	if cfg == nil {
		return ""
	}
	return "environment:\n" + config.Usage(cfg)
}

func main() {
	os.Exit(realMain())
}

// realMain returns the exit code, so deferred profile writes happen before
// the process ends.
func realMain() int {
	var err error
	if cfg, err = config.New(); chk.E(err) {
		_, _ = fmt.Fprintf(os.Stderr, "ERROR: %s\n\n", err)
		if cfg != nil {
			config.PrintHelp(cfg, os.Stderr)
		}
		return 1
	}
	var args runArgs
	p := arg.MustParse(&args)
	lol.SetLogLevel(cfg.LogLevel)
	if args.Lower {
		cfg.Lower = true
	}
	if args.Lenient {
		cfg.Policy = hex.Lenient.String()
	}
	if args.Chunk > 0 {
		cfg.Chunk = args.Chunk
	}
	if args.Env != nil {
		config.PrintEnv(cfg, os.Stdout)
		return 0
	}
	var m mode
	var files []string
	switch {
	case args.Encode != nil:
		m, files = encodeMode, args.Encode.Files
	case args.Decode != nil:
		m, files = decodeMode, args.Decode.Files
	default:
		p.WriteHelp(os.Stderr)
		return 2
	}
	switch strings.ToLower(cfg.Pprof) {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.Profile)).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(cfg.Profile)).Stop()
	}
	log.D.F("cpu %s avx2=%v", cpuid.CPU.BrandName, cpuid.CPU.Supports(cpuid.AVX2))
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	c := cfg.Codec()
	log.D.F("%s codec, %s policy, chunk %d", c.Alphabet(), c.Policy(), cfg.Chunk)
	if len(files) == 0 || (len(files) == 1 && files[0] == "-") {
		err = stream(ctx, c, m, cfg.Chunk, os.Stdin, os.Stdout)
	} else {
		err = convertFiles(ctx, c, m, cfg.Chunk, cfg.Workers, files)
	}
	if chk.E(err) {
		_, _ = fmt.Fprintf(os.Stderr, "%s: %s\n", m, err)
		return 1
	}
	return 0
}
