package main

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"hexstream.lol/chk"
	"hexstream.lol/hex"
	"hexstream.lol/log"
)

type mode int

const (
	encodeMode mode = iota
	decodeMode
)

func (m mode) String() string {
	if m == decodeMode {
		return "decode"
	}
	return "encode"
}

// stream converts everything from r to w, reading chunk bytes at a time and
// stopping early if ctx is cancelled.
func stream(ctx context.Context, c *hex.Codec, m mode, chunk int, r io.Reader,
	w io.Writer) (err error) {

	bw := bufio.NewWriterSize(w, chunk)
	var dst io.Writer = bw
	var closer io.Closer
	switch m {
	case encodeMode:
		enc := hex.NewEncoder(c, bw)
		dst, closer = enc, enc
	case decodeMode:
		r = hex.NewDecoderSize(c, r, chunk)
	}
	buf := make([]byte, chunk)
	for {
		if err = ctx.Err(); err != nil {
			return
		}
		var n int
		n, err = r.Read(buf)
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				err = errors.Wrap(werr, "write")
				return
			}
		}
		if err == io.EOF {
			err = nil
			break
		}
		if err != nil {
			return
		}
	}
	if closer != nil {
		if err = closer.Close(); chk.E(err) {
			return
		}
	}
	err = errors.Wrap(bw.Flush(), "flush")
	return
}

// outputName is where the conversion of name is written.
func outputName(m mode, name string) string {
	if m == encodeMode {
		return name + ".hex"
	}
	if base := strings.TrimSuffix(name, ".hex"); base != name && base != "" {
		return base
	}
	return name + ".bin"
}

// convertFiles converts each file to its outputName, up to workers at a time.
// All workers share the codec. The first failure cancels the rest.
func convertFiles(ctx context.Context, c *hex.Codec, m mode, chunk, workers int,
	files []string) (err error) {

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, name := range files {
		g.Go(func() error { return convertFile(ctx, c, m, chunk, name) })
	}
	return g.Wait()
}

func convertFile(ctx context.Context, c *hex.Codec, m mode, chunk int,
	name string) (err error) {

	var in, out *os.File
	if in, err = os.Open(name); chk.E(err) {
		return
	}
	defer in.Close()
	outName := outputName(m, name)
	if out, err = os.Create(outName); chk.E(err) {
		return
	}
	if err = stream(ctx, c, m, chunk, in, out); err != nil {
		_ = out.Close()
		_ = os.Remove(outName)
		return errors.Wrap(err, name)
	}
	if err = out.Close(); chk.E(err) {
		return
	}
	log.I.F("%s %s -> %s", m, name, outName)
	return
}
