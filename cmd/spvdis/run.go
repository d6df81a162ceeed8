package main

import (
	"bytes"
	"context"
	"os"
	"runtime"

	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/sync/errgroup"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/gogpu/spvbuilder/spirv"
)

// disassembleFiles renders every file, jobs at a time. The outputs keep
// the order of paths.
func disassembleFiles(ctx context.Context, paths []string, cfg config, useColor bool) ([][]byte, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	jobs := cfg.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	out := make([][]byte, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			res, err := disassembleFile(gctx, path, cfg, useColor)
			if err != nil {
				return err
			}

			out[i] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func disassembleFile(ctx context.Context, path string, cfg config, useColor bool) (_ []byte, err error) {
	tr, _ := tlog.SpawnFromContextAndWrap(ctx, "disassemble", "file", path)
	defer tr.Finish("err", &err)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read")
	}

	bin, err := spirv.ParseBytes(data)
	if err != nil {
		return nil, errors.Wrap(err, "parse %v", path)
	}

	tr.Printw("parsed", "instructions", len(bin.Instructions), "bound", bin.Header.Bound)

	return render(bin, cfg, useColor)
}

func render(bin *spirv.Binary, cfg config, useColor bool) ([]byte, error) {
	switch cfg.Format {
	case "text":
		p := newPrinter(useColor, cfg.Header)
		p.module(bin)

		return p.buf.Bytes(), nil
	case "msgpack":
		var buf bytes.Buffer

		if err := msgpack.NewEncoder(&buf).Encode(bin); err != nil {
			return nil, errors.Wrap(err, "encode")
		}

		return buf.Bytes(), nil
	default:
		return nil, errors.New("unknown format: %s", cfg.Format)
	}
}
