package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/reusee/taibf/debugs"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/taibf"
	"github.com/reusee/taibf/taitape"
	"github.com/reusee/taibf/taivm"
)

type Request struct {
	SourceFile   string
	InlineSource string
	ImageFile    string
	EmitFile     string
	Dump         bool
	Inspect      bool
	Stdin        io.Reader
	Stdout       io.Writer
	Stderr       io.Writer
}

var ErrNoProgram = errors.New("no program: use -file, -e or -image")

type Execute func(ctx context.Context, req Request) taivm.ExitStatus

func (Module) Execute(
	logger logs.Logger,
	newSpan logs.NewSpan,
	compile taibf.CompileSource,
	newTape taitape.NewTape,
	inspect debugs.Inspect,
) Execute {
	return func(ctx context.Context, req Request) taivm.ExitStatus {
		ctx, _ = newSpan(ctx, "")

		program, err := load(req, compile)
		if err != nil {
			logger.ErrorContext(ctx, "load program", "error", logs.WrapSpan(ctx, err))
			fmt.Fprintln(req.Stderr, err)
			return taivm.StatusOf(err)
		}

		if req.Dump {
			if err := program.Dump(req.Stderr); err != nil {
				logger.ErrorContext(ctx, "dump", "error", err)
				return taivm.ExitIOFailure
			}
			return taivm.ExitHalted
		}

		if req.EmitFile != "" {
			data, err := taivm.MarshalProgram(program)
			if err != nil {
				logger.ErrorContext(ctx, "encode image", "error", err)
				return taivm.ExitFailure
			}
			if err := os.WriteFile(req.EmitFile, data, 0644); err != nil {
				logger.ErrorContext(ctx, "write image", "error", err)
				return taivm.ExitIOFailure
			}
			logger.DebugContext(ctx, "emitted",
				"path", req.EmitFile,
				"bytes", len(data),
			)
			return taivm.ExitHalted
		}

		tape, err := newTape()
		if err != nil {
			logger.ErrorContext(ctx, "new tape", "error", err)
			fmt.Fprintln(req.Stderr, err)
			return taivm.ExitFailure
		}
		defer func() {
			logger.DebugContext(ctx, "tape released",
				"chunks", tape.Release(),
			)
		}()

		output := bufio.NewWriter(req.Stdout)
		input := flushingReader{
			Reader: bufio.NewReader(req.Stdin),
			output: output,
		}
		vm := taivm.NewVM(program, tape, input, output)
		runErr := vm.Run()
		if err := output.Flush(); err != nil && runErr == nil {
			runErr = fmt.Errorf("%w: flush: %w", taivm.ErrIO, err)
		}

		if runErr != nil {
			logger.ErrorContext(ctx, "run", "error", logs.WrapSpan(ctx, runErr))
			fmt.Fprintln(req.Stderr, runErr)
		} else {
			logger.DebugContext(ctx, "halted",
				"steps", vm.Steps,
				"cells", tape.Total(),
				"chunks", tape.Chunks(),
			)
		}

		if req.Inspect {
			inspect(ctx, vm, runErr)
		}

		return taivm.StatusOf(runErr)
	}
}

func load(req Request, compile taibf.CompileSource) (*taivm.Program, error) {
	n := 0
	for _, s := range []string{req.SourceFile, req.InlineSource, req.ImageFile} {
		if s != "" {
			n++
		}
	}
	switch {
	case n == 0:
		return nil, ErrNoProgram
	case n > 1:
		return nil, fmt.Errorf("only one of -file, -e or -image is allowed")
	}

	switch {

	case req.SourceFile != "":
		src, err := os.ReadFile(req.SourceFile)
		if err != nil {
			return nil, err
		}
		return compile(req.SourceFile, src)

	case req.InlineSource != "":
		return compile("-e", []byte(req.InlineSource))

	default:
		data, err := os.ReadFile(req.ImageFile)
		if err != nil {
			return nil, err
		}
		return taivm.UnmarshalProgram(data)

	}
}

// flushingReader flushes pending output before every read.
type flushingReader struct {
	*bufio.Reader
	output *bufio.Writer
}

func (f flushingReader) ReadByte() (byte, error) {
	if f.output.Buffered() > 0 {
		if err := f.output.Flush(); err != nil {
			return 0, err
		}
	}
	return f.Reader.ReadByte()
}
