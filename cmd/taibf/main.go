package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/modes"
)

var (
	sourceFile    = cmds.Var[string]("-file")
	inlineSources = cmds.Collect[string]("-e")
	imageFile     = cmds.Var[string]("-image")
	emitFile      = cmds.Var[string]("-emit")
	dumpFlag      = cmds.Switch("-dump")
	inspectFlag   = cmds.Switch("-inspect")
)

func init() {
	cmds.GlobalExecutor.Describe("-file", "run the program in a source file")
	cmds.GlobalExecutor.Describe("-e", "run inline program text, repeated fragments are joined")
	cmds.GlobalExecutor.Describe("-image", "run a compiled bytecode image")
	cmds.GlobalExecutor.Describe("-emit", "write the compiled image to a file and exit")
	cmds.GlobalExecutor.Describe("-dump", "print the bytecode listing and exit")
	cmds.GlobalExecutor.Describe("-inspect", "open an inspection shell after the run")
	cmds.GlobalExecutor.Positional(setSourceFile)
}

// setSourceFile takes a bare word as the source file.
func setSourceFile(path string) error {
	if *sourceFile != "" {
		return fmt.Errorf("more than one source file: %s, %s", *sourceFile, path)
	}
	*sourceFile = path
	return nil
}

func main() {
	cmds.Execute(os.Args[1:])

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	var status int
	scope.Call(func(
		execute Execute,
	) {
		req := flagRequest()
		req.Stdin = os.Stdin
		req.Stdout = os.Stdout
		req.Stderr = os.Stderr
		status = int(execute(context.Background(), req))
	})
	os.Exit(status)
}

func flagRequest() Request {
	return Request{
		SourceFile:   *sourceFile,
		InlineSource: strings.Join(*inlineSources, "\n"),
		ImageFile:    *imageFile,
		EmitFile:     *emitFile,
		Dump:         *dumpFlag,
		Inspect:      *inspectFlag,
	}
}
