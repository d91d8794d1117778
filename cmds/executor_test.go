package cmds

import (
	"errors"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var max int
	executor.Define("-max", Func(func(i int) {
		max = i
	}))
	var source string
	executor.Define("-e", Func(func(s string) {
		source = s
	}))
	var inspect bool
	executor.Define("-inspect", Func(func() {
		inspect = true
	}))

	if err := executor.Execute([]string{
		"-max", "4096",
		"-e", "+[-].",
		"-inspect",
	}); err != nil {
		t.Fatal(err)
	}
	if max != 4096 {
		t.Fatalf("got %v", max)
	}
	if source != "+[-]." {
		t.Fatalf("got %q", source)
	}
	if !inspect {
		t.Fatal()
	}

	err := executor.Execute([]string{
		"-foo",
	})
	if !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "unknown command: -foo") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{
		"-max", "many",
	})
	if err == nil || !strings.Contains(err.Error(), "convert many to int") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{
		"-max",
	})
	if err == nil {
		t.Fatal("should error")
	}
}

func TestCommandError(t *testing.T) {
	executor := NewExecutor()
	errBad := errors.New("bad")
	var fail bool
	executor.Define("-check", Func(func() error {
		if fail {
			return errBad
		}
		return nil
	}))

	if err := executor.Execute([]string{"-check"}); err != nil {
		t.Fatal(err)
	}
	fail = true
	err := executor.Execute([]string{"-check"})
	if !errors.Is(err, errBad) {
		t.Fatalf("got %v", err)
	}
}

func TestPositional(t *testing.T) {
	executor := NewExecutor()
	var max int
	executor.Define("-max", Func(func(i int) {
		max = i
	}))

	// without a handler bare words are unknown
	if err := executor.Execute([]string{"hello.b"}); !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("got %v", err)
	}

	var files []string
	executor.Positional(func(arg string) error {
		if len(files) > 0 {
			return errors.New("more than one file")
		}
		files = append(files, arg)
		return nil
	})
	if err := executor.Execute([]string{"-max", "64", "hello.b"}); err != nil {
		t.Fatal(err)
	}
	if max != 64 || len(files) != 1 || files[0] != "hello.b" {
		t.Fatalf("got %v %v", max, files)
	}

	// command arguments are not positional
	files = nil
	if err := executor.Execute([]string{"-max", "32"}); err != nil {
		t.Fatal(err)
	}
	if len(files) != 0 {
		t.Fatalf("got %v", files)
	}

	if err := executor.Execute([]string{"a.b", "b.b"}); err == nil {
		t.Fatal("should error")
	}
	if err := executor.Execute([]string{"-foo"}); !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("got %v", err)
	}
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var n int
	var s string
	executor.Define("-image", Func(func(path *string, limit *int) {
		s = *path
		n = *limit
	}))

	if err := executor.Execute([]string{"-image", "a.img", "42"}); err != nil {
		t.Fatal(err)
	}
	if s != "a.img" || n != 42 {
		t.Fatalf("got %q %v", s, n)
	}

	if err := executor.Execute([]string{"-image", "b.img"}); err != nil {
		t.Fatal(err)
	}
	if s != "b.img" || n != 0 {
		t.Fatalf("got %q %v", s, n)
	}

	if err := executor.Execute([]string{"-image"}); err != nil {
		t.Fatal(err)
	}
	if s != "" || n != 0 {
		t.Fatalf("got %q %v", s, n)
	}
}

func TestDuplicatedDefine(t *testing.T) {
	executor := NewExecutor()
	defer func() {
		if p := recover(); p == nil {
			t.Fatal("should panic")
		}
	}()
	executor.Define("help", Func(func() {}))
}
