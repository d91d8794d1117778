package cmds

import (
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("-size", Func(func(n int) {}).Desc("initial cells"))
	executor.PrintUsage()
}

func TestWriteUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("-max", Func(func(n int) {}).Desc("max cells"))
	buf := new(strings.Builder)
	executor.WriteUsage(buf)
	out := buf.String()
	if !strings.Contains(out, "--help, -h, -help, help\tprint this usage") {
		t.Fatalf("got %q", out)
	}
	if !strings.Contains(out, "-max <int>\tmax cells") {
		t.Fatalf("got %q", out)
	}
	if strings.Index(out, "--help") > strings.Index(out, "-max") {
		t.Fatalf("not sorted: %q", out)
	}
}
