package cmds

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestExecute(t *testing.T) {
	executor := NewExecutor()
	var got []string
	executor.Define("format", Func(func(name string) {
		got = append(got, "format "+name)
	}))
	executor.Define("jobs", Func(func(n int, verbose bool) {
		if verbose {
			got = append(got, "verbose")
		}
		got = append(got, strings.Repeat("j", n))
	}))
	executor.Define("scan", Func(func(paths ...string) {
		got = append(got, "scan "+strings.Join(paths, ","))
	}).Alias("s"))

	err := executor.Execute([]string{
		"scan", "a.pi", "b.pi",
		"format", "json",
		"jobs", "3", "yes",
		"s",
		"s", "c.pi",
	})
	if err != nil {
		t.Fatal(err)
	}
	want := "scan a.pi,b.pi|format json|verbose|jjj|scan |scan c.pi"
	if str := strings.Join(got, "|"); str != want {
		t.Fatalf("got %s", str)
	}
}

func TestExecuteErrors(t *testing.T) {
	executor := NewExecutor()
	executor.Define("jobs", Func(func(n int) {}))
	executor.Define("fail", Func(func() error {
		return io.ErrUnexpectedEOF
	}))

	err := executor.Execute([]string{"jbos"})
	var unknown *UnknownCommandError
	if !errors.As(err, &unknown) {
		t.Fatalf("got %v", err)
	}
	if unknown.Name != "jbos" || len(unknown.Near) != 1 || unknown.Near[0] != "jobs" {
		t.Fatalf("got %+v", unknown)
	}
	if !strings.Contains(err.Error(), "did you mean jobs?") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{"jobs"})
	if err == nil || !strings.Contains(err.Error(), "missing <int> argument") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{"jobs", "many"})
	if err == nil || !strings.Contains(err.Error(), `"many" is not a valid int`) {
		t.Fatalf("got %v", err)
	}

	if err := executor.Execute([]string{"fail"}); err != io.ErrUnexpectedEOF {
		t.Fatalf("got %v", err)
	}
}

func TestFallback(t *testing.T) {
	executor := NewExecutor()
	var paths []string
	var json bool
	executor.Define("scan", Func(func(args ...string) {
		paths = append(paths, args...)
	}))
	executor.Define("-json", Func(func() {
		json = true
	}))
	executor.Fallback("scan")

	if err := executor.Execute([]string{"a.pi", "b.pi", "-json", "c.pi"}); err != nil {
		t.Fatal(err)
	}
	if str := strings.Join(paths, ","); str != "a.pi,b.pi,c.pi" {
		t.Fatalf("got %s", str)
	}
	if !json {
		t.Fatal()
	}

	// flags are never taken as paths
	var unknown *UnknownCommandError
	if err := executor.Execute([]string{"-jsn"}); !errors.As(err, &unknown) {
		t.Fatalf("got %v", err)
	}
}

func TestHelp(t *testing.T) {
	executor := NewExecutor()
	executor.Output = io.Discard
	for _, name := range []string{"-h", "help", "--help"} {
		if err := executor.Execute([]string{name}); !errors.Is(err, ErrHelp) {
			t.Fatalf("got %v", err)
		}
	}
}

func TestBadDefinitions(t *testing.T) {
	expectPanic := func(fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Fatal("should panic")
			}
		}()
		fn()
	}
	executor := NewExecutor()
	expectPanic(func() {
		Func(42)
	})
	expectPanic(func() {
		Func(func() int { return 1 })
	})
	expectPanic(func() {
		Func(func(ch chan int) {})
	})
	expectPanic(func() {
		executor.Define("help", Func(func() {}))
	})
	expectPanic(func() {
		executor.Fallback("nope")
	})
	expectPanic(func() {
		executor.Fallback("-h")
	})
}

func TestParseBool(t *testing.T) {
	for str, want := range map[string]bool{
		"true": true,
		"Y":    true,
		"on":   true,
		"f":    false,
		"No":   false,
		"0":    false,
	} {
		got, err := parseBool(str)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("%s: got %v", str, got)
		}
	}
	if _, err := parseBool("maybe"); err == nil {
		t.Fatal("should error")
	}
}
