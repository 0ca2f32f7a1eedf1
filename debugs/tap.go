package debugs

import (
	"context"
	"io"
	"maps"
	"slices"

	"github.com/reusee/pilex/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

// Tap opens a starlark REPL on stdin with globals and the lexing builtins
// bound. It returns when the input ends.
type Tap func(ctx context.Context, what string, globals starlark.StringDict)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals starlark.StringDict) {
		env := environment(globals)
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(env)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: what,
		}
		repl.REPLOptions(fileOptions, thread, env)
	}
}

// Eval runs a starlark program with the tap environment and returns its
// globals. Print output goes to w.
func Eval(w io.Writer, filename string, src string, globals starlark.StringDict) (starlark.StringDict, error) {
	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			io.WriteString(w, msg+"\n")
		},
	}
	return starlark.ExecFileOptions(fileOptions, thread, filename, src, environment(globals))
}

func environment(globals starlark.StringDict) starlark.StringDict {
	env := builtins()
	maps.Copy(env, globals)
	return env
}
