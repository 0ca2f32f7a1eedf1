package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/reusee/dscope"
	"github.com/reusee/pilex/cmds"
	"github.com/reusee/pilex/configs"
	"github.com/reusee/pilex/debugs"
	"github.com/reusee/pilex/diags"
	"github.com/reusee/pilex/lexconfigs"
	"github.com/reusee/pilex/lexers"
	"github.com/reusee/pilex/logs"
	"github.com/reusee/pilex/modes"
	"github.com/reusee/pilex/syncs"
	"go.starlark.net/starlark"
)

var (
	scanPaths = cmds.Collect[string]("scan", "lex files and print their tokens")
	tapPath   = cmds.Var[string]("tap", "lex a file and open a starlark REPL over its tokens")
	devFlag   = cmds.Switch("-dev", "-no-dev", "re-encode every scanned number as a self check")
)

func init() {
	cmds.Fallback("scan")
}

type Module struct {
	dscope.Module
	Lexers  lexers.Module
	Configs lexconfigs.Module
	Debugs  debugs.Module
}

func main() {
	cmds.Execute(os.Args[1:])

	if len(*scanPaths) == 0 && !tapPath.IsSet {
		fmt.Fprintln(os.Stderr, "nothing to do, run with -h for usage")
		os.Exit(2)
	}

	mode := modes.ForProduction()
	if devFlag.Value {
		mode = modes.ForDevelopment()
	}
	scope := dscope.New(
		new(Module),
		mode,
	)

	ok := true
	scope.Call(func(
		loader configs.Loader,
	) {
		if err := loader.Err(); err != nil {
			renderFileError(os.Stderr, err)
			ok = false
		}
	})
	if !ok {
		os.Exit(1)
	}

	scope.Call(func(
		scan lexers.ScanSource,
		format lexconfigs.OutputFormat,
		keepComments lexconfigs.KeepComments,
		tap debugs.Tap,
		logger logs.Logger,
		newSpan logs.NewSpan,
	) {
		ctx, _ := newSpan(context.Background(), "")

		load := func(diagOutput io.Writer, path string) ([]lexers.Token, bool) {
			content, err := os.ReadFile(path)
			if err != nil {
				logger.ErrorContext(ctx, "read source", "error", logs.WrapSpan(ctx, err))
				return nil, false
			}
			tokens, err := scan(ctx, path, string(content))
			if err != nil {
				fmt.Fprint(diagOutput, diags.Render(diags.NewSource(path, string(content)), err))
				return nil, false
			}
			if !keepComments {
				tokens = dropComments(tokens)
			}
			return tokens, true
		}

		// scanned concurrently, reported in the given order
		type result struct {
			tokens []lexers.Token
			loaded bool
			output *bytes.Buffer
		}
		results := syncs.Map(*scanPaths, runtime.GOMAXPROCS(0), func(path string) result {
			output := new(bytes.Buffer)
			tokens, loaded := load(output, path)
			return result{
				tokens: tokens,
				loaded: loaded,
				output: output,
			}
		})
		for _, res := range results {
			io.Copy(os.Stderr, res.output)
			if !res.loaded {
				ok = false
				continue
			}
			if err := printTokens(os.Stdout, format, res.tokens); err != nil {
				logger.ErrorContext(ctx, "print tokens", "error", logs.WrapSpan(ctx, err))
				ok = false
			}
		}

		if tapPath.IsSet {
			tokens, loaded := load(os.Stderr, tapPath.Value)
			if !loaded {
				ok = false
				return
			}
			tap(ctx, tapPath.Value, starlark.StringDict{
				"tokens": debugs.TokenValues(tokens),
			})
		}
	})

	if !ok {
		os.Exit(1)
	}
}

// renderFileError shows a config error under the offending line when it has
// a position.
func renderFileError(w io.Writer, err error) {
	var fileErr *configs.FileError
	if errors.As(err, &fileErr) {
		if content, readErr := os.ReadFile(fileErr.Path); readErr == nil {
			fmt.Fprint(w, diags.Render(diags.NewSource(fileErr.Path, string(content)), err))
			return
		}
	}
	fmt.Fprintln(w, err)
}

func dropComments(tokens []lexers.Token) []lexers.Token {
	ret := tokens[:0:0]
	for _, token := range tokens {
		if _, ok := token.Kind.(lexers.Comment); ok {
			continue
		}
		ret = append(ret, token)
	}
	return ret
}
