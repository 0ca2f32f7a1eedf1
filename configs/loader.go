package configs

import (
	"fmt"
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Loader reads config files once, on first use. Each file is validated
// against a closed schema.
type Loader struct {
	load func() ([]file, error)
}

type file struct {
	path  string
	value cue.Value
}

// NewLoader takes file paths most specific first.
func NewLoader(paths []string, schema string) Loader {
	return Loader{
		load: sync.OnceValues(func() ([]file, error) {
			ctx := cuecontext.New()

			var closed cue.Value
			if schema != "" {
				closed = ctx.CompileString("close({"+schema+"})", cue.Filename("schema.cue"))
				if err := closed.Err(); err != nil {
					return nil, fmt.Errorf("compile schema: %w", err)
				}
			}

			files := make([]file, 0, len(paths))
			for _, path := range paths {
				content, err := os.ReadFile(path)
				if err != nil {
					return nil, &FileError{Path: path, Err: err}
				}
				value := ctx.CompileBytes(content, cue.Filename(path))
				if err := value.Err(); err != nil {
					return nil, fileError(path, err)
				}
				if closed.Exists() {
					if err := closed.Unify(value).Validate(); err != nil {
						return nil, fileError(path, err)
					}
				}
				files = append(files, file{
					path:  path,
					value: value,
				})
			}
			return files, nil
		}),
	}
}

// Err reports the first file that failed to load or validate.
func (l Loader) Err() error {
	_, err := l.load()
	return err
}

// Entry is a config value and the file that sets it.
type Entry[T any] struct {
	Path  string
	Value T
}

// All decodes the value at path from every file that sets it, most specific
// first. Iteration stops after the first error.
func All[T any](loader Loader, path string) iter.Seq2[Entry[T], error] {
	return func(yield func(Entry[T], error) bool) {
		files, err := loader.load()
		if err != nil {
			yield(Entry[T]{}, err)
			return
		}
		cuePath := cue.ParsePath(path)
		for _, f := range files {
			value := f.value.LookupPath(cuePath)
			if !value.Exists() {
				continue
			}
			entry := Entry[T]{
				Path: f.path,
			}
			if err := value.Decode(&entry.Value); err != nil {
				yield(Entry[T]{}, &FileError{
					Path: f.path,
					Err:  fmt.Errorf("decode %s: %w", path, err),
				})
				return
			}
			if !yield(entry, nil) {
				return
			}
		}
	}
}
