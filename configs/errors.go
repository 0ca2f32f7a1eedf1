package configs

import (
	"fmt"

	cueerrors "cuelang.org/go/cue/errors"
	"github.com/reusee/pilex/diags"
)

// FileError is a failure attributed to one config file.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// fileError positions a CUE error at its first location inside path.
func fileError(path string, err error) error {
	diag := &diags.Error{
		Pos:  diags.Pos{Line: 1, Column: 1},
		Code: diags.InvalidConfig,
		Msg:  err.Error(),
		Err:  err,
	}
	if list := cueerrors.Errors(err); len(list) > 0 {
		format, args := list[0].Msg()
		diag.Msg = fmt.Sprintf(format, args...)
		for _, pos := range cueerrors.Positions(list[0]) {
			if pos.Filename() == path {
				diag.Pos = diags.Pos{
					Line:   pos.Line(),
					Column: pos.Column(),
				}
				break
			}
		}
	}
	return &FileError{
		Path: path,
		Err:  diag,
	}
}
