package iojson

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/scnet/pkg/errcode"
)

func CreateFileError(path string, err error) error {
	msg := "Cannot write JSON to <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.OutputCreateFileError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot write %s: %w",
			fn.Name(), path, err),
	}
}

func EncodeError(err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.OutputWriteError,
		Msg:  "Cannot encode dataset to JSON",
		Err:  fmt.Errorf("from %s: cannot encode: %w", fn.Name(), err),
	}
}
