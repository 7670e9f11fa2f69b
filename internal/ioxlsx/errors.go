package ioxlsx

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/scnet/pkg/errcode"
)

// CreateFileError is returned when the workbook cannot be saved.
func CreateFileError(path string, err error) error {
	msg := "Cannot save workbook to <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.OutputCreateFileError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot save %s: %w",
			fn.Name(), path, err),
	}
}

// WriteError is returned when a sheet cannot be filled.
func WriteError(path, sheet string, err error) error {
	msg := "Cannot write sheet <em>%s</em> of %s"
	vars := []any{sheet, path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.OutputWriteError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot write sheet %q: %w",
			fn.Name(), sheet, err),
	}
}
