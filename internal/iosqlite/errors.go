package iosqlite

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/scnet/pkg/errcode"
)

// CreateFileError is returned when the database file cannot be
// created or opened.
func CreateFileError(path string, err error) error {
	msg := "Cannot create SQLite file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.OutputCreateFileError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot create %s: %w",
			fn.Name(), path, err),
	}
}

// WriteError is returned when a step of saving the dataset fails.
// Nothing is saved in this case.
func WriteError(path, step string, err error) error {
	msg := "Cannot save <em>%s</em> to %s"
	vars := []any{step, path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.OutputWriteError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: sqlite %s: %w",
			fn.Name(), step, err),
	}
}
