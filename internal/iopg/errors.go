package iopg

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/scnet/pkg/errcode"
)

// RunInsertError is returned when the runs row cannot be saved.
func RunInsertError(runID string, err error) error {
	msg := "Cannot register run <em>%s</em>"
	vars := []any{runID}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBRunInsertError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot insert run %s: %w",
			fn.Name(), runID, err),
	}
}

// CopyError is returned when rows of a table cannot be copied.
func CopyError(table string, err error) error {
	msg := "Cannot save rows of <em>%s</em>"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBCopyError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: copy to %s: %w",
			fn.Name(), table, err),
	}
}
