package coverage

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/scnet/pkg/errcode"
)

// GraphError reports a failure to build or traverse the route graph.
func GraphError(vertex string, err error) error {
	msg := "Cannot analyse routes at <em>%s</em>"
	vars := []any{vertex}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CoverageGraphError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: route graph failed at %s: %w",
			fn.Name(), vertex, err),
	}
}
