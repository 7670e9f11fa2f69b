package cmd

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/scnet/pkg/errcode"
)

// UnknownFormatError is returned for an output format without writer.
func UnknownFormatError(format string) error {
	msg := `Output format <em>%s</em> is not supported.
Use one of: xlsx, sqlite, json, postgres`
	return &gn.Error{
		Code: errcode.OutputUnknownFormatError,
		Msg:  msg,
		Vars: []any{format},
		Err:  fmt.Errorf("unknown output format %q", format),
	}
}

// ConfigError is returned when config.yaml or environment variables
// have values of wrong types.
func ConfigError(path string, err error) error {
	msg := `Cannot use configuration from <em>%s</em>
Check value types or run <em>scnet config</em> after fixing the file`
	return &gn.Error{
		Code: errcode.ConfigInvalidError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("cannot decode config %s: %w", path, err),
	}
}
