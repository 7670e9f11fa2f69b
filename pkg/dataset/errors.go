package dataset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/scnet/pkg/errcode"
)

// IntegrityError reports broken references inside a generated dataset.
func IntegrityError(problems []string) error {
	msg := `<err>Generated dataset is inconsistent (%d problems)</err>`
	return &gn.Error{
		Code: errcode.GenIntegrityError,
		Msg:  msg,
		Vars: []any{len(problems)},
		Err: fmt.Errorf("dataset integrity: %w",
			errors.New(strings.Join(problems, "; "))),
	}
}
