package db_test

import (
	"testing"

	"github.com/gnames/scnet/internal/iodb"
	"github.com/gnames/scnet/internal/ioschema"
	"github.com/gnames/scnet/pkg/db"
)

// TestImplementations verifies at compile time that internal packages
// satisfy the contracts.
func TestImplementations(t *testing.T) {
	var _ db.Operator = iodb.NewPgxOperator()
	var _ db.SchemaManager = ioschema.NewManager(iodb.NewPgxOperator())
}
