package iodb

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/scnet/pkg/errcode"
)

func caller() string {
	pc, _, _, _ := runtime.Caller(2)
	return runtime.FuncForPC(pc).Name()
}

// ConnectionError is returned when database connection fails.
func ConnectionError(
	host string, port int, database, user string, err error,
) error {
	msg := `<title>Database Connection Failed</title>

<warning>Could not connect to PostgreSQL database.</warning>

<em>How to fix:</em>
  1. Check if PostgreSQL is running:
     <em>pg_isready -h %s -p %d</em>

  2. Verify database exists:
     <em>psql -h %s -U %s -l</em>

  3. Check your configuration file:
     <em>~/.config/scnet/config.yaml</em>

<em>Connection settings:</em>
  Host: %s
  Port: %d
  Database: %s
  User: %s
`
	vars := []any{
		host, port,
		host, user,
		host, port, database, user,
	}
	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: failed to connect to %s:%d/%s: %w",
			caller(), host, port, database, err),
	}
}

// NotConnectedError is returned when an operation needs a pool that
// was not created yet.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Database is not connected",
		Err:  fmt.Errorf("from %s: database not connected", caller()),
	}
}

// TableCheckError is returned when checking for tables fails.
func TableCheckError(err error) error {
	return &gn.Error{
		Code: errcode.DBTableCheckError,
		Msg:  "Could not verify database state",
		Err: fmt.Errorf("from %s: failed to check database tables: %w",
			caller(), err),
	}
}

// TableExistsCheckError is returned when a table lookup fails.
func TableExistsCheckError(table string, err error) error {
	return &gn.Error{
		Code: errcode.DBTableExistsCheckError,
		Msg:  "Could not check if table <em>%s</em> exists",
		Vars: []any{table},
		Err: fmt.Errorf("from %s: failed to check table %s: %w",
			caller(), table, err),
	}
}

// EmptyDatabaseError is returned when the schema was not created.
func EmptyDatabaseError(host, database string) error {
	msg := `<title>Database Is Not Ready</title>

<warning>Tables for generated networks do not exist.</warning>

Create the schema first:
  <em>scnet create</em>

  Host: %s
  Database: %s
`
	return &gn.Error{
		Code: errcode.DBEmptyDatabaseError,
		Msg:  msg,
		Vars: []any{host, database},
		Err: fmt.Errorf("from %s: schema is missing in %s/%s",
			caller(), host, database),
	}
}

// QueryTablesError is returned when listing tables fails.
func QueryTablesError(err error) error {
	return &gn.Error{
		Code: errcode.DBQueryTablesError,
		Msg:  "Cannot list database tables",
		Err:  fmt.Errorf("from %s: failed to query tables: %w", caller(), err),
	}
}

// ScanTableError is returned when reading table names fails.
func ScanTableError(err error) error {
	return &gn.Error{
		Code: errcode.DBScanTableError,
		Msg:  "Cannot read database table names",
		Err:  fmt.Errorf("from %s: failed to scan table: %w", caller(), err),
	}
}

// DropTableError is returned when a table cannot be removed.
func DropTableError(table string, err error) error {
	return &gn.Error{
		Code: errcode.DBDropTableError,
		Msg:  "Cannot drop table <em>%s</em>",
		Vars: []any{table},
		Err: fmt.Errorf("from %s: failed to drop table %s: %w",
			caller(), table, err),
	}
}
