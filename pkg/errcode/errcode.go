package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Configuration errors
	ConfigInvalidError

	// Generation errors
	GenInvalidConfigError
	GenIntegrityError

	// Coverage errors
	CoverageGraphError

	// Output errors
	OutputUnknownFormatError
	OutputCreateFileError
	OutputWriteError

	// Database errors
	DBConnectionError
	DBTableCheckError
	DBEmptyDatabaseError
	DBNotConnectedError
	DBTableExistsCheckError
	DBQueryTablesError
	DBScanTableError
	DBDropTableError
	DBCopyError
	DBRunInsertError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaMigrateError
)
