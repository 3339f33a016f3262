package errors

import "errors"

var (
	ErrUnrecognizedFile  = errors.New("file does not match any known export")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrKeyColumnMissing  = errors.New("key column not present in file")
	ErrEmptyFile         = errors.New("file contains no data rows")

	ErrImportRunning    = errors.New("an import is already running")
	ErrImportNotRunning = errors.New("no import is running")
	ErrImportCanceled   = errors.New("import canceled")

	ErrScheduleNotFound = errors.New("schedule entry not found")
	ErrInvalidSchedule  = errors.New("invalid schedule time, expected HH:MM")

	ErrInvalidInput = errors.New("invalid input data")
)
