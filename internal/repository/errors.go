package repository

import "errors"

// ErrNotFound is returned when a record with the requested id does not exist
// in a table. The service layer translates it into `app_errors.ErrNotFound`,
// which keeps driver errors such as `sql.ErrNoRows` or `redis.Nil` out of the
// business logic.
var ErrNotFound = errors.New("repository: not found")

// ErrReadOnly is returned when a write is attempted inside View.
var ErrReadOnly = errors.New("repository: write in read-only transaction")

// ErrUnknownTable is returned for a table name outside the fixed schema.
var ErrUnknownTable = errors.New("repository: unknown table")
