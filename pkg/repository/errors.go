package repository

import "github.com/m-mizutani/goerr/v2"

// ErrNotFound is returned by any backend when a requested record does not
// exist. Callers distinguish absence from failure with errors.Is.
var ErrNotFound = goerr.New("not found")
