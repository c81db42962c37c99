package memory

import "errors"

// ErrDuplicateKey mirrors a primary key violation in the postgres schema.
var ErrDuplicateKey = errors.New("duplicate key")
